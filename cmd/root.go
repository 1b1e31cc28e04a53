package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "drift-scan",
	Short: "A dataset schema inference and drift detection tool",
	Long: `
  ____  ____  ___ _____ _____   ____   ____    _    _   _
 |  _ \|  _ \|_ _|  ___|_   _| / ___| / ___|  / \  | \ | |
 | | | | |_) || || |_    | |   \___ \| |     / _ \ |  \| |
 | |_| |  _ < | ||  _|   | |    ___) | |___ / ___ \| |\  |
 |____/|_| \_\___|_|     |_|   |____/ \____/_/   \_\_| \_|

DRIFT SCAN 📡 - Dataset Schema Inference & Drift Detector

Profiles tables into statistics snapshots, infers a schema from the first
snapshot, and checks later snapshots for drift (new columns, type changes,
categorical growth, missing required columns).
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./drift-scan.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("drift-scan")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
