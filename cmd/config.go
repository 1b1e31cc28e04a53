package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/viper"

	"drift-scan/internal/schema"
)

// DBConfig is one entry of the "databases" list in drift-scan.yaml.
type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Schema string `mapstructure:"schema"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// openDatabase connects using the active config and resolves the schema name
// the introspection queries should target.
func openDatabase() (*sql.DB, *DBConfig, string, error) {
	config, err := GetActiveDBConfig()
	if err != nil {
		return nil, nil, "", err
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, "", fmt.Errorf("failed to connect to db: %w", err)
	}

	schemaName := config.Schema
	if schemaName == "" {
		switch config.Driver {
		case "mysql":
			if err := db.QueryRow("SELECT DATABASE()").Scan(&schemaName); err != nil {
				db.Close()
				return nil, nil, "", fmt.Errorf("failed to get database name: %w", err)
			}
		case "sqlserver", "mssql":
			schemaName = "dbo"
		case "oracle":
			// USER_* views scope to the connected user; name is cosmetic.
			schemaName = config.Name
		default:
			schemaName = "public"
		}
	}

	return db, config, schemaName, nil
}

// updateConfig assembles the engine policy from the config file (update.*
// keys), so every command shares the same ignore list and thresholds.
func updateConfig() schema.Config {
	return schema.Config{
		ColumnsToIgnore:     viper.GetStringSlice("update.columns_to_ignore"),
		EnumGrouping:        viper.GetStringMapString("update.enum_grouping"),
		EnumThreshold:       viper.GetInt("update.enum_threshold"),
		MinDomainSimilarity: viper.GetFloat64("update.min_domain_similarity"),
	}
}
