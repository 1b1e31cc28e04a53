package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateFeatureSelf_DomainOnNonStringFeature(t *testing.T) {
	var s Schema
	s.getStringDomain("colors")
	f := &Feature{Name: "n", Type: FeatureInt, Domain: "colors"}

	descs := s.updateFeatureSelf(f)

	assert.Empty(t, f.Domain)
	if assert.Len(t, descs, 1) {
		assert.Equal(t, DescDomainBadType, descs[0].Type)
	}
}

func TestUpdateFeatureSelf_DanglingDomainReference(t *testing.T) {
	var s Schema
	f := &Feature{Name: "n", Type: FeatureString, Domain: "nowhere"}

	descs := s.updateFeatureSelf(f)

	assert.Empty(t, f.Domain)
	if assert.Len(t, descs, 1) {
		assert.Equal(t, DescDomainNotFound, descs[0].Type)
	}
}

func TestUpdateFeatureSelf_ClampsPresence(t *testing.T) {
	var s Schema
	f := &Feature{Name: "n", Type: FeatureInt, Presence: Presence{MinFraction: 1.5, MinCount: -3}}

	descs := s.updateFeatureSelf(f)

	assert.Equal(t, 1.0, f.Presence.MinFraction)
	assert.Equal(t, int64(0), f.Presence.MinCount)
	assert.Len(t, descs, 2)
}

func TestUpdateFeatureSelf_ValidFeatureUntouched(t *testing.T) {
	var s Schema
	s.getStringDomain("colors")
	f := &Feature{Name: "n", Type: FeatureString, Domain: "colors", Presence: Presence{MinFraction: 1, MinCount: 1}}

	descs := s.updateFeatureSelf(f)

	assert.Empty(t, descs)
	assert.Equal(t, "colors", f.Domain)
}
