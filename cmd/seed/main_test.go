package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misk/misk-api/internal/pkg/validator"
)

func TestEquipmentRefs(t *testing.T) {
	ids := map[string]int64{"Rode PodMic": 5, "Focusrite Scarlett 2i2": 4}

	refs, err := equipmentRefs([]string{"Rode PodMic", "Focusrite Scarlett 2i2"}, ids)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "4"}, refs)

	_, err = equipmentRefs([]string{"Theremin"}, ids)
	assert.Error(t, err)
}

func TestSeedDataIsConsistent(t *testing.T) {
	names := map[string]int64{}
	for i, e := range equipmentData {
		assert.Contains(t, validator.EquipmentTypes, e.Type, e.Name)
		names[e.Name] = int64(i + 1)
	}

	seen := map[string]bool{}
	for _, s := range studioData {
		assert.False(t, seen[s.ID], "duplicate studio id %s", s.ID)
		seen[s.ID] = true
		assert.Contains(t, validator.StudioCategories, s.Category, s.ID)
		assert.Greater(t, s.Area, 0)

		_, err := equipmentRefs(s.Equipment, names)
		assert.NoError(t, err, s.ID)
	}
}
