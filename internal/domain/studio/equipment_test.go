package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEquipmentNames(t *testing.T) {
	names := map[int64]string{1: "Shure SM7B Microphone", 3: "Rode PodMic"}

	got := ResolveEquipmentNames([]string{"3", "2", "1", "abc"}, names)

	assert.Equal(t, []string{"Rode PodMic", "Equipment 2", "Shure SM7B Microphone", "Equipment abc"}, got)
}

func TestReferencedIDsDeduplicatesAndSkipsJunk(t *testing.T) {
	a := &Studio{Equipment: []string{"1", "2", "x", "-4"}}
	b := &Studio{Equipment: []string{"2", "7"}}

	assert.Equal(t, []int64{1, 2, 7}, referencedIDs(a, b))
	assert.Empty(t, referencedIDs(&Studio{}))
}
