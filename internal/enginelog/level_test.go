package enginelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrderingLowerIsMoreSevere(t *testing.T) {
	assert.Less(t, ELevel.None(), ELevel.Panic())
	assert.Less(t, ELevel.Panic(), ELevel.Error())
	assert.Less(t, ELevel.Error(), ELevel.Warn())
	assert.Less(t, ELevel.Warn(), ELevel.Info())
	assert.Less(t, ELevel.Info(), ELevel.Debug())
}

func TestLevelStringRoundTrip(t *testing.T) {
	for _, lvl := range []Level{ELevel.None(), ELevel.Panic(), ELevel.Error(), ELevel.Warn(), ELevel.Info(), ELevel.Debug()} {
		parsed, err := ParseLevel(lvl.String())
		require.NoError(t, err)
		assert.Equal(t, lvl, parsed)
	}
}

func TestParseLevelCaseInsensitive(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, ELevel.Debug(), lvl)
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
