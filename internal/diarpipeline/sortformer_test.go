package diarpipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed scenario 5 from §8.
func TestParseSortformerStringsSeedScenario(t *testing.T) {
	segments, err := ParseSortformerStrings([]string{"0.0 1.5 speaker_1", "1.5 2.0 speaker_2"})
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, "speaker_1", segments[0].Speaker)
	assert.InDelta(t, 1.5, segments[0].Duration(), 1e-9)
	assert.Equal(t, "speaker_2", segments[1].Speaker)
	assert.InDelta(t, 0.5, segments[1].Duration(), 1e-9)
}

func TestParseSortformerStringsSkipsMalformedLines(t *testing.T) {
	segments, err := ParseSortformerStrings([]string{"garbage", "0.0 1.0 speaker_0"})
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "speaker_0", segments[0].Speaker)
}

func TestParseSortformerStringsSortsByStart(t *testing.T) {
	segments, err := ParseSortformerStrings([]string{"5.0 6.0 b", "0.0 1.0 a"})
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "a", segments[0].Speaker)
	assert.Equal(t, "b", segments[1].Speaker)
}

func TestNormalizeSortformerItemsUnwrapsNestedList(t *testing.T) {
	segments, err := NormalizeSortformerItems([]byte(`[[{"start": 0.0, "end": 1.0, "speaker": "speaker_0"}]]`))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "speaker_0", segments[0].Speaker)
}

func TestNormalizeSortformerItemsParsesStringLines(t *testing.T) {
	segments, err := NormalizeSortformerItems([]byte(`["0.0 1.5 speaker_1", "1.5 2.0 speaker_2"]`))
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "speaker_1", segments[0].Speaker)
}

func TestNormalizeSortformerItemsParsesTuples(t *testing.T) {
	segments, err := NormalizeSortformerItems([]byte(`[[0.0, 1.0, "a"], [1.0, 2.0, "b", 0.8]]`))
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "a", segments[0].Speaker)
	assert.Equal(t, 1.0, segments[0].Confidence)
	assert.Equal(t, "b", segments[1].Speaker)
	assert.Equal(t, 0.8, segments[1].Confidence)
}

func TestNormalizeSortformerItemsParsesMappingsWithLabelAndDefaults(t *testing.T) {
	segments, err := NormalizeSortformerItems([]byte(`[{"start": 0.0, "end": 1.0, "label": "x"}, {"start": 1.0, "end": 2.0}]`))
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "x", segments[0].Speaker)
	assert.Equal(t, 1.0, segments[0].Confidence)
	assert.Equal(t, "speaker_1", segments[1].Speaker)
}

func TestNormalizeSortformerItemsSkipsUnrecognizedEntries(t *testing.T) {
	segments, err := NormalizeSortformerItems([]byte(`[42, {"start": 0.0, "end": 1.0, "speaker": "a"}]`))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "a", segments[0].Speaker)
}
