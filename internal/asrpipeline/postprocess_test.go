package asrpipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// Scenario 6 from §8's seed tests.
func TestMergeShortSegmentsSeedScenario(t *testing.T) {
	segments := []modelspec.Segment{
		{Text: "hello", Start: 0.0, End: 0.5},
		{Text: "world", Start: 0.5, End: 0.6},
		{Text: "this is long", Start: 0.6, End: 2.0},
	}

	merged := MergeShortSegments(segments, 0.25, 2)

	require.Len(t, merged, 2)
	assert.Equal(t, modelspec.Segment{Text: "hello world", Start: 0.0, End: 0.6}, merged[0])
	assert.Equal(t, modelspec.Segment{Text: "this is long", Start: 0.6, End: 2.0}, merged[1])
}

func TestMergeShortSegmentsDropsEmptyText(t *testing.T) {
	segments := []modelspec.Segment{
		{Text: "hello", Start: 0, End: 1},
		{Text: "   ", Start: 1, End: 1.1},
		{Text: "world", Start: 1.1, End: 2},
	}
	merged := MergeShortSegments(segments, 0.01, 0)
	require.Len(t, merged, 2)
	assert.Equal(t, "hello", merged[0].Text)
	assert.Equal(t, "world", merged[1].Text)
}

func TestMergeShortSegmentsFirstSegmentNeverDropped(t *testing.T) {
	segments := []modelspec.Segment{
		{Text: "hi", Start: 0, End: 0.1},
	}
	merged := MergeShortSegments(segments, 10, 10)
	require.Len(t, merged, 1)
	assert.Equal(t, "hi", merged[0].Text)
}

func TestMergeShortSegmentsAndWordsRenumbersIndices(t *testing.T) {
	segments := []modelspec.Segment{
		{Text: "hello", Start: 0.0, End: 0.5},
		{Text: "world", Start: 0.5, End: 0.6},
		{Text: "this is long", Start: 0.6, End: 2.0},
	}
	words := []modelspec.Word{
		{Word: "hello", Start: 0, End: 0.5, SegmentIndex: 1, WordIndexInSegment: 1, GlobalWordIndex: 1},
		{Word: "world", Start: 0.5, End: 0.6, SegmentIndex: 2, WordIndexInSegment: 1, GlobalWordIndex: 2},
		{Word: "this", Start: 0.6, End: 1.0, SegmentIndex: 3, WordIndexInSegment: 1, GlobalWordIndex: 3},
		{Word: "is", Start: 1.0, End: 1.2, SegmentIndex: 3, WordIndexInSegment: 2, GlobalWordIndex: 4},
		{Word: "long", Start: 1.2, End: 2.0, SegmentIndex: 3, WordIndexInSegment: 3, GlobalWordIndex: 5},
	}

	mergedSegs, mergedWords := MergeShortSegmentsAndWords(segments, words, 0.25, 2)
	require.Len(t, mergedSegs, 2)
	require.Len(t, mergedWords, 5)

	assert.Equal(t, 1, mergedWords[0].SegmentIndex)
	assert.Equal(t, 1, mergedWords[1].SegmentIndex)
	assert.Equal(t, 2, mergedWords[1].WordIndexInSegment)
	assert.Equal(t, 2, mergedWords[2].SegmentIndex)
	assert.Equal(t, 1, mergedWords[2].WordIndexInSegment)

	for i, w := range mergedWords {
		assert.Equal(t, i+1, w.GlobalWordIndex)
	}
}
