package asrpipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateWordTimingsClampsLastWordEnd(t *testing.T) {
	words := interpolateWordTimings("hi there friend", 10.0, 13.0)
	require.Len(t, words, 3)
	assert.Equal(t, 10.0, words[0].start)
	assert.Equal(t, 13.0, words[len(words)-1].end)

	// Word starts accumulate left to right, so they never decrease.
	for i := 1; i < len(words); i++ {
		assert.GreaterOrEqual(t, words[i].start, words[i-1].start)
	}
}

func TestInterpolateWordTimingsEmptyTextReturnsNil(t *testing.T) {
	assert.Nil(t, interpolateWordTimings("", 0, 10))
	assert.Nil(t, interpolateWordTimings("word", 10, 5))
}

func TestSplitIntoSegmentsAndWordsSplitsOnSentencePunctuation(t *testing.T) {
	words := []wordTiming{
		{word: "Hello.", start: 0, end: 0.5},
		{word: "How", start: 0.6, end: 0.8},
		{word: "are", start: 0.8, end: 1.0},
		{word: "you?", start: 1.0, end: 1.3},
	}
	segments, allWords := splitIntoSegmentsAndWords(words, nil, 0, 0)
	require.Len(t, segments, 2)
	assert.Equal(t, "Hello.", segments[0].Text)
	assert.Equal(t, "How are you?", segments[1].Text)
	require.Len(t, allWords, 4)
	assert.Equal(t, 1, allWords[0].SegmentIndex)
	assert.Equal(t, 2, allWords[1].SegmentIndex)
	assert.Equal(t, 1, allWords[1].WordIndexInSegment)
	assert.Equal(t, 4, allWords[3].GlobalWordIndex)
}

func TestSplitIntoSegmentsAndWordsSplitsOnGap(t *testing.T) {
	gap := 0.5
	words := []wordTiming{
		{word: "one", start: 0, end: 0.2},
		{word: "two", start: 1.0, end: 1.2}, // gap of 0.8s >= 0.5s threshold
	}
	segments, _ := splitIntoSegmentsAndWords(words, &gap, 0, 0)
	require.Len(t, segments, 2)
}
