package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateOffsetReturnsZeroWhenNoGainClearsFloor(t *testing.T) {
	words := []WordSpan{{Start: 0, End: 1}, {Start: 1, End: 2}}
	segments := []DiarSpan{{Start: 0, End: 2, Speaker: "s1"}}
	assert.Equal(t, 0.0, EstimateOffset(words, segments))
}

func TestEstimateOffsetFindsShiftedAlignment(t *testing.T) {
	var words []WordSpan
	for i := 0; i < 40; i++ {
		start := float64(i) * 0.5
		words = append(words, WordSpan{Start: start, End: start + 0.4})
	}
	// Segment is shifted +1.0s relative to where the words actually are, so
	// shifting it back by roughly -1.0s to -1.3s recovers full coverage.
	segments := []DiarSpan{{Start: 1.0, End: 21.0, Speaker: "s1"}}

	offset := EstimateOffset(words, segments)
	assert.InDelta(t, -1.3, offset, 0.06)
}

func TestEstimateOffsetEmptyInputsReturnZero(t *testing.T) {
	assert.Equal(t, 0.0, EstimateOffset(nil, nil))
	assert.Equal(t, 0.0, EstimateOffset([]WordSpan{{Start: 0, End: 1}}, nil))
}

func TestAssignSpeakersPicksLargestOverlap(t *testing.T) {
	words := []WordSpan{{Start: 0.0, End: 1.0}, {Start: 5.0, End: 5.1}}
	segments := []DiarSpan{
		{Start: 0.0, End: 0.8, Speaker: "s1"},
		{Start: 0.7, End: 2.0, Speaker: "s2"},
	}
	out := AssignSpeakers(words, segments, 0)
	require := assert.New(t)
	require.Equal("s1", out[0].Speaker)
	require.Equal("", out[1].Speaker)
}
