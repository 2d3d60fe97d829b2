package asrpipeline

import (
	"strings"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// MergeShortSegments folds each segment whose duration < attachThresholdS
// OR whose word count <= attachMaxWords into its predecessor, extending
// the predecessor's end and appending its text (§4.4 step 7).
//
// Grounded on asr_engine/postprocess.py::merge_short_segments: the two
// conditions are combined with OR, not AND (this system's prose reads
// ambiguously); the first segment is never merged away since it has no
// predecessor; segments whose text is empty after trimming are dropped
// entirely rather than merged.
func MergeShortSegments(segments []modelspec.Segment, attachThresholdS float64, attachMaxWords int) []modelspec.Segment {
	merged, _ := mergeSegmentsTrackingGroups(segments, attachThresholdS, attachMaxWords)
	return merged
}

// mergeSegmentsTrackingGroups runs the same merge as MergeShortSegments but
// also returns, for each surviving merged segment, the list of original
// segment indices (0-based, into the input slice) it absorbed; dropped
// (empty-text) segments are simply absent from every group. Used by
// MergeShortSegmentsAndWords to keep word segment_index/I6 dense numbering
// consistent with the merged segment list.
func mergeSegmentsTrackingGroups(segments []modelspec.Segment, attachThresholdS float64, attachMaxWords int) ([]modelspec.Segment, [][]int) {
	var merged []modelspec.Segment
	var groups [][]int

	for i, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		seg = modelspec.Segment{Text: text, Start: seg.Start, End: seg.End}

		wordCount := len(strings.Fields(text))
		attachByDuration := seg.Duration() < attachThresholdS
		attachByWords := wordCount <= attachMaxWords

		if len(merged) > 0 && (attachByDuration || attachByWords) {
			prev := &merged[len(merged)-1]
			prev.Text = strings.TrimSpace(prev.Text + " " + seg.Text)
			prev.End = seg.End
			groups[len(groups)-1] = append(groups[len(groups)-1], i)
		} else {
			merged = append(merged, seg)
			groups = append(groups, []int{i})
		}
	}

	return merged, groups
}

// MergeShortSegmentsAndWords applies MergeShortSegments and remaps each
// word's segment_index to its segment's new, dense 1-based position,
// preserving I5/I6/P5 across the merge.
func MergeShortSegmentsAndWords(segments []modelspec.Segment, words []modelspec.Word, attachThresholdS float64, attachMaxWords int) ([]modelspec.Segment, []modelspec.Word) {
	merged, groups := mergeSegmentsTrackingGroups(segments, attachThresholdS, attachMaxWords)

	oldToNew := make(map[int]int, len(segments))
	for newIdx, group := range groups {
		for _, oldIdx := range group {
			oldToNew[oldIdx] = newIdx + 1 // 1-based
		}
	}

	remapped := make([]modelspec.Word, 0, len(words))
	globalIdx := 0
	wordIdxInSeg := make(map[int]int)
	for _, w := range words {
		newSegIdx, ok := oldToNew[w.SegmentIndex-1]
		if !ok {
			continue // word belonged to a dropped empty-text segment
		}
		globalIdx++
		wordIdxInSeg[newSegIdx]++
		w.SegmentIndex = newSegIdx
		w.GlobalWordIndex = globalIdx
		w.WordIndexInSegment = wordIdxInSeg[newSegIdx]
		remapped = append(remapped, w)
	}

	return merged, remapped
}
