// Package align implements the auxiliary speaker-to-word alignment
// heuristics from Design Notes §9, grounded on
// scripts/debug_diarization_clip.py's _estimate_offset/_assign_speakers.
// These are pure post-processors, part of the test surface, not the
// engine core.
package align

import "math"

// WordSpan is the minimal word shape the offset search needs.
type WordSpan struct {
	Start float64
	End   float64
}

// DiarSpan is the minimal diarization segment shape the offset search
// needs.
type DiarSpan struct {
	Start   float64
	End     float64
	Speaker string
}

const (
	searchMin  = -2.0
	searchMax  = 2.0
	searchStep = 0.05
)

// EstimateOffset returns an offset in [-2.0, +2.0] seconds that maximizes
// the count of words whose midpoint falls inside any shifted diarization
// segment. The winning offset is only accepted if its coverage gain over
// the zero-offset baseline is at least max(2, round(len(words)*0.05))
// words; otherwise it returns 0.0.
func EstimateOffset(words []WordSpan, segments []DiarSpan) float64 {
	if len(words) == 0 || len(segments) == 0 {
		return 0.0
	}

	coverage := func(offset float64) int {
		count := 0
		for _, w := range words {
			mid := w.Start
			if w.End > w.Start {
				mid = (w.Start + w.End) / 2
			}
			for _, seg := range segments {
				if mid >= seg.Start+offset && mid <= seg.End+offset {
					count++
					break
				}
			}
		}
		return count
	}

	base := coverage(0.0)
	best := base
	bestOffset := 0.0

	for offset := searchMin; offset <= searchMax+1e-9; offset += searchStep {
		score := coverage(offset)
		if score > best {
			best = score
			bestOffset = offset
		}
	}

	minGain := int(math.Max(2, math.Round(float64(len(words))*0.05)))
	if best-base < minGain {
		return 0.0
	}
	return math.Round(bestOffset*1000) / 1000
}
