package align

// WordWithSpeaker pairs a word span with the speaker assigned by overlap,
// or an empty Speaker when no diarization segment overlaps it.
type WordWithSpeaker struct {
	WordSpan
	Speaker string
}

// AssignSpeakers assigns each word the speaker of the diarization segment
// with the largest overlap with [word.Start, word.End] after applying
// offsetS; a word with zero overlap with every segment is left unassigned
// rather than erroring.
func AssignSpeakers(words []WordSpan, segments []DiarSpan, offsetS float64) []WordWithSpeaker {
	out := make([]WordWithSpeaker, 0, len(words))
	for _, w := range words {
		var best string
		var maxOverlap float64
		for _, seg := range segments {
			overlapStart := max(w.Start, seg.Start+offsetS)
			overlapEnd := min(w.End, seg.End+offsetS)
			overlap := overlapEnd - overlapStart
			if overlap < 0 {
				overlap = 0
			}
			if overlap > maxOverlap {
				maxOverlap = overlap
				best = seg.Speaker
			}
		}
		out = append(out, WordWithSpeaker{WordSpan: w, Speaker: best})
	}
	return out
}
