package asrpipeline

import (
	"strings"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// wordTiming is a word with float timing, produced before segment/global
// indices are assigned.
type wordTiming struct {
	word  string
	start float64
	end   float64
}

// deriveWordTimings produces word-level timing for one chunk's recognize
// result. It prefers model-supplied tokens/timestamps (space-prefix
// heuristic: a token beginning with ' ' starts a new word; otherwise it
// extends the current word), falling back to character-length-proportional
// interpolation across (chunkStart, chunkEnd); see
// word_timestamps_from_segment in asr_engine/timestamps.py for the exact
// interpolation formula this mirrors. In either case the last word's end
// is clamped to chunkEnd.
func deriveWordTimings(result RecognizeResult, chunkStart, chunkEnd float64) []wordTiming {
	if result.Timed != nil && len(result.Timed.Tokens) > 0 && len(result.Timed.Timestamps) == len(result.Timed.Tokens) {
		return wordsFromTokens(result.Timed.Tokens, result.Timed.Timestamps, chunkStart, chunkEnd)
	}
	text := result.Text
	if result.Timed != nil {
		text = result.Timed.Text
	}
	return interpolateWordTimings(text, chunkStart, chunkEnd)
}

func wordsFromTokens(tokens []string, timestamps []float64, chunkStart, chunkEnd float64) []wordTiming {
	var out []wordTiming
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		startsNewWord := strings.HasPrefix(tok, " ") || i == 0
		trimmed := strings.TrimPrefix(tok, " ")
		if trimmed == "" {
			continue
		}
		if startsNewWord || len(out) == 0 {
			out = append(out, wordTiming{word: trimmed, start: chunkStart + timestamps[i], end: chunkStart + timestamps[i]})
		} else {
			last := &out[len(out)-1]
			last.word += trimmed
		}
		if i < len(timestamps) {
			out[len(out)-1].end = chunkStart + timestamps[i]
		}
	}
	if len(out) > 0 {
		out[len(out)-1].end = chunkEnd
	}
	return out
}

// interpolateWordTimings is the Go mirror of
// word_timestamps_from_segment: each word's duration is proportional to
// max(1, len(word)) over the total, accumulated left to right from
// chunkStart; the final word's end is force-set to chunkEnd regardless of
// accumulated rounding error.
func interpolateWordTimings(text string, chunkStart, chunkEnd float64) []wordTiming {
	words := strings.Fields(text)
	if chunkEnd <= chunkStart || len(words) == 0 {
		return nil
	}

	dur := chunkEnd - chunkStart
	lengths := make([]float64, len(words))
	total := 0.0
	for i, w := range words {
		l := float64(len(w))
		if l < 1 {
			l = 1
		}
		lengths[i] = l
		total += l
	}

	out := make([]wordTiming, len(words))
	t := chunkStart
	for i, w := range words {
		wDur := dur * (lengths[i] / total)
		out[i] = wordTiming{word: w, start: t, end: t + wDur}
		t += wDur
	}
	out[len(out)-1].end = chunkEnd
	return out
}

// splitIntoSegmentsAndWords splits a run of words into sub-segments,
// terminating a segment when the current word ends with '.', '!', or '?',
// or when the time gap to the next word meets or exceeds segmentGapS
// (§4.4 step 5), and emits each word with dense 1-based
// (segment_index, word_index_in_segment, global_word_index) per I6.
// baseSegmentIndex/baseGlobalWordIndex let callers continue numbering
// across chunk boundaries.
func splitIntoSegmentsAndWords(words []wordTiming, segmentGapS *float64, baseSegmentIndex, baseGlobalWordIndex int) ([]modelspec.Segment, []modelspec.Word) {
	var segments []modelspec.Segment
	var allWords []modelspec.Word
	var cur []wordTiming

	segmentIndex := baseSegmentIndex
	globalWordIndex := baseGlobalWordIndex

	flush := func() {
		if len(cur) == 0 {
			return
		}
		segmentIndex++
		text := strings.Join(wordsToStrings(cur), " ")
		segments = append(segments, modelspec.Segment{
			Text:  text,
			Start: cur[0].start,
			End:   cur[len(cur)-1].end,
		})
		for wi, w := range cur {
			globalWordIndex++
			allWords = append(allWords, modelspec.Word{
				Word:               w.word,
				Start:              w.start,
				End:                w.end,
				SegmentIndex:       segmentIndex,
				GlobalWordIndex:    globalWordIndex,
				WordIndexInSegment: wi + 1,
			})
		}
		cur = nil
	}

	for i, w := range words {
		cur = append(cur, w)
		endsSentence := strings.HasSuffix(w.word, ".") || strings.HasSuffix(w.word, "!") || strings.HasSuffix(w.word, "?")
		gapHit := false
		if segmentGapS != nil && i+1 < len(words) {
			gap := words[i+1].start - w.end
			if gap >= *segmentGapS {
				gapHit = true
			}
		}
		if endsSentence || gapHit {
			flush()
		}
	}
	flush()
	return segments, allWords
}

func wordsToStrings(words []wordTiming) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.word
	}
	return out
}
