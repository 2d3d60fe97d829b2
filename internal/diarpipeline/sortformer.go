package diarpipeline

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// ParseSortformerStrings normalizes the whitespace-delimited "start end
// speaker" string format a Sortformer model may emit, per §4.5 step 5.
// Lines with fewer than 3 fields are skipped rather than erroring, mirroring
// backend.py's _sortformer_segments_to_dicts tolerance for malformed
// entries mixed into an otherwise well-formed batch.
func ParseSortformerStrings(lines []string) ([]modelspec.DiarSegment, error) {
	var segments []modelspec.DiarSegment
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		start, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing start in %q", line)
		}
		end, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing end in %q", line)
		}
		segments = append(segments, modelspec.DiarSegment{
			Start:      start,
			End:        end,
			Speaker:    parts[2],
			Confidence: 1.0,
		})
	}
	return sortByStart(segments), nil
}

// NormalizeSortformerItems normalizes the raw "items" payload a Sortformer
// backend returns, per §4.5 step 5: a list containing a single nested list,
// or a flat list of items, where each item is a whitespace-delimited
// "start end speaker" string, a 3-tuple (plus optional confidence), or a
// mapping with start/end/speaker (or label)/confidence. Mirrors
// backend.py's _sortformer_segments_to_dicts dispatch.
func NormalizeSortformerItems(raw json.RawMessage) ([]modelspec.DiarSegment, error) {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "decoding sortformer items")
	}
	if len(items) == 1 {
		if nested, ok := items[0].([]any); ok {
			items = nested
		}
	}

	if allStrings(items) {
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = item.(string)
		}
		return ParseSortformerStrings(lines)
	}

	var segments []modelspec.DiarSegment
	for i, item := range items {
		seg, ok, err := normalizeSortformerItem(item, i)
		if err != nil {
			return nil, err
		}
		if ok {
			segments = append(segments, seg)
		}
	}
	return sortByStart(segments), nil
}

func allStrings(items []any) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}

func normalizeSortformerItem(item any, idx int) (modelspec.DiarSegment, bool, error) {
	switch v := item.(type) {
	case string:
		parts := strings.Fields(v)
		if len(parts) < 3 {
			return modelspec.DiarSegment{}, false, nil
		}
		start, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return modelspec.DiarSegment{}, false, errors.Wrapf(err, "parsing start in %q", v)
		}
		end, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return modelspec.DiarSegment{}, false, errors.Wrapf(err, "parsing end in %q", v)
		}
		return modelspec.DiarSegment{Start: start, End: end, Speaker: parts[2], Confidence: 1.0}, true, nil

	case []any:
		if len(v) < 3 {
			return modelspec.DiarSegment{}, false, nil
		}
		start, ok1 := toFloat(v[0])
		end, ok2 := toFloat(v[1])
		speaker, ok3 := v[2].(string)
		if !ok1 || !ok2 || !ok3 {
			return modelspec.DiarSegment{}, false, nil
		}
		confidence := 1.0
		if len(v) > 3 {
			if c, ok := toFloat(v[3]); ok {
				confidence = c
			}
		}
		return modelspec.DiarSegment{Start: start, End: end, Speaker: speaker, Confidence: confidence}, true, nil

	case map[string]any:
		start, ok1 := toFloat(v["start"])
		end, ok2 := toFloat(v["end"])
		if !ok1 || !ok2 {
			return modelspec.DiarSegment{}, false, nil
		}
		speaker, _ := v["speaker"].(string)
		if speaker == "" {
			speaker, _ = v["label"].(string)
		}
		if speaker == "" {
			speaker = fmt.Sprintf("speaker_%d", idx)
		}
		confidence := 1.0
		if c, ok := toFloat(v["confidence"]); ok {
			confidence = c
		}
		return modelspec.DiarSegment{Start: start, End: end, Speaker: speaker, Confidence: confidence}, true, nil

	default:
		return modelspec.DiarSegment{}, false, nil
	}
}

func toFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
