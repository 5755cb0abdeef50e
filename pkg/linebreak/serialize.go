package linebreak

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Streams serialize as one tagged JSON record per item. Infinite penalty
// costs and glue stretch are not representable as JSON numbers, so they
// round-trip through the string sentinels "+inf" and "-inf".
type itemRecord struct {
	Type    string `json:"type"`
	Width   float64 `json:"width"`
	Content string `json:"content,omitempty"`
	Stretch any    `json:"stretch,omitempty"`
	Shrink  float64 `json:"shrink,omitempty"`
	Cost    any    `json:"penalty,omitempty"`
	Flagged bool   `json:"flagged,omitempty"`
}

// EncodeStream writes items to w, one record per line.
func EncodeStream(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	for i, it := range items {
		rec := itemRecord{Type: it.Kind.String(), Width: it.Width}
		switch it.Kind {
		case KindBox:
			rec.Content = it.Content
		case KindGlue:
			rec.Stretch = encodeReal(it.Stretch)
			rec.Shrink = it.Shrink
		case KindPenalty:
			rec.Cost = encodeReal(it.Cost)
			rec.Flagged = it.Flagged
		default:
			return &InvariantViolationError{Reason: "unknown item variant"}
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode item %d: %w", i, err)
		}
	}
	return nil
}

// DecodeStream reads a stream of tagged item records from r.
func DecodeStream(r io.Reader) ([]Item, error) {
	var items []Item

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec itemRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("decode item record %d: %w", lineNo, err)
		}

		switch rec.Type {
		case "box":
			items = append(items, Box(rec.Width, rec.Content))
		case "glue":
			stretch, err := decodeReal(rec.Stretch)
			if err != nil {
				return nil, fmt.Errorf("decode item record %d: stretch: %w", lineNo, err)
			}
			items = append(items, Glue(rec.Width, stretch, rec.Shrink))
		case "penalty":
			cost, err := decodeReal(rec.Cost)
			if err != nil {
				return nil, fmt.Errorf("decode item record %d: penalty: %w", lineNo, err)
			}
			items = append(items, Penalty(rec.Width, cost, rec.Flagged))
		default:
			return nil, fmt.Errorf("decode item record %d: unknown type %q", lineNo, rec.Type)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}

	return items, nil
}

func encodeReal(v float64) any {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return v
	}
}

func decodeReal(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return val, nil
	case string:
		switch val {
		case "+inf":
			return math.Inf(1), nil
		case "-inf":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("unknown sentinel %q", val)
	default:
		return 0, fmt.Errorf("unexpected value %v", v)
	}
}
