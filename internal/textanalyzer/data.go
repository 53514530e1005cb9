package textanalyzer

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Data description operations.
const (
	OpSummary    = "summary"
	OpStatistics = "statistics"
)

const sampleSize = 5

// DataDescription describes one piece of data. Result is a variant: exactly
// one of SequenceSummary, SequenceStats, MappingSummary or StringSummary,
// chosen by the runtime shape of the input, or nil when no description
// applies. Error is set instead of Result for unsupported shapes or an
// internal fault.
type DataDescription struct {
	Operation string `json:"operation"`
	Timestamp string `json:"timestamp"`
	DataType  string `json:"data_type"`
	Result    any    `json:"result"`
	Error     string `json:"error,omitempty"`
}

// SequenceSummary describes a list-shaped input.
type SequenceSummary struct {
	Count     int      `json:"count"`
	DataTypes []string `json:"data_types"`
	Sample    []any    `json:"sample"`
}

// SequenceStats holds descriptive statistics for an all-numeric sequence.
type SequenceStats struct {
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// MappingSummary describes a map-shaped input. Keys are listed in
// lexicographic order so the description is deterministic regardless of map
// iteration order.
type MappingSummary struct {
	Keys       []string `json:"keys"`
	KeyCount   int      `json:"key_count"`
	ValueTypes []string `json:"value_types"`
}

// StringSummary describes a string input.
type StringSummary struct {
	Length    int `json:"length"`
	WordCount int `json:"word_count"`
	LineCount int `json:"line_count"`
}

// DescribeData inspects data by its runtime shape and returns a description
// appropriate to it. It never returns an error: unsupported shapes and
// internal faults surface in the Error field of the result.
func DescribeData(data any, operation string) DataDescription {
	desc := DataDescription{
		Operation: operation,
		Timestamp: time.Now().Format(time.RFC3339),
		DataType:  fmt.Sprintf("%T", data),
	}

	if data == nil {
		desc.Error = "unsupported data type: <nil>"
		return desc
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, v.Len())
		for i := range elems {
			elems[i] = v.Index(i).Interface()
		}
		switch operation {
		case OpStatistics:
			stats, err := sequenceStats(elems)
			if err != nil {
				desc.Error = err.Error()
			} else {
				// Mixed-type sequences produce no statistics; the
				// result stays empty rather than erroring.
				desc.Result = stats
			}
		default:
			desc.Result = sequenceSummary(elems)
		}

	case reflect.Map:
		desc.Result = mappingSummary(v)

	case reflect.String:
		s := v.String()
		desc.Result = StringSummary{
			Length:    len([]rune(s)),
			WordCount: len(strings.Fields(s)),
			LineCount: len(strings.Split(s, "\n")),
		}

	default:
		desc.Error = fmt.Sprintf("unsupported data type: %T", data)
	}

	return desc
}

func sequenceSummary(elems []any) SequenceSummary {
	summary := SequenceSummary{
		Count:     len(elems),
		DataTypes: distinctTypeNames(elems),
		Sample:    elems,
	}
	if len(elems) > sampleSize {
		summary.Sample = elems[:sampleSize]
	}
	return summary
}

// sequenceStats reduces an all-numeric sequence. A non-numeric element or an
// empty sequence yields a nil result without an error; only a genuine fault
// during the reduction is reported. The recover is scoped to this reduction
// so programming errors elsewhere still surface normally.
func sequenceStats(elems []any) (result *SequenceStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("statistics failed: %v", r)
		}
	}()

	if len(elems) == 0 {
		return nil, nil
	}

	sum := 0.0
	var minVal, maxVal float64
	for i, elem := range elems {
		n, ok := asNumber(elem)
		if !ok {
			return nil, nil
		}
		if i == 0 || n < minVal {
			minVal = n
		}
		if i == 0 || n > maxVal {
			maxVal = n
		}
		sum += n
	}

	return &SequenceStats{
		Mean:  sum / float64(len(elems)),
		Min:   minVal,
		Max:   maxVal,
		Count: len(elems),
	}, nil
}

func mappingSummary(v reflect.Value) MappingSummary {
	keys := make([]string, 0, v.Len())
	values := make([]any, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		keys = append(keys, fmt.Sprint(iter.Key().Interface()))
		values = append(values, iter.Value().Interface())
	}
	sort.Strings(keys)

	return MappingSummary{
		Keys:       keys,
		KeyCount:   len(keys),
		ValueTypes: distinctTypeNames(values),
	}
}

// distinctTypeNames returns the sorted set of runtime type names among elems.
func distinctTypeNames(elems []any) []string {
	set := make(map[string]bool, len(elems))
	for _, elem := range elems {
		set[fmt.Sprintf("%T", elem)] = true
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
