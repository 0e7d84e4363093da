package interview

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Timing metric key aliases accepted at the boundary. Upstream producers
// disagree on spelling; the first present key wins.
var (
	wpmKeys    = []string{"wordsPerMin", "words_per_min"}
	pauseKeys  = []string{"pauseRatio", "pause_ratio"}
	fillerKeys = []string{"fillerPerMin", "filler_per_min"}
)

// DecodePayload converts a loosely-typed grading request (as decoded from
// JSON) into a typed Payload. Missing fields default to zero values; timing
// metrics accept either of their two key spellings.
func DecodePayload(raw map[string]any) (*Payload, error) {
	var aux struct {
		Transcript string         `json:"transcript"`
		Timings    map[string]any `json:"timings"`
		JobGraph   map[string]any `json:"job_graph"`
	}

	if err := decodeLoose(raw, &aux); err != nil {
		return nil, fmt.Errorf("decode grading payload: %w", err)
	}

	payload := &Payload{
		Transcript: aux.Transcript,
		Timings: Timings{
			WPM:          lookupMetric(aux.Timings, wpmKeys),
			PauseRatio:   lookupMetric(aux.Timings, pauseKeys),
			FillerPerMin: lookupMetric(aux.Timings, fillerKeys),
		},
	}

	if len(aux.JobGraph) > 0 {
		if err := decodeLoose(aux.JobGraph, &payload.JobGraph); err != nil {
			return nil, fmt.Errorf("decode job graph: %w", err)
		}
	}

	return payload, nil
}

func decodeLoose(input any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     result,
		TagName:    "json",
		DecodeHook: requirementHook,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// requirementHook lets bare strings decode into Requirement values, matching
// the flexible JSON contract.
func requirementHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Requirement{}) {
		return data, nil
	}
	if text, ok := data.(string); ok {
		return Requirement{Text: text}, nil
	}
	return data, nil
}

func lookupMetric(timings map[string]any, keys []string) float64 {
	for _, key := range keys {
		if value, ok := timings[key]; ok {
			return coerceFloat(value)
		}
	}
	return 0
}

func coerceFloat(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
