package main

import (
	"encoding/json"
	"math"
	"os"

	synthapi "blocksynth/pkg/blocksynth"
)

// loadGenerateRequestFromConfig reads a generate request from a loosely-typed
// JSON file. Missing keys keep their zero values; blocks defaults to the
// derived block count when absent.
func loadGenerateRequestFromConfig(path string) (synthapi.GenerateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return synthapi.GenerateRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return synthapi.GenerateRequest{}, err
	}

	req := synthapi.GenerateRequest{Blocks: -1}
	if v, ok := asString(raw["run_id"]); ok {
		req.RunID = v
	}
	if v, ok := asInt(raw["samples"]); ok {
		req.Samples = v
	}
	if v, ok := asInt(raw["xfeatures"]); ok {
		req.XFeatures = v
	}
	if v, ok := asInt(raw["yfeatures"]); ok {
		req.YFeatures = v
	}
	if v, ok := asInt(raw["blocks"]); ok {
		req.Blocks = v
	}
	if v, ok := asString(raw["association"]); ok {
		req.Association = v
	}
	if v, ok := asString(raw["distribution"]); ok {
		req.Distribution = v
	}
	if v, ok := asFloat64(raw["noise_within"]); ok {
		req.NoiseWithin = v
	}
	if v, ok := asFloat64(raw["noise_between"]); ok {
		req.NoiseBetween = v
	}
	if v, ok := asFloat64(raw["noise_within_std"]); ok {
		req.NoiseWithinStd = v
	}
	if v, ok := asFloat64(raw["noise_between_std"]); ok {
		req.NoiseBetweenStd = v
	}
	if v, ok := asUint64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asString(raw["output"]); ok {
		req.OutputDir = v
	}
	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat64(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func asUint64(v any) (uint64, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < 0 {
		return 0, false
	}
	return uint64(f), true
}
