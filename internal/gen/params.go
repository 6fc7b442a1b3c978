package gen

import (
	"fmt"

	"blocksynth/internal/model"
)

const (
	defaultBlockCap = 5
	defaultNoiseStd = 1.0
)

// Normalize validates p and returns a defaulted copy. The input is never
// mutated; on failure the returned error names the offending field.
func Normalize(p model.Parameters) (model.Parameters, error) {
	if p.Samples <= 0 {
		return model.Parameters{}, &ValidationError{Field: "samples", Reason: "must be > 0"}
	}
	if p.XFeatures <= 0 {
		return model.Parameters{}, &ValidationError{Field: "xfeatures", Reason: "must be > 0"}
	}
	if p.YFeatures <= 0 {
		return model.Parameters{}, &ValidationError{Field: "yfeatures", Reason: "must be > 0"}
	}

	if p.Association == "" {
		p.Association = model.AssociationLine
	}
	if !p.Association.Valid() {
		return model.Parameters{}, &ValidationError{
			Field:  "association",
			Reason: fmt.Sprintf("unknown type %q", p.Association),
		}
	}
	if p.Distribution == "" {
		p.Distribution = model.DistributionUniform
	}
	if !p.Distribution.Valid() {
		return model.Parameters{}, &ValidationError{
			Field:  "distribution",
			Reason: fmt.Sprintf("unknown distribution %q", p.Distribution),
		}
	}

	minFeatures := min(p.XFeatures, p.YFeatures)
	if p.Blocks < 0 {
		p.Blocks = min(defaultBlockCap, minFeatures/2)
	}
	if p.Blocks < 1 || p.Blocks > minFeatures {
		return model.Parameters{}, &ValidationError{
			Field:  "blocks",
			Reason: fmt.Sprintf("must be in [1, min(xfeatures, yfeatures)] = [1, %d]", minFeatures),
		}
	}

	if p.NoiseWithin < 0 || p.NoiseWithin > 1 {
		return model.Parameters{}, &ValidationError{Field: "noise_within", Reason: "must be in [0, 1]"}
	}
	if p.NoiseBetween < 0 || p.NoiseBetween > 1 {
		return model.Parameters{}, &ValidationError{Field: "noise_between", Reason: "must be in [0, 1]"}
	}

	if p.NoiseWithinStd == 0 {
		p.NoiseWithinStd = defaultNoiseStd
	}
	if p.NoiseBetweenStd == 0 {
		p.NoiseBetweenStd = defaultNoiseStd
	}
	if p.NoiseWithinStd < 0 {
		return model.Parameters{}, &ValidationError{Field: "noise_within_std", Reason: "must be >= 0"}
	}
	if p.NoiseBetweenStd < 0 {
		return model.Parameters{}, &ValidationError{Field: "noise_between_std", Reason: "must be >= 0"}
	}

	return p, nil
}
