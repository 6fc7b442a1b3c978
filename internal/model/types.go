package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Association names the functional form linking a block's X and Y features.
type Association string

const (
	AssociationLine     Association = "line"
	AssociationParabola Association = "parabola"
	AssociationLog      Association = "log"
	AssociationMixed    Association = "mixed"
	AssociationSine     Association = "sine"
	AssociationStep     Association = "step"
)

// Valid reports whether a is a recognized configuration value. Recognized
// does not imply generatable: mixed, sine and step carry no transform and
// are rejected at generation time.
func (a Association) Valid() bool {
	switch a {
	case AssociationLine, AssociationParabola, AssociationLog,
		AssociationMixed, AssociationSine, AssociationStep:
		return true
	}
	return false
}

// Distribution names a sampling distribution option.
type Distribution string

const (
	DistributionUniform Distribution = "uniform"
	DistributionNormal  Distribution = "normal"
)

func (d Distribution) Valid() bool {
	return d == DistributionUniform || d == DistributionNormal
}

// BlocksDefault asks the validator to derive the block count as
// min(5, min(xfeatures, yfeatures)/2). An explicit zero is invalid.
const BlocksDefault = -1

// Parameters configures one generation run. Values are supplied once and
// never mutated; normalization returns a defaulted copy.
type Parameters struct {
	Samples         int          `json:"samples"`
	XFeatures       int          `json:"xfeatures"`
	YFeatures       int          `json:"yfeatures"`
	Blocks          int          `json:"blocks"`
	Association     Association  `json:"association"`
	Distribution    Distribution `json:"distribution"`
	NoiseWithin     float64      `json:"noise_within"`
	NoiseBetween    float64      `json:"noise_between"`
	NoiseWithinStd  float64      `json:"noise_within_std"`
	NoiseBetweenStd float64      `json:"noise_between_std"`
}

// Dataset is the complete result of one generation run.
//
// X is XFeatures rows by Samples columns, Y is YFeatures by Samples, and A is
// the XFeatures by YFeatures ground truth: A[i][j] is 1 exactly when X
// feature i and Y feature j were synthesized from the same block.
type Dataset struct {
	Params Parameters
	X      [][]float64
	Y      [][]float64
	A      [][]int

	// Base holds the orthonormal per-block signal rows; XBlocks and YBlocks
	// the block-id to feature-index partitions behind X, Y and A.
	Base    [][]float64
	XBlocks [][]int
	YBlocks [][]int
}

// GenerationRun is the registry record for one completed generation.
type GenerationRun struct {
	VersionedRecord
	ID           string     `json:"id"`
	CreatedAtUTC string     `json:"created_at_utc"`
	Seed         uint64     `json:"seed"`
	Params       Parameters `json:"params"`
	XBlockSizes  []int      `json:"x_block_sizes"`
	YBlockSizes  []int      `json:"y_block_sizes"`
	OutputDir    string     `json:"output_dir,omitempty"`
	Files        []string   `json:"files,omitempty"`
}
