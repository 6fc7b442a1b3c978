package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"blocksynth/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// CurrentVersion stamps a record with the versions this codec writes.
func CurrentVersion() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}

func EncodeRun(run model.GenerationRun) ([]byte, error) {
	return json.Marshal(run)
}

func DecodeRun(data []byte) (model.GenerationRun, error) {
	var run model.GenerationRun
	if err := json.Unmarshal(data, &run); err != nil {
		return model.GenerationRun{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.GenerationRun{}, err
	}
	return run, nil
}

func checkVersion(rec model.VersionedRecord) error {
	if rec.SchemaVersion != CurrentSchemaVersion || rec.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, rec.SchemaVersion, rec.CodecVersion)
	}
	return nil
}
