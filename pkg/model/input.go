package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// rawSnapshot mirrors the loosely-typed JSON wire shape before decoding
// into the strongly-typed Snapshot, the same split the teacher's
// RawModelInput/ModelInput pair makes for course/professor/room entries.
type rawSnapshot struct {
	Courses     []Course
	Faculty     []Faculty
	Rooms       []Room
	TimeSlots   []TimeSlot
	Constraints []Constraint
}

// SnapshotFromJSON reads and decodes a snapshot from a JSON file.
func SnapshotFromJSON(file string) (Snapshot, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read snapshot file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("cannot parse snapshot json: %w", err)
	}

	return DecodeSnapshot(raw)
}

// DecodeSnapshot decodes a loosely-typed map (already json.Unmarshal'd into
// map[string]any) into a Snapshot via mapstructure, mirroring the teacher's
// InputFromJson/ProcessRawInput split.
func DecodeSnapshot(raw map[string]any) (Snapshot, error) {
	var decoded rawSnapshot
	decoderConfig := &mapstructure.DecoderConfig{
		Result:           &decoded,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot build snapshot decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Snapshot{}, fmt.Errorf("cannot decode snapshot: %w", err)
	}

	return Snapshot{
		Courses:     decoded.Courses,
		Faculty:     decoded.Faculty,
		Rooms:       decoded.Rooms,
		TimeSlots:   decoded.TimeSlots,
		Constraints: decoded.Constraints,
	}, nil
}

// Validate performs the cheap structural checks §7's error taxonomy
// requires before a run begins: an empty course catalog is rejected
// outright (the InputInfeasible boundary case from spec.md §8).
func (s Snapshot) Validate() error {
	if len(s.Courses) == 0 {
		return fmt.Errorf("%w: snapshot carries no courses", ErrInputInfeasible)
	}
	return nil
}
