package analysis

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot codec: compact binary encoding of analysis results for export
// to reporting collaborators and offline tooling. JSON remains the
// human-facing representation; msgpack is the wire one.

// EncodeSnapshot serializes a result (Evaluation, IntervalSet, or
// CurveStats) to msgpack.
func EncodeSnapshot(result interface{}) ([]byte, error) {
	b, err := msgpack.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot deserializes a msgpack snapshot into the given result
// pointer.
func DecodeSnapshot(data []byte, result interface{}) error {
	if err := msgpack.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	return nil
}
