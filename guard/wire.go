package guard

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeStatement serializes a statement with msgpack, for shipping to a
// remote execution service or queueing for later execution.
func EncodeStatement(st *Statement) ([]byte, error) {
	data, err := msgpack.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode statement: %w", err)
	}
	return data, nil
}

// DecodeStatement deserializes a statement produced by EncodeStatement.
// Typed arguments come back as msgpack's widest representation (int64,
// float64, string, bool); executors bind them as-is.
func DecodeStatement(data []byte) (*Statement, error) {
	var st Statement
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}
	return &st, nil
}

// EncodeLog serializes a condition log with msgpack, for audit sinks that
// record which conditions and values each statement carried.
func EncodeLog(log []WhereParam) ([]byte, error) {
	data, err := msgpack.Marshal(log)
	if err != nil {
		return nil, fmt.Errorf("encode condition log: %w", err)
	}
	return data, nil
}

// DecodeLog deserializes a condition log produced by EncodeLog.
func DecodeLog(data []byte) ([]WhereParam, error) {
	var log []WhereParam
	if err := msgpack.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("decode condition log: %w", err)
	}
	return log, nil
}
