package customerr

import "fmt"

// ValidationError reports an invalid amount, category or granularity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("expense %d not found", e.ID)
}

// DecodeError reports a persisted record that could not be read back.
// Index is -1 when the payload as a whole is malformed.
type DecodeError struct {
	Index  int
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return "decode records: " + e.Reason
	}
	return fmt.Sprintf("decode record %d: %s", e.Index, e.Reason)
}

// PersistError is returned when the in-memory change was applied but could not
// be written to storage.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist after %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
