package catalog

import "fmt"

// LookupError reports a foreign-key reference that the design requires to
// resolve but that matched nothing. It aborts assembly; no partial catalog
// is returned.
type LookupError struct {
	Relation string
	Key      string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: no match for %q", e.Relation, e.Key)
}

// FieldError reports a raw field that could not be converted to its typed
// representation (a malformed price or quantity). Like LookupError it is
// fatal: the exports are assumed numerically clean and a conversion failure
// signals a corrupted extract.
type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: bad value %q: %v", e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
