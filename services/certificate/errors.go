package certificate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when no active certificate matches the lookup.
	// Public paths treat an inactive (revoked) record exactly like a missing one.
	ErrNotFound = errors.New("certificate not found")

	// ErrDuplicateIdentifier signals that the generated certificate ID or
	// verification code collided with an existing row. The lifecycle service
	// retries with a fresh pair; callers never see this directly.
	ErrDuplicateIdentifier = errors.New("duplicate certificate identifier")

	// ErrPersistenceExhausted is returned when issuance keeps colliding after
	// the retry budget is spent.
	ErrPersistenceExhausted = errors.New("certificate identifier generation exhausted retries")

	// ErrImmutableField is returned when an update tries to change the
	// certificate ID or verification code.
	ErrImmutableField = errors.New("certificate identifiers are immutable")
)

// ValidationError carries field-level validation messages, in the same
// map[field]message shape the request validators produce.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
