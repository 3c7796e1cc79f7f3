package service

import "strings"

// ValidationError reports a rejected create or update with a stable code
// the CLI can branch on.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

const (
	ErrCodeEmptyName      = "EMPTY_NAME"
	ErrCodeInvalidSize    = "INVALID_SIZE"
	ErrCodeInvalidDate    = "INVALID_DATE"
	ErrCodeBadCapacity    = "BAD_CAPACITY"
	ErrCodeNegativeCost   = "NEGATIVE_COST"
	ErrCodeSelfDependency = "SELF_DEPENDENCY"
	ErrCodeCycle          = "DEPENDENCY_CYCLE"
)

// InUseError reports a delete refused because other records still point at
// the target. Names identifies them for the error message.
type InUseError struct {
	Kind  string
	Names []string
}

func (e *InUseError) Error() string {
	return e.Kind + " is still referenced by: " + strings.Join(e.Names, ", ") + " (use --force to override)"
}
