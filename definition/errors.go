package definition

import "errors"

var (
	ErrFormat        = errors.New("definition: unsupported document format")
	ErrMissingName   = errors.New("definition: pattern has no name")
	ErrDuplicateName = errors.New("definition: duplicate pattern name")
	ErrNotFound      = errors.New("definition: pattern not found")
	ErrUnknownOp     = errors.New("definition: unknown op")
	ErrInvalidCount  = errors.New("definition: invalid times value")
	ErrCycle         = errors.New("definition: reference cycle")
)
