package main

import (
	"errors"
)

var (
	ErrInvalidSequenceSeed = errors.New("uuid_sequence must be between 0 and 16383")
	ErrMalformedCommand    = errors.New("malformed command")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrBatchTooBig         = errors.New("requested batch is too big")
)
