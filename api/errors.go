package api

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrNoResults  = errors.New("no results found")
	ErrInvalidArg = errors.New("invalid arguments")
	ErrUnexpected = errors.New("unexpected error")
)
