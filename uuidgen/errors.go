package uuidgen

import (
	"errors"
)

var (
	ErrNilRegistry       = errors.New("sequence registry isn't set")
	ErrSequenceExhausted = errors.New("all 16384 clock sequences are assigned")
	ErrNoHostAddress     = errors.New("no host address available")
	ErrNoHardwareAddr    = errors.New("no hardware address available")
)
