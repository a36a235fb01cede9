package adapter

import "errors"

var (
	ErrEmptyAddress   = errors.New("empty server address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
)
