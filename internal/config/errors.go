package config

import "errors"

var (
	// ErrNotEnoughArguments is returned when the argument list lacks a query or a filename.
	ErrNotEnoughArguments = errors.New("not enough arguments")
	// ErrInvalidSettings is returned when a resolved setting has an unsupported value.
	ErrInvalidSettings = errors.New("invalid settings")
)
