package application

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is the cause reported when the target file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// StdoutPath names the output stream in IOError.
const StdoutPath = "<stdout>"

// IOError reports a failure to read the target file or write results.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
