package ssd1322

import (
	"errors"
	"fmt"
)

// Driver state errors.
var (
	ErrNotReady    = errors.New("ssd1322: not initialized")
	ErrHalted      = errors.New("ssd1322: halted")
	ErrInvalidSize = errors.New("ssd1322: invalid buffer size")
	ErrInvalidPin  = errors.New("ssd1322: dc and rst pins are required")
)

// TransportError reports a failed bus write. Op names the step that was being
// sent when the bus failed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ssd1322: transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
