package fifo

import (
	"errors"
	"fmt"
)

// ErrCapacityNotPowerOfTwo reports a capacity that is not a power of two.
var ErrCapacityNotPowerOfTwo = errors.New("capacity must be a power of two")

// ErrBadWordWidth reports a word width outside [1, 64].
var ErrBadWordWidth = errors.New("word width must be between 1 and 64")

// A ConfigError reports an invalid construction-time configuration.
type ConfigError struct {
	QueueName string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("queue %s: invalid configuration: %s",
		e.QueueName, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
