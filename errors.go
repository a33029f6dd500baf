package wlan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChannel is returned when a requested channel is neither a
	// channel in 1-14 nor the center frequency of one.
	ErrInvalidChannel = errors.New("channel out of range")

	// ErrUnsupportedOS is returned by every operation on hosts without a
	// wireless extension control transport.
	ErrUnsupportedOS = errors.New("OS not supported")

	// ErrChannelNotApplied is returned when the driver did not report the
	// requested channel after a set.
	ErrChannelNotApplied = errors.New("channel change not applied")
)

// An InterfaceStateError is returned when an operation is refused because the
// interface does not exist or its state could not be read. No driver request
// is made.
type InterfaceStateError struct {
	Interface string
	State     InterfaceState
}

func (e *InterfaceStateError) Error() string {
	return fmt.Sprintf("interface %s: %s", e.Interface, e.State)
}

// Unwrap returns ErrUnsupportedOS for StateUnsupportedOS.
func (e *InterfaceStateError) Unwrap() error {
	if e.State == StateUnsupportedOS {
		return ErrUnsupportedOS
	}
	return nil
}

// A TransportError is returned when the driver rejected a control request.
type TransportError struct {
	Op        string
	Interface string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Interface, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// An UnmappableFrequencyError is returned when an interface is tuned to a
// frequency outside the 2.4GHz channel table. Frequency holds the raw value.
type UnmappableFrequencyError struct {
	Interface string
	Frequency int
}

func (e *UnmappableFrequencyError) Error() string {
	return fmt.Sprintf("interface %s: frequency %d MHz has no 2.4GHz channel", e.Interface, e.Frequency)
}

// An UnknownChannelError is returned when the driver reports its tuning as a
// channel number outside the 2.4GHz channel table, so no frequency is known.
type UnknownChannelError struct {
	Interface string
	Channel   int
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("interface %s: driver reported channel %d, which has no 2.4GHz frequency", e.Interface, e.Channel)
}
