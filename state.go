package wlan

import "fmt"

// An InterfaceState is the outcome of probing a network interface for its
// address.
type InterfaceState int

const (
	// StateUnknown indicates the address query failed for a reason other than the
	// interface's existence or address.
	StateUnknown InterfaceState = iota

	// StateHasAddress indicates the interface exists and has an IPv4 address.
	StateHasAddress

	// StateNoAddress indicates the interface exists but has no IPv4 address.
	StateNoAddress

	// StateNotExist indicates there is no interface with the given name.
	StateNotExist

	// StateUnsupportedOS indicates the host has no wireless extension control
	// transport.
	StateUnsupportedOS
)

// Exists reports whether s shows the interface is present, regardless of its
// address.
func (s InterfaceState) Exists() bool {
	return s == StateHasAddress || s == StateNoAddress
}

// String returns the string representation of an InterfaceState.
func (s InterfaceState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateHasAddress:
		return "has address"
	case StateNoAddress:
		return "no address"
	case StateNotExist:
		return "does not exist"
	case StateUnsupportedOS:
		return "unsupported OS"
	default:
		return fmt.Sprintf("InterfaceState(%d)", int(s))
	}
}
