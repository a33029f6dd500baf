package wlan

// A Transport issues control requests for a wireless interface to the host's
// networking stack. Implementations perform one blocking round trip per call.
type Transport interface {
	// InterfaceState reports whether the named interface exists and has an
	// address.
	InterfaceState(name string) InterfaceState

	// Frequency returns the frequency in MHz the interface is tuned to.
	Frequency(name string) (int, error)

	// SetChannel tunes the interface to a 2.4GHz channel and returns the
	// channel echoed back by the driver.
	SetChannel(name string, channel int) (int, error)
}

// A SiblingLister lists the interfaces sharing a radio with an interface.
type SiblingLister interface {
	Siblings(name string) ([]string, error)
}

// unsupportedTransport is the Transport for hosts without wireless
// extensions. Every interface reports StateUnsupportedOS.
type unsupportedTransport struct{}

func (unsupportedTransport) InterfaceState(string) InterfaceState { return StateUnsupportedOS }

func (unsupportedTransport) Frequency(string) (int, error) { return 0, ErrUnsupportedOS }

func (unsupportedTransport) SetChannel(string, int) (int, error) { return 0, ErrUnsupportedOS }
