package dot11

import "net"

// searchDepth is the number of encapsulation layers inspected while looking
// for a frame control field.
const searchDepth = 3

// A Frame is a decoded 802.11 frame, or a wrapper (such as a radiotap header)
// around one.
type Frame interface {
	// FrameControl returns the frame control flags octet. It reports false
	// when this layer carries no frame control field.
	FrameControl() (uint8, bool)

	// Address returns the contents of an address slot. It reports false when
	// the slot is absent from the frame.
	Address(s Slot) (net.HardwareAddr, bool)

	// Payload returns the encapsulated frame, or nil if there is none.
	Payload() Frame
}

// Resolve returns the address holding role r in f. It descends into at most
// three layers of encapsulation looking for a frame control field. The
// result is nil when the flags select no resolvable layout, when the
// indicated address slot is missing, or when no frame control field is found.
func Resolve(f Frame, r Role) net.HardwareAddr {
	for i := 0; i < searchDepth && f != nil; i++ {
		fc, ok := f.FrameControl()
		if !ok {
			f = f.Payload()
			continue
		}

		l, ok := LayoutFor(fc)
		if !ok {
			return nil
		}

		s, ok := l.Slot(r)
		if !ok {
			return nil
		}

		addr, ok := f.Address(s)
		if !ok {
			return nil
		}

		return addr
	}

	return nil
}

// BSSID returns the BSSID carried by f, or nil.
func BSSID(f Frame) net.HardwareAddr { return Resolve(f, RoleBSSID) }

// Source returns the source address carried by f, or nil.
func Source(f Frame) net.HardwareAddr { return Resolve(f, RoleSource) }

// Destination returns the destination address carried by f, or nil.
func Destination(f Frame) net.HardwareAddr { return Resolve(f, RoleDestination) }

// RoleAddresses holds every resolved role of a frame. Unresolved roles are nil.
type RoleAddresses struct {
	BSSID       net.HardwareAddr
	Source      net.HardwareAddr
	Destination net.HardwareAddr
}

// Addresses resolves all roles of f.
func Addresses(f Frame) RoleAddresses {
	return RoleAddresses{
		BSSID:       BSSID(f),
		Source:      Source(f),
		Destination: Destination(f),
	}
}
