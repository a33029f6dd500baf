// Package dot11 determines which address field of an 802.11 frame holds the
// BSSID, the source and the destination, based on the ToDS and FromDS bits of
// the frame control flags.
package dot11

import "fmt"

// A Role is the logical meaning of a MAC address carried by a frame.
type Role int

const (
	// RoleBSSID is the address of the access point's basic service set.
	RoleBSSID Role = iota

	// RoleSource is the address of the station which originated the frame.
	RoleSource

	// RoleDestination is the address of the station the frame is meant for.
	RoleDestination
)

// String returns the string representation of a Role.
func (r Role) String() string {
	switch r {
	case RoleBSSID:
		return "bssid"
	case RoleSource:
		return "source"
	case RoleDestination:
		return "destination"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// A Slot identifies one of the address fields of an 802.11 MAC header.
type Slot int

// Address slots, numbered as in the 802.11 MAC header.
const (
	Slot1 Slot = 1
	Slot2 Slot = 2
	Slot3 Slot = 3
	Slot4 Slot = 4
)

// Frame control flag bits, in the order they appear in the second octet of
// the frame control field.
const (
	FlagToDS uint8 = 1 << iota
	FlagFromDS
	FlagMoreFragments
	FlagRetry
	FlagPowerManagement
	FlagMoreData
	FlagProtected
	FlagOrder
)

// A Layout is one of the address field arrangements selected by the ToDS
// and FromDS bits.
type Layout int

const (
	// LayoutNoDS is ToDS=0 FromDS=0: station to station within a BSS, and
	// management frames.
	LayoutNoDS Layout = iota

	// LayoutToDS is ToDS=1 FromDS=0: a station sending through its AP.
	LayoutToDS

	// LayoutFromDS is ToDS=0 FromDS=1: an AP delivering to a station.
	LayoutFromDS

	// LayoutWDS is ToDS=1 FromDS=1: the four address format used between
	// APs. Roles are not resolved for it.
	LayoutWDS
)

// String returns the string representation of a Layout.
func (l Layout) String() string {
	switch l {
	case LayoutNoDS:
		return "no-ds"
	case LayoutToDS:
		return "to-ds"
	case LayoutFromDS:
		return "from-ds"
	case LayoutWDS:
		return "wds"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// frameControlLayouts holds the frame control flag values for which roles are
// resolved. The retry bit is the only other flag accepted, so retransmitted
// frames resolve like their first transmission.
var frameControlLayouts = map[uint8]Layout{
	0:                      LayoutNoDS,
	FlagToDS:               LayoutToDS,
	FlagFromDS:             LayoutFromDS,
	FlagRetry:              LayoutNoDS,
	FlagRetry | FlagToDS:   LayoutToDS,
	FlagRetry | FlagFromDS: LayoutFromDS,
}

// LayoutFor returns the address layout for the frame control flags fc. It
// reports false when fc selects no resolvable layout, which includes the four
// address WDS format.
func LayoutFor(fc uint8) (Layout, bool) {
	l, ok := frameControlLayouts[fc]
	return l, ok
}

// Slot returns the address slot holding role r in layout l. It reports false
// for LayoutWDS and for unknown roles.
func (l Layout) Slot(r Role) (Slot, bool) {
	switch l {
	case LayoutNoDS:
		// DA, SA, BSSID
		switch r {
		case RoleBSSID:
			return Slot3, true
		case RoleSource:
			return Slot2, true
		case RoleDestination:
			return Slot1, true
		}
	case LayoutToDS:
		// BSSID, SA, DA
		switch r {
		case RoleBSSID:
			return Slot1, true
		case RoleSource:
			return Slot2, true
		case RoleDestination:
			return Slot3, true
		}
	case LayoutFromDS:
		// DA, BSSID, SA
		switch r {
		case RoleBSSID:
			return Slot2, true
		case RoleSource:
			return Slot3, true
		case RoleDestination:
			return Slot1, true
		}
	case LayoutWDS:
	}

	return 0, false
}
