package dot11

import (
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// layerFrame exposes a gopacket layer stack, starting at layers[0], as a Frame.
type layerFrame struct {
	layers []gopacket.Layer
}

// FromPacket returns a Frame over the decoded layers of p, outermost first.
// A radiotap or PPI header in front of the 802.11 header is unwrapped by
// Resolve like any other encapsulation. It returns nil for a packet with no
// layers.
func FromPacket(p gopacket.Packet) Frame {
	return fromLayers(p.Layers())
}

// FromDot11 returns a Frame over a decoded 802.11 layer.
func FromDot11(d *layers.Dot11) Frame {
	if d == nil {
		return nil
	}
	return fromLayers([]gopacket.Layer{d})
}

func fromLayers(ls []gopacket.Layer) Frame {
	if len(ls) == 0 {
		return nil
	}
	return &layerFrame{layers: ls}
}

func (f *layerFrame) dot11() (*layers.Dot11, bool) {
	d, ok := f.layers[0].(*layers.Dot11)
	return d, ok
}

// FrameControl implements Frame.
func (f *layerFrame) FrameControl() (uint8, bool) {
	d, ok := f.dot11()
	if !ok {
		return 0, false
	}
	return uint8(d.Flags), true
}

// Address implements Frame.
func (f *layerFrame) Address(s Slot) (net.HardwareAddr, bool) {
	d, ok := f.dot11()
	if !ok {
		return nil, false
	}

	var addr net.HardwareAddr
	switch s {
	case Slot1:
		addr = d.Address1
	case Slot2:
		addr = d.Address2
	case Slot3:
		addr = d.Address3
	case Slot4:
		addr = d.Address4
	}

	return addr, len(addr) == 6
}

// Payload implements Frame.
func (f *layerFrame) Payload() Frame {
	return fromLayers(f.layers[1:])
}
