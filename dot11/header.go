package dot11

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// ParseHeader decodes a raw 802.11 frame, as captured without a radiotap
// header, into a Frame. b must end with the 4 byte FCS.
func ParseHeader(b []byte) (Frame, error) {
	d := &layers.Dot11{}
	if err := d.DecodeFromBytes(b, gopacket.NilDecodeFeedback); err != nil {
		return nil, err
	}
	return FromDot11(d), nil
}
