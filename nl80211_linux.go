//go:build linux
// +build linux

package wlan

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sort"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"
)

var (
	// errNoFrequency is returned when nl80211 reports no operating frequency
	// for an interface, for example when it is down.
	errNoFrequency = errors.New("nl80211 reported no frequency")
)

// An nl80211Transport is a Transport which makes use of netlink, generic
// netlink, and nl80211 to read and tune WiFi interfaces.
type nl80211Transport struct {
	c             *genetlink.Conn
	familyID      uint16
	familyVersion uint8
}

// nlInterface is the subset of an nl80211 interface used for tuning.
type nlInterface struct {
	Index        int
	Name         string
	HardwareAddr net.HardwareAddr
	PHY          int
	Frequency    int
}

// newNL80211Transport dials a generic netlink connection and verifies that
// nl80211 is available for use by this package.
func newNL80211Transport() (Transport, error) {
	c, err := genetlink.Dial(nil)
	if err != nil {
		return nil, err
	}

	// Make a best effort to apply the strict options set to provide better
	// errors and validation.
	for _, o := range []netlink.ConnOption{
		netlink.ExtendedAcknowledge,
		netlink.GetStrictCheck,
	} {
		_ = c.SetOption(o, true)
	}

	t, err := initNL80211Transport(c)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func initNL80211Transport(c *genetlink.Conn) (*nl80211Transport, error) {
	family, err := c.GetFamily(unix.NL80211_GENL_NAME)
	if err != nil {
		// Ensure the genl socket is closed on error to avoid leaking file
		// descriptors.
		_ = c.Close()
		return nil, err
	}

	return &nl80211Transport{
		c:             c,
		familyID:      family.ID,
		familyVersion: family.Version,
	}, nil
}

// Close closes the transport's generic netlink connection.
func (t *nl80211Transport) Close() error { return t.c.Close() }

// get performs a request/response interaction with nl80211.
func (t *nl80211Transport) get(
	cmd uint8,
	flags netlink.HeaderFlags,
	ifi *nlInterface,
	// May be nil; used to apply optional parameters.
	params func(ae *netlink.AttributeEncoder),
) ([]genetlink.Message, error) {
	ae := netlink.NewAttributeEncoder()
	ifi.encode(ae)
	if params != nil {
		params(ae)
	}

	b, err := ae.Encode()
	if err != nil {
		return nil, err
	}

	return t.c.Execute(
		genetlink.Message{
			Header: genetlink.Header{
				Command: cmd,
				Version: t.familyVersion,
			},
			Data: b,
		},
		// Always pass the genetlink family ID and request flag.
		t.familyID,
		netlink.Request|flags,
	)
}

// interfaces asks nl80211 for every WiFi interface on the system.
func (t *nl80211Transport) interfaces() ([]*nlInterface, error) {
	msgs, err := t.get(
		unix.NL80211_CMD_GET_INTERFACE,
		netlink.Dump,
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return parseInterfaces(msgs)
}

func (t *nl80211Transport) interfaceByName(name string) (*nlInterface, error) {
	ifis, err := t.interfaces()
	if err != nil {
		return nil, err
	}

	for _, ifi := range ifis {
		if ifi.Name == name {
			return ifi, nil
		}
	}

	return nil, fmt.Errorf("no nl80211 interface %q: %w", name, os.ErrNotExist)
}

// InterfaceState queries the interface's address over the ioctl control
// socket, since nl80211 does not track IP addresses.
func (t *nl80211Transport) InterfaceState(name string) InterfaceState {
	return checkInterface(name)
}

func (t *nl80211Transport) Frequency(name string) (int, error) {
	ifi, err := t.interfaceByName(name)
	if err != nil {
		return 0, err
	}
	if ifi.Frequency == 0 {
		return 0, errNoFrequency
	}

	return ifi.Frequency, nil
}

// SetChannel tunes the interface's wiphy to a 20MHz channel. nl80211 only
// acknowledges the request, so the echoed channel is read back from the
// interface.
func (t *nl80211Transport) SetChannel(name string, channel int) (int, error) {
	freq, ok := FrequencyForChannel(channel)
	if !ok {
		return 0, ErrInvalidChannel
	}

	ifi, err := t.interfaceByName(name)
	if err != nil {
		return 0, err
	}

	_, err = t.get(
		unix.NL80211_CMD_SET_WIPHY,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Uint32(unix.NL80211_ATTR_WIPHY_FREQ, uint32(freq))
			ae.Uint32(unix.NL80211_ATTR_CHANNEL_WIDTH, unix.NL80211_CHAN_WIDTH_20_NOHT)
			ae.Uint32(unix.NL80211_ATTR_CENTER_FREQ1, uint32(freq))
		},
	)
	if err != nil {
		return 0, err
	}

	now, err := t.Frequency(name)
	if err != nil {
		return 0, err
	}

	// An unmapped frequency echoes as channel 0, which never confirms.
	echoed, _ := ChannelForFrequency(now)
	return echoed, nil
}

// Siblings returns the names of all interfaces on the same wiphy as name,
// including name itself.
func (t *nl80211Transport) Siblings(name string) ([]string, error) {
	ifis, err := t.interfaces()
	if err != nil {
		return nil, err
	}

	phy := -1
	for _, ifi := range ifis {
		if ifi.Name == name {
			phy = ifi.PHY
			break
		}
	}
	if phy < 0 {
		return nil, fmt.Errorf("no nl80211 interface %q: %w", name, os.ErrNotExist)
	}

	var names []string
	for _, ifi := range ifis {
		if ifi.PHY == phy {
			names = append(names, ifi.Name)
		}
	}
	sort.Strings(names)

	return names, nil
}

// parseInterfaces parses zero or more interfaces from nl80211 interface
// messages.
func parseInterfaces(msgs []genetlink.Message) ([]*nlInterface, error) {
	ifis := make([]*nlInterface, 0, len(msgs))
	for _, m := range msgs {
		attrs, err := netlink.UnmarshalAttributes(m.Data)
		if err != nil {
			return nil, err
		}

		var ifi nlInterface
		if err := (&ifi).parseAttributes(attrs); err != nil {
			return nil, err
		}

		ifis = append(ifis, &ifi)
	}

	return ifis, nil
}

// encode provides an encoding function for ifi's attributes. If ifi is nil,
// encode is a no-op.
func (ifi *nlInterface) encode(ae *netlink.AttributeEncoder) {
	if ifi == nil {
		return
	}

	// Mandatory.
	ae.Uint32(unix.NL80211_ATTR_IFINDEX, uint32(ifi.Index))
}

// parseAttributes parses netlink attributes into an interface's fields.
func (ifi *nlInterface) parseAttributes(attrs []netlink.Attribute) error {
	for _, a := range attrs {
		switch a.Type {
		case unix.NL80211_ATTR_IFINDEX:
			ifi.Index = int(nlenc.Uint32(a.Data))
		case unix.NL80211_ATTR_IFNAME:
			ifi.Name = nlenc.String(a.Data)
		case unix.NL80211_ATTR_MAC:
			ifi.HardwareAddr = net.HardwareAddr(a.Data)
		case unix.NL80211_ATTR_WIPHY:
			ifi.PHY = int(nlenc.Uint32(a.Data))
		case unix.NL80211_ATTR_WIPHY_FREQ:
			ifi.Frequency = int(nlenc.Uint32(a.Data))
		}
	}

	return nil
}
