// Package wlan reads and tunes the 2.4GHz channel of wireless network
// interfaces.
//
// Calls are synchronous. Each driver request opens its own control socket,
// and nothing serializes concurrent channel changes to the same radio.
package wlan

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// A Client reads and tunes the channel of WiFi interfaces using operating
// system-specific operations.
type Client struct {
	t        Transport
	siblings SiblingLister
	log      *zap.Logger
}

// An Option configures a Client.
type Option func(c *Client)

// WithTransport makes the Client issue driver requests through t.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.t = t }
}

// WithSiblingLister sets how the interfaces sharing a radio are found for
// SetChannel's airmon fix.
func WithSiblingLister(s SiblingLister) Option {
	return func(c *Client) { c.siblings = s }
}

// WithSysfsRoot lists sibling interfaces from a sysfs tree mounted at root.
func WithSysfsRoot(root string) Option {
	return func(c *Client) { c.siblings = sysfsSiblings{root: root} }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a new Client. By default it uses wireless extension ioctls and
// lists sibling interfaces from /sys.
func New(opts ...Option) *Client {
	c := &Client{
		siblings: sysfsSiblings{root: defaultSysfsRoot},
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.t == nil {
		c.t = newWextTransport()
	}

	return c
}

// Close releases resources held by the Client's transport.
func (c *Client) Close() error {
	if closer, ok := c.t.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// CheckInterface reports whether the named interface exists and has an
// address.
func (c *Client) CheckInterface(name string) InterfaceState {
	return c.t.InterfaceState(name)
}

// requireInterface returns an *InterfaceStateError unless name exists.
func (c *Client) requireInterface(name string) error {
	if s := c.CheckInterface(name); !s.Exists() {
		return &InterfaceStateError{Interface: name, State: s}
	}
	return nil
}

// Frequency returns the frequency in MHz the interface is tuned to. A driver
// reporting a channel number with no known frequency yields an
// *UnknownChannelError.
func (c *Client) Frequency(name string) (int, error) {
	if err := c.requireInterface(name); err != nil {
		return 0, err
	}

	freq, err := c.t.Frequency(name)
	if err != nil {
		var cerr *UnknownChannelError
		if errors.As(err, &cerr) {
			return 0, &UnknownChannelError{Interface: name, Channel: cerr.Channel}
		}
		return 0, &TransportError{Op: "get frequency", Interface: name, Err: err}
	}

	return freq, nil
}

// Channel returns the 2.4GHz channel the interface is tuned to. When the
// frequency is outside the channel table the error is an
// *UnmappableFrequencyError carrying the raw frequency, or an
// *UnknownChannelError when the driver reported only a channel number.
func (c *Client) Channel(name string) (int, error) {
	freq, err := c.Frequency(name)
	if err != nil {
		return 0, err
	}

	ch, ok := ChannelForFrequency(freq)
	if !ok {
		return 0, &UnmappableFrequencyError{Interface: name, Frequency: freq}
	}

	return ch, nil
}

// A ChannelSetting is a channel confirmed on an interface.
type ChannelSetting struct {
	Interface string
	Channel   int
}

// SetChannel tunes the named interface to a channel. value is either a
// channel number in 1-14 or the center frequency of one in MHz.
//
// The change is confirmed by the channel the driver echoes and by reading
// the channel back. With airmonFix set, a change which is not confirmed on
// name is retried on the other interfaces sharing its radio, and the returned
// setting names the interface that accepted it.
func (c *Client) SetChannel(name string, value int, airmonFix bool) (*ChannelSetting, error) {
	channel := value
	if ch, ok := ChannelForFrequency(value); ok {
		channel = ch
	}
	if channel < MinChannel || channel > MaxChannel {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannel, value)
	}

	if err := c.requireInterface(name); err != nil {
		return nil, err
	}

	ifnames := c.candidates(name, airmonFix)

	var err error
	for i, ifname := range ifnames {
		c.log.Debug("setting channel",
			zap.String("interface", ifname),
			zap.Int("channel", channel),
		)

		if err = c.applyChannel(ifname, channel); err == nil {
			return &ChannelSetting{Interface: ifname, Channel: channel}, nil
		}
		if i == len(ifnames)-1 {
			break
		}

		c.log.Warn("channel not applied, trying next interface",
			zap.String("interface", ifname),
			zap.Int("channel", channel),
			zap.Error(err),
		)
	}

	if len(ifnames) == 1 {
		return nil, err
	}
	return nil, fmt.Errorf("%w on any interface sharing %s's radio: %w", ErrChannelNotApplied, name, err)
}

// applyChannel sets channel on ifname and reads it back.
func (c *Client) applyChannel(ifname string, channel int) error {
	echoed, err := c.t.SetChannel(ifname, channel)
	if err != nil {
		return &TransportError{Op: "set channel", Interface: ifname, Err: err}
	}

	now, err := c.Channel(ifname)
	if err != nil {
		return err
	}

	if echoed != channel || now != channel {
		return fmt.Errorf("%w on %s: requested %d, driver echoed %d, interface reads %d",
			ErrChannelNotApplied, ifname, channel, echoed, now)
	}

	return nil
}

// candidates returns the interfaces to try when tuning name: name itself,
// followed by its siblings when airmonFix is set.
func (c *Client) candidates(name string, airmonFix bool) []string {
	ifnames := []string{name}
	if !airmonFix || c.siblings == nil {
		return ifnames
	}

	siblings, err := c.siblings.Siblings(name)
	if err != nil {
		c.log.Debug("no sibling interfaces",
			zap.String("interface", name),
			zap.Error(err),
		)
		return ifnames
	}

	for _, s := range siblings {
		if s != name {
			ifnames = append(ifnames, s)
		}
	}

	return ifnames
}
