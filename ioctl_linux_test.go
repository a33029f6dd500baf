//go:build linux
// +build linux

package wlan

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/josharian/native"
	"golang.org/x/sys/unix"
)

func TestPackIwreq(t *testing.T) {
	b := packIwreq("wlan0", iwFreq{M: 6})

	if !bytes.Equal(b[:16], append([]byte("wlan0"), make([]byte, 11)...)) {
		t.Fatalf("unexpected name buffer: %v", b[:16])
	}
	if got := native.Endian.Uint32(b[16:20]); got != 6 {
		t.Fatalf("want m 6, got %d", got)
	}
	if !bytes.Equal(b[20:], make([]byte, 12)) {
		t.Fatalf("unexpected trailing bytes: %v", b[20:])
	}
}

func TestPackIwreqLongName(t *testing.T) {
	b := packIwreq("averyverylongname0", iwFreq{})

	if got := string(b[:15]); got != "averyverylongna" {
		t.Fatalf("unexpected truncated name %q", got)
	}
	if b[15] != 0 {
		t.Fatalf("name is not NUL terminated: %v", b[:16])
	}
}

func TestIwFreqRoundTrip(t *testing.T) {
	want := iwFreq{M: 2437, E: 6, I: 1, Flags: 1}
	if diff := cmp.Diff(want, unpackIwFreq(packIwreq("wlan0", want))); diff != "" {
		t.Fatalf("unexpected iw_freq (-want +got):\n%s", diff)
	}
}

func TestIwFreqMegahertz(t *testing.T) {
	tests := []struct {
		name string
		f    iwFreq
		want int
		ok   bool
	}{
		{name: "MHz mantissa", f: iwFreq{M: 2437, E: 6}, want: 2437, ok: true},
		{name: "kHz mantissa", f: iwFreq{M: 2484000, E: 3}, want: 2484, ok: true},
		{name: "GHz mantissa", f: iwFreq{M: 5, E: 9}, want: 5000, ok: true},
		{name: "10Hz mantissa", f: iwFreq{M: 241200000, E: 1}, want: 2412, ok: true},
		{name: "channel number", f: iwFreq{M: 11}, want: 2462, ok: true},
		{name: "unknown channel number", f: iwFreq{M: 36}},
		{name: "huge exponent", f: iwFreq{M: 5, E: 30000}},
		{name: "negative exponent", f: iwFreq{M: 2412, E: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.megahertz()
			if tt.ok && err != nil {
				t.Fatalf("failed to convert: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("expected an error, got %d MHz", got)
				}
				return
			}

			if got != tt.want {
				t.Fatalf("want %d MHz, got %d", tt.want, got)
			}
		})
	}
}

func TestIwFreqUnknownChannel(t *testing.T) {
	_, err := iwFreq{M: 36}.megahertz()

	var cerr *UnknownChannelError
	if !errors.As(err, &cerr) {
		t.Fatalf("want *UnknownChannelError, got %v", err)
	}
	if cerr.Channel != 36 {
		t.Fatalf("want channel 36, got %d", cerr.Channel)
	}
}

func TestCheckInterface(t *testing.T) {
	if _, err := net.InterfaceByName("lo"); err != nil {
		t.Skipf("no loopback interface: %v", err)
	}

	tests := []struct {
		name string
		want InterfaceState
	}{
		{name: "lo", want: StateHasAddress},
		{name: "nosuchif0", want: StateNotExist},
		// Truncated to a name which does not exist either.
		{name: "averyverylongifname0", want: StateNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkInterface(tt.name); got != tt.want {
				t.Fatalf("want state %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClientChannelLoopback(t *testing.T) {
	if _, err := net.InterfaceByName("lo"); err != nil {
		t.Skipf("no loopback interface: %v", err)
	}

	// lo exists but has no wireless extensions.
	_, err := New().Channel("lo")

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("want *TransportError, got %v", err)
	}
	if !errors.Is(err, unix.ENOTTY) {
		t.Fatalf("want ENOTTY from the driver, got %v", err)
	}
}

func TestTruncateName(t *testing.T) {
	if got := truncateName("wlan0"); got != "wlan0" {
		t.Fatalf("short name changed to %q", got)
	}
	if got := truncateName("0123456789abcdefgh"); got != "0123456789abcde" {
		t.Fatalf("unexpected truncated name %q", got)
	}
}
