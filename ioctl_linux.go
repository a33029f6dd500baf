//go:build linux
// +build linux

package wlan

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/josharian/native"
	"golang.org/x/sys/unix"
)

// Wireless extension requests, from linux/wireless.h.
const (
	siocSIWFREQ = 0x8B04
	siocGIWFREQ = 0x8B05
)

// iwreqSize is the size of struct iwreq: an IFNAMSIZ name buffer followed by
// the 16 byte union iwreq_data.
const iwreqSize = unix.IFNAMSIZ + 16

// iwFreq mirrors struct iw_freq, the iwreq_data member used by the frequency
// requests. The value is m * 10^e Hz, or a channel number when e is 0 and m
// is at most 1000.
type iwFreq struct {
	M     int32
	E     int16
	I     uint8
	Flags uint8
}

// Exponents a driver may report with a frequency mantissa. Beyond 10^9 the
// value no longer fits a radio frequency in MHz.
const (
	minFreqExponent = 0
	maxFreqExponent = 9
)

// megahertz returns the frequency f describes in MHz. A channel number
// outside the table yields an *UnknownChannelError.
func (f iwFreq) megahertz() (int, error) {
	if f.E == 0 && f.M <= 1000 {
		freq, ok := FrequencyForChannel(int(f.M))
		if !ok {
			return 0, &UnknownChannelError{Channel: int(f.M)}
		}
		return freq, nil
	}
	if f.E < minFreqExponent || f.E > maxFreqExponent {
		return 0, fmt.Errorf("driver reported frequency %de%d outside the supported exponent range", f.M, f.E)
	}

	v := int64(f.M)
	for e := f.E; e != 6; {
		if e > 6 {
			v *= 10
			e--
		} else {
			v /= 10
			e++
		}
	}

	return int(v), nil
}

// packIwreq lays out an iwreq carrying f for the interface name. Names are
// truncated to fit the NUL terminated buffer.
func packIwreq(name string, f iwFreq) [iwreqSize]byte {
	var b [iwreqSize]byte
	copy(b[:unix.IFNAMSIZ-1], name)

	native.Endian.PutUint32(b[unix.IFNAMSIZ:], uint32(f.M))
	native.Endian.PutUint16(b[unix.IFNAMSIZ+4:], uint16(f.E))
	b[unix.IFNAMSIZ+6] = f.I
	b[unix.IFNAMSIZ+7] = f.Flags

	return b
}

// unpackIwFreq reads the iw_freq member of an iwreq.
func unpackIwFreq(b [iwreqSize]byte) iwFreq {
	return iwFreq{
		M:     int32(native.Endian.Uint32(b[unix.IFNAMSIZ:])),
		E:     int16(native.Endian.Uint16(b[unix.IFNAMSIZ+4:])),
		I:     b[unix.IFNAMSIZ+6],
		Flags: b[unix.IFNAMSIZ+7],
	}
}

// controlSocket opens the datagram socket used to address ioctls to the
// networking stack. Callers close it after a single request.
func controlSocket() (int, error) {
	return unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
}

// truncateName shortens name to fit an IFNAMSIZ buffer.
func truncateName(name string) string {
	if len(name) >= unix.IFNAMSIZ {
		return name[:unix.IFNAMSIZ-1]
	}
	return name
}

// checkInterface classifies name by asking for its IPv4 address.
func checkInterface(name string) InterfaceState {
	fd, err := controlSocket()
	if err != nil {
		return StateUnknown
	}
	defer unix.Close(fd)

	ifr, err := unix.NewIfreq(truncateName(name))
	if err != nil {
		return StateUnknown
	}

	switch err := unix.IoctlIfreq(fd, unix.SIOCGIFADDR, ifr); {
	case err == nil:
		return StateHasAddress
	case errors.Is(err, unix.EADDRNOTAVAIL):
		return StateNoAddress
	case errors.Is(err, unix.ENODEV):
		return StateNotExist
	default:
		return StateUnknown
	}
}

// iwreqIoctl issues a wireless extension request; the kernel writes its
// reply into b.
func iwreqIoctl(req uintptr, b *[iwreqSize]byte) error {
	fd, err := controlSocket()
	if err != nil {
		return err
	}
	defer unix.Close(fd)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(&b[0])))
	if errno != 0 {
		return errno
	}
	return nil
}

// A wextTransport drives an interface through the wireless extension ioctls.
type wextTransport struct{}

func newWextTransport() Transport { return wextTransport{} }

func (wextTransport) InterfaceState(name string) InterfaceState { return checkInterface(name) }

func (wextTransport) Frequency(name string) (int, error) {
	b := packIwreq(name, iwFreq{})
	if err := iwreqIoctl(siocGIWFREQ, &b); err != nil {
		return 0, err
	}
	return unpackIwFreq(b).megahertz()
}

func (wextTransport) SetChannel(name string, channel int) (int, error) {
	b := packIwreq(name, iwFreq{M: int32(channel)})
	if err := iwreqIoctl(siocSIWFREQ, &b); err != nil {
		return 0, err
	}
	return int(unpackIwFreq(b).M), nil
}
