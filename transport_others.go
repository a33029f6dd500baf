//go:build !linux
// +build !linux

package wlan

// Wireless extensions and nl80211 only exist on Linux; elsewhere every
// interface reports StateUnsupportedOS.
func newWextTransport() Transport { return unsupportedTransport{} }

func newNL80211Transport() (Transport, error) { return nil, ErrUnsupportedOS }
