package wlan

import (
	"os"
	"path/filepath"
)

// defaultSysfsRoot is where sysfs is mounted.
const defaultSysfsRoot = "/sys"

// A sysfsSiblings lists the network interfaces registered by the device
// behind an interface's wiphy, as published under
// /sys/class/net/<name>/phy80211/device/net.
type sysfsSiblings struct {
	root string
}

// Siblings returns the interfaces sharing name's radio, sorted by name. An
// interface with no wiphy returns an error satisfying os.IsNotExist.
func (s sysfsSiblings) Siblings(name string) ([]string, error) {
	dir := filepath.Join(s.root, "class", "net", name, "phy80211", "device", "net")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}
