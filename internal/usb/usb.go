package usb

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Device represents one enumerated USB device.
type Device struct {
	// VendorID and ProductID are the 4-digit lowercase hex identifiers
	// reported by the device descriptor.
	VendorID  string `json:"vendorId"`
	ProductID string `json:"productId"`

	// SpeedMbps is the negotiated link speed in megabits per second
	// (480 = high speed, 5000 = SuperSpeed).
	SpeedMbps int `json:"speedMbps"`

	// Product is the human-readable product string, when exposed.
	Product string `json:"product,omitempty"`
}

// Enumerator lists attached USB devices.
type Enumerator interface {
	// Devices returns every enumerated device. An empty slice with a nil
	// error means the bus was readable but no devices are attached.
	Devices() ([]Device, error)
}

// DefaultSysfsRoot is where the kernel exposes the USB device tree.
const DefaultSysfsRoot = "/sys/bus/usb/devices"

// SysfsEnumerator reads the USB device tree from sysfs.
type SysfsEnumerator struct {
	// Root overrides DefaultSysfsRoot, used by tests.
	Root string
}

// NewSysfsEnumerator creates an enumerator over the host sysfs tree.
func NewSysfsEnumerator() *SysfsEnumerator {
	return &SysfsEnumerator{Root: DefaultSysfsRoot}
}

// Devices walks the sysfs USB tree and returns one Device per device node.
// Interface nodes (names containing ':') and root hubs without descriptors
// are skipped. Unreadable attribute files skip the node rather than failing
// the walk.
func (e *SysfsEnumerator) Devices() ([]Device, error) {
	root := e.Root
	if root == "" {
		root = DefaultSysfsRoot
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		// "1-2:1.0" style names are interface nodes, not devices.
		if strings.Contains(name, ":") {
			continue
		}

		dir := filepath.Join(root, name)
		vendor, err := readAttr(dir, "idVendor")
		if err != nil {
			continue
		}
		product, err := readAttr(dir, "idProduct")
		if err != nil {
			continue
		}

		dev := Device{
			VendorID:  strings.ToLower(vendor),
			ProductID: strings.ToLower(product),
		}

		if speed, err := readAttr(dir, "speed"); err == nil {
			// The kernel reports fractional speeds for low-speed
			// devices ("1.5"); round down.
			if mbps, err := strconv.ParseFloat(speed, 64); err == nil {
				dev.SpeedMbps = int(mbps)
			}
		}
		if label, err := readAttr(dir, "product"); err == nil {
			dev.Product = label
		}

		devices = append(devices, dev)
	}

	return devices, nil
}

// readAttr reads a single sysfs attribute file and trims the trailing newline.
func readAttr(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
