// Package fake provides a canned USB enumerator implementation for testing.
package fake

import (
	"github.com/lte-simulator/simctl/internal/usb"
)

// FakeEnumerator implements usb.Enumerator with a fixed device list.
type FakeEnumerator struct {
	DeviceList []usb.Device
	Err        error
}

// NewFakeEnumerator creates a fake enumerator returning the given devices.
func NewFakeEnumerator(devices ...usb.Device) *FakeEnumerator {
	return &FakeEnumerator{DeviceList: devices}
}

// Devices returns the configured device list or error.
func (f *FakeEnumerator) Devices() ([]usb.Device, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.DeviceList, nil
}

// B210 returns the device descriptor of an Ettus B210 on a SuperSpeed link.
func B210() usb.Device {
	return usb.Device{
		VendorID:  "2500",
		ProductID: "0021",
		SpeedMbps: 5000,
		Product:   "USRP B210",
	}
}

// B210HighSpeed returns a B210 stuck on a USB 2.0 link.
func B210HighSpeed() usb.Device {
	dev := B210()
	dev.SpeedMbps = 480
	return dev
}
