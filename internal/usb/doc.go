// Package usb defines the device enumeration interface used by the readiness
// engine to detect the SDR hardware.
//
// The Enumerator interface reports attached USB devices with their vendor id,
// product id, and negotiated link speed. The sysfs implementation reads
// /sys/bus/usb/devices; the fake subpackage provides a canned implementation
// for tests.
package usb
