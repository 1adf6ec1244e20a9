package usb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSysfsDevice lays out one sysfs device node with the given attributes.
func writeSysfsDevice(t *testing.T, root, name string, attrs map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for attr, value := range attrs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, attr), []byte(value+"\n"), 0644))
	}
}

func TestSysfsEnumerator_Devices(t *testing.T) {
	root := t.TempDir()

	writeSysfsDevice(t, root, "1-2", map[string]string{
		"idVendor":  "2500",
		"idProduct": "0021",
		"speed":     "5000",
		"product":   "USRP B210",
	})
	writeSysfsDevice(t, root, "1-3", map[string]string{
		"idVendor":  "046D",
		"idProduct": "C52B",
		"speed":     "12",
	})

	enum := &SysfsEnumerator{Root: root}
	devices, err := enum.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)

	byVendor := map[string]Device{}
	for _, d := range devices {
		byVendor[d.VendorID] = d
	}

	b210 := byVendor["2500"]
	assert.Equal(t, "0021", b210.ProductID)
	assert.Equal(t, 5000, b210.SpeedMbps)
	assert.Equal(t, "USRP B210", b210.Product)

	// Identifiers are normalized to lowercase hex.
	mouse := byVendor["046d"]
	assert.Equal(t, "c52b", mouse.ProductID)
	assert.Empty(t, mouse.Product)
}

func TestSysfsEnumerator_SkipsInterfaceNodes(t *testing.T) {
	root := t.TempDir()

	writeSysfsDevice(t, root, "1-2", map[string]string{
		"idVendor":  "2500",
		"idProduct": "0020",
		"speed":     "480",
	})
	// Interface node of the same device; must not produce a second entry.
	writeSysfsDevice(t, root, "1-2:1.0", map[string]string{
		"idVendor":  "2500",
		"idProduct": "0020",
	})

	enum := &SysfsEnumerator{Root: root}
	devices, err := enum.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, 480, devices[0].SpeedMbps)
}

func TestSysfsEnumerator_SkipsNodesWithoutDescriptors(t *testing.T) {
	root := t.TempDir()

	// A hub directory without idVendor/idProduct attribute files.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "usb1"), 0755))
	writeSysfsDevice(t, root, "1-4", map[string]string{
		"idVendor":  "2500",
		"idProduct": "0022",
		"speed":     "5000",
	})

	enum := &SysfsEnumerator{Root: root}
	devices, err := enum.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "0022", devices[0].ProductID)
}

func TestSysfsEnumerator_FractionalSpeedRoundsDown(t *testing.T) {
	root := t.TempDir()

	writeSysfsDevice(t, root, "1-5", map[string]string{
		"idVendor":  "0000",
		"idProduct": "0001",
		"speed":     "1.5",
	})

	enum := &SysfsEnumerator{Root: root}
	devices, err := enum.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, 1, devices[0].SpeedMbps)
}

func TestSysfsEnumerator_MissingRoot(t *testing.T) {
	enum := &SysfsEnumerator{Root: filepath.Join(t.TempDir(), "absent")}
	_, err := enum.Devices()
	assert.Error(t, err)
}

func TestSysfsEnumerator_EmptyBus(t *testing.T) {
	enum := &SysfsEnumerator{Root: t.TempDir()}
	devices, err := enum.Devices()
	require.NoError(t, err)
	assert.Empty(t, devices)
}
