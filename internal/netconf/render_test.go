package netconf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lte-simulator/simctl/internal/config"
)

func rendererConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.LoadBaseline()
	cfg.ProjectDir = root
	cfg.ConfigDir = filepath.Join(root, "config")
	cfg.LogDir = filepath.Join(root, "logs")
	cfg.DataDir = filepath.Join(root, "data")
	cfg.RunDir = filepath.Join(root, "run")
	cfg.CoreNetworkConfig = filepath.Join(cfg.ConfigDir, "epc.conf")
	cfg.RadioNodeConfig = filepath.Join(cfg.ConfigDir, "enb.conf")
	return cfg
}

func generateTestNetwork(t *testing.T) *NetworkConfig {
	t.Helper()
	network, err := Generate(Params{MCC: "456", MNC: "06", CellID: "100", LAC: "2000", Band: "3"})
	require.NoError(t, err)
	return network
}

func TestRenderer_WriteAll(t *testing.T) {
	cfg := rendererConfig(t)
	network := generateTestNetwork(t)

	require.NoError(t, NewRenderer(cfg).WriteAll(network))

	epc, err := os.ReadFile(cfg.CoreNetworkConfig)
	require.NoError(t, err)
	assert.Contains(t, string(epc), "mcc = 456")
	assert.Contains(t, string(epc), "mnc = 06")
	assert.Contains(t, string(epc), "mme_bind_addr = 127.0.1.100")
	assert.Contains(t, string(epc), "integrity_algo = EIA1")
	assert.Contains(t, string(epc), filepath.Join(cfg.ConfigDir, "user_db.csv"))

	enb, err := os.ReadFile(cfg.RadioNodeConfig)
	require.NoError(t, err)
	assert.Contains(t, string(enb), "mme_addr = 127.0.1.100")
	assert.Contains(t, string(enb), "tx_gain = 50")
	assert.Contains(t, string(enb), "rx_gain = 40")
	assert.Contains(t, string(enb), "n_prb = 100")

	cells, err := os.ReadFile(filepath.Join(cfg.ConfigDir, "enb.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(cells), "1,100,2000,1200,19200,20")
}

func TestRenderer_WriteAllRecordsCurrentConfig(t *testing.T) {
	cfg := rendererConfig(t)
	network := generateTestNetwork(t)

	require.NoError(t, NewRenderer(cfg).WriteAll(network))

	data, err := os.ReadFile(filepath.Join(cfg.DataDir, "current_config.json"))
	require.NoError(t, err)

	var recorded NetworkConfig
	require.NoError(t, json.Unmarshal(data, &recorded))
	assert.Equal(t, network.PLMN, recorded.PLMN)
	assert.Equal(t, network.CellID, recorded.CellID)
	assert.Equal(t, network.DLEARFCN, recorded.DLEARFCN)
}

func TestRenderer_NeverOverwritesSubscriberDatabase(t *testing.T) {
	cfg := rendererConfig(t)
	network := generateTestNetwork(t)

	require.NoError(t, os.MkdirAll(cfg.ConfigDir, 0755))
	userDB := filepath.Join(cfg.ConfigDir, "user_db.csv")
	existing := "imsi,key,opc,amf,sqn\n456060000000001,00112233445566778899aabbccddeeff,,9001,000000001234\n"
	require.NoError(t, os.WriteFile(userDB, []byte(existing), 0644))

	require.NoError(t, NewRenderer(cfg).WriteAll(network))

	data, err := os.ReadFile(userDB)
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestRenderer_InstallsEmptySubscriberDatabase(t *testing.T) {
	cfg := rendererConfig(t)
	network := generateTestNetwork(t)

	require.NoError(t, NewRenderer(cfg).WriteAll(network))

	data, err := os.ReadFile(filepath.Join(cfg.ConfigDir, "user_db.csv"))
	require.NoError(t, err)
	assert.Equal(t, "imsi,key,opc,amf,sqn\n", string(data))
}
