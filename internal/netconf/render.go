package netconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/lte-simulator/simctl/internal/config"
)

const epcConfTemplate = `#
# srsEPC configuration file
# Generated automatically by simctl
#

[mme]
mme_code = 0x1a
mme_group = 0x0001
tac = {{.TAC}}
mcc = {{.MCC}}
mnc = {{.MNC}}
mme_bind_addr = {{.S1APBindAddr}}
apn = srsapn
dns_addr = 8.8.8.8
encryption_algo = {{.CipheringAlgo}}
integrity_algo = {{.IntegrityAlgo}}
paging_timer = {{.T3410}}

[hss]
db_file = {{.UserDBPath}}
auth_algo = milenage

[spgw]
gtpu_bind_addr = {{.GTPUBindAddr}}
sgi_if_addr = 172.16.0.1
sgi_if_name = srs_spgw_sgi
max_paging_queue = 100

[pcrf]
bind_addr = 127.0.0.1

[log]
all_level = info
all_hex_limit = 32
filename = {{.LogDir}}/epc.log
file_max_size = -1
`

const enbConfTemplate = `#
# srsENB configuration file
# Generated automatically by simctl
#

[enb]
enb_id = 0x19B
mcc = {{.MCC}}
mnc = {{.MNC}}
mme_addr = {{.MMEAddr}}
gtp_bind_addr = {{.GTPUBindAddr}}
s1c_bind_addr = {{.S1APBindAddr}}
n_prb = {{.NumPRB}}
tm = 1
nof_ports = 1

[enb_files]
sib_config = {{.ConfigDir}}/sib.conf
rr_config  = {{.ConfigDir}}/rr.conf
drb_config = {{.ConfigDir}}/drb.conf

[rf]
device_name = uhd
device_args = type=b200,master_clock_rate=23.04e6
tx_gain = {{.TXGain}}
rx_gain = {{.RXGain}}

[cell_list]
db_file = {{.ConfigDir}}/enb.csv

[log]
all_level = info
all_hex_limit = 32
filename = {{.LogDir}}/enb.log
file_max_size = -1

[gui]
enable = false
`

const cellListTemplate = `pci,cell_id,tac,earfcndl,earfcnul,bandwidth
1,{{.CellID}},{{.TAC}},{{.DLEARFCN}},{{.ULEARFCN}},{{.BandwidthMHz}}
`

// userDBHeader is the empty subscriber database installed when none exists.
const userDBHeader = "imsi,key,opc,amf,sqn\n"

// templateData joins the network parameters with the filesystem layout.
type templateData struct {
	*NetworkConfig
	ConfigDir  string
	LogDir     string
	UserDBPath string
}

// Renderer writes generated daemon configuration into the project layout.
type Renderer struct {
	cfg *config.Config
}

// NewRenderer creates a renderer over the project layout.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// WriteAll renders every generated artifact: epc.conf, enb.conf, the cell
// list, the subscriber database template (only when absent, an existing
// database is never overwritten), and current_config.json.
func (r *Renderer) WriteAll(network *NetworkConfig) error {
	for _, dir := range []string{r.cfg.ConfigDir, r.cfg.LogDir, r.cfg.DataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	data := templateData{
		NetworkConfig: network,
		ConfigDir:     r.cfg.ConfigDir,
		LogDir:        r.cfg.LogDir,
		UserDBPath:    filepath.Join(r.cfg.ConfigDir, "user_db.csv"),
	}

	if err := r.renderFile(r.cfg.CoreNetworkConfig, "epc.conf", epcConfTemplate, data); err != nil {
		return err
	}
	if err := r.renderFile(r.cfg.RadioNodeConfig, "enb.conf", enbConfTemplate, data); err != nil {
		return err
	}
	if err := r.renderFile(filepath.Join(r.cfg.ConfigDir, "enb.csv"), "enb.csv", cellListTemplate, data); err != nil {
		return err
	}

	if _, err := os.Stat(data.UserDBPath); os.IsNotExist(err) {
		if err := os.WriteFile(data.UserDBPath, []byte(userDBHeader), 0644); err != nil {
			return fmt.Errorf("write subscriber database template: %w", err)
		}
	}

	return r.writeCurrentConfig(network)
}

// renderFile executes one template into its destination file.
func (r *Renderer) renderFile(path, name, text string, data templateData) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// writeCurrentConfig records the derived parameter set for inspection.
func (r *Renderer) writeCurrentConfig(network *NetworkConfig) error {
	path := filepath.Join(r.cfg.DataDir, "current_config.json")

	data, err := json.MarshalIndent(network, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal network config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
