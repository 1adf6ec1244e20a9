package netconf

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"time"
)

// NetworkConfig is the complete derived parameter set for one network.
type NetworkConfig struct {
	// Network identification
	MCC    string `json:"mcc"`
	MNC    string `json:"mnc"`
	PLMN   string `json:"plmn_id"`
	CellID int    `json:"cell_id"`
	LAC    int    `json:"lac"`
	TAC    int    `json:"tac"`

	// Frequency configuration
	Band         int   `json:"band"`
	DLEARFCN     int   `json:"dl_earfcn"`
	ULEARFCN     int   `json:"ul_earfcn"`
	CenterFreqHz int64 `json:"center_freq"`

	// Radio configuration
	TXGain       int `json:"tx_gain"`
	RXGain       int `json:"rx_gain"`
	BandwidthMHz int `json:"bandwidth"`
	NumPRB       int `json:"n_prb"`

	// Network parameters
	NetworkName      string `json:"network_name"`
	ShortNetworkName string `json:"short_network_name"`

	// Security
	IntegrityAlgo string `json:"integrity_algorithm"`
	CipheringAlgo string `json:"ciphering_algorithm"`

	// NAS timers (seconds)
	T3410 int `json:"t3410"`
	T3411 int `json:"t3411"`
	T3402 int `json:"t3402"`

	// S1 interface configuration
	S1APBindAddr string `json:"s1ap_bind_addr"`
	GTPUBindAddr string `json:"gtpu_bind_addr"`
	MMEAddr      string `json:"mme_addr"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Params are the operator-facing inputs; CellID and LAC accept "auto".
type Params struct {
	MCC    string
	MNC    string
	CellID string
	LAC    string
	Band   string
}

// bandConfig holds the frequency plan for one LTE band.
type bandConfig struct {
	DLEARFCN     int
	ULEARFCN     int
	CenterFreqHz int64
}

// bandConfigs covers the bands the B210 front end is deployed on.
var bandConfigs = map[string]bandConfig{
	"1":  {DLEARFCN: 300, ULEARFCN: 18300, CenterFreqHz: 2140000000},  // 2100 MHz
	"3":  {DLEARFCN: 1200, ULEARFCN: 19200, CenterFreqHz: 1842500000}, // 1800 MHz
	"8":  {DLEARFCN: 3450, ULEARFCN: 21450, CenterFreqHz: 942500000},  // 900 MHz
	"20": {DLEARFCN: 6150, ULEARFCN: 24150, CenterFreqHz: 791000000},  // 800 MHz
}

// operators maps Cambodian PLMNs to long and short operator names.
var operators = map[string][2]string{
	"45601": {"Cellcard", "Cellcard"},
	"45602": {"Smart Mobile", "Smart"},
	"45603": {"qb", "qb"},
	"45604": {"qb", "qb"},
	"45605": {"Smart Mobile", "Smart"},
	"45606": {"Smart Axiata", "Smart"},
	"45608": {"Metfone", "Metfone"},
	"45609": {"Metfone", "Metfone"},
}

var (
	mccPattern = regexp.MustCompile(`^\d{3}$`)
	mncPattern = regexp.MustCompile(`^\d{2,3}$`)
	numPattern = regexp.MustCompile(`^\d+$`)
)

// Generate derives a complete NetworkConfig from operator inputs.
func Generate(params Params) (*NetworkConfig, error) {
	if !mccPattern.MatchString(params.MCC) {
		return nil, fmt.Errorf("invalid MCC %q: must be 3 digits", params.MCC)
	}
	if !mncPattern.MatchString(params.MNC) {
		return nil, fmt.Errorf("invalid MNC %q: must be 2 or 3 digits", params.MNC)
	}

	band, ok := bandConfigs[params.Band]
	if !ok {
		return nil, fmt.Errorf("unsupported LTE band %q: supported bands are 1, 3, 8, 20", params.Band)
	}

	cellID, err := resolveAuto(params.CellID, deriveCellID(params.MCC, params.MNC))
	if err != nil {
		return nil, fmt.Errorf("invalid cell id %q: %w", params.CellID, err)
	}
	lac, err := resolveAuto(params.LAC, deriveLAC(params.MCC, params.MNC))
	if err != nil {
		return nil, fmt.Errorf("invalid LAC %q: %w", params.LAC, err)
	}

	plmn := params.MCC + params.MNC
	longName, shortName := operatorNames(plmn)

	bandNumber := 0
	fmt.Sscanf(params.Band, "%d", &bandNumber)

	return &NetworkConfig{
		MCC:    params.MCC,
		MNC:    params.MNC,
		PLMN:   plmn,
		CellID: cellID,
		LAC:    lac,
		// TAC tracks LAC for simplicity.
		TAC: lac,

		Band:         bandNumber,
		DLEARFCN:     band.DLEARFCN,
		ULEARFCN:     band.ULEARFCN,
		CenterFreqHz: band.CenterFreqHz,

		TXGain:       50,
		RXGain:       40,
		BandwidthMHz: 20,
		NumPRB:       100,

		NetworkName:      longName,
		ShortNetworkName: shortName,

		IntegrityAlgo: "EIA1",
		CipheringAlgo: "EEA0",

		T3410: 15,
		T3411: 10,
		T3402: 12,

		S1APBindAddr: "127.0.1.100",
		GTPUBindAddr: "127.0.1.1",
		MMEAddr:      "127.0.1.100",

		GeneratedAt: time.Now().UTC(),
	}, nil
}

// resolveAuto parses a numeric input, substituting the derived value for
// empty or "auto".
func resolveAuto(input string, derived int) (int, error) {
	if input == "" || input == "auto" || input == "AUTO" {
		return derived, nil
	}
	if !numPattern.MatchString(input) {
		return 0, fmt.Errorf("must be numeric or \"auto\"")
	}
	var value int
	fmt.Sscanf(input, "%d", &value)
	return value, nil
}

// deriveCellID produces a stable, realistic cell id for a PLMN.
func deriveCellID(mcc, mnc string) int {
	var base int
	fmt.Sscanf(mcc, "%d", &base)
	var mncVal int
	fmt.Sscanf(mnc, "%d", &mncVal)
	return base*1000 + mncVal*100 + int(hashMod(mcc+mnc, 900)) + 100
}

// deriveLAC produces a stable LAC in a typical operator range.
func deriveLAC(mcc, mnc string) int {
	var base int
	fmt.Sscanf(mcc, "%d", &base)
	var mncVal int
	fmt.Sscanf(mnc, "%d", &mncVal)
	return base*10 + mncVal + int(hashMod(mcc+mnc+"lac", 500)) + 1000
}

// hashMod hashes a seed string into [0, mod).
func hashMod(seed string, mod uint32) uint32 {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(seed))
	return hash.Sum32() % mod
}

// operatorNames resolves the long and short operator name for a PLMN,
// falling back to a generated label for unknown networks.
func operatorNames(plmn string) (string, string) {
	if names, ok := operators[plmn]; ok {
		return names[0], names[1]
	}
	return "Operator " + plmn, "Op" + plmn
}
