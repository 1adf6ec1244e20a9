// Package netconf generates the daemon configuration for a simulated LTE
// network.
//
// Given a PLMN (MCC/MNC), cell identity, and LTE band, it derives the full
// radio and core-network parameter set and renders the srsepc/srsenb
// configuration files, the cell list, and the subscriber database template
// into the project's config directory. The daemons consume these files at
// start; simctl itself never re-reads them.
package netconf
