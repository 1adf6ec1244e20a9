// Package main implements the simctl entry point: the operational layer in
// front of the LTE simulator container.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lte-simulator/simctl/internal/audit"
	"github.com/lte-simulator/simctl/internal/config"
	"github.com/lte-simulator/simctl/internal/lifecycle"
	"github.com/lte-simulator/simctl/internal/netconf"
	"github.com/lte-simulator/simctl/internal/pidfile"
	"github.com/lte-simulator/simctl/internal/sysinfo"
	"github.com/lte-simulator/simctl/internal/usb"
	"github.com/lte-simulator/simctl/internal/verify"
)

const Version = "1.0.0"

// errNotReady marks a verification run that completed but blocked the
// go decision; the dispatcher converts it to exit code 1 without noise.
var errNotReady = errors.New("system not ready")

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errNotReady) {
			log.Printf("Error: %v", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "simctl",
		Short:         "LTE simulator operations: readiness verification and network lifecycle",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newVerifyCommand(),
		newStartCommand(),
		newStopCommand(),
		newStatusCommand(),
		newGenerateConfigCommand(),
	)
	return root
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the system readiness check battery",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			engine := verify.NewEngine(
				cfg,
				sysinfo.NewSystemProbe(),
				sysinfo.NewToolProbe(),
				sysinfo.NewUserProbe(),
				usb.NewSysfsEnumerator(),
			)

			report := engine.Run(cmd.Context())
			printReport(cmd, report)

			if !report.Ready() {
				return errNotReady
			}
			return nil
		},
	}
}

func newStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start-network",
		Short: "Start the core network and radio node in dependency order",
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator, auditLogger, err := buildOrchestrator()
			if err != nil {
				return err
			}
			defer func() { _ = auditLogger.Close() }()

			log.Println("Starting LTE network components...")
			if err := orchestrator.Start(cmd.Context()); err != nil {
				return fmt.Errorf("network start failed: %w", err)
			}
			log.Println("LTE network started")
			return nil
		},
	}
}

func newStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop-network",
		Short: "Stop the radio node and core network, then sweep leftovers",
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator, auditLogger, err := buildOrchestrator()
			if err != nil {
				return err
			}
			defer func() { _ = auditLogger.Close() }()

			log.Println("Stopping LTE network...")
			if err := orchestrator.Stop(cmd.Context()); err != nil {
				return fmt.Errorf("network stop failed: %w", err)
			}
			log.Println("LTE network stopped")
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-role daemon state",
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator, auditLogger, err := buildOrchestrator()
			if err != nil {
				return err
			}
			defer func() { _ = auditLogger.Close() }()

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ROLE\tDAEMON\tSTATE\tPID")
			for _, status := range orchestrator.Status() {
				pid := "-"
				if status.PID != 0 {
					pid = fmt.Sprintf("%d", status.PID)
					if status.Stale {
						pid += " (stale)"
					}
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", status.Role, status.Name, status.State, pid)
			}
			return writer.Flush()
		},
	}
}

func newGenerateConfigCommand() *cobra.Command {
	var params netconf.Params

	cmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Generate daemon configuration for a PLMN and band",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			network, err := netconf.Generate(params)
			if err != nil {
				return err
			}
			if err := netconf.NewRenderer(cfg).WriteAll(network); err != nil {
				return err
			}

			log.Printf("Generated configuration for %s (PLMN %s, cell %d, band %d)",
				network.NetworkName, network.PLMN, network.CellID, network.Band)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.MCC, "mcc", "456", "mobile country code")
	cmd.Flags().StringVar(&params.MNC, "mnc", "06", "mobile network code")
	cmd.Flags().StringVar(&params.CellID, "cell-id", "auto", "cell id, or auto")
	cmd.Flags().StringVar(&params.LAC, "lac", "auto", "location area code, or auto")
	cmd.Flags().StringVar(&params.Band, "band", "3", "LTE band (1, 3, 8, 20)")
	return cmd
}

// buildOrchestrator wires the lifecycle orchestrator with its host runner,
// PID store, and audit logger.
func buildOrchestrator() (*lifecycle.Orchestrator, *audit.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	auditLogger, err := audit.NewLogger(cfg.LogDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize audit logger: %w", err)
	}

	orchestrator := lifecycle.NewOrchestrator(cfg, lifecycle.NewExecRunner(), pidfile.NewStore(cfg.RunDir))
	orchestrator.SetAuditLogger(auditLogger)
	return orchestrator, auditLogger, nil
}

// printReport renders the verification report as a table with a summary line.
func printReport(cmd *cobra.Command, report verify.Report) {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CHECK\tSEVERITY\tDETAIL")
	for _, result := range report.Results {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", result.Name, result.Severity, result.Message)
	}
	_ = writer.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %d critical, %d warning\n",
		report.Outcome, report.CriticalCount, report.WarningCount)
}
