package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1/l2simv1connect"
)

var (
	// client is the ConnectRPC simulator client, initialized in PersistentPreRunE.
	client l2simv1connect.SimulatorServiceClient

	// outputFormat controls the output format for all commands (table or json).
	outputFormat string

	// serverAddr is the daemon address (host:port) for the ConnectRPC connection.
	serverAddr string
)

// rootCmd is the top-level cobra command for l2simctl.
var rootCmd = &cobra.Command{
	Use:   "l2simctl",
	Short: "CLI client for the l2sim simulation daemon",
	Long:  "l2simctl communicates with the l2simd daemon via ConnectRPC to inspect and steer a running simulation.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		client = newClient()

		return nil
	},
	// Silence cobra's built-in usage/error printing so we control it.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:50061",
		"l2simd daemon address (host:port)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table",
		"output format: table, json")

	rootCmd.AddCommand(devicesCmd())
	rootCmd.AddCommand(stpCmd())
	rootCmd.AddCommand(cdpCmd())
	rootCmd.AddCommand(interfaceCmd())
	rootCmd.AddCommand(protocolCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(monitorCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(shellCmd())
}

// newClient connects to the daemon at serverAddr.
func newClient() l2simv1connect.SimulatorServiceClient {
	return l2simv1connect.NewSimulatorServiceClient(
		http.DefaultClient,
		"http://"+serverAddr,
	)
}

// Execute runs the root command and exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
