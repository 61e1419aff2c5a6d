package commands

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	appversion "github.com/dantte-lp/l2sim/internal/version"
	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print l2simctl build information and the daemon's simulation run",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(appversion.Full("l2simctl"))

			ctx, cancel := context.WithTimeout(cmd.Context(), deviceLookupTimeout)
			defer cancel()

			resp, err := client.ListDevices(ctx, &l2simv1.ListDevicesRequest{})
			fmt.Println(formatDaemonRun(serverAddr, resp, err))
		},
	}
}

// formatDaemonRun describes the simulation served at addr, or why it could
// not be reached.
func formatDaemonRun(addr string, resp *l2simv1.ListDevicesResponse, err error) string {
	if err != nil {
		return fmt.Sprintf("daemon %s: unreachable (%v)", addr, err)
	}
	return fmt.Sprintf("daemon %s\n  run:     %s\n  time:    %s\n  steps:   %s\n  devices: %d",
		addr,
		resp.GetRunId(),
		formatTime(resp.GetNow()),
		humanize.Comma(int64(resp.GetSteps())),
		len(resp.GetDevices()),
	)
}
