package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
)

func monitorCmd() *cobra.Command {
	var (
		device         string
		protocol       string
		includeCurrent bool
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Stream protocol events",
		Long:  "Connects to the l2simd daemon and streams protocol events until interrupted (Ctrl+C).",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stream, err := client.WatchEvents(ctx, &l2simv1.WatchEventsRequest{
				Device:         device,
				Protocol:       strings.ToLower(protocol),
				IncludeCurrent: includeCurrent,
			})
			if err != nil {
				return fmt.Errorf("watch events: %w", err)
			}
			defer stream.Close()

			for stream.Receive() {
				out, fmtErr := formatWatch(stream.Msg(), outputFormat)
				if fmtErr != nil {
					return fmt.Errorf("format event: %w", fmtErr)
				}

				fmt.Println(out)
			}

			if err := stream.Err(); err != nil {
				// Context cancellation (Ctrl+C) is expected, not an error.
				if errors.Is(err, context.Canceled) || connect.CodeOf(err) == connect.CodeCanceled {
					return nil
				}

				return fmt.Errorf("stream error: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "only stream events of this device")
	cmd.Flags().StringVar(&protocol, "protocol", "", "only stream events of this protocol (stp, cdp)")
	cmd.Flags().BoolVar(&includeCurrent, "current", false, "include the current root and neighbor state before streaming changes")

	_ = cmd.RegisterFlagCompletionFunc("device", completeDeviceArg)
	_ = cmd.RegisterFlagCompletionFunc("protocol", cobra.FixedCompletions(
		[]string{"stp", "cdp"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
