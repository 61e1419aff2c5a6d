package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
)

// errLoopDetected makes `verify` exit non-zero when the daemon reports a
// forwarding loop.
var errLoopDetected = errors.New("forwarding loop detected")

// --- devices ---

func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List simulated devices",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := client.ListDevices(context.Background(), &l2simv1.ListDevicesRequest{})
			if err != nil {
				return fmt.Errorf("list devices: %w", err)
			}

			out, err := formatDevices(resp, outputFormat)
			if err != nil {
				return fmt.Errorf("format devices: %w", err)
			}

			fmt.Print(out)

			return nil
		},
	}
}

// --- stp show ---

func stpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stp",
		Short: "Inspect spanning tree state",
	}

	cmd.AddCommand(&cobra.Command{
		Use:               "show <device>",
		Short:             "Show the spanning tree view of a device",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDeviceArg,
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := client.GetSpanningTree(context.Background(),
				&l2simv1.GetSpanningTreeRequest{Device: args[0]})
			if err != nil {
				return fmt.Errorf("get spanning tree: %w", err)
			}

			out, err := formatBridge(resp.GetBridge(), outputFormat)
			if err != nil {
				return fmt.Errorf("format bridge: %w", err)
			}

			fmt.Print(out)

			return nil
		},
	})

	return cmd
}

// --- cdp neighbors ---

func cdpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdp",
		Short: "Inspect CDP neighbor tables",
	}

	cmd.AddCommand(&cobra.Command{
		Use:               "neighbors <device>",
		Short:             "Show the CDP neighbor table of a device",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDeviceArg,
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := client.ListNeighbors(context.Background(),
				&l2simv1.ListNeighborsRequest{Device: args[0]})
			if err != nil {
				return fmt.Errorf("list neighbors: %w", err)
			}

			out, err := formatNeighbors(resp, outputFormat)
			if err != nil {
				return fmt.Errorf("format neighbors: %w", err)
			}

			fmt.Print(out)

			return nil
		},
	})

	return cmd
}

// --- interface shutdown / noshutdown ---

func interfaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interface",
		Aliases: []string{"iface"},
		Short:   "Change interface administrative state",
	}

	cmd.AddCommand(interfaceStateCmd("shutdown", "Administratively disable an interface", true))
	cmd.AddCommand(interfaceStateCmd("noshutdown", "Administratively enable an interface", false, "no-shutdown"))

	return cmd
}

func interfaceStateCmd(use, short string, shutdown bool, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:               use + " <device> <interface>",
		Aliases:           aliases,
		Short:             short,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeDeviceArg,
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := client.SetInterfaceState(context.Background(), &l2simv1.SetInterfaceStateRequest{
				Device:    args[0],
				Interface: args[1],
				Shutdown:  shutdown,
			})
			if err != nil {
				return fmt.Errorf("set interface state: %w", err)
			}

			state := "up"
			if shutdown {
				state = "administratively down"
			}
			fmt.Printf("%s %s is %s\n", args[0], args[1], state)

			return nil
		},
	}
}

// --- protocol enable / disable ---

func protocolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol",
		Short: "Enable or disable STP or CDP on a device",
	}

	cmd.AddCommand(protocolStateCmd("enable", true))
	cmd.AddCommand(protocolStateCmd("disable", false))

	return cmd
}

func protocolStateCmd(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:               use + " <device> <stp|cdp>",
		Short:             use + " a protocol on a device",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeDeviceArg,
		RunE: func(_ *cobra.Command, args []string) error {
			proto := strings.ToLower(args[1])
			_, err := client.SetProtocolEnabled(context.Background(), &l2simv1.SetProtocolEnabledRequest{
				Device:   args[0],
				Protocol: proto,
				Enabled:  enabled,
			})
			if err != nil {
				return fmt.Errorf("set protocol state: %w", err)
			}

			fmt.Printf("%s on %s %sd\n", proto, args[0], use)

			return nil
		},
	}
}

// --- verify ---

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the forwarding topology for loops",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := client.VerifyLoopFree(context.Background(), &l2simv1.VerifyLoopFreeRequest{})
			if err != nil {
				return fmt.Errorf("verify loop free: %w", err)
			}

			out, err := formatLoopReport(resp, outputFormat)
			if err != nil {
				return fmt.Errorf("format loop report: %w", err)
			}

			fmt.Print(out)

			if resp.GetLoop() {
				return errLoopDetected
			}
			return nil
		},
	}
}
