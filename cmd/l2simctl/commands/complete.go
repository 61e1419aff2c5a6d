package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
	"github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1/l2simv1connect"
)

// errAmbiguousDevice is returned when a shortened device name matches more
// than one device.
var errAmbiguousDevice = errors.New("ambiguous device")

// deviceLookupTimeout bounds the ListDevices call made for completion.
const deviceLookupTimeout = 2 * time.Second

// shellKeywords are the first words the interactive shell accepts.
var shellKeywords = []string{
	"cdp", "devices", "exit", "help", "interface", "monitor",
	"protocol", "quit", "stp", "verify", "version",
}

// deviceNames asks the daemon for the names of all simulated devices.
func deviceNames(ctx context.Context, c l2simv1connect.SimulatorServiceClient) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, deviceLookupTimeout)
	defer cancel()

	resp, err := c.ListDevices(ctx, &l2simv1.ListDevicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	names := make([]string, 0, len(resp.GetDevices()))
	for _, d := range resp.GetDevices() {
		names = append(names, d.GetName())
	}
	return names, nil
}

// completeDeviceArg is the cobra completion for commands whose first
// argument is a device name.
func completeDeviceArg(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Completion runs without PersistentPreRunE.
	c := client
	if c == nil {
		c = newClient()
	}

	names, err := deviceNames(context.Background(), c)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return completeWords(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeWords returns the words starting with prefix, sorted.
func completeWords(words []string, prefix string) []string {
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return out
}

// deviceArgIndex returns the position of the device name in a shell
// command line, or -1 when the command takes none.
func deviceArgIndex(args []string) int {
	if len(args) < 2 {
		return -1
	}

	switch args[0] {
	case "stp":
		if args[1] == "show" && len(args) > 2 {
			return 2
		}
	case "cdp":
		if args[1] == "neighbors" && len(args) > 2 {
			return 2
		}
	case "interface", "iface":
		switch args[1] {
		case "shutdown", "noshutdown", "no-shutdown":
			if len(args) > 2 {
				return 2
			}
		}
	case "protocol":
		if (args[1] == "enable" || args[1] == "disable") && len(args) > 2 {
			return 2
		}
	case "monitor":
		for i := 1; i < len(args)-1; i++ {
			if args[i] == "--device" {
				return i + 1
			}
		}
	}
	return -1
}

// expandDeviceArg replaces a unique device name prefix in args with the
// full name, the way IOS accepts shortened keywords. Unknown names are left
// for the daemon to reject.
func expandDeviceArg(args, devices []string) ([]string, error) {
	i := deviceArgIndex(args)
	if i < 0 || slices.Contains(devices, args[i]) {
		return args, nil
	}

	matches := completeWords(devices, args[i])
	switch len(matches) {
	case 0:
		return args, nil
	case 1:
		out := slices.Clone(args)
		out[i] = matches[0]
		return out, nil
	default:
		return nil, fmt.Errorf("%w %q: %s", errAmbiguousDevice, args[i], strings.Join(matches, ", "))
	}
}

// questionMatches answers a shell line ending in '?'. "stp show s?" lists
// the devices starting with "s" and "stp show ?" lists them all. At the
// start of a line the shell keywords are listed instead.
func questionMatches(line string, devices []string) []string {
	body := strings.TrimSuffix(strings.TrimSpace(line), "?")
	args := strings.Fields(body)

	prefix := ""
	if len(args) > 0 && !strings.HasSuffix(body, " ") {
		prefix = args[len(args)-1]
		args = args[:len(args)-1]
	}

	if len(args) == 0 {
		return completeWords(shellKeywords, prefix)
	}
	if deviceArgIndex(append(slices.Clone(args), prefix)) == len(args) {
		return completeWords(devices, prefix)
	}
	return nil
}
