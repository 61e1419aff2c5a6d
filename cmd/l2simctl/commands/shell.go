package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// shellCommands lists the available commands for the interactive shell help output.
var shellCommands = []struct {
	name string
	desc string
}{
	{"devices", "List simulated devices"},
	{"stp show <device>", "Show the spanning tree view of a device"},
	{"cdp neighbors <device>", "Show the CDP neighbor table of a device"},
	{"interface shutdown <dev> <if>", "Administratively disable an interface"},
	{"interface noshutdown <dev> <if>", "Administratively enable an interface"},
	{"protocol enable|disable <dev> <p>", "Toggle STP or CDP on a device"},
	{"verify", "Check the forwarding topology for loops"},
	{"monitor [--device d] [--current]", "Stream protocol events"},
	{"version", "Print build and daemon information"},
	{"<words>?", "List the commands or devices that complete a line"},
	{"help", "Show this help message"},
	{"exit / quit", "Leave the interactive shell"},
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive l2simctl shell",
		Long: "Launches a REPL that accepts l2simctl subcommands. Device names may be shortened " +
			"to any unique prefix, and a trailing '?' lists completions. Type 'help', 'exit', or 'quit'.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := &shell{out: os.Stdout}
			sh.refreshDevices(cmd.Context())

			printShellBanner()
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Print("l2simctl> ")

			for scanner.Scan() {
				if sh.handle(cmd.Context(), strings.TrimSpace(scanner.Text())) {
					return nil
				}
				fmt.Print("l2simctl> ")
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			return nil
		},
	}
}

// shell holds the device names used to complete command lines.
type shell struct {
	out     io.Writer
	devices []string
}

// refreshDevices reloads the device names from the daemon. The previous
// list is kept when the daemon cannot be reached.
func (sh *shell) refreshDevices(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	names, err := deviceNames(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, "device completion unavailable:", err)
		return
	}
	sh.devices = names
}

// handle runs one shell line and reports whether the shell should exit.
func (sh *shell) handle(ctx context.Context, line string) bool {
	switch {
	case line == "exit" || line == "quit":
		return true
	case line == "help" || line == "?":
		printShellHelp()
	case strings.HasSuffix(line, "?"):
		sh.refreshDevices(ctx)
		sh.printMatches(questionMatches(line, sh.devices))
	case line != "":
		args, err := expandDeviceArg(strings.Fields(line), sh.devices)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return false
		}

		rootCmd.SetArgs(args)

		if err := rootCmd.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return false
}

func (sh *shell) printMatches(matches []string) {
	if len(matches) == 0 {
		fmt.Fprintln(sh.out, "% Unrecognized command")
		return
	}
	for _, m := range matches {
		fmt.Fprintf(sh.out, "  %s\n", m)
	}
}

// printShellBanner prints a welcome message when the shell starts.
func printShellBanner() {
	fmt.Println("l2sim interactive shell. Type 'help' for available commands, 'exit' to quit.")
	fmt.Println()
}

// printShellHelp prints a formatted list of available shell commands.
func printShellHelp() {
	fmt.Println("Available commands:")
	fmt.Println()

	for _, cmd := range shellCommands {
		fmt.Printf("  %-36s %s\n", cmd.name, cmd.desc)
	}

	fmt.Println()
}
