// l2simctl is the command-line client for the l2simd daemon.
package main

import "github.com/dantte-lp/l2sim/cmd/l2simctl/commands"

func main() {
	commands.Execute()
}
