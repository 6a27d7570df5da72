// Package cmd wires the governor's peripheral CLI surface: a scan utility
// for inspecting the host graph and an autohack command that starts the
// event loop. Neither subcommand ships a live Platform backend — see
// internal/platform.Unimplemented — so both exist to demonstrate the
// wiring a real frontend would replace.
package cmd

import (
	"fmt"
	"os"

	"github.com/rohmanhakim/autohackgovernor/internal/build"
	"github.com/rohmanhakim/autohackgovernor/internal/config"
	"github.com/rohmanhakim/autohackgovernor/internal/diagnostics"
	"github.com/rohmanhakim/autohackgovernor/internal/governor"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/rohmanhakim/autohackgovernor/internal/schedcore"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	rootHost string

	scanExec    string
	scanDisplay string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "autohackgovernor",
	Short:   "An adaptive, single-threaded scheduler for networked hack targets.",
	Version: build.FullVersion(),
	Long: `autohackgovernor discovers reachable hosts, roots what it can, and
runs an event-driven weaken/grow/hack cycle against every target it finds,
re-prioritizing by yield and adapting to player skill growth over time.`,
}

// scanCmd walks the reachable host graph from rootHost, optionally running
// a root-acquisition primitive on each host, and prints one line per host
// per --display.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Walk the reachable host graph and optionally act on each host.",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch scanExec {
		case "scan", "nuke", "backdoor", "sniff":
		default:
			return fmt.Errorf("--exec must be one of scan|nuke|backdoor|sniff, got %q", scanExec)
		}
		switch scanDisplay {
		case "path", "cd", "name":
		default:
			return fmt.Errorf("--display must be one of path|cd|name, got %q", scanDisplay)
		}

		plat := platform.Unimplemented{}
		for _, host := range walkHosts(plat, rootHost) {
			applyScanAction(plat, host, scanExec)
			fmt.Fprintln(cmd.OutOrStdout(), formatHost(host, scanDisplay))
		}
		return nil
	},
}

// autohackCmd builds the configured governor and runs its event loop until
// the process is killed.
var autohackCmd = &cobra.Command{
	Use:   "autohack",
	Short: "Start the autohack governor's event loop.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		plat := platform.Unimplemented{}
		sink := diagnostics.Sink(diagnostics.NullSink{})
		if cfg.DiagnosticsEnabled() {
			sink = diagnostics.NewTabwriterSink(cmd.OutOrStdout())
		}

		gov := governor.New(plat, cfg.Params(), sink, cfg.RootHost())
		schedcore.NewLoop(gov, plat).Run()
		return nil
	},
}

// hostNode is a single entry in the scan's breadth-first traversal.
type hostNode struct {
	hostname  string
	traversal []string
}

func walkHosts(plat platform.Platform, root string) []hostNode {
	visited := map[string]bool{root: true}
	queue := []hostNode{{hostname: root, traversal: []string{root}}}
	var out []hostNode

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.hostname != root {
			out = append(out, current)
		}
		for _, neighbor := range plat.Scan(current.hostname) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			traversal := append(append([]string{}, current.traversal...), neighbor)
			queue = append(queue, hostNode{hostname: neighbor, traversal: traversal})
		}
	}
	return out
}

func applyScanAction(plat platform.Platform, host hostNode, action string) {
	switch action {
	case "nuke":
		plat.Nuke(host.hostname)
	case "backdoor":
		plat.Write("backdoor-requested.txt", host.hostname, "a")
	case "sniff":
		plat.GetServer(host.hostname)
	}
}

func formatHost(host hostNode, display string) string {
	switch display {
	case "path":
		out := host.traversal[0]
		for _, hop := range host.traversal[1:] {
			out += "/" + hop
		}
		return out
	case "cd":
		out := ""
		for range host.traversal[1:] {
			out += "connect " + host.hostname + "; "
		}
		return out
	default:
		return host.hostname
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to run once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/user/autohack.json)")
	rootCmd.PersistentFlags().StringVar(&rootHost, "root-host", "home", "scan origin hostname")

	scanCmd.Flags().StringVar(&scanExec, "exec", "scan", "action to run on each discovered host: scan|nuke|backdoor|sniff")
	scanCmd.Flags().StringVar(&scanDisplay, "display", "name", "how to print each discovered host: path|cd|name")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(autohackCmd)
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.WithConfigFile(cfgFile)
	}
	return config.WithDefault(rootHost).Build()
}

// RootCmdForTest exposes the singleton root command so tests can drive it
// end to end with SetArgs/SetOut, the way cobra itself recommends testing
// command trees.
func RootCmdForTest() *cobra.Command { return rootCmd }

// FormatHostForTest and HostNodeForTest expose formatHost/hostNode to
// tests without making either part of the package's public API.
func FormatHostForTest(h hostNode, display string) string { return formatHost(h, display) }

func HostNodeForTest(hostname string, traversal []string) hostNode {
	return hostNode{hostname: hostname, traversal: traversal}
}
