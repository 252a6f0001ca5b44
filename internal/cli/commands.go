package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

// Command-specific flags
var (
	dashboardIntervalFlag string
	serveListenFlag       string
	snapshotFormatFlag    string
	snapshotAllFlag       bool
	killYesFlag           bool
	killForceFlag         bool
)

// dashboardCmd starts the terminal dashboard
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "top"},
	Short:   "Interactive terminal dashboard",
	Long: `Start a full-screen dashboard with live CPU, memory, disk and network charts
and a table of the busiest processes.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  t           Toggle light/dark theme
  a           Toggle between top processes and all processes
  r           Refresh now
  up/k        Select previous process
  down/j      Select next process
  x           Terminate the selected process (asks y/n)
  ?           Show help

Examples:
  procdash dashboard
  procdash dashboard --interval 5s`,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := parseInterval(dashboardIntervalFlag, appConfig.Interval)
		if err != nil {
			return err
		}
		return dashboardCommand(cmd, interval)
	},
}

// serveCmd exposes the engine over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve metrics over HTTP and websockets",
	Long: `Sample in the background and serve the results:

  GET  /api/view                 current view as JSON
  GET  /api/history/{kind}       cpu, memory, disk or network history
  GET  /api/processes            process table
  POST /api/theme/toggle         switch light/dark
  POST /api/show-all/toggle      switch top/all processes
  POST /api/processes/{pid}/kill terminate a process
  GET  /metrics                  Prometheus text exposition
  GET  /ws                       websocket feed, one view per tick

Examples:
  procdash serve
  procdash serve --listen 0.0.0.0:8050`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand(cmd, serveListenFlag)
	},
}

// snapshotCmd prints a single measured view
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print current usage and the busiest processes",
	Long: `Sample twice, one interval apart so CPU figures are measured rather than
zero, then print the result and exit.

Examples:
  procdash snapshot
  procdash snapshot --all
  procdash snapshot --format json | jq '.processes[0]'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(snapshotFormatFlag)
		if err != nil {
			return err
		}
		return snapshotCommand(cmd, format, snapshotAllFlag)
	},
}

// killCmd terminates a process
var killCmd = &cobra.Command{
	Use:   "kill <pid>",
	Short: "Terminate a process",
	Long: `Terminate a process by pid. The process must appear in a fresh snapshot;
procdash never signals itself. Sends SIGTERM, or SIGKILL with --force.

Examples:
  procdash kill 4242
  procdash kill 4242 --yes --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return killCommand(cmd, args[0], killYesFlag, killForceFlag)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for procdash.

Examples:
  # Bash
  procdash completion bash > /etc/bash_completion.d/procdash

  # Zsh
  procdash completion zsh > "${fpath[1]}/_procdash"

  # Fish
  procdash completion fish > ~/.config/fish/completions/procdash.fish`,
	ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
	Args:        cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Annotations: map[string]string{annotationSkipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardIntervalFlag, "interval", "", "refresh interval (e.g., 2s, 5s, 1m; default from config)")

	serveCmd.Flags().StringVar(&serveListenFlag, "listen", "", "listen address (default from config, 127.0.0.1:8050)")

	snapshotCmd.Flags().StringVarP(&snapshotFormatFlag, "format", "o", "table", "output format: table, json or yaml")
	snapshotCmd.Flags().BoolVar(&snapshotAllFlag, "all", false, "list every process instead of the top ones")

	killCmd.Flags().BoolVarP(&killYesFlag, "yes", "y", false, "skip the confirmation prompt")
	killCmd.Flags().BoolVar(&killForceFlag, "force", false, "send SIGKILL instead of SIGTERM")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(completionCmd)
}
