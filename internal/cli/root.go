package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/config"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

// Command annotations read by the root pre-run hook.
const (
	annotationSkipConfig  = "procdash/skip-config"
	annotationInteractive = "procdash/interactive"
)

// Global flags
var (
	cfgFile string
	verbose bool
)

// Loaded by the root pre-run hook.
var (
	appConfig     *config.Config
	appConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "procdash",
	Short: "Real-time system performance dashboard",
	Long: `procdash samples CPU, memory, disk and network usage on a fixed interval,
keeps a short history of each, and lists the busiest processes.

Run "procdash dashboard" for the terminal UI or "procdash serve" to expose the
same data over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationSkipConfig] != "" {
			return nil
		}
		if err := loadConfig(); err != nil {
			return err
		}
		if err := configureLogging(appConfig, cmd.Annotations[annotationInteractive] != ""); err != nil {
			return err
		}
		if appConfigPath != "" {
			logger.New("cli").Debug("using config %s", appConfigPath)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.procdash.yaml, then ~/.config/procdash/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves and validates the config into appConfig.
func loadConfig() error {
	cfg, path, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	appConfig = cfg
	appConfigPath = path
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLogFile()

	if err == nil {
		return
	}
	if isUnknownCommandError(err) {
		if name := extractUnknownCommand(err); name != "" {
			fmt.Fprint(os.Stderr, errors.Render(errors.New(errors.ErrInput,
				fmt.Sprintf("Unknown command %q", name),
				"Run 'procdash --help' to see available commands.")))
			os.Exit(1)
		}
	}
	fmt.Fprint(os.Stderr, errors.Render(err))
	os.Exit(1)
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "procdash"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
