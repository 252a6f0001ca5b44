// Package cli implements the procdash command-line interface.
//
// Command definitions live in commands.go; each command delegates to a
// function that builds the engine from the loaded config and hands it to a
// renderer:
//
//	procdash dashboard   - interactive terminal dashboard
//	procdash serve       - HTTP API, websocket feed and /metrics
//	procdash snapshot    - print one measured view and exit
//	procdash kill <pid>  - terminate a process after confirmation
//	procdash version     - build information
//
// # Configuration
//
// The root command loads the config once in PersistentPreRunE (from --config,
// ./.procdash.yaml or ~/.config/procdash/config.yaml) and configures logging.
// Commands annotated as interactive send logs to log.file or discard them so
// the alternate screen stays clean.
package cli
