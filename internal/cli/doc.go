// Package cli implements the parkmeter command-line interface.
//
// Commands are plain cobra.Command values registered in init. Each RunE
// loads config through loadConfig, then hands off to a function that takes
// an io.Writer so tests can drive it without a terminal.
//
// # Command Structure
//
//	parkmeter run              - Open the ticket widget (needs a terminal)
//	parkmeter quote [minute]   - Price and countdown for one minute
//	parkmeter tiers            - Show the configured tier table
//	parkmeter simulate         - Drive the widget headlessly and log transitions
//	parkmeter init             - Create .parkmeter.yaml
//	parkmeter version          - Build information
//	parkmeter completion       - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color, --json) live on the root command.
// With --json every command writes a JSONEnvelope instead of styled text,
// including errors.
package cli
