// Package ui provides the shared terminal styling for parkmeter's CLI output
// and the ticket widget.
//
// # Color Scheme
//
// Status colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Paid, valid config
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - In-progress indicators
//
// Tier colors escalate from green to red as the price tier rises; see
// TierColor and TierFill.
//
// Use ApplyColorMode to honour --no-color and output.color.
//
// # Bubble Tea Components
//
// SpinnerFrames and NewScanSpinner give the widget's scanning phase the same
// animation as the rest of the CLI.
package ui
