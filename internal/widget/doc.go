// Package widget renders the parking ticket as a Bubble Tea program.
//
// The model holds a ticket.State and feeds every input through ticket.Reduce.
// Effects become tea.Cmds:
//
//   - StartTicking arms a tea.Tick loop tagged with a generation number.
//     StopTicking bumps the generation so in-flight ticks are dropped when
//     they arrive. That is how the periodic source is deregistered.
//   - ScheduleScanComplete, ScheduleReset and ScheduleResetDone become
//     one-shot tea.Ticks that deliver the matching event.
//   - NotifyPayment calls the PaymentNotifier synchronously from Update.
//
// Because Bubble Tea delivers messages to Update one at a time, every state
// transition happens on the program's event loop and no locking is needed.
//
// # Layout
//
// The card is placed in a terminal corner chosen by Position. Scanning shows
// a spinner, Idle shows the price and the nine indicator dots, Expanded adds
// the countdown, a progress bar and the next tier, and Paid shows the
// captured amount with the wall-clock time of payment.
//
// # Keyboard Shortcuts
//
//	enter / space  Scan (while scanning) or expand/collapse
//	s              Start scan
//	p              Pay (expanded only)
//	esc            Collapse / close help
//	?              Toggle help
//	q / Ctrl+C     Quit
package widget
