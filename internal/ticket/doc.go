// Package ticket implements the parking ticket widget state machine.
//
// The machine is a reducer: Reduce takes the current State and one Event and
// returns the next State plus a list of Effects (start/stop the tick loop,
// arm a one-shot timer, notify the payment callback). Reduce never blocks
// and never touches a clock, so it can be driven by a Bubble Tea program, by
// the Machine runtime below, or directly from tests.
//
// # Phases
//
//	Scanning --StartScan..ScanComplete--> Idle <--ToggleExpand--> Expanded
//	Expanded --Pay--> Paid --ResetDue--> Resetting --ResetDone--> Scanning|Idle
//
// Idle and Expanded are the ticking phases. Each tick advances the animation
// frame (mod 20) and, on ticks that start from an even frame, the simulated
// minute (mod 1440).
//
// # Runtime
//
// Machine owns one State, applies events, hands timer effects to a Scheduler
// and payment effects to a PaymentNotifier, and publishes every new State to
// subscribers. All callbacks run on one logical thread: ManualScheduler fires
// synchronously from Advance, LoopScheduler fires from its Run loop. Both sit
// on a clockwork clock; ManualScheduler's is always a fake one.
package ticket
