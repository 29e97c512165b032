// Package viz provides terminal-based visualization for collision
// simulations.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [RunInteractive]: scenario picker with parameter editing
//   - [Model]: live simulation view with replay and GIF recording
//   - [Scene]: world-to-canvas projection for disks in a boundary
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	[]/   - Replay (rewind/forward)
//	Up/Dn - Adjust the time step
//
// # Recording
//
// The live view records sessions as GIF animations via the G key;
// [SaveGIF] encodes any captured frame sequence, so batch runs can
// render animations without a terminal.
package viz
