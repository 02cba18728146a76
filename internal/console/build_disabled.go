//go:build noconsole

package console

// Enabled is false in builds tagged noconsole.
const Enabled = false
