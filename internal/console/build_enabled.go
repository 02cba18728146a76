//go:build !noconsole

package console

// Enabled is true unless the binary is built with the noconsole tag.
const Enabled = true
