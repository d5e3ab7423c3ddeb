//go:build !tinylog_direct && !tinylog_no_extension

package tinylog

// SetExtension registers ext as the side-channel observer invoked before the
// sink on every enabled record. There is no default extension; passing nil
// removes the current one. The last call wins.
func SetExtension(ext Extension) {
	slots.registerExtension(ext)
}
