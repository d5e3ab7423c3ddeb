//go:build tinylog_no_extension

package tinylog

const extensionBuilt = false
