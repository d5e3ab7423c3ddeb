//go:build !tinylog_no_metadata

package tinylog

const metadataBuilt = true
