package tinylog

import "fmt"

// Metadata describes the call site that produced a Record.
type Metadata struct {
	// Module is the import path of the calling package.
	Module string
	// File is the absolute path of the source file.
	File string
	// Line is the line number within File.
	Line int
}

// Record is the unit passed from a call site to the extension and the sink.
// The message is kept as a template plus arguments and is only formatted when
// Message or AppendMessage is called. Records are values; the core never
// retains one after Dispatch returns.
type Record struct {
	level    Level
	format   string
	args     []any
	metadata Metadata
	hasMeta  bool
}

// NewRecord builds a Record for level from a fmt-style template.
func NewRecord(level Level, format string, args ...any) Record {
	return Record{level: level, format: format, args: args}
}

// WithMetadata returns a copy of r carrying md.
func (r Record) WithMetadata(md Metadata) Record {
	r.metadata = md
	r.hasMeta = true
	return r
}

// Level returns the record's severity.
func (r *Record) Level() Level { return r.level }

// Format returns the unformatted message template.
func (r *Record) Format() string { return r.format }

// Args returns the positional arguments of the template. The slice must not
// be modified.
func (r *Record) Args() []any { return r.args }

// Metadata returns the call-site metadata and whether it was captured.
func (r *Record) Metadata() (Metadata, bool) { return r.metadata, r.hasMeta }

// Message formats the record's message.
func (r *Record) Message() string {
	if len(r.args) == 0 {
		return r.format
	}
	return fmt.Sprintf(r.format, r.args...)
}

// AppendMessage appends the formatted message to dst.
func (r *Record) AppendMessage(dst []byte) []byte {
	if len(r.args) == 0 {
		return append(dst, r.format...)
	}
	return fmt.Appendf(dst, r.format, r.args...)
}
