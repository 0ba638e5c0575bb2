// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldFiles = "files"

	// Language fields.
	FieldLanguages = "languages"

	// Chunk fields.
	FieldChunks   = "chunks"
	FieldKind     = "kind"
	FieldOrigLine = "orig_line"
	FieldOrigCol  = "orig_col"
	FieldText     = "text"

	// Mutation trace fields.
	FieldOp       = "op"
	FieldCallSite = "call_site"
	FieldOld      = "old"
	FieldNew      = "new"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
