package result

// Warning is a non-fatal finding from a compile pass (e.g. two display
// names sanitizing to the same declaration name).
type Warning struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	NodeID     string `json:"node_id,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CompileResult is the outcome of compiling a node collection: the full
// artifact text plus any diagnostics. Compilation that runs at all always
// yields text; warnings never suppress output.
type CompileResult struct {
	Text     string    `json:"-"`
	Warnings []Warning `json:"warnings,omitempty"`
}
