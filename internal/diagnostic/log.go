package diagnostic

import "log"

// LogReporter prints every diagnostic through a standard logger as soon as it
// is reported.
type LogReporter struct {
	logger      *log.Logger
	suggestions bool
}

// NewLogReporter returns a LogReporter writing to logger. A nil logger uses
// the standard logger.
func NewLogReporter(logger *log.Logger) *LogReporter {
	if logger == nil {
		logger = log.Default()
	}

	return &LogReporter{logger: logger, suggestions: true}
}

// WithoutSuggestions returns a copy of r that leaves "did you mean" hints out.
func (r *LogReporter) WithoutSuggestions() *LogReporter {
	out := *r
	out.suggestions = false

	return &out
}

// Report implements Reporter.
func (r *LogReporter) Report(d Diagnostic) {
	if !r.suggestions {
		d.Suggestions = nil
	}

	r.logger.Printf("[%s] %s", d.Severity, d.String())
}
