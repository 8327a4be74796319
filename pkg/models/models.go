// Package models holds the shared data types passed between the locator,
// extractor and reconciler.
package models

import "fmt"

// Category classifies a report entry.
type Category string

const (
	CategoryMissing        Category = "missing"
	CategoryDropped        Category = "dropped"
	CategoryChangedDefault Category = "changed-default"
)

// Occurrence is a single setting statement found in a config file, either
// live or commented out. Occurrences are never mutated after extraction;
// multiple occurrences may share a name and the reconciler decides precedence.
type Occurrence struct {
	Name      string `json:"name" yaml:"name"`
	RawValue  string `json:"rawValue" yaml:"rawValue"`
	Commented bool   `json:"commented" yaml:"commented"`
	File      string `json:"file" yaml:"file"`
	Line      int    `json:"line" yaml:"line"`
}

// ReportEntry is one finding produced by the reconciler.
type ReportEntry struct {
	Category     Category `json:"category" yaml:"category"`
	Name         string   `json:"name" yaml:"name"`
	File         string   `json:"file,omitempty" yaml:"file,omitempty"`
	Line         int      `json:"line,omitempty" yaml:"line,omitempty"`
	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
	Expected     string   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Found        string   `json:"found,omitempty" yaml:"found,omitempty"`
	Unverifiable bool     `json:"unverifiable,omitempty" yaml:"unverifiable,omitempty"`
}

// Report is the ordered, in-memory result of a reconciliation run.
type Report struct {
	Missing         []ReportEntry `json:"missing" yaml:"missing"`
	Dropped         []ReportEntry `json:"dropped" yaml:"dropped"`
	ChangedDefaults []ReportEntry `json:"changedDefaults" yaml:"changedDefaults"`
	Warnings        []Warning     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Total returns the number of findings across all categories, warnings
// excluded.
func (r *Report) Total() int {
	return len(r.Missing) + len(r.Dropped) + len(r.ChangedDefaults)
}

// Warning is a non-fatal problem encountered while locating or parsing config
// files. Warnings are surfaced alongside the report, never instead of it.
type Warning struct {
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	if w.File == "" {
		return w.Message
	}
	if w.Line == 0 {
		return fmt.Sprintf("%s: %s", w.File, w.Message)
	}
	return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Message)
}
