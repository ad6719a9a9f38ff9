package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aki/gitctx/internal/core/git"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatPretty represents human-readable output format
	FormatPretty OutputFormat = "pretty"
	// FormatJSON represents JSON output format
	FormatJSON OutputFormat = "json"
)

// Formatter renders extraction results for one output mode. Commands
// hand it the domain value; the formatter decides how it appears.
type Formatter interface {
	// Output formats and displays any data
	Output(data interface{}) error

	// IsJSON returns true if this formatter outputs JSON
	IsJSON() bool
}

// prettyFormatter renders the styled human-readable views.
type prettyFormatter struct{}

// NewPrettyFormatter creates a new pretty formatter
func NewPrettyFormatter() Formatter {
	return &prettyFormatter{}
}

func (f *prettyFormatter) Output(data interface{}) error {
	switch v := data.(type) {
	case *git.Context:
		PrintRepository(&v.Repository)
		PrintBranch(&v.Branch)
		PrintChangedFiles(v.ChangedFiles)
		PrintCommits(v.RecentCommits)
		PrintDiffStats(&v.Diff.Stats)
	case []git.ChangedFile:
		PrintChangedFiles(v)
	case []git.Commit:
		PrintCommits(v)
	case *git.ParsedDiff:
		PrintDiff(v)
	case *git.DiffStats:
		PrintDiffStats(v)
	case string:
		fmt.Print(v)
	default:
		fmt.Println(v)
	}
	return nil
}

func (f *prettyFormatter) IsJSON() bool {
	return false
}

// jsonFormatter emits machine-readable JSON, one document per call.
type jsonFormatter struct {
	encoder *json.Encoder
}

// NewJSONFormatter creates a JSON formatter writing to stdout.
func NewJSONFormatter() Formatter {
	return NewJSONFormatterTo(os.Stdout)
}

// NewJSONFormatterTo creates a JSON formatter writing to w.
func NewJSONFormatterTo(w io.Writer) Formatter {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonFormatter{encoder: encoder}
}

func (f *jsonFormatter) Output(data interface{}) error {
	return f.encoder.Encode(data)
}

func (f *jsonFormatter) IsJSON() bool {
	return true
}

// GlobalFormatter is the formatter selected by the --json flag.
var GlobalFormatter Formatter = NewPrettyFormatter()

// SetGlobalFormatter sets the global formatter
func SetGlobalFormatter(format OutputFormat) error {
	switch format {
	case FormatPretty:
		GlobalFormatter = NewPrettyFormatter()
	case FormatJSON:
		GlobalFormatter = NewJSONFormatter()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}
