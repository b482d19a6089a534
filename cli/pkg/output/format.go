package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// Format represents the report format
type Format string

const (
	// FormatText is the default human-readable text format
	FormatText Format = "text"
	// FormatJSON is the JSON output format
	FormatJSON Format = "json"
)

// Result describes a document written by a command.
type Result struct {
	Path       string        `json:"path"`
	Bytes      int           `json:"bytes"`
	Segments   int           `json:"segments,omitempty"`
	Timestamps int           `json:"timestamps,omitempty"`
	Images     int           `json:"images,omitempty"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

func (r Result) String() string {
	path := r.Path
	if path == "-" {
		path = "stdout"
	}
	return fmt.Sprintf("Wrote %s (%s) in %s", path, humanize.IBytes(uint64(r.Bytes)), r.Elapsed.Round(time.Millisecond))
}

// Formatter writes reports in one format
type Formatter struct {
	format Format
	writer io.Writer
}

// New creates a new Formatter writing to stdout
func New(format Format) *Formatter {
	return &Formatter{
		format: format,
		writer: os.Stdout,
	}
}

// SetWriter redirects the report, e.g. to stderr when the document itself
// goes to stdout
func (f *Formatter) SetWriter(w io.Writer) {
	f.writer = w
}

// Output writes data in the configured format
func (f *Formatter) Output(data interface{}) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatText:
		_, err := fmt.Fprintln(f.writer, data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// IsJSON returns true if the format is JSON
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// AddFormatFlag adds a --format flag to a cobra command. -o is left free
// for the output file.
func AddFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "text", "Report format (text|json)")
}

// GetFormatFromCmd extracts the report format from a cobra command's flags
func GetFormatFromCmd(cmd *cobra.Command) (Format, error) {
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return FormatText, err
	}

	format := Format(formatStr)
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return FormatText, fmt.Errorf("invalid report format: %s (must be 'text' or 'json')", formatStr)
	}
}
