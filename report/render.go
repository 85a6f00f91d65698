package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects the rendering of a summary.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
	FormatYAML
)

var formatNames = map[Format]string{
	FormatTable: "table",
	FormatJSON:  "json",
	FormatYAML:  "yaml",
}

// String returns the canonical format name.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps a format name to its Format value.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("report: unknown output format %q", name)
}

// Render serializes the summary rows in the requested format.
func Render(s Summary, format Format) ([]byte, error) {
	rows := s.Rows()

	switch format {
	case FormatJSON:
		return json.MarshalIndent(rows, "", "  ")
	case FormatYAML:
		return yaml.Marshal(rows)
	case FormatTable:
		return renderTable(rows), nil
	}

	return nil, fmt.Errorf("report: unknown output format %q", format)
}

func renderTable(rows []Row) []byte {
	var buf bytes.Buffer

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "METRIC\tVALUE\tUNIT\tDOMAIN")

	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%.4f\t%s\t%s\n", r.Metric, r.Value, r.Unit, r.Domain)
	}

	w.Flush()

	return buf.Bytes()
}
