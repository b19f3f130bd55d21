package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// tabPadding is the column gap used by table output.
const tabPadding = 2

// ParseOutputFormat validates a user-supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json, or yaml)", s)
	}
}

func renderNavResult(w io.Writer, format OutputFormat, result NavResult) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderNavTable(w, result)
	}
}

func renderNavTable(w io.Writer, result NavResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "STEP\tACTION\tRESULT\tPAGE\tPAGE SIZE")
	for _, s := range result.Steps {
		status, page, size := "rejected", "-", "-"
		if s.Accepted {
			status = "changed"
		}
		if s.Change != nil {
			page = strconv.Itoa(s.Change.Page)
			size = strconv.Itoa(s.Change.PageSize)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.Step, s.Action, status, page, size)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	f := result.Final
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Page:      %d (size %d)\n", f.CurrentPage, f.PageSize)
	fmt.Fprintf(w, "Items:     %s\n", f.ItemText)
	fmt.Fprintf(w, "Pages:     %s\n", f.PageText)
	fmt.Fprintf(w, "Previous:  %s\n", yesNo(f.HasPrevious))
	fmt.Fprintf(w, "Next:      %s\n", yesNo(f.HasNext))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
