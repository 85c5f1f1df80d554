package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// render writes value to w in the configured format. Text output is
// delegated to text so each command controls its own layout.
func render(w io.Writer, format string, value any, text func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case "text":
		return text(w)
	case "json":
		if err := json.NewEncoder(w).Encode(value); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
	}
}

// writeLines prints each item on its own line.
func writeLines[T any](w io.Writer, items []T) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
