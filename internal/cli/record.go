// file: internal/cli/record.go
package cli

import (
	"bytes"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"galgen/internal/cmdline"
	"galgen/internal/formats"
)

// ToolRecord is everything the interactive session learned about a tool.
type ToolRecord struct {
	Tool        ToolInfo          `json:"tool" yaml:"tool"`
	Commandline CommandlineRecord `json:"commandline" yaml:"commandline"`
	// Internal is true when the executable ships inside the tool directory.
	Internal bool `json:"internalExecutable" yaml:"internalExecutable"`
}

type ToolInfo struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Help        string `json:"help,omitempty" yaml:"help,omitempty"`
}

type CommandlineRecord struct {
	Raw        string              `json:"raw" yaml:"raw"`
	Form       string              `json:"form,omitempty" yaml:"form,omitempty"`
	Invocation *cmdline.Invocation `json:"invocation" yaml:"invocation"`
	Arguments  []ArgumentRecord    `json:"arguments" yaml:"arguments"`
}

// ArgumentRecord is a positional token together with the role and format
// confirmed by the user.
type ArgumentRecord struct {
	Token    string       `json:"token" yaml:"token"`
	Position int          `json:"position" yaml:"position"`
	Role     formats.Role `json:"role" yaml:"role"`
	Format   string       `json:"format,omitempty" yaml:"format,omitempty"`
	Captured bool         `json:"captured,omitempty" yaml:"captured,omitempty"`
}

// Encode renders the record as "yaml" or "json".
func (r *ToolRecord) Encode(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return r.EncodeYAML(time.Now())
	case "json":
		return r.EncodeJSON()
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// EncodeYAML marshals the record with a header comment stamped with created.
func (r *ToolRecord) EncodeYAML(created time.Time) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2) // Set indentation to 2 spaces

	if err := encoder.Encode(r); err != nil {
		return nil, fmt.Errorf("failed to marshal tool record to YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal tool record to YAML: %w", err)
	}

	// Add header comment
	header := fmt.Sprintf("# Galaxy tool record created on %s\n#\n", created.Format(time.RFC1123))
	return append([]byte(header), buf.Bytes()...), nil
}

// EncodeJSON marshals the record as indented JSON.
func (r *ToolRecord) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool record to JSON: %w", err)
	}
	return append(data, '\n'), nil
}
