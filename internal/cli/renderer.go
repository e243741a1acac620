// file: internal/cli/renderer.go
package cli

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"galgen/cmd/galgen/templates"
	"galgen/internal/cmdline"
	"galgen/internal/formats"
)

const (
	formsDir        = "forms"
	summaryTemplate = "summary.tmpl"
)

// Form is a common commandline shape offered as a starting point.
type Form struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Example     string `yaml:"example"`
	Description string `yaml:"description"`
}

// SummaryData feeds the review summary template.
type SummaryData struct {
	Raw         string
	Invocation  *cmdline.Invocation
	Annotations []formats.Annotation
}

// Renderer handles the logic for listing and showing commandline forms and
// rendering the review summary.
type Renderer struct {
	templateFS fs.FS
}

// NewRenderer creates a renderer over the embedded templates.
func NewRenderer() *Renderer {
	return NewRendererFS(templates.TemplateFS)
}

// NewRendererFS creates a renderer over any file system laid out like the
// embedded one.
func NewRendererFS(fsys fs.FS) *Renderer {
	return &Renderer{templateFS: fsys}
}

// ListForms returns the available forms ordered by file name.
func (r *Renderer) ListForms() ([]Form, error) {
	var forms []Form
	err := fs.WalkDir(r.templateFS, formsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")) {
			return nil
		}
		form, err := r.readForm(p)
		if err != nil {
			return err
		}
		forms = append(forms, *form)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded forms: %w", err)
	}
	return forms, nil
}

// GetForm returns the named form.
func (r *Renderer) GetForm(name string) (*Form, error) {
	content, err := r.GetFormContent(name)
	if err != nil {
		return nil, err
	}
	return parseForm(name, []byte(content))
}

// GetFormContent returns the raw content of a specific form.
func (r *Renderer) GetFormContent(name string) (string, error) {
	content, err := fs.ReadFile(r.templateFS, path.Join(formsDir, name+".yaml"))
	if err != nil {
		// Try .yml as a fallback
		content, err = fs.ReadFile(r.templateFS, path.Join(formsDir, name+".yml"))
		if err != nil {
			return "", fmt.Errorf("form '%s' not found", name)
		}
	}
	return string(content), nil
}

func (r *Renderer) readForm(p string) (*Form, error) {
	content, err := fs.ReadFile(r.templateFS, p)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	return parseForm(name, content)
}

func parseForm(name string, content []byte) (*Form, error) {
	var form Form
	if err := yaml.Unmarshal(content, &form); err != nil {
		return nil, fmt.Errorf("failed to parse form '%s': %w", name, err)
	}
	if form.Name == "" {
		form.Name = name
	}
	return &form, nil
}

// RenderSummary renders the review summary of a classified commandline.
func (r *Renderer) RenderSummary(data SummaryData) (string, error) {
	content, err := fs.ReadFile(r.templateFS, summaryTemplate)
	if err != nil {
		return "", fmt.Errorf("summary template not found: %w", err)
	}

	tmpl, err := template.New(summaryTemplate).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
