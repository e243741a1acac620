// file: internal/formats/formats.go

package formats

import (
	"path/filepath"
	"sort"
	"strings"
)

// defaultFormats maps each canonical format name to its extra file
// extensions. A format name is always an extension for itself.
var defaultFormats = map[string][]string{
	"fasta": {"fa", "fas"},
	"csv":   {},
	"tsv":   {"tabular", "tab"},
}

// Resolver maps file extensions to canonical format names.
type Resolver struct {
	extToFormat map[string]string
	formats     map[string][]string
}

// NewResolver builds a resolver over the built-in table extended by extra.
// Extensions in extra may be given with or without a leading dot.
func NewResolver(extra map[string][]string) *Resolver {
	r := &Resolver{
		extToFormat: make(map[string]string),
		formats:     make(map[string][]string),
	}
	for format, exts := range defaultFormats {
		r.add(format, exts)
	}
	for format, exts := range extra {
		r.add(format, exts)
	}
	return r
}

func (r *Resolver) add(format string, exts []string) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return
	}
	if _, ok := r.formats[format]; !ok {
		r.formats[format] = nil
	}
	r.extToFormat[format] = format

	for _, ext := range exts {
		ext = normalizeExt(ext)
		if ext == "" || ext == format {
			continue
		}
		r.extToFormat[ext] = format
		r.formats[format] = appendUnique(r.formats[format], ext)
	}
}

// Lookup returns the format for a file name based on its extension.
func (r *Resolver) Lookup(name string) (string, bool) {
	ext := normalizeExt(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	format, ok := r.extToFormat[ext]
	return format, ok
}

// IsFormat reports whether format is a known canonical format name.
func (r *Resolver) IsFormat(format string) bool {
	_, ok := r.formats[strings.ToLower(format)]
	return ok
}

// Formats returns the known format names, sorted.
func (r *Resolver) Formats() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extensions returns every extension that resolves to format, including
// the format name itself, sorted.
func (r *Resolver) Extensions(format string) []string {
	format = strings.ToLower(format)
	if _, ok := r.formats[format]; !ok {
		return nil
	}
	exts := append([]string{format}, r.formats[format]...)
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

func appendUnique(slice []string, item string) []string {
	for _, s := range slice {
		if s == item {
			return slice
		}
	}
	return append(slice, item)
}
