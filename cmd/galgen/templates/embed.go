// file: cmd/galgen/templates/embed.go
package templates

import "embed"

// TemplateFS holds the commandline forms offered by `galgen new` and the
// review summary template.
//
//go:embed forms/*.yaml summary.tmpl
var TemplateFS embed.FS
