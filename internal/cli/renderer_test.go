// file: internal/cli/renderer_test.go
package cli

import (
	"strings"
	"testing"
	"testing/fstest"

	"galgen/internal/cmdline"
	"galgen/internal/formats"
)

func TestRenderer_ListForms(t *testing.T) {
	forms, err := NewRenderer().ListForms()
	if err != nil {
		t.Fatalf("ListForms() error = %v", err)
	}

	wantNames := []string{"infile-outfile", "redirect", "script-redirect", "script"}
	if len(forms) != len(wantNames) {
		t.Fatalf("ListForms() returned %d forms, want %d", len(forms), len(wantNames))
	}
	for i, f := range forms {
		if f.Name != wantNames[i] {
			t.Errorf("forms[%d].Name = %q, want %q", i, f.Name, wantNames[i])
		}
	}
}

func TestRenderer_FormExamplesClassify(t *testing.T) {
	forms, err := NewRenderer().ListForms()
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range forms {
		t.Run(f.Name, func(t *testing.T) {
			inv, err := cmdline.Parse(f.Example)
			if err != nil {
				t.Fatalf("example %q does not classify: %v", f.Example, err)
			}
			if got, want := inv.HasCapturedOutput(), strings.Contains(f.Pattern, ">"); got != want {
				t.Errorf("captured output = %v, pattern %q implies %v", got, f.Pattern, want)
			}
			if got, want := inv.Executable.Interpreter != cmdline.InterpreterNone, strings.HasPrefix(f.Pattern, "interpreter"); got != want {
				t.Errorf("interpreter present = %v, pattern %q implies %v", got, f.Pattern, want)
			}
		})
	}
}

func TestRenderer_GetForm(t *testing.T) {
	r := NewRenderer()

	form, err := r.GetForm("redirect")
	if err != nil {
		t.Fatalf("GetForm() error = %v", err)
	}
	if form.Pattern != "exe option* infile > outfile" {
		t.Errorf("Pattern = %q", form.Pattern)
	}

	if _, err := r.GetForm("nope"); err == nil || !strings.Contains(err.Error(), "form 'nope' not found") {
		t.Errorf("GetForm(nope) error = %v", err)
	}
}

func TestRenderer_GetFormYmlFallback(t *testing.T) {
	r := NewRendererFS(fstest.MapFS{
		"forms/custom.yml": {Data: []byte("pattern: exe infile\nexample: tool in.fa\n")},
	})
	form, err := r.GetForm("custom")
	if err != nil {
		t.Fatalf("GetForm() error = %v", err)
	}
	if form.Name != "custom" || form.Example != "tool in.fa" {
		t.Errorf("GetForm() = %+v", form)
	}
}

func TestRenderer_RenderSummary(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "script with captured output",
			raw:  "perl filter.pl -q in.fa > out.fa",
			want: `Commandline: perl filter.pl -q in.fa > out.fa
  executable: filter.pl (run by perl)
  options:    -q
  arguments:
    in.fa [input] format=fasta
    > out.fa [output] format=fasta
`,
		},
		{
			name: "bare executable",
			raw:  "uptime",
			want: `Commandline: uptime
  executable: uptime
  options:    (none)
  arguments: (none)
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := cmdline.Parse(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			got, err := r.RenderSummary(SummaryData{
				Raw:         tt.raw,
				Invocation:  inv,
				Annotations: formats.Annotate(inv, formats.NewResolver(nil)),
			})
			if err != nil {
				t.Fatalf("RenderSummary() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderSummary() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderer_MissingSummary(t *testing.T) {
	r := NewRendererFS(fstest.MapFS{})
	if _, err := r.RenderSummary(SummaryData{}); err == nil {
		t.Error("RenderSummary() without a template should fail")
	}
}
