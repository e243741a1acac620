// file: internal/cmdline/classifier_test.go

package cmdline

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_ExampleInvocations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Invocation
	}{
		{
			name: "explicit interpreter wins over extension",
			raw:  "ruby myscript.rb --foo outfile.txt",
			want: Invocation{
				Executable:        Executable{Name: "myscript.rb", Interpreter: InterpreterRuby, InterpreterToken: "ruby"},
				Options:           []string{"--foo"},
				TrailingArguments: []string{"outfile.txt"},
			},
		},
		{
			name: "interpreter inferred from extension",
			raw:  "myscript.rb --foo outfile.txt",
			want: Invocation{
				Executable:        Executable{Name: "myscript.rb", Interpreter: InterpreterRuby},
				Options:           []string{"--foo"},
				TrailingArguments: []string{"outfile.txt"},
			},
		},
		{
			name: "options end at first positional",
			raw:  "myscript.rb --foo --bar outfile.txt",
			want: Invocation{
				Executable:        Executable{Name: "myscript.rb", Interpreter: InterpreterRuby},
				Options:           []string{"--foo", "--bar"},
				TrailingArguments: []string{"outfile.txt"},
			},
		},
		{
			name: "plain executable without options",
			raw:  "foo infile.txt outfile.txt",
			want: Invocation{
				Executable:        Executable{Name: "foo"},
				Options:           []string{},
				TrailingArguments: []string{"infile.txt", "outfile.txt"},
			},
		},
		{
			name: "redirection captured",
			raw:  "ruby myscript.rb n x infile.txt > outfile",
			want: Invocation{
				Executable:        Executable{Name: "myscript.rb", Interpreter: InterpreterRuby, InterpreterToken: "ruby"},
				Options:           []string{},
				TrailingArguments: []string{"n", "x", "infile.txt"},
				CapturedOutput:    "outfile",
			},
		},
		{
			name: "interpreter token is case insensitive",
			raw:  "PYTHON tool.sh -v data.fa",
			want: Invocation{
				Executable:        Executable{Name: "tool.sh", Interpreter: InterpreterPython, InterpreterToken: "PYTHON"},
				Options:           []string{"-v"},
				TrailingArguments: []string{"data.fa"},
			},
		},
		{
			name: "extension is case insensitive",
			raw:  "Align.PL in.fa",
			want: Invocation{
				Executable:        Executable{Name: "Align.PL", Interpreter: InterpreterPerl},
				Options:           []string{},
				TrailingArguments: []string{"in.fa"},
			},
		},
		{
			name: "python script in a directory",
			raw:  "./bin/convert.py -q in.csv",
			want: Invocation{
				Executable:        Executable{Name: "./bin/convert.py", Interpreter: InterpreterPython},
				Options:           []string{"-q"},
				TrailingArguments: []string{"in.csv"},
			},
		},
		{
			name: "option shaped token after positional stays positional",
			raw:  "blast -v query.fa --out hits.tsv",
			want: Invocation{
				Executable:        Executable{Name: "blast"},
				Options:           []string{"-v"},
				TrailingArguments: []string{"query.fa", "--out", "hits.tsv"},
			},
		},
		{
			name: "bare letter flags before dashed option",
			raw:  "tar x -f archive.tar",
			want: Invocation{
				Executable:        Executable{Name: "tar"},
				Options:           []string{"x", "-f"},
				TrailingArguments: []string{"archive.tar"},
			},
		},
		{
			name: "bare letter flags at end of arguments",
			raw:  "ps a u x",
			want: Invocation{
				Executable:        Executable{Name: "ps"},
				Options:           []string{"a", "u", "x"},
				TrailingArguments: []string{},
			},
		},
		{
			name: "short cluster is a single option",
			raw:  "sort -rn data.tab",
			want: Invocation{
				Executable:        Executable{Name: "sort"},
				Options:           []string{"-rn"},
				TrailingArguments: []string{"data.tab"},
			},
		},
		{
			name: "executable only",
			raw:  "uptime",
			want: Invocation{
				Executable:        Executable{Name: "uptime"},
				Options:           []string{},
				TrailingArguments: []string{},
			},
		},
		{
			name: "redirection straight after executable",
			raw:  "date > now.txt",
			want: Invocation{
				Executable:        Executable{Name: "date"},
				Options:           []string{},
				TrailingArguments: []string{},
				CapturedOutput:    "now.txt",
			},
		},
		{
			name: "quoted argument with spaces",
			raw:  `grep -i "two words" notes.txt`,
			want: Invocation{
				Executable:        Executable{Name: "grep"},
				Options:           []string{"-i"},
				TrailingArguments: []string{"two words", "notes.txt"},
			},
		},
		{
			name: "lone dashes are positional",
			raw:  "cat -- -",
			want: Invocation{
				Executable:        Executable{Name: "cat"},
				Options:           []string{},
				TrailingArguments: []string{"--", "-"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.raw, err)
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, *got, tt.want)
			}
		})
	}
}

func TestClassify_Errors(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		wantReason string
		wantPos    int
	}{
		{
			name:       "no tokens",
			tokens:     []string{},
			wantReason: ReasonMissingExecutable,
			wantPos:    -1,
		},
		{
			name:       "nil tokens",
			tokens:     nil,
			wantReason: ReasonMissingExecutable,
			wantPos:    -1,
		},
		{
			name:       "lone interpreter",
			tokens:     []string{"ruby"},
			wantReason: ReasonMissingExecutable,
			wantPos:    -1,
		},
		{
			name:       "interpreter followed by redirection",
			tokens:     []string{"perl", ">", "out.txt"},
			wantReason: ReasonMissingExecutable,
			wantPos:    -1,
		},
		{
			name:       "starts with redirection",
			tokens:     []string{">", "out.txt"},
			wantReason: ReasonMissingExecutable,
			wantPos:    -1,
		},
		{
			name:       "bare trailing redirection",
			tokens:     []string{"foo", "in.txt", ">"},
			wantReason: ReasonDanglingRedirection,
			wantPos:    2,
		},
		{
			name:       "redirection followed by two tokens",
			tokens:     []string{"foo", ">", "out.txt", "extra"},
			wantReason: ReasonDanglingRedirection,
			wantPos:    1,
		},
		{
			name:       "double redirection",
			tokens:     []string{"foo", ">", ">"},
			wantReason: ReasonDanglingRedirection,
			wantPos:    1,
		},
		{
			name:       "redirection after interpreter prefix",
			tokens:     []string{"python", "run.py", "a.txt", ">"},
			wantReason: ReasonDanglingRedirection,
			wantPos:    3,
		},
		{
			name:       "value attached long option",
			tokens:     []string{"foo", "--out=result.txt", "in.txt"},
			wantReason: ReasonUnsupportedOptionForm,
			wantPos:    1,
		},
		{
			name:       "value attached short option after positional",
			tokens:     []string{"foo", "in.txt", "-n=3"},
			wantReason: ReasonUnsupportedOptionForm,
			wantPos:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Classify(tt.tokens)
			if err == nil {
				t.Fatalf("Classify(%q) = %+v, want error", tt.tokens, inv)
			}
			if inv != nil {
				t.Errorf("Classify(%q) returned partial result %+v", tt.tokens, inv)
			}
			if !errors.Is(err, ErrClassification) {
				t.Errorf("errors.Is(err, ErrClassification) = false for %v", err)
			}
			var cerr *ClassificationError
			if !errors.As(err, &cerr) {
				t.Fatalf("error %T is not a *ClassificationError", err)
			}
			if cerr.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", cerr.Reason, tt.wantReason)
			}
			if cerr.Position != tt.wantPos {
				t.Errorf("Position = %d, want %d", cerr.Position, tt.wantPos)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"foo infile.txt outfile.txt",
		"ruby myscript.rb --foo outfile.txt",
		"myscript.rb --foo --bar outfile.txt",
		"ruby myscript.rb n x infile.txt > outfile",
	}

	for _, raw := range inputs {
		first, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", raw, err)
		}
		second, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", raw, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Parse(%q) not idempotent: %+v vs %+v", raw, first, second)
		}
	}
}

func TestClassify_DoesNotAliasInput(t *testing.T) {
	tokens := []string{"foo", "-v", "in.txt"}
	inv, err := Classify(tokens)
	if err != nil {
		t.Fatal(err)
	}
	tokens[1] = "-changed"
	tokens[2] = "changed.txt"
	if inv.Options[0] != "-v" || inv.TrailingArguments[0] != "in.txt" {
		t.Errorf("invocation changed with its input: %+v", inv)
	}
}

func TestInvocation_Tokens(t *testing.T) {
	inv, err := Parse("ruby myscript.rb -v n x infile.txt > outfile")
	if err != nil {
		t.Fatal(err)
	}

	want := []Token{
		{Kind: KindInterpreter, Text: "ruby"},
		{Kind: KindExecutable, Text: "myscript.rb", Meta: "ruby"},
		{Kind: KindOption, Text: "-v"},
		{Kind: KindArgument, Text: "n"},
		{Kind: KindArgument, Text: "x"},
		{Kind: KindArgument, Text: "infile.txt"},
		{Kind: KindCapturedOutput, Text: "outfile"},
	}
	if got := inv.Tokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %+v, want %+v", got, want)
	}
}

func TestInvocation_KeepsInterpreterSpelling(t *testing.T) {
	inv, err := Parse("PYTHON tool.sh -v data.fa")
	if err != nil {
		t.Fatal(err)
	}
	if got := inv.Tokens()[0]; got != (Token{Kind: KindInterpreter, Text: "PYTHON"}) {
		t.Errorf("Tokens()[0] = %+v, want the interpreter as written", got)
	}
	if got := inv.Executable.Interpreter; got != InterpreterPython {
		t.Errorf("Interpreter = %q, want %q", got, InterpreterPython)
	}
	if got, want := inv.String(), "PYTHON tool.sh -v data.fa"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	inferred, err := Parse("tool.py data.fa")
	if err != nil {
		t.Fatal(err)
	}
	if inferred.Executable.ExplicitInterpreter() {
		t.Errorf("ExplicitInterpreter() = true for an inferred interpreter")
	}
}

func TestInvocation_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"foo infile.txt outfile.txt",
		"myscript.py --foo 'two words' > out.txt",
		`grep -i "it's here" notes.txt`,
		"perl run.pl '#literal'",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			inv, err := Parse(raw)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", raw, err)
			}
			again, err := Parse(inv.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", inv.String(), err)
			}
			if !reflect.DeepEqual(inv, again) {
				t.Errorf("round trip through %q changed invocation: %+v vs %+v", inv.String(), inv, again)
			}
		})
	}
}

func TestIsOptionShaped(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"x", true},
		{"-v", true},
		{"--foo", true},
		{"--foo-bar", true},
		{"-in.file", true},
		{"--under_score", true},
		{"xy", false},
		{"-", false},
		{"--", false},
		{"in.txt", false},
		{"1", false},
		{"--foo=bar", false},
	}

	for _, tt := range tests {
		if got := IsOptionShaped(tt.tok); got != tt.want {
			t.Errorf("IsOptionShaped(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	if KindCapturedOutput.String() != "captured_output" {
		t.Errorf("KindCapturedOutput.String() = %q", KindCapturedOutput.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
}

func TestInterpreter_Valid(t *testing.T) {
	for _, i := range Interpreters() {
		if !i.Valid() {
			t.Errorf("%q.Valid() = false", i)
		}
	}
	if !InterpreterNone.Valid() {
		t.Error("InterpreterNone.Valid() = false")
	}
	if Interpreter("bash").Valid() {
		t.Error(`Interpreter("bash").Valid() = true`)
	}
}
