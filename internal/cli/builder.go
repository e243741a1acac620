// file: internal/cli/builder.go
package cli

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"galgen/internal/cmdline"
	"galgen/internal/formats"
	"galgen/internal/logger"
)

// BuilderConfig carries the collaborators of a ToolBuilder. Nil fields get
// defaults.
type BuilderConfig struct {
	Renderer    *Renderer
	Resolver    *formats.Resolver
	Logger      *logger.Logger
	ToolVersion string
}

// ToolBuilder interactively constructs a ToolRecord.
type ToolBuilder struct {
	prompter    Prompter
	renderer    *Renderer
	resolver    *formats.Resolver
	logger      *logger.Logger
	toolVersion string
}

// NewToolBuilder creates a new interactive tool builder.
func NewToolBuilder(p Prompter, cfg BuilderConfig) *ToolBuilder {
	tb := &ToolBuilder{
		prompter:    p,
		renderer:    cfg.Renderer,
		resolver:    cfg.Resolver,
		logger:      cfg.Logger,
		toolVersion: cfg.ToolVersion,
	}
	if tb.renderer == nil {
		tb.renderer = NewRenderer()
	}
	if tb.resolver == nil {
		tb.resolver = formats.NewResolver(nil)
	}
	if tb.logger == nil {
		tb.logger = logger.NewNopLogger()
	}
	if tb.toolVersion == "" {
		tb.toolVersion = "0.1"
	}
	return tb
}

// MakeToolID derives a default tool id from the tool name.
func MakeToolID(name string) string {
	return strcase.ToSnake(strings.TrimSpace(name))
}

// Build starts the interactive process to describe a complete tool.
func (tb *ToolBuilder) Build() (*ToolRecord, error) {
	var rec ToolRecord

	// 1. Tool details
	tb.prompter.Section("Galaxy Tool Details")
	tool, err := tb.getToolDetails()
	if err != nil {
		return nil, err
	}
	rec.Tool = *tool

	// 2. Commandline
	tb.prompter.Section("Commandline")
	cl, err := tb.getCommandline()
	if err != nil {
		return nil, err
	}
	rec.Commandline = *cl

	// 3. Generation details
	tb.prompter.Section("Generation Details")
	internal, err := tb.getGenerationDetails(cl.Invocation)
	if err != nil {
		return nil, err
	}
	rec.Internal = internal

	tb.logger.Info("tool record built",
		"id", rec.Tool.ID,
		"executable", cl.Invocation.Executable.Name,
		"arguments", len(cl.Arguments))
	return &rec, nil
}

func (tb *ToolBuilder) getToolDetails() (*ToolInfo, error) {
	var tool ToolInfo
	var err error

	tool.Name, err = tb.prompter.AskValid("What is the tool name",
		"The name is shown in the Galaxy tool menu, e.g. 'Fasta Filter'.", "", Nonblank)
	if err != nil {
		return nil, err
	}

	tool.Version, err = tb.prompter.AskValid("What is the tool version", "", tb.toolVersion, Nonblank)
	if err != nil {
		return nil, err
	}

	tool.ID, err = tb.prompter.AskValid("What is the tool id",
		"The id is unique within a Galaxy instance and may not contain spaces.",
		MakeToolID(tool.Name), Chain(Nonblank, ToolID))
	if err != nil {
		return nil, err
	}

	tool.Description, err = tb.prompter.AskValid("Give a one line description of the tool (may be blank)", "", "", nil)
	if err != nil {
		return nil, err
	}

	tool.Help, err = tb.prompter.AskValid("Give help text for the tool (may be blank)", "", "", nil)
	if err != nil {
		return nil, err
	}

	return &tool, nil
}

func (tb *ToolBuilder) selectForm() (*Form, error) {
	forms, err := tb.renderer.ListForms()
	if err != nil {
		tb.logger.Warn("commandline forms unavailable", "error", err)
		return nil, nil
	}
	if len(forms) == 0 {
		return nil, nil
	}

	options := make([]string, len(forms))
	for i, f := range forms {
		options[i] = fmt.Sprintf("%-45s e.g. %s", f.Pattern, f.Example)
	}
	choice, err := tb.prompter.Select("What is the form of the commandline?", options, 0)
	if err != nil {
		return nil, err
	}
	return &forms[choice], nil
}

func (tb *ToolBuilder) getCommandline() (*CommandlineRecord, error) {
	form, err := tb.selectForm()
	if err != nil {
		return nil, err
	}
	var formName, example string
	if form != nil {
		formName, example = form.Name, form.Example
	}

	for {
		raw, err := tb.prompter.AskValid("Enter an example commandline", CommandlineHelp, example,
			Chain(Nonblank, Commandline))
		if err != nil {
			return nil, err
		}
		inv, err := cmdline.Parse(raw)
		if err != nil {
			return nil, err
		}
		tb.logger.Debug("classified example commandline",
			"raw", raw,
			"executable", inv.Executable.Name,
			"interpreter", string(inv.Executable.Interpreter),
			"options", len(inv.Options),
			"arguments", len(inv.TrailingArguments),
			"captured", inv.HasCapturedOutput())

		args, ok, err := tb.review(raw, inv)
		if err != nil {
			return nil, err
		}
		if ok {
			return &CommandlineRecord{
				Raw:        raw,
				Form:       formName,
				Invocation: inv,
				Arguments:  args,
			}, nil
		}
		// Offer the rejected commandline for editing.
		example = raw
	}
}

// review shows the classification and walks through its parts. ok is false
// when the user wants to re-enter the commandline.
func (tb *ToolBuilder) review(raw string, inv *cmdline.Invocation) (args []ArgumentRecord, ok bool, err error) {
	annotations := formats.Annotate(inv, tb.resolver)
	summary, err := tb.renderer.RenderSummary(SummaryData{
		Raw:         raw,
		Invocation:  inv,
		Annotations: annotations,
	})
	if err != nil {
		return nil, false, err
	}
	tb.prompter.Say("%s\n", summary)

	ok, err = tb.prompter.Confirm(fmt.Sprintf("Is '%s' the executable", inv.Executable.Name), true)
	if err != nil || !ok {
		return nil, false, err
	}
	if len(inv.Options) > 0 {
		ok, err = tb.prompter.Confirm(fmt.Sprintf("Are the options '%s' correct", strings.Join(inv.Options, " ")), true)
		if err != nil || !ok {
			return nil, false, err
		}
	}

	if len(annotations) > 0 {
		tb.prompter.Say("%s\n", cleanText(RoleHelp))
	}
	args = make([]ArgumentRecord, 0, len(annotations))
	for _, a := range annotations {
		arg, err := tb.reviewArgument(a)
		if err != nil {
			return nil, false, err
		}
		args = append(args, *arg)
	}
	return args, true, nil
}

func (tb *ToolBuilder) reviewArgument(a formats.Annotation) (*ArgumentRecord, error) {
	arg := ArgumentRecord{
		Token:    a.Token,
		Position: a.Position,
		Role:     a.Role,
		Captured: a.Captured,
	}

	// Captured output is always an output file.
	if !a.Captured {
		answer, err := tb.prompter.AskValid(
			fmt.Sprintf("Is '%s' an input, output or parameter (i/o/p)", a.Token),
			"", roleLetter(a), ShortChoice("iop"))
		if err != nil {
			return nil, err
		}
		arg.Role = roleFromLetter(answer)
	}

	if arg.Role != formats.RoleParam {
		format, err := tb.prompter.AskValid(fmt.Sprintf("What is the format of '%s'", a.Token),
			"", a.Format, Optional(Format(tb.resolver)))
		if err != nil {
			return nil, err
		}
		arg.Format = format
	}

	return &arg, nil
}

func (tb *ToolBuilder) getGenerationDetails(inv *cmdline.Invocation) (bool, error) {
	tb.prompter.Say("%s\n", cleanText(`An internal executable is shipped in the tool directory
and referenced relative to it. An external one is expected on the PATH.`))
	return tb.prompter.Confirm("Is the executable internal to the tool",
		inv.Executable.Interpreter != cmdline.InterpreterNone)
}

func roleLetter(a formats.Annotation) string {
	switch a.Role {
	case formats.RoleInput:
		return "i"
	case formats.RoleOutput:
		return "o"
	case formats.RoleParam:
		return "p"
	}
	if a.IsFile {
		return "i"
	}
	return "p"
}

func roleFromLetter(letter string) formats.Role {
	switch letter {
	case "i":
		return formats.RoleInput
	case "o":
		return formats.RoleOutput
	default:
		return formats.RoleParam
	}
}
