// file: internal/cli/prompt.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI Color Codes for better output
const (
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

var spaceRe = regexp.MustCompile(`\s+`)

// Prompter defines the interface for user interaction, allowing for mock implementations in tests.
type Prompter interface {
	Ask(question string) (string, error)
	AskWithDefault(question, defaultVal string) (string, error)
	// AskValid shows help once, then asks until validate accepts the
	// answer. A blank answer is replaced by defaultVal before validation.
	AskValid(question, help, defaultVal string, validate Validator) (string, error)
	Confirm(question string, defaultYes bool) (bool, error)
	Select(question string, options []string, defaultIdx int) (int, error)
	Section(title string)
	Say(format string, args ...interface{})
}

// StdinPrompter is the standard implementation of Prompter. It reads
// answers line by line and writes questions to out.
type StdinPrompter struct {
	reader *bufio.Reader
	out    io.Writer
	color  bool
}

// NewPrompter creates a new prompter that reads from standard input.
func NewPrompter() *StdinPrompter {
	return NewPrompterWithIO(os.Stdin, os.Stdout)
}

// NewPrompterWithIO creates a prompter over arbitrary streams. Colours are
// only used when out is a terminal.
func NewPrompterWithIO(in io.Reader, out io.Writer) *StdinPrompter {
	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &StdinPrompter{
		reader: bufio.NewReader(in),
		out:    out,
		color:  color,
	}
}

func (p *StdinPrompter) paint(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + ColorReset
}

// Ask poses a question to the user and returns their input.
func (p *StdinPrompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s ", p.paint(ColorYellow, question))
	input, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// AskWithDefault poses a question with a default value.
func (p *StdinPrompter) AskWithDefault(question, defaultVal string) (string, error) {
	q := fmt.Sprintf("%s [%s]:", question, defaultVal)
	input, err := p.Ask(q)
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultVal, nil
	}
	return input, nil
}

// AskValid asks until the answer passes validate.
func (p *StdinPrompter) AskValid(question, help, defaultVal string, validate Validator) (string, error) {
	if help != "" {
		fmt.Fprintf(p.out, "%s\n", cleanText(help))
	}

	q := cleanText(question)
	if defaultVal != "" {
		q = fmt.Sprintf("%s [%s]", q, defaultVal)
	}
	q += ":"

	for {
		input, err := p.Ask(q)
		if err != nil {
			return "", err
		}
		if input == "" {
			input = defaultVal
		}
		if validate == nil {
			return input, nil
		}
		value, err := validate(input)
		if err == nil {
			return value, nil
		}
		fmt.Fprintf(p.out, "%s\n", p.paint(ColorYellow, fmt.Sprintf("A problem: %v. Try again ...", err)))
	}
}

// Confirm asks a yes/no question. Answers such as "yes", "off" or "true"
// are understood.
func (p *StdinPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	def := "n"
	if defaultYes {
		def = "y"
	}
	answer, err := p.AskValid(question+" (y/n)", "", def, YesNo())
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// Select presents a list of options and asks the user to choose one, by
// number or by typing the option itself. A negative defaultIdx means no
// default.
func (p *StdinPrompter) Select(question string, options []string, defaultIdx int) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options to select from")
	}

	fmt.Fprintf(p.out, "%s\n", p.paint(ColorBlue, question))
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	def := ""
	if defaultIdx >= 0 && defaultIdx < len(options) {
		def = strconv.Itoa(defaultIdx + 1)
	}

	for {
		input, err := p.AskWithDefault("Your choice:", def)
		if err != nil {
			return -1, err
		}
		if choice, err := strconv.Atoi(input); err == nil && choice > 0 && choice <= len(options) {
			return choice - 1, nil // Return 0-based index
		}
		for i, opt := range options {
			if strings.EqualFold(input, opt) {
				return i, nil
			}
		}
		fmt.Fprintln(p.out, "Invalid option. Please try again.")
	}
}

// Section prints a heading that separates groups of questions.
func (p *StdinPrompter) Section(title string) {
	fmt.Fprintf(p.out, "\n%s\n", p.paint(ColorGreen, "--- "+title+" ---"))
}

// Say prints informational text.
func (p *StdinPrompter) Say(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// cleanText collapses runs of whitespace so multi-line help literals print
// as a single paragraph.
func cleanText(text string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}
