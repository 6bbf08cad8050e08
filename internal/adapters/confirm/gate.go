/*
Package confirm provides the ConfirmationGate implementations: an interactive
terminal prompt, an always-yes gate for automated runs, and an always-no gate
for non-interactive default-skip paths.
*/
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// InteractiveGate asks the operator on a terminal. Reads block on input.
type InteractiveGate struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewInteractiveGate creates a gate reading from in and prompting on out.
func NewInteractiveGate(in io.Reader, out io.Writer) ports.ConfirmationGate {
	return &InteractiveGate{reader: bufio.NewReader(in), out: out}
}

// Confirm prints the prompt with a [y/N] suffix and interprets the answer.
// Anything other than y/yes declines.
func (g *InteractiveGate) Confirm(prompt string) (bool, error) {
	fmt.Fprint(g.out, ui.PromptColor(prompt+" [y/N]: "))
	input, err := g.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes", nil
}

// ReadName prints the prompt and returns the trimmed reply.
func (g *InteractiveGate) ReadName(prompt string) (string, error) {
	fmt.Fprint(g.out, ui.PromptColor(prompt+": "))
	input, err := g.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read name: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// YesGate answers every question affirmatively without blocking.
type YesGate struct{}

func (YesGate) Confirm(string) (bool, error) { return true, nil }

// ReadName returns an empty string: automated mode has no way to invent a
// replacement name, so rename loops resolve to "give up".
func (YesGate) ReadName(string) (string, error) { return "", nil }

// NoGate declines every question without blocking.
type NoGate struct{}

func (NoGate) Confirm(string) (bool, error)    { return false, nil }
func (NoGate) ReadName(string) (string, error) { return "", nil }
