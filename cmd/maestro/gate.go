package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// terminalGate asks for approval on the terminal. It satisfies the
// orchestrator's ApprovalGate interface.
type terminalGate struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalGate() *terminalGate {
	return &terminalGate{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Request prompts for a yes/no answer. Anything other than y/yes is a
// denial, as is EOF on stdin.
func (g *terminalGate) Request(ctx context.Context, description string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	prompt := color.New(color.FgYellow, color.Bold)
	prompt.Fprintf(g.out, "\nApproval required: %s\n", description)
	fmt.Fprint(g.out, "Proceed? [y/N] ")

	line, err := g.in.ReadString('\n')
	if err != nil {
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
