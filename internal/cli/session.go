package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/stemsi/exstem-roster/internal/handler"
	"github.com/stemsi/exstem-roster/internal/router"
)

const (
	welcome = "Welcome to the Student Management System!"
	goodbye = "Goodbye!"
)

// Session reads commands line by line and dispatches them until the user quits,
// the input ends or ctx is cancelled.
type Session struct {
	router *router.Router
	in     io.Reader
	out    io.Writer
	prompt string
}

// NewSession creates a Session. An empty prompt disables prompting, which is
// what callers want when input is not a terminal.
func NewSession(r *router.Router, in io.Reader, out io.Writer, prompt string) *Session {
	return &Session{router: r, in: in, out: out, prompt: prompt}
}

// Run prints the welcome banner and processes input. Cancelling ctx ends the
// session even while it waits for a line. It returns the scanner error if
// reading fails, otherwise nil.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, welcome)
	fmt.Fprintln(s.out, handler.HelpText)

	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	// The reader may stay blocked on input after Run returns; done only stops it
	// from delivering further lines.
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	var err error
loop:
	for ctx.Err() == nil {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}

		select {
		case <-ctx.Done():
			s.endPromptLine()
			break loop
		case line, ok := <-lines:
			if !ok {
				s.endPromptLine()
				err = <-errc
				break loop
			}
			if ctx.Err() != nil {
				break loop
			}
			if errors.Is(s.router.Dispatch(ctx, line), handler.ErrQuit) {
				break loop
			}
		}
	}

	fmt.Fprintln(s.out, goodbye)
	return err
}

func (s *Session) endPromptLine() {
	if s.prompt != "" {
		fmt.Fprintln(s.out)
	}
}
