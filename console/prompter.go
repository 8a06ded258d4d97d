// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/danielhkuo/election-desk/workflow"
)

const invalidInput = "Oops, that input is invalid. Please try again."

// Prompter reads operator answers line by line. Prompts and messages go
// to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// set when in is a terminal, for reading secrets without echo
	fd  int
	tty bool

	stop     chan struct{}
	stopOnce sync.Once
}

type readResult struct {
	line string
	err  error
}

// NewPrompter wraps in and out. If in is a terminal, Secret turns echo off.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, stop: make(chan struct{})}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

// Interrupt makes the pending read, and every later one, return
// workflow.ErrInterrupted. It may be called from any goroutine.
func (p *Prompter) Interrupt() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// await runs read on its own goroutine so that Interrupt can cut it short.
// An abandoned read is left blocked; nothing reads from in after that.
func (p *Prompter) await(read func() (string, error)) (string, error) {
	select {
	case <-p.stop:
		return "", workflow.ErrInterrupted
	default:
	}
	done := make(chan readResult, 1)
	go func() {
		line, err := read()
		done <- readResult{line, err}
	}()
	select {
	case r := <-done:
		return r.line, r.err
	case <-p.stop:
		return "", workflow.ErrInterrupted
	}
}

// readLine returns the next line without its terminator. A final line with
// no newline is still returned; after that every call is ErrEndOfInput.
func (p *Prompter) readLine() (string, error) {
	return p.await(p.nextLine)
}

func (p *Prompter) nextLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", workflow.ErrEndOfInput
		}
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) ask(label string) {
	fmt.Fprintf(p.out, "Enter %s: ", label)
}

func (p *Prompter) String(label string) (string, error) {
	p.ask(label)
	line, err := p.readLine()
	return strings.TrimSpace(line), err
}

// Char skips blank lines
func (p *Prompter) Char(label string) (byte, error) {
	for {
		p.ask(label)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line[0], nil
		}
	}
}

func (p *Prompter) Int(label string) (int, error) {
	for {
		p.ask(label)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, invalidInput)
	}
}

// Secret keeps surrounding spaces; they may be part of a password. On a
// terminal echo is off, except that input typed ahead and already buffered
// is read first as an ordinary line.
func (p *Prompter) Secret(label string) (string, error) {
	p.ask(label)
	if !p.tty || p.in.Buffered() > 0 {
		return p.readLine()
	}
	state, err := term.GetState(p.fd)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	line, err := p.await(func() (string, error) {
		b, err := term.ReadPassword(p.fd)
		return string(b), err
	})
	fmt.Fprintln(p.out)
	if errors.Is(err, workflow.ErrInterrupted) {
		// the abandoned read never restores echo itself
		term.Restore(p.fd, state)
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return line, nil
}

func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
