// Package ptyrun runs a host build of a firmware under a pseudo terminal, so
// its debug output is line buffered the same way as on a UART.
package ptyrun

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
)

var ErrNoCommand = errors.New("no command")

// Process is a command running under a pseudo terminal. Reading from it
// returns the command's terminal output.
type Process struct {
	pty pty.Pty
	cmd *pty.Cmd
}

// Start splits command like a shell would, appends args and starts the
// result.
func Start(command string, args ...string) (*Process, error) {
	argv, err := shellwords.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse command: %w", err)
	}
	argv = append(argv, args...)
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}

	p, err := pty.New()
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}

	cmd := p.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		p.Close()
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	return &Process{pty: p, cmd: cmd}, nil
}

// Read reads terminal output. The EIO returned by Linux after the last
// process closed the terminal is reported as io.EOF.
func (p *Process) Read(b []byte) (int, error) {
	n, err := p.pty.Read(b)
	if errors.Is(err, syscall.EIO) {
		err = io.EOF
	}
	return n, err
}

// Interrupt sends an interrupt to the command.
func (p *Process) Interrupt() error {
	return p.cmd.Process.Signal(os.Interrupt)
}

// Wait waits for the command to exit.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}

// Close closes the terminal, any pending or future Read fails.
func (p *Process) Close() error {
	return p.pty.Close()
}
