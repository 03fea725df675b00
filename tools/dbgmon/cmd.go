package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/clktmr/dbg/tools/capture"
	"github.com/clktmr/dbg/tools/monitor"
	"github.com/clktmr/dbg/tools/ptyrun"
	"github.com/clktmr/dbg/tools/serialport"
)

// CLI defines the root command structure with subcommands
type CLI struct {
	Globals

	Serial SerialCmd `cmd:"" help:"Monitor a serial device"`
	Run    RunCmd    `cmd:"" help:"Run a host build under a pseudo terminal and monitor it"`
	Replay ReplayCmd `cmd:"" help:"Render a capture file"`
}

// Globals are the flags shared by all commands. Set flags override the
// config file.
type Globals struct {
	Config       string   `type:"path" help:"Path to TOML config file"`
	Encoding     string   `short:"e" help:"Character encoding of the debug output (default: utf-8)"`
	Color        string   `help:"Colorize tags: auto, always or never"`
	Timestamps   bool     `short:"t" help:"Prefix lines with the host time"`
	Tag          []string `help:"Only show lines with this tag, untagged lines are always shown"`
	Capture      string   `short:"c" type:"path" help:"Write shown lines to file, compressed by extension (.zst, .gz, .xz)"`
	ExitOnAssert bool     `short:"a" help:"Exit with status 1 after a failed assertion"`
}

func (g *Globals) load() (*monitor.Config, error) {
	cfg, err := monitor.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if g.Encoding != "" {
		cfg.Encoding = g.Encoding
	}
	if g.Color != "" {
		cfg.Color = g.Color
	}
	if len(g.Tag) > 0 {
		cfg.Tags = g.Tag
	}
	if g.Capture != "" {
		cfg.Capture = g.Capture
	}
	cfg.Timestamps = cfg.Timestamps || g.Timestamps
	cfg.ExitOnAssert = cfg.ExitOnAssert || g.ExitOnAssert
	return cfg, nil
}

// SerialCmd reads from a UART
type SerialCmd struct {
	Device string `short:"d" help:"Serial device, e.g. /dev/ttyUSB0"`
	Baud   int    `short:"b" help:"Baud rate (default: 115200)"`
}

func (c *SerialCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Device != "" {
		cfg.Device = c.Device
	}
	if c.Baud != 0 {
		cfg.Baud = c.Baud
	}
	if cfg.Device == "" {
		return errors.New("no serial device, use --device or set device in the config")
	}

	port, err := serialport.Open(cfg.Device, cfg.Baud)
	if err != nil {
		return err
	}
	log.Printf("monitoring %s at %d baud, ^C to quit", port.Name(), cfg.Baud)

	return watch(cfg, port)
}

// RunCmd runs a command under a pseudo terminal
type RunCmd struct {
	Command []string `arg:"" optional:"" passthrough:"" help:"Command to run, defaults to command from the config"`
}

func (c *RunCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	command := cfg.Command
	if len(c.Command) > 0 {
		command = ""
	}
	proc, err := ptyrun.Start(command, c.Command...)
	if err != nil {
		return err
	}

	exited := make(chan error, 1)
	go func() {
		err := proc.Wait()
		// give the monitor time to drain the terminal
		time.Sleep(500 * time.Millisecond)
		proc.Close()
		exited <- err
	}()

	werr := watch(cfg, proc)
	proc.Interrupt()
	perr := <-exited
	if werr != nil {
		return werr
	}
	return perr
}

// ReplayCmd renders a capture file
type ReplayCmd struct {
	File string `arg:"" type:"existingfile" help:"Capture file written with --capture"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	// Captures are stored decoded.
	cfg.Encoding = "utf-8"
	cfg.Capture = ""

	r, err := capture.Open(c.File)
	if err != nil {
		return err
	}
	return watch(cfg, r)
}

// watch runs the monitor on src until src ends or an interrupt is received.
// src is closed in any case.
func watch(cfg *monitor.Config, src io.ReadCloser) (err error) {
	m, err := monitor.New(cfg, os.Stdout)
	if err != nil {
		src.Close()
		return err
	}

	if cfg.Capture != "" {
		w, err := capture.Create(cfg.Capture)
		if err != nil {
			src.Close()
			return fmt.Errorf("capture: %w", err)
		}
		defer func() {
			if cerr := w.Close(); cerr != nil {
				log.Println("capture:", cerr)
			}
		}()
		m.SetCapture(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		src.Close()
	}()

	err = m.Run(ctx, src)
	stop()
	logStats(m.Stats())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func logStats(stats map[string]int) {
	var b strings.Builder
	for _, tag := range slices.Sorted(maps.Keys(stats)) {
		if tag == "" {
			continue
		}
		fmt.Fprintf(&b, " %s=%d", tag, stats[tag])
	}
	if b.Len() > 0 {
		log.Printf("lines per tag:%s", b.String())
	}
}
