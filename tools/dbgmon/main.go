package main

import (
	"errors"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/clktmr/dbg/tools/monitor"
)

func main() {
	log.Default().SetFlags(0)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dbgmon"),
		kong.Description("Serial monitor for firmware built with the debug tag"),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)

	var exit interface{ ExitCode() int }
	switch {
	case errors.Is(err, monitor.ErrAssert):
		log.Println(err)
		os.Exit(1)
	case errors.As(err, &exit):
		os.Exit(exit.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}
