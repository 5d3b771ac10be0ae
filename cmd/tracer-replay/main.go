// Command tracer-replay runs a JSON input script through a character and prints one JSON line per tick
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/tracer/character"
	"github.com/lixenwraith/tracer/config"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/physics"
	"github.com/lixenwraith/tracer/trace"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Log state transitions to stderr")
	noBodyFlag = flag.Bool("no-body", false, "Skip the reference body, forward must come from the script")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] script.json|-\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tracer-replay: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	if *debugFlag || cfg.Log.Debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	script, err := trace.ParseScript(data)
	if err != nil {
		return err
	}

	c, err := character.New(cfg, engine.NopObserver{})
	if err != nil {
		return err
	}

	var body *physics.Body
	if !*noBodyFlag {
		body = &physics.Body{Grounded: true}
	}
	return trace.Run(c, script, body, physics.DefaultParams(), stdout)
}
