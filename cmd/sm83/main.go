package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/thelolagemann/sm83/internal/display"
	"github.com/thelolagemann/sm83/internal/gameboy"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/trace"
	"github.com/thelolagemann/sm83/pkg/trace/web"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// frameSteps is roughly the number of instructions executed per
// frame, which is how often video memory is checked for changes.
const frameSteps = 17556

var (
	romFile   = flag.String("rom", "", "The rom file to load")
	bootROM   = flag.String("boot", "", "The boot rom file to load")
	stateFile = flag.String("state", "", "The state file to load")
	saveFile  = flag.String("save", "", "The file to save the state to on exit")
	steps     = flag.Int("steps", 0, "The number of instructions to execute (0 runs until an error)")
	pc        = flag.Int("pc", -1, "The initial program counter (defaults to 0x0100 without a boot rom)")
	sp        = flag.Int("sp", 0xFFFE, "The initial stack pointer, used together with -pc")
	traceFlag = flag.Bool("trace", false, "Print every executed instruction")
	webAddr   = flag.String("web", "", "Serve the instruction trace over websocket on this address (e.g. localhost:8080)")
	verbose   = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	logger := log.New(*verbose)
	recent := trace.NewRecorder(16)

	if err := run(logger, recent); err != nil {
		banner := color.New(color.FgWhite, color.BgRed, color.Bold)
		banner.Fprint(os.Stderr, " FAULT ")
		fmt.Fprintf(os.Stderr, " %v\n", err)
		for _, e := range recent.Events() {
			color.New(color.Faint).Fprintln(os.Stderr, "  "+e.String())
		}
		os.Exit(1)
	}
}

func run(logger log.Logger, recent *trace.Recorder) error {
	if *romFile == "" && *bootROM == "" {
		return errors.New("either -rom or -boot is required")
	}

	var rom []byte
	var err error
	if *romFile != "" {
		// open the rom file
		if rom, err = utils.LoadFile(*romFile); err != nil {
			return err
		}
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	// open the boot rom file
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}

	switch {
	case *pc >= 0:
		opts = append(opts, gameboy.WithEntryPoint(uint16(*pc), uint16(*sp)))
	case *bootROM == "":
		// start at the cartridge entry point, as left by the boot rom
		opts = append(opts, gameboy.WithEntryPoint(0x0100, uint16(*sp)))
	}

	if *stateFile != "" {
		state, err := utils.LoadFile(*stateFile)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithState(state))
	}

	sinks := []trace.Sink{recent}
	if *traceFlag {
		sinks = append(sinks, trace.NewConsoleSink(os.Stdout))
	} else if *verbose {
		sinks = append(sinks, trace.NewLogSink(logger))
	}
	if *webAddr != "" {
		hub := web.NewHub(logger)
		defer hub.Close()

		mux := http.NewServeMux()
		mux.Handle("/trace", hub)
		srv := &http.Server{Addr: *webAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("web: %v", err)
			}
		}()
		defer srv.Close()

		logger.Infof("web: streaming trace on ws://%s/trace", *webAddr)
		sinks = append(sinks, hub)
	}
	opts = append(opts, gameboy.WithTracer(trace.Multi(sinks...)))

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	vram := display.NewVRAMWatcher(gb.MMU)
	total := 0
	for *steps <= 0 || total < *steps {
		chunk := frameSteps
		if *steps > 0 && *steps-total < chunk {
			chunk = *steps - total
		}

		n, runErr := gb.Run(ctx, chunk)
		total += n

		if changed, err := vram.Changed(); err == nil && changed {
			logger.Debugf("display: vram changed (%016x)", vram.Hash())
		}

		if runErr != nil {
			if errors.Is(runErr, context.Canceled) {
				logger.Infof("interrupted after %d steps", total)
				break
			}
			return runErr
		}
	}

	logger.Infof("executed %d steps, vram changed %d times", total, vram.Changes())
	logger.Infof("%s", gb.CPU.Registers)

	if *saveFile != "" {
		if err := gb.SaveToFile(*saveFile); err != nil {
			return err
		}
		logger.Infof("state saved to %s", *saveFile)
	}
	return nil
}
