// Package gameboy wires the CPU core to its memory: it loads the
// boot ROM and cartridge, builds the memory map and drives the CPU
// one instruction at a time.
package gameboy

import (
	"context"
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/trace"
)

// ErrNoImage is returned by NewGameBoy when neither a cartridge
// nor a boot ROM was given, leaving nothing to execute.
var ErrNoImage = errors.New("gameboy: no cartridge or boot rom")

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	Cartridge *cartridge.Cartridge
	BootROM   *boot.ROM

	log.Logger

	// set by the options, before the components are created
	bootROM    []byte
	peripheral mmu.IOBus
	tracer     trace.Sink
	entry      *entryPoint
	state      []byte
}

type entryPoint struct {
	pc, sp uint16
}

// NewGameBoy returns a new GameBoy executing rom. The rom may be
// nil if a boot ROM is given. Without a boot ROM or an entry point
// the CPU starts at 0x0000 with every register zeroed.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if rom == nil && g.bootROM == nil {
		return nil, ErrNoImage
	}

	var err error
	if rom != nil {
		if g.Cartridge, err = cartridge.NewCartridge(rom); err != nil {
			return nil, fmt.Errorf("gameboy: loading cartridge: %w", err)
		}
		if g.Cartridge.HasHeader() {
			header := g.Cartridge.Header()
			g.Infof("gameboy: cartridge %s", header.String())
		}
	}
	if g.bootROM != nil {
		if g.BootROM, err = boot.LoadBootROM(g.bootROM); err != nil {
			return nil, fmt.Errorf("gameboy: loading boot rom: %w", err)
		}
		g.Infof("gameboy: boot rom %s (%s)", g.BootROM.Model(), g.BootROM.Checksum())
	}

	if g.MMU, err = mmu.NewMMU(g.BootROM, g.Cartridge, g.peripheral); err != nil {
		return nil, err
	}
	g.MMU.Log = g.Logger

	g.CPU = cpu.NewCPU(g.MMU)
	g.CPU.Tracer = g.tracer
	if g.entry != nil {
		g.CPU.SetPC(g.entry.pc)
		g.CPU.SetSP(g.entry.sp)
	}

	if g.state != nil {
		state := types.StateFromBytes(g.state)
		g.Load(state)
		if err := state.Err(); err != nil {
			return nil, fmt.Errorf("gameboy: loading state: %w", err)
		}
	}

	return g, nil
}

// Step executes a single instruction.
func (g *GameBoy) Step() error {
	return g.CPU.Step()
}

// Run steps the CPU until it fails, ctx is done, or limit
// instructions have been executed. A limit of zero or less runs
// without limit. It returns the number of instructions executed.
func (g *GameBoy) Run(ctx context.Context, limit int) (int, error) {
	n := 0
	for limit <= 0 || n < limit {
		// poll the context every 1024 steps
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}

		if err := g.CPU.Step(); err != nil {
			g.Errorf("gameboy: stopped after %d steps: %v", n, err)
			g.Errorf("gameboy: %s", g.CPU.Registers.String())
			return n, err
		}
		n++
	}
	return n, nil
}

var _ types.Stater = (*GameBoy)(nil)

// Load restores the CPU and memory from s.
func (g *GameBoy) Load(s *types.State) {
	g.CPU.Load(s)
	g.MMU.Load(s)
}

// Save stores the CPU and memory in s.
func (g *GameBoy) Save(s *types.State) {
	g.CPU.Save(s)
	g.MMU.Save(s)
}

// State returns a snapshot of the CPU and memory, which may be
// restored with WithState.
func (g *GameBoy) State() []byte {
	s := types.NewState()
	g.Save(s)
	return s.Bytes()
}

// SaveToFile writes a snapshot of the CPU and memory to filename.
func (g *GameBoy) SaveToFile(filename string) error {
	s := types.NewState()
	g.Save(s)
	if err := s.SaveToFile(filename); err != nil {
		return fmt.Errorf("gameboy: saving state: %w", err)
	}
	return nil
}
