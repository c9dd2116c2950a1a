package gameboy

import (
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/trace"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM maps rom over the start of the cartridge, until
// it disables itself.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// WithTracer sends every executed instruction to sink.
func WithTracer(sink trace.Sink) Opt {
	return func(gb *GameBoy) {
		gb.tracer = sink
	}
}

// WithPeripheral attaches the peripheral handling the I/O
// registers at 0xFF00 - 0xFF4B.
func WithPeripheral(p mmu.IOBus) Opt {
	return func(gb *GameBoy) {
		gb.peripheral = p
	}
}

// WithEntryPoint sets the initial program counter and stack
// pointer, such as 0x0100 and 0xFFFE when skipping the boot ROM.
func WithEntryPoint(pc, sp uint16) Opt {
	return func(gb *GameBoy) {
		gb.entry = &entryPoint{pc: pc, sp: sp}
	}
}

// WithState restores a snapshot taken by GameBoy.State. It is
// applied after WithEntryPoint.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.state = b
	}
}
