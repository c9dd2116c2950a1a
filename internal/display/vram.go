// Package display watches video memory on behalf of a display. It
// never renders anything: it only reports when the contents of
// video memory have changed since they were last looked at.
package display

import "github.com/cespare/xxhash"

// VRAM is the name of the video memory region.
const VRAM = "vram"

// Source provides a copy of the contents of a named region.
type Source interface {
	Dump(name string) ([]byte, error)
}

// VRAMWatcher detects changes to video memory by hashing it.
type VRAMWatcher struct {
	src Source

	hash    uint64
	hashed  bool
	changes int
}

// NewVRAMWatcher returns a watcher reading video memory from src.
func NewVRAMWatcher(src Source) *VRAMWatcher {
	return &VRAMWatcher{src: src}
}

// Changed hashes video memory and reports whether it differs
// from the previous call. The first call always reports a change.
func (w *VRAMWatcher) Changed() (bool, error) {
	vram, err := w.src.Dump(VRAM)
	if err != nil {
		return false, err
	}

	// calculate the hash of the data
	hash := xxhash.Sum64(vram)
	if w.hashed && hash == w.hash {
		return false, nil
	}

	w.hash = hash
	w.hashed = true
	w.changes++
	return true, nil
}

// Hash returns the hash of video memory as of the last call
// to Changed.
func (w *VRAMWatcher) Hash() uint64 {
	return w.hash
}

// Changes returns the number of times Changed reported a change.
func (w *VRAMWatcher) Changes() int {
	return w.changes
}
