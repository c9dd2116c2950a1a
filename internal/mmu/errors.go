package mmu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedAddress is matched by every UnmappedAddressError.
	ErrUnmappedAddress = errors.New("mmu: unmapped address")
	// ErrReadOnly is matched by every ReadOnlyViolationError.
	ErrReadOnly = errors.New("mmu: write to read-only region")
	// ErrOverlap is matched by every OverlapError.
	ErrOverlap = errors.New("mmu: overlapping regions")
)

// UnmappedAddressError is returned when an address does not
// fall into any configured region.
type UnmappedAddressError struct {
	Address uint16
}

func (e *UnmappedAddressError) Error() string {
	return fmt.Sprintf("mmu: unmapped address 0x%04X", e.Address)
}

func (e *UnmappedAddressError) Is(err error) bool {
	return err == ErrUnmappedAddress
}

// ReadOnlyViolationError is returned when a write targets a
// read-only region.
type ReadOnlyViolationError struct {
	Address uint16
	Region  string
}

func (e *ReadOnlyViolationError) Error() string {
	return fmt.Sprintf("mmu: write to read-only %s at 0x%04X", e.Region, e.Address)
}

func (e *ReadOnlyViolationError) Is(err error) bool {
	return err == ErrReadOnly
}

// OverlapError is returned by New when two regions claim the
// same address.
type OverlapError struct {
	Address uint16
	First   string
	Second  string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("mmu: %s overlaps %s at 0x%04X", e.Second, e.First, e.Address)
}

func (e *OverlapError) Is(err error) bool {
	return err == ErrOverlap
}
