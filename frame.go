package efi

import "fmt"

// PhysAddr is a physical memory address.
type PhysAddr uint64

// FrameSize is the fixed size of a physical frame in this environment.
const FrameSize = 4096

const frameMask = FrameSize - 1

// PhysFrame is one page-aligned, FrameSize-byte unit of physical memory.
// Ownership transfers to the caller on allocation; the caller must hand
// back exactly the same frame to release it.
type PhysFrame struct {
	addr PhysAddr
}

// FrameFromStartAddress builds a frame descriptor from a physical
// address. The address must be aligned to FrameSize.
func FrameFromStartAddress(addr PhysAddr) (PhysFrame, error) {
	if addr&frameMask != 0 {
		return PhysFrame{}, fmt.Errorf("%w: %#x", ErrUnalignedAddress, uint64(addr))
	}
	return PhysFrame{addr: addr}, nil
}

// StartAddress returns the frame's physical start address.
func (f PhysFrame) StartAddress() PhysAddr {
	return f.addr
}

// Size returns the frame size in bytes.
func (f PhysFrame) Size() int {
	return FrameSize
}
