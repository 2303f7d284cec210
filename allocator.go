package efi

import "log/slog"

// FrameAllocator is the capability set the hypervisor's bootstrap memory
// manager consumes: allocate one physical frame, deallocate one physical
// frame.
type FrameAllocator interface {
	AllocateFrame() (PhysFrame, error)
	DeallocateFrame(frame PhysFrame) error
}

// Allocator bridges FrameAllocator onto the firmware page allocator. It
// is stateless beyond the borrowed boot-services reference: the firmware
// owns the authoritative free-page bookkeeping, so the bridge cannot
// detect double-frees itself.
type Allocator struct {
	bt       BootServices
	zeroFill bool
}

// NewAllocator creates an allocator over the given boot services.
// Zero-fill on allocation is enabled by default.
func NewAllocator(bt BootServices) *Allocator {
	return &Allocator{bt: bt, zeroFill: true}
}

// SetZeroFill controls whether every newly allocated frame is zero-filled
// before it is returned. Zeroing touches all FrameSize bytes of the frame,
// so disabling it trades uninitialized memory for allocation latency.
// Callers that disable it own the resulting initialization burden.
func (a *Allocator) SetZeroFill(enabled bool) {
	a.zeroFill = enabled
}

// AllocateFrame requests one page of boot-scratch memory from the
// firmware at a firmware-chosen address. The returned frame is
// page-aligned and, unless zero-fill is disabled, fully zeroed.
// Allocation failures are reported upward, never retried.
func (a *Allocator) AllocateFrame() (PhysFrame, error) {
	addr, st := a.bt.AllocatePages(AllocateAnyPages, MemoryLoaderData, 1)
	if st.IsError() {
		recordFirmwareError()
		return PhysFrame{}, &FirmwareError{Op: "AllocatePages", Status: st}
	}
	if st.IsWarning() {
		slog.Warn("AllocatePages succeeded with warning", "status", st.String())
	}

	if a.zeroFill {
		mem, st := a.bt.Memory(addr, FrameSize)
		if st.IsError() {
			// The firmware handed back an address it cannot map; return
			// the page before reporting so it is not leaked.
			a.bt.FreePages(addr, 1)
			recordFirmwareError()
			return PhysFrame{}, &FirmwareError{Op: "Memory", Status: st}
		}
		clear(mem)
		recordZeroFill()
	}

	frame, err := FrameFromStartAddress(addr)
	if err != nil {
		a.bt.FreePages(addr, 1)
		return PhysFrame{}, err
	}

	recordFrameAlloc()
	return frame, nil
}

// DeallocateFrame releases exactly one page at the frame's address back
// to the firmware. A firmware rejection (double-free, address never
// allocated through this path) is reported with no further side effect.
func (a *Allocator) DeallocateFrame(frame PhysFrame) error {
	st := a.bt.FreePages(frame.StartAddress(), 1)
	if st.IsError() {
		recordFirmwareError()
		return &FirmwareError{Op: "FreePages", Status: st}
	}
	if st.IsWarning() {
		slog.Warn("FreePages succeeded with warning", "status", st.String())
	}

	recordFrameFree()
	return nil
}

var _ FrameAllocator = (*Allocator)(nil)
