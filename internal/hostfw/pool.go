package hostfw

import (
	"fmt"
	"unsafe"

	efi "github.com/nolandda/mythril-efi"
)

// Pool is an identity-mapped physical-page arena. It hands out addresses
// inside one mmap'd region, so the "physical" address of a page is also
// its live host address and efi.BootServices.Memory is a direct slice.
type Pool struct {
	arena []byte
	base  efi.PhysAddr
	used  []bool
}

// NewPool maps an arena holding pages frames of 4 KiB each.
func NewPool(pages int) (*Pool, error) {
	if pages <= 0 {
		return nil, fmt.Errorf("hostfw: pool requires at least one page")
	}

	arena, err := mapArena(pages * efi.FrameSize)
	if err != nil {
		return nil, fmt.Errorf("hostfw: map arena: %w", err)
	}

	base := efi.PhysAddr(uintptr(unsafe.Pointer(&arena[0])))
	if base%efi.FrameSize != 0 {
		unmapArena(arena)
		return nil, fmt.Errorf("hostfw: arena base %#x not frame-aligned", uint64(base))
	}

	return &Pool{
		arena: arena,
		base:  base,
		used:  make([]bool, pages),
	}, nil
}

// Close unmaps the arena. The pool must not be used afterwards.
func (p *Pool) Close() error {
	if p.arena == nil {
		return nil
	}
	err := unmapArena(p.arena)
	p.arena = nil
	return err
}

// Pages returns the pool capacity in pages.
func (p *Pool) Pages() int {
	return len(p.used)
}

// AllocatePages carves a contiguous run of pages out of the arena,
// first-fit. Only the firmware-chosen-address policy is supported.
func (p *Pool) AllocatePages(alloc efi.AllocateType, pages int) (efi.PhysAddr, efi.Status) {
	if alloc != efi.AllocateAnyPages {
		return 0, efi.StatusUnsupported
	}
	if pages <= 0 {
		return 0, efi.StatusInvalidParameter
	}

	run := 0
	for i := range p.used {
		if p.used[i] {
			run = 0
			continue
		}
		run++
		if run == pages {
			start := i - pages + 1
			for j := start; j <= i; j++ {
				p.used[j] = true
			}
			return p.base + efi.PhysAddr(start*efi.FrameSize), efi.StatusSuccess
		}
	}

	return 0, efi.StatusOutOfResources
}

// FreePages returns a run of pages to the arena. Freeing memory that was
// never allocated (or already freed) reports EFI_NOT_FOUND, matching the
// firmware contract for FreePages.
func (p *Pool) FreePages(addr efi.PhysAddr, pages int) efi.Status {
	if pages <= 0 || addr < p.base || addr%efi.FrameSize != 0 {
		return efi.StatusInvalidParameter
	}

	start := int((addr - p.base) / efi.FrameSize)
	if start+pages > len(p.used) {
		return efi.StatusInvalidParameter
	}
	for i := start; i < start+pages; i++ {
		if !p.used[i] {
			return efi.StatusNotFound
		}
	}
	for i := start; i < start+pages; i++ {
		p.used[i] = false
	}
	return efi.StatusSuccess
}

// Memory returns the live byte view of [addr, addr+size).
func (p *Pool) Memory(addr efi.PhysAddr, size int) ([]byte, efi.Status) {
	if size < 0 || addr < p.base {
		return nil, efi.StatusInvalidParameter
	}
	off := int(addr - p.base)
	if off+size > len(p.arena) {
		return nil, efi.StatusInvalidParameter
	}
	return p.arena[off : off+size], efi.StatusSuccess
}
