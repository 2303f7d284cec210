// Package hostfw is a hosted boot-services backend: an mmap-backed page
// arena plus host-directory volumes, presented behind the same
// efi.BootServices contract real firmware would satisfy. It backs the
// package tests and the mythril-boot CLI.
package hostfw

import (
	"fmt"

	efi "github.com/nolandda/mythril-efi"
)

// Firmware composes a page pool and a set of volumes into an
// efi.BootServices table. Volume handles are 1-based indexes into the
// registration order, so enumeration order is registration order.
type Firmware struct {
	pool    *Pool
	volumes []efi.Volume
}

// New creates a firmware instance whose arena holds pages frames.
func New(pages int) (*Firmware, error) {
	pool, err := NewPool(pages)
	if err != nil {
		return nil, err
	}
	return &Firmware{pool: pool}, nil
}

// Close releases the page arena.
func (fw *Firmware) Close() error {
	return fw.pool.Close()
}

// AddVolume registers a filesystem volume.
func (fw *Firmware) AddVolume(v efi.Volume) {
	fw.volumes = append(fw.volumes, v)
}

// AddVolumeDir registers a host directory as a filesystem volume.
func (fw *Firmware) AddVolumeDir(hostPath string) error {
	v, err := NewDirVolume(hostPath)
	if err != nil {
		return fmt.Errorf("hostfw: add volume: %w", err)
	}
	fw.AddVolume(v)
	return nil
}

// AllocatePages implements efi.BootServices.
func (fw *Firmware) AllocatePages(alloc efi.AllocateType, memType efi.MemoryType, pages int) (efi.PhysAddr, efi.Status) {
	if memType < efi.MemoryReserved || memType > efi.MemoryPersistent {
		return 0, efi.StatusInvalidParameter
	}
	return fw.pool.AllocatePages(alloc, pages)
}

// FreePages implements efi.BootServices.
func (fw *Firmware) FreePages(addr efi.PhysAddr, pages int) efi.Status {
	return fw.pool.FreePages(addr, pages)
}

// CountHandles implements efi.BootServices.
func (fw *Firmware) CountHandles(proto efi.GUID) (int, efi.Status) {
	if proto != efi.GUIDSimpleFileSystem {
		return 0, efi.StatusUnsupported
	}
	return len(fw.volumes), efi.StatusSuccess
}

// LocateHandles implements efi.BootServices.
func (fw *Firmware) LocateHandles(proto efi.GUID, handles []efi.Handle) efi.Status {
	if proto != efi.GUIDSimpleFileSystem {
		return efi.StatusUnsupported
	}
	if len(handles) < len(fw.volumes) {
		return efi.StatusBufferTooSmall
	}
	for i := range fw.volumes {
		handles[i] = efi.Handle(i + 1)
	}
	return efi.StatusSuccess
}

// HandleProtocol implements efi.BootServices.
func (fw *Firmware) HandleProtocol(h efi.Handle) (efi.Volume, efi.Status) {
	idx := int(h) - 1
	if idx < 0 || idx >= len(fw.volumes) {
		return nil, efi.StatusInvalidParameter
	}
	return fw.volumes[idx], efi.StatusSuccess
}

// Memory implements efi.BootServices.
func (fw *Firmware) Memory(addr efi.PhysAddr, size int) ([]byte, efi.Status) {
	return fw.pool.Memory(addr, size)
}

var _ efi.BootServices = (*Firmware)(nil)
