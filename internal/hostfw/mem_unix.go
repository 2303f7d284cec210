//go:build unix

package hostfw

import (
	"golang.org/x/sys/unix"

	efi "github.com/nolandda/mythril-efi"
)

func mapArena(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapArena(arena []byte) error {
	return unix.Munmap(arena)
}

// Supported returns true if the hosted backend can run on this system.
// The host page size must tile evenly with the firmware frame size or
// mmap cannot produce frame-aligned arenas.
func Supported() (bool, error) {
	ps := unix.Getpagesize()
	if ps <= 0 {
		return false, nil
	}
	return ps%efi.FrameSize == 0 || efi.FrameSize%ps == 0, nil
}
