// Package efi bridges a firmware boot-services environment onto the two
// platform capabilities the mythril hypervisor core needs before it owns
// its own memory manager: a physical-frame allocator and a raw-file
// reader.
//
// The bridge holds a borrowed reference to the firmware boot-services
// table for the duration of the boot session and converts every fallible
// firmware call into the hypervisor's error vocabulary. It implements no
// paging, interprets no file contents, and keeps no allocation tables of
// its own; the firmware remains the authority for all of those.
//
// # Basic Usage
//
// Build the platform services facade from a boot-services table and hand
// it to the hypervisor core:
//
//	services := efi.NewServices(bt)
//
//	// Bootstrap the memory subsystem.
//	frame, err := services.Allocator().AllocateFrame()
//	if err != nil {
//		log.Fatal("failed to allocate frame:", err)
//	}
//	defer services.Allocator().DeallocateFrame(frame)
//
//	// Load a companion image.
//	kernel, err := services.ReadFile(`\EFI\mythril\kernel.bin`)
//	if err != nil {
//		log.Fatal("failed to read kernel image:", err)
//	}
//
// Every frame returned by the allocator is page-aligned and, by default,
// fully zeroed; see Allocator.SetZeroFill for the trade-off.
//
// # Error Handling
//
// All errors implement the standard Go error interface. Failed firmware
// requests surface as *FirmwareError carrying the raw EFI_STATUS; a null
// protocol instance as *NullProtocolError; a path that resolves to a
// directory as *DirectoryError; and a file absent from every volume as
// *NotFoundError. Firmware warnings ("succeeded with a warning") are
// logged and never surfaced as errors.
//
// # Concurrency
//
// Boot firmware runs on one execution context with no preemption, so the
// bridge is synchronous and single-threaded by contract. There is no
// cancellation or timeout layer: a firmware call either completes or the
// boot sequence halts.
//
// # Hosted Backend
//
// The internal/hostfw package provides a hosted BootServices backend (an
// mmap-backed page arena plus host-directory volumes) used by the tests
// and the mythril-boot CLI.
package efi
