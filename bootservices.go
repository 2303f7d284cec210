package efi

// Handle is an opaque reference into the firmware handle database.
type Handle uintptr

// NullHandle is the unpopulated sentinel value. Enumeration buffers start
// out filled with NullHandle; only the firmware writes real values.
const NullHandle Handle = 0

// GUID identifies a firmware protocol, in the mixed-endian binary layout
// the firmware uses on the wire.
type GUID [16]byte

// GUIDSimpleFileSystem is EFI_SIMPLE_FILE_SYSTEM_PROTOCOL_GUID
// {964e5b22-6459-11d2-8e39-00a0c969723b}.
var GUIDSimpleFileSystem = GUID{
	0x22, 0x5b, 0x4e, 0x96, 0x59, 0x64, 0xd2, 0x11,
	0x8e, 0x39, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b,
}

// AllocateType selects the address policy for AllocatePages.
// EFI_ALLOCATE_TYPE
type AllocateType int

const (
	AllocateAnyPages AllocateType = iota
	AllocateMaxAddress
	AllocateAddress
)

// MemoryType classifies allocated memory for the firmware memory map.
// EFI_MEMORY_TYPE
type MemoryType int

const (
	MemoryReserved MemoryType = iota
	MemoryLoaderCode
	MemoryLoaderData
	MemoryBootServicesCode
	MemoryBootServicesData
	MemoryRuntimeServicesCode
	MemoryRuntimeServicesData
	MemoryConventional
	MemoryUnusable
	MemoryACPIReclaim
	MemoryACPINVS
	MemoryMappedIO
	MemoryMappedIOPortSpace
	MemoryPalCode
	MemoryPersistent
)

// OpenMode flags for File.Open. EFI_FILE_MODE_*
const (
	OpenModeRead   uint64 = 1 << 0
	OpenModeWrite  uint64 = 1 << 1
	OpenModeCreate uint64 = 1 << 63
)

// FileKind is the concrete type a file handle resolves to.
type FileKind int

const (
	FileRegular FileKind = iota
	FileDirectory
)

// BootServices is the slice of the firmware boot-services table this
// bridge depends on. It is borrowed for the lifetime of the boot session:
// callers share one instance by reference and never extend its lifetime
// past exit-boot-services.
//
// Every method is a direct, blocking firmware request returning a raw
// Status; translation into Go errors happens in the bridge, not here.
type BootServices interface {
	// AllocatePages allocates a contiguous run of 4 KiB pages of the
	// given memory type and returns the physical start address.
	AllocatePages(alloc AllocateType, memType MemoryType, pages int) (PhysAddr, Status)

	// FreePages returns pages pages starting at addr to the firmware.
	FreePages(addr PhysAddr, pages int) Status

	// CountHandles reports how many handles implement the protocol.
	// First phase of the two-phase LocateHandle sizing contract.
	CountHandles(proto GUID) (int, Status)

	// LocateHandles fills handles with every handle implementing the
	// protocol. The buffer must be sized by a prior CountHandles call and
	// arrives initialized to NullHandle.
	LocateHandles(proto GUID, handles []Handle) Status

	// HandleProtocol resolves the simple-filesystem protocol instance
	// bound to a handle. A nil Volume with a success status is possible
	// and must be treated as unusable by the caller.
	HandleProtocol(h Handle) (Volume, Status)

	// Memory returns the identity-mapped byte view of physical memory at
	// [addr, addr+size). Pre-boot firmware runs with physical memory
	// identity-mapped, so the view is the memory itself.
	Memory(addr PhysAddr, size int) ([]byte, Status)
}

// Volume is a mounted filesystem exposed through a protocol handle.
// EFI_SIMPLE_FILE_SYSTEM_PROTOCOL
type Volume interface {
	// OpenVolume opens the root directory of the volume.
	OpenVolume() (File, Status)
}

// File is an open firmware file handle. EFI_FILE_PROTOCOL
type File interface {
	// Open opens a path relative to this handle. Paths use backslash
	// separators per the firmware filesystem convention.
	Open(path string, mode uint64) (File, Status)

	// Kind resolves the concrete type of this handle.
	Kind() (FileKind, Status)

	// Read reads up to len(p) bytes. A zero count with a success status
	// means end of stream.
	Read(p []byte) (int, Status)

	// Close releases the handle.
	Close() Status
}
