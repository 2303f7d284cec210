package efi

// VMServices is the single platform surface the hypervisor core depends
// on at boot: a frame allocator for memory-subsystem bootstrap and a raw
// file reader for locating companion images.
type VMServices interface {
	Allocator() FrameAllocator
	ReadFile(path string) ([]byte, error)
}

// Services implements VMServices over a firmware boot-services table. It
// borrows the table for the boot session and exclusively owns one
// Allocator; it adds no logic of its own beyond forwarding.
type Services struct {
	bt    BootServices
	alloc Allocator
}

// NewServices creates the platform services facade for one boot session.
func NewServices(bt BootServices) *Services {
	return &Services{
		bt:    bt,
		alloc: Allocator{bt: bt, zeroFill: true},
	}
}

// Allocator returns the frame allocator bridge.
func (s *Services) Allocator() FrameAllocator {
	return &s.alloc
}

// ReadFile reads the named file fully into memory, searching every
// firmware filesystem volume.
func (s *Services) ReadFile(path string) ([]byte, error) {
	return ReadFile(s.bt, path)
}

var _ VMServices = (*Services)(nil)
