//go:build !unix

package hostfw

import "fmt"

func mapArena(size int) ([]byte, error) {
	return nil, fmt.Errorf("hostfw: not supported on this platform")
}

func unmapArena(arena []byte) error {
	return nil
}

// Supported returns false on non-unix platforms.
func Supported() (bool, error) {
	return false, fmt.Errorf("hostfw: not supported on this platform")
}
