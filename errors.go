package efi

import (
	"errors"
	"fmt"
)

// FirmwareError wraps a failure Status from a boot-services call.
// Op names the firmware service that was rejected (e.g. "AllocatePages").
type FirmwareError struct {
	Op     string
	Status Status
}

func (e *FirmwareError) Error() string {
	return fmt.Sprintf("efi: %s failed: %s", e.Op, e.Status)
}

// NullProtocolError reports a protocol query that succeeded but handed
// back a null protocol instance.
type NullProtocolError struct {
	Handle Handle
}

func (e *NullProtocolError) Error() string {
	return fmt.Sprintf("efi: filesystem protocol instance for handle %#x was null", uintptr(e.Handle))
}

// DirectoryError reports a file path that resolved to a directory when a
// regular file was required.
type DirectoryError struct {
	Path string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("efi: image file %s is a directory", e.Path)
}

// NotFoundError reports a file path absent from every enumerated volume.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("efi: unable to find image file %s", e.Path)
}

// Common specific errors for API consumers
var (
	ErrUnalignedAddress = errors.New("efi: address not frame-aligned")
)
