package efi

import (
	"fmt"
	"os"
	"strconv"
)

// Status is a raw EFI_STATUS value as returned by boot services.
// Error codes have the high bit set; low non-zero values are warnings
// ("succeeded with a warning" in the UEFI specification).
type Status uint64

const statusErrorBit Status = 1 << 63

// EFI_STATUS error codes (UEFI specification, Appendix D).
const (
	StatusSuccess          Status = 0
	StatusLoadError               = statusErrorBit | 1
	StatusInvalidParameter        = statusErrorBit | 2
	StatusUnsupported             = statusErrorBit | 3
	StatusBadBufferSize           = statusErrorBit | 4
	StatusBufferTooSmall          = statusErrorBit | 5
	StatusNotReady                = statusErrorBit | 6
	StatusDeviceError             = statusErrorBit | 7
	StatusWriteProtected          = statusErrorBit | 8
	StatusOutOfResources          = statusErrorBit | 9
	StatusVolumeCorrupted         = statusErrorBit | 10
	StatusVolumeFull              = statusErrorBit | 11
	StatusNoMedia                 = statusErrorBit | 12
	StatusMediaChanged            = statusErrorBit | 13
	StatusNotFound                = statusErrorBit | 14
	StatusAccessDenied            = statusErrorBit | 15
	StatusTimeout                 = statusErrorBit | 18
	StatusAborted                 = statusErrorBit | 21
)

// EFI_STATUS warning codes.
const (
	WarnUnknownGlyph   Status = 1
	WarnDeleteFailure  Status = 2
	WarnWriteFailure   Status = 3
	WarnBufferTooSmall Status = 4
	WarnStaleData      Status = 5
)

// IsError reports whether s is a failure status.
func (s Status) IsError() bool {
	return s&statusErrorBit != 0
}

// IsWarning reports whether s is a success-with-warning status.
func (s Status) IsWarning() bool {
	return s != StatusSuccess && !s.IsError()
}

func (s Status) String() string {
	if isProductionEnv() {
		return s.sanitizedString()
	}
	return s.detailedString()
}

// detailedString provides full status context for development
func (s Status) detailedString() string {
	switch s {
	case StatusSuccess:
		return "efi: success"
	case StatusLoadError:
		return "efi: load error (EFI_LOAD_ERROR) - image failed to load"
	case StatusInvalidParameter:
		return "efi: invalid parameter (EFI_INVALID_PARAMETER) - check argument values and alignment"
	case StatusUnsupported:
		return "efi: unsupported (EFI_UNSUPPORTED) - operation not supported by this firmware"
	case StatusBadBufferSize:
		return "efi: bad buffer size (EFI_BAD_BUFFER_SIZE) - buffer not a multiple of the required granularity"
	case StatusBufferTooSmall:
		return "efi: buffer too small (EFI_BUFFER_TOO_SMALL) - resize the buffer and retry"
	case StatusNotReady:
		return "efi: not ready (EFI_NOT_READY) - no data pending"
	case StatusDeviceError:
		return "efi: device error (EFI_DEVICE_ERROR) - physical device reported a failure"
	case StatusWriteProtected:
		return "efi: write protected (EFI_WRITE_PROTECTED) - device cannot be written"
	case StatusOutOfResources:
		return "efi: out of resources (EFI_OUT_OF_RESOURCES) - firmware pool or page allocation exhausted"
	case StatusVolumeCorrupted:
		return "efi: volume corrupted (EFI_VOLUME_CORRUPTED) - filesystem structures are inconsistent"
	case StatusVolumeFull:
		return "efi: volume full (EFI_VOLUME_FULL) - no space left on volume"
	case StatusNoMedia:
		return "efi: no media (EFI_NO_MEDIA) - device contains no medium"
	case StatusMediaChanged:
		return "efi: media changed (EFI_MEDIA_CHANGED) - medium replaced since last access"
	case StatusNotFound:
		return "efi: not found (EFI_NOT_FOUND) - requested item does not exist"
	case StatusAccessDenied:
		return "efi: access denied (EFI_ACCESS_DENIED) - insufficient rights for the requested mode"
	case StatusTimeout:
		return "efi: timeout (EFI_TIMEOUT) - operation did not complete in time"
	case StatusAborted:
		return "efi: aborted (EFI_ABORTED) - operation cancelled by the firmware"
	case WarnUnknownGlyph:
		return "efi: warning: unknown glyph (EFI_WARN_UNKNOWN_GLYPH)"
	case WarnDeleteFailure:
		return "efi: warning: delete failure (EFI_WARN_DELETE_FAILURE)"
	case WarnWriteFailure:
		return "efi: warning: write failure (EFI_WARN_WRITE_FAILURE)"
	case WarnBufferTooSmall:
		return "efi: warning: buffer too small (EFI_WARN_BUFFER_TOO_SMALL)"
	case WarnStaleData:
		return "efi: warning: stale data (EFI_WARN_STALE_DATA)"
	default:
		return fmt.Sprintf("efi: unknown status 0x%016x - consult the UEFI specification", uint64(s))
	}
}

// sanitizedString provides minimal status information for production
func (s Status) sanitizedString() string {
	switch s {
	case StatusSuccess:
		return "efi: success"
	case StatusLoadError:
		return "efi: load error"
	case StatusInvalidParameter:
		return "efi: invalid parameter"
	case StatusUnsupported:
		return "efi: unsupported"
	case StatusBadBufferSize:
		return "efi: bad buffer size"
	case StatusBufferTooSmall:
		return "efi: buffer too small"
	case StatusNotReady:
		return "efi: not ready"
	case StatusDeviceError:
		return "efi: device error"
	case StatusWriteProtected:
		return "efi: write protected"
	case StatusOutOfResources:
		return "efi: out of resources"
	case StatusVolumeCorrupted:
		return "efi: volume corrupted"
	case StatusVolumeFull:
		return "efi: volume full"
	case StatusNoMedia:
		return "efi: no media"
	case StatusMediaChanged:
		return "efi: media changed"
	case StatusNotFound:
		return "efi: not found"
	case StatusAccessDenied:
		return "efi: access denied"
	case StatusTimeout:
		return "efi: timeout"
	case StatusAborted:
		return "efi: aborted"
	default:
		if s.IsWarning() {
			return "efi: firmware warning"
		}
		return "efi: firmware error"
	}
}

// isProductionEnv checks if we're running in production environment
func isProductionEnv() bool {
	env := os.Getenv("MYTHRIL_ENV")
	if env == "production" || env == "prod" {
		return true
	}

	// Check if debug mode is explicitly disabled
	if debug := os.Getenv("MYTHRIL_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil && !val {
			return true
		}
	}

	return false
}
