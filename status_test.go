package efi

import (
	"strings"
	"testing"
)

func TestStatusStrings(t *testing.T) {
	// Force detailed messages regardless of the ambient environment.
	t.Setenv("MYTHRIL_ENV", "")
	t.Setenv("MYTHRIL_DEBUG", "")

	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{
			name:     "EFI_SUCCESS",
			status:   StatusSuccess,
			expected: "efi: success",
		},
		{
			name:     "EFI_LOAD_ERROR",
			status:   StatusLoadError,
			expected: "efi: load error (EFI_LOAD_ERROR) - image failed to load",
		},
		{
			name:     "EFI_INVALID_PARAMETER",
			status:   StatusInvalidParameter,
			expected: "efi: invalid parameter (EFI_INVALID_PARAMETER) - check argument values and alignment",
		},
		{
			name:     "EFI_UNSUPPORTED",
			status:   StatusUnsupported,
			expected: "efi: unsupported (EFI_UNSUPPORTED) - operation not supported by this firmware",
		},
		{
			name:     "EFI_DEVICE_ERROR",
			status:   StatusDeviceError,
			expected: "efi: device error (EFI_DEVICE_ERROR) - physical device reported a failure",
		},
		{
			name:     "EFI_OUT_OF_RESOURCES",
			status:   StatusOutOfResources,
			expected: "efi: out of resources (EFI_OUT_OF_RESOURCES) - firmware pool or page allocation exhausted",
		},
		{
			name:     "EFI_NOT_FOUND",
			status:   StatusNotFound,
			expected: "efi: not found (EFI_NOT_FOUND) - requested item does not exist",
		},
		{
			name:     "EFI_ACCESS_DENIED",
			status:   StatusAccessDenied,
			expected: "efi: access denied (EFI_ACCESS_DENIED) - insufficient rights for the requested mode",
		},
		{
			name:     "EFI_WARN_STALE_DATA",
			status:   WarnStaleData,
			expected: "efi: warning: stale data (EFI_WARN_STALE_DATA)",
		},
		{
			name:     "unknown status",
			status:   statusErrorBit | 0x1234,
			expected: "efi: unknown status 0x8000000000001234 - consult the UEFI specification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.status.String()
			if got != tt.expected {
				t.Errorf("Status(%#x).String() = %q, want %q", uint64(tt.status), got, tt.expected)
			}
		})
	}
}

func TestStatusSanitized(t *testing.T) {
	t.Setenv("MYTHRIL_ENV", "production")

	got := StatusOutOfResources.String()
	if got != "efi: out of resources" {
		t.Errorf("sanitized String() = %q, want %q", got, "efi: out of resources")
	}
	if strings.Contains(got, "EFI_") {
		t.Errorf("sanitized message %q leaks the raw status name", got)
	}
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		isError bool
		isWarn  bool
	}{
		{"success", StatusSuccess, false, false},
		{"error", StatusNotFound, true, false},
		{"warning", WarnBufferTooSmall, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsError(); got != tt.isError {
				t.Errorf("IsError = %v, want %v", got, tt.isError)
			}
			if got := tt.status.IsWarning(); got != tt.isWarn {
				t.Errorf("IsWarning = %v, want %v", got, tt.isWarn)
			}
		})
	}
}

func TestStatusConstants(t *testing.T) {
	// Verify that our constants match the UEFI specification values
	expected := map[string]Status{
		"EFI_SUCCESS":           0,
		"EFI_LOAD_ERROR":        statusErrorBit | 1,
		"EFI_INVALID_PARAMETER": statusErrorBit | 2,
		"EFI_UNSUPPORTED":       statusErrorBit | 3,
		"EFI_BUFFER_TOO_SMALL":  statusErrorBit | 5,
		"EFI_DEVICE_ERROR":      statusErrorBit | 7,
		"EFI_OUT_OF_RESOURCES":  statusErrorBit | 9,
		"EFI_NOT_FOUND":         statusErrorBit | 14,
		"EFI_ACCESS_DENIED":     statusErrorBit | 15,
	}

	actual := map[string]Status{
		"EFI_SUCCESS":           StatusSuccess,
		"EFI_LOAD_ERROR":        StatusLoadError,
		"EFI_INVALID_PARAMETER": StatusInvalidParameter,
		"EFI_UNSUPPORTED":       StatusUnsupported,
		"EFI_BUFFER_TOO_SMALL":  StatusBufferTooSmall,
		"EFI_DEVICE_ERROR":      StatusDeviceError,
		"EFI_OUT_OF_RESOURCES":  StatusOutOfResources,
		"EFI_NOT_FOUND":         StatusNotFound,
		"EFI_ACCESS_DENIED":     StatusAccessDenied,
	}

	for name, want := range expected {
		got, exists := actual[name]
		if !exists {
			t.Errorf("Missing constant %s", name)
			continue
		}
		if got != want {
			t.Errorf("Constant %s = %#x, want %#x", name, uint64(got), uint64(want))
		}
	}
}
