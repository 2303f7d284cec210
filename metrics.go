package efi

import (
	"sync/atomic"
)

// Performance metrics for monitoring platform-bridge operations
var (
	// Operation counters
	frameAllocCount uint64
	frameFreeCount  uint64
	zeroFillCount   uint64
	fileReadCount   uint64
	fileBytesRead   uint64

	// Error counters
	firmwareErrors uint64
)

// Metrics provides access to performance metrics
type Metrics struct {
	FramesAllocated uint64 `json:"frames_allocated"`
	FramesFreed     uint64 `json:"frames_freed"`
	FramesZeroed    uint64 `json:"frames_zeroed"`
	FilesRead       uint64 `json:"files_read"`
	FileBytesRead   uint64 `json:"file_bytes_read"`
	FirmwareErrors  uint64 `json:"firmware_errors"`
}

// GetMetrics returns current performance metrics
func GetMetrics() Metrics {
	return Metrics{
		FramesAllocated: atomic.LoadUint64(&frameAllocCount),
		FramesFreed:     atomic.LoadUint64(&frameFreeCount),
		FramesZeroed:    atomic.LoadUint64(&zeroFillCount),
		FilesRead:       atomic.LoadUint64(&fileReadCount),
		FileBytesRead:   atomic.LoadUint64(&fileBytesRead),
		FirmwareErrors:  atomic.LoadUint64(&firmwareErrors),
	}
}

// ResetMetrics clears all performance metrics
func ResetMetrics() {
	atomic.StoreUint64(&frameAllocCount, 0)
	atomic.StoreUint64(&frameFreeCount, 0)
	atomic.StoreUint64(&zeroFillCount, 0)
	atomic.StoreUint64(&fileReadCount, 0)
	atomic.StoreUint64(&fileBytesRead, 0)
	atomic.StoreUint64(&firmwareErrors, 0)
}

// Internal metric recording functions
func recordFrameAlloc() {
	atomic.AddUint64(&frameAllocCount, 1)
}

func recordFrameFree() {
	atomic.AddUint64(&frameFreeCount, 1)
}

func recordZeroFill() {
	atomic.AddUint64(&zeroFillCount, 1)
}

func recordFileRead(n int) {
	atomic.AddUint64(&fileReadCount, 1)
	atomic.AddUint64(&fileBytesRead, uint64(n))
}

func recordFirmwareError() {
	atomic.AddUint64(&firmwareErrors, 1)
}
