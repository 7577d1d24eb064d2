// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import "github.com/momentics/hioload-sync/api"

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// Callers must hold runtime.LockOSThread for the pin to stay meaningful.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "cpu id must not be negative").
			WithContext("cpu", cpuID)
	}
	return setAffinityPlatform(cpuID)
}
