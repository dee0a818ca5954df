package nvmlerrors

import "errors"

// IsNotSupported returns true if the error indicates that the operation is
// not supported on the target device.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}

// IsNotFound returns true if the error indicates that the object/instance is
// not found, e.g., a process that already exited.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotReady returns true if the error indicates that the system is not yet
// in a ready state.
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}

// IsGPULost returns true if the error indicates that the GPU has fallen off
// the bus or is otherwise inaccessible.
func IsGPULost(err error) bool {
	return errors.Is(err, ErrGpuLost)
}

// IsGPURequiresReset returns true if the error indicates that the GPU needs
// a reset before it can be used again.
func IsGPURequiresReset(err error) bool {
	return errors.Is(err, ErrResetRequired)
}

// IsVersionMismatch returns true if the error indicates a version mismatch,
// either between the driver and the library or in a versioned API argument.
func IsVersionMismatch(err error) bool {
	return errors.Is(err, ErrLibRmVersionMismatch) || errors.Is(err, ErrArgumentVersionMismatch)
}
