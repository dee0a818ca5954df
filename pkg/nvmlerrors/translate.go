package nvmlerrors

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// FromReturn translates a raw NVML return code into a typed error.
// It returns nil if and only if the code is nvml.SUCCESS.
//
// The switch names every return code the pinned go-nvml version defines; a
// code outside that set is classified as UnexpectedVariant carrying the raw
// value, never silently folded into Unknown. TestFromReturnCoversKnownReturns
// keeps the switch honest against KnownReturns.
func FromReturn(ret nvml.Return) error {
	switch ret {
	case nvml.SUCCESS:
		return nil
	case nvml.ERROR_UNINITIALIZED:
		return ErrUninitialized
	case nvml.ERROR_INVALID_ARGUMENT:
		return ErrInvalidArg
	case nvml.ERROR_NOT_SUPPORTED:
		return ErrNotSupported
	case nvml.ERROR_NO_PERMISSION:
		return ErrNoPermission
	case nvml.ERROR_ALREADY_INITIALIZED:
		return ErrAlreadyInitialized
	case nvml.ERROR_NOT_FOUND:
		return ErrNotFound
	case nvml.ERROR_INSUFFICIENT_SIZE:
		// NVML reports the required size through the out parameter of the
		// failed call, not through the return code, so it is unknown here.
		return InsufficientSizeError(0)
	case nvml.ERROR_INSUFFICIENT_POWER:
		return ErrInsufficientPower
	case nvml.ERROR_DRIVER_NOT_LOADED:
		return ErrDriverNotLoaded
	case nvml.ERROR_TIMEOUT:
		return ErrTimeout
	case nvml.ERROR_IRQ_ISSUE:
		return ErrIrqIssue
	case nvml.ERROR_LIBRARY_NOT_FOUND:
		return ErrLibraryNotFound
	case nvml.ERROR_FUNCTION_NOT_FOUND:
		return ErrFunctionNotFound
	case nvml.ERROR_CORRUPTED_INFOROM:
		return ErrCorruptedInfoROM
	case nvml.ERROR_GPU_IS_LOST:
		return ErrGpuLost
	case nvml.ERROR_RESET_REQUIRED:
		return ErrResetRequired
	case nvml.ERROR_OPERATING_SYSTEM:
		return ErrOperatingSystem
	case nvml.ERROR_LIB_RM_VERSION_MISMATCH:
		return ErrLibRmVersionMismatch
	case nvml.ERROR_IN_USE:
		return ErrInUse
	case nvml.ERROR_MEMORY:
		return ErrMemory
	case nvml.ERROR_NO_DATA:
		return ErrNoData
	case nvml.ERROR_VGPU_ECC_NOT_SUPPORTED:
		return ErrVgpuEccNotSupported
	case nvml.ERROR_INSUFFICIENT_RESOURCES:
		return ErrInsufficientResources
	case nvml.ERROR_FREQ_NOT_SUPPORTED:
		return ErrFreqNotSupported
	case nvml.ERROR_ARGUMENT_VERSION_MISMATCH:
		return ErrArgumentVersionMismatch
	case nvml.ERROR_DEPRECATED:
		return ErrDeprecated
	case nvml.ERROR_NOT_READY:
		return ErrNotReady
	case nvml.ERROR_UNKNOWN:
		return ErrUnknown
	default:
		return UnexpectedVariantError(uint64(ret))
	}
}

// KnownReturns returns every return code of the pinned go-nvml version,
// success included. Callers upgrading go-nvml can assert their own coverage
// against it.
func KnownReturns() []nvml.Return {
	return []nvml.Return{
		nvml.SUCCESS,
		nvml.ERROR_UNINITIALIZED,
		nvml.ERROR_INVALID_ARGUMENT,
		nvml.ERROR_NOT_SUPPORTED,
		nvml.ERROR_NO_PERMISSION,
		nvml.ERROR_ALREADY_INITIALIZED,
		nvml.ERROR_NOT_FOUND,
		nvml.ERROR_INSUFFICIENT_SIZE,
		nvml.ERROR_INSUFFICIENT_POWER,
		nvml.ERROR_DRIVER_NOT_LOADED,
		nvml.ERROR_TIMEOUT,
		nvml.ERROR_IRQ_ISSUE,
		nvml.ERROR_LIBRARY_NOT_FOUND,
		nvml.ERROR_FUNCTION_NOT_FOUND,
		nvml.ERROR_CORRUPTED_INFOROM,
		nvml.ERROR_GPU_IS_LOST,
		nvml.ERROR_RESET_REQUIRED,
		nvml.ERROR_OPERATING_SYSTEM,
		nvml.ERROR_LIB_RM_VERSION_MISMATCH,
		nvml.ERROR_IN_USE,
		nvml.ERROR_MEMORY,
		nvml.ERROR_NO_DATA,
		nvml.ERROR_VGPU_ECC_NOT_SUPPORTED,
		nvml.ERROR_INSUFFICIENT_RESOURCES,
		nvml.ERROR_FREQ_NOT_SUPPORTED,
		nvml.ERROR_ARGUMENT_VERSION_MISMATCH,
		nvml.ERROR_DEPRECATED,
		nvml.ERROR_NOT_READY,
		nvml.ERROR_UNKNOWN,
	}
}
