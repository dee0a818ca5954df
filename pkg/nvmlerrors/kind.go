package nvmlerrors

// Kind identifies one failure condition in the wrapper's error taxonomy.
//
// The taxonomy is a superset of the NVML return codes: every non-success
// nvml.Return maps to exactly one native kind, and a handful of
// wrapper-internal kinds cover failures the wrapper detects itself before or
// after crossing the C boundary.
type Kind int

const (
	// Native kinds, one per NVML failure return code.
	// ref. https://docs.nvidia.com/deploy/nvml-api/group__nvmlReturnEnum.html

	KindUninitialized Kind = iota + 1
	KindInvalidArg
	KindNotSupported
	KindNoPermission
	KindAlreadyInitialized
	KindNotFound
	KindInsufficientSize
	KindInsufficientPower
	KindDriverNotLoaded
	KindTimeout
	KindIrqIssue
	KindLibraryNotFound
	KindFunctionNotFound
	KindCorruptedInfoROM
	KindGpuLost
	KindResetRequired
	KindOperatingSystem
	KindLibRmVersionMismatch
	KindInUse
	KindMemory
	KindNoData
	KindVgpuEccNotSupported
	KindInsufficientResources
	KindFreqNotSupported
	KindArgumentVersionMismatch
	KindDeprecated
	KindNotReady
	KindUnknown

	// Wrapper-internal kinds, never reported by the NVML library itself.

	KindStringTooLong
	KindIncorrectBits
	KindUnexpectedVariant

	// Conversion kinds raised when shuttling text across the C boundary.
	// These wrap the underlying cause rather than re-describing it.

	KindInvalidUTF8
	KindUnterminatedString
	KindEmbeddedNul
)

// String returns the identifier-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUninitialized:
		return "Uninitialized"
	case KindInvalidArg:
		return "InvalidArg"
	case KindNotSupported:
		return "NotSupported"
	case KindNoPermission:
		return "NoPermission"
	case KindAlreadyInitialized:
		return "AlreadyInitialized"
	case KindNotFound:
		return "NotFound"
	case KindInsufficientSize:
		return "InsufficientSize"
	case KindInsufficientPower:
		return "InsufficientPower"
	case KindDriverNotLoaded:
		return "DriverNotLoaded"
	case KindTimeout:
		return "Timeout"
	case KindIrqIssue:
		return "IrqIssue"
	case KindLibraryNotFound:
		return "LibraryNotFound"
	case KindFunctionNotFound:
		return "FunctionNotFound"
	case KindCorruptedInfoROM:
		return "CorruptedInfoROM"
	case KindGpuLost:
		return "GpuLost"
	case KindResetRequired:
		return "ResetRequired"
	case KindOperatingSystem:
		return "OperatingSystem"
	case KindLibRmVersionMismatch:
		return "LibRmVersionMismatch"
	case KindInUse:
		return "InUse"
	case KindMemory:
		return "Memory"
	case KindNoData:
		return "NoData"
	case KindVgpuEccNotSupported:
		return "VgpuEccNotSupported"
	case KindInsufficientResources:
		return "InsufficientResources"
	case KindFreqNotSupported:
		return "FreqNotSupported"
	case KindArgumentVersionMismatch:
		return "ArgumentVersionMismatch"
	case KindDeprecated:
		return "Deprecated"
	case KindNotReady:
		return "NotReady"
	case KindUnknown:
		return "Unknown"
	case KindStringTooLong:
		return "StringTooLong"
	case KindIncorrectBits:
		return "IncorrectBits"
	case KindUnexpectedVariant:
		return "UnexpectedVariant"
	case KindInvalidUTF8:
		return "InvalidUTF8"
	case KindUnterminatedString:
		return "UnterminatedString"
	case KindEmbeddedNul:
		return "EmbeddedNul"
	default:
		return "Invalid"
	}
}

// description returns the human-readable description used as the base of the
// error message.
func (k Kind) description() string {
	switch k {
	case KindUninitialized:
		return "NVML was not first initialized with nvmlInit()"
	case KindInvalidArg:
		return "a supplied argument is invalid"
	case KindNotSupported:
		return "the requested operation is not available on the target device"
	case KindNoPermission:
		return "the current user does not have permission for the operation"
	case KindAlreadyInitialized:
		return "NVML was initialized multiple times (deprecated on the part of NVML itself, initialization is refcounted)"
	case KindNotFound:
		return "a query to find an object was unsuccessful"
	case KindInsufficientSize:
		return "an input argument is not large enough"
	case KindInsufficientPower:
		return "a device's external power cables are not properly attached"
	case KindDriverNotLoaded:
		return "NVIDIA driver is not loaded"
	case KindTimeout:
		return "user provided timeout passed"
	case KindIrqIssue:
		return "NVIDIA kernel detected an interrupt issue with a GPU"
	case KindLibraryNotFound:
		return "NVML shared library couldn't be found or loaded"
	case KindFunctionNotFound:
		return "local version of NVML doesn't implement this function"
	case KindCorruptedInfoROM:
		return "infoROM is corrupted"
	case KindGpuLost:
		return "the GPU has fallen off the bus or has otherwise become inaccessible"
	case KindResetRequired:
		return "the GPU requires a reset before it can be used again"
	case KindOperatingSystem:
		return "the GPU control device has been blocked by the operating system/cgroups"
	case KindLibRmVersionMismatch:
		return "RM detects a driver/library version mismatch"
	case KindInUse:
		return "an operation cannot be performed because the GPU is currently in use"
	case KindMemory:
		return "insufficient memory"
	case KindNoData:
		return "no data"
	case KindVgpuEccNotSupported:
		return "the requested vGPU operation is not available on the target device because ECC is enabled"
	case KindInsufficientResources:
		return "ran out of critical resources, other than memory"
	case KindFreqNotSupported:
		return "the requested frequency is not supported"
	case KindArgumentVersionMismatch:
		return "the provided version is invalid/unsupported"
	case KindDeprecated:
		return "the requested functionality has been deprecated"
	case KindNotReady:
		return "the system is not ready for the request"
	case KindUnknown:
		return "an internal driver error occurred"
	case KindStringTooLong:
		return "a string was too long to fit into an array"
	case KindIncorrectBits:
		return "bits that did not correspond to a flag were encountered whilst attempting to interpret them as bitflags"
	case KindUnexpectedVariant:
		return "an unexpected enum variant was encountered"
	case KindInvalidUTF8:
		return "a byte sequence from the driver is not valid UTF-8"
	case KindUnterminatedString:
		return "a byte buffer from the driver is not nul-terminated"
	case KindEmbeddedNul:
		return "a string contains an interior nul byte"
	default:
		return "invalid error kind"
	}
}
