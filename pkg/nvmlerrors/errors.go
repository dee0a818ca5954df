// Package nvmlerrors defines the typed error taxonomy shared by all NVML
// wrapper operations and the translation from raw NVML return codes into it.
// See https://docs.nvidia.com/deploy/nvml-api/group__nvmlReturnEnum.html for
// the native return code definitions.
package nvmlerrors

import (
	"fmt"
)

// Error is the one error type produced across the wrapper. Kind selects the
// failure condition; the payload fields are only meaningful for the kinds
// noted on them.
type Error struct {
	Kind Kind

	// MaxLen and ActualLen are set for KindStringTooLong.
	MaxLen    int
	ActualLen int

	// RequiredSize is set for KindInsufficientSize. It is zero when the
	// native layer could not report the size it needed.
	RequiredSize int

	// Value is the raw value that failed to decode, set for
	// KindUnexpectedVariant.
	Value uint64

	cause error
}

var _ error = &Error{}

// Sentinel values for use with errors.Is. Matching is by kind only, so a
// payload-carrying error still matches its sentinel.
var (
	ErrUninitialized           = &Error{Kind: KindUninitialized}
	ErrInvalidArg              = &Error{Kind: KindInvalidArg}
	ErrNotSupported            = &Error{Kind: KindNotSupported}
	ErrNoPermission            = &Error{Kind: KindNoPermission}
	ErrAlreadyInitialized      = &Error{Kind: KindAlreadyInitialized}
	ErrNotFound                = &Error{Kind: KindNotFound}
	ErrInsufficientSize        = &Error{Kind: KindInsufficientSize}
	ErrInsufficientPower       = &Error{Kind: KindInsufficientPower}
	ErrDriverNotLoaded         = &Error{Kind: KindDriverNotLoaded}
	ErrTimeout                 = &Error{Kind: KindTimeout}
	ErrIrqIssue                = &Error{Kind: KindIrqIssue}
	ErrLibraryNotFound         = &Error{Kind: KindLibraryNotFound}
	ErrFunctionNotFound        = &Error{Kind: KindFunctionNotFound}
	ErrCorruptedInfoROM        = &Error{Kind: KindCorruptedInfoROM}
	ErrGpuLost                 = &Error{Kind: KindGpuLost}
	ErrResetRequired           = &Error{Kind: KindResetRequired}
	ErrOperatingSystem         = &Error{Kind: KindOperatingSystem}
	ErrLibRmVersionMismatch    = &Error{Kind: KindLibRmVersionMismatch}
	ErrInUse                   = &Error{Kind: KindInUse}
	ErrMemory                  = &Error{Kind: KindMemory}
	ErrNoData                  = &Error{Kind: KindNoData}
	ErrVgpuEccNotSupported     = &Error{Kind: KindVgpuEccNotSupported}
	ErrInsufficientResources   = &Error{Kind: KindInsufficientResources}
	ErrFreqNotSupported        = &Error{Kind: KindFreqNotSupported}
	ErrArgumentVersionMismatch = &Error{Kind: KindArgumentVersionMismatch}
	ErrDeprecated              = &Error{Kind: KindDeprecated}
	ErrNotReady                = &Error{Kind: KindNotReady}
	ErrUnknown                 = &Error{Kind: KindUnknown}

	ErrStringTooLong     = &Error{Kind: KindStringTooLong}
	ErrIncorrectBits     = &Error{Kind: KindIncorrectBits}
	ErrUnexpectedVariant = &Error{Kind: KindUnexpectedVariant}

	ErrInvalidUTF8        = &Error{Kind: KindInvalidUTF8}
	ErrUnterminatedString = &Error{Kind: KindUnterminatedString}
	ErrEmbeddedNul        = &Error{Kind: KindEmbeddedNul}
)

// StringTooLongError reports a string that cannot fit into a fixed-size
// array of maxLen bytes.
func StringTooLongError(maxLen, actualLen int) *Error {
	return &Error{Kind: KindStringTooLong, MaxLen: maxLen, ActualLen: actualLen}
}

// InsufficientSizeError reports an input argument that is not large enough.
// requiredSize is the size needed for a successful call, or zero when the
// native layer does not report it.
func InsufficientSizeError(requiredSize int) *Error {
	return &Error{Kind: KindInsufficientSize, RequiredSize: requiredSize}
}

// UnexpectedVariantError reports a raw value that matches no known variant of
// the enumeration being decoded.
func UnexpectedVariantError(value uint64) *Error {
	return &Error{Kind: KindUnexpectedVariant, Value: value}
}

// InvalidUTF8Error wraps a UTF-8 validation failure on bytes received from
// the driver.
func InvalidUTF8Error(cause error) *Error {
	return &Error{Kind: KindInvalidUTF8, cause: cause}
}

// UnterminatedStringError wraps a failure to find a nul terminator in a byte
// buffer received from the driver.
func UnterminatedStringError(cause error) *Error {
	return &Error{Kind: KindUnterminatedString, cause: cause}
}

// EmbeddedNulError wraps an interior nul byte found in a string destined for
// the driver.
func EmbeddedNulError(cause error) *Error {
	return &Error{Kind: KindEmbeddedNul, cause: cause}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStringTooLong:
		return fmt.Sprintf("the max string length was '%d', but the actual string length was '%d'", e.MaxLen, e.ActualLen)
	case KindInsufficientSize:
		return fmt.Sprintf("an input argument is not large enough, required size: '%d'", e.RequiredSize)
	case KindUnexpectedVariant:
		return fmt.Sprintf("an unexpected enum variant was encountered, value: '%d'", e.Value)
	}
	if e.cause != nil {
		return e.Kind.description() + ": " + e.cause.Error()
	}
	return e.Kind.description()
}

// Unwrap returns the underlying cause for the conversion kinds, nil for
// everything else.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches by kind so errors.Is works against the package sentinels
// regardless of payload values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
