// Package nvmlconv validates and converts values crossing the NVML C
// boundary: Go strings into fixed-size nul-terminated buffers, driver byte
// buffers back into Go strings, and raw integers into known bitflags or enum
// variants. Every failure is a pkg/nvmlerrors value so callers handle one
// taxonomy across the wrapper.
package nvmlconv

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gpukit/nvmlwrap/pkg/nvmlerrors"
)

// ValidateString checks that s fits into an array of maxLen bytes. Lengths
// are byte lengths, matching what the driver buffers hold.
func ValidateString(s string, maxLen int) error {
	if len(s) > maxLen {
		return nvmlerrors.StringTooLongError(maxLen, len(s))
	}
	return nil
}

// StringToFixedBytes converts s into a nul-terminated buffer of exactly size
// bytes, the shape NVML setter calls expect. The last byte is reserved for
// the terminator, so s may hold at most size-1 bytes and no interior nul.
func StringToFixedBytes(s string, size int) ([]byte, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, nvmlerrors.EmbeddedNulError(fmt.Errorf("nul byte at position %d", i))
	}
	if err := ValidateString(s, size-1); err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	copy(buf, s)
	return buf, nil
}

// BytesToString converts a nul-terminated driver buffer into a Go string.
// The buffer must contain a terminator and the content before it must be
// valid UTF-8.
func BytesToString(b []byte) (string, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", nvmlerrors.UnterminatedStringError(fmt.Errorf("no nul terminator in %d bytes", len(b)))
	}
	s := b[:i]
	if !utf8.Valid(s) {
		return "", nvmlerrors.InvalidUTF8Error(fmt.Errorf("invalid byte sequence in %d bytes", len(s)))
	}
	return string(s), nil
}
