package nvmlconv

import (
	"github.com/gpukit/nvmlwrap/pkg/nvmlerrors"
)

// DecodeBits interprets raw as a set of bitflags drawn from the known mask.
// It fails with IncorrectBits when any set bit falls outside the mask; zero
// always decodes to the empty set.
func DecodeBits(raw, known uint64) (uint64, error) {
	if raw&^known != 0 {
		return 0, nvmlerrors.ErrIncorrectBits
	}
	return raw, nil
}

// DecodeVariant checks that raw matches one of the known enum tags and
// returns it unchanged. A value outside the set fails with UnexpectedVariant
// carrying the raw value.
func DecodeVariant(raw uint32, known []uint32) (uint32, error) {
	for _, v := range known {
		if v == raw {
			return raw, nil
		}
	}
	return 0, nvmlerrors.UnexpectedVariantError(uint64(raw))
}
