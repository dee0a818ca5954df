package nvmlconv

import (
	"errors"
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/nvmlwrap/pkg/nvmlerrors"
)

// ref. https://docs.nvidia.com/deploy/nvml-api/group__nvmlClocksEventReasons.html
const (
	reasonGPUIdle              uint64 = 0x0000000000000001
	reasonApplicationsClocks   uint64 = 0x0000000000000002
	reasonSWPowerCap           uint64 = 0x0000000000000004
	reasonHWSlowdown           uint64 = 0x0000000000000008
	reasonSyncBoost            uint64 = 0x0000000000000010
	reasonSWThermalSlowdown    uint64 = 0x0000000000000020
	reasonHWThermalSlowdown    uint64 = 0x0000000000000040
	reasonHWPowerBrakeSlowdown uint64 = 0x0000000000000080
	reasonDisplayClockSetting  uint64 = 0x0000000000000100
)

const clocksEventReasonsMask = reasonGPUIdle |
	reasonApplicationsClocks |
	reasonSWPowerCap |
	reasonHWSlowdown |
	reasonSyncBoost |
	reasonSWThermalSlowdown |
	reasonHWThermalSlowdown |
	reasonHWPowerBrakeSlowdown |
	reasonDisplayClockSetting

func TestDecodeBits(t *testing.T) {
	// zero decodes to the empty set against any mask
	flags, err := DecodeBits(0, clocksEventReasonsMask)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), flags)

	flags, err = DecodeBits(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), flags)

	// bits within the mask pass through unchanged
	raw := reasonGPUIdle | reasonSWPowerCap
	flags, err = DecodeBits(raw, clocksEventReasonsMask)
	require.NoError(t, err)
	assert.Equal(t, raw, flags)
}

func TestDecodeBitsIncorrect(t *testing.T) {
	// exactly one bit outside the mask
	stray := uint64(1) << 63
	_, err := DecodeBits(stray, clocksEventReasonsMask)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nvmlerrors.ErrIncorrectBits))

	// known bits do not excuse the stray one
	_, err = DecodeBits(reasonGPUIdle|stray, clocksEventReasonsMask)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nvmlerrors.ErrIncorrectBits))
}

func TestDecodeVariant(t *testing.T) {
	known := []uint32{
		uint32(nvml.TEMPERATURE_THRESHOLD_SHUTDOWN),
		uint32(nvml.TEMPERATURE_THRESHOLD_SLOWDOWN),
		uint32(nvml.TEMPERATURE_THRESHOLD_MEM_MAX),
		uint32(nvml.TEMPERATURE_THRESHOLD_GPU_MAX),
	}

	v, err := DecodeVariant(uint32(nvml.TEMPERATURE_THRESHOLD_SLOWDOWN), known)
	require.NoError(t, err)
	assert.Equal(t, uint32(nvml.TEMPERATURE_THRESHOLD_SLOWDOWN), v)

	_, err = DecodeVariant(77, known)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nvmlerrors.ErrUnexpectedVariant))

	var nvmlErr *nvmlerrors.Error
	require.ErrorAs(t, err, &nvmlErr)
	assert.Equal(t, uint64(77), nvmlErr.Value)
}
