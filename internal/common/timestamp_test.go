package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHHMMSSZero(t *testing.T) {
	assert.Equal(t, "00:00:00.000", FormatHHMMSS(0))
}

func TestFormatHHMMSSSubSecond(t *testing.T) {
	assert.Equal(t, "00:00:01.500", FormatHHMMSS(1.5))
}

func TestFormatHHMMSSOverMinute(t *testing.T) {
	assert.Equal(t, "00:01:05.000", FormatHHMMSS(65))
}

func TestFormatHHMMSSOverHour(t *testing.T) {
	assert.Equal(t, "01:00:00.000", FormatHHMMSS(3600))
}

func TestFormatHHMMSSNegativeClampsToZero(t *testing.T) {
	assert.Equal(t, "00:00:00.000", FormatHHMMSS(-5))
}

func TestFormatHHMMSSRoundsMilliseconds(t *testing.T) {
	assert.Equal(t, "00:00:00.001", FormatHHMMSS(0.0005))
}
