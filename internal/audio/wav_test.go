package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestWAV writes a minimal 16-bit PCM WAV file with the given samples
// (already in int16 range) and returns its path.
func writeTestWAV(t *testing.T, samples []int16, numChannels, sampleRate int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")

	dataSize := len(samples) * 2
	fmtSize := 16
	riffSize := 4 + (8 + fmtSize) + (8 + dataSize)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	write := func(v any) {
		require.NoError(t, binary.Write(f, binary.LittleEndian, v))
	}

	f.WriteString("RIFF")
	write(uint32(riffSize))
	f.WriteString("WAVE")

	f.WriteString("fmt ")
	write(uint32(fmtSize))
	write(uint16(1)) // PCM
	write(uint16(numChannels))
	write(uint32(sampleRate))
	byteRate := sampleRate * numChannels * 2
	write(uint32(byteRate))
	write(uint16(numChannels * 2))
	write(uint16(16))

	f.WriteString("data")
	write(uint32(dataSize))
	for _, s := range samples {
		write(s)
	}

	return path
}

func TestDecodeMonoPassthrough(t *testing.T) {
	samples := []int16{0, 16384, -16384, 32767}
	path := writeTestWAV(t, samples, 1, 16000)

	d := NewWAVDecoder()
	out, err := d.Decode(path, 16000)
	require.NoError(t, err)
	require.Len(t, out, len(samples))
	assert.InDelta(t, 0.5, out[1], 0.01)
	assert.InDelta(t, -0.5, out[2], 0.01)
}

func TestDecodeStereoAverages(t *testing.T) {
	// interleaved L/R frames: (0,32767) and (-32768,0)
	samples := []int16{0, 32767, -32768, 0}
	path := writeTestWAV(t, samples, 2, 16000)

	d := NewWAVDecoder()
	out, err := d.Decode(path, 16000)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.5, out[0], 0.01)
	assert.InDelta(t, -0.5, out[1], 0.01)
}

func TestDecodeResamplesOnMismatch(t *testing.T) {
	samples := make([]int16, 1000)
	path := writeTestWAV(t, samples, 1, 8000)

	d := NewWAVDecoder()
	out, err := d.Decode(path, 16000)
	require.NoError(t, err)
	assert.Equal(t, 2000, len(out))
}

func TestDecodeRejectsNonWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notwav.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file at all"), 0o644))

	d := NewWAVDecoder()
	_, err := d.Decode(path, 16000)
	assert.Error(t, err)
}

func TestHeaderSecondsComputesDuration(t *testing.T) {
	samples := make([]int16, 16000) // 1 second mono at 16kHz
	path := writeTestWAV(t, samples, 1, 16000)

	d := NewWAVDecoder()
	secs, err := d.HeaderSeconds(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, secs, 0.001)
}

func TestDecodeRejects8BitUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eightbit.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	write := func(v any) {
		require.NoError(t, binary.Write(f, binary.LittleEndian, v))
	}
	dataSize := 4
	f.WriteString("RIFF")
	write(uint32(4 + 24 + dataSize))
	f.WriteString("WAVE")
	f.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1))
	write(uint16(1))
	write(uint32(8000))
	write(uint32(8000))
	write(uint16(1))
	write(uint16(8))
	f.WriteString("data")
	write(uint32(dataSize))
	write([]byte{1, 2, 3, 4})
	f.Close()

	d := NewWAVDecoder()
	_, err = d.Decode(path, 8000)
	assert.Error(t, err)
}
