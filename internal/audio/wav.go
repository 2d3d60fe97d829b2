package audio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WAVDecoder decodes PCM WAV files. It is a minimal reference
// implementation of the Decoder contract for 16-bit PCM mono or stereo
// input; any other bit depth is rejected. When the requested rate differs
// from the file's rate, samples are resampled by nearest-neighbour picking.
// No third-party WAV/audio-codec library appears anywhere in the
// retrieval pack, so this is implemented directly on encoding/binary
// (see DESIGN.md).
type WAVDecoder struct{}

func NewWAVDecoder() *WAVDecoder { return &WAVDecoder{} }

type wavFormat struct {
	numChannels   uint16
	sampleRate    uint32
	bitsPerSample uint16
	dataOffset    int64
	dataSize      uint32
}

func readWAVFormat(f *os.File) (wavFormat, error) {
	var fmtChunk wavFormat
	var riffHeader [12]byte
	if _, err := io.ReadFull(f, riffHeader[:]); err != nil {
		return fmtChunk, errors.Wrap(err, "reading RIFF header")
	}
	if string(riffHeader[0:4]) != "RIFF" || string(riffHeader[8:12]) != "WAVE" {
		return fmtChunk, errors.New("not a RIFF/WAVE file")
	}

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(f, chunkHeader[:]); err != nil {
			return fmtChunk, errors.Wrap(err, "reading chunk header")
		}
		chunkID := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkID {
		case "fmt ":
			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(f, body); err != nil {
				return fmtChunk, errors.Wrap(err, "reading fmt chunk")
			}
			fmtChunk.numChannels = binary.LittleEndian.Uint16(body[2:4])
			fmtChunk.sampleRate = binary.LittleEndian.Uint32(body[4:8])
			fmtChunk.bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
		case "data":
			pos, err := f.Seek(0, io.SeekCurrent)
			if err != nil {
				return fmtChunk, errors.Wrap(err, "seeking to data chunk")
			}
			fmtChunk.dataOffset = pos
			fmtChunk.dataSize = chunkSize
			return fmtChunk, nil
		default:
			if _, err := f.Seek(int64(chunkSize), io.SeekCurrent); err != nil {
				return fmtChunk, errors.Wrap(err, "skipping chunk")
			}
		}
	}
}

func (d *WAVDecoder) Decode(path string, sampleRate int) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	format, err := readWAVFormat(f)
	if err != nil {
		return nil, err
	}
	if format.bitsPerSample != 16 {
		return nil, errors.Errorf("unsupported bits per sample: %d", format.bitsPerSample)
	}

	raw := make([]byte, format.dataSize)
	if _, err := io.ReadFull(f, raw); err != nil {
		return nil, errors.Wrap(err, "reading PCM data")
	}

	frameCount := len(raw) / 2 / int(format.numChannels)
	mono := make([]float32, frameCount)
	for i := 0; i < frameCount; i++ {
		var sum int32
		for c := 0; c < int(format.numChannels); c++ {
			idx := (i*int(format.numChannels) + c) * 2
			sample := int16(binary.LittleEndian.Uint16(raw[idx : idx+2]))
			sum += int32(sample)
		}
		avg := float32(sum) / float32(format.numChannels)
		mono[i] = avg / 32768.0
	}

	// Native rate is returned unresampled when it already matches; a
	// mismatch is tolerated by nearest-neighbor resampling since real
	// resampling is explicitly an external collaborator per §1.
	if int(format.sampleRate) == sampleRate || sampleRate <= 0 {
		return mono, nil
	}
	return resampleNearest(mono, int(format.sampleRate), sampleRate), nil
}

func resampleNearest(samples []float32, from, to int) []float32 {
	if from == to || len(samples) == 0 {
		return samples
	}
	outLen := int(int64(len(samples)) * int64(to) / int64(from))
	out := make([]float32, outLen)
	for i := range out {
		srcIdx := int(int64(i) * int64(from) / int64(to))
		if srcIdx >= len(samples) {
			srcIdx = len(samples) - 1
		}
		out[i] = samples[srcIdx]
	}
	return out
}

func (d *WAVDecoder) HeaderSeconds(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	format, err := readWAVFormat(f)
	if err != nil {
		return 0, err
	}
	if format.sampleRate == 0 || format.numChannels == 0 || format.bitsPerSample == 0 {
		return 0, nil
	}
	bytesPerFrame := int(format.numChannels) * int(format.bitsPerSample) / 8
	if bytesPerFrame == 0 {
		return 0, nil
	}
	frames := float64(format.dataSize) / float64(bytesPerFrame)
	return frames / float64(format.sampleRate), nil
}
