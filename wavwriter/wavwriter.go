// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of sound effects to disk as a WAV file.
// Note that audio data is buffered in memory in its entirity, and written to
// disk when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
//
// The WavWriter type implements the sound.Player interface and the
// hardware.FrameTrigger interface. Effects are mixed into the output at the
// time of the most recent frame.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/clocks"
	"github.com/jetsetilly/gopher8080/hardware/sound"
	"github.com/jetsetilly/gopher8080/logger"
)

// SampleRate of the output file.
const SampleRate = 44100

// bit depth of the output file
const bitDepth = 16

// WavWriter implements the sound.Player and hardware.FrameTrigger interfaces.
type WavWriter struct {
	filename string
	buffer   []float32

	// the position in the buffer at which the next effect will start
	position int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]float32, 0),
	}

	return aw, nil
}

// NewFrame implements the hardware.FrameTrigger interface.
func (aw *WavWriter) NewFrame(frame int) error {
	aw.position = frame * SampleRate / clocks.FrameRate
	return nil
}

// Play implements the sound.Player interface.
func (aw *WavWriter) Play(effect sound.Effect, sample *audio.Float32Buffer) {
	if sample == nil || sample.Format == nil || sample.Format.SampleRate <= 0 {
		logger.Logf(logger.Allow, "wavwriter", "no sample for %s", effect)
		return
	}

	// length of the sample after conversion to the output sample rate
	n := len(sample.Data) * SampleRate / sample.Format.SampleRate

	end := aw.position + n
	if end > len(aw.buffer) {
		aw.buffer = append(aw.buffer, make([]float32, end-len(aw.buffer))...)
	}

	for i := 0; i < n; i++ {
		// nearest neighbour resampling
		j := i * sample.Format.SampleRate / SampleRate
		aw.buffer[aw.position+i] += sample.Data[j]
	}
}

// Len returns the length of the buffered audio in samples.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered audio to the WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           make([]int, len(aw.buffer)),
		SourceBitDepth: bitDepth,
	}

	const max = 1<<(bitDepth-1) - 1
	for i, v := range aw.buffer {
		// clip mixed values
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		buf.Data[i] = int(v * max)
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
