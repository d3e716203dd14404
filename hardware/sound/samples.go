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

package sound

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8080/logger"
)

// the file extensions tried for each effect, in order of preference
var extensions = []string{".wav", ".mp3"}

// LoadSamples loads a sample for every effect from the directory. Files are
// named after the effect (see Effect.Filename()). A missing sample is not an
// error and the effect will be played without a sample.
//
// Returns the number of samples loaded.
func (b *Bank) LoadSamples(dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("sound: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("sound: %s is not a directory", dir)
	}

	var n int
	for e := UFO; e < NumEffects; e++ {
		for _, ext := range extensions {
			fn := filepath.Join(dir, e.Filename()+ext)
			buf, err := loadSample(fn)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return n, fmt.Errorf("sound: %w", err)
			}
			b.samples[e] = buf
			n++
			logger.Logf(logger.Allow, "sound", "%s: loaded %s (%d samples at %dHz)", e, filepath.Base(fn), len(buf.Data), buf.Format.SampleRate)
			break
		}
		if b.samples[e] == nil {
			logger.Logf(logger.Allow, "sound", "%s: no sample", e)
		}
	}

	return n, nil
}

// loadSample decodes a WAV or MP3 file into a single channel buffer. Sample
// values are in the range -1.0 to 1.0 whatever the format of the file.
func loadSample(filename string) (*audio.Float32Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	}

	return nil, fmt.Errorf("unsupported sample format: %s", filename)
}

func decodeWAV(r io.ReadSeeker) (*audio.Float32Buffer, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// copy first channel only of data stream
	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}
	data := make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		data = append(data, floatBuf.Data[i])
	}

	return &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(dec.SampleRate),
		},
		Data:           data,
		SourceBitDepth: int(dec.BitDepth),
	}, nil
}

// mp3 samples are normalised to the same range as wav samples
const mp3Scale = 32768

func decodeMP3(r io.Reader) (*audio.Float32Buffer, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	// the stream is always 16bit little endian with 2 channels, even if the
	// source is single channel. we only want the left channel
	var data []float32
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, float32(v)/mp3Scale)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("mp3: %w", err)
		}
	}

	return &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  dec.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: 16,
	}, nil
}
