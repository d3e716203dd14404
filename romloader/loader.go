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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// MAMEFiles is the list of files in the MAME Space Invaders set, in the order
// in which they appear in memory.
var MAMEFiles = [...]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

// the size of each file in the MAME set
const mameFileSize = 0x0800

// Loader is used to specify the program to load into the emulated machine.
type Loader struct {
	// filename of the program to load. can be a file, a directory containing
	// the MAME file set or a HTTP URL
	Filename string

	// the address in memory at which the data should be loaded
	Origin uint16

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// Load is a convenience function that creates a new loader for the filename
// and loads the data.
func Load(filename string) (Loader, error) {
	ld := NewLoader(filename)
	err := ld.Load()
	return ld, err
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	name := filepath.Base(ld.Filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

func (ld Loader) String() string {
	return fmt.Sprintf("%s (%d bytes) %s", ld.ShortName(), len(ld.Data), ld.Hash)
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil && url.Scheme != "" {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fi, err := os.Stat(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

		if fi.IsDir() {
			ld.Data, err = loadMAME(ld.Filename)
		} else {
			ld.Data, err = os.ReadFile(ld.Filename)
		}
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf("romloader: %v", "no data")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	ld.Hash = hash

	return nil
}

// loadMAME concatenates the files in the MAME set
func loadMAME(dir string) ([]byte, error) {
	data := make([]byte, 0, len(MAMEFiles)*mameFileSize)

	for _, n := range MAMEFiles {
		d, err := os.ReadFile(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		if len(d) != mameFileSize {
			return nil, fmt.Errorf("%s is not %d bytes", n, mameFileSize)
		}
		data = append(data, d...)
	}

	return data, nil
}
