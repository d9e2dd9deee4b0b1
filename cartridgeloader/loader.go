// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/jetsetilly/neogeo/logger"
)

// Loader abstracts all the ways cartridge or BIOS data can be loaded into
// the emulation: a local file, an http(s) URL, or data embedded in the
// host binary with go:embed.
type Loader struct {
	io.ReadSeeker

	// the name to use for the cartridge represented by Loader
	Name string

	// filename of the ROM being loaded. In the case of embedded data, this
	// field contains the name passed to NewLoaderFromData()
	Filename string

	// expected hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation
	// the value will be the hash of the loaded data.
	//
	// the value of HashSHA1 will be checked on a call to Loader.Open(). if
	// the string is empty then that check passes
	HashSHA1 string

	// HashMD5 is an alternative to HashSHA1
	HashMD5 string

	// cartridge/BIOS data. empty until Open() is called unless the loader
	// was created by NewLoaderFromData()
	//
	// the pointer-to-a-slice construct allows the loader to be passed by
	// value but still have its data replaced by Open()
	Data *[]byte

	data *bytes.Buffer

	// if stream is nil then the data will not be streamed. if *stream is
	// nil then the stream is not open.
	//
	// streaming is used for large BIOS ZIP archives, where buffering the
	// whole archive up front isn't worthwhile
	stream **os.File

	// whether the Loader was created with NewLoaderFromData()
	embedded bool
}

// NoFilename is returned when a Loader is created with an empty filename.
var NoFilename = errors.New("no filename")

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a filename (a NEO cartridge
// container or a BIOS ZIP archive).
//
// Filenames can contain whitespace, including leading and trailing
// whitespace, but cannot consist only of whitespace.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", NoFilename)
	}

	ld := Loader{
		Filename: filename,
	}

	data := make([]byte, 0)
	ld.Data = &data

	if strings.EqualFold(filepathExt(filename), ".zip") {
		ld.stream = new(*os.File)
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the
// Loader type when loading data from a byte slice. It's a great way of
// loading embedded data (using go:embed) into the emulator.
//
// The name argument should not include a file extension.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	ld := Loader{
		Filename: name,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// Close should be called before disposing of a Loader instance.
//
// Implements the io.Closer interface.
func (ld Loader) Close() error {
	if ld.stream == nil || *ld.stream == nil {
		return nil
	}

	err := (**ld.stream).Close()
	*ld.stream = nil
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	logger.Logf("loader", "stream closed (%s)", ld.Filename)

	return nil
}

// Read implements the io.Reader interface.
func (ld Loader) Read(p []byte) (int, error) {
	if ld.stream == nil {
		return ld.data.Read(p)
	}

	if *ld.stream == nil {
		return 0, nil
	}

	return (*ld.stream).Read(p)
}

// Seek implements the io.Seeker interface.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	if ld.stream == nil || *ld.stream == nil {
		return 0, nil
	}
	return (*ld.stream).Seek(offset, whence)
}

// Open the cartridge or BIOS data. Filenames with a recognised scheme use
// that method to load the data; currently supported schemes are HTTP(S)
// and local files.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.stream != nil {
		if err := ld.Close(); err != nil {
			return fmt.Errorf("loader: %w", err)
		}

		var err error
		*ld.stream, err = os.Open(ld.Filename)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		logger.Logf("loader", "stream open (%s)", ld.Filename)

		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		defer resp.Body.Close()

		*ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}

	default:
		f, err := os.Open(ld.Filename)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		defer f.Close()

		*ld.Data, err = io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
	}

	ld.data = bytes.NewBuffer(*ld.Data)

	hash := fmt.Sprintf("%x", sha1.Sum(*ld.Data))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("loader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	hash = fmt.Sprintf("%x", md5.Sum(*ld.Data))
	if ld.HashMD5 != "" && ld.HashMD5 != hash {
		return fmt.Errorf("loader: unexpected MD5 hash value")
	}
	ld.HashMD5 = hash

	return nil
}
