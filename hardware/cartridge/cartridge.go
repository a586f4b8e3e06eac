// This file is part of vcs2600.
//
// vcs2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcs2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcs2600.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridge implements the console's cartridge port: a linear,
// non-bank-switched ROM image of 2 KiB or 4 KiB, loaded at 0xF000 (with
// wraparound for the 2 KiB case), per spec.md §3 and §6.
//
// Extended bank-switched mappers are an explicit Non-goal (spec.md §1);
// this package only ever produces one of the two supported sizes.
package cartridge

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/retrocore/vcs2600/internal/curated"
	"github.com/retrocore/vcs2600/internal/logger"
)

const (
	Size2K = 2048
	Size4K = 4096
)

// Cartridge is an immutable ROM image plus the address mask used to fold
// the 13-bit bus address into the image.
type Cartridge struct {
	data []byte
	mask uint16

	// Name is the filename the cartridge was loaded from, for logging.
	Name string
	// HashSHA1 is the content hash of the loaded image, for diagnostics.
	HashSHA1 string
}

// Load reads a ROM file from path and validates its size. Any size other
// than 2048 or 4096 bytes is a fatal configuration error (spec.md §4.10,
// §6).
func Load(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(curated.RomFileNotFound, path)
		}
		return nil, curated.Errorf(curated.RomReadFailed, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf(curated.RomReadFailed, err)
	}

	c, err := NewFromBytes(data)
	if err != nil {
		return nil, err
	}
	c.Name = path

	logger.Logf(logger.Allow, "cartridge", "loaded %s (%d bytes, sha1 %s)", path, len(data), c.HashSHA1)
	return c, nil
}

// NewFromBytes validates and wraps an in-memory ROM image (used by tests
// and by embedded-ROM callers).
func NewFromBytes(data []byte) (*Cartridge, error) {
	var mask uint16
	switch len(data) {
	case Size2K:
		mask = Size2K - 1
	case Size4K:
		mask = Size4K - 1
	default:
		return nil, curated.Errorf(curated.RomUnsupportedSize, len(data))
	}

	sum := sha1.Sum(data)
	return &Cartridge{
		data:     data,
		mask:     mask,
		HashSHA1: hex.EncodeToString(sum[:]),
	}, nil
}

// Read returns the byte at the given 13-bit bus address, folded into the
// ROM image via the address mask (wrapping a 2 KiB image to fill the
// 4 KiB cartridge window).
func (c *Cartridge) Read(address uint16) uint8 {
	return c.data[address&c.mask]
}

// Write is a no-op: ROM writes are silently ignored (spec.md §4.1).
func (c *Cartridge) Write(address uint16, data uint8) {}

// ResetVector returns the little-endian reset vector stored at
// 0x1FFC/0x1FFD within the cartridge window.
func (c *Cartridge) ResetVector() uint16 {
	lo := c.Read(0x1ffc)
	hi := c.Read(0x1ffd)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%s (%d bytes)", c.Name, len(c.data))
}
