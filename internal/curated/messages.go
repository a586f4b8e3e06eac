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

package curated

// Message heads used throughout the emulator. Keeping them here means
// callers can curated.Is(err, curated.RomFileNotFound) instead of
// matching on formatted text.
const (
	RomFileNotFound   = "curated: cartridge file not found: %s"
	RomUnsupportedSize = "curated: unsupported cartridge size: %d bytes (want 2048 or 4096)"
	RomReadFailed     = "curated: failed to read cartridge: %v"
	AddressUndefined  = "curated: address %#04x does not decode to any region"
)
