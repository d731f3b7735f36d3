// This file is part of Pong328.
//
// Pong328 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pong328 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pong328.  If not, see <https://www.gnu.org/licenses/>.

// Package digest condenses the video output into a hash. Two runs of the
// console that produce the same digest after the same number of fields have
// produced the same picture, field for field, which is the property the
// determinism tests lean on.
package digest

import (
	"crypto/sha1"
	"fmt"

	"pong328/television"
)

// Video is a television renderer that folds every completed field into a
// rolling SHA-1 digest.
type Video struct {
	spec   string
	digest [sha1.Size]byte

	// the field being accumulated. fields plus digest-so-far are hashed
	// together at every field boundary
	pixels []byte
	stride int

	fields int
}

// NewVideo is the preferred method of initialisation for the Video type.
// The digest attaches itself to the television.
func NewVideo(tv *television.Television) (*Video, error) {
	spec := tv.GetSpec()

	dig := &Video{
		spec:   spec.ID,
		stride: spec.BytesPerLine,
	}
	dig.pixels = make([]byte, spec.BytesPerLine*spec.VisibleLines)

	tv.AddFieldRenderer(dig)

	return dig, nil
}

// Hash returns the current digest as a hex string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Fields returns the number of completed fields folded into the digest.
func (dig *Video) Fields() int {
	return dig.fields
}

// NewField implements the television.FieldRenderer interface.
func (dig *Video) NewField(field int) error {
	// the first call opens the first field, there is nothing to fold yet
	if field > 1 {
		dig.fold()
	}
	return nil
}

func (dig *Video) fold() {
	h := sha1.New()
	h.Write(dig.digest[:])
	h.Write(dig.pixels)
	copy(dig.digest[:], h.Sum(nil))
	dig.fields++
}

// SetScanline implements the television.FieldRenderer interface.
func (dig *Video) SetScanline(line int, pixels []uint8) error {
	offset := line * dig.stride
	if offset+len(pixels) > len(dig.pixels) {
		return nil
	}
	copy(dig.pixels[offset:], pixels)
	return nil
}

// EndRendering implements the television.FieldRenderer interface. The field
// in progress is folded in so that short runs still digest something.
func (dig *Video) EndRendering() error {
	dig.fold()
	return nil
}
