// This file is part of emukit.
//
// emukit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emukit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emukit.  If not, see <https://www.gnu.org/licenses/>.

package adapters

import (
	"fmt"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/device"
)

// Inherit can be used as the extent argument to NewRemap(). The length of the
// Remap will then be the length of the device it wraps.
const Inherit = -1

// InvalidRemap is the pattern for the curated error returned by NewRemap()
// and SetTranslator() when the arguments are not valid.
const InvalidRemap = "remap: %v"

// Remap translates indices before forwarding them to the device it wraps.
//
// The length of a Remap is its extent, which is decided at construction. It
// can be inherited from the wrapped device or given explicitly. Note that the
// length does not bound the indices the Remap contains. An Offset() remap for
// example, contains indices starting at the base. The Span() function returns
// the range of indices that the Remap can contain.
type Remap struct {
	dev       *device.Shared
	translate Translator
	extent    int
}

// NewRemap is the preferred method of initialisation for the Remap type. The
// extent must be Inherit or not negative.
func NewRemap(dev *device.Shared, translate Translator, extent int) (*Remap, error) {
	if dev == nil {
		return nil, curated.Errorf(InvalidRemap, "no device")
	}
	if !valid(translate) {
		return nil, curated.Errorf(InvalidRemap, "no translator")
	}
	if extent < 0 && extent != Inherit {
		return nil, curated.Errorf(InvalidRemap, fmt.Sprintf("negative extent (%d)", extent))
	}
	return &Remap{
		dev:       dev,
		translate: translate,
		extent:    extent,
	}, nil
}

// valid returns false for a nil translator, including a nil TranslatorFunc
func valid(translate Translator) bool {
	if translate == nil {
		return false
	}
	if f, ok := translate.(TranslatorFunc); ok && f == nil {
		return false
	}
	return true
}

// SetTranslator replaces the translation rule.
func (r *Remap) SetTranslator(translate Translator) error {
	if !valid(translate) {
		return curated.Errorf(InvalidRemap, "no translator")
	}
	r.translate = translate
	return nil
}

// Span implements the device.Spanner interface. The span is the reach of the
// translator over the span of the wrapped device.
func (r *Remap) Span() (int, int) {
	return r.translate.Reach(device.Span(r.dev))
}

// Translate returns the index in the wrapped device for the index. The second
// return value is false if the index cannot be translated or the translated
// index is not contained by the wrapped device.
func (r *Remap) Translate(idx int) (int, bool) {
	i := r.translate.Translate(idx)
	if i < 0 || !r.dev.Contains(i) {
		return i, false
	}
	return i, true
}

// Inner implements the device.Composite interface.
func (r *Remap) Inner() []*device.Shared {
	return []*device.Shared{r.dev}
}

// Reset implements the device.Block interface.
func (r *Remap) Reset() {
	r.dev.Reset()
}

// Contains implements the device.Device interface.
func (r *Remap) Contains(idx int) bool {
	_, ok := r.Translate(idx)
	return ok
}

// Len implements the device.Device interface.
func (r *Remap) Len() int {
	if r.extent == Inherit {
		return r.dev.Len()
	}
	return r.extent
}

// Read implements the device.Device interface.
func (r *Remap) Read(idx int) uint8 {
	i, ok := r.Translate(idx)
	if !ok {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	return r.dev.Read(i)
}

// Write implements the device.Device interface.
func (r *Remap) Write(idx int, data uint8) {
	i, ok := r.Translate(idx)
	if !ok {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	r.dev.Write(i, data)
}
