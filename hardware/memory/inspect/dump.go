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

package inspect

import (
	"encoding/hex"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/jetsetilly/emukit/hardware/memory/device"
)

// Snapshot returns a copy of every index in the range [0, Len()) of the
// device. Indices that are not contained are zero.
func Snapshot(dev device.Device) []uint8 {
	b := make([]uint8, dev.Len())
	for i := range b {
		if dev.Contains(i) {
			b[i] = dev.Read(i)
		}
	}
	return b
}

// Hexdump writes the contents of the device to the io.Writer in the same
// format as "hexdump -C".
func Hexdump(w io.Writer, dev device.Device) error {
	d := hex.Dumper(w)
	if _, err := d.Write(Snapshot(dev)); err != nil {
		return err
	}
	return d.Close()
}

// Histogram writes a histogram of the byte values in the device. The width
// argument is the width of the longest bar. Nothing is written for a
// device with zero length.
func Histogram(w io.Writer, dev device.Device, bins int, width int) error {
	b := Snapshot(dev)
	if len(b) == 0 {
		return nil
	}

	data := make([]float64, len(b))
	for i := range b {
		data[i] = float64(b[i])
	}

	h := histogram.Hist(max(bins, 1), data)
	return histogram.Fprint(w, h, histogram.Linear(width))
}
