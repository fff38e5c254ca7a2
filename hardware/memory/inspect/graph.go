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
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/device"
)

// Node is a device in the composition graph.
type Node struct {
	Device string
	Len    int
	Inner  []*Node
}

// Tree builds the composition graph for the shared device. A handle reached
// more than once produces a single Node, so storage that is aliased results
// in a Node with more than one owner.
//
// A composition that contains a cycle will panic with the device.Reentrant
// pattern.
func Tree(root *device.Shared) *Node {
	return tree(root, make(map[*device.Shared]*Node), make(map[*device.Shared]bool))
}

// seen is every handle that has a Node. visiting is the handles on the path
// from the root to the current handle
func tree(s *device.Shared, seen map[*device.Shared]*Node, visiting map[*device.Shared]bool) *Node {
	if visiting[s] {
		panic(curated.Errorf(device.Reentrant, s))
	}
	if n, ok := seen[s]; ok {
		return n
	}

	n := &Node{}
	seen[s] = n
	visiting[s] = true
	defer delete(visiting, s)

	var inner []*device.Shared
	s.Borrow(func(dev device.Device) {
		n.Device = fmt.Sprintf("%T", dev)
		n.Len = dev.Len()
		if c, ok := dev.(device.Composite); ok {
			inner = c.Inner()
		}
	})

	for _, i := range inner {
		n.Inner = append(n.Inner, tree(i, seen, visiting))
	}

	return n
}

// Graph writes the composition graph of the shared device to the io.Writer.
// Output is in the DOT language.
func Graph(w io.Writer, root *device.Shared) {
	memviz.Map(w, Tree(root))
}
