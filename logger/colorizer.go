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

package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	dimRed    = "\033[2;31m"
	normalPen = "\033[0m"
)

// isTerminal returns true if the writer is an os.File connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Colorizer applies basic coloring rules to logging output. The first line of
// an entry is written normally, any subsequent lines are dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	m, err := c.out.Write([]byte(l[0] + "\n"))
	n += m
	if err != nil {
		return n, err
	}

	if len(l) == 1 {
		return n, nil
	}

	m, err = c.out.Write([]byte(dimRed))
	n += m
	if err != nil {
		return n, err
	}

	defer func() {
		_, _ = c.out.Write([]byte(normalPen))
	}()

	for _, s := range l[1:] {
		m, err := c.out.Write([]byte(s + "\n"))
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
