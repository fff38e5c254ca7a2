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

package script

import (
	"fmt"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/device"
	"github.com/jetsetilly/emukit/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for errors returned by Run().
const ScriptError = "script: %v"

// Binding names a device for use in a script.
type Binding struct {
	Name   string
	Device device.Device
}

// NewState creates a Lua state with each binding installed as a global
// table. The caller should Close() the state when it is no longer required.
func NewState(bindings ...Binding) *lua.LState {
	L := lua.NewState()
	L.SetGlobal("log", L.NewFunction(logFunc))
	for _, b := range bindings {
		Bind(L, b)
	}
	return L
}

// Bind installs the binding in an existing Lua state.
func Bind(L *lua.LState, b Binding) {
	dev := b.Device
	L.SetGlobal(b.Name, L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"read": func(L *lua.LState) int {
			idx := L.CheckInt(1)
			if !dev.Contains(idx) {
				L.RaiseError("%s: read of uncontained index (%#x)", b.Name, idx)
			}
			var data uint8
			guard(L, func() { data = dev.Read(idx) })
			L.Push(lua.LNumber(data))
			return 1
		},
		"write": func(L *lua.LState) int {
			idx := L.CheckInt(1)
			data := L.CheckInt(2)
			if data < 0 || data > 0xff {
				L.ArgError(2, fmt.Sprintf("not a byte value (%d)", data))
			}
			if !dev.Contains(idx) {
				L.RaiseError("%s: write to uncontained index (%#x)", b.Name, idx)
			}
			guard(L, func() { dev.Write(idx, uint8(data)) })
			return 0
		},
		"len": func(L *lua.LState) int {
			var n int
			guard(L, func() { n = dev.Len() })
			L.Push(lua.LNumber(n))
			return 1
		},
		"contains": func(L *lua.LState) int {
			idx := L.CheckInt(1)
			var ok bool
			guard(L, func() { ok = dev.Contains(idx) })
			L.Push(lua.LBool(ok))
			return 1
		},
		"reset": func(L *lua.LState) int {
			guard(L, dev.Reset)
			return 0
		},
	}))
}

// guard converts a contract violation into a Lua error. A panic that is not
// a curated error is not recovered.
func guard(L *lua.LState, f func()) {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				e, ok := r.(error)
				if !ok || !curated.IsAny(e) {
					panic(r)
				}
				err = e
			}
		}()
		f()
	}()
	if err != nil {
		L.RaiseError("%v", err)
	}
}

func logFunc(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

// Run executes the Lua source with the bindings installed.
func Run(src string, bindings ...Binding) error {
	L := NewState(bindings...)
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}
