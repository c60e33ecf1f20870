// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/paratensord/fault"
)

// keys are used exactly as written in the file
var mapper = gluamapper.NewMapper(gluamapper.Option{
	NameFunc: func(s string) string { return s },
	TagName:  "gluamapper",
})

// ParseConfigurationFile - run a Lua file and decode the table it
// returns into config, which must be a pointer to a struct
//
// the script sees arg[0] as its own file name and config_directory
// as the directory holding it
func ParseConfigurationFile(fileName string, config interface{}) error {

	if v := reflect.ValueOf(config); reflect.Ptr != v.Kind() || v.IsNil() || reflect.Struct != v.Elem().Kind() {
		return fault.InvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()
	setGlobals(L, fileName)

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	switch result := L.Get(-1).(type) {
	case *lua.LTable:
		return mapper.Map(result, config)
	default:
		return fault.InvalidConfiguration
	}
}

func setGlobals(L *lua.LState, fileName string) {
	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	directory, err := filepath.Abs(filepath.Dir(fileName))
	if nil != err {
		directory = filepath.Dir(fileName)
	}
	L.SetGlobal("config_directory", lua.LString(directory))
}
