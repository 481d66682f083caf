// seehuhn.de/go/bmfont - convert bitmap fonts into static Go tables
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package buildinfo describes the build of the running command, for the
// usage text and the -version flag.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Info describes how a command was built.
type Info struct {
	Name   string // command name
	Module string // main module path, empty if unknown

	// Version is the module version, or the VCS revision for development
	// builds.  It is empty if neither is known.
	Version string

	// Modified is set if the working tree had uncommitted changes.
	Modified bool

	GoVersion string
}

// Read returns the build information of the running binary.
func Read(name string) *Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return &Info{Name: name}
	}
	return fromBuildInfo(name, bi)
}

func fromBuildInfo(name string, bi *debug.BuildInfo) *Info {
	info := &Info{
		Name:      name,
		Module:    bi.Main.Path,
		GoVersion: bi.GoVersion,
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
		return info
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Version = s.Value
			if len(info.Version) > 8 {
				info.Version = info.Version[:8]
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func (info *Info) version() string {
	if info.Version == "" || info.Module == "" {
		return ""
	}
	v := info.Version
	if info.Modified {
		v += "+dirty"
	}
	return info.Module + " " + v
}

// String returns a one-line description, for example
// "bmfont2go (seehuhn.de/go/bmfont v0.2.0)".
func (info *Info) String() string {
	if v := info.version(); v != "" {
		return info.Name + " (" + v + ")"
	}
	return info.Name
}

// Long returns the output of the -version flag.
func (info *Info) Long() string {
	b := &strings.Builder{}
	b.WriteString(info.Name)
	b.WriteByte('\n')
	if v := info.version(); v != "" {
		fmt.Fprintf(b, "module %s\n", v)
	} else {
		b.WriteString("module version unknown\n")
	}
	if info.GoVersion != "" {
		fmt.Fprintf(b, "built with %s\n", info.GoVersion)
	}
	return b.String()
}
