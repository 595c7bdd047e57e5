// seehuhn.de/go/charproof - proofing tools for font character sets
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

// Package buildinfo describes the version of the charproof tools.
package buildinfo

import (
	"runtime/debug"
)

// Info identifies the build of a tool binary.
type Info struct {
	Module   string
	Version  string
	Revision string
	Dirty    bool
}

// Read extracts the version information embedded by the Go toolchain.
// The second return value is false if the binary carries no build
// information.
func Read() (*Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}
	info := &Info{Module: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info, true
}

// Label returns the module version, or a shortened VCS revision for
// development builds.  The empty string is returned if neither is known.
func (info *Info) Label() string {
	if info.Version != "" {
		return info.Version
	}
	rev := info.Revision
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if info.Dirty {
		rev += "+dirty"
	}
	return rev
}

// Short returns a short version string for a CLI tool, e.g.
// "charproof (seehuhn.de/go/charproof v0.1.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	label := info.Label()
	if label == "" {
		return toolName
	}
	return toolName + " (" + info.Module + " " + label + ")"
}
