// Copyright 2026 The nutsdb Author. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package winpath

import (
	"path/filepath"
	"strings"

	"github.com/nutsdb/winpath/internal/normpath"
)

// SplitPath splits p after its final separator. tail is the last component
// and head everything before it. Both come back normalized, so an empty head
// or tail reads as ".".
func (p Path) SplitPath() (head, tail Path) {
	h, t := filepath.Split(p.String())
	return New(h), New(t)
}

// SplitDrive splits the volume name off p. On platforms without drives the
// drive is New(""), which reads as ".".
func (p Path) SplitDrive() (drive, rest Path) {
	s := p.String()
	vol := filepath.VolumeName(s)
	return New(vol), New(s[len(vol):])
}

// SplitExt splits the extension off the last component of p. base is the
// last component without its extension and ext the extension including the
// separator. A last component without any extension separator is not split
// at all: SplitExt returns (p, "", ""). A component made only of leading
// separators and text, such as ".bashrc", has no extension. An empty last
// component, as for a root, reads as "." and so splits into (root, ".", "").
func (p Path) SplitExt() (head Path, base, ext string) {
	h, t := filepath.Split(p.String())
	t = New(t).String()
	if !strings.Contains(t, p.ExtSep()) {
		return p, "", ""
	}

	base, ext = normpath.SplitExt(t, p.ExtSep())
	return New(h), base, ext
}

// Ext returns the extension of p, as reported by SplitExt.
func (p Path) Ext() string {
	_, _, ext := p.SplitExt()
	return ext
}

// Basename returns the final component of p.
func (p Path) Basename() Path {
	_, t := filepath.Split(p.String())
	return New(t)
}

// Base is the same as Basename.
func (p Path) Base() Path {
	return p.Basename()
}

// Dirname returns everything before the final component of p. It works on
// the normalized form, so a relative p gives a relative result. Parent is
// the absolute counterpart.
func (p Path) Dirname() Path {
	h, _ := filepath.Split(p.String())
	return New(h)
}
