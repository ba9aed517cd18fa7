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
	"strconv"

	"github.com/nutsdb/winpath/internal/normpath"
	"github.com/nutsdb/winpath/internal/utils"
)

// PathLike is anything that has a textual path form. Path implements it.
type PathLike interface {
	String() string
}

// Path is a normalized filesystem path. Both the normalized form and the
// absolute form are computed once by New and never change afterwards, even
// if the working directory does. Path is a value type; copy it freely.
type Path struct {
	raw        string
	normalized string
	absolute   string
}

var _ PathLike = Path{}

// New returns the Path for raw. It does no filesystem I/O. An empty raw path
// normalizes to ".", and a leading "//" collapses to "/".
func New(raw string) Path {
	normalized := normpath.Normalize(raw)

	absolute, err := filepath.Abs(normalized)
	if err != nil {
		utils.GetLogger().Printf("resolve absolute path of %q: %v", raw, err)
		absolute = normalized
	}

	return Path{
		raw:        raw,
		normalized: normalized,
		absolute:   absolute,
	}
}

// String returns the normalized form.
func (p Path) String() string {
	if p.normalized == "" {
		return "."
	}
	return p.normalized
}

// Raw returns the string p was constructed from.
func (p Path) Raw() string {
	return p.raw
}

// GoString renders p as winpath.Path("<normalized>") for %#v.
func (p Path) GoString() string {
	return "winpath.Path(" + strconv.Quote(p.String()) + ")"
}

// abs returns the absolute form cached at construction.
func (p Path) abs() string {
	if p.absolute == "" {
		return New(p.raw).absolute
	}
	return p.absolute
}

// Div joins other onto p. If other is absolute it replaces p entirely.
func (p Path) Div(other PathLike) Path {
	return New(normpath.Join(p.String(), other.String()))
}

// Join joins any number of elements onto p with the same rules as Div.
func (p Path) Join(elem ...string) Path {
	return New(normpath.Join(append([]string{p.String()}, elem...)...))
}

// Equal reports whether p and other have the same normalized form.
func (p Path) Equal(other PathLike) bool {
	return p.String() == normpath.Normalize(other.String())
}

// EqualString reports whether s normalizes to the same form as p.
func (p Path) EqualString(s string) bool {
	return p.String() == normpath.Normalize(s)
}

// MarshalText implements encoding.TextMarshaler using the normalized form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is construction, not
// mutation: the receiver is replaced by New(string(text)).
func (p *Path) UnmarshalText(text []byte) error {
	*p = New(string(text))
	return nil
}
