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
)

// Conventions describes how the host platform spells paths.
type Conventions struct {
	// Sep separates path components.
	Sep string
	// AltSep is a second accepted separator, empty if there is none.
	AltSep string
	// ParDir names the parent directory.
	ParDir string
	// ExtSep starts a file extension.
	ExtSep string
}

var platformConventions = Conventions{
	Sep:    string(filepath.Separator),
	AltSep: altSep(),
	ParDir: "..",
	ExtSep: ".",
}

func altSep() string {
	if filepath.Separator != '/' {
		return "/"
	}
	return ""
}

// PlatformConventions returns the conventions of the host platform.
func PlatformConventions() Conventions {
	return platformConventions
}

// Conventions returns the platform conventions p follows. They are the same
// for every Path.
func (p Path) Conventions() Conventions {
	return platformConventions
}

// Sep returns the path separator.
func (p Path) Sep() string { return platformConventions.Sep }

// AltSep returns the alternate separator, "" where there is none.
func (p Path) AltSep() string { return platformConventions.AltSep }

// ParDir returns the name of the parent directory, "..".
func (p Path) ParDir() string { return platformConventions.ParDir }

// ExtSep returns the extension separator, ".".
func (p Path) ExtSep() string { return platformConventions.ExtSep }
