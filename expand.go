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
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/nutsdb/winpath/internal/normpath"
	"github.com/nutsdb/winpath/internal/utils"
)

const isWindows = runtime.GOOS == "windows"

func init() {
	// HOME may change while the process runs; look it up on every call.
	homedir.DisableCache = true
}

// ExpandUser replaces a leading "~" with the home directory of the current
// user and a leading "~name" with the home directory of user name. If the
// home directory cannot be found, the path is returned unchanged.
func (p Path) ExpandUser() Path {
	s := p.String()
	if !strings.HasPrefix(s, "~") {
		return New(s)
	}

	end := 1
	for end < len(s) && !normpath.IsSeparator(s[end]) {
		end++
	}

	var home string
	if end == 1 {
		dir, err := homedir.Dir()
		if err != nil {
			return New(s)
		}
		home = dir
	} else {
		u, err := user.Lookup(s[1:end])
		if err != nil {
			return New(s)
		}
		home = u.HomeDir
	}

	expanded := strings.TrimRight(home, p.Sep()+p.AltSep()) + s[end:]
	if expanded == "" {
		expanded = p.Sep()
	}

	return New(expanded)
}

// ExpandVars replaces $NAME and ${NAME} with values from the environment,
// and %NAME% as well on Windows. Unknown variables are left alone.
func (p Path) ExpandVars() Path {
	return New(normpath.ExpandVars(p.String(), isWindows, os.LookupEnv))
}

// NormCase lower-cases p and turns slashes into backslashes on Windows. It
// returns p unchanged everywhere else.
func (p Path) NormCase() Path {
	return New(normpath.NormCase(p.String(), isWindows))
}

// Abspath resolves p against the working directory as it is now. It may
// therefore differ from the absolute form Parent and the predicates use,
// which was fixed when p was constructed.
func (p Path) Abspath() Path {
	abs, err := filepath.Abs(p.String())
	if err != nil {
		utils.GetLogger().Printf("resolve absolute path of %q: %v", p.String(), err)
		return New(p.abs())
	}
	return New(abs)
}

// Realpath returns the canonical absolute form of p with every symbolic link
// resolved. Unlike the other derived paths it reads the filesystem, and it
// fails if any component of p does not exist.
func (p Path) Realpath() (Path, error) {
	abs, err := filepath.Abs(p.String())
	if err != nil {
		return Path{}, err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Path{}, err
	}

	return New(resolved), nil
}
