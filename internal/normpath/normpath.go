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

// Package normpath holds the string-only path primitives behind winpath.Path.
// Nothing in here touches the filesystem.
package normpath

import (
	"path/filepath"
	"strings"
)

// Normalize cleans path with the platform rules. An empty input cleans to
// ".". A bare volume name such as "C:" is kept as is rather than becoming
// "C:.". Unlike some other normalizers, a leading "//" on POSIX collapses to
// a single "/".
func Normalize(path string) string {
	if path != "" && filepath.VolumeName(path) == path {
		return path
	}

	return filepath.Clean(path)
}

// Join joins elements the way os.path.join does: an absolute element throws
// away everything before it, and a rooted element without a volume keeps only
// the volume collected so far. Empty elements are skipped.
func Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		switch {
		case e == "":
			continue
		case filepath.IsAbs(e):
			parts = append(parts[:0], e)
		case isRooted(e):
			vol := ""
			if len(parts) > 0 {
				vol = filepath.VolumeName(parts[0])
			}
			parts = append(parts[:0], vol+e)
		default:
			parts = append(parts, e)
		}
	}

	return filepath.Join(parts...)
}

func isRooted(path string) bool {
	path = path[len(filepath.VolumeName(path)):]
	return path != "" && IsSeparator(path[0])
}

// IsSeparator reports whether c is the separator or the alternate separator.
func IsSeparator(c byte) bool {
	return c == '/' || c == filepath.Separator
}

// SplitExt splits name at its last extension separator. Leading separators
// never start an extension, so ".bashrc" and "..x" have none. The returned
// ext keeps the separator. name is expected to be a single path component.
func SplitExt(name, extsep string) (root, ext string) {
	dot := strings.LastIndex(name, extsep)
	if dot <= 0 {
		return name, ""
	}

	for i := 0; i < dot; i++ {
		if name[i:i+len(extsep)] != extsep {
			return name[:dot], name[dot:]
		}
	}

	return name, ""
}
