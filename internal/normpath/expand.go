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

package normpath

import (
	"strings"
)

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// ExpandVars replaces $NAME and ${NAME} references with their values. When
// percent is set, %NAME% references are expanded too. References to
// variables that lookup does not know are left exactly as written, which is
// where this differs from os.ExpandEnv.
func ExpandVars(path string, percent bool, lookup LookupFunc) string {
	if !strings.Contains(path, "$") && !(percent && strings.Contains(path, "%")) {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))

	for i := 0; i < len(path); {
		c := path[i]
		switch {
		case c == '$':
			name, width := scanDollar(path[i+1:])
			if width == 0 {
				b.WriteByte(c)
				i++
				continue
			}
			if v, ok := lookup(name); ok {
				b.WriteString(v)
			} else {
				b.WriteString(path[i : i+1+width])
			}
			i += 1 + width
		case c == '%' && percent:
			rest := path[i+1:]
			if strings.HasPrefix(rest, "%") {
				b.WriteByte('%')
				i += 2
				continue
			}
			end := strings.IndexByte(rest, '%')
			if end < 0 {
				b.WriteString(path[i:])
				return b.String()
			}
			name := rest[:end]
			if v, ok := lookup(name); ok {
				b.WriteString(v)
			} else {
				b.WriteString(path[i : i+end+2])
			}
			i += end + 2
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// scanDollar reads the reference after a '$'. width is the number of bytes
// consumed, 0 when there is no reference.
func scanDollar(s string) (name string, width int) {
	if s == "" {
		return "", 0
	}

	if s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0
		}
		return s[1:end], end + 1
	}

	n := 0
	for n < len(s) && isWordByte(s[n]) {
		n++
	}

	return s[:n], n
}

func isWordByte(c byte) bool {
	return c == '_' ||
		'0' <= c && c <= '9' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z'
}

// NormCase folds case and turns forward slashes into backslashes when fold is
// set. Otherwise path comes back untouched.
func NormCase(path string, fold bool) string {
	if !fold {
		return path
	}

	return strings.ToLower(strings.ReplaceAll(path, "/", `\`))
}
