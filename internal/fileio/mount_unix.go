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

//go:build unix

package fileio

import (
	"golang.org/x/sys/unix"
)

// IsMount reports whether path is a mount point: it is not a symlink, and
// either lives on a different device than its parent or is the same inode
// as its parent (the root).
func IsMount(path string) bool {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return false
	}
	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		return false
	}

	var parent unix.Stat_t
	if err := unix.Lstat(path+"/..", &parent); err != nil {
		return false
	}

	if st.Dev != parent.Dev {
		return true
	}

	return st.Ino == parent.Ino
}
