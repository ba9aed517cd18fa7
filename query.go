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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/djherbis/times"
	"github.com/xujiajun/utils/filesystem"

	"github.com/nutsdb/winpath/internal/fileio"
)

// Parent returns the directory containing p. It is computed from the
// absolute form cached by New, so it is always absolute, even for a relative
// p. Dirname keeps relative paths relative; the two are not interchangeable.
func (p Path) Parent() Path {
	h, _ := filepath.Split(p.abs())
	return New(h)
}

// IsAbs reports whether p is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(p.String())
}

// IsRel reports whether p is relative. It is always !p.IsAbs().
func (p Path) IsRel() bool {
	return !p.IsAbs()
}

// Exists reports whether p names an existing file or directory. A dangling
// symlink does not exist, and neither does anything that cannot be stat'ed,
// whatever the reason.
func (p Path) Exists() bool {
	if _, err := os.Stat(p.abs()); err != nil {
		return false
	}
	return filesystem.PathIsExist(p.abs())
}

// IsDir reports whether p is a directory, following symlinks.
func (p Path) IsDir() bool {
	info, err := os.Stat(p.abs())
	return err == nil && info.IsDir()
}

// IsFile reports whether p is a regular file, following symlinks.
func (p Path) IsFile() bool {
	info, err := os.Stat(p.abs())
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether p itself is a symbolic link.
func (p Path) IsSymlink() bool {
	info, err := os.Lstat(p.abs())
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// IsMount reports whether p is a mount point.
func (p Path) IsMount() bool {
	return fileio.IsMount(p.abs())
}

// Size returns the size of p in bytes.
func (p Path) Size() (int64, error) {
	info, err := os.Stat(p.String())
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Stat returns the metadata of p, following symlinks.
func (p Path) Stat() (fs.FileInfo, error) {
	return os.Stat(p.String())
}

// Times returns the access, modification, and where the platform records
// them, change and birth times of p.
func (p Path) Times() (times.Timespec, error) {
	return times.Stat(p.String())
}

// ReadBytes returns the contents of the file p.
func (p Path) ReadBytes() ([]byte, error) {
	return fileio.ReadMapped(p.String())
}

// ListDir lists the directory p, or the directory containing p when p exists
// but is not a directory. Entries are joined onto the directory that was
// listed, not onto p, so for a file F the result equals F.Parent().ListDir().
// They come back in the order the platform enumerates them.
func (p Path) ListDir() ([]Path, error) {
	dir := p
	if !p.IsDir() {
		if _, err := os.Lstat(p.String()); err != nil {
			return nil, err
		}
		dir = p.Parent()
	}

	f, err := os.Open(dir.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}

	entries := make([]Path, 0, len(names))
	for _, name := range names {
		entries = append(entries, dir.Join(name))
	}

	return entries, nil
}

// Ls is short for ListDir.
func (p Path) Ls() ([]Path, error) {
	return p.ListDir()
}
