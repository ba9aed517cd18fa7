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

package fileio

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ErrIsDir is returned when file contents are requested for a directory.
var ErrIsDir = errors.New("is a directory")

// ReadMapped returns a copy of the contents of the file at path. The file is
// mapped read-only and the mapping is released before returning. Files that
// report a zero size are read directly instead, which covers empty files as
// well as special files such as procfs entries.
func ReadMapped(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: path, Err: ErrIsDir}
	}
	if info.Size() == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return data, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "mmap", Path: path, Err: err}
	}

	data := make([]byte, len(m))
	copy(data, m)

	if err := m.Unmap(); err != nil {
		return nil, &fs.PathError{Op: "munmap", Path: path, Err: err}
	}

	return data, nil
}
