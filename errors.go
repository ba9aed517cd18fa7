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
	"errors"
	"io/fs"

	"github.com/nutsdb/winpath/internal/fileio"
)

// FilesystemError is the error filesystem queries fail with. It records the
// operation, the path and the underlying system error.
type FilesystemError = fs.PathError

var (
	// ErrLocked is returned by TryLock when the lock is held elsewhere.
	ErrLocked = fileio.ErrLocked

	// ErrIsDir is returned when file contents are read from a directory.
	ErrIsDir = fileio.ErrIsDir
)

// IsNotExist is true if the error indicates the path does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermission is true if the error indicates access to the path was denied.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// IsLocked is true if the error indicates the path is locked by someone else.
func IsLocked(err error) bool {
	return errors.Is(err, ErrLocked)
}

// ErrorPath returns the path recorded in err, if err carries one.
func ErrorPath(err error) (string, bool) {
	var pe *FilesystemError
	if errors.As(err, &pe) {
		return pe.Path, true
	}
	return "", false
}
