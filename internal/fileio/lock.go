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
	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// ErrLocked is returned when the lock on a file is held by someone else.
var ErrLocked = errors.New("file is locked")

// NewLock returns an unlocked advisory lock bound to path. The file is created
// the first time the lock is taken.
func NewLock(path string) *flock.Flock {
	return flock.New(path)
}

// TryLock takes an exclusive lock on path without blocking.
func TryLock(path string) (*flock.Flock, error) {
	fl := NewLock(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", path)
	}
	if !locked {
		return nil, errors.Wrapf(ErrLocked, "lock %s", path)
	}

	return fl, nil
}
