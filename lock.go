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
	"github.com/gofrs/flock"

	"github.com/nutsdb/winpath/internal/fileio"
)

// Locker returns an advisory file lock bound to p. Nothing is locked, or
// created, until one of its Lock methods is called.
func (p Path) Locker() *flock.Flock {
	return fileio.NewLock(p.String())
}

// TryLock takes an exclusive advisory lock on p without waiting, creating the
// file if needed. If someone else holds the lock the error matches ErrLocked.
// Release the lock with Unlock on the returned value.
func (p Path) TryLock() (*flock.Flock, error) {
	return fileio.TryLock(p.String())
}
