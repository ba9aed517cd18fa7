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

package fileio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nutsdb/winpath/internal/fileio"
	"github.com/nutsdb/winpath/internal/testutils"
)

func TestTryLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "LOCK")

	first, err := fileio.TryLock(path)
	require.NoError(t, err)

	_, err = fileio.TryLock(path)
	testutils.AssertErr(t, err, fileio.ErrLocked)

	require.NoError(t, first.Unlock())

	second, err := fileio.TryLock(path)
	testutils.AssertErr(t, err, nil)
	require.NoError(t, second.Unlock())
}
