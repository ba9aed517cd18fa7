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

package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeTree creates entries under root and returns root. Entries are
// slash-separated and relative to root. An entry ending in "/" becomes a
// directory; any other entry becomes a file whose content is its own name.
func MakeTree(t *testing.T, root string, entries ...string) string {
	t.Helper()

	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(entry))
		if strings.HasSuffix(entry, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0o644))
	}

	return root
}

// Chdir switches the working directory to dir until the test ends. Tests
// using it must not run in parallel.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}

func AssertErr(t *testing.T, err error, expectErr error) {
	t.Helper()

	if expectErr != nil {
		require.ErrorIs(t, err, expectErr)
	} else {
		require.NoError(t, err)
	}
}
