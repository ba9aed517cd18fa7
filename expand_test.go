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
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutsdb/winpath/internal/testutils"
)

func TestPath_ExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	assert.Equal(t, home, New("~").ExpandUser().String())
	assert.Equal(t, filepath.Join(home, "src", "x"), New("~/src/x").ExpandUser().String())
	assert.Equal(t, filepath.FromSlash("a/~/b"), New("a/~/b").ExpandUser().String())
	assert.Equal(t, filepath.FromSlash("~no-such-user-winpath/a"), New("~no-such-user-winpath/a").ExpandUser().String())
}

func TestPath_ExpandUser_FollowsHomeChanges(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	t.Setenv("HOME", first)
	t.Setenv("USERPROFILE", first)
	assert.Equal(t, first, New("~").ExpandUser().String())

	t.Setenv("HOME", second)
	t.Setenv("USERPROFILE", second)
	assert.Equal(t, second, New("~").ExpandUser().String())
	assert.True(t, homedir.DisableCache)
}

func TestPath_ExpandUser_NamedUser(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("user names carry a domain on windows")
	}

	current, err := user.Current()
	require.NoError(t, err)
	u, err := user.Lookup(current.Username)
	if err != nil {
		t.Skipf("user database unavailable: %v", err)
	}

	got := New("~" + u.Username + "/notes").ExpandUser()
	assert.Equal(t, filepath.Join(u.HomeDir, "notes"), got.String())
}

func TestPath_ExpandVars(t *testing.T) {
	t.Setenv("WINPATH_ROOT", filepath.FromSlash("/srv/data"))
	os.Unsetenv("WINPATH_UNSET")

	assert.Equal(t, filepath.FromSlash("/srv/data/logs"), New("$WINPATH_ROOT/logs").ExpandVars().String())
	assert.Equal(t, filepath.FromSlash("/srv/data/logs"), New("${WINPATH_ROOT}/logs").ExpandVars().String())
	assert.Equal(t, filepath.FromSlash("$WINPATH_UNSET/logs"), New("$WINPATH_UNSET/logs").ExpandVars().String())

	if runtime.GOOS == "windows" {
		assert.Equal(t, `\srv\data\logs`, New(`%WINPATH_ROOT%\logs`).ExpandVars().String())
	}
}

func TestPath_NormCase(t *testing.T) {
	p := New("Docs/ReadMe.TXT")

	if runtime.GOOS == "windows" {
		assert.Equal(t, `docs\readme.txt`, p.NormCase().String())
		return
	}
	assert.Equal(t, p, p.NormCase())
}

func TestPath_Abspath(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)

	wd, err := os.Getwd()
	require.NoError(t, err)

	got := New("a/../b").Abspath()
	assert.True(t, got.IsAbs())
	assert.Equal(t, filepath.Join(wd, "b"), got.String())
}

func TestPath_Realpath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := testutils.MakeTree(t, t.TempDir(), "real/file.txt")
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), link))

	want, err := filepath.EvalSymlinks(filepath.Join(root, "real", "file.txt"))
	require.NoError(t, err)

	got, err := New(link).Join("file.txt").Realpath()
	require.NoError(t, err)
	assert.Equal(t, want, got.String())

	_, err = New(root).Join("missing").Realpath()
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}
