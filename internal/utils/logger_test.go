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

package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) Printf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestSetLogger(t *testing.T) {
	prev := GetLogger()
	t.Cleanup(func() { SetLogger(prev) })

	rec := &recordLogger{}
	SetLogger(rec)
	GetLogger().Printf("resolve %q: %v", "x", "boom")
	assert.Equal(t, []string{`resolve "x": boom`}, rec.lines)

	SetLogger(nil)
	assert.Equal(t, Discard, GetLogger())
	GetLogger().Printf("dropped")
	assert.Len(t, rec.lines, 1)
}
