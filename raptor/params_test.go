// Copyright 2014 Google Inc. All rights reserved.
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

package raptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeParams(t *testing.T) {
	p, err := ComputeParams(1000000, 1024, 4, 65536, 10)
	require.NoError(t, err)

	assert.Equal(t, 512, p.T)
	assert.Equal(t, 1954, p.Kt)
	assert.Equal(t, 8, p.Z)
	assert.Equal(t, 2, p.N)
}

func TestComputeParamsRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name       string
		f          int64
		p, a, w, g int
	}{
		{"zero alignment", 1000, 1024, 0, 1024, 1},
		{"payload not multiple of alignment", 1000, 1023, 4, 1024, 1},
		{"zero transfer length", 0, 1024, 4, 1024, 1},
		{"zero sub-block size", 1000, 1024, 4, 0, 1},
		{"zero gMax", 1000, 1024, 4, 1024, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ComputeParams(c.f, c.p, c.a, c.w, c.g)
			assert.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestBlockSymbolCounts(t *testing.T) {
	p, err := ComputeParams(1000000, 1024, 4, 65536, 10)
	require.NoError(t, err)

	counts := p.BlockSymbolCounts()
	require.Len(t, counts, p.Z)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	assert.Equal(t, p.Kt, sum)

	// Longer blocks come first.
	for i := 1; i < len(counts); i++ {
		assert.LessOrEqual(t, counts[i], counts[i-1])
	}
}

func TestPartition(t *testing.T) {
	il, is, jl, js := partition(10, 3)
	assert.Equal(t, 4, il)
	assert.Equal(t, 3, is)
	assert.Equal(t, 1, jl)
	assert.Equal(t, 2, js)
	assert.Equal(t, 10, il*jl+is*js)
}
