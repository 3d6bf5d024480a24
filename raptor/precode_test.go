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

func TestNewPreCodeRejectsOutOfRangeK(t *testing.T) {
	_, err := NewPreCode(kMax + 1)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = NewPreCode(kMin - 1)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestNewPreCodeGeometry(t *testing.T) {
	p, err := NewPreCode(100)
	require.NoError(t, err)
	l, s, h := ldpcSizes(100)
	assert.Equal(t, l, p.L)
	assert.Equal(t, s, p.S)
	assert.Equal(t, h, p.H)
	assert.Equal(t, s+h+100, p.L)
}

// TestBuildIntermediateSymbolsReproducesSource checks the systematic
// property end to end for A(K): solving for C and then replaying the LT
// row for ESI=i must reproduce source symbol i exactly. It runs at K=10
// (inside the genuine RFC 5053 systematic-index range, J(10)=62, see
// tables.go) and K=100 (inside the self-generated stand-in range), so
// A(K)'s invertibility is independently exercised in both regimes.
func TestBuildIntermediateSymbolsReproducesSource(t *testing.T) {
	const symbolSize = 8

	for _, k := range []int{10, 100} {
		pre, err := NewPreCode(k)
		require.NoError(t, err)

		source := make([]Symbol, k)
		for i := range source {
			sym := newSymbol(symbolSize)
			for b := range sym {
				sym[b] = byte((i*7 + b*3) % 256)
			}
			source[i] = sym
		}

		c, err := pre.BuildIntermediateSymbols(source, symbolSize)
		require.NoError(t, err, "k=%d", k)
		require.Len(t, c, pre.L, "k=%d", k)

		for i := 0; i < k; i++ {
			indices, err := ltIndices(k, uint32(i))
			require.NoError(t, err)

			got := newSymbol(symbolSize)
			for _, idx := range indices {
				got.xor(c[idx])
			}
			assert.Equal(t, []byte(source[i]), []byte(got), "k=%d: source symbol %d did not round-trip through A(K)", k, i)
		}
	}
}

func TestBuildIntermediateSymbolsRejectsWrongCount(t *testing.T) {
	pre, err := NewPreCode(10)
	require.NoError(t, err)

	_, err = pre.BuildIntermediateSymbols(make([]Symbol, 9), 4)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestBuildIntermediateSymbolsRejectsWrongSymbolSize(t *testing.T) {
	pre, err := NewPreCode(4)
	require.NoError(t, err)

	source := make([]Symbol, 4)
	for i := range source {
		source[i] = newSymbol(4)
	}
	source[1] = newSymbol(5)

	_, err = pre.BuildIntermediateSymbols(source, 4)
	assert.ErrorIs(t, err, ErrInvalidPayloadSize)
}
