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

func makeSourceSymbols(k, symbolSize int) []Symbol {
	source := make([]Symbol, k)
	for i := range source {
		sym := newSymbol(symbolSize)
		for b := range sym {
			sym[b] = byte((i*31 + b*17 + 5) % 256)
		}
		source[i] = sym
	}
	return source
}

func TestEncoderIsSystematic(t *testing.T) {
	const k = 16
	const symbolSize = 6

	source := makeSourceSymbols(k, symbolSize)
	enc, err := NewEncoder(k, symbolSize, source)
	require.NoError(t, err)

	for i := 0; i < k; i++ {
		sym, err := enc.Encode(uint32(i))
		require.NoError(t, err)
		assert.Equal(t, []byte(source[i]), []byte(sym))
	}
}

func TestEncoderRepairSymbolsDeterministic(t *testing.T) {
	const k = 16
	const symbolSize = 6

	source := makeSourceSymbols(k, symbolSize)
	enc, err := NewEncoder(k, symbolSize, source)
	require.NoError(t, err)

	a, err := enc.Encode(50)
	require.NoError(t, err)
	b, err := enc.Encode(50)
	require.NoError(t, err)
	assert.Equal(t, []byte(a), []byte(b))
}
