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

import "fmt"

// Encoder produces encoding symbols for a single source block, per
// spec.md section 4.4. It is systematic: Encode(x) for x < K returns the
// source symbol at index x verbatim, with no LT recombination required.
type Encoder struct {
	k          int
	symbolSize int
	source     []Symbol
	c          []Symbol
}

// NewEncoder runs PreCode over source (K symbols, each exactly
// symbolSize bytes, already padded by the caller) and returns an Encoder
// ready to emit encoding symbols for any ESI in [0, 2^32).
func NewEncoder(k, symbolSize int, source []Symbol) (*Encoder, error) {
	pre, err := NewPreCode(k)
	if err != nil {
		return nil, err
	}
	c, err := pre.BuildIntermediateSymbols(source, symbolSize)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		k:          k,
		symbolSize: symbolSize,
		source:     source,
		c:          c,
	}, nil
}

// K returns the number of source symbols in the block.
func (e *Encoder) K() int { return e.k }

// SymbolSize returns T, the fixed symbol size for the block.
func (e *Encoder) SymbolSize() int { return e.symbolSize }

// Encode returns the encoding symbol for esi. For esi < K this is the
// source symbol itself; for esi >= K it is the XOR of the intermediate
// symbols named by the LT triple for esi (spec.md section 4.4).
func (e *Encoder) Encode(esi uint32) (Symbol, error) {
	if esi < uint32(e.k) {
		return e.source[esi].clone(), nil
	}

	indices, err := ltIndices(e.k, esi)
	if err != nil {
		return nil, fmt.Errorf("raptor: encode esi=%d: %w", esi, err)
	}

	out := newSymbol(e.symbolSize)
	for _, idx := range indices {
		out.xor(e.c[idx])
	}
	return out, nil
}
