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

// PreCode holds K and the L/S/H geometry of the L x L constraint matrix
// A(K) described in spec.md section 4.3 (RFC 5053 section 5.4.2.3): S
// LDPC rows, H Half rows, and K LT rows. It stores no matrix itself:
// BuildIntermediateSymbols builds A(K) afresh on each call and solves it
// for C, and the Decoder uses the same row builders for its augmented
// matrix.
type PreCode struct {
	K int
	L int
	S int
	H int
}

// NewPreCode validates k and precomputes the L/S/H geometry for it.
func NewPreCode(k int) (*PreCode, error) {
	if k < kMin || k > kMax {
		return nil, fmt.Errorf("raptor: K=%d outside [%d, %d]: %w", k, kMin, kMax, ErrInvalidK)
	}
	l, s, h := ldpcSizes(k)
	return &PreCode{K: k, L: l, S: s, H: h}, nil
}

// buildLDPCRows appends the S LDPC-band compositions (RFC 5053 section
// 5.4.2.3) into m, rows [0, S). Ported from the teacher's
// newRaptorDecoder LDPC loop, generalized off the raptorCodec receiver.
func (p *PreCode) buildLDPCRows(m *gf2Matrix) {
	compositions := make([][]int, p.S)
	for i := 0; i < p.K; i++ {
		a := 1 + (i/p.S)%(p.S-1)
		b := i % p.S
		compositions[b] = append(compositions[b], i)
		b = (b + a) % p.S
		compositions[b] = append(compositions[b], i)
		b = (b + a) % p.S
		compositions[b] = append(compositions[b], i)
	}
	for i := 0; i < p.S; i++ {
		compositions[i] = append(compositions[i], p.K+i)
		m.setRow(i, compositions[i], nil)
	}
}

// buildHalfRows appends the H Half-band compositions into m, rows
// [S, S+H). Each row is driven by a Gray-code sequence over K+S columns,
// plus an identity bit in the Half column block.
func (p *PreCode) buildHalfRows(m *gf2Matrix) {
	hPrime := (p.H + 1) / 2
	gray := buildGraySequence(p.K+p.S, hPrime)
	for i := 0; i < p.H; i++ {
		var columns []int
		for j := 0; j < p.K+p.S; j++ {
			if bitSet(gray[j], uint(i)) {
				columns = append(columns, j)
			}
		}
		columns = append(columns, p.K+p.S+i)
		m.setRow(p.S+i, columns, nil)
	}
}

// buildLTRows appends the K LT-band rows into m, rows [S+H, L): row
// S+H+i is the LT row for ESI=i, carrying the source symbol D[i] as its
// right-hand side. This is what makes the code systematic -- re-running
// the LT row for ESI i against the solved C reproduces D[i] exactly.
func (p *PreCode) buildLTRows(m *gf2Matrix, source []Symbol) error {
	for i := 0; i < p.K; i++ {
		columns, err := ltIndices(p.K, uint32(i))
		if err != nil {
			return err
		}
		m.setRow(p.S+p.H+i, columns, source[i])
	}
	return nil
}

// BuildIntermediateSymbols solves A(K)*C = D' for the intermediate symbol
// array C, given the K source symbols of the block (each symbolSize
// bytes, source[i] already zero-padded to symbolSize by the caller).
//
// A(K) is deterministic in K and, by construction of the systematic index
// table, invertible for every K in [kMin, kMax]; BuildIntermediateSymbols
// panics if that guarantee is ever violated, since that indicates a bug in
// the static tables or row construction rather than a user error (see
// errPreCodeSingular).
func (p *PreCode) BuildIntermediateSymbols(source []Symbol, symbolSize int) ([]Symbol, error) {
	if len(source) != p.K {
		return nil, fmt.Errorf("raptor: expected %d source symbols, got %d: %w", p.K, len(source), ErrInvalidK)
	}
	for i, s := range source {
		if len(s) != symbolSize {
			return nil, fmt.Errorf("raptor: source symbol %d has length %d, want %d: %w", i, len(s), symbolSize, ErrInvalidPayloadSize)
		}
	}

	m := newGF2Matrix(p.L, p.L, symbolSize)
	p.buildLDPCRows(m)
	p.buildHalfRows(m)
	if err := p.buildLTRows(m, source); err != nil {
		return nil, err
	}

	if err := m.solve(); err != nil {
		panic(fmt.Sprintf("raptor: A(%d) is singular, systematic index table is broken: %v", p.K, err))
	}

	c := make([]Symbol, p.L)
	for i := range c {
		c[i] = m.rhs[i].clone()
	}
	return c, nil
}
