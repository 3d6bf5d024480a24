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
	"errors"
	"fmt"
	"sort"
)

// DecodeStatus reports the outcome of a TrySolve call.
type DecodeStatus int

const (
	// NeedMore means fewer than K distinct encoding symbols have arrived,
	// or the received set isn't yet independent enough to invert A(K).
	// The caller should wait for more datagrams and call TrySolve again.
	NeedMore DecodeStatus = iota
	// Done means the block fully decoded; Result.Source holds the K
	// source symbols.
	Done
)

// DecodeResult is returned by TrySolve.
type DecodeResult struct {
	Status DecodeStatus
	Source []Symbol
}

// Decoder accumulates encoding symbols for a single source block and
// attempts to recover the K source symbols from them, per spec.md
// section 4.5.
//
// Decoder stores only (ESI, payload) pairs, deduplicated by ESI -- unlike
// the teacher's decoder, it keeps no cached row bitmaps, since ltIndices
// regenerates a row's columns cheaply from (K, ESI) alone. TrySolve
// rebuilds the augmented matrix from scratch on every call; callers are
// expected to call it only when they have reason to think the received
// set has grown (spec.md section 4.5 note 2).
type Decoder struct {
	k          int
	l, s, h    int
	symbolSize int
	pre        *PreCode
	received   map[uint32]Symbol
}

// NewDecoder prepares a decoder for a block with K source symbols of
// symbolSize bytes each.
func NewDecoder(k, symbolSize int) (*Decoder, error) {
	pre, err := NewPreCode(k)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		k:          k,
		l:          pre.L,
		s:          pre.S,
		h:          pre.H,
		symbolSize: symbolSize,
		pre:        pre,
		received:   make(map[uint32]Symbol),
	}, nil
}

// Add records an encoding symbol. Re-adding an ESI already on file is a
// no-op: it does not count twice toward the symbols needed to solve.
func (d *Decoder) Add(esi uint32, payload Symbol) error {
	if len(payload) != d.symbolSize {
		return fmt.Errorf("raptor: decoder add esi=%d: payload length %d, want %d: %w", esi, len(payload), d.symbolSize, ErrInvalidPayloadSize)
	}
	if _, ok := d.received[esi]; ok {
		return nil
	}
	d.received[esi] = payload.clone()
	return nil
}

// Count returns the number of distinct encoding symbols received so far.
func (d *Decoder) Count() int { return len(d.received) }

// Needed returns K, the number of source symbols in the block -- the
// minimum number of distinct encoding symbols TrySolve could possibly
// need, though inactivation overhead in A(K) usually means a handful
// more are required in practice.
func (d *Decoder) Needed() int { return d.k }

// TrySolve attempts to recover the source block from the encoding
// symbols received so far. It is safe to call repeatedly as more symbols
// arrive; each call is independent and does not mutate decoder state
// beyond what Add already did.
func (d *Decoder) TrySolve() (DecodeResult, error) {
	if len(d.received) < d.k {
		return DecodeResult{Status: NeedMore}, nil
	}

	m := newGF2Matrix(d.s+d.h+len(d.received), d.l, d.symbolSize)
	d.pre.buildLDPCRows(m)
	d.pre.buildHalfRows(m)

	// Rows are appended in ascending ESI order rather than map iteration
	// order (which Go deliberately randomizes) so solve()'s row-index
	// tie-break reproduces the same elimination, and hence the same
	// inactivation choices, on every call for a given received set.
	esis := make([]uint32, 0, len(d.received))
	for esi := range d.received {
		esis = append(esis, esi)
	}
	sort.Slice(esis, func(i, j int) bool { return esis[i] < esis[j] })

	row := d.s + d.h
	for _, esi := range esis {
		indices, err := ltIndices(d.k, esi)
		if err != nil {
			return DecodeResult{}, err
		}
		m.setRow(row, indices, d.received[esi])
		row++
	}

	if err := m.solve(); err != nil {
		if errors.Is(err, errPreCodeSingular) {
			return DecodeResult{Status: NeedMore}, nil
		}
		return DecodeResult{}, err
	}
	if !m.consistent() {
		return DecodeResult{}, fmt.Errorf("raptor: received symbols disagree with each other: %w", ErrDecoderNotSolvable)
	}

	c := make([]Symbol, d.l)
	for i := range c {
		c[i] = m.rhs[i]
	}

	source := make([]Symbol, d.k)
	for i := 0; i < d.k; i++ {
		indices, err := ltIndices(d.k, uint32(i))
		if err != nil {
			return DecodeResult{}, err
		}
		sym := newSymbol(d.symbolSize)
		for _, idx := range indices {
			sym.xor(c[idx])
		}
		source[i] = sym
	}

	return DecodeResult{Status: Done, Source: source}, nil
}
