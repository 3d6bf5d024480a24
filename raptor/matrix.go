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

import "math/bits"

// bitRow is a packed, word-aligned row of a GF(2) matrix: bit c lives in
// word c/64, bit c%64 (from the least-significant bit). XORing two rows
// together is a word-wise XOR, giving roughly a 64x speedup over a
// byte-or-bool-per-column representation (see DESIGN.md / the teacher's
// sparseMatrix, which this replaces for the reasons given there).
type bitRow []uint64

func newBitRow(cols int) bitRow {
	return make(bitRow, (cols+63)/64)
}

func (r bitRow) test(col int) bool {
	return r[col/64]&(uint64(1)<<uint(col%64)) != 0
}

func (r bitRow) set(col int) {
	r[col/64] |= uint64(1) << uint(col%64)
}

func (r bitRow) clear(col int) {
	r[col/64] &^= uint64(1) << uint(col%64)
}

// xorInto computes dst ^= r.
func (r bitRow) xorInto(dst bitRow) {
	for i := range r {
		dst[i] ^= r[i]
	}
}

// weight returns the number of set bits in r.
func (r bitRow) weight() int {
	n := 0
	for _, w := range r {
		n += bits.OnesCount64(w)
	}
	return n
}

// weightMasked returns the number of bits set in both r and mask.
func (r bitRow) weightMasked(mask bitRow) int {
	n := 0
	for i := range r {
		n += bits.OnesCount64(r[i] & mask[i])
	}
	return n
}

// firstSet returns the lowest set column in r, or -1 if r is all zero.
func (r bitRow) firstSet() int {
	for i, w := range r {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}
	return -1
}

func (r bitRow) isZero() bool {
	for _, w := range r {
		if w != 0 {
			return false
		}
	}
	return true
}

// gf2Matrix is a dense packed-bit matrix of GF(2) equations: row i reads
// "the XOR of C over the columns set in rows[i] equals rhs[i]". It backs
// both PreCode's A(K) (spec.md section 4.3) and the decoder's augmented
// matrix (section 4.5).
type gf2Matrix struct {
	cols       int
	symbolSize int
	rows       []bitRow
	rhs        []Symbol
}

func newGF2Matrix(numRows, cols, symbolSize int) *gf2Matrix {
	m := &gf2Matrix{
		cols:       cols,
		symbolSize: symbolSize,
		rows:       make([]bitRow, numRows),
		rhs:        make([]Symbol, numRows),
	}
	for i := range m.rows {
		m.rows[i] = newBitRow(cols)
		m.rhs[i] = newSymbol(symbolSize)
	}
	return m
}

func (m *gf2Matrix) setRow(i int, columns []int, rhs Symbol) {
	for _, c := range columns {
		m.rows[i].set(c)
	}
	if rhs != nil {
		copy(m.rhs[i], rhs)
	}
}

// xorRowInto computes row dst ^= row src (bits and rhs both).
func (m *gf2Matrix) xorRowInto(dst, src int) {
	m.rows[src].xorInto(m.rows[dst])
	m.rhs[dst].xor(m.rhs[src])
}

// solve runs the inactivation-based Gaussian elimination of spec.md
// section 4.5 (RFC 5053 section 5.5.2) over the system in place, assuming
// len(m.rows) >= m.cols and that m.cols columns of it are independent.
// Rows beyond m.cols (if any) are carried along as extra redundant
// equations: the decoder uses this to solve an over-determined augmented
// matrix without having to pick which K of the received rows to keep
// ahead of time.
//
// The procedure runs in two passes:
//
//  1. Triangulate, column by column, by repeatedly choosing the unused
//     row of minimum weight over the still-active (non-inactivated)
//     columns -- ties broken by lowest row index, which for the
//     decoder's LT rows is lowest ESI arrival order, making replay
//     deterministic. If no unused row has weight 1 over the active
//     columns, the column with the most ones remaining across unused
//     rows is inactivated (deferred into U) instead of pivoted, and
//     triangulation continues on the shrunken active set.
//  2. Once every active column has a pivot row, the |U| columns
//     deferred in step 1 are solved with ordinary Gauss-Jordan
//     elimination over the rows left unused by step 1, then
//     back-substituted into the step-1 pivot rows.
//
// On return, for every col < m.cols, m.rows[col] is the unit vector for
// col and m.rhs[col] holds the solved value. Returns errPreCodeSingular
// if no pivot can be found for some column, which for a correctly
// constructed A(K) should never happen; the decoder treats it as "not
// enough independent rows yet" rather than a hard failure.
func (m *gf2Matrix) solve() error {
	n := m.cols
	numRows := len(m.rows)

	active := newBitRow(n)
	for c := 0; c < n; c++ {
		active.set(c)
	}

	used := make([]bool, numRows)
	pivotRowOf := make([]int, n)
	for c := range pivotRowOf {
		pivotRowOf[c] = -1
	}
	var inactivated []int

	for resolved := 0; resolved < n; {
		minRow, minDeg := -1, -1
		for r := 0; r < numRows; r++ {
			if used[r] {
				continue
			}
			w := m.rows[r].weightMasked(active)
			if w == 0 {
				continue
			}
			if minRow == -1 || w < minDeg {
				minRow, minDeg = r, w
				if minDeg == 1 {
					break
				}
			}
		}

		if minDeg == 1 {
			col := -1
			for c := 0; c < n; c++ {
				if active.test(c) && m.rows[minRow].test(c) {
					col = c
					break
				}
			}
			m.eliminateColumn(col, minRow)
			used[minRow] = true
			pivotRowOf[col] = minRow
			active.clear(col)
			resolved++
			continue
		}

		// No degree-1 row: inactivate the active column with the most
		// ones remaining among unused rows.
		bestCol, bestWeight := -1, -1
		for c := 0; c < n; c++ {
			if !active.test(c) {
				continue
			}
			w := 0
			for r := 0; r < numRows; r++ {
				if !used[r] && m.rows[r].test(c) {
					w++
				}
			}
			if w > bestWeight {
				bestCol, bestWeight = c, w
			}
		}
		if bestCol == -1 {
			return errPreCodeSingular
		}
		active.clear(bestCol)
		inactivated = append(inactivated, bestCol)
		resolved++
	}

	// Residual pass: solve the |U| inactivated columns with ordinary
	// Gauss-Jordan over whatever rows step 1 left unused, then fold the
	// result back into every row (both the residual rows and the
	// pivot rows from step 1 still carrying a bit in that column).
	unused := make([]int, 0, numRows)
	for r := 0; r < numRows; r++ {
		if !used[r] {
			unused = append(unused, r)
		}
	}
	for i, col := range inactivated {
		pivot := -1
		for j := i; j < len(unused); j++ {
			if m.rows[unused[j]].test(col) {
				pivot = j
				break
			}
		}
		if pivot == -1 {
			return errPreCodeSingular
		}
		unused[i], unused[pivot] = unused[pivot], unused[i]
		pivotRow := unused[i]
		m.eliminateColumn(col, pivotRow)
		pivotRowOf[col] = pivotRow
	}

	m.reorderByPivot(pivotRowOf)
	return nil
}

// eliminateColumn XORs row pivotRow into every other row that still has
// col set, leaving pivotRow as the sole row with col set.
func (m *gf2Matrix) eliminateColumn(col, pivotRow int) {
	for r := range m.rows {
		if r != pivotRow && m.rows[r].test(col) {
			m.xorRowInto(r, pivotRow)
		}
	}
}

// reorderByPivot rebuilds m.rows/m.rhs so that row col holds the solved
// unit vector for column col (pivotRowOf[col]'s former contents), for
// every col < m.cols; rows never chosen as a pivot (the decoder's
// redundant over-determined rows) are appended after, in their original
// relative order, for consistent() to check.
func (m *gf2Matrix) reorderByPivot(pivotRowOf []int) {
	numRows := len(m.rows)
	newRows := make([]bitRow, numRows)
	newRhs := make([]Symbol, numRows)

	isPivot := make([]bool, numRows)
	for col, r := range pivotRowOf {
		newRows[col] = m.rows[r]
		newRhs[col] = m.rhs[r]
		isPivot[r] = true
	}

	idx := len(pivotRowOf)
	for r := 0; r < numRows; r++ {
		if !isPivot[r] {
			newRows[idx] = m.rows[r]
			newRhs[idx] = m.rhs[r]
			idx++
		}
	}
	m.rows = newRows
	m.rhs = newRhs
}

// consistent reports whether every row beyond m.cols (the redundant rows
// left over after solve) reduced to an all-zero equation with a zero
// right-hand side. A nonzero rhs on an all-zero row means the received
// symbols disagree with each other, which should only happen if a
// datagram was corrupted in transit (the wire frame carries no checksum).
func (m *gf2Matrix) consistent() bool {
	for i := m.cols; i < len(m.rows); i++ {
		if m.rows[i].isZero() && !m.rhs[i].isZero() {
			return false
		}
	}
	return true
}
