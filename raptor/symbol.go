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

// Symbol is a fixed-size T-byte payload: a source symbol, an intermediate
// symbol, or an encoding symbol. Unlike the teacher's block type, Symbol
// carries no padding bookkeeping of its own -- ParamCalc fixes T up front
// and the caller is responsible for zero-padding the final source symbol
// to T bytes (data model, spec.md section 3).
type Symbol []byte

// newSymbol allocates a zeroed T-byte symbol.
func newSymbol(t int) Symbol {
	return make(Symbol, t)
}

// xor destructively XORs other into s. Both must be the same length.
func (s Symbol) xor(other Symbol) {
	for i := range s {
		s[i] ^= other[i]
	}
}

// clone returns an independent copy of s.
func (s Symbol) clone() Symbol {
	c := make(Symbol, len(s))
	copy(c, s)
	return c
}

// isZero reports whether every byte of s is zero.
func (s Symbol) isZero() bool {
	for _, b := range s {
		if b != 0 {
			return false
		}
	}
	return true
}
