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
	"fmt"
	"sort"
)

// raptorRand is the RAND function from RFC 5053 section 5.4.4.1. x and i
// are non-negative, m is positive; the result is in [0, m).
func raptorRand(x, i, m uint32) uint32 {
	v0 := v0Table[(x+i)%256]
	v1 := v1Table[((x/256)+i)%256]
	return (v0 ^ v1) % m
}

// degree is the Deg function from RFC 5053 section 5.4.4.2. v must be in
// [0, 2^20).
func degree(v uint32) int {
	for j := 1; j < len(degreeBreakpoints)-1; j++ {
		if v < degreeBreakpoints[j] {
			return degreeValues[j]
		}
	}
	return degreeValues[len(degreeValues)-1]
}

// systematicIndex returns J(K) for K in [kMin, kMax].
func systematicIndex(k int) (uint32, error) {
	if k < kMin || k > kMax {
		return 0, fmt.Errorf("raptor: K=%d outside [%d, %d]: %w", k, kMin, kMax, ErrInvalidK)
	}
	return systematicIndexTable[k-kMin], nil
}

// Triple is the deterministic generator (d, a, b) from RFC 5053 section
// 5.4.4.4 (spec.md section 4.2), generalized to a 32-bit ESI per spec.md's
// data model (the teacher restricts X to uint16; this package follows the
// spec instead, since encoding symbol IDs range over [0, 2^32)).
//
// Triple is a pure function of (k, x): identical inputs always produce an
// identical (d, a, b), and it holds no state beyond the package-level
// static tables.
func Triple(k int, x uint32) (d int, a uint32, b uint32, err error) {
	j, err := systematicIndex(k)
	if err != nil {
		return 0, 0, 0, err
	}

	aPrime := uint32((53591 + uint64(j)*997) % q)
	bPrime := uint32((10267 * uint64(j+1)) % q)
	y := uint32((uint64(bPrime) + uint64(x)*uint64(aPrime)) % q)

	v := raptorRand(y, 0, 1<<20)
	d = degree(v)
	if d > k {
		d = k
	}
	// a and b are drawn modulo K, not L' -- RFC 5053 section 5.4.4.4 draws
	// the triple itself over the source-symbol range; L' only enters when
	// ltIndices walks (d, a, b) across the wider intermediate-symbol space.
	a = 1 + raptorRand(y, 1, uint32(k)-1)
	b = raptorRand(y, 2, uint32(k))
	return d, a, b, nil
}

// ltIndices walks the triple (d, a, b) for ESI x across the L-column LT
// space (section 5.4.4.3) and returns the sorted, de-duplicated set of
// intermediate-symbol indices the LT row for x sums.
func ltIndices(k int, x uint32) ([]int, error) {
	d, a, b, err := Triple(k, x)
	if err != nil {
		return nil, err
	}

	l, _, _ := ldpcSizes(k)
	lprime := uint32(smallestPrimeGreaterOrEqual(l))

	for b >= uint32(l) {
		b = (b + a) % lprime
	}

	seen := make(map[int]bool, d)
	indices := make([]int, 0, d)
	indices = append(indices, int(b))
	seen[int(b)] = true

	for j := 1; j < d; j++ {
		b = (b + a) % lprime
		for b >= uint32(l) {
			b = (b + a) % lprime
		}
		if !seen[int(b)] {
			seen[int(b)] = true
			indices = append(indices, int(b))
		}
	}

	sort.Ints(indices)
	return indices, nil
}
