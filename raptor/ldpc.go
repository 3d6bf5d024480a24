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
	"math"
	"sort"
)

// smallPrimes is used both to sieve small composites quickly and as a
// direct lookup table for smallestPrimeGreaterOrEqual on small inputs.
var smallPrimes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307, 311, 313, 317,
	331, 337, 347, 349, 353, 359, 367, 373, 379, 383, 389, 397, 401, 409, 419,
	421, 431, 433, 439, 443, 449, 457, 461, 463, 467, 479, 487, 491, 499, 503,
	509, 521, 523, 541, 547, 557, 563, 569, 571, 577, 587, 593, 599, 601, 607,
	613, 617, 619, 631, 641, 643, 647, 653, 659, 661, 673, 677, 683, 691, 701,
	709, 719, 727, 733, 739, 743, 751, 757, 761, 769, 773, 787, 797, 809, 811,
	821, 823, 827, 829, 839, 853, 857, 859, 863, 877, 881, 883, 887, 907, 911,
	919, 929, 937, 941, 947, 953, 967, 971, 977, 983, 991, 997,
}

// isPrime tests x for primality via trial division against smallPrimes.
// Valid for x below the square of the largest entry in smallPrimes.
func isPrime(x int) bool {
	if x < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if p*p > x {
			return true
		}
		if x%p == 0 {
			return x == p
		}
	}
	return true
}

// smallestPrimeGreaterOrEqual returns the smallest prime p >= x.
func smallestPrimeGreaterOrEqual(x int) int {
	if x <= 2 {
		return 2
	}
	if x <= smallPrimes[len(smallPrimes)-1] {
		i := sort.SearchInts(smallPrimes, x)
		return smallPrimes[i]
	}
	for !isPrime(x) {
		x++
	}
	return x
}

// choose computes C(n, k), tolerant of the modestly large n this package
// calls it with (the centerBinomial search for H never needs n beyond a
// few hundred).
func choose(n, k int) int {
	if k > n/2 {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// centerBinomial computes C(x, ceil(x/2)).
func centerBinomial(x int) int {
	return choose(x, (x+1)/2)
}

// ldpcSizes computes L, S, H from K per RFC 5053 section 5.4.2.3
// (spec.md section 4.3):
//
//	X is the smallest positive integer with X*(X-1) >= 2*K.
//	S is the smallest prime >= ceil(0.01*K) + X.
//	H is the smallest integer with choose(H, ceil(H/2)) >= K + S.
//	L = K + S + H.
func ldpcSizes(k int) (l int, s int, h int) {
	x := int(math.Floor(math.Sqrt(2 * float64(k))))
	if x < 1 {
		x = 1
	}
	for x*(x-1) < 2*k {
		x++
	}

	s = int(math.Ceil(0.01*float64(k))) + x
	s = smallestPrimeGreaterOrEqual(s)

	h = int(math.Floor(math.Log(float64(s)+float64(k)) / math.Log(4)))
	if h < 1 {
		h = 1
	}
	for centerBinomial(h) < k+s {
		h++
	}

	return k + s + h, s, h
}

// grayCode returns the Gray code representation of x: successive values
// of grayCode differ in exactly one bit.
func grayCode(x uint64) uint64 {
	return x ^ (x >> 1)
}

// bitsSet returns the number of set bits in x.
func bitsSet(x uint64) int {
	x -= (x >> 1) & 0x5555555555555555
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((x * 0x0101010101010101) >> 56)
}

// bitSet reports whether bit b of x is set.
func bitSet(x uint64, b uint) bool {
	return (x>>b)&1 == 1
}

// buildGraySequence returns the first `length` Gray codes with exactly `b`
// bits set, in Gray-sequence order (grayCode(x) for ascending x, which is
// not ascending by value). Used to build the Half band of A(K).
func buildGraySequence(length int, b int) []uint64 {
	s := make([]uint64, 0, length)
	for x := uint64(0); len(s) < length; x++ {
		g := grayCode(x)
		if bitsSet(g) == b {
			s = append(s, g)
		}
	}
	return s
}
