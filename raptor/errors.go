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

import "errors"

// Sentinel errors per spec.md section 7. Callers should use errors.Is
// against these, since the package always wraps them with context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidParameters is returned when ComputeParams receives inputs
	// that violate alignment or size constraints. Recoverable: the caller
	// may retry with different parameters.
	ErrInvalidParameters = errors.New("raptor: invalid parameters")

	// ErrInvalidK is returned when K falls outside [4, K_MAX]. Not
	// recoverable for the current session.
	ErrInvalidK = errors.New("raptor: K out of range")

	// ErrInvalidPayloadSize is returned when a symbol's payload is not
	// exactly T bytes.
	ErrInvalidPayloadSize = errors.New("raptor: invalid payload size")

	// ErrDecoderNotSolvable is returned by TrySolve when the augmented
	// matrix solves but a redundant received row contradicts the solution,
	// i.e. the received symbols disagree with each other. A matrix that is
	// not yet full column rank is reported as NeedMore, however many rows
	// have arrived; TrySolve applies no row-count limit.
	ErrDecoderNotSolvable = errors.New("raptor: decoder not solvable")
)

// errPreCodeSingular indicates A(K) failed to invert for a valid K. The
// systematic index table is chosen specifically so this never happens; if
// it does, it is a bug in the table or the row construction, not a user
// error, so PreCode.BuildIntermediateSymbols panics on it. The Decoder
// also gets it from solving its augmented matrix, where it only means
// not enough independent rows have arrived yet, and reports NeedMore.
var errPreCodeSingular = errors.New("raptor: precode matrix A(K) is singular")
