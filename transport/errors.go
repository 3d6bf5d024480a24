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

package transport

import "errors"

// Sentinel errors per spec.md section 7.
var (
	// ErrMalformedFrame is returned when a received datagram is too short
	// to contain the frame header. Recoverable: the caller drops the
	// datagram and keeps listening.
	ErrMalformedFrame = errors.New("transport: malformed frame")

	// ErrSessionMismatch is returned when a datagram's K/T disagrees with
	// the session established by the first valid datagram received.
	ErrSessionMismatch = errors.New("transport: session mismatch")

	// ErrSessionTimeout is returned when a caller-imposed wall-clock
	// budget expires before a session finishes.
	ErrSessionTimeout = errors.New("transport: session timeout")

	// ErrIoFailure wraps an underlying socket error from send or recv.
	ErrIoFailure = errors.New("transport: i/o failure")
)
