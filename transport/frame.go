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

// Package transport carries raptor encoding symbols over UDP: a wire
// frame codec, a shared token-bucket rate limiter, and a Session that
// pins K and T for the lifetime of one transfer.
package transport

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the fixed 12-byte frame header: ESI, K, seq, each a
// big-endian uint32.
const headerSize = 12

// Frame is one datagram's worth of an encoding symbol: its identifier
// (ESI), the source block's symbol count (K) and sequence/block index,
// and the T-byte payload itself.
type Frame struct {
	ESI     uint32
	K       uint32
	Seq     uint32
	Payload []byte
}

// Marshal encodes f into the wire format from spec.md section 4.6:
// ESI, K, Seq as big-endian uint32 followed by the payload verbatim.
func (f Frame) Marshal() []byte {
	buf := make([]byte, headerSize+len(f.Payload))
	binary.BigEndian.PutUint32(buf[0:4], f.ESI)
	binary.BigEndian.PutUint32(buf[4:8], f.K)
	binary.BigEndian.PutUint32(buf[8:12], f.Seq)
	copy(buf[headerSize:], f.Payload)
	return buf
}

// UnmarshalFrame decodes a received datagram into a Frame. It returns
// ErrMalformedFrame if buf is shorter than the fixed header.
func UnmarshalFrame(buf []byte) (Frame, error) {
	if len(buf) < headerSize {
		return Frame{}, fmt.Errorf("transport: datagram is %d bytes, header needs %d: %w", len(buf), headerSize, ErrMalformedFrame)
	}
	f := Frame{
		ESI: binary.BigEndian.Uint32(buf[0:4]),
		K:   binary.BigEndian.Uint32(buf[4:8]),
		Seq: binary.BigEndian.Uint32(buf[8:12]),
	}
	f.Payload = make([]byte, len(buf)-headerSize)
	copy(f.Payload, buf[headerSize:])
	return f, nil
}
