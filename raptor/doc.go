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

/*
Package raptor implements the systematic Raptor forward error correction
code described in RFC 5053: a fountain code where an essentially
unlimited number of encoding symbols can be generated from a fixed set of
K source symbols, and the original K symbols can be recovered from any
sufficiently large subset of those encoding symbols, whether or not that
subset includes the source symbols themselves.

The package is organized the way the RFC derives the code:

  - ComputeParams (params.go) turns a transfer length and a few tuning
    knobs into the block/symbol geometry (T, K, Z, N) the rest of the
    package works in.
  - Triple and ltIndices (triple.go) are the deterministic generator that
    maps an encoding symbol ID to the intermediate symbols it combines.
  - PreCode (precode.go) builds the LDPC, Half and LT constraint rows
    that tie the K source symbols to the L intermediate symbols, and
    solves them with the packed GF(2) matrix in matrix.go.
  - Encoder and Decoder (encoder.go, decoder.go) are the two public
    entry points: one turns a source block into encoding symbols on
    demand, the other turns a stream of received encoding symbols back
    into the source block once enough distinct ones have arrived.

Everything in this package is pure and allocation-light by design: no
logging, no I/O, no knowledge of how encoding symbols are carried between
the encoder and the decoder. That's left to the transport package.
*/
package raptor
