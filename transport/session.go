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

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// maxDatagramSize is large enough for any UDP payload a rate-limited
// raptor transfer would realistically use; IPv4/IPv6 UDP payloads never
// exceed 65507 bytes.
const maxDatagramSize = 65507

// Session wraps one UDP socket for a single transfer. It is oblivious to
// coding -- it never rewrites a payload -- but it does pin the K and T
// established by the first valid datagram it receives, per spec.md
// section 6, and rejects anything that disagrees with *ErrSessionMismatch.
type Session struct {
	conn    *net.UDPConn
	limiter *RateLimiter
	logger  *log.Logger

	mu          sync.Mutex
	established bool
	k           uint32
	t           int
}

// NewSession wraps conn for sending and receiving frames. limiter may be
// nil to disable rate limiting (receive-only sessions never need one).
// A nil logger disables logging.
func NewSession(conn *net.UDPConn, limiter *RateLimiter, logger *log.Logger) *Session {
	return &Session{conn: conn, limiter: limiter, logger: logger}
}

// Send rate-limits and writes one encoding symbol as a datagram to
// target. k is the source block's symbol count, seq its block index.
func (s *Session) Send(ctx context.Context, target *net.UDPAddr, esi, k, seq uint32, payload []byte) error {
	buf := Frame{ESI: esi, K: k, Seq: seq, Payload: payload}.Marshal()

	if s.limiter != nil {
		if err := s.limiter.Charge(ctx, len(buf)); err != nil {
			return err
		}
	}

	if _, err := s.conn.WriteToUDP(buf, target); err != nil {
		return fmt.Errorf("transport: send to %s: %w: %v", target, ErrIoFailure, err)
	}
	return nil
}

// Recv blocks for a single datagram, honoring ctx's deadline if it has
// one. A malformed datagram is reported as ErrMalformedFrame; a
// well-formed datagram whose K or payload length disagrees with the
// session established by an earlier datagram is reported as
// ErrSessionMismatch. In both cases the datagram is still consumed --
// callers should just call Recv again.
func (s *Session) Recv(ctx context.Context) (Frame, *net.UDPAddr, error) {
	if deadline, ok := ctx.Deadline(); ok {
		if err := s.conn.SetReadDeadline(deadline); err != nil {
			return Frame{}, nil, fmt.Errorf("transport: set read deadline: %w: %v", ErrIoFailure, err)
		}
	} else {
		_ = s.conn.SetReadDeadline(time.Time{})
	}

	buf := make([]byte, maxDatagramSize)
	n, peer, err := s.conn.ReadFromUDP(buf)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return Frame{}, nil, fmt.Errorf("transport: recv: %w", ErrSessionTimeout)
		}
		return Frame{}, nil, fmt.Errorf("transport: recv: %w: %v", ErrIoFailure, err)
	}

	frame, err := UnmarshalFrame(buf[:n])
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("dropping malformed frame", "peer", peer, "size", n)
		}
		return Frame{}, peer, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.established {
		s.established = true
		s.k = frame.K
		s.t = len(frame.Payload)
		return frame, peer, nil
	}
	if frame.K != s.k || len(frame.Payload) != s.t {
		if s.logger != nil {
			s.logger.Warn("dropping session-mismatched frame", "peer", peer, "got_k", frame.K, "want_k", s.k)
		}
		return Frame{}, peer, fmt.Errorf("transport: frame k=%d len=%d, session k=%d t=%d: %w", frame.K, len(frame.Payload), s.k, s.t, ErrSessionMismatch)
	}
	return frame, peer, nil
}

// K returns the symbol count established by the session, or 0 if no
// datagram has been received yet.
func (s *Session) K() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.k
}

// T returns the symbol size established by the session, or 0 if no
// datagram has been received yet.
func (s *Session) T() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t
}

// Close releases the underlying socket.
func (s *Session) Close() error {
	return s.conn.Close()
}
