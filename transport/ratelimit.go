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
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// RateLimiter is a token bucket in bytes, shared by every sender on a
// transport under mutual exclusion (spec.md section 4.6/5). Tokens
// refill at a fixed rate; the bucket's checkpoint resets every full
// second so the limiter tracks "bytes sent this second" rather than
// accumulating floating-point drift across a long-running transfer.
type RateLimiter struct {
	mu         sync.Mutex
	ratePerSec float64
	capacity   float64
	tokens     float64
	checkpoint time.Time
	now        func() time.Time
	logger     *log.Logger
}

// NewRateLimiter builds a limiter refilling at rateMbps megabits/second.
// A nil logger disables stall logging.
func NewRateLimiter(rateMbps int, logger *log.Logger) *RateLimiter {
	rate := float64(rateMbps) * 1024 * 1024 / 8
	return &RateLimiter{
		ratePerSec: rate,
		capacity:   rate,
		tokens:     rate,
		checkpoint: time.Now(),
		now:        time.Now,
		logger:     logger,
	}
}

// Charge blocks until n bytes' worth of tokens are available, then
// deducts them. It returns ctx.Err() if ctx is cancelled while waiting;
// a cancelled charge counts as nothing sent.
func (r *RateLimiter) Charge(ctx context.Context, n int) error {
	r.mu.Lock()
	for {
		r.refillLocked()
		if r.tokens >= float64(n) {
			r.tokens -= float64(n)
			r.mu.Unlock()
			return nil
		}

		deficit := float64(n) - r.tokens
		wait := time.Duration(deficit / r.ratePerSec * float64(time.Second))
		if r.logger != nil {
			r.logger.Debug("rate limiter stall", "bytes", n, "wait", wait)
		}
		r.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		r.mu.Lock()
	}
}

// refillLocked resets the bucket to full if a full second has elapsed
// since the last checkpoint. Caller must hold r.mu.
func (r *RateLimiter) refillLocked() {
	now := r.now()
	if now.Sub(r.checkpoint) >= time.Second {
		r.checkpoint = now
		r.tokens = r.capacity
	}
}
