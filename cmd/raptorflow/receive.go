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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/raptorflow/raptorflow/raptor"
	"github.com/raptorflow/raptorflow/transport"
)

// received is one successfully-parsed datagram handed from the pump
// goroutine to the decode loop, or the terminal error that ended the pump.
type received struct {
	frame transport.Frame
	peer  net.Addr
	err   error
}

type receiveConfig struct {
	file string
	port string
}

// sessionTimeout is the caller-imposed wall-clock budget for a single
// receive session (spec.md section 5): if no decodable set of symbols
// arrives within this window, the session is abandoned.
const sessionTimeout = 5 * time.Minute

func runReceive(ctx context.Context, logger *log.Logger, cfg receiveConfig) error {
	port, err := strconv.Atoi(cfg.port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", cfg.port, err)
	}
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero, Port: port})
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}
	defer conn.Close()

	session := transport.NewSession(conn, nil, logger)
	logger.Info("waiting for symbols", "port", port)

	ctx, cancelCtx := context.WithTimeout(ctx, sessionTimeout)
	defer cancelCtx()

	// cancel both signals gctx.Done() and force-unblocks a pump goroutine
	// that's mid-read: SetReadDeadline lets conn.ReadFromUDP return
	// immediately instead of sitting blocked until the original deadline.
	cancel := func() {
		cancelCtx()
		_ = conn.SetReadDeadline(time.Now())
	}

	// The pump goroutine turns blocking Recv calls into a channel so the
	// decode loop below can watch both incoming datagrams and ctx's
	// cancellation (timeout, or "done" signaled by the loop itself) in
	// one select, instead of Recv and decode fighting over who owns the
	// loop.
	datagrams := make(chan received)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(datagrams)
		for {
			frame, peer, err := session.Recv(gctx)
			select {
			case datagrams <- received{frame: frame, peer: peer, err: err}:
			case <-gctx.Done():
				return nil
			}
			if err != nil && errors.Is(err, transport.ErrSessionTimeout) {
				return nil
			}
		}
	})

	var dec *raptor.Decoder
	var malformed, mismatched int
	var writeErr error
	stopping := false

	for r := range datagrams {
		if stopping {
			// A result is already decided; drain whatever the pump sends
			// on its way to shutting down without overwriting it.
			continue
		}

		switch {
		case r.err == nil:
			// handled below
		case errors.Is(r.err, transport.ErrMalformedFrame):
			malformed++
			continue
		case errors.Is(r.err, transport.ErrSessionMismatch):
			mismatched++
			continue
		case errors.Is(r.err, transport.ErrSessionTimeout):
			writeErr = fmt.Errorf("receive: no decodable symbol set arrived within %s (malformed=%d mismatched=%d): %w", sessionTimeout, malformed, mismatched, r.err)
			stopping = true
			cancel()
			continue
		default:
			writeErr = fmt.Errorf("receive: %w", r.err)
			stopping = true
			cancel()
			continue
		}

		if dec == nil {
			var err error
			dec, err = raptor.NewDecoder(int(r.frame.K), len(r.frame.Payload))
			if err != nil {
				writeErr = fmt.Errorf("start decoder for k=%d: %w", r.frame.K, err)
				stopping = true
				cancel()
				continue
			}
		}
		if err := dec.Add(r.frame.ESI, r.frame.Payload); err != nil {
			logger.Warn("dropping symbol", "peer", r.peer, "esi", r.frame.ESI, "err", err)
			continue
		}

		result, err := dec.TrySolve()
		if err != nil {
			writeErr = fmt.Errorf("decode: %w", err)
			stopping = true
			cancel()
			continue
		}
		if result.Status != raptor.Done {
			continue
		}

		logger.Info("decode complete", "symbols", dec.Count())
		writeErr = writeSourceAtomically(cfg.file, result.Source)
		stopping = true
		cancel()
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return writeErr
}

// writeSourceAtomically concatenates the decoded source symbols and
// writes them to a temp file in the destination directory, then renames
// it into place -- spec.md section 6's "write to temp, rename on
// success" persisted-state rule.
func writeSourceAtomically(path string, source []raptor.Symbol) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".part-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	for _, sym := range source {
		if _, err := tmp.Write(sym); err != nil {
			tmp.Close()
			return fmt.Errorf("write temp output: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp output into place: %w", err)
	}
	return nil
}
