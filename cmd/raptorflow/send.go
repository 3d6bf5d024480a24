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
	"fmt"
	"net"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/raptorflow/raptorflow/raptor"
	"github.com/raptorflow/raptorflow/transport"
)

type sendConfig struct {
	file     string
	target   string
	rateMbps int
	verbose  bool
}

// overheadSymbols is how many repair symbols past K are sent for every
// source block, a safety margin against the handful of datagrams that
// are always lost or that the decoder's inactivation elimination needs
// before A(K)'s augmented rows reach full rank.
const overheadSymbols = 8

// sendWorkers is how many goroutines split the ESI range between them.
// Encode(esi) for esi >= K does real GF(2) work (an LT row combination),
// so spreading it across workers keeps a single slow encode from
// blocking the socket; Session.Send and the shared rate limiter are both
// safe for concurrent use.
const sendWorkers = 4

func runSend(ctx context.Context, logger *log.Logger, cfg sendConfig) error {
	data, err := os.ReadFile(cfg.file)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.file, err)
	}

	params, err := raptor.ComputeParams(int64(len(data)), defaultPayloadSize, 1, 1<<20, 10)
	if err != nil {
		return fmt.Errorf("compute transfer parameters: %w", err)
	}
	if params.Z != 1 {
		return fmt.Errorf("file is %d bytes, too large for a single %d-symbol block at this payload size; send a smaller file or split it yourself", len(data), raptor.KMax)
	}

	source := padToSourceSymbols(data, params.Kt, params.T)
	enc, err := raptor.NewEncoder(params.Kt, params.T, source)
	if err != nil {
		return fmt.Errorf("build encoder: %w", err)
	}

	addr, err := net.ResolveUDPAddr("udp", cfg.target)
	if err != nil {
		return fmt.Errorf("resolve target %s: %w", cfg.target, err)
	}
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return fmt.Errorf("open send socket: %w", err)
	}
	defer conn.Close()

	limiter := transport.NewRateLimiter(cfg.rateMbps, logger)
	session := transport.NewSession(conn, limiter, logger)

	total := uint32(params.Kt + overheadSymbols)
	logger.Info("sending", "file", cfg.file, "k", params.Kt, "t", params.T, "symbols", total)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < sendWorkers; w++ {
		w := w
		g.Go(func() error {
			for esi := uint32(w); esi < total; esi += sendWorkers {
				payload, err := enc.Encode(esi)
				if err != nil {
					return fmt.Errorf("encode esi=%d: %w", esi, err)
				}
				if err := session.Send(gctx, addr, esi, uint32(params.Kt), 0, payload); err != nil {
					return fmt.Errorf("send esi=%d: %w", esi, err)
				}
				if cfg.verbose {
					logger.Debug("sent symbol", "esi", esi, "size", len(payload))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("send complete", "symbols", total)
	return nil
}

// padToSourceSymbols splits data into K symbols of t bytes each,
// zero-padding the final symbol so every symbol is exactly t bytes, per
// spec.md's data model.
func padToSourceSymbols(data []byte, k, t int) []raptor.Symbol {
	symbols := make([]raptor.Symbol, k)
	for i := 0; i < k; i++ {
		start := i * t
		end := start + t
		sym := make(raptor.Symbol, t)
		if start < len(data) {
			copy(sym, data[start:min(end, len(data))])
		}
		symbols[i] = sym
	}
	return symbols
}
