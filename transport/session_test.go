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
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoopbackConn(t *testing.T) *net.UDPConn {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSessionSendRecvRoundTrip(t *testing.T) {
	recvConn := newLoopbackConn(t)
	sendConn := newLoopbackConn(t)

	recv := NewSession(recvConn, nil, nil)
	send := NewSession(sendConn, NewRateLimiter(1000, nil), nil)

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	go func() {
		_ = send.Send(context.Background(), recvConn.LocalAddr().(*net.UDPAddr), 7, 10, 1, payload)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	frame, peer, err := recv.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), frame.ESI)
	assert.Equal(t, uint32(10), frame.K)
	assert.Equal(t, uint32(1), frame.Seq)
	assert.Equal(t, payload, frame.Payload)
	assert.NotNil(t, peer)

	assert.Equal(t, uint32(10), recv.K())
	assert.Equal(t, len(payload), recv.T())
}

func TestSessionRejectsMismatchedK(t *testing.T) {
	recvConn := newLoopbackConn(t)
	sendConn := newLoopbackConn(t)
	recvAddr := recvConn.LocalAddr().(*net.UDPAddr)

	recv := NewSession(recvConn, nil, nil)
	send := NewSession(sendConn, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, send.Send(ctx, recvAddr, 0, 10, 0, make([]byte, 8)))
	_, _, err := recv.Recv(ctx)
	require.NoError(t, err)

	require.NoError(t, send.Send(ctx, recvAddr, 1, 11, 0, make([]byte, 8)))
	_, _, err = recv.Recv(ctx)
	assert.ErrorIs(t, err, ErrSessionMismatch)
}

func TestSessionRecvTimesOut(t *testing.T) {
	recvConn := newLoopbackConn(t)
	recv := NewSession(recvConn, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := recv.Recv(ctx)
	assert.ErrorIs(t, err, ErrSessionTimeout)
}
