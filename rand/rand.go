//
// Copyright 2021 the FLPrivacy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package rand provides the cryptographically secure randomness source
// backing the sampling performed by the mechanisms.
//
// The source implements golang.org/x/exp/rand.Source so it can drive the
// gonum distributions directly. Callers that need deterministic draws
// (typically tests) substitute a seeded source such as
// golang.org/x/exp/rand.NewSource instead.
package rand

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	log "github.com/golang/glog"
	xrand "golang.org/x/exp/rand"
)

var (
	randBufLock sync.Mutex
	randBuf     io.Reader = bufio.NewReaderSize(cryptorand.Reader, 65536)
)

func readRandBuf(b []byte) (int, error) {
	randBufLock.Lock()
	defer randBufLock.Unlock()
	return io.ReadFull(randBuf, b)
}

// U64 returns a uniformly random uint64.
func U64() uint64 {
	var r [8]uint8
	if _, err := readRandBuf(r[:]); err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return binary.LittleEndian.Uint64(r[:])
}

// secureSource implements rand.Source on top of the buffered crypto
// reader.
type secureSource struct{}

// Uint64 returns a uniformly random uint64.
func (secureSource) Uint64() uint64 {
	return U64()
}

// Seed is a no-op. The underlying entropy cannot be seeded.
func (secureSource) Seed(_ uint64) {}

// Secure returns the process-wide cryptographically secure Source. Draws
// are serialized on an internal lock, so the source is safe for
// concurrent use.
func Secure() xrand.Source {
	return secureSource{}
}
