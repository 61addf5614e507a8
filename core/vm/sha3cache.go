// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
)

// sha3CacheSize bounds the number of distinct preimages this process
// remembers the digest of. SHA3 is run on arbitrary contract-supplied
// memory, so the cache is keyed on the preimage bytes themselves rather
// than an offset/length pair.
const sha3CacheSize = 4096

var (
	sha3CacheOnce sync.Once
	sha3Cache     *lru.Cache
)

// sha3Keccak returns Keccak256(data), consulting a small process-wide LRU
// cache first. Modeled on the teacher's TxCache: a bounded hashicorp/
// golang-lru cache guarding a hot, repeatedly-invoked hashing call.
func sha3Keccak(data []byte) Hash {
	sha3CacheOnce.Do(func() {
		c, err := lru.New(sha3CacheSize)
		if err != nil {
			panic(err) // only fails for a non-positive size, which is a constant here
		}
		sha3Cache = c
	})

	key := string(data)
	if v, ok := sha3Cache.Get(key); ok {
		return v.(Hash)
	}
	h := Hash(crypto.Keccak256Hash(data))
	sha3Cache.Add(key, h)
	return h
}
