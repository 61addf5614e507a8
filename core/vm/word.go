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
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Word is a 256-bit stack slot. It has two equivalent views: the integer
// view (arithmetic, lengths, offsets) and the byte view (opaque data,
// addresses, hashes). Conversion between the two is bijective.
type Word = uint256.Int

// Address is a 160-bit account identifier.
type Address = common.Address

// Hash is a 32-byte value, used for code hashes, block hashes and digests.
type Hash = common.Hash

// AddressToWord left-zero-pads an Address into a 32-byte Word.
func AddressToWord(a Address) Word {
	var w Word
	w.SetBytes(a.Bytes())
	return w
}

// WordToAddress extracts the low 20 bytes of a Word as an Address.
func WordToAddress(w Word) Address {
	var a Address
	b := w.Bytes32()
	copy(a[:], b[12:])
	return a
}

// HashToWord interprets a 32-byte hash as a big-endian Word.
func HashToWord(h Hash) Word {
	var w Word
	w.SetBytes(h.Bytes())
	return w
}

// WordToHash renders a Word in its 32-byte big-endian byte view.
func WordToHash(w Word) Hash {
	return Hash(w.Bytes32())
}

// asUint64OrFatal converts a length/offset Word to a native index, failing
// with ErrOffsetOverflow when the value does not fit — per spec §7, operand
// decoding failures that overflow a native index are fatal, not recoverable.
func asUint64OrFatal(w Word) (uint64, error) {
	if !w.IsUint64() {
		return 0, ErrOffsetOverflow
	}
	return w.Uint64(), nil
}
