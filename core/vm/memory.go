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

import "github.com/ethereum/go-ethereum/common/math"

// Memory is the EVM's bounded linear memory, expanded implicitly in words
// of 32 bytes as opcodes touch new offsets.
type Memory struct {
	store []byte
	limit uint64
}

// NewMemory creates an empty Memory bounded by limit bytes.
func NewMemory(limit uint64) *Memory {
	return &Memory{limit: limit}
}

// Len returns the current size of memory in bytes.
func (m *Memory) Len() int { return len(m.store) }

// resize grows memory to at least size bytes, zero-filling the new region.
// The new length is rounded up to a whole number of 32-byte words, the
// same unit MSIZE reports in and the teacher's own gas accounting prices
// in (math.SafeMul(toWordSize(memSize), 32)). Growing past the configured
// limit is a fatal memory-expansion failure.
func (m *Memory) resize(size uint64) error {
	if size <= uint64(len(m.store)) {
		return nil
	}
	rounded := toWordSize(size) * 32
	if rounded > m.limit {
		return ErrMemoryExpansionFailure
	}
	grown := make([]byte, rounded)
	copy(grown, m.store)
	m.store = grown
	return nil
}

// Get returns a copy of the size bytes starting at offset, expanding
// memory as needed.
func (m *Memory) Get(offset, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	end, overflow := addUint64(offset, size)
	if overflow {
		return nil, ErrOffsetOverflow
	}
	if err := m.resize(end); err != nil {
		return nil, err
	}
	out := make([]byte, size)
	copy(out, m.store[offset:end])
	return out, nil
}

// Set writes data into memory at offset, expanding memory as needed. It
// writes exactly len(data) bytes and zero-fills nothing beyond them
// (CopyLarge provides zero-fill semantics).
func (m *Memory) Set(offset uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	end, overflow := addUint64(offset, uint64(len(data)))
	if overflow {
		return ErrOffsetOverflow
	}
	if err := m.resize(end); err != nil {
		return err
	}
	copy(m.store[offset:end], data)
	return nil
}

// CopyLarge implements the "large memory copy" semantics shared by
// EXTCODECOPY and RETURNDATACOPY (spec §4.2): the destination region is
// filled with source bytes where they overlap the source, and zero-filled
// for the tail beyond the source's length. Memory is expanded to
// destOffset+length first; expansion failure is fatal.
func (m *Memory) CopyLarge(destOffset, srcOffset, length uint64, src []byte) error {
	if length == 0 {
		return nil
	}
	end, overflow := addUint64(destOffset, length)
	if overflow {
		return ErrOffsetOverflow
	}
	if err := m.resize(end); err != nil {
		return err
	}

	dst := m.store[destOffset:end]
	for i := range dst {
		dst[i] = 0
	}
	if srcOffset >= uint64(len(src)) {
		return nil
	}
	available := uint64(len(src)) - srcOffset
	n := length
	if available < n {
		n = available
	}
	copy(dst[:n], src[srcOffset:srcOffset+n])
	return nil
}

func addUint64(a, b uint64) (uint64, bool) {
	sum, overflow := math.SafeAdd(a, b)
	return sum, overflow
}

// toWordSize rounds size up to the next multiple of 32, matching the
// teacher's gas-accounting helper of the same name (math.SafeMul(toWordSize(
// memSize), 32)). resize uses it to grow the backing store in whole words,
// since MSIZE and the host's own memory-expansion gas pricing both work in
// word units; this core does not itself price the expansion.
func toWordSize(size uint64) uint64 {
	if size > (1<<64-1)-31 {
		return (1<<64 - 1) / 32
	}
	return (size + 31) / 32
}
