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

import "sync"

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]Word, 0, 16)}
	},
}

// Stack is the EVM operand stack. Depth is always in [0, limit]; underflow
// and overflow are reported as ExitError rather than panicking, so callers
// can propagate them as the frame's terminal status.
type Stack struct {
	data  []Word
	limit int
}

// newstack borrows a Stack from the shared pool, bounded by limit.
func newstack(limit int) *Stack {
	s := stackPool.Get().(*Stack)
	s.data = s.data[:0]
	s.limit = limit
	return s
}

// returnStack releases a Stack back to the pool.
func returnStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

func (s *Stack) len() int { return len(s.data) }

// push appends a Word, failing with ErrStackOverflow if the limit would be
// exceeded.
func (s *Stack) push(w Word) error {
	if len(s.data) >= s.limit {
		return ErrStackOverflow
	}
	s.data = append(s.data, w)
	return nil
}

// pop removes and returns the top Word, the sum-type helper spec §9 calls
// for in place of the reference implementation's pop!/pop_u256! macros:
// callers get an explicit (value, error) pair instead of a panicking
// accessor.
func (s *Stack) pop() (Word, error) {
	n := len(s.data)
	if n == 0 {
		return Word{}, ErrStackUnderflow
	}
	w := s.data[n-1]
	s.data = s.data[:n-1]
	return w, nil
}

// popN pops n Words in top-first order (operand order used throughout
// spec §4.2: the first-popped value is the topmost).
func (s *Stack) popN(n int) ([]Word, error) {
	if len(s.data) < n {
		return nil, ErrStackUnderflow
	}
	out := make([]Word, n)
	for i := 0; i < n; i++ {
		w, err := s.pop()
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// popUint64 pops a Word and converts it to a native index, failing fatally
// (not recoverably) if it overflows — the "as_usize_or_fail!" pattern from
// the Rust reference (original_source/runtime/src/eval/system.rs).
func (s *Stack) popUint64() (uint64, error) {
	w, err := s.pop()
	if err != nil {
		return 0, err
	}
	return asUint64OrFatal(w)
}

func (s *Stack) peek() (*Word, error) {
	n := len(s.data)
	if n == 0 {
		return nil, ErrStackUnderflow
	}
	return &s.data[n-1], nil
}

// peekAt returns the Word n items from the top without popping (0 is top).
func (s *Stack) peekAt(n int) (*Word, error) {
	idx := len(s.data) - 1 - n
	if idx < 0 {
		return nil, ErrStackUnderflow
	}
	return &s.data[idx], nil
}

// swap exchanges the top element with the one n items below it.
func (s *Stack) swap(n int) error {
	top := len(s.data) - 1
	idx := top - n
	if idx < 0 {
		return ErrStackUnderflow
	}
	s.data[top], s.data[idx] = s.data[idx], s.data[top]
	return nil
}

// dup pushes a copy of the element n items from the top (1 is top).
func (s *Stack) dup(n int) error {
	idx := len(s.data) - n
	if idx < 0 {
		return ErrStackUnderflow
	}
	return s.push(s.data[idx])
}

// setTop overwrites the top-of-stack placeholder with a new value. Used by
// ResolveCall/ResolveCreate to replace the zero placeholder pushed at trap
// time (spec §4.3).
func (s *Stack) setTop(w Word) error {
	n := len(s.data)
	if n == 0 {
		return ErrStackUnderflow
	}
	s.data[n-1] = w
	return nil
}
