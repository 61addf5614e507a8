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

import "testing"

func wordOf(n uint64) Word {
	var w Word
	w.SetUint64(n)
	return w
}

func TestStackPushPop(t *testing.T) {
	s := newstack(16)
	defer returnStack(s)

	if err := s.push(wordOf(1)); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := s.push(wordOf(2)); err != nil {
		t.Fatalf("push: %v", err)
	}
	if s.len() != 2 {
		t.Fatalf("len = %d, want 2", s.len())
	}

	top, err := s.pop()
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if top.Uint64() != 2 {
		t.Fatalf("pop = %d, want 2", top.Uint64())
	}
}

func TestStackUnderflow(t *testing.T) {
	s := newstack(16)
	defer returnStack(s)

	if _, err := s.pop(); err != ErrStackUnderflow {
		t.Fatalf("pop on empty stack = %v, want ErrStackUnderflow", err)
	}
}

func TestStackOverflow(t *testing.T) {
	s := newstack(2)
	defer returnStack(s)

	if err := s.push(wordOf(1)); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := s.push(wordOf(2)); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := s.push(wordOf(3)); err != ErrStackOverflow {
		t.Fatalf("push past limit = %v, want ErrStackOverflow", err)
	}
}

func TestStackPopNOrder(t *testing.T) {
	s := newstack(16)
	defer returnStack(s)

	s.push(wordOf(1))
	s.push(wordOf(2))
	s.push(wordOf(3))

	ws, err := s.popN(3)
	if err != nil {
		t.Fatalf("popN: %v", err)
	}
	if ws[0].Uint64() != 3 || ws[1].Uint64() != 2 || ws[2].Uint64() != 1 {
		t.Fatalf("popN order = %v, want [3 2 1]", ws)
	}
}

func TestStackDupSwap(t *testing.T) {
	s := newstack(16)
	defer returnStack(s)

	s.push(wordOf(10))
	s.push(wordOf(20))

	if err := s.dup(2); err != nil {
		t.Fatalf("dup: %v", err)
	}
	top, _ := s.peek()
	if top.Uint64() != 10 {
		t.Fatalf("dup(2) top = %d, want 10", top.Uint64())
	}

	if err := s.swap(1); err != nil {
		t.Fatalf("swap: %v", err)
	}
	top, _ = s.peek()
	if top.Uint64() != 20 {
		t.Fatalf("swap(1) top = %d, want 20", top.Uint64())
	}
}

func TestStackSetTop(t *testing.T) {
	s := newstack(16)
	defer returnStack(s)

	s.push(wordOf(1))
	if err := s.setTop(wordOf(99)); err != nil {
		t.Fatalf("setTop: %v", err)
	}
	top, _ := s.peek()
	if top.Uint64() != 99 {
		t.Fatalf("setTop result = %d, want 99", top.Uint64())
	}
}

func TestStackSetTopUnderflow(t *testing.T) {
	s := newstack(16)
	defer returnStack(s)

	if err := s.setTop(wordOf(1)); err != ErrStackUnderflow {
		t.Fatalf("setTop on empty = %v, want ErrStackUnderflow", err)
	}
}

func TestStackPeekAt(t *testing.T) {
	s := newstack(16)
	defer returnStack(s)

	s.push(wordOf(1))
	s.push(wordOf(2))
	s.push(wordOf(3))

	w, err := s.peekAt(0)
	if err != nil || w.Uint64() != 3 {
		t.Fatalf("peekAt(0) = %v, %v, want 3", w, err)
	}
	w, err = s.peekAt(2)
	if err != nil || w.Uint64() != 1 {
		t.Fatalf("peekAt(2) = %v, %v, want 1", w, err)
	}
	if _, err := s.peekAt(3); err != ErrStackUnderflow {
		t.Fatalf("peekAt(3) = %v, want ErrStackUnderflow", err)
	}
}
