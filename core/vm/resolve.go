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

import "errors"

// ErrAlreadyResolved is returned when a ResolveCall/ResolveCreate handle is
// used a second time. Spec §4.3: "Exactly one resolve handle exists per
// suspension; it must be consumed exactly once."
var ErrAlreadyResolved = errors.New("resolve handle already consumed")

// ResolveCreate is the move-only handle the outer runner uses to inject a
// suspended CREATE/CREATE2's outcome back into the frame that yielded it.
// It must not outlive the Runtime it was produced by.
type ResolveCreate struct {
	rt       *Runtime
	consumed bool
}

// Resolve completes the suspended CREATE/CREATE2: on success, it replaces
// the top-of-stack placeholder with the created address; on failure, it
// leaves the placeholder at zero. In both cases return_data_buffer is
// updated per the §4.3/§9 contract: cleared on success, set to the child's
// output on a reverted creation.
func (r *ResolveCreate) Resolve(success bool, address Address, returnData []byte) error {
	if r.consumed {
		return ErrAlreadyResolved
	}
	r.consumed = true

	if success {
		r.rt.returnDataBuffer = nil
		return r.rt.machine.stack.setTop(AddressToWord(address))
	}
	r.rt.returnDataBuffer = returnData
	return r.rt.machine.stack.setTop(Word{})
}

// Drop resolves with a generic failure, per §4.3: "Dropping a resolve
// handle without resolving is equivalent to resolving with a generic
// failure." Callers that abandon a ResolveCreate must call Drop instead of
// letting it go out of scope silently, since Go has no linear-type
// enforcement for this.
func (r *ResolveCreate) Drop() error {
	return r.Resolve(false, Address{}, nil)
}

// ResolveCall is the move-only handle for a suspended CALL-family opcode.
type ResolveCall struct {
	rt         *Runtime
	outOffset  uint64
	outLen     uint64
	consumed   bool
}

// Resolve completes the suspended call: updates return_data_buffer, writes
// up to outLen bytes of returnData into the caller's output region
// starting at outOffset, and replaces the top-of-stack placeholder with 1
// on success or 0 on failure.
func (r *ResolveCall) Resolve(success bool, returnData []byte) error {
	if r.consumed {
		return ErrAlreadyResolved
	}
	r.consumed = true

	r.rt.returnDataBuffer = returnData

	// CopyLarge already implements "write min(len(returnData), outLen)
	// bytes, zero-fill the rest" when length == outLen.
	writeErr := r.rt.machine.memory.CopyLarge(r.outOffset, 0, r.outLen, returnData)

	if !success || writeErr != nil {
		return r.rt.machine.stack.setTop(Word{})
	}
	var one Word
	one.SetOne()
	return r.rt.machine.stack.setTop(one)
}

// Drop resolves with a generic failure, per §4.3.
func (r *ResolveCall) Drop() error {
	return r.Resolve(false, nil)
}
