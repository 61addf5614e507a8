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

// Interrupt is an opaque, host-defined descriptor of a pending child
// call/create. The core never inspects its contents; it only carries it
// from the trapping opcode to the outer runner.
type Interrupt interface{}

// CallInterrupt is yielded when a CALL-family opcode needs the host to run
// a child frame the core cannot execute inline.
type CallInterrupt struct {
	Token Interrupt
}

// CreateInterrupt is yielded when CREATE/CREATE2 needs the host to run a
// child frame the core cannot execute inline.
type CreateInterrupt struct {
	Token Interrupt
}

// Handler is the abstract host: state access, balances, block info,
// logging, transfers, creation, and nested execution. Every frame-crossing
// side effect flows through exactly one Handler, passed in mutably per
// step (spec §5: "the handler is... the only channel for cross-frame
// effects").
type Handler interface {
	// --- Account / state ---

	Balance(addr Address) Word
	Code(addr Address) []byte
	CodeSize(addr Address) Word
	CodeHash(addr Address) Hash
	Storage(addr Address, key Word) Word
	SetStorage(addr Address, key, value Word) error
	Origin() Address
	MarkDelete(addr Address) error
	Transfer(t Transfer) error

	// --- Block / env ---

	ChainID() Word
	BlockCoinbase() Address
	BlockTimestamp() Word
	BlockNumber() Word
	BlockDifficulty() Word
	BlockGasLimit() Word
	BlockHash(n Word) Hash
	GasPrice() Word
	GasLeft() Word

	// --- Side effects ---

	Log(addr Address, topics []Word, data []byte) error

	// --- Nested execution ---

	// Create asks the host to run a child contract-creation frame. On an
	// immediate outcome, the returned CreateOutcome has Exit set and Trap
	// nil; on a suspended outcome, its Trap is non-nil.
	Create(addr Address, transfer *Transfer, code []byte, gas *Word, ctx Context) (CreateOutcome, error)
	// Call asks the host to run a child call frame, analogous to Create.
	Call(to Address, transfer *Transfer, input []byte, gas *Word, isStatic bool, ctx Context) (CallOutcome, error)
	// CreateAddress computes (or allocates) the address for a new
	// contract under the given scheme.
	CreateAddress(caller Address, scheme CreateAddressScheme) (Address, error)

	// --- Validation ---

	// PreValidate is consulted before every opcode with the current
	// opcode and a read-only stack view; it is the hook by which the host
	// enforces gas, static-call restrictions, and stack-depth policy.
	PreValidate(ctx Context, op OpCode, stack StackView) error

	// --- Policy ---

	// IsRecoverable reports whether an error from a host call should be
	// absorbed (push 0, continue) versus terminate the frame.
	IsRecoverable(err error) bool
}

// StackView is the read-only stack surface handed to PreValidate.
type StackView interface {
	Len() int
	PeekAt(n int) (Word, bool)
}

// CreateOutcome is either an immediate exit or a suspension. ReturnData
// carries the child's output when creation reverted (Exit is ExitRevert),
// mirroring the data a resumed ResolveCreate.Resolve would have received.
type CreateOutcome struct {
	Exit       ExitReason // valid iff Trap == nil
	Address    Address    // valid iff Exit succeeded
	ReturnData []byte
	Trap       *CreateInterrupt
}

// CallOutcome is either an immediate exit (with return data) or a
// suspension.
type CallOutcome struct {
	Exit       ExitReason // valid iff Trap == nil
	ReturnData []byte
	Trap       *CallInterrupt
}

// stackView adapts *Stack to the read-only StackView interface handed to
// Handler.PreValidate, so pre-validation can inspect operands without
// being able to mutate them.
type stackView struct{ s *Stack }

func (v stackView) Len() int { return v.s.len() }

func (v stackView) PeekAt(n int) (Word, bool) {
	w, err := v.s.peekAt(n)
	if err != nil {
		return Word{}, false
	}
	return *w, true
}
