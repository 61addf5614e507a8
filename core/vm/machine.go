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

// machine is the pure arithmetic/stack/memory/control engine: it owns the
// program counter, stack, memory and code, and executes every opcode that
// does not need the Handler. It is the "collaborator" spec.md §1 treats as
// out of scope for gas-schedule purposes, but this core still needs a
// concrete implementation to be runnable end to end (no third-party Go
// library exists in this corpus that provides pure EVM opcode execution as
// an importable dependency — see DESIGN.md).
type machine struct {
	pc         uint64
	code       []byte
	input      []byte
	stack      *Stack
	memory     *Memory
	gas        *uint64 // not assigned by NewRuntime and not read by any opcode; GAS is answered by Handler.GasLeft
	lastOutput []byte  // set by RETURN/REVERT; consumed by the Runtime to build the final result
}

// outcomeKind classifies the result of one machine.step call.
type outcomeKind byte

const (
	outcomeContinue outcomeKind = iota
	outcomeExit
	outcomeTrap
)

// stepOutcome is the pure machine's sum-type result, the Go encoding of
// the Rust reference's `Result<(), Capture<ExitReason, OpCode>>` (spec §9:
// "encode them as a small helper returning a sum {Ok(value) | Err(exit)}").
type stepOutcome struct {
	kind outcomeKind
	exit ExitReason
	trap OpCode
}

func (m *machine) getOp() OpCode {
	if m.pc >= uint64(len(m.code)) {
		return STOP
	}
	return OpCode(m.code[m.pc])
}

// step executes exactly one opcode. Opcodes the inner machine does not own
// (every environment opcode in spec §4.2) are reported via outcomeTrap
// without consuming the program counter; the caller dispatches to the
// environment opcode table and then advances pc itself.
func (m *machine) step() stepOutcome {
	if m.pc >= uint64(len(m.code)) {
		return stepOutcome{kind: outcomeExit, exit: ExitStopped}
	}

	op := OpCode(m.code[m.pc])

	if op.IsPush() {
		return m.doPush(op)
	}

	switch {
	case op.IsDup():
		return m.doSimple(func() error { return m.stack.dup(int(op-DUP1) + 1) })
	case op.IsSwap():
		return m.doSimple(func() error { return m.stack.swap(int(op-SWAP1) + 1) })
	}

	switch op {
	case STOP:
		return stepOutcome{kind: outcomeExit, exit: ExitStopped}
	case POP:
		return m.doSimple(func() error { _, err := m.stack.pop(); return err })
	case ADD, MUL, SUB, DIV, SDIV, MOD, SMOD, EXP, SIGNEXTEND, ADDMOD, MULMOD:
		return m.doArith(op)
	case LT, GT, SLT, SGT, EQ, ISZERO, AND, OR, XOR, NOT, BYTE, SHL, SHR, SAR:
		return m.doBitwise(op)
	case JUMP:
		return m.doJump(false)
	case JUMPI:
		return m.doJump(true)
	case JUMPDEST:
		return m.next()
	case PC:
		return m.doSimple(func() error {
			var w Word
			w.SetUint64(m.pc)
			return m.stack.push(w)
		})
	case MSIZE:
		return m.doSimple(func() error {
			var w Word
			w.SetUint64(uint64(m.memory.Len()))
			return m.stack.push(w)
		})
	case MLOAD:
		return m.doMload()
	case MSTORE:
		return m.doMstore(false)
	case MSTORE8:
		return m.doMstore(true)
	case CALLDATALOAD:
		return m.doDataLoad(m.input)
	case CALLDATASIZE:
		return m.doDataSize(m.input)
	case CALLDATACOPY:
		return m.doDataCopy(m.input)
	case CODESIZE:
		return m.doDataSize(m.code)
	case CODECOPY:
		return m.doDataCopy(m.code)
	case RETURN:
		return m.doEnd(ExitReturned)
	case REVERT:
		return m.doEnd(ExitRevert{})
	case INVALID:
		return stepOutcome{kind: outcomeExit, exit: ErrInvalidOpcode}
	default:
		// Not owned by the pure machine: hand off to the environment
		// opcode set without advancing pc (spec §4.1 step 3).
		return stepOutcome{kind: outcomeTrap, trap: op}
	}
}

// next moves past the current single-byte opcode with no other effect.
// Opcodes that reposition pc themselves (PUSH's immediate data, a taken
// JUMP/JUMPI) must not call next and instead leave pc exactly where
// execution should resume.
func (m *machine) next() stepOutcome {
	m.pc++
	return stepOutcome{kind: outcomeContinue}
}

// doSimple runs fn and folds its error into a stepOutcome.
func (m *machine) doSimple(fn func() error) stepOutcome {
	if err := fn(); err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	return m.next()
}

func (m *machine) doPush(op OpCode) stepOutcome {
	n := op.PushSize()
	start := m.pc + 1
	end := start + uint64(n)
	var buf [32]byte
	if n > 0 {
		if end > uint64(len(m.code)) {
			end = uint64(len(m.code))
		}
		copy(buf[32-n:], m.code[start:end])
	}
	var w Word
	w.SetBytes(buf[:])
	if err := m.stack.push(w); err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	// start already accounts for the opcode byte itself; landing here
	// skips both it and its n immediate bytes in one move.
	m.pc = start + uint64(n)
	return stepOutcome{kind: outcomeContinue}
}

func (m *machine) doJump(conditional bool) stepOutcome {
	dest, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	if conditional {
		cond, err := m.stack.pop()
		if err != nil {
			return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
		}
		if cond.IsZero() {
			return m.next()
		}
	}
	target, err := asUint64OrFatal(dest)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	if target >= uint64(len(m.code)) || OpCode(m.code[target]) != JUMPDEST {
		return stepOutcome{kind: outcomeExit, exit: ErrInvalidJump}
	}
	m.pc = target
	return stepOutcome{kind: outcomeContinue}
}

func (m *machine) doMload() stepOutcome {
	offW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	off, err := asUint64OrFatal(offW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	data, err := m.memory.Get(off, 32)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	var w Word
	w.SetBytes(data)
	if err := m.stack.push(w); err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	return m.next()
}

func (m *machine) doMstore(single bool) stepOutcome {
	offW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	val, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	off, err := asUint64OrFatal(offW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	var data []byte
	if single {
		data = []byte{byte(val.Uint64())}
	} else {
		b := val.Bytes32()
		data = b[:]
	}
	if err := m.memory.Set(off, data); err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	return m.next()
}

func (m *machine) doDataLoad(src []byte) stepOutcome {
	offW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	off, err := asUint64OrFatal(offW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	var buf [32]byte
	if off < uint64(len(src)) {
		copy(buf[:], src[off:])
	}
	var w Word
	w.SetBytes(buf[:])
	if err := m.stack.push(w); err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	return m.next()
}

func (m *machine) doDataSize(src []byte) stepOutcome {
	return m.doSimple(func() error {
		var w Word
		w.SetUint64(uint64(len(src)))
		return m.stack.push(w)
	})
}

func (m *machine) doDataCopy(src []byte) stepOutcome {
	destOffW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	srcOffW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	lenW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	destOff, err := asUint64OrFatal(destOffW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	srcOff, err := asUint64OrFatal(srcOffW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	length, err := asUint64OrFatal(lenW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	if err := m.memory.CopyLarge(destOff, srcOff, length, src); err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	return m.next()
}

func (m *machine) doEnd(exit ExitReason) stepOutcome {
	offW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	lenW, err := m.stack.pop()
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	off, err := asUint64OrFatal(offW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	length, err := asUint64OrFatal(lenW)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	data, err := m.memory.Get(off, length)
	if err != nil {
		return stepOutcome{kind: outcomeExit, exit: asExitReason(err)}
	}
	m.lastOutput = data
	return stepOutcome{kind: outcomeExit, exit: exit}
}
