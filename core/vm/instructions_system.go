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

// This file implements every environment opcode in spec §4.2 except the
// CREATE/CALL families (instructions_call.go): everything that needs the
// Handler but never suspends the frame. Grounded opcode-by-opcode on
// original_source/runtime/src/eval/system.rs.

func (rt *Runtime) evalSha3() envControl {
	off, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	size, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	data, err := rt.machine.memory.Get(off, size)
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return rt.pushWord(HashToWord(sha3Keccak(data)))
}

func (rt *Runtime) evalBalance(h Handler) envControl {
	addrW, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return rt.pushWord(h.Balance(WordToAddress(addrW)))
}

func (rt *Runtime) evalSelfBalance(h Handler) envControl {
	return rt.pushWord(h.Balance(rt.context.Address))
}

func (rt *Runtime) evalExtCodeSize(h Handler) envControl {
	addrW, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return rt.pushWord(h.CodeSize(WordToAddress(addrW)))
}

func (rt *Runtime) evalExtCodeHash(h Handler) envControl {
	addrW, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return rt.pushWord(HashToWord(h.CodeHash(WordToAddress(addrW))))
}

// evalExtCodeCopy implements the large-memory-copy semantics of spec §4.2:
// the destination region is filled with the target account's code,
// zero-padded past the code's length.
func (rt *Runtime) evalExtCodeCopy(h Handler) envControl {
	addrW, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	destOff, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	srcOff, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	length, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	code := h.Code(WordToAddress(addrW))
	if err := rt.machine.memory.CopyLarge(destOff, srcOff, length, code); err != nil {
		return ctrlFail(asExitReason(err))
	}
	return ctrlOK()
}

// evalReturnDataCopy is the one large-memory-copy opcode that is fatal, not
// zero-filling, when the requested range runs past the end of the source:
// spec §4.2, scenario 3 in §8 ("RETURNDATACOPY past the end of
// return_data_buffer is an ExitFatal, not a zero-fill").
func (rt *Runtime) evalReturnDataCopy() envControl {
	destOff, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	srcOff, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	length, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	buf := rt.returnDataBuffer
	end, overflow := addUint64(srcOff, length)
	if overflow || end > uint64(len(buf)) {
		return ctrlFail(ErrReturnDataOutOfBounds)
	}
	if err := rt.machine.memory.Set(destOff, buf[srcOff:end]); err != nil {
		return ctrlFail(asExitReason(err))
	}
	return ctrlOK()
}

func (rt *Runtime) evalBlockHash(h Handler) envControl {
	n, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return rt.pushWord(HashToWord(h.BlockHash(n)))
}

func (rt *Runtime) evalSLoad(h Handler) envControl {
	key, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return rt.pushWord(h.Storage(rt.context.Address, key))
}

func (rt *Runtime) evalSStore(h Handler) envControl {
	key, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	value, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return ctrlErr(h.SetStorage(rt.context.Address, key, value))
}

// evalLog implements LOG0..LOG4: pop (offset, size), then LogTopics(op)
// topics, and hand the assembled record to the host. Static-call
// rejection of LOG is the host's concern (PreValidate), not this core's.
func (rt *Runtime) evalLog(op OpCode, h Handler) envControl {
	off, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	size, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	n := op.LogTopics()
	topics := make([]Word, n)
	for i := 0; i < n; i++ {
		w, err := rt.machine.stack.pop()
		if err != nil {
			return ctrlFail(asExitReason(err))
		}
		topics[i] = w
	}
	data, err := rt.machine.memory.Get(off, size)
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	return ctrlErr(h.Log(rt.context.Address, topics, data))
}

// evalSelfDestruct implements SUICIDE/SELFDESTRUCT: transfer the frame's
// entire balance to the beneficiary, mark the account for deletion, and
// terminate successfully. Per spec §8 scenario 5, the full balance (not a
// zero or partial value) is what gets transferred.
func (rt *Runtime) evalSelfDestruct(h Handler) envControl {
	beneficiaryW, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	beneficiary := WordToAddress(beneficiaryW)

	balance := h.Balance(rt.context.Address)
	if !balance.IsZero() {
		if err := h.Transfer(Transfer{
			Source: rt.context.Address,
			Target: beneficiary,
			Value:  balance,
		}); err != nil {
			return ctrlErr(err)
		}
	}
	if err := h.MarkDelete(rt.context.Address); err != nil {
		return ctrlErr(err)
	}
	return ctrlFail(ExitSuicided)
}
