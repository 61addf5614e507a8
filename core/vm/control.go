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

// ctrlKind classifies the outcome of one environment-opcode evaluation.
type ctrlKind byte

const (
	ctrlContinue ctrlKind = iota
	ctrlExit
	ctrlCallInterrupt
	ctrlCreateInterrupt
)

// envControl is the result type every environment opcode handler returns:
// either it ran to completion (ctrlContinue), terminated the frame
// (ctrlExit), or suspended on a nested call/create (ctrlCall/CreateInterrupt).
type envControl struct {
	kind ctrlKind
	exit ExitReason

	callTrap   *CallInterrupt
	createTrap *CreateInterrupt

	// outOffset/outLen are valid only for ctrlCallInterrupt: the region in
	// the caller's memory that the eventual CallResolve.Resolve must write
	// the child's return data into.
	outOffset uint64
	outLen    uint64
}

func ctrlOK() envControl { return envControl{kind: ctrlContinue} }

func ctrlFail(reason ExitReason) envControl {
	return envControl{kind: ctrlExit, exit: reason}
}

// ctrlErr folds a plain error (as returned by most Handler methods) into an
// envControl, normalizing it to an ExitReason via asExitReason.
func ctrlErr(err error) envControl {
	if err == nil {
		return ctrlOK()
	}
	return ctrlFail(asExitReason(err))
}

// evalEnvironmentOp dispatches a single opcode the pure machine does not
// own to its implementation. It is the single entry point
// Runtime.dispatchEnvironment calls into.
func evalEnvironmentOp(rt *Runtime, op OpCode, h Handler) envControl {
	if op.IsLog() {
		return rt.evalLog(op, h)
	}

	switch op {
	case SHA3:
		return rt.evalSha3()
	case ADDRESS:
		return rt.pushAddress(rt.context.Address)
	case BALANCE:
		return rt.evalBalance(h)
	case ORIGIN:
		return rt.pushAddress(h.Origin())
	case CALLER:
		return rt.pushAddress(rt.context.Caller)
	case CALLVALUE:
		return rt.pushWord(rt.context.ApparentValue)
	case GASPRICE:
		return rt.pushWord(h.GasPrice())
	case EXTCODESIZE:
		return rt.evalExtCodeSize(h)
	case EXTCODEHASH:
		return rt.evalExtCodeHash(h)
	case EXTCODECOPY:
		return rt.evalExtCodeCopy(h)
	case RETURNDATASIZE:
		return rt.pushWord(lenWord(rt.returnDataBuffer))
	case RETURNDATACOPY:
		return rt.evalReturnDataCopy()
	case BLOCKHASH:
		return rt.evalBlockHash(h)
	case COINBASE:
		return rt.pushAddress(h.BlockCoinbase())
	case TIMESTAMP:
		return rt.pushWord(h.BlockTimestamp())
	case NUMBER:
		return rt.pushWord(h.BlockNumber())
	case DIFFICULTY:
		return rt.pushWord(h.BlockDifficulty())
	case GASLIMIT:
		return rt.pushWord(h.BlockGasLimit())
	case CHAINID:
		return rt.pushWord(h.ChainID())
	case SELFBALANCE:
		return rt.evalSelfBalance(h)
	case SLOAD:
		return rt.evalSLoad(h)
	case SSTORE:
		return rt.evalSStore(h)
	case GAS:
		return rt.pushWord(h.GasLeft())
	case CREATE:
		return rt.evalCreate(h, CreateSchemeDynamic)
	case CREATE2:
		return rt.evalCreate(h, CreateSchemeFixed)
	case CALL:
		return rt.evalCall(h, CallSchemeCall)
	case CALLCODE:
		return rt.evalCall(h, CallSchemeCallCode)
	case DELEGATECALL:
		return rt.evalCall(h, CallSchemeDelegateCall)
	case STATICCALL:
		return rt.evalCall(h, CallSchemeStaticCall)
	case SELFDESTRUCT:
		return rt.evalSelfDestruct(h)
	default:
		return ctrlFail(ErrInvalidOpcode)
	}
}

// pushWord pushes w and continues, folding a stack error into an exit.
func (rt *Runtime) pushWord(w Word) envControl {
	if err := rt.machine.stack.push(w); err != nil {
		return ctrlFail(asExitReason(err))
	}
	return ctrlOK()
}

func (rt *Runtime) pushAddress(a Address) envControl {
	return rt.pushWord(AddressToWord(a))
}

func lenWord(b []byte) Word {
	var w Word
	w.SetUint64(uint64(len(b)))
	return w
}
