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

import "github.com/holiman/uint256"

// This file implements CREATE/CREATE2 (spec §4.2.1) and the CALL family
// (spec §4.2.2): the two opcode groups that may suspend the frame instead
// of completing inline. Grounded on original_source/runtime/src/eval/
// system.rs (create/call argument layout) and original_source/runtime/src/
// lib.rs (the Trap/Resolve handshake).

var (
	gasDivisorNumerator = uint256.NewInt(63)
	gasDivisorDenom     = uint256.NewInt(64)
)

// evalCreate implements CREATE (scheme == CreateSchemeDynamic) and CREATE2
// (scheme == CreateSchemeFixed). The placeholder 0 is pushed after
// Handler.CreateAddress and before Handler.Create is consulted, so a
// suspended creation's eventual ResolveCreate
// can overwrite it in place; an immediate outcome goes through the very
// same ResolveCreate.Resolve path so the two cases can never drift apart.
func (rt *Runtime) evalCreate(h Handler, scheme CreateScheme) envControl {
	value, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	offset, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	length, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	var salt Word
	if scheme == CreateSchemeFixed {
		salt, err = rt.machine.stack.pop()
		if err != nil {
			return ctrlFail(asExitReason(err))
		}
	}

	code, err := rt.machine.memory.Get(offset, length)
	if err != nil {
		return ctrlFail(asExitReason(err))
	}

	addrScheme := CreateAddressScheme{Scheme: scheme}
	if scheme == CreateSchemeFixed {
		addrScheme.Fixed = create2Address(rt.context.Address, salt, code)
	}
	addr, err := h.CreateAddress(rt.context.Address, addrScheme)
	if err != nil {
		return rt.pushZeroOrFail(h, err)
	}

	if err := rt.machine.stack.push(Word{}); err != nil {
		return ctrlFail(asExitReason(err))
	}

	var transfer *Transfer
	if !value.IsZero() {
		transfer = &Transfer{Source: rt.context.Address, Target: addr, Value: value}
	}
	childCtx := Context{Address: addr, Caller: rt.context.Address, ApparentValue: value}

	gas := h.GasLeft()
	outcome, err := h.Create(addr, transfer, code, &gas, childCtx)
	if err != nil {
		return rt.leaveZeroOrFail(h, err)
	}
	if outcome.Trap != nil {
		createInterruptCounter.Inc(1)
		return envControl{kind: ctrlCreateInterrupt, createTrap: outcome.Trap}
	}

	// A reverted creation is a failure here: the placeholder stays zero and
	// the child's output becomes the return data.
	_, reverted := outcome.Exit.(ExitRevert)
	resolve := &ResolveCreate{rt: rt}
	if err := resolve.Resolve(outcome.Exit.IsSucceed() && !reverted, outcome.Address, outcome.ReturnData); err != nil {
		return ctrlFail(asExitReason(err))
	}
	return ctrlOK()
}

// create2Address computes the deterministic CREATE2 address: the low 20
// bytes of Keccak256(0xff ++ caller ++ salt ++ Keccak256(code)). Pure and
// host-independent, so this core derives it directly rather than asking
// the Handler.
func create2Address(caller Address, salt Word, code []byte) Address {
	codeHash := sha3Keccak(code)
	saltBytes := salt.Bytes32()

	buf := make([]byte, 0, 1+20+32+32)
	buf = append(buf, 0xff)
	buf = append(buf, caller.Bytes()...)
	buf = append(buf, saltBytes[:]...)
	buf = append(buf, codeHash.Bytes()...)

	digest := sha3Keccak(buf)
	var addr Address
	copy(addr[:], digest[12:])
	return addr
}

// evalCall implements CALL, CALLCODE, DELEGATECALL and STATICCALL. The four
// variants differ only in their stack argument layout and how the child
// Context/Transfer are derived from the current frame (spec §4.2.2).
func (rt *Runtime) evalCall(h Handler, scheme CallScheme) envControl {
	gasW, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	toW, err := rt.machine.stack.pop()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	to := WordToAddress(toW)

	var value Word
	if scheme == CallSchemeCall || scheme == CallSchemeCallCode {
		value, err = rt.machine.stack.pop()
		if err != nil {
			return ctrlFail(asExitReason(err))
		}
	}

	argsOffset, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	argsLength, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	retOffset, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}
	retLength, err := rt.machine.stack.popUint64()
	if err != nil {
		return ctrlFail(asExitReason(err))
	}

	input, err := rt.machine.memory.Get(argsOffset, argsLength)
	if err != nil {
		return ctrlFail(asExitReason(err))
	}

	if err := rt.machine.stack.push(Word{}); err != nil {
		return ctrlFail(asExitReason(err))
	}

	gas, err := rt.forwardCallGas(h, gasW, !value.IsZero())
	if err != nil {
		return ctrlFail(asExitReason(err))
	}

	var ctx Context
	var transfer *Transfer
	switch scheme {
	case CallSchemeCall:
		ctx = Context{Address: to, Caller: rt.context.Address, ApparentValue: value}
		if !value.IsZero() {
			transfer = &Transfer{Source: rt.context.Address, Target: to, Value: value}
		}
	case CallSchemeCallCode:
		// Executes the target's code against the current contract's own
		// storage and balance; no real transfer takes place since source
		// and target are the same account.
		ctx = Context{Address: rt.context.Address, Caller: rt.context.Address, ApparentValue: value}
	case CallSchemeDelegateCall:
		// Preserves the caller and apparent value of the current frame
		// entirely; only the code being run changes.
		ctx = Context{Address: rt.context.Address, Caller: rt.context.Caller, ApparentValue: rt.context.ApparentValue}
	case CallSchemeStaticCall:
		ctx = Context{Address: to, Caller: rt.context.Address}
	}

	outcome, err := h.Call(to, transfer, input, &gas, scheme == CallSchemeStaticCall, ctx)
	if err != nil {
		return rt.leaveZeroOrFail(h, err)
	}
	if outcome.Trap != nil {
		callInterruptCounter.Inc(1)
		return envControl{
			kind:      ctrlCallInterrupt,
			callTrap:  outcome.Trap,
			outOffset: retOffset,
			outLen:    retLength,
		}
	}

	resolve := &ResolveCall{rt: rt, outOffset: retOffset, outLen: retLength}
	if err := resolve.Resolve(outcome.Exit.IsSucceed(), outcome.ReturnData); err != nil {
		return ctrlFail(asExitReason(err))
	}
	return ctrlOK()
}

// forwardCallGas decides how much gas to forward to a child call, per the
// Config's clamp policy (spec §6, resolved Open Question in DESIGN.md):
// with CallL64AfterGas, the request is silently clamped to floor(63/64) of
// what's left; otherwise a request exceeding what's left either errors
// (ErrOnCallWithMoreGas) or is silently clamped down to all of it. A
// value-carrying CALL/CALLCODE additionally adds the configured stipend.
func (rt *Runtime) forwardCallGas(h Handler, requested Word, hasValue bool) (Word, error) {
	return forwardCallGasPure(rt.config, h.GasLeft(), requested, hasValue)
}

// forwardCallGasPure is the policy (rt *Runtime).forwardCallGas delegates
// to, split out so it can be driven with arbitrary (available, requested)
// pairs directly, without a Handler or Runtime in the loop.
func forwardCallGasPure(cfg *Config, available, requested Word, hasValue bool) (Word, error) {
	var gas Word
	switch {
	case cfg.CallL64AfterGas:
		var capped Word
		capped.Mul(&available, gasDivisorNumerator)
		capped.Div(&capped, gasDivisorDenom)
		if !requested.IsUint64() || requested.Cmp(&capped) > 0 {
			gas = capped
		} else {
			gas = requested
		}
	case requested.Cmp(&available) > 0:
		if cfg.ErrOnCallWithMoreGas {
			return Word{}, ErrOutOfGas
		}
		gas = available
	default:
		gas = requested
	}

	if hasValue {
		var stipend Word
		stipend.SetUint64(cfg.CallStipend)
		gas.Add(&gas, &stipend)
	}
	return gas, nil
}

// forwardCallGasFor is a uint64-friendly wrapper over forwardCallGasPure for
// property tests that draw plain uint64 gas amounts.
func forwardCallGasFor(cfg *Config, available, requested uint64, hasValue bool) (Word, error) {
	var a, r Word
	a.SetUint64(available)
	r.SetUint64(requested)
	return forwardCallGasPure(cfg, a, r, hasValue)
}

// pushZeroOrFail handles a host error raised before the call/create
// placeholder has been pushed (CreateAddress's failure path): per spec §7,
// a recoverable error pushes a zero and continues, a non-recoverable one
// terminates the frame.
func (rt *Runtime) pushZeroOrFail(h Handler, err error) envControl {
	if !h.IsRecoverable(err) {
		return ctrlFail(asExitReason(err))
	}
	if pushErr := rt.machine.stack.push(Word{}); pushErr != nil {
		return ctrlFail(asExitReason(pushErr))
	}
	return ctrlOK()
}

// leaveZeroOrFail handles a host error raised after the placeholder has
// already been pushed (Create/Call's own failure path): the placeholder is
// already zero, so a recoverable error just continues in place; a
// non-recoverable one terminates the frame.
func (rt *Runtime) leaveZeroOrFail(h Handler, err error) envControl {
	if !h.IsRecoverable(err) {
		return ctrlFail(asExitReason(err))
	}
	return ctrlOK()
}
