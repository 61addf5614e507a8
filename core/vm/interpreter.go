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

// Package vm implements the system-level execution core of an EVM
// interpreter: dispatch, the environment opcode set, and the
// interrupt/resolve suspension protocol used to virtualize nested calls
// and creates without recursing the host's call stack.
package vm

import "github.com/ethereum/go-ethereum/log"

// Capture is the result of Step/Run: either the frame reached a terminal
// ExitReason, or it suspended on a nested call/create and handed back a
// Resolve handle for the outer runner to complete later. At most one of
// (Exit, CallResolve, CreateResolve) is populated; none is when Step made
// progress without terminating or suspending.
type Capture struct {
	Exit ExitReason

	CallTrap    *CallInterrupt
	CallResolve *ResolveCall

	CreateTrap    *CreateInterrupt
	CreateResolve *ResolveCreate
}

// Trapped reports whether this Capture is a suspension rather than a
// terminal exit.
func (c Capture) Trapped() bool {
	return c.CallResolve != nil || c.CreateResolve != nil
}

// Runtime drives one contract frame: its machine, context, config, and the
// return-data buffer left by the most recently completed nested call.
// Construction and destruction never touch host state (spec §3 Lifecycle).
type Runtime struct {
	machine *machine

	status ExitReason // nil while running

	returnDataBuffer []byte
	context          Context
	config           *Config
}

// NewRuntime constructs a Runtime for one frame of code, ready to be driven
// by repeated Step/Run calls against a Handler.
func NewRuntime(code, input []byte, context Context, config *Config) *Runtime {
	return &Runtime{
		machine: &machine{
			code:   code,
			input:  input,
			stack:  newstack(config.StackLimit),
			memory: NewMemory(config.MemoryLimit),
		},
		context: context,
		config:  config,
	}
}

// Close releases pooled resources (the stack). Callers must call Close
// exactly once after a Runtime reaches a terminal exit or is abandoned.
func (rt *Runtime) Close() {
	if rt.machine != nil && rt.machine.stack != nil {
		returnStack(rt.machine.stack)
		rt.machine.stack = nil
	}
}

// Context returns the frame's immutable environmental constants.
func (rt *Runtime) Context() Context { return rt.context }

// ReturnData returns the raw output bytes of the most recently completed
// nested call/create, as exposed to RETURNDATASIZE/RETURNDATACOPY.
func (rt *Runtime) ReturnData() []byte { return rt.returnDataBuffer }

// Output returns the bytes accumulated by a RETURN/REVERT, valid once the
// Runtime has reached a terminal exit with that shape.
func (rt *Runtime) Output() []byte { return rt.machine.lastOutput }

// Status returns the frame's terminal ExitReason, or nil if still running.
func (rt *Runtime) Status() ExitReason { return rt.status }

// Step advances the frame by exactly one opcode. It returns a Capture
// whose Exit field is set on termination, or whose CallResolve/
// CreateResolve field is set when a nested CREATE/CALL was requested.
//
// Per spec §4.1's per-step procedure:
//  1. A frame already terminated re-emits its sticky status with no
//     further side effects.
//  2. Pre-validation — the handler inspects (context, opcode, stack view);
//     a failure becomes the frame's terminal status.
//  3. The inner machine either completes the opcode, terminates the
//     frame, or hands off an environment opcode it does not own.
func (rt *Runtime) Step(h Handler) Capture {
	if rt.status != nil {
		return Capture{Exit: rt.status}
	}

	op := rt.machine.getOp()
	if err := h.PreValidate(rt.context, op, stackView{rt.machine.stack}); err != nil {
		rt.fail(asExitReason(err))
		return Capture{Exit: rt.status}
	}

	out := rt.machine.step()
	switch out.kind {
	case outcomeContinue:
		return Capture{}
	case outcomeExit:
		rt.fail(out.exit)
		return Capture{Exit: out.exit}
	case outcomeTrap:
		return rt.dispatchEnvironment(out.trap, h)
	default:
		panic("unreachable machine step outcome")
	}
}

// Run repeats Step until it yields a terminal exit or a trap, returning
// that outcome.
func (rt *Runtime) Run(h Handler) Capture {
	for {
		cap := rt.Step(h)
		if cap.Exit != nil || cap.Trapped() {
			return cap
		}
	}
}

// dispatchEnvironment routes a trapped opcode to its environment-opcode
// implementation and folds the result into a Capture. A fresh suspension's
// operands are already popped and its placeholder already pushed by the
// time evalEnvironmentOp returns, so the frame is logically positioned
// just after the trapping opcode (spec §4.3: "suspended at the precise
// point after the placeholder push"); pc advances here for every outcome
// except ctrlExit, so that once the resolve handle is consumed the next
// Step resumes at the following opcode instead of re-entering CALL/CREATE.
func (rt *Runtime) dispatchEnvironment(op OpCode, h Handler) Capture {
	ctrl := evalEnvironmentOp(rt, op, h)

	switch ctrl.kind {
	case ctrlContinue:
		rt.machine.pc++
		return Capture{}
	case ctrlExit:
		rt.fail(ctrl.exit)
		return Capture{Exit: ctrl.exit}
	case ctrlCallInterrupt:
		rt.machine.pc++
		return Capture{
			CallTrap: ctrl.callTrap,
			CallResolve: &ResolveCall{
				rt:        rt,
				outOffset: ctrl.outOffset,
				outLen:    ctrl.outLen,
			},
		}
	case ctrlCreateInterrupt:
		rt.machine.pc++
		return Capture{
			CreateTrap:    ctrl.createTrap,
			CreateResolve: &ResolveCreate{rt: rt},
		}
	default:
		panic("unreachable environment control outcome")
	}
}

// fail records reason as the frame's sticky terminal status. Per spec
// §4.1's failure rule and §7's "status is sticky" behavior, this is
// idempotent: a frame that has already failed is left untouched.
func (rt *Runtime) fail(reason ExitReason) {
	if rt.status != nil {
		return
	}
	rt.status = reason
	if !reason.IsSucceed() {
		interruptOrFailureCounter.Inc(1)
		if _, fatal := reason.(ExitFatal); fatal {
			log.Warn("EVM frame terminated fatally", "reason", reason.Error(), "address", rt.context.Address)
		}
	}
}
