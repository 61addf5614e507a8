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

package vm_test

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	vm "github.com/etroneum-labs/evm/core/vm"
	"github.com/etroneum-labs/evm/core/vm/vmmock"
)

// This file exercises the trap/resolve protocol and the host-recoverable
// error policy against the gomock-generated vmmock.MockHandler, the
// expectation style the package-internal tests in runtime_test.go
// deliberately leave to this file.

func wordT(n uint64) vm.Word {
	var w vm.Word
	w.SetUint64(n)
	return w
}

// TestCallTrapResumesAfterPlaceholder drives a CALL that the mock host
// reports as suspended, resolves it, and checks the frame resumes at the
// opcode following CALL rather than re-entering it (spec §4.3).
func TestCallTrapResumesAfterPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := vmmock.NewMockHandler(ctrl)

	to := vm.Address{0x42}
	self := vm.Address{0x01}

	code := make([]byte, 0, 32)
	code = append(code, 0x60, 0x20) // PUSH1 0x20 (outLen)
	code = append(code, 0x60, 0x00) // PUSH1 0x00 (outOff)
	code = append(code, 0x60, 0x00) // PUSH1 0x00 (inLen)
	code = append(code, 0x60, 0x00) // PUSH1 0x00 (inOff)
	code = append(code, 0x60, 0x00) // PUSH1 0x00 (value)
	code = append(code, 0x73)       // PUSH20 (to)
	code = append(code, to.Bytes()...)
	code = append(code, 0x60, 0x00) // PUSH1 0x00 (gas)
	code = append(code, 0xf1)       // CALL
	code = append(code, 0x00)       // STOP

	h.EXPECT().PreValidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.EXPECT().GasLeft().Return(wordT(1_000_000)).AnyTimes()

	var gotCtx vm.Context
	h.EXPECT().
		Call(to, gomock.Nil(), gomock.Any(), gomock.Any(), false, gomock.Any()).
		DoAndReturn(func(_ vm.Address, _ *vm.Transfer, _ []byte, _ *vm.Word, _ bool, ctx vm.Context) (vm.CallOutcome, error) {
			gotCtx = ctx
			return vm.CallOutcome{Trap: &vm.CallInterrupt{}}, nil
		})

	rt := vm.NewRuntime(code, nil, vm.Context{Address: self}, vm.FrontierConfig())
	defer rt.Close()

	cap := rt.Run(h)
	if !cap.Trapped() || cap.CallResolve == nil {
		t.Fatalf("expected a call trap, got %+v", cap)
	}
	if gotCtx.Address != to || gotCtx.Caller != self {
		t.Fatalf("child context = %+v, want address=%x caller=%x", gotCtx, to, self)
	}

	returnData := []byte{0xde, 0xad, 0xbe, 0xef}
	if err := cap.CallResolve.Resolve(true, returnData); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !bytes.Equal(rt.ReturnData(), returnData) {
		t.Fatalf("ReturnData() = %x, want %x", rt.ReturnData(), returnData)
	}

	cap2 := rt.Run(h)
	if cap2.Exit != vm.ExitStopped {
		t.Fatalf("exit after resolve = %v (%T), want ExitStopped from the opcode after CALL", cap2.Exit, cap2.Exit)
	}
}

// TestResolveHandleConsumedOnce is the §4.3 invariant: "Exactly one
// resolve handle exists per suspension; it must be consumed exactly once."
func TestResolveHandleConsumedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := vmmock.NewMockHandler(ctrl)

	minimalCreate := []byte{
		0x60, 0x00, // PUSH1 0 (length)
		0x60, 0x00, // PUSH1 0 (offset)
		0x60, 0x00, // PUSH1 0 (value)
		0xf0, // CREATE
		0x00, // STOP
	}

	h.EXPECT().PreValidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.EXPECT().GasLeft().Return(wordT(1_000_000)).AnyTimes()
	h.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).Return(vm.Address{0x07}, nil)
	h.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(vm.CreateOutcome{Trap: &vm.CreateInterrupt{}}, nil)

	rt := vm.NewRuntime(minimalCreate, nil, vm.Context{}, vm.FrontierConfig())
	defer rt.Close()

	cap := rt.Run(h)
	if cap.CreateResolve == nil {
		t.Fatalf("expected a create trap, got %+v", cap)
	}

	if err := cap.CreateResolve.Resolve(true, vm.Address{0x07}, nil); err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	if err := cap.CreateResolve.Resolve(true, vm.Address{0x07}, nil); !errors.Is(err, vm.ErrAlreadyResolved) {
		t.Fatalf("second Resolve = %v, want ErrAlreadyResolved", err)
	}
}

// TestCreateAddressRecoverableErrorPushesZero is the §7 propagation policy
// for CREATE_ADDRESS: a host error classified as recoverable pushes a
// zero and continues instead of terminating the frame.
func TestCreateAddressRecoverableErrorPushesZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := vmmock.NewMockHandler(ctrl)

	code := []byte{
		0x60, 0x00, // PUSH1 0 (length)
		0x60, 0x00, // PUSH1 0 (offset)
		0x60, 0x00, // PUSH1 0 (value)
		0xf0, // CREATE
		0x00, // STOP
	}

	wantErr := errors.New("address allocation unavailable")
	h.EXPECT().PreValidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).Return(vm.Address{}, wantErr)
	h.EXPECT().IsRecoverable(wantErr).Return(true)

	rt := vm.NewRuntime(code, nil, vm.Context{}, vm.FrontierConfig())
	defer rt.Close()

	cap := rt.Run(h)
	if cap.Exit != vm.ExitStopped {
		t.Fatalf("exit = %v, want ExitStopped (recoverable CreateAddress error pushes 0 and continues)", cap.Exit)
	}
}

// TestCreateAddressNonRecoverableErrorExits is the inverse: a
// non-recoverable host error terminates the frame instead of continuing.
func TestCreateAddressNonRecoverableErrorExits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := vmmock.NewMockHandler(ctrl)

	code := []byte{
		0x60, 0x00, // PUSH1 0 (length)
		0x60, 0x00, // PUSH1 0 (offset)
		0x60, 0x00, // PUSH1 0 (value)
		0xf0, // CREATE
		0x00, // STOP
	}

	wantErr := errors.New("host is shutting down")
	h.EXPECT().PreValidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).Return(vm.Address{}, wantErr)
	h.EXPECT().IsRecoverable(wantErr).Return(false)

	rt := vm.NewRuntime(code, nil, vm.Context{}, vm.FrontierConfig())
	defer rt.Close()

	cap := rt.Run(h)
	if cap.Exit == nil || cap.Exit.IsSucceed() {
		t.Fatalf("exit = %v, want a non-succeed terminal exit", cap.Exit)
	}
}
