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

import "github.com/ethereum/go-ethereum/metrics"

// interruptOrFailureCounter counts every frame that terminates with a
// non-succeed ExitReason (ExitError or ExitFatal), mirroring the teacher's
// opcodeCommitInterruptCounter pattern of a single registered counter
// sampled from the interpreter's hot path rather than per-opcode metrics.
var interruptOrFailureCounter = metrics.NewRegisteredCounter("vm/frame/failure", nil)

// createInterruptCounter and callInterruptCounter track how often this core suspends on a
// nested CREATE/CALL, the two points where control leaves the pure
// in-process interpreter loop.
var (
	createInterruptCounter = metrics.NewRegisteredCounter("vm/trap/create", nil)
	callInterruptCounter   = metrics.NewRegisteredCounter("vm/trap/call", nil)
)
