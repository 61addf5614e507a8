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

import "math"

// Config is an immutable bag of gas and behavioural constants selecting
// protocol-era semantics. A Config is shared read-only for a Runtime's
// entire lifetime; the driver never clones it per step.
type Config struct {
	// Gas costs. Consumed by the host during pre-validation, not by this
	// core directly, with the sole exception of CallStipend.
	GasExtCode               uint64
	GasExtCodeHash           uint64
	GasBalance               uint64
	GasSLoad                 uint64
	GasSStoreSet             uint64
	GasSStoreReset           uint64
	GasSuicide               uint64
	GasSuicideNewAccount     uint64
	GasCall                  uint64
	GasExpByte               uint64
	GasTransactionCreate     uint64
	GasTransactionCall       uint64
	GasTransactionZeroData   uint64
	GasTransactionNonZeroData uint64

	// RefundSStoreClears is the refund granted for clearing storage.
	RefundSStoreClears int64

	// HasReducedSStoreGasMetering selects the post-EIP-1283 SSTORE
	// accounting.
	HasReducedSStoreGasMetering bool

	// ErrOnCallWithMoreGas: when true, CALL-family must fail if requested
	// gas exceeds available; when false, the request is silently clamped.
	ErrOnCallWithMoreGas bool

	// CallL64AfterGas: when true, child gas is clamped to floor(63/64) of
	// remaining after the outer op's base cost is paid.
	CallL64AfterGas bool

	// EmptyConsideredExists distinguishes pre-/post-EIP-161 touch
	// semantics.
	EmptyConsideredExists bool

	// CreateIncreaseNonce: when true, CREATE/CREATE2 increments the
	// caller's nonce before child execution.
	CreateIncreaseNonce bool

	// StackLimit bounds stack depth (typically 1024).
	StackLimit int
	// MemoryLimit bounds linear memory size, in bytes.
	MemoryLimit uint64
	// CallLimit bounds nesting depth (typically 1024).
	CallLimit int
	// CallStipend is added to the gas forwarded to a value-carrying
	// CALL/CALLCODE (typically 2300).
	CallStipend uint64
}

// FrontierConfig returns the Frontier-era constants (spec §6).
func FrontierConfig() *Config {
	return &Config{
		GasExtCode:                20,
		GasExtCodeHash:            20,
		GasBalance:                20,
		GasSLoad:                  50,
		GasSStoreSet:              20000,
		GasSStoreReset:            5000,
		RefundSStoreClears:        15000,
		GasSuicide:                0,
		GasSuicideNewAccount:      0,
		GasCall:                   40,
		GasExpByte:                10,
		GasTransactionCreate:      21000,
		GasTransactionCall:        21000,
		GasTransactionZeroData:    4,
		GasTransactionNonZeroData: 68,
		HasReducedSStoreGasMetering: false,
		ErrOnCallWithMoreGas:        true,
		EmptyConsideredExists:       true,
		CreateIncreaseNonce:         false,
		CallL64AfterGas:             false,
		StackLimit:                  1024,
		MemoryLimit:                 math.MaxUint64,
		CallLimit:                   1024,
		CallStipend:                 2300,
	}
}

// IstanbulConfig returns the Istanbul-era constants (spec §6), derived from
// FrontierConfig with the documented deltas applied.
func IstanbulConfig() *Config {
	c := FrontierConfig()
	c.GasExtCode = 700
	c.GasExtCodeHash = 700
	c.GasBalance = 700
	c.GasSLoad = 800
	c.GasSuicide = 5000
	c.GasSuicideNewAccount = 25000
	c.GasCall = 700
	c.GasExpByte = 50
	c.GasTransactionCreate = 53000
	c.GasTransactionNonZeroData = 16
	c.HasReducedSStoreGasMetering = true
	c.ErrOnCallWithMoreGas = false
	c.EmptyConsideredExists = false
	c.CreateIncreaseNonce = true
	c.CallL64AfterGas = true
	return c
}
