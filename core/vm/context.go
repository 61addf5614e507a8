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

// Context holds the per-frame environmental constants that never change
// during a frame's lifetime: the executing address, the immediate caller,
// and the value apparent to CALLVALUE (which, for DELEGATECALL, is not the
// value actually transferred).
type Context struct {
	Address       Address
	Caller        Address
	ApparentValue Word
}

// Transfer describes a balance movement the host must perform.
type Transfer struct {
	Source Address
	Target Address
	Value  Word
}

// CreateScheme selects how a created contract's address is derived.
type CreateScheme int

const (
	// CreateSchemeDynamic leaves address derivation to the host (normally
	// caller-nonce based) — used by the CREATE opcode.
	CreateSchemeDynamic CreateScheme = iota
	// CreateSchemeFixed carries a pre-computed address — used by CREATE2,
	// whose address is a pure function of (caller, salt, code hash).
	CreateSchemeFixed
)

// CreateAddressScheme pairs a CreateScheme with the fixed address, when
// applicable.
type CreateAddressScheme struct {
	Scheme CreateScheme
	Fixed  Address // valid iff Scheme == CreateSchemeFixed
}

// CallScheme selects the CALL-family opcode variant in effect.
type CallScheme int

const (
	CallSchemeCall CallScheme = iota
	CallSchemeCallCode
	CallSchemeDelegateCall
	CallSchemeStaticCall
)

func (s CallScheme) String() string {
	switch s {
	case CallSchemeCall:
		return "CALL"
	case CallSchemeCallCode:
		return "CALLCODE"
	case CallSchemeDelegateCall:
		return "DELEGATECALL"
	case CallSchemeStaticCall:
		return "STATICCALL"
	default:
		return "UNKNOWN"
	}
}
