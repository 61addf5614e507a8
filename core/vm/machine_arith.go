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

// doArith implements the pure-integer opcodes: ADD, MUL, SUB, DIV, SDIV,
// MOD, SMOD, EXP, SIGNEXTEND (two operands for all except EXP's gas-byte
// accounting, which this core leaves to the host per spec §1 Non-goals),
// ADDMOD, MULMOD (three operands).
func (m *machine) doArith(op OpCode) stepOutcome {
	switch op {
	case ADDMOD, MULMOD:
		return m.doSimple(func() error {
			ws, err := m.stack.popN(3)
			if err != nil {
				return err
			}
			var res Word
			if op == ADDMOD {
				res.AddMod(&ws[0], &ws[1], &ws[2])
			} else {
				res.MulMod(&ws[0], &ws[1], &ws[2])
			}
			return m.stack.push(res)
		})
	default:
		return m.doSimple(func() error {
			ws, err := m.stack.popN(2)
			if err != nil {
				return err
			}
			a, b := ws[0], ws[1]
			var res Word
			switch op {
			case ADD:
				res.Add(&a, &b)
			case MUL:
				res.Mul(&a, &b)
			case SUB:
				res.Sub(&a, &b)
			case DIV:
				res.Div(&a, &b)
			case SDIV:
				res.SDiv(&a, &b)
			case MOD:
				res.Mod(&a, &b)
			case SMOD:
				res.SMod(&a, &b)
			case EXP:
				res.Exp(&a, &b)
			case SIGNEXTEND:
				res.ExtendSign(&b, &a)
			}
			return m.stack.push(res)
		})
	}
}

// doBitwise implements comparison, boolean, and bit-shifting opcodes.
func (m *machine) doBitwise(op OpCode) stepOutcome {
	switch op {
	case ISZERO, NOT:
		return m.doSimple(func() error {
			a, err := m.stack.pop()
			if err != nil {
				return err
			}
			var res Word
			if op == ISZERO {
				if a.IsZero() {
					res.SetOne()
				}
			} else {
				res.Not(&a)
			}
			return m.stack.push(res)
		})
	default:
		return m.doSimple(func() error {
			ws, err := m.stack.popN(2)
			if err != nil {
				return err
			}
			a, b := ws[0], ws[1]
			var res Word
			switch op {
			case LT:
				if a.Lt(&b) {
					res.SetOne()
				}
			case GT:
				if a.Gt(&b) {
					res.SetOne()
				}
			case SLT:
				if a.Slt(&b) {
					res.SetOne()
				}
			case SGT:
				if a.Sgt(&b) {
					res.SetOne()
				}
			case EQ:
				if a.Eq(&b) {
					res.SetOne()
				}
			case AND:
				res.And(&a, &b)
			case OR:
				res.Or(&a, &b)
			case XOR:
				res.Xor(&a, &b)
			case BYTE:
				res = b
				res.Byte(&a)
			case SHL:
				res.Lsh(&b, uint(clampShift(a)))
			case SHR:
				res.Rsh(&b, uint(clampShift(a)))
			case SAR:
				res.SRsh(&b, uint(clampShift(a)))
			}
			return m.stack.push(res)
		})
	}
}

// clampShift reduces a shift amount Word to a native uint, saturating at
// 256 (any larger shift yields an all-zero or all-sign result, which the
// uint256 Lsh/Rsh/SRsh implementations already produce for shift==256).
func clampShift(w Word) uint64 {
	if !w.IsUint64() || w.Uint64() > 256 {
		return 256
	}
	return w.Uint64()
}
