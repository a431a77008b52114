// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package ssa is the concrete "host SSA/IR library" spec.md §1 treats as an
// external collaborator, implementing exactly the contract fixed by spec.md
// §6 ("IR-builder contract"): typed arithmetic, comparisons, branches,
// function/basic-block construction, and bytecode emission. The codegen
// package programs against the Builder interface only.
//
// Values and blocks are referred to by opaque numeric ids rather than
// pointers, following the teacher's register.Id / schema.ModuleId style
// (pkg/ir/module_builder.go) rather than a pointer-graph IR — this makes the
// determinism invariant (spec.md §8, "emitting the same typed AST twice
// produces byte-identical modules") trivial to satisfy, since id allocation
// order is the only source of identity.
package ssa

import "github.com/speedyc-lang/speedyc/pkg/lang"

// Value identifies a single SSA operand within a Function. The zero Value
// is never valid; NewFunction/emission always hand out ids starting at 1 so
// a missing Value is easy to spot.
type Value uint32

// BlockID identifies a basic block within a Function.
type BlockID uint32

// valueDef is the definition site of a Value: the instruction that produced
// it, its type, and (for instructions with no result, i.e. store-like or
// terminator instructions) Void.
type valueDef struct {
	op     opcode
	typ    lang.Type
	args   []Value
	block  BlockID
	// blocks holds Phi's incoming-block ids (paired positionally with args)
	// and CondBr/Br's target block(s); nil for ordinary arithmetic
	// instructions.
	blocks []BlockID
	// literal carries a constant's payload for opConstInt/opConstFloat/
	// opConstBool.
	literal any
	// callee/extern name, for opCall.
	symbol string
}

type opcode uint8

const (
	opConstInt opcode = iota
	opConstFloat
	opConstBool
	opConstString
	opParam
	opIAdd
	opISub
	opIMul
	opSDiv
	opSRem
	opFAdd
	opFSub
	opFMul
	opFDiv
	opFRem
	opBitOr
	opBitAnd
	opBitXor
	opShl
	opShr
	opUShr
	opICmp
	opFCmpOrdered
	opFCmpUnordered
	opTruncFloatToInt
	opExtendIntToFloat
	opPhi
	opCall
	opAlloca
	opLoad
	opStore
	// terminators
	opBr
	opCondBr
	opReturn
	opUnreachable
)

// Predicate enumerates comparison predicates used by ICmp/FCmp.
type Predicate uint8

// The comparison predicates the IR-builder contract exposes (spec.md §6):
// signed integer lt/le/gt/ge/eq/ne, and the ordered/unordered float forms
// used by the same relational operators.
const (
	PredLT Predicate = iota
	PredLE
	PredGT
	PredGE
	PredEQ
	PredNE
)

func (p Predicate) String() string {
	switch p {
	case PredLT:
		return "lt"
	case PredLE:
		return "le"
	case PredGT:
		return "gt"
	case PredGE:
		return "ge"
	case PredEQ:
		return "eq"
	case PredNE:
		return "ne"
	default:
		return "?"
	}
}
