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
package ssa

import (
	"fmt"

	"github.com/speedyc-lang/speedyc/pkg/lang"
)

// Builder is the IR-builder contract spec.md §6 fixes as the boundary
// between the codegen core and the host SSA/IR library: typed arithmetic,
// comparisons, conversions, control flow, and the function/module shells
// that hold them. The codegen package depends only on this interface, never
// on the concrete Function/Module/Block types directly.
type Builder interface {
	// NewFunction begins a new function with the given name, parameter
	// types, and result type, and returns the Values bound to its formal
	// parameters plus the id of its entry block. The entry block becomes
	// the current insertion point.
	NewFunction(name string, exported bool, params []lang.Type, result lang.Type) (paramValues []Value, entry BlockID)
	// NewBlock creates a new, unsealed basic block in the function
	// currently under construction. It does not change the insertion
	// point.
	NewBlock() BlockID
	// SetInsertionPoint redirects subsequent emission to the end of b.
	// Panics if b already has a terminator.
	SetInsertionPoint(b BlockID)

	// Int32 and Float64 materialize typed constants.
	Int32(v int32) Value
	Float64(v float64) Value
	Bool(v bool) Value
	// ConstString interns s into the module's string pool and returns a
	// ref(object:String) Value. The host runtime collaborator resolves the
	// pool entry to a data-segment offset plus a call to
	// rt_string_from_utf8 when the module is lowered to bytecode (spec.md
	// §6); this builder only records the payload.
	ConstString(s string) Value

	// Integer arithmetic; operands and result are int32.
	IAdd(l, r Value) Value
	ISub(l, r Value) Value
	IMul(l, r Value) Value
	SDiv(l, r Value) Value
	SRem(l, r Value) Value

	// Floating-point arithmetic; operands and result are float64.
	FAdd(l, r Value) Value
	FSub(l, r Value) Value
	FMul(l, r Value) Value
	FDiv(l, r Value) Value
	FRem(l, r Value) Value

	// Bitwise and shift operators; operands and result are int32.
	BitOr(l, r Value) Value
	BitAnd(l, r Value) Value
	BitXor(l, r Value) Value
	Shl(l, r Value) Value
	Shr(l, r Value) Value
	UShr(l, r Value) Value

	// ICmp compares two int32 operands under pred, yielding a bool Value.
	ICmp(pred Predicate, l, r Value) Value
	// FCmpOrdered and FCmpUnordered compare two float64 operands under
	// pred; the two forms differ only in how a NaN operand resolves
	// (spec.md §9 Open Question 1 resolves this repo to ordered
	// predicates throughout, but both primitives are exposed so a future
	// front end can opt into bug-compatible unordered comparisons).
	FCmpOrdered(pred Predicate, l, r Value) Value
	FCmpUnordered(pred Predicate, l, r Value) Value

	// TruncFloatToInt32 and ExtendInt32ToFloat implement the language's
	// implicit numeric conversions at int_like/number_like boundaries.
	TruncFloatToInt32(v Value) Value
	ExtendInt32ToFloat(v Value) Value

	// Phi introduces a phi node in the current block; incoming must list
	// one (value, predecessor) pair per predecessor of the current
	// block.
	Phi(typ lang.Type, incoming []Incoming) Value

	// Alloca reserves a mutable storage slot of the given type, emitted
	// into the current block, backing a Value materialized into a stack
	// slot (parameters, spec.md §9 "Parameter mutability"; local `let`
	// declarations, spec.md §4.4.7). Slots are not SSA values themselves
	// and are always accessed through Load/Store.
	Alloca(typ lang.Type) Value
	// Load reads slot's current contents.
	Load(typ lang.Type, slot Value) Value
	// Store writes v into slot.
	Store(slot, v Value)

	// Call emits a direct call to callee (a function name or registered
	// extern symbol) and returns its result Value, or 0 if the callee is
	// void.
	Call(callee string, result lang.Type, args []Value) Value

	// Br, CondBr, Return and Unreachable terminate the current block.
	Br(target BlockID)
	CondBr(cond Value, then, els BlockID)
	Return(v Value)
	ReturnVoid()
	Unreachable()

	// CurrentFunction returns the Function under construction since the
	// last NewFunction call.
	CurrentFunction() *Function
	// CurrentBlock returns the block emission is currently targeting,
	// needed by callers that build a Phi's incoming list after branching
	// through several blocks (e.g. short-circuit logical operators,
	// ternary, loop headers).
	CurrentBlock() BlockID
	// Finish seals the function under construction and appends it to the
	// enclosing Module.
	Finish() *Function
}

// Incoming pairs a Phi operand with the predecessor block it flows from.
type Incoming struct {
	Value Value
	Block BlockID
}

// NewBuilder constructs a Builder that accumulates functions into mod.
func NewBuilder(mod *Module) Builder {
	return &builder{mod: mod}
}

// builder is the concrete internal implementation of Builder, following the
// teacher's internalModuleBuilder pattern (pkg/ir/module_builder.go): a
// single mutable struct threaded through every emission call, rather than an
// immutable value-builder.
type builder struct {
	mod     *Module
	fn      *Function
	current BlockID
}

func (b *builder) NewFunction(name string, exported bool, params []lang.Type, result lang.Type) ([]Value, BlockID) {
	b.fn = &Function{Name: name, Exported: exported, Params: params, Result: result}

	entry := b.NewBlock()
	b.fn.entry = entry
	b.current = entry

	paramValues := make([]Value, len(params))
	for i, t := range params {
		paramValues[i] = b.emit(valueDef{op: opParam, typ: t, literal: i})
	}

	b.fn.params = paramValues

	return paramValues, entry
}

func (b *builder) NewBlock() BlockID {
	id := BlockID(len(b.fn.blocks))
	b.fn.blocks = append(b.fn.blocks, &Block{id: id})

	return id
}

func (b *builder) SetInsertionPoint(id BlockID) {
	if b.fn.block(id).sealed {
		panic(fmt.Sprintf("ssa: block %d already sealed", id))
	}

	b.current = id
}

func (b *builder) emit(def valueDef) Value {
	blk := b.fn.block(b.current)
	if blk.sealed {
		panic(fmt.Sprintf("ssa: cannot append to sealed block %d", b.current))
	}

	def.block = b.current
	b.fn.values = append(b.fn.values, def)
	v := Value(len(b.fn.values))
	blk.instrs = append(blk.instrs, v)

	switch def.op {
	case opBr, opCondBr, opReturn, opUnreachable:
		blk.sealed = true
	}

	return v
}

func (b *builder) Int32(v int32) Value {
	return b.emit(valueDef{op: opConstInt, typ: lang.Int32Type{}, literal: v})
}

func (b *builder) Float64(v float64) Value {
	return b.emit(valueDef{op: opConstFloat, typ: lang.Float64Type{}, literal: v})
}

func (b *builder) Bool(v bool) Value {
	return b.emit(valueDef{op: opConstBool, typ: lang.BoolType{}, literal: v})
}

func (b *builder) ConstString(s string) Value {
	b.mod.internString(s)

	return b.emit(valueDef{op: opConstString, typ: lang.ObjectRefType{ClassName: "String"}, literal: s})
}

func (b *builder) binInt(op opcode, l, r Value) Value {
	return b.emit(valueDef{op: op, typ: lang.Int32Type{}, args: []Value{l, r}})
}

func (b *builder) binFloat(op opcode, l, r Value) Value {
	return b.emit(valueDef{op: op, typ: lang.Float64Type{}, args: []Value{l, r}})
}

func (b *builder) IAdd(l, r Value) Value { return b.binInt(opIAdd, l, r) }
func (b *builder) ISub(l, r Value) Value { return b.binInt(opISub, l, r) }
func (b *builder) IMul(l, r Value) Value { return b.binInt(opIMul, l, r) }
func (b *builder) SDiv(l, r Value) Value { return b.binInt(opSDiv, l, r) }
func (b *builder) SRem(l, r Value) Value { return b.binInt(opSRem, l, r) }

func (b *builder) FAdd(l, r Value) Value { return b.binFloat(opFAdd, l, r) }
func (b *builder) FSub(l, r Value) Value { return b.binFloat(opFSub, l, r) }
func (b *builder) FMul(l, r Value) Value { return b.binFloat(opFMul, l, r) }
func (b *builder) FDiv(l, r Value) Value { return b.binFloat(opFDiv, l, r) }
func (b *builder) FRem(l, r Value) Value { return b.binFloat(opFRem, l, r) }

func (b *builder) BitOr(l, r Value) Value  { return b.binInt(opBitOr, l, r) }
func (b *builder) BitAnd(l, r Value) Value { return b.binInt(opBitAnd, l, r) }
func (b *builder) BitXor(l, r Value) Value { return b.binInt(opBitXor, l, r) }
func (b *builder) Shl(l, r Value) Value    { return b.binInt(opShl, l, r) }
func (b *builder) Shr(l, r Value) Value    { return b.binInt(opShr, l, r) }
func (b *builder) UShr(l, r Value) Value   { return b.binInt(opUShr, l, r) }

func (b *builder) ICmp(pred Predicate, l, r Value) Value {
	return b.emit(valueDef{op: opICmp, typ: lang.BoolType{}, args: []Value{l, r}, literal: pred})
}

func (b *builder) FCmpOrdered(pred Predicate, l, r Value) Value {
	return b.emit(valueDef{op: opFCmpOrdered, typ: lang.BoolType{}, args: []Value{l, r}, literal: pred})
}

func (b *builder) FCmpUnordered(pred Predicate, l, r Value) Value {
	return b.emit(valueDef{op: opFCmpUnordered, typ: lang.BoolType{}, args: []Value{l, r}, literal: pred})
}

func (b *builder) TruncFloatToInt32(v Value) Value {
	return b.emit(valueDef{op: opTruncFloatToInt, typ: lang.Int32Type{}, args: []Value{v}})
}

func (b *builder) ExtendInt32ToFloat(v Value) Value {
	return b.emit(valueDef{op: opExtendIntToFloat, typ: lang.Float64Type{}, args: []Value{v}})
}

func (b *builder) Phi(typ lang.Type, incoming []Incoming) Value {
	args := make([]Value, len(incoming))
	blocks := make([]BlockID, len(incoming))

	for i, in := range incoming {
		args[i] = in.Value
		blocks[i] = in.Block
	}

	return b.emit(valueDef{op: opPhi, typ: typ, args: args, blocks: blocks})
}

func (b *builder) Alloca(typ lang.Type) Value {
	return b.emit(valueDef{op: opAlloca, typ: typ})
}

func (b *builder) Load(typ lang.Type, slot Value) Value {
	return b.emit(valueDef{op: opLoad, typ: typ, args: []Value{slot}})
}

func (b *builder) Store(slot, v Value) {
	b.emit(valueDef{op: opStore, typ: lang.VoidType{}, args: []Value{slot, v}})
}

func (b *builder) Call(callee string, result lang.Type, args []Value) Value {
	v := b.emit(valueDef{op: opCall, typ: result, args: args, symbol: callee})
	if result != nil && result.AsVoid() != nil {
		return 0
	}

	return v
}

func (b *builder) Br(target BlockID) {
	b.emit(valueDef{op: opBr, typ: lang.VoidType{}, blocks: []BlockID{target}})
}

func (b *builder) CondBr(cond Value, then, els BlockID) {
	b.emit(valueDef{op: opCondBr, typ: lang.VoidType{}, args: []Value{cond}, blocks: []BlockID{then, els}})
}

func (b *builder) Return(v Value) {
	b.emit(valueDef{op: opReturn, typ: lang.VoidType{}, args: []Value{v}})
}

func (b *builder) ReturnVoid() {
	b.emit(valueDef{op: opReturn, typ: lang.VoidType{}})
}

func (b *builder) Unreachable() {
	b.emit(valueDef{op: opUnreachable, typ: lang.VoidType{}})
}

func (b *builder) CurrentFunction() *Function {
	return b.fn
}

func (b *builder) CurrentBlock() BlockID {
	return b.current
}

func (b *builder) Finish() *Function {
	fn := b.fn
	b.mod.functions = append(b.mod.functions, fn)
	b.fn = nil

	return fn
}
