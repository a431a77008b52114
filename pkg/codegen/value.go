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
package codegen

import (
	"github.com/speedyc-lang/speedyc/pkg/lang"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// Value is the uniform handle every code-generator returns: an r-value, an
// l-value, or a function reference. This is the "cleaner design" sum type
// spec.md §9 suggests in place of the source's single interface-plus-
// is_assignable predicate: Assignable and Callable are separate interfaces
// a concrete Value may additionally implement, rather than one interface
// with a runtime-checked capability flag.
type Value interface {
	// Type returns this Value's static type. Never changes after
	// construction.
	Type() lang.Type
	// AsRValue materializes this Value as an SSA operand: identity for an
	// RValue, a load for an LValue. c may emit instructions (the load).
	AsRValue(c *Context) ssa.Value
}

// Assignable is implemented by Values with well-defined storage.
type Assignable interface {
	Value
	// Assign stores src into this Value's storage, after the caller has
	// already applied any required implicit promotion. Returns
	// ReadOnlyTargetError if, despite implementing this interface, the
	// concrete Value refuses the particular assignment (not currently
	// used by any Value in this package, but kept so a future const
	// l-value can reject writes without losing static assignability).
	Assign(c *Context, src Value) error
}

// Callable is implemented by function-reference Values.
type Callable interface {
	Value
	// Signature returns the callable's parameter and result types.
	Signature() lang.Signature
	// EmitCall evaluates a call to this callable with already-coerced
	// argument Values and returns its result (zero Value if void, as
	// Builder.Call returns).
	EmitCall(c *Context, args []ssa.Value) ssa.Value
}

// IsAssignable reports whether v implements Assignable, mirroring
// spec.md §4.2's is_assignable() predicate.
func IsAssignable(v Value) bool {
	_, ok := v.(Assignable)
	return ok
}

// RValue wraps an already-materialized SSA operand.
type RValue struct {
	Val ssa.Value
	Typ lang.Type
}

// Type implements Value.
func (r RValue) Type() lang.Type { return r.Typ }

// AsRValue implements Value.
func (r RValue) AsRValue(*Context) ssa.Value { return r.Val }

// LValue is a storage descriptor: a stack slot allocated via the builder's
// Alloca, addressed by the ssa.Value it was allocated as (per
// SPEC_FULL.md §4.3/§4.4.7, scalars get a stack slot and ref types get a
// slot holding the reference — this package does not model field offsets
// or array-element addresses directly, since §4.4.9 delegates those to
// runtime helper calls instead of raw memory addressing).
type LValue struct {
	Slot ssa.Value
	Typ  lang.Type
}

// Type implements Value.
func (l LValue) Type() lang.Type { return l.Typ }

// AsRValue implements Value: loading an l-value reads its current slot
// contents.
func (l LValue) AsRValue(c *Context) ssa.Value {
	return c.Builder.Load(l.Typ, l.Slot)
}

// Assign implements Assignable: storing overwrites the slot contents.
func (l LValue) Assign(c *Context, src Value) error {
	c.Builder.Store(l.Slot, src.AsRValue(c))

	return nil
}

// FunctionRef is a callable descriptor for a statically-known function
// (either a compiled function or a runtime extern).
type FunctionRef struct {
	Name string
	Sig  lang.Signature
}

// Type implements Value: a FunctionRef's static type is its function type.
func (f FunctionRef) Type() lang.Type { return f.Sig.FunctionType() }

// AsRValue implements Value. Function values are never loaded as bare SSA
// operands in this restricted subset (no first-class function values
// escape a call position), so this only supports the degenerate case of a
// function reference flowing into typeof or similar introspection-free
// positions; EmitCall is the real entry point.
func (f FunctionRef) AsRValue(*Context) ssa.Value { return 0 }

// Signature implements Callable.
func (f FunctionRef) Signature() lang.Signature { return f.Sig }

// EmitCall implements Callable.
func (f FunctionRef) EmitCall(c *Context, args []ssa.Value) ssa.Value {
	return c.Builder.Call(f.Name, f.Sig.Result, args)
}
