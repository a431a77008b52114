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

// Package extern declares the fixed, externally-linked ABI the precompiled
// runtime archive exports (spec.md §6 "Runtime library"): object and array
// allocation, bounds-checked array access, string construction, and the
// math helpers WASM has no primitive for. Nothing in this package executes
// any of these functions; it only fixes their name and signature so the
// codegen package can declare a matching ssa.Extern and the linker
// (external collaborator, spec.md §1) can resolve the call at link time.
//
// Grounded on the teacher's own fixed native/intrinsic tables in
// pkg/corset/compiler/natives.go and intrinsics.go: a name, an arity, and a
// constructor describing the shape of the call, registered once rather
// than scattered across call sites.
package extern

import "github.com/speedyc-lang/speedyc/pkg/lang"
import "github.com/speedyc-lang/speedyc/pkg/ssa"

// AllocObject declares rt_alloc_object(size int32) ref.
func AllocObject(result lang.Type) ssa.Extern {
	return ssa.Extern{Name: "rt_alloc_object", Params: []lang.Type{lang.Int32Type{}}, Result: result}
}

// AllocArray declares rt_alloc_array(elemKind int32, length int32) ref.
func AllocArray(result lang.Type) ssa.Extern {
	return ssa.Extern{
		Name:   "rt_alloc_array",
		Params: []lang.Type{lang.Int32Type{}, lang.Int32Type{}},
		Result: result,
	}
}

// elemKindSuffix maps an array element Type to the mangled-name suffix
// rt_array_get/rt_array_set carry, one per T in spec.md §3's
// {int32,float64,bool,ref}. Two arrays of different element kind must never
// share one extern: the runtime's get/set primitives are typed per-kind
// (a ref load is not bit-compatible with an f64 load), so collapsing them
// onto one untyped "rt_array_get" name is exactly the module-wide
// ExternSignatureConflict this package exists to prevent. Ref element
// types all share the single "ref" suffix regardless of class, matching
// spec.md §3's ArrayRefType note that the element kind lattice has only
// one ref leaf (array element accessors carry no class identity, unlike
// the class-mangled field accessors below).
func elemKindSuffix(elem lang.Type) string {
	switch {
	case elem.AsInt32() != nil:
		return "i32"
	case elem.AsFloat64() != nil:
		return "f64"
	case elem.AsBool() != nil:
		return "bool"
	default:
		return "ref"
	}
}

// ArrayGet declares rt_array_get_<kind>(arr ref, index int32) ref|scalar,
// Result typed per the array's element kind.
func ArrayGet(arr, elem lang.Type) ssa.Extern {
	return ssa.Extern{
		Name:   "rt_array_get_" + elemKindSuffix(elem),
		Params: []lang.Type{arr, lang.Int32Type{}},
		Result: elem,
	}
}

// ArraySet declares rt_array_set_<kind>(arr ref, index int32, value) void.
func ArraySet(arr, elem lang.Type) ssa.Extern {
	return ssa.Extern{
		Name:   "rt_array_set_" + elemKindSuffix(elem),
		Params: []lang.Type{arr, lang.Int32Type{}, elem},
		Result: lang.VoidType{},
	}
}

// ArrayLength declares rt_array_length(arr ref) int32. Unlike Get/Set this
// signature never varies with the element kind (length reads the fat
// pointer's length word, never an element), so it carries no kind suffix
// and is shared by every array regardless of element type.
func ArrayLength(arr lang.Type) ssa.Extern {
	return ssa.Extern{Name: "rt_array_length", Params: []lang.Type{arr}, Result: lang.Int32Type{}}
}

// StringFromUTF8 declares rt_string_from_utf8(ptr int32, len int32) ref.
func StringFromUTF8(result lang.Type) ssa.Extern {
	return ssa.Extern{
		Name:   "rt_string_from_utf8",
		Params: []lang.Type{lang.Int32Type{}, lang.Int32Type{}},
		Result: result,
	}
}

// mathUnary declares an rt_math_<name>(float64) float64 helper.
func mathUnary(name string) ssa.Extern {
	return ssa.Extern{Name: "rt_math_" + name, Params: []lang.Type{lang.Float64Type{}}, Result: lang.Float64Type{}}
}

// Sqrt declares rt_math_sqrt(float64) float64.
func Sqrt() ssa.Extern { return mathUnary("sqrt") }

// Floor declares rt_math_floor(float64) float64.
func Floor() ssa.Extern { return mathUnary("floor") }

// Ceil declares rt_math_ceil(float64) float64.
func Ceil() ssa.Extern { return mathUnary("ceil") }

// Trunc declares rt_math_trunc(float64) float64.
func Trunc() ssa.Extern { return mathUnary("trunc") }

// Pow declares rt_math_pow(float64, float64) float64; the one math helper
// with two operands, so it isn't built from mathUnary.
func Pow() ssa.Extern {
	return ssa.Extern{
		Name:   "rt_math_pow",
		Params: []lang.Type{lang.Float64Type{}, lang.Float64Type{}},
		Result: lang.Float64Type{},
	}
}

// fieldKey mangles a (class, field name) pair into the segment
// FieldGetter/FieldSetter append to their rt_field_get_/rt_field_set_
// prefix. Mangled by class *and* name, not name alone: two classes sharing
// a field name with incompatible types (Point.x: int32 vs Circle.x:
// float64) would otherwise mangle to the identical rt_field_get_x extern
// and the second declaration would always lose to
// ExternSignatureConflict the moment both classes appear in one module.
// className is the object's ObjectRefType.ClassName; a blank class
// name (an object type the front end never attached a class to) falls
// back to the field name alone, preserving the old mangling for that one
// degenerate case.
func fieldKey(className, name string) string {
	if className == "" {
		return name
	}

	return className + "_" + name
}

// FieldGetter declares the mangled per-(class,field) accessor
// rt_field_get_<ClassName>_<Name> an object's PropertyRef read lowers to.
// Mangled by class and field name rather than a single generic
// opcode-plus-operand call, matching the teacher's own per-symbol extern
// mangling in pkg/corset/compiler/externs.go.
func FieldGetter(className, name string, fieldType lang.Type) ssa.Extern {
	return ssa.Extern{
		Name:   "rt_field_get_" + fieldKey(className, name),
		Params: []lang.Type{lang.ObjectRefType{ClassName: className}},
		Result: fieldType,
	}
}

// FieldSetter declares the mangled per-(class,field) mutator
// rt_field_set_<ClassName>_<Name>.
func FieldSetter(className, name string, fieldType lang.Type) ssa.Extern {
	return ssa.Extern{
		Name:   "rt_field_set_" + fieldKey(className, name),
		Params: []lang.Type{lang.ObjectRefType{ClassName: className}, fieldType},
		Result: lang.VoidType{},
	}
}

// Constructor declares the mangled per-class constructor rt_new_<className>
// a `new ClassName(...)` expression lowers to.
func Constructor(className string, argTypes []lang.Type, result lang.Type) ssa.Extern {
	return ssa.Extern{Name: "rt_new_" + className, Params: argTypes, Result: result}
}
