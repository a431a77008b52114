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

// Package lang defines the static type lattice and typed-node contracts which
// the codegen package consumes.  The front-end type checker which produces
// these types is an external collaborator; this package defines only the
// shape it is assumed to provide.
package lang

// Type classifies the static type of an expression into exactly one leaf of
// the lattice.  Type is a closed sum: the only implementations are the
// concrete types defined in this file.  Once constructed, a Type value never
// changes.
type Type interface {
	// AsInt32 accesses this type as the 32-bit signed integer type.  If this
	// type is not int32, returns nil.
	AsInt32() *Int32Type
	// AsFloat64 accesses this type as the 64-bit float type.  If this type is
	// not float64, returns nil.
	AsFloat64() *Float64Type
	// AsBool accesses this type as the boolean type.  If this type is not
	// bool, returns nil.
	AsBool() *BoolType
	// AsVoid accesses this type as the void type.  If this type is not void,
	// returns nil.
	AsVoid() *VoidType
	// AsObjectRef accesses this type as a heap object reference.  If this type
	// is not an object reference, returns nil.
	AsObjectRef() *ObjectRefType
	// AsArrayRef accesses this type as an array reference.  If this type is
	// not an array reference, returns nil.
	AsArrayRef() *ArrayRefType
	// AsFunction accesses this type as a function signature.  If this type is
	// not a function, returns nil.
	AsFunction() *FunctionType
	// Equals determines whether this type is identical to another.
	Equals(Type) bool
	// String returns a human-readable representation of this type, used in
	// diagnostics.
	String() string
}

// Int32Type is the 32-bit signed integer SSA type, produced by an
// explicitly-annotated integer-typed expression.
type Int32Type struct{}

// AsInt32 implements Type.
func (Int32Type) AsInt32() *Int32Type { return &Int32Type{} }

// AsFloat64 implements Type.
func (Int32Type) AsFloat64() *Float64Type { return nil }

// AsBool implements Type.
func (Int32Type) AsBool() *BoolType { return nil }

// AsVoid implements Type.
func (Int32Type) AsVoid() *VoidType { return nil }

// AsObjectRef implements Type.
func (Int32Type) AsObjectRef() *ObjectRefType { return nil }

// AsArrayRef implements Type.
func (Int32Type) AsArrayRef() *ArrayRefType { return nil }

// AsFunction implements Type.
func (Int32Type) AsFunction() *FunctionType { return nil }

// Equals implements Type.
func (Int32Type) Equals(other Type) bool { return other.AsInt32() != nil }

func (Int32Type) String() string { return "int32" }

// Float64Type is the 64-bit IEEE-754 SSA type, and the default numeric type
// when no integer annotation is present.
type Float64Type struct{}

// AsInt32 implements Type.
func (Float64Type) AsInt32() *Int32Type { return nil }

// AsFloat64 implements Type.
func (Float64Type) AsFloat64() *Float64Type { return &Float64Type{} }

// AsBool implements Type.
func (Float64Type) AsBool() *BoolType { return nil }

// AsVoid implements Type.
func (Float64Type) AsVoid() *VoidType { return nil }

// AsObjectRef implements Type.
func (Float64Type) AsObjectRef() *ObjectRefType { return nil }

// AsArrayRef implements Type.
func (Float64Type) AsArrayRef() *ArrayRefType { return nil }

// AsFunction implements Type.
func (Float64Type) AsFunction() *FunctionType { return nil }

// Equals implements Type.
func (Float64Type) Equals(other Type) bool { return other.AsFloat64() != nil }

func (Float64Type) String() string { return "float64" }

// BoolType is the 1-bit SSA boolean type.
type BoolType struct{}

// AsInt32 implements Type.
func (BoolType) AsInt32() *Int32Type { return nil }

// AsFloat64 implements Type.
func (BoolType) AsFloat64() *Float64Type { return nil }

// AsBool implements Type.
func (BoolType) AsBool() *BoolType { return &BoolType{} }

// AsVoid implements Type.
func (BoolType) AsVoid() *VoidType { return nil }

// AsObjectRef implements Type.
func (BoolType) AsObjectRef() *ObjectRefType { return nil }

// AsArrayRef implements Type.
func (BoolType) AsArrayRef() *ArrayRefType { return nil }

// AsFunction implements Type.
func (BoolType) AsFunction() *FunctionType { return nil }

// Equals implements Type.
func (BoolType) Equals(other Type) bool { return other.AsBool() != nil }

func (BoolType) String() string { return "bool" }

// VoidType marks statements and void calls which yield no value.
type VoidType struct{}

// AsInt32 implements Type.
func (VoidType) AsInt32() *Int32Type { return nil }

// AsFloat64 implements Type.
func (VoidType) AsFloat64() *Float64Type { return nil }

// AsBool implements Type.
func (VoidType) AsBool() *BoolType { return nil }

// AsVoid implements Type.
func (VoidType) AsVoid() *VoidType { return &VoidType{} }

// AsObjectRef implements Type.
func (VoidType) AsObjectRef() *ObjectRefType { return nil }

// AsArrayRef implements Type.
func (VoidType) AsArrayRef() *ArrayRefType { return nil }

// AsFunction implements Type.
func (VoidType) AsFunction() *FunctionType { return nil }

// Equals implements Type.
func (VoidType) Equals(other Type) bool { return other.AsVoid() != nil }

func (VoidType) String() string { return "void" }

// ObjectRefType is a tagged pointer to a heap object managed by the runtime
// library.
type ObjectRefType struct {
	// ClassName identifies the object's shape: Equals compares it, and the
	// runtime extern table mangles field accessor and constructor names by
	// it. The actual layout is owned by the runtime collaborator.
	ClassName string
}

// AsInt32 implements Type.
func (ObjectRefType) AsInt32() *Int32Type { return nil }

// AsFloat64 implements Type.
func (ObjectRefType) AsFloat64() *Float64Type { return nil }

// AsBool implements Type.
func (ObjectRefType) AsBool() *BoolType { return nil }

// AsVoid implements Type.
func (ObjectRefType) AsVoid() *VoidType { return nil }

// AsObjectRef implements Type.
func (t ObjectRefType) AsObjectRef() *ObjectRefType { return &t }

// AsArrayRef implements Type.
func (ObjectRefType) AsArrayRef() *ArrayRefType { return nil }

// AsFunction implements Type.
func (ObjectRefType) AsFunction() *FunctionType { return nil }

// Equals implements Type.
func (t ObjectRefType) Equals(other Type) bool {
	if o := other.AsObjectRef(); o != nil {
		return o.ClassName == t.ClassName
	}

	return false
}

func (t ObjectRefType) String() string {
	if t.ClassName == "" {
		return "ref(object)"
	}

	return "ref(object:" + t.ClassName + ")"
}

// ArrayRefType is a fat pointer (base, length) or runtime handle over
// elements of a single element Type, which must be one of int32, float64,
// bool, or a ref type (never another array, per the restricted subset).
type ArrayRefType struct {
	Elem Type
}

// AsInt32 implements Type.
func (ArrayRefType) AsInt32() *Int32Type { return nil }

// AsFloat64 implements Type.
func (ArrayRefType) AsFloat64() *Float64Type { return nil }

// AsBool implements Type.
func (ArrayRefType) AsBool() *BoolType { return nil }

// AsVoid implements Type.
func (ArrayRefType) AsVoid() *VoidType { return nil }

// AsObjectRef implements Type.
func (ArrayRefType) AsObjectRef() *ObjectRefType { return nil }

// AsArrayRef implements Type.
func (t ArrayRefType) AsArrayRef() *ArrayRefType { return &t }

// AsFunction implements Type.
func (ArrayRefType) AsFunction() *FunctionType { return nil }

// Equals implements Type.
func (t ArrayRefType) Equals(other Type) bool {
	if o := other.AsArrayRef(); o != nil {
		return t.Elem.Equals(o.Elem)
	}

	return false
}

func (t ArrayRefType) String() string { return "ref(array<" + t.Elem.String() + ">)" }

// FunctionType is a symbol plus signature; first-class only in limited
// positions (callee of a Call expression, or a parameter/return of
// FunctionType itself is not permitted since closures do not escape their
// defining activation).
type FunctionType struct {
	Params []Type
	Result Type
}

// AsInt32 implements Type.
func (FunctionType) AsInt32() *Int32Type { return nil }

// AsFloat64 implements Type.
func (FunctionType) AsFloat64() *Float64Type { return nil }

// AsBool implements Type.
func (FunctionType) AsBool() *BoolType { return nil }

// AsVoid implements Type.
func (FunctionType) AsVoid() *VoidType { return nil }

// AsObjectRef implements Type.
func (FunctionType) AsObjectRef() *ObjectRefType { return nil }

// AsArrayRef implements Type.
func (FunctionType) AsArrayRef() *ArrayRefType { return nil }

// AsFunction implements Type.
func (t FunctionType) AsFunction() *FunctionType { return &t }

// Equals implements Type.
func (t FunctionType) Equals(other Type) bool {
	o := other.AsFunction()
	if o == nil || len(o.Params) != len(t.Params) || !t.Result.Equals(o.Result) {
		return false
	}

	for i, p := range t.Params {
		if !p.Equals(o.Params[i]) {
			return false
		}
	}

	return true
}

func (t FunctionType) String() string {
	s := "function("

	for i, p := range t.Params {
		if i != 0 {
			s += ", "
		}

		s += p.String()
	}

	return s + ") -> " + t.Result.String()
}

// IsIntLike determines whether t is the int32 type.  Per the type-resolver
// contract, int_like is a subset of number_like and callers must test
// IsIntLike before IsNumberLike.
func IsIntLike(t Type) bool {
	return t.AsInt32() != nil
}

// IsNumberLike determines whether t is int32 or float64.  int_like is a
// subset of number_like: an int32 expression is also number-like.
func IsNumberLike(t Type) bool {
	return t.AsInt32() != nil || t.AsFloat64() != nil
}

// IsBool determines whether t is the bool type.
func IsBool(t Type) bool {
	return t.AsBool() != nil
}

// IsRef determines whether t is an object or array reference.
func IsRef(t Type) bool {
	return t.AsObjectRef() != nil || t.AsArrayRef() != nil
}
