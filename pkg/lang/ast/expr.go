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
package ast

import "github.com/speedyc-lang/speedyc/pkg/lang"

// LiteralKind distinguishes the concrete form of a Literal node; exactly one
// of the corresponding fields on Literal is meaningful for a given kind.
type LiteralKind uint8

const (
	// LiteralInt is a literal integer constant (e.g. "42").
	LiteralInt LiteralKind = iota
	// LiteralFloat is a literal floating-point constant (e.g. "3.14").
	LiteralFloat
	// LiteralBool is "true" or "false".
	LiteralBool
	// LiteralString is a double- or single-quoted string constant, lowered
	// to a ConstString instruction interned in the module's string pool.
	LiteralString
)

// Literal is a constant value appearing directly in source.
type Literal struct {
	Kind   LiteralKind
	Int    int32
	Float  float64
	Bool   bool
	String string
}

// Category implements Node.
func (*Literal) Category() Category { return CategoryLiteral }
func (*Literal) isExpr()            {}

// Identifier is a reference to a previously-declared variable, parameter, or
// function, resolved by the front end to a concrete Symbol.
type Identifier struct {
	Symbol lang.Symbol
}

// Category implements Node.
func (*Identifier) Category() Category { return CategoryIdentifier }
func (*Identifier) isExpr()            {}

// BinaryExpr is any of spec.md §4.4.1's binary operator forms, including
// compound assignment.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Category implements Node.
func (*BinaryExpr) Category() Category { return CategoryBinary }
func (*BinaryExpr) isExpr()            {}

// UnaryExpr is any of spec.md §4.4.2's unary operator forms.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	// Prefix distinguishes "++x" (true) from "x++" (false); only meaningful
	// for OpIncrement/OpDecrement.
	Prefix bool
}

// Category implements Node.
func (*UnaryExpr) Category() Category { return CategoryUnary }
func (*UnaryExpr) isExpr()            {}

// TernaryExpr is "cond ? then : otherwise", the expression-level form of an
// if/else that yields a Value via a phi (SPEC_FULL.md §4.4, "Supplemented").
type TernaryExpr struct {
	Cond      Expr
	Then      Expr
	Otherwise Expr
}

// Category implements Node.
func (*TernaryExpr) Category() Category { return CategoryTernary }
func (*TernaryExpr) isExpr()            {}

// LogicalExpr is "a && b" or "a || b", lowered with short-circuit control
// flow (SPEC_FULL.md §4.4, "Supplemented").
type LogicalExpr struct {
	Op    LogicalOp
	Left  Expr
	Right Expr
}

// Category implements Node.
func (*LogicalExpr) Category() Category { return CategoryLogical }
func (*LogicalExpr) isExpr()            {}

// CallExpr invokes a callee (a declared function or a function-valued
// parameter) with the given arguments, evaluated left to right.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

// Category implements Node.
func (*CallExpr) Category() Category { return CategoryCall }
func (*CallExpr) isExpr()            {}

// NewExpr allocates a heap object of a given class via the runtime
// collaborator, marshalling its constructor arguments.
type NewExpr struct {
	ClassName string
	Type      lang.ObjectRefType
	Args      []Expr
}

// Category implements Node.
func (*NewExpr) Category() Category { return CategoryNew }
func (*NewExpr) isExpr()            {}

// PropertyAccess reads a named field off an object reference, delegating to
// a runtime helper.
type PropertyAccess struct {
	Object Expr
	Name   string
	// FieldType is the statically-resolved type of the named field, as
	// determined by the (external) front-end type checker.
	FieldType lang.Type
}

// Category implements Node.
func (*PropertyAccess) Category() Category { return CategoryPropertyAccess }
func (*PropertyAccess) isExpr()            {}

// ElementAccess reads an indexed element off an array reference, delegating
// to a bounds-checked runtime helper.
type ElementAccess struct {
	Array Expr
	Index Expr
}

// Category implements Node.
func (*ElementAccess) Category() Category { return CategoryElementAccess }
func (*ElementAccess) isExpr()            {}

// ArrayLiteral constructs a fixed-size array of homogeneously-typed
// elements.
type ArrayLiteral struct {
	Elem     lang.Type
	Elements []Expr
}

// Category implements Node.
func (*ArrayLiteral) Category() Category { return CategoryArrayLiteral }
func (*ArrayLiteral) isExpr()            {}

// ObjectProperty is a single "name: value" pair within an ObjectLiteral.
type ObjectProperty struct {
	Name  string
	Value Expr
}

// ObjectLiteral constructs a heap object with the given named properties.
type ObjectLiteral struct {
	ClassName  string
	Type       lang.ObjectRefType
	Properties []ObjectProperty
}

// Category implements Node.
func (*ObjectLiteral) Category() Category { return CategoryObjectLiteral }
func (*ObjectLiteral) isExpr()            {}
