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
	"fmt"

	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
	"github.com/speedyc-lang/speedyc/pkg/source"
)

// Diagnostic is the common shape of every codegen error: a message plus the
// source span of the node that triggered it. Every concrete error type below
// implements it.
type Diagnostic interface {
	error
	Span() source.Span
}

// UnsupportedCategoryError fires when the dispatcher has no generator
// registered for a node's category. Since the category set is closed and
// fixed by package ast, this indicates the dispatcher table is incomplete,
// not a malformed input.
type UnsupportedCategoryError struct {
	Category ast.Category
	At       source.Span
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("unsupported syntactic category %s", e.Category)
}

// Span implements Diagnostic.
func (e *UnsupportedCategoryError) Span() source.Span { return e.At }

// UnsupportedBinaryOperatorError fires when a binary operator's operand
// types fall outside the table in SPEC_FULL.md §4.4.1.
type UnsupportedBinaryOperatorError struct {
	Op   ast.BinaryOp
	Left interface{ String() string }
	At   source.Span
}

func (e *UnsupportedBinaryOperatorError) Error() string {
	return fmt.Sprintf("operator %s not supported for operand type %s", e.Op, e.Left)
}

// Span implements Diagnostic.
func (e *UnsupportedBinaryOperatorError) Span() source.Span { return e.At }

// UnsupportedUnaryOperatorError is the unary-operator analogue.
type UnsupportedUnaryOperatorError struct {
	Op      ast.UnaryOp
	Operand interface{ String() string }
	At      source.Span
}

func (e *UnsupportedUnaryOperatorError) Error() string {
	return fmt.Sprintf("operator %s not supported for operand type %s", e.Op, e.Operand)
}

// Span implements Diagnostic.
func (e *UnsupportedUnaryOperatorError) Span() source.Span { return e.At }

// TypeMismatchError fires on assignment or argument coercion between
// incompatible types.
type TypeMismatchError struct {
	Expected interface{ String() string }
	Actual   interface{ String() string }
	At       source.Span
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Span implements Diagnostic.
func (e *TypeMismatchError) Span() source.Span { return e.At }

// ReadOnlyTargetError fires when assignment targets a non-assignable Value.
type ReadOnlyTargetError struct {
	At source.Span
}

func (e *ReadOnlyTargetError) Error() string { return "assignment target is not assignable" }

// Span implements Diagnostic.
func (e *ReadOnlyTargetError) Span() source.Span { return e.At }

// UnresolvedSymbolError fires when an identifier has no scope-chain slot.
// This indicates an upstream type-resolver bug: every identifier the
// checker accepted must have been declared somewhere visible.
type UnresolvedSymbolError struct {
	Name string
	At   source.Span
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("unresolved symbol %q", e.Name)
}

// Span implements Diagnostic.
func (e *UnresolvedSymbolError) Span() source.Span { return e.At }

// UnstructuredControlFlowError fires when break/continue/return appears
// outside any enclosing construct that could receive it.
type UnstructuredControlFlowError struct {
	Keyword string
	At      source.Span
}

func (e *UnstructuredControlFlowError) Error() string {
	return fmt.Sprintf("%s outside enclosing loop, switch, or function", e.Keyword)
}

// Span implements Diagnostic.
func (e *UnstructuredControlFlowError) Span() source.Span { return e.At }

// MalformedFunctionError wraps a rejection from the SSA verifier.
type MalformedFunctionError struct {
	Function string
	Reason   string
	At       source.Span
}

func (e *MalformedFunctionError) Error() string {
	return fmt.Sprintf("function %q malformed: %s", e.Function, e.Reason)
}

// Span implements Diagnostic.
func (e *MalformedFunctionError) Span() source.Span { return e.At }

// ExternSignatureConflictError fires when two references to the same
// mangled extern name disagree on signature.
type ExternSignatureConflictError struct {
	Name string
	At   source.Span
}

func (e *ExternSignatureConflictError) Error() string {
	return fmt.Sprintf("extern %q referenced with conflicting signatures", e.Name)
}

// Span implements Diagnostic.
func (e *ExternSignatureConflictError) Span() source.Span { return e.At }
