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

// TypeResolver is the boundary to the front-end type checker (out of scope
// per spec.md §1). It is assumed to provide fully-typed nodes with resolved
// symbols; this is everything the codegen core needs to query of it.
type TypeResolver interface {
	// TypeOf returns the static type the checker assigned to node.
	TypeOf(node Node) lang.Type
	// IsIntLike reports whether t is the int32 type. Callers must test this
	// before IsNumberLike, since int_like is a strict subset of
	// number_like.
	IsIntLike(t lang.Type) bool
	// IsNumberLike reports whether t is int32 or float64.
	IsNumberLike(t lang.Type) bool
	// IsBool reports whether t is the bool type.
	IsBool(t lang.Type) bool
	// IsRef reports whether t is an object or array reference type.
	IsRef(t lang.Type) bool
	// SymbolOf returns the resolved symbol identity for a reference node
	// (an Identifier, or the name position of a FuncDecl/VarDeclStmt).
	SymbolOf(node Node) lang.Symbol
	// SignatureOf returns the resolved call signature for a callable node
	// (a FuncDecl, or a function-typed expression).
	SignatureOf(node Node) lang.Signature
}
