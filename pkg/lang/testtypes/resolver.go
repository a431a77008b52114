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

// Package testtypes provides a minimal, map-backed ast.TypeResolver for
// tests that exercise package codegen without a real front-end type
// checker attached (spec.md §6's resolver is explicitly out of scope for
// this repository).
package testtypes

import "github.com/speedyc-lang/speedyc/pkg/lang"
import "github.com/speedyc-lang/speedyc/pkg/lang/ast"

// Resolver is a fake ast.TypeResolver keyed by node pointer identity and by
// symbol, populated directly by a test fixture rather than by running an
// actual checker.
type Resolver struct {
	Types      map[ast.Node]lang.Type
	Symbols    map[ast.Node]lang.Symbol
	Signatures map[ast.Node]lang.Signature
}

// New constructs an empty Resolver ready for a test to populate.
func New() *Resolver {
	return &Resolver{
		Types:      make(map[ast.Node]lang.Type),
		Symbols:    make(map[ast.Node]lang.Symbol),
		Signatures: make(map[ast.Node]lang.Signature),
	}
}

// TypeOf implements ast.TypeResolver.
func (r *Resolver) TypeOf(node ast.Node) lang.Type {
	return r.Types[node]
}

// IsIntLike implements ast.TypeResolver.
func (r *Resolver) IsIntLike(t lang.Type) bool { return lang.IsIntLike(t) }

// IsNumberLike implements ast.TypeResolver.
func (r *Resolver) IsNumberLike(t lang.Type) bool { return lang.IsNumberLike(t) }

// IsBool implements ast.TypeResolver.
func (r *Resolver) IsBool(t lang.Type) bool { return lang.IsBool(t) }

// IsRef implements ast.TypeResolver.
func (r *Resolver) IsRef(t lang.Type) bool { return lang.IsRef(t) }

// SymbolOf implements ast.TypeResolver.
func (r *Resolver) SymbolOf(node ast.Node) lang.Symbol {
	return r.Symbols[node]
}

// SignatureOf implements ast.TypeResolver.
func (r *Resolver) SignatureOf(node ast.Node) lang.Signature {
	return r.Signatures[node]
}
