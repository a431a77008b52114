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
	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// generateVarDecl allocates a stack slot for sym in the current scope
// (spec.md §4.4.7). A declaration with no initializer gets the
// language-defined zero for its type.
func generateVarDecl(c *Context, node ast.Node) (Value, error) {
	decl := node.(*ast.VarDeclStmt)

	slot := c.Builder.Alloca(decl.Type)
	lvalue := LValue{Slot: slot, Typ: decl.Type}

	c.Define(decl.Symbol, lvalue)

	if decl.Init == nil {
		c.Builder.Store(slot, zeroValue(c, decl.Type))
		return nil, nil
	}

	init, err := c.Generate(decl.Init)
	if err != nil {
		return nil, err
	}

	coerced, err := coerceToDeclaredType(c, decl, init)
	if err != nil {
		return nil, err
	}

	c.Builder.Store(slot, coerced)

	return nil, nil
}

// coerceToDeclaredType widens an int32 initializer into a float64 slot;
// any other mismatch is TypeMismatch (spec.md §4.4's implicit-promotion
// rule, shared with argument coercion in gen_call.go).
func coerceToDeclaredType(c *Context, decl *ast.VarDeclStmt, init Value) (ssa.Value, error) {
	have := init.Type()
	if have.Equals(decl.Type) {
		return init.AsRValue(c), nil
	}

	if lang.IsIntLike(have) && lang.IsNumberLike(decl.Type) && !lang.IsIntLike(decl.Type) {
		return c.Builder.ExtendInt32ToFloat(init.AsRValue(c)), nil
	}

	return 0, &TypeMismatchError{Expected: decl.Type, Actual: have, At: c.spanOf(decl.Init)}
}

// zeroValue materializes the language-defined zero for typ: 0, 0.0, false,
// or a null reference.
func zeroValue(c *Context, typ lang.Type) ssa.Value {
	switch {
	case lang.IsIntLike(typ):
		return c.Builder.Int32(0)
	case typ.AsFloat64() != nil:
		return c.Builder.Float64(0)
	case lang.IsBool(typ):
		return c.Builder.Bool(false)
	default:
		// ref(object)/ref(array)/function: the zero ssa.Value id (never
		// assigned by any real instruction) stands in for a null
		// reference, matching the "zero Value is never valid" comment on
		// ssa.Value except here it is the intentional null sentinel rather
		// than a bug.
		return ssa.Value(0)
	}
}
