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
)

// generateLiteral implements spec.md §4.4.4. Integer, float, and boolean
// literals materialize directly as SSA constants; a string literal becomes
// a ConstString instruction whose payload is interned in the module's
// string pool. No runtime helper call is emitted for it.
func generateLiteral(c *Context, node ast.Node) (Value, error) {
	lit := node.(*ast.Literal)

	switch lit.Kind {
	case ast.LiteralInt:
		return RValue{Val: c.Builder.Int32(lit.Int), Typ: lang.Int32Type{}}, nil
	case ast.LiteralFloat:
		return RValue{Val: c.Builder.Float64(lit.Float), Typ: lang.Float64Type{}}, nil
	case ast.LiteralBool:
		return RValue{Val: c.Builder.Bool(lit.Bool), Typ: lang.BoolType{}}, nil
	case ast.LiteralString:
		typ := lang.ObjectRefType{ClassName: "String"}
		return RValue{Val: c.Builder.ConstString(lit.String), Typ: typ}, nil
	default:
		return nil, &TypeMismatchError{At: c.spanOf(node)}
	}
}

// isZeroIntLiteral reports whether node is the literal integer constant 0,
// the precise detection spec.md §4.4.1 requires for the `| 0` truncation
// idiom: "right operand is a literal integer constant whose value is
// zero" — not merely a value that happens to evaluate to zero at runtime.
func isZeroIntLiteral(node ast.Expr) bool {
	lit, ok := node.(*ast.Literal)
	return ok && lit.Kind == ast.LiteralInt && lit.Int == 0
}
