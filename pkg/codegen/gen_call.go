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
	"github.com/speedyc-lang/speedyc/pkg/runtime/extern"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// mathExterns maps the "Math.<name>" builtin namespace (SPEC_FULL.md's
// supplemented runtime-library wiring) to the rt_math_* extern it lowers
// to. Recognized directly in generateCall rather than through
// generatePropertyAccess, since Math is not an object reference the
// runtime allocates — it names a fixed set of free functions.
var mathExterns = map[string]func() ssa.Extern{
	"sqrt":  extern.Sqrt,
	"floor": extern.Floor,
	"ceil":  extern.Ceil,
	"trunc": extern.Trunc,
	"pow":   extern.Pow,
}

// generateMathCall recognizes a call whose callee is `Math.<name>` and
// lowers it directly to the matching rt_math_* extern, or returns ok=false
// if call's callee doesn't match this shape.
func generateMathCall(c *Context, call *ast.CallExpr) (Value, bool, error) {
	pa, ok := call.Callee.(*ast.PropertyAccess)
	if !ok {
		return nil, false, nil
	}

	ident, ok := pa.Object.(*ast.Identifier)
	if !ok || ident.Symbol.Name() != "Math" {
		return nil, false, nil
	}

	mk, ok := mathExterns[pa.Name]
	if !ok {
		return nil, false, nil
	}

	args := make([]ssa.Value, len(call.Args))

	for i, argNode := range call.Args {
		arg, err := c.Generate(argNode)
		if err != nil {
			return nil, true, err
		}

		coerced, err := coerceArgument(c, argNode, arg, lang.Float64Type{})
		if err != nil {
			return nil, true, err
		}

		args[i] = coerced
	}

	e := mk()

	v, err := callExtern(c, e, args, call)
	if err != nil {
		return nil, true, err
	}

	return RValue{Val: v, Typ: e.Result}, true, nil
}

// generateCall implements spec.md §4.4.5: the callee is evaluated first,
// then arguments left to right, each coerced to the declared parameter
// type before the call is emitted.
func generateCall(c *Context, node ast.Node) (Value, error) {
	call := node.(*ast.CallExpr)

	if v, ok, err := generateMathCall(c, call); ok {
		return v, err
	}

	callee, err := c.Generate(call.Callee)
	if err != nil {
		return nil, err
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &TypeMismatchError{Expected: lang.FunctionType{}, Actual: callee.Type(), At: c.spanOf(call.Callee)}
	}

	sig := fn.Signature()

	args := make([]ssa.Value, len(call.Args))

	for i, argNode := range call.Args {
		arg, err := c.Generate(argNode)
		if err != nil {
			return nil, err
		}

		var want lang.Type
		if i < len(sig.Params) {
			want = sig.Params[i]
		} else if sig.Variadic && len(sig.Params) > 0 {
			want = sig.Params[len(sig.Params)-1]
		} else {
			want = arg.Type()
		}

		coerced, err := coerceArgument(c, argNode, arg, want)
		if err != nil {
			return nil, err
		}

		args[i] = coerced
	}

	result := fn.EmitCall(c, args)

	return RValue{Val: result, Typ: sig.Result}, nil
}

// coerceArgument applies the language's implicit-widening rule (int32 ->
// float64) and rejects narrowing unless the source expression is the `|0`
// idiom already detected in gen_binary.go — a bare float argument passed
// to an int32 parameter is a TypeMismatch, not a silent truncation.
func coerceArgument(c *Context, argNode ast.Expr, arg Value, want lang.Type) (ssa.Value, error) {
	have := arg.Type()
	if have.Equals(want) {
		return arg.AsRValue(c), nil
	}

	if lang.IsIntLike(have) && lang.IsNumberLike(want) && !lang.IsIntLike(want) {
		return c.Builder.ExtendInt32ToFloat(arg.AsRValue(c)), nil
	}

	return nil, &TypeMismatchError{Expected: want, Actual: have, At: c.spanOf(argNode)}
}
