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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedyc-lang/speedyc/pkg/lang"
	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// useSpeedy builds the leading directive statement every compilation
// candidate's body must start with.
func useSpeedy() ast.Stmt {
	return &ast.ExprStmt{Expr: &ast.Literal{Kind: ast.LiteralString, String: ast.CompilationDirective}}
}

func identifier(sym lang.Symbol) *ast.Identifier {
	return &ast.Identifier{Symbol: sym}
}

func TestCompileAllLowersSimpleArithmeticFunction(t *testing.T) {
	a := lang.NewSymbol(1, "a")
	b := lang.NewSymbol(2, "b")

	decl := &ast.FuncDecl{
		Name:   "add",
		Symbol: lang.NewSymbol(3, "add"),
		Params: []ast.Param{
			{Symbol: a, Type: lang.Int32Type{}},
			{Symbol: b, Type: lang.Int32Type{}},
		},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.BinaryExpr{Op: ast.OpAdd, Left: identifier(a), Right: identifier(b)}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)

	require.Empty(t, diagnostics)
	require.Len(t, mod.Functions(), 1)

	fn := mod.Functions()[0]
	assert.Equal(t, "add", fn.Name)
	assert.True(t, fn.Exported)
}

func TestCompileAllSkipsUnannotatedFunctions(t *testing.T) {
	decl := &ast.FuncDecl{
		Name:      "notCompiled",
		Symbol:    lang.NewSymbol(1, "notCompiled"),
		Result:    lang.VoidType{},
		Annotated: false,
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Literal{Kind: ast.LiteralInt, Int: 0}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)

	assert.Empty(t, diagnostics)
	assert.Empty(t, mod.Functions(), "a function whose body doesn't open with the directive is never lowered")
}

func TestCompileAllResolvesCallsToSiblingsRegardlessOfOrder(t *testing.T) {
	helperSym := lang.NewSymbol(1, "helper")
	helper := &ast.FuncDecl{
		Name:      "helper",
		Symbol:    helperSym,
		Result:    lang.Int32Type{},
		Annotated: false,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.Literal{Kind: ast.LiteralInt, Int: 42}},
		}},
	}

	caller := &ast.FuncDecl{
		Name:      "caller",
		Symbol:    lang.NewSymbol(2, "caller"),
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.CallExpr{Callee: identifier(helperSym)}},
		}},
	}

	// caller appears before helper in program order, exercising the
	// Module Assembler's two-pass symbol definition.
	prog := &ast.Program{Functions: []*ast.FuncDecl{caller, helper}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)

	require.Empty(t, diagnostics)
	require.Len(t, mod.Functions(), 2)

	// helper carries Annotated: false on its untrusted wire flag, but its
	// body genuinely opens with the directive, so it IS compiled and must
	// still be exported: Exported tracks the directive, never the flag.
	var helperFn *ssa.Function
	for _, fn := range mod.Functions() {
		if fn.Name == "helper" {
			helperFn = fn
		}
	}

	require.NotNil(t, helperFn)
	assert.True(t, helperFn.Exported, "a directive-compiled function must be exported regardless of its untrusted Annotated flag")
}

func TestCompileAllReportsMalformedFunctionWithoutAbortingBatch(t *testing.T) {
	broken := &ast.FuncDecl{
		Name:      "broken",
		Symbol:    lang.NewSymbol(1, "broken"),
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			// No return statement: a non-void function with no value on
			// any path is malformed.
		}},
	}

	ok := &ast.FuncDecl{
		Name:      "ok",
		Symbol:    lang.NewSymbol(2, "ok"),
		Result:    lang.VoidType{},
		Annotated: true,
		Body:      &ast.Block{Stmts: []ast.Stmt{useSpeedy()}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{broken, ok}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)

	require.Len(t, diagnostics, 1)
	_, isMalformed := diagnostics[0].(*MalformedFunctionError)
	assert.True(t, isMalformed)

	// The second, well-formed function still compiles despite the first's
	// failure.
	require.Len(t, mod.Functions(), 1)
	assert.Equal(t, "ok", mod.Functions()[0].Name)
}

func TestCompileAllLowersMathCallAndDeclaresExtern(t *testing.T) {
	decl := &ast.FuncDecl{
		Name:      "useMath",
		Symbol:    lang.NewSymbol(1, "useMath"),
		Result:    lang.Float64Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.CallExpr{
				Callee: &ast.PropertyAccess{
					Object: identifier(lang.NewSymbol(2, "Math")),
					Name:   "sqrt",
				},
				Args: []ast.Expr{&ast.Literal{Kind: ast.LiteralFloat, Float: 9}},
			}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)

	require.Empty(t, diagnostics)
	require.Len(t, mod.Externs(), 1)
	assert.Equal(t, "rt_math_sqrt", mod.Externs()[0].Name)
}
