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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedyc-lang/speedyc/pkg/lang"
	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

func TestTernaryMergesBothArmsWithPhi(t *testing.T) {
	flag := lang.NewSymbol(1, "flag")

	decl := &ast.FuncDecl{
		Name:      "pick",
		Symbol:    lang.NewSymbol(2, "pick"),
		Params:    []ast.Param{{Symbol: flag, Type: lang.BoolType{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.TernaryExpr{
				Cond:      identifier(flag),
				Then:      &ast.Literal{Kind: ast.LiteralInt, Int: 1},
				Otherwise: &ast.Literal{Kind: ast.LiteralInt, Int: 2},
			}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
	assert.Contains(t, ssa.Text(mod), "phi")
}

func TestLogicalAndShortCircuitsRightOperand(t *testing.T) {
	a := lang.NewSymbol(1, "a")
	b := lang.NewSymbol(2, "b")

	decl := &ast.FuncDecl{
		Name:      "both",
		Symbol:    lang.NewSymbol(3, "both"),
		Params:    []ast.Param{{Symbol: a, Type: lang.BoolType{}}, {Symbol: b, Type: lang.BoolType{}}},
		Result:    lang.BoolType{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.LogicalExpr{Op: ast.OpLogicalAnd, Left: identifier(a), Right: identifier(b)}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	_, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
}

func TestUnaryNegateAndBitNot(t *testing.T) {
	x := lang.NewSymbol(1, "x")

	decl := &ast.FuncDecl{
		Name:      "flipSigns",
		Symbol:    lang.NewSymbol(2, "flipSigns"),
		Params:    []ast.Param{{Symbol: x, Type: lang.Int32Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.UnaryExpr{
				Op: ast.OpBitNot,
				Operand: &ast.UnaryExpr{Op: ast.OpUnaryNeg, Operand: identifier(x)},
			}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	_, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
}

func TestPrefixIncrementOnParameterSlot(t *testing.T) {
	x := lang.NewSymbol(1, "x")

	decl := &ast.FuncDecl{
		Name:      "bump",
		Symbol:    lang.NewSymbol(2, "bump"),
		Params:    []ast.Param{{Symbol: x, Type: lang.Int32Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.UnaryExpr{Op: ast.OpIncrement, Operand: identifier(x), Prefix: true}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	_, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
}

// TestBitOrZeroIdiomTruncatesFloatToInt32 exercises the "`x | 0`"
// float-truncation idiom gen_binary.go special-cases ahead of ordinary
// bitwise-or dispatch.
func TestBitOrZeroIdiomTruncatesFloatToInt32(t *testing.T) {
	x := lang.NewSymbol(1, "x")

	decl := &ast.FuncDecl{
		Name:      "truncate",
		Symbol:    lang.NewSymbol(2, "truncate"),
		Params:    []ast.Param{{Symbol: x, Type: lang.Float64Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.BinaryExpr{
				Op: ast.OpBitOr, Left: identifier(x), Right: &ast.Literal{Kind: ast.LiteralInt, Int: 0},
			}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
	assert.Contains(t, ssa.Text(mod), "trunc_f64_i32")
}

func TestBitOrOnTwoIntOperandsIsOrdinaryBitwiseOr(t *testing.T) {
	a := lang.NewSymbol(1, "a")
	b := lang.NewSymbol(2, "b")

	decl := &ast.FuncDecl{
		Name:      "combine",
		Symbol:    lang.NewSymbol(3, "combine"),
		Params:    []ast.Param{{Symbol: a, Type: lang.Int32Type{}}, {Symbol: b, Type: lang.Int32Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ReturnStmt{Value: &ast.BinaryExpr{Op: ast.OpBitOr, Left: identifier(a), Right: identifier(b)}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
	assert.NotContains(t, ssa.Text(mod), "trunc_f64_i32")
}

// TestBitOrAssignZeroIdiomTruncatesAndStoresBack is the compound-assignment
// sibling of TestBitOrZeroIdiomTruncatesFloatToInt32: `x |= 0` truncates the
// same way `x | 0` does, via ArithmeticKind stripping the "Assign" suffix
// before the idiom check in generateBinary, but additionally stores the
// result back into x, since IsAssignment is true for OpBitOrAssign.
func TestBitOrAssignZeroIdiomTruncatesAndStoresBack(t *testing.T) {
	x := lang.NewSymbol(1, "x")

	decl := &ast.FuncDecl{
		Name:      "truncateInPlace",
		Symbol:    lang.NewSymbol(2, "truncateInPlace"),
		Params:    []ast.Param{{Symbol: x, Type: lang.Float64Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ExprStmt{Expr: &ast.BinaryExpr{
				Op: ast.OpBitOrAssign, Left: identifier(x), Right: &ast.Literal{Kind: ast.LiteralInt, Int: 0},
			}},
			&ast.ReturnStmt{Value: &ast.Literal{Kind: ast.LiteralInt, Int: 0}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)

	text := ssa.Text(mod)
	assert.Contains(t, text, "trunc_f64_i32", "x |= 0 truncates the same as the pure x | 0 idiom")
	// Every parameter is stored into its slot once at function entry
	// (compileFunctionBody); the compound-assignment form adds a second
	// store writing the truncated result back into x.
	assert.Equal(t, 2, strings.Count(text, "store"), "x |= 0 must store back into x in addition to its entry-slot store")
}

// TestBitOrWithoutAssignDoesNotStoreBack pins the other half of the
// boundary: the pure form, even used as a statement and discarded, never
// writes back into its left operand.
func TestBitOrWithoutAssignDoesNotStoreBack(t *testing.T) {
	x := lang.NewSymbol(1, "x")

	decl := &ast.FuncDecl{
		Name:      "discard",
		Symbol:    lang.NewSymbol(2, "discard"),
		Params:    []ast.Param{{Symbol: x, Type: lang.Float64Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.ExprStmt{Expr: &ast.BinaryExpr{
				Op: ast.OpBitOr, Left: identifier(x), Right: &ast.Literal{Kind: ast.LiteralInt, Int: 0},
			}},
			&ast.ReturnStmt{Value: &ast.Literal{Kind: ast.LiteralInt, Int: 0}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)

	text := ssa.Text(mod)
	assert.Contains(t, text, "trunc_f64_i32")
	// Only the entry-slot store from compileFunctionBody's parameter binding
	// should appear; the discarded pure x | 0 value is never stored back.
	assert.Equal(t, 1, strings.Count(text, "store"), "the pure x | 0 form computes a value but never writes back into x")
}
