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
)

// sumToN builds:
//
//	"use speedy"
//	let total int32 = 0
//	for (let i int32 = 0; i < n; i = i + 1) {
//	    if (i === 3) { continue; }
//	    if (i === 7) { break; }
//	    total += i
//	}
//	return total
//
// exercising for/if/break/continue/compound-assignment together, the shape
// the teacher's own branch-heavy fixtures (pkg/asm/compiler tests) favor
// over isolating each construct.
func sumToN(n lang.Symbol, total, i lang.Symbol) *ast.FuncDecl {
	return &ast.FuncDecl{
		Name:      "sumToN",
		Symbol:    lang.NewSymbol(100, "sumToN"),
		Params:    []ast.Param{{Symbol: n, Type: lang.Int32Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.VarDeclStmt{Symbol: total, Type: lang.Int32Type{}, Init: &ast.Literal{Kind: ast.LiteralInt, Int: 0}},
			&ast.ForStmt{
				Init: &ast.VarDeclStmt{Symbol: i, Type: lang.Int32Type{}, Init: &ast.Literal{Kind: ast.LiteralInt, Int: 0}},
				Cond: &ast.BinaryExpr{Op: ast.OpLt, Left: identifier(i), Right: identifier(n)},
				Post: &ast.ExprStmt{Expr: &ast.BinaryExpr{
					Op:   ast.OpAssign,
					Left: identifier(i),
					Right: &ast.BinaryExpr{
						Op: ast.OpAdd, Left: identifier(i), Right: &ast.Literal{Kind: ast.LiteralInt, Int: 1},
					},
				}},
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.IfStmt{
						Cond: &ast.BinaryExpr{Op: ast.OpStrictEq, Left: identifier(i), Right: &ast.Literal{Kind: ast.LiteralInt, Int: 3}},
						Then: &ast.Block{Stmts: []ast.Stmt{&ast.ContinueStmt{}}},
					},
					&ast.IfStmt{
						Cond: &ast.BinaryExpr{Op: ast.OpStrictEq, Left: identifier(i), Right: &ast.Literal{Kind: ast.LiteralInt, Int: 7}},
						Then: &ast.Block{Stmts: []ast.Stmt{&ast.BreakStmt{}}},
					},
					&ast.ExprStmt{Expr: &ast.BinaryExpr{
						Op:   ast.OpAddAssign,
						Left: identifier(total),
						Right: identifier(i),
					}},
				}},
			},
			&ast.ReturnStmt{Value: identifier(total)},
		}},
	}
}

func TestForLoopWithBreakContinueAndCompoundAssignVerifies(t *testing.T) {
	n := lang.NewSymbol(1, "n")
	total := lang.NewSymbol(2, "total")
	i := lang.NewSymbol(3, "i")

	prog := &ast.Program{Functions: []*ast.FuncDecl{sumToN(n, total, i)}}

	mod, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)

	require.Empty(t, diagnostics)
	require.Len(t, mod.Functions(), 1)
	assert.True(t, len(mod.Functions()[0].Blocks()) > 1, "a for-loop with nested ifs lowers to multiple basic blocks")
}

func TestWhileLoopVerifies(t *testing.T) {
	x := lang.NewSymbol(1, "x")

	decl := &ast.FuncDecl{
		Name:      "countDown",
		Symbol:    lang.NewSymbol(2, "countDown"),
		Params:    []ast.Param{{Symbol: x, Type: lang.Int32Type{}}},
		Result:    lang.VoidType{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.WhileStmt{
				Cond: &ast.BinaryExpr{Op: ast.OpGt, Left: identifier(x), Right: &ast.Literal{Kind: ast.LiteralInt, Int: 0}},
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{Expr: &ast.BinaryExpr{
						Op:   ast.OpSubAssign,
						Left: identifier(x),
						Right: &ast.Literal{Kind: ast.LiteralInt, Int: 1},
					}},
				}},
			},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	_, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
}

func TestSwitchWithFallthroughAndDefaultVerifies(t *testing.T) {
	disc := lang.NewSymbol(1, "disc")

	decl := &ast.FuncDecl{
		Name:      "classify",
		Symbol:    lang.NewSymbol(2, "classify"),
		Params:    []ast.Param{{Symbol: disc, Type: lang.Int32Type{}}},
		Result:    lang.Int32Type{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.SwitchStmt{
				Disc: identifier(disc),
				Cases: []ast.SwitchCase{
					{
						Value: &ast.Literal{Kind: ast.LiteralInt, Int: 1},
						Body:  []ast.Stmt{}, // falls through to the next arm
					},
					{
						Value: &ast.Literal{Kind: ast.LiteralInt, Int: 2},
						Body:  []ast.Stmt{&ast.ReturnStmt{Value: &ast.Literal{Kind: ast.LiteralInt, Int: 20}}},
					},
					{
						Value: nil,
						Body:  []ast.Stmt{&ast.ReturnStmt{Value: &ast.Literal{Kind: ast.LiteralInt, Int: -1}}},
					},
				},
			},
			&ast.ReturnStmt{Value: &ast.Literal{Kind: ast.LiteralInt, Int: 0}},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	_, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)
	require.Empty(t, diagnostics)
}

func TestBreakOutsideLoopOrSwitchIsUnstructuredControlFlow(t *testing.T) {
	decl := &ast.FuncDecl{
		Name:      "badBreak",
		Symbol:    lang.NewSymbol(1, "badBreak"),
		Result:    lang.VoidType{},
		Annotated: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			useSpeedy(),
			&ast.BreakStmt{},
		}},
	}

	prog := &ast.Program{Functions: []*ast.FuncDecl{decl}}

	_, diagnostics := CompileAll(context.Background(), prog, nil, nil, nil)

	require.Len(t, diagnostics, 1)
	_, ok := diagnostics[0].(*UnstructuredControlFlowError)
	assert.True(t, ok)
}
