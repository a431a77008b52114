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

// generateBinary implements the emission table of spec.md §4.4.1. Left is
// always evaluated before right. Dispatch tests int_like(tL) before
// number_like(tL), since int_like is a subset of number_like (spec.md §9
// "Global state" neighbor note, pkg/lang's IsIntLike doc comment).
func generateBinary(c *Context, node ast.Node) (Value, error) {
	bin := node.(*ast.BinaryExpr)

	left, err := c.Generate(bin.Left)
	if err != nil {
		return nil, err
	}

	kind := bin.Op.ArithmeticKind()

	// The `| 0` float-truncation idiom must be detected before the right
	// operand is evaluated as an ordinary expression: it is a syntactic
	// shape (bitwise-or against the literal constant 0), not a runtime
	// value comparison.
	if kind == ast.OpBitOr && isZeroIntLiteral(bin.Right) && lang.IsNumberLike(left.Type()) && !lang.IsIntLike(left.Type()) {
		v := c.Builder.TruncFloatToInt32(left.AsRValue(c))
		result := RValue{Val: v, Typ: lang.Int32Type{}}

		return finishBinary(c, bin, left, result)
	}

	right, err := c.Generate(bin.Right)
	if err != nil {
		return nil, err
	}

	if bin.Op.IsAssignment() && kind == ast.OpAssign {
		// Simple assignment performs no arithmetic; its result type is the
		// right operand's static type, preserving the source's latent bug
		// (spec.md §9, documented in DESIGN.md).
		return finishBinary(c, bin, left, RValue{Val: right.AsRValue(c), Typ: right.Type()})
	}

	result, err := emitArithmetic(c, bin, kind, left, right)
	if err != nil {
		return nil, err
	}

	return finishBinary(c, bin, left, result)
}

// emitArithmetic computes the operator/comparison step of the emission
// table, ignoring assignment; the caller handles storing the result back
// into an assignable left operand for compound-assignment forms.
func emitArithmetic(c *Context, bin *ast.BinaryExpr, kind ast.BinaryOp, left, right Value) (Value, error) {
	tL := left.Type()
	l, r := left.AsRValue(c), right.AsRValue(c)

	switch {
	case lang.IsBool(tL) && (kind == ast.OpStrictEq || kind == ast.OpStrictNe):
		return emitBoolCompare(c, kind, l, r), nil
	case lang.IsIntLike(tL):
		return emitIntArithmetic(c, bin, kind, l, r)
	case lang.IsNumberLike(tL):
		return emitFloatArithmetic(c, bin, kind, l, r)
	default:
		return nil, &UnsupportedBinaryOperatorError{Op: bin.Op, Left: tL, At: c.spanOf(bin)}
	}
}

func emitBoolCompare(c *Context, kind ast.BinaryOp, l, r ssa.Value) Value {
	// === on bool is "xor-not" (equal iff both operands agree); !== is
	// "xor" (spec.md §4.4.1 Bool column).
	x := c.Builder.BitXor(l, r)
	if kind == ast.OpStrictNe {
		return RValue{Val: x, Typ: lang.BoolType{}}
	}

	notX := c.Builder.ICmp(ssa.PredEQ, x, c.Builder.Int32(0))

	return RValue{Val: notX, Typ: lang.BoolType{}}
}

func emitIntArithmetic(c *Context, bin *ast.BinaryExpr, kind ast.BinaryOp, l, r ssa.Value) (Value, error) {
	b := c.Builder

	switch kind {
	case ast.OpAdd:
		return RValue{Val: b.IAdd(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpSub:
		return RValue{Val: b.ISub(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpMul:
		return RValue{Val: b.IMul(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpDiv:
		return RValue{Val: b.SDiv(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpMod:
		return RValue{Val: b.SRem(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpLt:
		return RValue{Val: b.ICmp(ssa.PredLT, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpGt:
		return RValue{Val: b.ICmp(ssa.PredGT, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpLe:
		return RValue{Val: b.ICmp(ssa.PredLE, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpGe:
		return RValue{Val: b.ICmp(ssa.PredGE, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpStrictEq:
		return RValue{Val: b.ICmp(ssa.PredEQ, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpStrictNe:
		return RValue{Val: b.ICmp(ssa.PredNE, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpBitOr:
		return RValue{Val: b.BitOr(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpBitAnd:
		return RValue{Val: b.BitAnd(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpBitXor:
		return RValue{Val: b.BitXor(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpShl:
		return RValue{Val: b.Shl(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpShr:
		return RValue{Val: b.Shr(l, r), Typ: lang.Int32Type{}}, nil
	case ast.OpUShr:
		return RValue{Val: b.UShr(l, r), Typ: lang.Int32Type{}}, nil
	default:
		return nil, &UnsupportedBinaryOperatorError{Op: bin.Op, Left: lang.Int32Type{}, At: c.spanOf(bin)}
	}
}

// emitFloatArithmetic handles the number_like (but not int_like) column.
// `&`/`^`/`<<`/`>>`/`>>>` have no float form and are UnsupportedBinaryOperator
// per the table's "error" cell.
func emitFloatArithmetic(c *Context, bin *ast.BinaryExpr, kind ast.BinaryOp, l, r ssa.Value) (Value, error) {
	b := c.Builder

	switch kind {
	case ast.OpAdd:
		return RValue{Val: b.FAdd(l, r), Typ: lang.Float64Type{}}, nil
	case ast.OpSub:
		return RValue{Val: b.FSub(l, r), Typ: lang.Float64Type{}}, nil
	case ast.OpMul:
		// Table cell reads "integer mul after promotion": both operands are
		// already number_like float64 operands at this point, so the
		// promoted multiply is a float multiply (DESIGN.md resolves the
		// table's wording as referring to operand promotion, not the
		// opcode).
		return RValue{Val: b.FMul(l, r), Typ: lang.Float64Type{}}, nil
	case ast.OpDiv:
		return RValue{Val: b.FDiv(l, r), Typ: lang.Float64Type{}}, nil
	case ast.OpMod:
		return RValue{Val: b.FRem(l, r), Typ: lang.Float64Type{}}, nil
	case ast.OpLt:
		return RValue{Val: b.FCmpOrdered(ssa.PredLT, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpGt:
		return RValue{Val: b.FCmpOrdered(ssa.PredGT, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpLe:
		return RValue{Val: b.FCmpOrdered(ssa.PredLE, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpGe:
		return RValue{Val: b.FCmpOrdered(ssa.PredGE, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpStrictEq:
		return RValue{Val: b.FCmpOrdered(ssa.PredEQ, l, r), Typ: lang.BoolType{}}, nil
	case ast.OpStrictNe:
		return RValue{Val: b.FCmpOrdered(ssa.PredNE, l, r), Typ: lang.BoolType{}}, nil
	default:
		return nil, &UnsupportedBinaryOperatorError{Op: bin.Op, Left: lang.Float64Type{}, At: c.spanOf(bin)}
	}
}

// finishBinary handles the assignment tail: if bin.Op assigns, left must be
// Assignable and receives result; the expression value is always result,
// never the loaded-back slot contents (spec.md §4.4.1). left is the Value
// already produced for bin.Left by the caller — re-evaluating it here would
// generate its side effects twice (e.g. an array-index subexpression).
func finishBinary(c *Context, bin *ast.BinaryExpr, left Value, result Value) (Value, error) {
	if !bin.Op.IsAssignment() {
		return result, nil
	}

	target, ok := left.(Assignable)
	if !ok {
		return nil, &ReadOnlyTargetError{At: c.spanOf(bin.Left)}
	}

	if err := target.Assign(c, result); err != nil {
		return nil, err
	}

	return result, nil
}
