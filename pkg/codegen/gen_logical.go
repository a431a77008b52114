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

// generateLogical lowers short-circuiting "&&"/"||" as control flow rather
// than an eager boolean op, since the source language's semantics require
// the right operand to go unevaluated when the left already decides the
// result (SPEC_FULL.md §4.4, supplemented feature). Uses the same
// merge-block-plus-phi shape as gen_ternary.go: a short-circuit block
// contributing the decided constant, and a right-operand block
// contributing its evaluated value.
func generateLogical(c *Context, node ast.Node) (Value, error) {
	log := node.(*ast.LogicalExpr)

	left, err := c.Generate(log.Left)
	if err != nil {
		return nil, err
	}

	leftVal := left.AsRValue(c)

	shortCircuit := c.Builder.NewBlock()
	rightBlock := c.Builder.NewBlock()
	mergeBlock := c.Builder.NewBlock()

	shortCircuitValue := log.Op == ast.OpLogicalOr

	if log.Op == ast.OpLogicalAnd {
		c.Builder.CondBr(leftVal, rightBlock, shortCircuit)
	} else {
		c.Builder.CondBr(leftVal, shortCircuit, rightBlock)
	}

	c.Builder.SetInsertionPoint(shortCircuit)
	c.Builder.Br(mergeBlock)

	c.Builder.SetInsertionPoint(rightBlock)

	right, err := c.Generate(log.Right)
	if err != nil {
		return nil, err
	}

	rightVal := right.AsRValue(c)
	rightEnd := c.Builder.CurrentBlock()
	c.Builder.Br(mergeBlock)

	c.Builder.SetInsertionPoint(mergeBlock)

	phi := c.Builder.Phi(lang.BoolType{}, []ssa.Incoming{
		{Value: c.Builder.Bool(shortCircuitValue), Block: shortCircuit},
		{Value: rightVal, Block: rightEnd},
	})

	return RValue{Val: phi, Typ: lang.BoolType{}}, nil
}
