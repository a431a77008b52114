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
package ssa

import "fmt"

// VerifyError reports a structural defect found in a Function by Verify. It
// carries no source span: by construction every VerifyError indicates a
// codegen bug, not a user-facing diagnostic, and the Function Compiler
// wraps it as a MalformedFunction before it ever reaches a caller.
type VerifyError struct {
	Function string
	Reason   string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("ssa: function %q: %s", e.Function, e.Reason)
}

// Verify checks the testable properties spec.md §8 requires of every
// compiled function:
//
//  1. every block ends in exactly one terminator (Br, CondBr, Return, or
//     Unreachable), and no instruction follows it;
//  2. every Br/CondBr target and every Phi incoming block refers to a block
//     that actually exists in the function;
//  3. every Phi has exactly one incoming value per predecessor reaching it
//     (approximated here as: an incoming entry for every block that
//     branches to the Phi's block).
func Verify(fn *Function) error {
	predecessors := computePredecessors(fn)

	for _, blk := range fn.blocks {
		if !blk.sealed {
			return &VerifyError{fn.Name, fmt.Sprintf("block %d has no terminator", blk.id)}
		}

		for i, v := range blk.instrs {
			def := fn.values[v-1]
			if isTerminator(def.op) && i != len(blk.instrs)-1 {
				return &VerifyError{fn.Name, fmt.Sprintf("block %d: instruction after terminator", blk.id)}
			}

			if err := verifyTargets(fn, blk.id, def); err != nil {
				return err
			}

			if def.op == opPhi {
				if err := verifyPhi(fn, blk.id, def, predecessors[blk.id]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func isTerminator(op opcode) bool {
	switch op {
	case opBr, opCondBr, opReturn, opUnreachable:
		return true
	default:
		return false
	}
}

func verifyTargets(fn *Function, at BlockID, def valueDef) error {
	for _, target := range def.blocks {
		if int(target) >= len(fn.blocks) {
			return &VerifyError{fn.Name, fmt.Sprintf("block %d: branch to unknown block %d", at, target)}
		}
	}

	return nil
}

func verifyPhi(fn *Function, at BlockID, def valueDef, preds []BlockID) error {
	if len(def.blocks) != len(preds) {
		return &VerifyError{
			fn.Name,
			fmt.Sprintf("block %d: phi has %d incoming values but %d predecessors", at, len(def.blocks), len(preds)),
		}
	}

	seen := make(map[BlockID]bool, len(preds))
	for _, p := range preds {
		seen[p] = true
	}

	for _, b := range def.blocks {
		if !seen[b] {
			return &VerifyError{fn.Name, fmt.Sprintf("block %d: phi incoming block %d is not a predecessor", at, b)}
		}
	}

	return nil
}

// computePredecessors builds the reverse control-flow edge map by scanning
// every block's terminator.
func computePredecessors(fn *Function) map[BlockID][]BlockID {
	preds := make(map[BlockID][]BlockID, len(fn.blocks))

	for _, blk := range fn.blocks {
		if len(blk.instrs) == 0 {
			continue
		}

		term := fn.values[blk.instrs[len(blk.instrs)-1]-1]
		for _, target := range term.blocks {
			preds[target] = append(preds[target], blk.id)
		}
	}

	return preds
}
