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

import (
	"fmt"
	"strings"

	"github.com/speedyc-lang/speedyc/pkg/lang"
)

// Text renders mod as a readable instruction listing, one function at a
// time. This backs the CLI's --emit-ir flag; it is not a serialization
// format and carries no parser.
func Text(mod *Module) string {
	var b strings.Builder

	for _, e := range mod.Externs() {
		fmt.Fprintf(&b, "extern %s%s -> %s\n", e.Name, paramList(e.Params), e.Result)
	}

	if len(mod.Externs()) > 0 {
		b.WriteByte('\n')
	}

	for i, fn := range mod.Functions() {
		if i > 0 {
			b.WriteByte('\n')
		}

		writeFunction(&b, fn)
	}

	return b.String()
}

func writeFunction(b *strings.Builder, fn *Function) {
	vis := ""
	if fn.Exported {
		vis = "export "
	}

	fmt.Fprintf(b, "%sfunc %s%s -> %s {\n", vis, fn.Name, paramList(fn.Params), fn.Result)

	for _, blk := range fn.blocks {
		fmt.Fprintf(b, "block%d:\n", blk.id)

		for _, v := range blk.instrs {
			fmt.Fprintf(b, "  %s\n", instrText(fn, v))
		}
	}

	b.WriteString("}\n")
}

func instrText(fn *Function, v Value) string {
	def := fn.values[v-1]

	lhs := ""
	if def.typ != nil && def.typ.AsVoid() == nil {
		lhs = fmt.Sprintf("%%%d = ", v)
	}

	switch def.op {
	case opConstInt:
		return fmt.Sprintf("%s%s %d", lhs, def.typ, def.literal)
	case opConstFloat:
		return fmt.Sprintf("%s%s %v", lhs, def.typ, def.literal)
	case opConstBool:
		return fmt.Sprintf("%s%s %v", lhs, def.typ, def.literal)
	case opConstString:
		return fmt.Sprintf("%s%s %q", lhs, def.typ, def.literal)
	case opParam:
		return fmt.Sprintf("%sparam %d", lhs, def.literal)
	case opIAdd, opISub, opIMul, opSDiv, opSRem, opFAdd, opFSub, opFMul, opFDiv, opFRem,
		opBitOr, opBitAnd, opBitXor, opShl, opShr, opUShr:
		return fmt.Sprintf("%s%s %s, %s", lhs, opName(def.op), operand(def.args[0]), operand(def.args[1]))
	case opICmp, opFCmpOrdered, opFCmpUnordered:
		return fmt.Sprintf("%s%s.%s %s, %s", lhs, opName(def.op), def.literal, operand(def.args[0]), operand(def.args[1]))
	case opTruncFloatToInt:
		return fmt.Sprintf("%strunc_f64_i32 %s", lhs, operand(def.args[0]))
	case opExtendIntToFloat:
		return fmt.Sprintf("%sextend_i32_f64 %s", lhs, operand(def.args[0]))
	case opPhi:
		return fmt.Sprintf("%sphi %s", lhs, phiOperands(def))
	case opAlloca:
		return fmt.Sprintf("%salloca %s", lhs, def.typ)
	case opLoad:
		return fmt.Sprintf("%sload %s", lhs, operand(def.args[0]))
	case opStore:
		return fmt.Sprintf("store %s, %s", operand(def.args[0]), operand(def.args[1]))
	case opCall:
		return fmt.Sprintf("%scall %s%s", lhs, def.symbol, operandList(def.args))
	case opBr:
		return fmt.Sprintf("br block%d", def.blocks[0])
	case opCondBr:
		return fmt.Sprintf("condbr %s, block%d, block%d", operand(def.args[0]), def.blocks[0], def.blocks[1])
	case opReturn:
		if len(def.args) == 0 {
			return "return"
		}

		return fmt.Sprintf("return %s", operand(def.args[0]))
	case opUnreachable:
		return "unreachable"
	default:
		return "?"
	}
}

func phiOperands(def valueDef) string {
	var parts []string
	for i, a := range def.args {
		parts = append(parts, fmt.Sprintf("[block%d: %s]", def.blocks[i], operand(a)))
	}

	return strings.Join(parts, ", ")
}

func opName(op opcode) string {
	switch op {
	case opIAdd:
		return "iadd"
	case opISub:
		return "isub"
	case opIMul:
		return "imul"
	case opSDiv:
		return "sdiv"
	case opSRem:
		return "srem"
	case opFAdd:
		return "fadd"
	case opFSub:
		return "fsub"
	case opFMul:
		return "fmul"
	case opFDiv:
		return "fdiv"
	case opFRem:
		return "frem"
	case opBitOr:
		return "or"
	case opBitAnd:
		return "and"
	case opBitXor:
		return "xor"
	case opShl:
		return "shl"
	case opShr:
		return "shr"
	case opUShr:
		return "ushr"
	case opICmp:
		return "icmp"
	case opFCmpOrdered:
		return "fcmp_o"
	case opFCmpUnordered:
		return "fcmp_u"
	default:
		return "?"
	}
}

func operand(v Value) string {
	return fmt.Sprintf("%%%d", v)
}

func operandList(args []Value) string {
	if len(args) == 0 {
		return "()"
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = operand(a)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func paramList(types []lang.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
