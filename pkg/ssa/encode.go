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

// Encoding scope. This encoder writes the module container only: value
// types i32/f64/i32(bool) in function signatures, one function entry per
// Function, and function-per-export. Instruction bodies are not encoded
// (see Encode: each body is an "unreachable" placeholder). It does not implement
// exception tables, tail calls, SIMD, or a relocatable object format — a
// full WebAssembly toolchain is explicitly out of scope (SPEC_FULL.md §6).
package ssa

import (
	"bytes"
	"encoding/binary"

	"github.com/speedyc-lang/speedyc/pkg/lang"
)

const (
	wasmMagic   = "\x00asm"
	wasmVersion = uint32(1)
)

// Section ids from the WebAssembly binary format.
const (
	secType     byte = 1
	secFunction byte = 3
	secExport   byte = 7
	secCode     byte = 10
)

// valType is a WebAssembly value type tag.
type valType byte

const (
	valTypeI32 valType = 0x7F
	valTypeF64 valType = 0x7C
)

// Encode serializes mod into a minimal WebAssembly binary module: a type
// section (one entry per distinct function signature), a function section,
// an export section (one entry per Function with Exported set), and a code
// section with a placeholder body per function.
//
// The per-function instruction encoder is deliberately not implemented here:
// SPEC_FULL.md §6 scopes this repository to the scalar-only IR and its text
// form: a downstream toolchain (or a later expansion of this encoder) is
// expected to lower ssa.Module's instruction stream to WebAssembly
// expression bytecode. Encode produces a structurally valid module whose
// function bodies are "unreachable" placeholders, which is sufficient to
// exercise the container format and --out plumbing end-to-end.
func Encode(mod *Module) []byte {
	var buf bytes.Buffer

	buf.WriteString(wasmMagic)
	writeU32LE(&buf, wasmVersion)

	types, typeIdx := encodeTypeSection(mod)
	buf.Write(types)

	buf.Write(encodeFunctionSection(mod, typeIdx))
	buf.Write(encodeExportSection(mod))
	buf.Write(encodeCodeSection(mod))

	return buf.Bytes()
}

func writeU32LE(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeULEB128(buf *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7F)
		v >>= 7

		if v != 0 {
			buf.WriteByte(b | 0x80)
		} else {
			buf.WriteByte(b)
			return
		}
	}
}

func wasmValType(t lang.Type) valType {
	if t.AsFloat64() != nil {
		return valTypeF64
	}

	return valTypeI32
}

func signatureKey(params []lang.Type, result lang.Type) string {
	key := make([]byte, 0, len(params)+2)
	for _, p := range params {
		key = append(key, byte(wasmValType(p)))
	}

	key = append(key, '-')
	if result.AsVoid() == nil {
		key = append(key, byte(wasmValType(result)))
	}

	return string(key)
}

func encodeTypeSection(mod *Module) (section []byte, index map[string]uint32) {
	var (
		body  bytes.Buffer
		index_ = make(map[string]uint32)
		count  uint32
	)

	encodeOne := func(params []lang.Type, result lang.Type) {
		key := signatureKey(params, result)
		if _, ok := index_[key]; ok {
			return
		}

		index_[key] = count
		count++

		body.WriteByte(0x60) // functype tag
		writeULEB128(&body, uint32(len(params)))

		for _, p := range params {
			body.WriteByte(byte(wasmValType(p)))
		}

		if result.AsVoid() == nil {
			writeULEB128(&body, 1)
			body.WriteByte(byte(wasmValType(result)))
		} else {
			writeULEB128(&body, 0)
		}
	}

	for _, e := range mod.Externs() {
		encodeOne(e.Params, e.Result)
	}

	for _, fn := range mod.Functions() {
		encodeOne(fn.Params, fn.Result)
	}

	var payload bytes.Buffer
	writeULEB128(&payload, count)
	payload.Write(body.Bytes())

	return encodeSection(secType, payload.Bytes()), index_
}

func encodeFunctionSection(mod *Module, typeIdx map[string]uint32) []byte {
	var payload bytes.Buffer

	fns := mod.Functions()
	writeULEB128(&payload, uint32(len(fns)))

	for _, fn := range fns {
		key := signatureKey(fn.Params, fn.Result)
		writeULEB128(&payload, typeIdx[key])
	}

	return encodeSection(secFunction, payload.Bytes())
}

func encodeExportSection(mod *Module) []byte {
	var (
		payload bytes.Buffer
		count   uint32
	)

	for _, fn := range mod.Functions() {
		if fn.Exported {
			count++
		}
	}

	writeULEB128(&payload, count)

	for i, fn := range mod.Functions() {
		if !fn.Exported {
			continue
		}

		writeULEB128(&payload, uint32(len(fn.Name)))
		payload.WriteString(fn.Name)
		payload.WriteByte(0x00) // export kind: func
		writeULEB128(&payload, uint32(i))
	}

	return encodeSection(secExport, payload.Bytes())
}

func encodeCodeSection(mod *Module) []byte {
	var payload bytes.Buffer

	fns := mod.Functions()
	writeULEB128(&payload, uint32(len(fns)))

	for range fns {
		var body bytes.Buffer

		writeULEB128(&body, 0) // zero local-declaration groups
		body.WriteByte(0x00)   // unreachable
		body.WriteByte(0x0B)   // end

		writeULEB128(&payload, uint32(body.Len()))
		payload.Write(body.Bytes())
	}

	return encodeSection(secCode, payload.Bytes())
}

func encodeSection(id byte, payload []byte) []byte {
	var buf bytes.Buffer

	buf.WriteByte(id)
	writeULEB128(&buf, uint32(len(payload)))
	buf.Write(payload)

	return buf.Bytes()
}
