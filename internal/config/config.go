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

// Package config is the plain-struct compilation configuration
// (SPEC_FULL.md §2 item 12), grounded on corset.CompilationConfig /
// asm.LoweringConfig in pkg/corset/compiler.go and pkg/asm: a handful of
// flag-driven booleans and an output path, built once by the CLI layer and
// threaded down rather than read from global flag state deep in the
// compiler.
package config

// Compilation holds the options a "speedyc compile" invocation gathers
// from its flags.
type Compilation struct {
	// Output is the path the bytecode artifact is written to.
	Output string
	// OptLevel is the optimisation level given by --opt. This repository's
	// own pipeline does no optimisation and invokes no linker; nothing
	// here reads the value once it is recorded.
	OptLevel uint
	// EmitIR, when set, dumps the verified ssa.Module as text (ssa
	// package's text.go renderer) before bytecode emission, for
	// inspection.
	EmitIR bool
}
