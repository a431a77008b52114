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
package frontend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedyc-lang/speedyc/pkg/lang"
	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
)

// writeFixture writes the given JSON document to a temp file and returns its
// path, mirroring the teacher's own file-based fixture convention
// (pkg/ir/ir_test.go's ReadConstraintsFile) rather than decoding an in-memory
// []byte directly, since Load's only entry point is a filename.
func writeFixture(t *testing.T, json string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "unit.json")
	require.NoError(t, os.WriteFile(path, []byte(json), 0o644))

	return path
}

func TestLoadDecodesSimpleFunctionWithParamsAndReturn(t *testing.T) {
	doc := `{
		"functions": [
			{
				"kind": "funcDecl",
				"funcName": "add",
				"annotated": true,
				"funcParams": [
					{"symbol": "a", "type": {"kind": "int32"}},
					{"symbol": "b", "type": {"kind": "int32"}}
				],
				"funcResult": {"kind": "int32"},
				"funcBody": {
					"kind": "block",
					"stmts": [
						{
							"kind": "exprStmt",
							"expr": {"kind": "literal", "literalKind": "string", "string": "use speedy"}
						},
						{
							"kind": "return",
							"value": {
								"kind": "binary",
								"op": "+",
								"left": {"kind": "identifier", "symbol": "a"},
								"right": {"kind": "identifier", "symbol": "b"}
							}
						}
					]
				}
			}
		]
	}`

	path := writeFixture(t, doc)

	prog, resolver, maps, err := Load(path)
	require.NoError(t, err)
	require.Len(t, prog.Functions, 1)

	fn := prog.Functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.True(t, fn.Annotated)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, lang.Int32Type{}, fn.Params[0].Type)
	assert.Equal(t, lang.Int32Type{}, fn.Result)

	require.NotNil(t, resolver)
	assert.Equal(t, fn.Signature(), resolver.SignatureOf(fn))

	require.Len(t, fn.Body.Stmts, 2)
	ret, ok := fn.Body.Stmts[1].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)

	left, ok := bin.Left.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "a", left.Symbol.Name())

	require.NotNil(t, maps)
}

func TestLoadSharesSymbolIdentityAcrossOccurrencesInOneFile(t *testing.T) {
	doc := `{
		"functions": [
			{
				"kind": "funcDecl",
				"funcName": "twice",
				"annotated": true,
				"funcParams": [{"symbol": "x", "type": {"kind": "int32"}}],
				"funcResult": {"kind": "int32"},
				"funcBody": {
					"kind": "block",
					"stmts": [
						{
							"kind": "return",
							"value": {
								"kind": "binary",
								"op": "+",
								"left": {"kind": "identifier", "symbol": "x"},
								"right": {"kind": "identifier", "symbol": "x"}
							}
						}
					]
				}
			}
		]
	}`

	path := writeFixture(t, doc)

	prog, _, _, err := Load(path)
	require.NoError(t, err)

	bin := prog.Functions[0].Body.Stmts[0].(*ast.ReturnStmt).Value.(*ast.BinaryExpr)
	left := bin.Left.(*ast.Identifier)
	right := bin.Right.(*ast.Identifier)

	assert.Equal(t, left.Symbol, right.Symbol, "both occurrences of x within one file decode to the same Symbol")
}

func TestLoadDecodesArrayAndObjectTypes(t *testing.T) {
	doc := `{
		"functions": [
			{
				"kind": "funcDecl",
				"funcName": "makeThings",
				"annotated": true,
				"funcParams": [],
				"funcResult": {"kind": "void"},
				"funcBody": {
					"kind": "block",
					"stmts": [
						{
							"kind": "varDecl",
							"symbol": "xs",
							"varType": {"kind": "array", "elem": {"kind": "float64"}},
							"init": {"kind": "arrayLiteral", "elem": {"kind": "float64"}, "elements": []}
						},
						{
							"kind": "varDecl",
							"symbol": "p",
							"varType": {"kind": "object", "className": "Point"},
							"init": {"kind": "new", "className": "Point", "type": {"kind": "object", "className": "Point"}, "args": []}
						}
					]
				}
			}
		]
	}`

	path := writeFixture(t, doc)

	prog, _, _, err := Load(path)
	require.NoError(t, err)

	stmts := prog.Functions[0].Body.Stmts
	require.Len(t, stmts, 2)

	xs := stmts[0].(*ast.VarDeclStmt)
	assert.Equal(t, lang.ArrayRefType{Elem: lang.Float64Type{}}, xs.Type)

	p := stmts[1].(*ast.VarDeclStmt)
	assert.Equal(t, lang.ObjectRefType{ClassName: "Point"}, p.Type)
	newExpr := p.Init.(*ast.NewExpr)
	assert.Equal(t, lang.ObjectRefType{ClassName: "Point"}, newExpr.Type)
}

func TestLoadRejectsUnknownNodeKind(t *testing.T) {
	doc := `{
		"functions": [
			{
				"kind": "funcDecl",
				"funcName": "bad",
				"annotated": true,
				"funcParams": [],
				"funcResult": {"kind": "void"},
				"funcBody": {
					"kind": "block",
					"stmts": [
						{"kind": "notARealNode"}
					]
				}
			}
		]
	}`

	path := writeFixture(t, doc)

	_, _, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnknownBinaryOperator(t *testing.T) {
	doc := `{
		"functions": [
			{
				"kind": "funcDecl",
				"funcName": "bad",
				"annotated": true,
				"funcParams": [{"symbol": "a", "type": {"kind": "int32"}}],
				"funcResult": {"kind": "int32"},
				"funcBody": {
					"kind": "block",
					"stmts": [
						{
							"kind": "return",
							"value": {
								"kind": "binary",
								"op": "???",
								"left": {"kind": "identifier", "symbol": "a"},
								"right": {"kind": "identifier", "symbol": "a"}
							}
						}
					]
				}
			}
		]
	}`

	path := writeFixture(t, doc)

	_, _, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadMergesMultipleFilesIntoOneProgram(t *testing.T) {
	first := writeFixture(t, `{
		"functions": [
			{
				"kind": "funcDecl", "funcName": "one", "annotated": true,
				"funcParams": [], "funcResult": {"kind": "void"},
				"funcBody": {"kind": "block", "stmts": []}
			}
		]
	}`)

	second := writeFixture(t, `{
		"functions": [
			{
				"kind": "funcDecl", "funcName": "two", "annotated": true,
				"funcParams": [], "funcResult": {"kind": "void"},
				"funcBody": {"kind": "block", "stmts": []}
			}
		]
	}`)

	prog, _, _, err := Load(first, second)
	require.NoError(t, err)
	require.Len(t, prog.Functions, 2)
	assert.Equal(t, "one", prog.Functions[0].Name)
	assert.Equal(t, "two", prog.Functions[1].Name)
}

func TestLoadReturnsErrorForMissingFile(t *testing.T) {
	_, _, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}
