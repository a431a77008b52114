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

// Package source provides span-carrying source files and diagnostics shared
// by the front-end adapter and the codegen error taxonomy.  It is the one
// piece of the original host's source-mapping infrastructure general enough
// to survive unchanged in meaning across the domain change: tracking spans
// of original text and attaching them to compiler errors has nothing to do
// with the constraint-system domain it was lifted from.
package source

import (
	"fmt"
	"os"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))

	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}

		files[i] = *NewFile(n, bytes)
	}

	return files, nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (l Line) String() string {
	return string(l.text[l.span.start:l.span.end])
}

// Number returns the line number of this line, where the first line in a
// string has line number 1.
func (l Line) Number() int {
	return l.number
}

// Start returns the starting index of this line in the original string.
func (l Line) Start() int {
	return l.span.start
}

// Length returns the number of characters in this line.
func (l Line) Length() int {
	return l.span.Length()
}

// File represents a given source file, typically (but not necessarily)
// backed by disk.
type File struct {
	filename string
	contents []rune
}

// NewFile constructs a new source file from a given byte array.
func NewFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the filename associated with this source file.
func (f *File) Filename() string {
	return f.filename
}

// Contents returns the contents of this source file.
func (f *File) Contents() []rune {
	return f.contents
}

// Diagnostic constructs a diagnostic over a given span of this file with a
// given message and kind.
func (f *File) Diagnostic(kind Kind, span Span, msg string) *Diagnostic {
	return &Diagnostic{f, kind, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  If the position is beyond the bounds of the
// source file, the last physical line is returned.  The returned line is not
// guaranteed to enclose the entire span, since spans can cross lines.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	index := span.start
	num := 1
	start := 0

	for i := 0; i < len(f.contents); i++ {
		if i == index {
			end := findEndOfLine(index, f.contents)
			return Line{f.contents, Span{start, end}, num}
		} else if f.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}

	return Line{f.contents, Span{start, len(f.contents)}, num}
}

func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}

	return len(text)
}

// Kind distinguishes diagnostics raised by the error taxonomy (spec.md §7)
// from informational / warning output (e.g. one malformed function amongst
// several compiled ones).
type Kind uint8

const (
	// KindError is a hard compilation failure for the function in question.
	KindError Kind = iota
	// KindWarning is surfaced but does not suppress the overall artifact.
	KindWarning
)

func (k Kind) String() string {
	if k == KindWarning {
		return "warning"
	}

	return "error"
}

// Diagnostic is a structured, span-carrying compiler message.
type Diagnostic struct {
	srcfile *File
	kind    Kind
	span    Span
	msg     string
}

// SourceFile returns the underlying source file this diagnostic covers.
func (d *Diagnostic) SourceFile() *File {
	return d.srcfile
}

// Kind returns whether this diagnostic is an error or a warning.
func (d *Diagnostic) Kind() Kind {
	return d.kind
}

// Span returns the span of the original text this diagnostic is reported
// against.
func (d *Diagnostic) Span() Span {
	return d.span
}

// Message returns the message to be reported.
func (d *Diagnostic) Message() string {
	return d.msg
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d:%s", d.srcfile.Filename(), d.span.Start(), d.span.End(), d.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this diagnostic is associated.
func (d *Diagnostic) FirstEnclosingLine() Line {
	return d.srcfile.FindFirstEnclosingLine(d.span)
}
