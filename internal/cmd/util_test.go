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
package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureCommand builds a *cobra.Command carrying one flag of each kind
// GetFlag/GetString/GetUint read, matching a real subcommand's flag
// registration shape closely enough to exercise the happy path. The
// os.Exit(2) path on a misconfigured command is deliberately left untested:
// it terminates the test binary itself, the same reason the teacher's own
// pkg/cmd/util.go has no test for it either.
func fixtureCommand(t *testing.T) *cobra.Command {
	t.Helper()

	c := &cobra.Command{Use: "fixture"}
	c.Flags().Bool("verbose", false, "")
	c.Flags().String("out", "", "")
	c.Flags().Uint("opt", 0, "")

	return c
}

func TestGetFlagReadsDeclaredBoolFlag(t *testing.T) {
	c := fixtureCommand(t)
	require.NoError(t, c.Flags().Set("verbose", "true"))

	assert.True(t, GetFlag(c, "verbose"))
}

func TestGetStringReadsDeclaredStringFlag(t *testing.T) {
	c := fixtureCommand(t)
	require.NoError(t, c.Flags().Set("out", "a.wasm"))

	assert.Equal(t, "a.wasm", GetString(c, "out"))
}

func TestGetUintReadsDeclaredUintFlag(t *testing.T) {
	c := fixtureCommand(t)
	require.NoError(t, c.Flags().Set("opt", "2"))

	assert.Equal(t, uint(2), GetUint(c, "opt"))
}

func TestGetStringDefaultsToZeroValueWhenUnset(t *testing.T) {
	c := fixtureCommand(t)

	assert.Equal(t, "", GetString(c, "out"))
}
