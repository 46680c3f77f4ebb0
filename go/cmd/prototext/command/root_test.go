/*
Copyright 2025 Supabase, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the prototext root command against the given
// filesystem and returns captured stdout.
func runCommand(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	root := GetRootCommand(fs)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokensCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "msg.textpb", []byte("name: \"widget\" count: 0x1F\n"), 0o644))

	out, err := runCommand(t, fs, "", "tokens", "msg.textpb")
	require.NoError(t, err)
	assert.Equal(t,
		"IDENTIFIER\tname\n"+
			"COLON\t:\n"+
			"STRING\twidget\n"+
			"IDENTIFIER\tcount\n"+
			"COLON\t:\n"+
			"HEX_INTEGER\t0x1F\n",
		out)
}

func TestTokensCommandLimit(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "msg.textpb", []byte("a b c d"), 0o644))

	out, err := runCommand(t, fs, "", "tokens", "--limit", "2", "msg.textpb")
	require.NoError(t, err)
	assert.Equal(t, "IDENTIFIER\ta\nIDENTIFIER\tb\n", out)
}

func TestTokensCommandKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ext.textpb", []byte("[com.foo.Bar]: 1\n"), 0o644))

	// In key mode the bracketed extension name is one identifier token.
	out, err := runCommand(t, fs, "", "tokens", "--keys", "ext.textpb")
	require.NoError(t, err)
	assert.Equal(t,
		"IDENTIFIER\t[com.foo.Bar]\n"+
			"COLON\t:\n"+
			"DECIMAL_INTEGER\t1\n",
		out)

	// Without --keys the same '[' scans as the array-start token.
	out, err = runCommand(t, fs, "", "tokens", "--limit", "1", "ext.textpb")
	require.NoError(t, err)
	assert.Equal(t, "BEGIN_ARRAY\t[\n", out)
}

func TestTokensCommandStdin(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), "value: -Infinity", "tokens")
	require.NoError(t, err)
	assert.Equal(t, "IDENTIFIER\tvalue\nCOLON\t:\nFLOAT\t-Infinity\n", out)
}

func TestTokensCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, afero.NewMemMapFs(), "", "tokens", "absent.textpb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.textpb")
}

func TestTokensCommandSyntaxError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.textpb", []byte("a: %"), 0o644))

	_, err := runCommand(t, fs, "", "tokens", "bad.textpb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected character")
}

func TestCheckCommand(t *testing.T) {
	t.Run("clean input", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "msg.textpb", []byte("a: 1 # done\n"), 0o644))

		out, err := runCommand(t, fs, "", "check", "msg.textpb")
		require.NoError(t, err)
		assert.Equal(t, "ok: 3 tokens\n", out)
	})

	t.Run("malformed input", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "bad.textpb", []byte("a: \"unterminated"), 0o644))

		_, err := runCommand(t, fs, "", "check", "bad.textpb")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unterminated string")
	})
}
