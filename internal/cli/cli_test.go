package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs a fresh command tree and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestProductText(t *testing.T) {
	out, err := execute(t, "product", "1,2", "3,4,5")
	require.NoError(t, err)

	want := "(1, 3)\n(1, 4)\n(1, 5)\n(2, 3)\n(2, 4)\n(2, 5)\n"
	assert.Equal(t, want, out)
}

func TestProductJSON(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		want   string
	}{
		{name: "numbers", first: "1,2", second: "3,4,5", want: `[[1,3],[1,4],[1,5],[2,3],[2,4],[2,5]]`},
		{name: "mixed", first: "a, b", second: "1", want: `[["a",1],["b",1]]`},
		{name: "empty first", first: "", second: "1,2", want: `[]`},
		{name: "empty second", first: "x", second: " ", want: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "product", "-o", "json", tt.first, tt.second)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestProductYAML(t *testing.T) {
	out, err := execute(t, "product", "--output", "yaml", "1,2", "3")
	require.NoError(t, err)

	var decoded [][]int
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, [][]int{{1, 3}, {2, 3}}, decoded)
}

func TestProductEmptyText(t *testing.T) {
	out, err := execute(t, "product", "", "1,2")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProductArgCount(t *testing.T) {
	_, err := execute(t, "product", "1,2")
	assert.Error(t, err)

	_, err = execute(t, "product", "1", "2", "3")
	assert.Error(t, err)
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []any
	}{
		{name: "integers", input: "1,2,3", want: []any{int64(1), int64(2), int64(3)}},
		{name: "negative integer", input: "-4", want: []any{int64(-4)}},
		{name: "strings", input: "a,b", want: []any{"a", "b"}},
		{name: "trimmed", input: " 1 , x ", want: []any{int64(1), "x"}},
		{name: "empty", input: "", want: []any{}},
		{name: "whitespace only", input: "   ", want: []any{}},
		{name: "float stays text", input: "1.5", want: []any{"1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseList(tt.input))
		})
	}
}

func TestPrimeText(t *testing.T) {
	out, err := execute(t, "prime", "5", "10", "13")
	require.NoError(t, err)
	assert.Equal(t, "5: true\n10: false\n13: true\n", out)
}

func TestPrimeNegativeAfterDashes(t *testing.T) {
	out, err := execute(t, "prime", "--", "-7", "0", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "-7: false\n0: false\n1: false\n2: true\n", out)
}

func TestPrimeJSON(t *testing.T) {
	out, err := execute(t, "prime", "-o", "json", "5", "10")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"n":5,"prime":true},{"n":10,"prime":false}]`, out)
}

func TestPrimeOnlyPrimes(t *testing.T) {
	out, err := execute(t, "prime", "--only-primes", "1", "2", "3", "4", "5", "9")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n5\n", out)

	out, err = execute(t, "prime", "--only-primes", "-o", "json", "4", "6")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestPrimeInvalidInteger(t *testing.T) {
	tests := []string{"abc", "1.5", "99999999999999999999", ""}

	for _, arg := range tests {
		t.Run(arg, func(t *testing.T) {
			_, err := execute(t, "prime", "3", arg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInteger)
		})
	}
}

func TestPrimeRequiresArgument(t *testing.T) {
	_, err := execute(t, "prime")
	assert.Error(t, err)
}

func TestDemoText(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	want := strings.Join([]string{
		"cartesianProduct([1 2], [3 4 5]):",
		"(1, 3)",
		"(1, 4)",
		"(1, 5)",
		"(2, 3)",
		"(2, 4)",
		"(2, 5)",
		"isPrime(5) = true",
		"isPrime(10) = false",
		"isPrime(13) = true",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestDemoJSON(t *testing.T) {
	out, err := execute(t, "demo", "-o", "json")
	require.NoError(t, err)

	want := `{
		"product": [[1,3],[1,4],[1,5],[2,3],[2,4],[2,5]],
		"primes": [
			{"n":5,"prime":true},
			{"n":10,"prime":false},
			{"n":13,"prime":true}
		]
	}`
	assert.JSONEq(t, want, out)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "demo", "-o", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "demo", "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathutils.yaml")
	content := "log:\n  level: error\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "--config", path, "prime", "7")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"n":7,"prime":true}]`, out)

	// flags win over the file
	out, err = execute(t, "--config", path, "prime", "-o", "text", "7")
	require.NoError(t, err)
	assert.Equal(t, "7: true\n", out)
}

func TestMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathutils.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [\n"), 0644))

	_, err := execute(t, "--config", path, "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestMissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := execute(t, "--config", path, "demo")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "mathutils\n"), "banner should start with the command name")
	assert.Contains(t, out, "Version:    "+Version)
	assert.Contains(t, out, "Git Commit: "+GitCommit)
	assert.Contains(t, out, "Go Version:")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, "xml", []int{1}, func(io.Writer) error { return nil })
	assert.ErrorIs(t, err, ErrUnknownOutputFormat)

	buf.Reset()
	require.NoError(t, render(&buf, "TEXT", []int{1, 2}, func(w io.Writer) error {
		return writeLines(w, []int{1, 2})
	}))
	assert.Equal(t, "1\n2\n", buf.String())
}
