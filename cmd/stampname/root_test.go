package stampname

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"testing"

	"github.com/arthur-debert/stampname/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stampedName = regexp.MustCompile(`^\d{8}_\d{6}_\d{3}\.txt$`)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, overrides map[string]interface{}, argv ...string) result {
	t.Helper()

	opts := config.Options{
		SkipUserConfig: true,
		Overrides: map[string]interface{}{
			"logging.file":  false,
			"output.format": "text",
		},
	}
	for k, v := range overrides {
		opts.Overrides[k] = v
	}

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), argv, &stdout, &stderr, opts)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	}
}

func fileNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.txt")

	tests := []struct {
		name      string
		argv      []string
		wantCode  int
		wantInErr string
	}{
		{"no_parameters", nil, 1, "too few parameters"},
		{"neither_f_nor_d", []string{"-o"}, 2, "one of the parameters f or d is required"},
		{"bare_f", []string{"-f"}, 2, "parameter f requires a file path"},
		{"bare_d", []string{"-d", "-s"}, 2, "parameter d requires"},
		{"missing_source", []string{"-f=" + filepath.Join(dir, "missing.txt")}, 4, "does not exist"},
		{"directory_as_file", []string{"-f=" + dir}, 4, "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, nil, tt.argv...)
			assert.Equal(t, tt.wantCode, res.code)
			assert.Contains(t, res.stderr, tt.wantInErr)
			assert.Contains(t, res.stderr, "Usage: stampname")
			assert.NotContains(t, res.stdout, "Total files renamed")
		})
	}

	assert.Equal(t, []string{"keep.txt"}, fileNames(t, dir))
}

func TestRenameSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "myfile.txt")

	res := run(t, nil, "-f="+filepath.Join(dir, "myfile.txt"), "-p=MyPrefix_*_")
	require.Equal(t, 0, res.code, res.stderr)

	names := fileNames(t, dir)
	require.Len(t, names, 1)
	assert.Regexp(t, `^MyPrefix_myfile_\d{8}_\d{6}_\d{3}\.txt$`, names[0])

	assert.Contains(t, res.stdout, "Prefix: MyPrefix_*_")
	assert.Contains(t, res.stdout, "Renaming ")
	assert.Contains(t, res.stdout, "Total files renamed: 1\n")
	assert.Empty(t, res.stderr)
}

func TestRenameSingleFileValueAsNextToken(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	res := run(t, nil, "-f", filepath.Join(dir, "a.txt"))
	require.Equal(t, 0, res.code, res.stderr)

	names := fileNames(t, dir)
	require.Len(t, names, 1)
	assert.Regexp(t, stampedName, names[0])
	assert.Contains(t, res.stdout, "Prefix: <none>")
}

func TestRenameBatch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "one.txt", "two.txt", "three.txt", "skip.md", filepath.Join("sub", "four.txt"))

	res := run(t, nil, "-d="+filepath.Join(dir, "*.txt"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Total files renamed: 3\n")

	names := fileNames(t, dir)
	require.Len(t, names, 4)
	assert.Equal(t, "skip.md", names[3])
	for _, name := range names[:3] {
		assert.Regexp(t, stampedName, name)
	}
	assert.Equal(t, []string{"four.txt"}, fileNames(t, filepath.Join(dir, "sub")))
}

func TestRenameBatchRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "one.txt", filepath.Join("sub", "two.txt"), filepath.Join("sub", "deep", "three.txt"))

	res := run(t, nil, "-d="+filepath.Join(dir, "*.txt"), "-s")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Total files renamed: 3\n")
	assert.Contains(t, res.stdout, "Recurse: true")

	for _, d := range []string{dir, filepath.Join(dir, "sub"), filepath.Join(dir, "sub", "deep")} {
		names := fileNames(t, d)
		require.Len(t, names, 1)
		assert.Regexp(t, stampedName, names[0])
	}
}

func TestRenameBatchMissingFolder(t *testing.T) {
	dir := t.TempDir()

	res := run(t, nil, "-d="+filepath.Join(dir, "nope", "*.txt"))
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "cannot read directory")
	assert.Contains(t, res.stdout, "Total files renamed: 0\n")
}

func TestOverwriteFlag(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	res := run(t, nil, "-f="+filepath.Join(dir, "a.txt"), "-o")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Overwrite: true")
	assert.Contains(t, res.stdout, "Total files renamed: 1\n")
}

func TestSlashDelimiter(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt")

	res := run(t, map[string]interface{}{"flags.delimiter": "/"}, "/d="+filepath.Join(dir, "*.txt"), "/p=X_")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Total files renamed: 2\n")

	for _, name := range fileNames(t, dir) {
		assert.Regexp(t, `^X_\d{8}_\d{6}_\d{3}\.txt$`, name)
	}
}

func TestUnknownParametersIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	res := run(t, nil, "-x=1", "stray", "-f="+filepath.Join(dir, "a.txt"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Total files renamed: 1\n")
}

func TestUnknownShorthandDoesNotSetFlags(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "c.txt")

	res := run(t, nil, "-d="+filepath.Join(dir, "c.txt"), "-foo", "-pattern=x")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Overwrite: false")
	assert.Contains(t, res.stdout, "Prefix: <none>")
	assert.Contains(t, res.stdout, "Total files renamed: 1\n")

	names := fileNames(t, dir)
	require.Len(t, names, 1)
	assert.Regexp(t, stampedName, names[0])
}

func TestInvalidSettings(t *testing.T) {
	res := run(t, map[string]interface{}{"flags.delimiter": "ab"}, "-f=a.txt")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "flags.delimiter")
}

func TestSubcommands(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		res := run(t, nil, "version")
		assert.Equal(t, 0, res.code)
		assert.Contains(t, res.stdout, "stampname dev")
	})

	t.Run("config", func(t *testing.T) {
		res := run(t, map[string]interface{}{"rename.delay": "10ms"}, "config")
		assert.Equal(t, 0, res.code)
		assert.Contains(t, res.stdout, "delay = '10ms'")
		assert.Contains(t, res.stdout, "format = 'text'")
	})

	t.Run("config_defaults", func(t *testing.T) {
		res := run(t, nil, "config", "--defaults")
		assert.Equal(t, 0, res.code)
		assert.Equal(t, config.GetDefaultConfigContent(), res.stdout)
	})

	t.Run("topics", func(t *testing.T) {
		res := run(t, nil, "topics")
		assert.Equal(t, 0, res.code)
		assert.Contains(t, res.stdout, "naming")
		assert.Contains(t, res.stdout, "--prefix")
	})

	t.Run("topic", func(t *testing.T) {
		res := run(t, nil, "topics", "naming")
		assert.Equal(t, 0, res.code)
		assert.Contains(t, res.stdout, "yyyyMMdd_HHmmss_fff")
	})

	t.Run("completion", func(t *testing.T) {
		res := run(t, nil, "completion", "bash")
		assert.Equal(t, 0, res.code)
		assert.Contains(t, res.stdout, "stampname")
	})

	t.Run("help", func(t *testing.T) {
		res := run(t, nil, "--help")
		assert.Equal(t, 0, res.code)
		assert.Contains(t, res.stdout, "USAGE:")
		assert.Contains(t, res.stdout, "--prefix")
	})
}
