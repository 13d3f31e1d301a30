package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"abook/internal/domain"
	"abook/internal/ui"
)

const book = `[format]
program=abook
version=0.6.1

[0]
name=John Smith
email=john@example.com

[4]
name=Jane Doe
address=Flat 2; Block B
`

// execute runs abook2vcf in a fresh home directory and returns what it
// wrote to standard output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	ui.Out = io.Discard
	t.Cleanup(func() { ui.Out = os.Stderr })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{
		"--settings", filepath.Join(home, "missing.yaml"),
		"--fqdn", "example.org",
		"--no-photo", "-q",
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestWritesStandardOutputByDefault(t *testing.T) {
	out, err := execute(t, book, "-")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "BEGIN:VCARD\r\n"))
	require.Contains(t, out, "\r\nUID:4@example.org\r\n")
	require.Contains(t, out, "\r\nADR:;;Flat 2\\; Block B;;;;\r\n")
}

func TestWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "addressbook")
	require.NoError(t, os.WriteFile(in, []byte(book), 0o644))
	dest := filepath.Join(dir, "out.vcf")

	out, err := execute(t, "", in, dest)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(data), "FN:John Smith\r\n")
}

func TestMalformedInputFailsWithoutOutput(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.vcf")

	out, err := execute(t, "[0]\nname=A\n\n[oops]\nname=B\n", "-", dest)
	var fe *domain.FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	require.Equal(t, 4, fe.Line)
	require.Empty(t, out)

	_, statErr := os.Stat(dest)
	require.True(t, os.IsNotExist(statErr))
}

func TestSingleEntry(t *testing.T) {
	out, err := execute(t, book, "--uid", "4@example.org", "-")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "BEGIN:VCARD\r\n"))
	require.Contains(t, out, "FN:Jane Doe\r\n")

	_, err = execute(t, book, "--uid", "9@example.org", "-")
	require.Error(t, err)
}

func TestListUIDs(t *testing.T) {
	out, err := execute(t, book, "--uids", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], `0@example.org "`))
	require.True(t, strings.HasPrefix(lines[1], `4@example.org "`))
}

func TestDefaultAddressbook(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".abook"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".abook", "addressbook"), []byte(book), 0o644))
	ui.Out = io.Discard
	t.Cleanup(func() { ui.Out = os.Stderr })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--fqdn", "example.org", "--no-photo", "-q"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "FN:John Smith\r\n")
}
