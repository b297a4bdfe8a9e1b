package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechnorm/go-itn/internal/fixture"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.itn")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesCases(t *testing.T) {
	path := writeFixture(t, "# a comment\n\ntwo hundred thirty two~232\nfive dollars~$5\n")
	cases, err := fixture.Load(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, fixture.Case{Input: "two hundred thirty two", Expected: "232", Line: 3}, cases[0])
	assert.Equal(t, fixture.Case{Input: "five dollars", Expected: "$5", Line: 4}, cases[1])
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	path := writeFixture(t, "\n# comment only\n   \nokay~OK\n")
	cases, err := fixture.Load(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "okay", cases[0].Input)
	assert.Equal(t, "OK", cases[0].Expected)
}

func TestLoadMissingSeparatorFails(t *testing.T) {
	path := writeFixture(t, "no separator here\n")
	_, err := fixture.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := fixture.Load(filepath.Join(t.TempDir(), "does-not-exist.itn"))
	assert.Error(t, err)
}
