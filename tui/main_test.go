package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/marisvali/counters/gamedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLevels(t *testing.T) {
	fsys := os.DirFS("..").(gamedata.FS)
	var out bytes.Buffer
	require.NoError(t, ListLevels(fsys, &out))

	levels := strings.Fields(out.String())
	assert.Equal(t, []string{
		"data/levels/1.yaml",
		"data/levels/2.yaml",
		"data/levels/basic.yaml",
	}, levels)

	// Every line is a path -level accepts.
	for _, l := range levels {
		_, err := gamedata.LoadLevel(fsys, l)
		assert.NoError(t, err, l)
	}
}

func TestListLevels_MissingFolder(t *testing.T) {
	fsys := os.DirFS(t.TempDir()).(gamedata.FS)
	var out bytes.Buffer
	assert.Error(t, ListLevels(fsys, &out))
	assert.Empty(t, out.String())
}
