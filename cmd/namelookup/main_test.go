package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleTable = `SMITH          1.006  1.006      1
JOHNSON        0.810  1.816      2
WILLIAMS       0.699  2.515      3
JONES          0.621  3.136      4
BROWN          0.621  3.757      5
`

func writeTable(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dist.all.last")
	if err := os.WriteFile(p, []byte(sampleTable), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCommands(t *testing.T) {
	assert := assert.New(t)
	p := writeTable(t)

	assert.NoError(run([]string{"namelookup", "verify", p}))
	assert.NoError(run([]string{"namelookup", "lookup", p, "smith", "nobody"}))
	assert.NoError(run([]string{"namelookup", "remove", "--draw", p, "smith", "smith"}))
	assert.NoError(run([]string{"namelookup", "draw", "--values", "--max-depth", "2", p}))
	assert.NoError(run([]string{"namelookup", "draw", "--limit", "2", p}))

	assert.Error(run([]string{"namelookup", "lookup"}))
	assert.Error(run([]string{"namelookup", "lookup", p}))
	assert.Error(run([]string{"namelookup", "verify", filepath.Join(t.TempDir(), "missing")}))
}

func TestStress(t *testing.T) {
	assert := assert.New(t)

	res, err := stress(context.Background(), stressConfig{
		Names:   200,
		Ops:     1000,
		Readers: 4,
		Seed:    7,
	})
	assert.NoError(err)
	assert.GreaterOrEqual(res.Versions, uint64(200))
	assert.Greater(res.Final, 0)
}
