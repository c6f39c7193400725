package analyzer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scalingCSV = `Type,Count,CPU_Percent,Memory_MB,Real_Time_s,User_CPU_s,Sys_CPU_s
Process,2,150,3.5,0:01.50,1.0,0.5
Process,1,100,2.5,0:00.04,0.02,0.01
Process,4,310,6.0,0:03.10,2.4,0.6
Thread,1,99,2.0,0.75,0.5,0.1
Thread,4,380,2.6,2.25,3.1,0.4
Thread,2,190,2.1,1.20,1.2,
`

const comboCSV = `Program,Worker,CPU_Percent,Memory_MB,IO_KB_s,Exec_Time_s
A,cpu,95,10,0,1.5
B,cpu,190,4,0,0.8
A,mem,60,120,0,2.5
B,mem,110,118,0,1.9
A,io,5,10,2048,3.0
`

// testDPI keeps the rendered rasters small.
const testDPI = 30

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func pngs(t *testing.T, dir string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	return files
}

func TestRunWithoutInputs(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	written, err := New(Config{Dir: dir, DPI: testDPI, Out: &out}).Run()
	require.NoError(t, err)
	assert.Empty(t, written)
	assert.Empty(t, pngs(t, dir))

	assert.Contains(t, out.String(), "Error: "+ScalingInput+" not found")
	assert.Contains(t, out.String(), "Warning: "+ComboInput+" not found, skipping combination plots")
}

func TestRunWritesThreeFigures(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, ScalingInput, scalingCSV)
	writeInput(t, dir, ComboInput, comboCSV)
	var out bytes.Buffer

	written, err := New(Config{Dir: dir, DPI: testDPI, Out: &out}).Run()
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, ScalingFigure),
		filepath.Join(dir, EfficiencyFigure),
		filepath.Join(dir, ComboFigure),
	}
	assert.Equal(t, expected, written)
	assert.ElementsMatch(t, expected, pngs(t, dir))

	for _, f := range expected {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), f)
		assert.Contains(t, out.String(), "Saved: "+filepath.Base(f))
	}
}

func TestRunOnlyScaling(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, ScalingInput, scalingCSV)
	var out bytes.Buffer

	written, err := New(Config{Dir: dir, DPI: testDPI, Out: &out}).Run()
	require.NoError(t, err)
	assert.Len(t, written, 2)
	assert.Contains(t, out.String(), "Warning: "+ComboInput+" not found")
	assert.NotContains(t, out.String(), "Error:")
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, ScalingInput, scalingCSV)
	writeInput(t, dir, ComboInput, comboCSV)

	a := New(Config{Dir: dir, DPI: testDPI, Out: &bytes.Buffer{}})

	first, err := a.Run()
	require.NoError(t, err)
	contents := make(map[string][]byte)
	for _, f := range first {
		b, err := os.ReadFile(f)
		require.NoError(t, err)
		contents[f] = b
	}

	second, err := a.Run()
	require.NoError(t, err)
	require.Equal(t, first, second)
	for _, f := range second {
		b, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(contents[f], b), "%v changed between runs", f)
	}
}

func TestRunMalformedTimeFails(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, ScalingInput, "Type,Count,CPU_Percent,Memory_MB,Real_Time_s,User_CPU_s,Sys_CPU_s\n"+
		"Process,1,100,2.5,1:2:3,0.02,0.01\n")

	_, err := New(Config{Dir: dir, DPI: testDPI, Out: &bytes.Buffer{}}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Real_Time_s")
	assert.Empty(t, pngs(t, dir))
}

func TestNewDefaults(t *testing.T) {
	a := New(Config{})
	assert.Equal(t, ".", a.cfg.Dir)
	assert.Equal(t, ScalingInput, a.cfg.ScalingInput)
	assert.Equal(t, ComboInput, a.cfg.ComboInput)
	assert.Equal(t, DefaultDPI, a.cfg.DPI)
	assert.Equal(t, os.Stdout, a.out)
}

func TestInputPath(t *testing.T) {
	a := New(Config{Dir: "results"})
	assert.Equal(t, filepath.Join("results", "data.csv"), a.inputPath("data.csv"))

	abs, err := filepath.Abs("data.csv")
	require.NoError(t, err)
	assert.Equal(t, abs, a.inputPath(abs))
}

func TestRunNATimeLeavesGap(t *testing.T) {
	for _, na := range []string{"nan", "NA"} {
		dir := t.TempDir()
		writeInput(t, dir, ScalingInput, "Type,Count,CPU_Percent,Memory_MB,Real_Time_s,User_CPU_s,Sys_CPU_s\n"+
			"Process,1,100,2.5,0:00.04,0.02,0.01\n"+
			"Process,2,150,3.5,"+na+",1.0,0.5\n"+
			"Thread,1,99,2.0,0.75,0.5,0.1\n")
		writeInput(t, dir, ComboInput, comboCSV)

		written, err := New(Config{Dir: dir, DPI: testDPI, Out: &bytes.Buffer{}}).Run()
		require.NoError(t, err, na)
		assert.Len(t, written, 3, na)
		assert.Len(t, pngs(t, dir), 3, na)
	}
}
