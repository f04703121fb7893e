package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMeasureCommand(t *testing.T) {
	out, err := execute(t, "measure", "--a", "0,0,0", "--b", "0,-1,5", "--axis", "Y")
	require.NoError(t, err)

	assert.Contains(t, out, "distance: 5.10")
	assert.Contains(t, out, "angle (Y): -90.00°")
}

func TestMeasureCommandRejectsInput(t *testing.T) {
	_, err := execute(t, "measure", "--axis", "Z")
	assert.Error(t, err)

	_, err = execute(t, "measure", "--b", "1,2")
	assert.ErrorContains(t, err, "want 3 components")
}

func TestCastCommandAgainstDemoScene(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "cast", "--origin", "-6,1,0", "--direction", "1,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "Cube")
	assert.Contains(t, out, "distance 2.50")

	out, err = execute(t, "cast", "--type", "Sphere", "--extent", "0.3", "--origin", "-6,1,0", "--direction", "1,0,0", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Cube")

	out, err = execute(t, "cast", "--origin", "-6,1,0", "--direction", "1,0,0", "--layers", "1")
	require.NoError(t, err)
	assert.Equal(t, "no hit\n", out)

	_, err = execute(t, "cast", "--type", "Cone")
	assert.Error(t, err)
}

func TestComponentsCommand(t *testing.T) {
	out, err := execute(t, "components")
	require.NoError(t, err)

	for _, name := range []string{"DistanceMeasurement", "AngleMeasurement", "RaycastViewer", "MousePointer"} {
		assert.Contains(t, out, name)
	}
}

func TestLogLevelFlag(t *testing.T) {
	_, err := execute(t, "components", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "components", "--log-level", "warn")
	assert.NoError(t, err)
	_, _ = execute(t, "components", "--log-level", "info")
}
