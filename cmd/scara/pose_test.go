package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/scara/pkg/command"
	"github.com/gwillem/scara/pkg/panel"
	"github.com/gwillem/scara/pkg/render"
	"github.com/gwillem/scara/pkg/scara"
)

func TestCommandRows(t *testing.T) {
	axes := scara.AxisState{X: 1, Y: 2, Z: 600, Gripper: 4}

	rows := commandRows(command.DefaultRoot, axes)
	assert.Equal(t, [][]string{
		{"globalsmallestfarm/scara/command/xSpeed", "1"},
		{"globalsmallestfarm/scara/command/ySpeed", "2"},
		{"globalsmallestfarm/scara/command/zSpeed", "1023"},
		{"globalsmallestfarm/scara/command/gripper", "4"},
	}, rows)

	rows = commandRows("lab/arm", axes)
	assert.Equal(t, "lab/arm/command/xSpeed", rows[0][0])
	assert.Equal(t, "lab/arm/command/gripper", rows[3][0])
}

func TestPoseCommand_TopicRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scara.json")
	cfg := panel.DefaultConfig()
	cfg.TopicRoot = "lab/arm"
	require.NoError(t, cfg.SaveTo(path))

	root, err := (&PoseCommand{Config: path}).topicRoot()
	require.NoError(t, err)
	assert.Equal(t, "lab/arm", root)

	root, err = (&PoseCommand{Config: path, TopicRoot: "bench/arm"}).topicRoot()
	require.NoError(t, err)
	assert.Equal(t, "bench/arm", root)

	t.Setenv("SCARA_TOPIC_ROOT", "env/arm")
	root, err = (&PoseCommand{Config: path}).topicRoot()
	require.NoError(t, err)
	assert.Equal(t, "env/arm", root)
}

func TestOpRows(t *testing.T) {
	var rec render.Recorder
	render.NewEngine(scara.DefaultGeometry()).Draw(&rec, scara.Home, 640, 480)

	rows := opRows(rec.Ops)
	assert.Len(t, rows, len(rec.Ops))
	assert.Equal(t, "clear", rows[0][1])
	assert.Contains(t, rows[len(rows)-1][3], "Z-Height: 0 / 512")
}

func TestValidateBroker(t *testing.T) {
	assert.NoError(t, validateBroker("wss://broker.emqx.io:8084/mqtt"))
	assert.NoError(t, validateBroker("tcp://localhost:1883"))
	assert.Error(t, validateBroker("broker.emqx.io"))
	assert.Error(t, validateBroker("tcp://"))
}

func TestValidateTopicRoot(t *testing.T) {
	assert.NoError(t, validateTopicRoot("globalsmallestfarm/scara"))
	assert.Error(t, validateTopicRoot(""))
	assert.Error(t, validateTopicRoot("farm/#"))
	assert.Error(t, validateTopicRoot("farm/"))
}
