package main

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/scara/pkg/command"
	"github.com/gwillem/scara/pkg/panel"
	"github.com/gwillem/scara/pkg/scara"
)

func newTestModel() (panelModel, *panel.Session) {
	s := panel.NewSession(nil, command.DefaultRoot)
	r := panel.NewRenderer(s.State(), scara.DefaultGeometry(), 60)
	return initialPanelModel(s, r, "offline", 8), s
}

func press(m panelModel, k tea.KeyMsg) panelModel {
	next, _ := m.Update(k)
	return next.(panelModel)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPanelModel_Keys(t *testing.T) {
	m, s := newTestModel()

	// First slider is the shoulder.
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 8, s.Axes().Y)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, runeKey('L'))
	assert.Equal(t, 80, s.Axes().X)

	m = press(m, runeKey('h'))
	assert.Equal(t, 72, s.Axes().X)

	// Gripper steps scale with its smaller range.
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, s.Axes().Gripper)

	// Up wraps around from the first slider.
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(sliders)-1, m.selected)

	m = press(m, runeKey('0'))
	assert.Equal(t, scara.Home, s.Axes())
}

func TestPanelModel_Quit(t *testing.T) {
	m, _ := newTestModel()
	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, next.(panelModel).quitting)
	assert.Equal(t, "Control panel closed.\n", next.View())
}

func TestPanelModel_FrameAndView(t *testing.T) {
	m, _ := newTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(panelModel)
	cols, rows := m.canvasSize()
	assert.Equal(t, 120-sliderWidth-borderSize, cols)
	assert.GreaterOrEqual(t, rows, 8)

	next, cmd := m.Update(frameMsg(panel.Frame{View: "ARM-FRAME", Axes: scara.AxisState{Z: 10}}))
	m = next.(panelModel)
	assert.NotNil(t, cmd)
	require.NotNil(t, m.lastAxes)
	assert.Equal(t, 10, m.lastAxes.Z)

	view := m.View()
	assert.Contains(t, view, "SCARA Control Panel")
	assert.Contains(t, view, "ARM-FRAME")
	assert.Contains(t, view, "Z Axis (Height)")
	assert.True(t, strings.Contains(view, "Waiting for broker"))
}

func TestPanelModel_Logs(t *testing.T) {
	m, _ := newTestModel()
	for i := 0; i < maxLogs+3; i++ {
		next, _ := m.Update(logMsg("line"))
		m = next.(panelModel)
	}
	assert.Len(t, m.logs, maxLogs)
}

func TestPanelCommand_RunErrorIsReturned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &PanelCommand{
		Config:  filepath.Join(t.TempDir(), "scara.json"),
		Offline: true,
		programOpts: []tea.ProgramOption{
			tea.WithContext(ctx),
			tea.WithInput(strings.NewReader("")),
			tea.WithOutput(io.Discard),
		},
	}

	// A failed program run comes back as an error so deferred teardown runs.
	err := c.Execute(nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "run panel")
	assert.ErrorIs(t, err, tea.ErrProgramKilled)
}
