package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"

	"github.com/gwillem/scara/pkg/command"
	"github.com/gwillem/scara/pkg/panel"
	"github.com/gwillem/scara/pkg/scara"
	"github.com/gwillem/scara/pkg/transport"
)

type PanelCommand struct {
	Config    string `long:"config" description:"Config file (default scara.json)"`
	Broker    string `long:"broker" description:"MQTT broker URL (overrides config)"`
	TopicRoot string `long:"topic-root" description:"Topic root for command and status topics"`
	Hz        int    `long:"hz" description:"Render loop frequency"`
	Offline   bool   `long:"offline" description:"Simulate only, do not connect to the broker"`

	programOpts []tea.ProgramOption
}

const (
	headerHeight = 2  // title + blank line
	chartHeight  = 6  // trend chart rows
	footerHeight = 7  // log box height
	helpHeight   = 1  // key help line
	maxLogs      = 5  // number of log messages to show
	borderSize   = 2  // box border
	sliderWidth  = 34 // slider panel width, border included
)

// Slider order and labels, top to bottom.
var sliders = []struct {
	channel scara.Channel
	label   string
}{
	{scara.YSpeed, "Y Axis (Shoulder)"},
	{scara.XSpeed, "X Axis (Arm)"},
	{scara.ZSpeed, "Z Axis (Height)"},
	{scara.Gripper, "Gripper"},
}

// Channel colors - shared by the slider legend and the trend chart
var channelColors = map[scara.Channel]string{
	scara.XSpeed:  "46",  // green
	scara.YSpeed:  "196", // red
	scara.ZSpeed:  "129", // purple
	scara.Gripper: "226", // yellow
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196"))
	simStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("46"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	FastDown key.Binding
	FastUp   key.Binding
	Home     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.FastDown, k.FastUp, k.Home, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev axis")),
	Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next axis")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
	FastDown: key.NewBinding(key.WithKeys("pgdown", "H"), key.WithHelp("H", "decrease x10")),
	FastUp:   key.NewBinding(key.WithKeys("pgup", "L"), key.WithHelp("L", "increase x10")),
	Home:     key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "home (stop & reset)")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type panelModel struct {
	session  *panel.Session
	renderer *panel.Renderer
	chart    *streamlinechart.Model
	bar      progress.Model
	help     help.Model
	broker   string
	step     int
	selected int    // index into sliders
	frame    string // last rendered simulation
	width    int    // terminal width
	height   int    // terminal height
	logs     []string
	quitting bool
	lastAxes *scara.AxisState // previous axes, nil before the first frame
}

func (m *panelModel) addLog(msg string) {
	m.logs = append(m.logs, msg)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// Messages from the session and renderer
type frameMsg panel.Frame
type logMsg string

func waitForFrame(r *panel.Renderer) tea.Cmd {
	return func() tea.Msg {
		return frameMsg(<-r.Frames())
	}
}

func waitForLog(s *panel.Session) tea.Cmd {
	return func() tea.Msg {
		return logMsg(<-s.Logs())
	}
}

// canvasSize calculates the simulation canvas size from the terminal dimensions
func (m *panelModel) canvasSize() (cols, rows int) {
	if m.width == 0 || m.height == 0 {
		return 60, 18 // default size before we know terminal size
	}
	cols = max(m.width-sliderWidth-borderSize, 20)
	rows = max(m.height-headerHeight-(chartHeight+borderSize)-footerHeight-helpHeight-borderSize, 8)
	return cols, rows
}

func (m *panelModel) resize() {
	cols, rows := m.canvasSize()
	m.renderer.Resize(cols, rows)
	m.chart.Resize(max(m.width-borderSize-2, 20), chartHeight)
}

func initialPanelModel(s *panel.Session, r *panel.Renderer, broker string, step int) panelModel {
	chart := streamlinechart.New(80, chartHeight,
		streamlinechart.WithYRange(0, 100),
	)

	// Set up data set styles for each channel
	for _, ch := range scara.AllChannels() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(channelColors[ch]))
		chart.SetDataSetStyles(string(ch), runes.ThinLineStyle, style)
	}

	return panelModel{
		session:  s,
		renderer: r,
		chart:    &chart,
		bar: progress.New(
			progress.WithSolidFill("#ff0000"),
			progress.WithoutPercentage(),
			progress.WithWidth(sliderWidth-borderSize-4),
		),
		help:   help.New(),
		broker: broker,
		step:   step,
	}
}

func (m panelModel) Init() tea.Cmd {
	return tea.Batch(
		waitForFrame(m.renderer),
		waitForLog(m.session),
	)
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		ch := sliders[m.selected].channel
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.selected = (m.selected + len(sliders) - 1) % len(sliders)
		case key.Matches(msg, keys.Down):
			m.selected = (m.selected + 1) % len(sliders)
		case key.Matches(msg, keys.Left):
			m.session.Nudge(ch, -m.stepFor(ch))
		case key.Matches(msg, keys.Right):
			m.session.Nudge(ch, m.stepFor(ch))
		case key.Matches(msg, keys.FastDown):
			m.session.Nudge(ch, -10*m.stepFor(ch))
		case key.Matches(msg, keys.FastUp):
			m.session.Nudge(ch, 10*m.stepFor(ch))
		case key.Matches(msg, keys.Home):
			m.session.Home()
		}
		return m, nil

	case frameMsg:
		m.frame = msg.View
		axes := msg.Axes
		// Only update chart if an axis moved (freeze when idle)
		if m.lastAxes == nil || *m.lastAxes != axes {
			for _, ch := range scara.AllChannels() {
				m.chart.PushDataSet(string(ch), 100*float64(axes.Value(ch))/float64(ch.Max()))
			}
			m.chart.DrawAll()
			m.lastAxes = &axes
		}
		return m, waitForFrame(m.renderer)

	case logMsg:
		m.addLog(string(msg))
		return m, waitForLog(m.session)
	}

	return m, nil
}

// stepFor scales the configured step to the channel's range.
func (m panelModel) stepFor(ch scara.Channel) int {
	return max(m.step*ch.Max()/scara.AxisMax, 1)
}

func (m panelModel) View() string {
	if m.quitting {
		return "Control panel closed.\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString(titleStyle.Render("SCARA Control Panel"))
	sb.WriteString(statusStyle.Render(" - " + m.broker))
	if m.width > 0 {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("  [%dx%d]", m.width, m.height)))
	}
	sb.WriteString("\n\n")

	// Sliders next to the simulation
	_, rows := m.canvasSize()
	left := boxStyle.Width(sliderWidth - borderSize).Height(rows).Render(m.renderSliders())
	right := simStyle.Render(m.frame)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	sb.WriteString("\n")

	// Command trend
	sb.WriteString(boxStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	// Log box
	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(max(m.width-4, 20)).
		Foreground(lipgloss.Color("9")) // bright red

	var logLines string
	if len(m.logs) == 0 {
		logLines = statusStyle.Render("Waiting for broker...")
	} else {
		logLines = strings.Join(m.logs, "\n")
	}
	sb.WriteString(logStyle.Render(logLines))
	sb.WriteString("\n")

	sb.WriteString(m.help.View(keys))

	return sb.String()
}

func (m panelModel) renderSliders() string {
	axes := m.session.Axes()

	var sb strings.Builder
	sb.WriteString(selectedStyle.Render("Axis Control"))
	sb.WriteString("\n\n")
	for i, s := range sliders {
		v := axes.Value(s.channel)
		marker := "  "
		label := s.label
		if i == m.selected {
			marker = "▸ "
			label = selectedStyle.Render(label)
		}
		legend := lipgloss.NewStyle().Foreground(lipgloss.Color(channelColors[s.channel])).Render("━━")
		sb.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, legend, label,
			statusStyle.Render(fmt.Sprintf("%d/%d", v, s.channel.Max()))))
		sb.WriteString("  ")
		sb.WriteString(m.bar.ViewAs(float64(v) / float64(s.channel.Max())))
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(fmt.Sprintf("  → %s %d",
			s.channel, command.Value(s.channel, v))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (c *PanelCommand) Execute(args []string) error {
	cfg, err := panel.LoadConfigFrom(configPath(c.Config))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.Broker != "" {
		cfg.Broker = c.Broker
	}
	if c.TopicRoot != "" {
		cfg.TopicRoot = c.TopicRoot
	}
	if c.Hz > 0 {
		cfg.Hz = c.Hz
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var session *panel.Session
	broker := cfg.Broker

	if c.Offline {
		session = panel.NewSession(nil, cfg.TopicRoot)
		broker = "offline"
	} else {
		client := transport.New(transport.Config{
			Broker:           cfg.Broker,
			ClientID:         cfg.ClientID,
			ConnectTimeout:   cfg.Timeout(),
			OnConnect:        func(cl *transport.Client) { session.Connected(cl) },
			OnConnectionLost: func(err error) { session.ConnectionLost(err) },
		})
		defer client.Close()
		session = panel.NewSession(client, cfg.TopicRoot)

		// Connect in background; the panel is usable while it happens
		connected := client.Connect(ctx)
		go func() {
			if err := <-connected; err != nil && err != context.Canceled {
				session.ConnectFailed(err)
			}
		}()
	}

	renderer := panel.NewRenderer(session.State(), scara.DefaultGeometry(), cfg.Hz)
	stop := renderer.Start(ctx)
	defer stop()

	// Run TUI
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, c.programOpts...)
	p := tea.NewProgram(initialPanelModel(session, renderer, broker, cfg.Step), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run panel: %w", err)
	}

	return nil
}
