package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gwillem/scara/pkg/command"
	"github.com/gwillem/scara/pkg/panel"
	"github.com/gwillem/scara/pkg/render"
	"github.com/gwillem/scara/pkg/scara"
)

type PoseCommand struct {
	X       int     `short:"x" long:"x" default:"0" description:"X axis (arm), 0-512"`
	Y       int     `short:"y" long:"y" default:"0" description:"Y axis (shoulder), 0-512"`
	Z       int     `short:"z" long:"z" default:"0" description:"Z axis (height), 0-512"`
	Gripper int     `short:"g" long:"gripper" default:"0" description:"Gripper, 0-40"`
	Width   float64 `long:"width" default:"640" description:"Viewport width in pixels"`
	Height  float64 `long:"height" default:"480" description:"Viewport height in pixels"`
	Ops     bool    `long:"ops" description:"Also list the drawing primitives"`

	Config    string `long:"config" description:"Config file (default scara.json)"`
	TopicRoot string `long:"topic-root" description:"Topic root for command topics (overrides config)"`
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
)

func (c *PoseCommand) Execute(args []string) error {
	root, err := c.topicRoot()
	if err != nil {
		return err
	}

	axes := scara.Home.
		With(scara.XSpeed, c.X).
		With(scara.YSpeed, c.Y).
		With(scara.ZSpeed, c.Z).
		With(scara.Gripper, c.Gripper)

	var rec render.Recorder
	p := render.NewEngine(scara.DefaultGeometry()).Draw(&rec, axes, c.Width, c.Height)

	fmt.Println(headerStyle.Render("Pose"))
	fmt.Println(newTable("Quantity", "Value").Rows(poseRows(p)...).Render())
	fmt.Println()

	fmt.Println(headerStyle.Render("Commands"))
	fmt.Println(newTable("Topic", "Payload").Rows(commandRows(root, axes)...).Render())

	if c.Ops {
		fmt.Println()
		fmt.Println(headerStyle.Render("Drawing primitives"))
		fmt.Println(newTable("#", "Kind", "Color", "Geometry").Rows(opRows(rec.Ops)...).Render())
	}

	return nil
}

// topicRoot returns the --topic-root flag, or the configured root.
func (c *PoseCommand) topicRoot() (string, error) {
	if c.TopicRoot != "" {
		return c.TopicRoot, nil
	}
	cfg, err := panel.LoadConfigFrom(configPath(c.Config))
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.TopicRoot, nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return nameStyle
			}
			return cellStyle
		})
}

func poseRows(p scara.Pose) [][]string {
	return [][]string{
		{"Riser height", fmt.Sprintf("%.1f", p.RiserHeight)},
		{"Shoulder angle", fmt.Sprintf("%.1f° (%.1f°)", p.ShoulderDeg(), scara.NormalizeDeg(p.ShoulderDeg()))},
		{"Arm angle", fmt.Sprintf("%.1f° (%.1f°)", p.ArmDeg(), scara.NormalizeDeg(p.ArmDeg()))},
		{"Shoulder", p.Shoulder.String()},
		{"Elbow", p.Elbow.String()},
		{"Hand", p.Hand.String()},
		{"Gripper radius", fmt.Sprintf("%.1f", p.GripperRadius)},
	}
}

func commandRows(root string, axes scara.AxisState) [][]string {
	rows := make([][]string, 0, len(scara.AllChannels()))
	for _, ch := range scara.AllChannels() {
		v := command.Value(ch, axes.Value(ch))
		rows = append(rows, []string{command.Topic(root, ch), command.Payload(v)})
	}
	return rows
}

func opRows(ops []render.Op) [][]string {
	rows := make([][]string, 0, len(ops))
	for i, op := range ops {
		var geom string
		switch op.Kind {
		case render.OpFillRect:
			geom = fmt.Sprintf("x=%.1f y=%.1f w=%.1f h=%.1f", op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H)
		case render.OpLine:
			geom = fmt.Sprintf("%s → %s width=%.0f", op.From, op.To, op.Width)
		case render.OpFillCircle:
			geom = fmt.Sprintf("center=%s r=%.1f", op.From, op.Radius)
		case render.OpText:
			geom = fmt.Sprintf("%s %q", op.From, op.Text)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i), string(op.Kind), string(op.Color), geom})
	}
	return rows
}
