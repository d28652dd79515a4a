// Package scara provides an operator control panel for SCARA robot arms.
//
// Four axes (arm, shoulder, height, gripper) are driven from the keyboard.
// Every change is published as an MQTT command for the arm controller, and
// the resulting pose is simulated live in the terminal.
//
// # Installation
//
//	go install github.com/gwillem/scara/cmd/scara@latest
//
// # Usage
//
// Optionally configure the broker first:
//
//	scara setup
//
// Then open the panel:
//
//	scara panel
//
// Inspect the kinematics for given axis values without a broker:
//
//	scara pose -x 512 -y 512 -z 256
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/scara: CLI with panel, setup and pose commands
//   - pkg/scara: Axes, arm geometry and kinematics
//   - pkg/command: Axis to command mapping and best-effort publishing
//   - pkg/render: Drawing primitives, terminal canvas and redraw loop
//   - pkg/transport: MQTT client
//   - pkg/panel: Operator session, frame renderer and configuration
package scara
