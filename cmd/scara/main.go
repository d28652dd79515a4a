package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gwillem/scara/pkg/panel"
)

type Options struct {
	Panel PanelCommand `command:"panel" alias:"run" description:"Open the interactive control panel"`
	Setup SetupCommand `command:"setup" description:"Configure the broker connection"`
	Pose  PoseCommand  `command:"pose" description:"Print the simulated pose for given axis values"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "SCARA - Operator control panel for a SCARA robot arm over MQTT"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}

// configPath returns p, or the default config file when p is empty.
func configPath(p string) string {
	if p == "" {
		return panel.DefaultConfigFile
	}
	return p
}
