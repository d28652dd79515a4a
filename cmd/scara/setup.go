package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gwillem/scara/pkg/panel"
)

type SetupCommand struct {
	Config string `long:"config" description:"Config file to write (default scara.json)"`
}

var brokerSchemes = []string{"tcp://", "ssl://", "ws://", "wss://", "mqtt://", "mqtts://"}

func validateBroker(s string) error {
	for _, scheme := range brokerSchemes {
		if strings.HasPrefix(s, scheme) && len(s) > len(scheme) {
			return nil
		}
	}
	return fmt.Errorf("broker URL must start with one of %s", strings.Join(brokerSchemes, ", "))
}

func validateTopicRoot(s string) error {
	if s == "" {
		return fmt.Errorf("topic root is required")
	}
	if strings.ContainsAny(s, "#+") || strings.HasSuffix(s, "/") {
		return fmt.Errorf("topic root must not contain wildcards or end with '/'")
	}
	return nil
}

func (c *SetupCommand) Execute(args []string) error {
	fmt.Println(headerStyle.Render("SCARA Setup"))
	fmt.Println(dimStyle.Render("━━━━━━━━━━━"))
	fmt.Println()

	// Start from the existing config file, if any; environment overrides
	// are for the session only and are not persisted.
	path := configPath(c.Config)
	cfg, err := panel.ReadConfigFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring unreadable config: %v\n", err)
		def := panel.DefaultConfig()
		cfg = &def
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("MQTT broker").
				Description("URL of the broker the arm controller listens on").
				Value(&cfg.Broker).
				Validate(validateBroker),
			huh.NewInput().
				Title("Topic root").
				Description("Commands go to <root>/command/<axis>").
				Value(&cfg.TopicRoot).
				Validate(validateTopicRoot),
			huh.NewInput().
				Title("Client ID").
				Description("Leave empty to generate one per session").
				Value(&cfg.ClientID),
			huh.NewSelect[int]().
				Title("Render rate").
				Options(
					huh.NewOption("30 Hz", 30),
					huh.NewOption("60 Hz", 60),
					huh.NewOption("120 Hz", 120),
				).
				Value(&cfg.Hz),
		),
	)

	if err := form.Run(); err != nil {
		fmt.Println()
		os.Exit(0)
	}

	if err := cfg.SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(successStyle.Render("Setup complete!"))
	fmt.Printf("Configuration saved to %s\n", path)
	fmt.Println()
	fmt.Println("Open the panel with: " + headerStyle.Render("scara panel"))

	return nil
}
