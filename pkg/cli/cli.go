// Package cli provides the command-line interface for appium-gestures.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "appium-url",
		Usage:   "Appium server URL",
		Value:   "http://127.0.0.1:4723",
		EnvVars: []string{"APPIUM_URL"},
	},
	&cli.StringFlag{
		Name:    "platform",
		Aliases: []string{"p"},
		Usage:   "Platform to run on (android, ios)",
		Value:   "android",
		EnvVars: []string{"GESTURES_PLATFORM"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to gestures.yaml tuning file",
		EnvVars: []string{"GESTURES_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Write diagnostic logs to this file",
		EnvVars: []string{"GESTURES_LOG_FILE"},
	},
	&cli.StringFlag{
		Name:  "app",
		Usage: "App package / bundle ID to target",
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "appium-gestures",
		Usage:   "Viewport-aware swipe, seek, and gesture helpers for Appium",
		Version: Version,
		Description: `Computes scroll boundaries from the device viewport and drives
precisely-sized swipe gestures against an Appium session.

Examples:
  appium-gestures boundaries --width 1080 --height 2340
  appium-gestures swipe up
  appium-gestures seek --selector 'Submit' --direction down`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			boundariesCommand,
			swipeCommand,
			seekCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
