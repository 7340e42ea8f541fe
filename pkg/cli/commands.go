package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appium-gestures/pkg/config"
	"github.com/devicelab-dev/appium-gestures/pkg/driver/appium"
	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
	"github.com/devicelab-dev/appium-gestures/pkg/logger"
)

var boundariesCommand = &cli.Command{
	Name:  "boundaries",
	Usage: "Print scroll boundaries and scrollable area for a viewport",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "width", Usage: "Viewport width in px", Required: true},
		&cli.IntFlag{Name: "height", Usage: "Viewport height in px", Required: true},
	},
	Action: func(c *cli.Context) error {
		opts, err := loadOptions(c)
		if err != nil {
			return err
		}

		vp := gesture.Viewport{Width: c.Int("width"), Height: c.Int("height")}
		bounds, area, err := gesture.ComputeBoundaries(vp, opts.CropFactors)
		if err != nil {
			return err
		}

		fmt.Printf("viewport:   %dx%d\n", vp.Width, vp.Height)
		fmt.Printf("boundaries: upper=%d lower=%d left=%d right=%d\n",
			bounds.Upper, bounds.Lower, bounds.Left, bounds.Right)
		fmt.Printf("scrollable: x=%d y=%d\n", area.X, area.Y)
		return nil
	},
}

var swipeCommand = &cli.Command{
	Name:      "swipe",
	Usage:     "Perform a full viewport swipe (up, down, left, right, previous, next)",
	ArgsUsage: "<direction>",
	Action: func(c *cli.Context) error {
		swipe, closeFn, err := newSwipe(c)
		if err != nil {
			return err
		}
		defer closeFn()

		switch c.Args().First() {
		case "up":
			return swipe.Up()
		case "down":
			return swipe.Down()
		case "left":
			return swipe.Left()
		case "right":
			return swipe.Right()
		case "previous":
			return swipe.Previous()
		case "next":
			return swipe.Next()
		default:
			return fmt.Errorf("unknown direction %q", c.Args().First())
		}
	},
}

var seekCommand = &cli.Command{
	Name:  "seek",
	Usage: "Swipe until an element is in view",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "strategy",
			Usage: "Locator strategy (xpath, accessibility id, -android uiautomator, ...)",
			Value: appium.StrategyAccessibilityID,
		},
		&cli.StringFlag{Name: "selector", Usage: "Locator value", Required: true},
		&cli.StringFlag{Name: "direction", Aliases: []string{"d"}, Usage: "Seek direction", Value: "down"},
	},
	Action: func(c *cli.Context) error {
		swipe, closeFn, err := newSwipe(c)
		if err != nil {
			return err
		}
		defer closeFn()

		return swipe.ElementIntoView(
			c.String("strategy"),
			c.String("selector"),
			gesture.SeekDirection(c.String("direction")),
		)
	},
}

func loadOptions(c *cli.Context) (gesture.Options, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return gesture.Options{}, err
		}
		return cfg.Options(), nil
	}
	cfg, err := config.LoadFromDir(".")
	if err != nil {
		return gesture.Options{}, err
	}
	return cfg.Options(), nil
}

func newSwipe(c *cli.Context) (*gesture.Swipe, func(), error) {
	if path := c.String("log-file"); path != "" {
		if err := logger.Init(path); err != nil {
			return nil, nil, err
		}
	}

	opts, err := loadOptions(c)
	if err != nil {
		return nil, nil, err
	}

	platform := gesture.Platform(c.String("platform"))
	caps := map[string]interface{}{
		"platformName": c.String("platform"),
	}
	if app := c.String("app"); app != "" {
		if platform == gesture.PlatformIOS {
			caps["appium:bundleId"] = app
		} else {
			caps["appium:appPackage"] = app
		}
	}

	drv, err := appium.NewDriver(c.String("appium-url"), caps)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to appium: %w", err)
	}
	logger.Info("session created on %s (%s)", c.String("appium-url"), platform)

	swipe, err := gesture.NewSwipe(drv, platform, opts)
	if err != nil {
		logger.Error("gesture setup failed: %v", err)
		drv.Close()
		return nil, nil, err
	}

	return swipe, func() {
		drv.Close()
		logger.Close()
	}, nil
}
