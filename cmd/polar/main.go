package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindera-gaming/go-polar/plane"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func newCommand(logger *logrus.Logger, w io.Writer) *cli.Command {
	verbosity := func(cmd *cli.Command) {
		if cmd.Bool("verbose") {
			logger.SetLevel(logrus.DebugLevel)
		}
	}

	return &cli.Command{
		Name:  "polar",
		Usage: "convert and inspect points in the plane",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log debug information to stderr",
				Sources: cli.EnvVars("POLAR_VERBOSE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "print a point built from X Y or label=value pairs",
				ArgsUsage: "[--] X Y | x=X y=Y | radius=R theta=T | radius=R degrees=D",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "polar",
						Usage: "render in polar form",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					verbosity(cmd)
					p, err := plane.Parse(cmd.Args().Slice()...)
					if err != nil {
						return err
					}
					if cmd.Bool("polar") {
						p.Polar()
					}
					logger.WithFields(logrus.Fields{"x": p.X(), "y": p.Y(), "mode": p.DisplayMode()}).Debug("parsed point")

					_, err = fmt.Fprintln(w, p)
					return err
				},
			},
			{
				Name:      "invert",
				Usage:     "print a point with its x and y swapped",
				ArgsUsage: "[--] X Y | label=value pairs",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					verbosity(cmd)
					p, err := plane.Parse(cmd.Args().Slice()...)
					if err != nil {
						return err
					}
					logger.WithFields(logrus.Fields{"x": p.X(), "y": p.Y()}).Debug("inverting point")

					_, err = fmt.Fprintln(w, p.Invert())
					return err
				},
			},
			{
				Name:      "to-polar",
				Usage:     "print the radius and angle of X Y",
				ArgsUsage: "[--] X Y",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "degrees",
						Usage: "print the angle in degrees",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					verbosity(cmd)
					x, y, err := plane.ParsePair(cmd.Args().Slice()...)
					if err != nil {
						return err
					}

					radius, theta := plane.CartesianToPolar(x, y)
					if cmd.Bool("degrees") {
						theta = plane.RadiansToDegrees(theta)
					}
					logger.WithFields(logrus.Fields{"radius": radius, "theta": theta}).Debug("converted to polar")

					_, err = fmt.Fprintf(w, "%f %f\n", radius, theta)
					return err
				},
			},
			{
				Name:      "to-cartesian",
				Usage:     "print the x and y of RADIUS THETA",
				ArgsUsage: "[--] RADIUS THETA",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "degrees",
						Usage: "read THETA in degrees",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					verbosity(cmd)
					radius, theta, err := plane.ParsePair(cmd.Args().Slice()...)
					if err != nil {
						return err
					}

					build := plane.FromPolar
					if cmd.Bool("degrees") {
						build = plane.FromPolarDegrees
					}
					p, err := build(radius, theta)
					if err != nil {
						return err
					}
					logger.WithFields(logrus.Fields{"x": p.X(), "y": p.Y()}).Debug("converted to cartesian")

					_, err = fmt.Fprintf(w, "%f %f\n", p.X(), p.Y())
					return err
				},
			},
		},
	}
}

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand(logger, os.Stdout).Run(ctx, os.Args); err != nil {
		logger.WithError(err).Error("failed")
		cancel()
		os.Exit(1)
	}
}
