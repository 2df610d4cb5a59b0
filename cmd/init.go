package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/changelog-go/config"
	"github.com/urfave/cli/v2"
)

// InitCmd returns the init command.
func InitCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a configuration file with the default settings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Configuration file to create",
				Value: ".changelog.json",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: initAction,
	}
}

func initAction(c *cli.Context) error {
	path := c.String("path")
	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	statusColor.Fprintf(c.App.Writer, "Wrote default configuration to %s\n", path)
	return nil
}
