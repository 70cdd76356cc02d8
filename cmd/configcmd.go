package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/BarthPaleologue/cloc-graph/config"
	"github.com/BarthPaleologue/cloc-graph/internal/apperr"
)

// ConfigCmd returns the config command and its subcommands.
func ConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration files",
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Write the default configuration to a file",
				ArgsUsage: "[path]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: configInitAction,
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Flags: append(runFlags(), append(outputFlags(),
					&cli.StringFlag{
						Name:  "as",
						Usage: "Encoding to print (json, yaml, toml)",
						Value: "json",
					},
				)...),
				Action: configShowAction,
			},
		},
	}
}

func configInitAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = config.FileBaseName + ".json"
	}

	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return apperr.Errorf(apperr.FileSystem, "%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return apperr.New(apperr.FileSystem, err)
		}
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return apperr.New(apperr.FileSystem, fmt.Errorf("failed to write config: %w", err))
	}
	fmt.Fprintf(c.App.Writer, "Wrote default configuration to %s\n", path)
	return nil
}

func configShowAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg, c.String("as"))
	if err != nil {
		return apperr.New(apperr.InvalidArguments, err)
	}
	if cfg.Source != "" {
		fmt.Fprintf(c.App.ErrWriter, "Loaded from %s\n", cfg.Source)
	}
	_, err = c.App.Writer.Write(data)
	return err
}
