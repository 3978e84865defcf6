// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// globalFlags are inherited by every subcommand.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Path to the contacts file (overrides store.path)",
		},
		&cli.BoolFlag{
			Name:  "header",
			Usage: "Treat the first line of the contacts file as a header row",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
	}
}

// shellCommand starts the interactive menu
func shellCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Aliases: []string{"menu"},
		Usage:   "Interactive menu to list, add and search contacts",
		Action:  r.Shell,
	}
}

// listCommand prints every well-formed contact
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List saved contacts",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.List,
	}
}

// addCommand appends a contact
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a new contact",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Contact name",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "email",
				Aliases: []string{"e"},
				Usage:   "Contact email (optional)",
			},
		},
		Action: r.Add,
	}
}

// searchCommand prints rows with a field equal to the query
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage:     "Print rows where any field exactly matches the query",
		ArgsUsage: "<query>",
		Action:    r.Search,
	}
}

// browseCommand returns the TUI command for interactive browsing.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui", "ui"},
		Usage:   "Browse and filter contacts in a terminal UI",
		Action:  r.Browse,
	}
}

// exportCommand writes contacts to another format
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export contacts to csv, json, markdown, txt or a SQLite snapshot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format: csv, json, markdown, txt, sqlite",
				Value: "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path (\"-\" for stdout; database path for sqlite)",
			},
		},
		Action: r.Export,
	}
}

// backupCommand copies the contacts file
func backupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "Copy the contacts file before editing it by hand",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Backup path (default: contacts file path + backup.suffix)",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing backup",
			},
		},
		Action: r.Backup,
	}
}

// snapshotsCommand reads back and removes SQLite snapshots written by export.
func snapshotsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "snapshots",
		Usage: "Inspect contact snapshots stored by export --format sqlite",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "Snapshot database path (overrides database.path)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List snapshots, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.ListSnapshots,
			},
			{
				Name:      "show",
				Usage:     "Print the contacts captured by a snapshot",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.ShowSnapshot,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a snapshot and its contacts",
				ArgsUsage: "<id>",
				Action:    r.DeleteSnapshot,
			},
		},
	}
}

// setupCommand handles creation of the config, data file and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a config file from the built-in defaults",
				Action: r.SetupConfig,
			},
			{
				Name:   "data",
				Usage:  "Create an empty contacts file",
				Action: r.SetupData,
			},
			{
				Name:   "database",
				Usage:  "Initialize the snapshot database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}
