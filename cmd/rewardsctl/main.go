// Command rewardsctl runs migrations and operator actions against the rewards database
// without going through the HTTP API.
package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("rewardsctl failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "rewardsctl",
		Usage: "tournament rewards operator tool",
		Commands: []*cli.Command{
			newMigrateCommand(),
			newDistributeCommand(),
			newResetCommand(),
			newPurgeCommand(),
		},
	}
}
