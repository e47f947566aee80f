package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestNewApp_CommandTree(t *testing.T) {
	app := newApp()

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"migrate", "distribute", "reset", "purge"}, names)

	migrate := app.Command("migrate")
	require.NotNil(t, migrate)
	var subs []string
	for _, c := range migrate.Subcommands {
		subs = append(subs, c.Name)
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, subs)
}

func TestDistribute_RequiresTournament(t *testing.T) {
	app := newApp()
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"rewardsctl", "distribute"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), flagTournament)
}

func TestReset_RequiresReason(t *testing.T) {
	app := newApp()
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"rewardsctl", "reset", "--tournament", "3"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), flagReason)
}
