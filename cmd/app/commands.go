package main

import (
	"github.com/urfave/cli/v3"
)

// getCommands returns every command, grouped under a help category.
func getCommands(version string) []*cli.Command {
	groups := []struct {
		category string
		commands []*cli.Command
	}{
		{category: "system", commands: getSystemCommands(version)},
		{category: "master keys", commands: getKeyCommands()},
		{category: "wallets", commands: getWalletCommands()},
	}

	var cmds []*cli.Command
	for _, g := range groups {
		for _, cmd := range g.commands {
			cmd.Category = g.category
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
