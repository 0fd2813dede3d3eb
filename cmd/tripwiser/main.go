package main

import (
	"github.com/alecthomas/kong"

	"github.com/mmynk/tripwiser/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Serve   ServeCmd         `cmd:"" default:"1" help:"Run the Connect API server"`
	Token   TokenCmd         `cmd:"" help:"Mint a bearer token for development"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tripwiser"),
		kong.Description("Golf trip planner: expenses, pairings, skins and scorecards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := config.Load()
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(&cfg))
}
