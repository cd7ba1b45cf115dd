package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/linguohua/pinner/build"
	lcli "github.com/linguohua/pinner/cli"
)

var log = logging.Logger("main")

const FlagPinnerConfig = "config"

func main() {
	app := &cli.App{
		Name:                 "pinner",
		Usage:                "Manage the pinset of a content addressed storage daemon",
		Version:              build.UserVersion(),
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    FlagPinnerConfig,
				EnvVars: []string{"PINNER_CONFIG_PATH"},
				Value:   "~/.pinner/config.toml",
				Usage:   "Specify pinner config file path",
			},
			&cli.StringFlag{
				Name:    "api",
				EnvVars: []string{"PINNER_API_URL"},
				Usage:   "daemon command api url, overrides the config file",
			},
			&cli.StringFlag{
				Name:    "token",
				EnvVars: []string{"PINNER_API_TOKEN"},
				Usage:   "bearer token for the daemon api, overrides the config file",
			},
		},
		Commands: lcli.Commands,
	}
	app.Setup()

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}
