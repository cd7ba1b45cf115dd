package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/linguohua/pinner/api/types"
)

var pinCmd = &cli.Command{
	Name:  "pin",
	Usage: "Manage the daemon pinset",
	Subcommands: []*cli.Command{
		addPinCmd,
		listPinsCmd,
		removePinCmd,
	},
}

var recursiveFlag = &cli.BoolFlag{
	Name:  "recursive",
	Usage: "pin or unpin the whole referenced tree",
	Value: true,
}

var addPinCmd = &cli.Command{
	Name:      "add",
	Usage:     "Pin an object in the daemon pinset",
	ArgsUsage: "<path|cid>",
	Flags: []cli.Flag{
		recursiveFlag,
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		ctx := ReqContext(cctx)
		pinAPI, err := GetPinAPI(cctx)
		if err != nil {
			return err
		}

		pins, err := pinAPI.Add(ctx, cctx.Args().First(), cctx.Bool("recursive"))
		if err != nil {
			return err
		}

		for _, pin := range pins {
			fmt.Printf("pinned %s\n", pin.Cid)
		}
		return nil
	},
}

var listPinsCmd = &cli.Command{
	Name:  "ls",
	Usage: "List the objects in the daemon pinset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "type",
			Usage: "mode filter: direct | recursive | indirect | all",
			Value: "all",
		},
	},
	Action: func(cctx *cli.Context) error {
		mode, err := types.PinModeFromString(cctx.String("type"))
		if err != nil {
			return xerrors.Errorf("type flag: %w", err)
		}

		ctx := ReqContext(cctx)
		pinAPI, err := GetPinAPI(cctx)
		if err != nil {
			return err
		}

		pins, err := pinAPI.List(ctx, mode)
		if err != nil {
			return err
		}

		for _, pin := range pins {
			fmt.Printf("%s %s\n", pin.Cid, pin.Mode.String())
		}
		fmt.Printf("\ntotal:%d\n", len(pins))
		return nil
	},
}

var removePinCmd = &cli.Command{
	Name:      "rm",
	Usage:     "Remove an object from the daemon pinset",
	ArgsUsage: "<path|cid>",
	Flags: []cli.Flag{
		recursiveFlag,
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		ctx := ReqContext(cctx)
		pinAPI, err := GetPinAPI(cctx)
		if err != nil {
			return err
		}

		pins, err := pinAPI.Remove(ctx, cctx.Args().First(), cctx.Bool("recursive"))
		if err != nil {
			return err
		}

		for _, pin := range pins {
			fmt.Printf("unpinned %s\n", pin.Cid)
		}
		return nil
	},
}
