// Command cfgmst prints counter placement for control-flow graphs and
// structural hashes of PBQP cost tables described in YAML.
package main

import (
	"context"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/tlog"
)

func main() {
	mstCmd := &cli.Command{
		Name:        "mst",
		Description: "build the counter spanning tree of each CFG file",
		Action:      mstAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("profile", "", "profile YAML (block frequencies, edge counts) for a single CFG"),
			cli.NewFlag("debug", false, "log every discovered edge"),
		},
	}

	costsCmd := &cli.Command{
		Name:        "costs",
		Description: "intern cost vectors and matrices and print their hashes",
		Action:      costsAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "cfgmst",
		Description: "cfgmst inspects counter placement and PBQP cost tables",
		Commands: []*cli.Command{
			mstCmd,
			costsCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func mstAct(c *cli.Command) error {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	return runMST(ctx, os.Stdout, c.Args, c.String("profile"), c.Bool("debug"))
}

func costsAct(c *cli.Command) error {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		if err := runCosts(ctx, os.Stdout, a); err != nil {
			return err
		}
	}

	return nil
}
