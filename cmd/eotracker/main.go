package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/pescuma/eotracker/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data. Default is ./.eotracker or ~/.eotracker if that does not exist."`

	Serve     ServeCmd     `cmd:"" help:"Serve the orders over HTTP."`
	Import    ImportCmd    `cmd:"" help:"Load orders from a source and store them in the workspace."`
	List      ListCmd      `cmd:"" help:"List orders, filtered and sorted."`
	Show      ShowCmd      `cmd:"" help:"Show the details of an order."`
	Stats     StatsCmd     `cmd:"" help:"Show how many orders are in each status."`
	Snapshots SnapshotsCmd `cmd:"" help:"List the snapshots imported into the workspace."`

	Config struct {
		Set ConfigSetCmd `cmd:"" help:"Set configuration parameters."`
		Get ConfigGetCmd `cmd:"" help:"Show configuration parameters."`
	} `cmd:""`
}

type context struct {
	ws  *workspace.Workspace
	out io.Writer
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	err = run(ctx, &context{
		ws:  ws,
		out: os.Stdout,
	})
	ctx.FatalIfErrorf(err)
}

// run executes the selected command and closes the workspace before any exit.
func run(k *kong.Context, ctx *context) error {
	err := k.Run(ctx)

	closeErr := ctx.ws.Close()
	if err == nil {
		err = closeErr
	}

	return err
}
