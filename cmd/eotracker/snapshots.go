package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type SnapshotsCmd struct {
}

func (c *SnapshotsCmd) Run(ctx *context) error {
	snapshots, err := ctx.ws.ListSnapshots()
	if err != nil {
		return err
	}

	if len(snapshots) == 0 {
		_, _ = fmt.Fprintln(ctx.out, "No snapshots imported yet")
		return nil
	}

	tw := newTable(ctx.out)
	_, _ = fmt.Fprintln(tw, "ID\tIMPORTED\tORDERS\tIGNORED\tSOURCE")
	for _, s := range snapshots {
		_, _ = fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\n",
			s.ID, humanize.Time(s.ImportedAt), humanize.Comma(int64(s.Orders)), s.Rejected, s.Source)
	}
	return tw.Flush()
}
