package main

import (
	"fmt"

	"github.com/pescuma/eotracker/lib/model"
	"github.com/pescuma/eotracker/lib/stats"
)

type StatsCmd struct {
	sourceFlags

	Top int `default:"3" help:"How many orders to show in the impact and stall rankings. Zero hides them."`
}

func (c *StatsCmd) Run(ctx *context) error {
	orders, err := c.loadOrders(ctx)
	if err != nil {
		return err
	}

	col := orders.List()
	summary := stats.Summarize(col)

	tw := newTable(ctx.out)
	for _, st := range model.AllStatuses() {
		_, _ = fmt.Fprintf(tw, "%v\t%v\n", st, count(summary.Counts[st], "order"))
	}
	_, _ = fmt.Fprintf(tw, "Total\t%v\n", count(summary.Total, "order"))
	_ = tw.Flush()

	lawsuits := stats.LawsuitTotals(col)
	_, _ = fmt.Fprintf(ctx.out, "\n%v challenged in court by %v\n",
		count(lawsuits.Challenged, "order"), count(lawsuits.Lawsuits, "lawsuit"))

	if c.Top <= 0 {
		return nil
	}

	for _, r := range []struct {
		title string
		by    stats.Ranking
		value func(*model.Order) string
	}{
		{"Highest forecast impact", stats.ByImpact, formatImpact},
		{"Highest forecast stall", stats.ByStall, formatStall},
	} {
		top, err := stats.Top(col, r.by, c.Top)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(ctx.out, "\n%v\n", r.title)
		for _, o := range top {
			_, _ = fmt.Fprintf(ctx.out, "  %v %v %v\n", r.value(o), o.ID, shorten(o.Name, 60))
		}
	}

	return nil
}
