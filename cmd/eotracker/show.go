package main

import (
	"fmt"

	"github.com/pescuma/eotracker/lib/model"
)

type ShowCmd struct {
	sourceFlags

	ID string `arg:"" help:"ID of the order to show."`
}

func (c *ShowCmd) Run(ctx *context) error {
	orders, err := c.loadOrders(ctx)
	if err != nil {
		return err
	}

	o, err := orders.Get(c.ID)
	if err != nil {
		return err
	}

	out := ctx.out
	_, _ = fmt.Fprintf(out, "%v\n", o.Name)
	_, _ = fmt.Fprintf(out, "  ID:              %v\n", o.ID)
	if o.Type != "" {
		_, _ = fmt.Fprintf(out, "  Type:            %v\n", o.Type)
	}
	_, _ = fmt.Fprintf(out, "  Status:          %v\n", o.Status)
	_, _ = fmt.Fprintf(out, "  Signed:          %v\n", formatDate(o.SignedTime()))
	_, _ = fmt.Fprintf(out, "  Last updated:    %v\n", formatDate(o.LastUpdatedTime()))
	_, _ = fmt.Fprintf(out, "  Forecast impact: %v (%v/%v)\n", formatImpact(o), o.ForecastImpact, model.MaxForecastImpact)
	_, _ = fmt.Fprintf(out, "  Forecast stall:  %v\n", formatStall(o))
	if o.Link != "" {
		_, _ = fmt.Fprintf(out, "  Link:            %v\n", o.Link)
	}

	if o.Summary != "" {
		_, _ = fmt.Fprintf(out, "\nSummary\n  %v\n", o.Summary)
	}
	if o.Notes != "" {
		_, _ = fmt.Fprintf(out, "\nNotes\n  %v\n", o.Notes)
	}

	_, _ = fmt.Fprintf(out, "\n%v\n", count(len(o.Lawsuits), "lawsuit"))
	for _, l := range o.Lawsuits {
		_, _ = fmt.Fprintf(out, "  %v: %v\n", l.CaseName, l.Description)
	}

	return nil
}
