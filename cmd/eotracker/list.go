package main

import (
	"fmt"

	"github.com/pescuma/eotracker/lib/filters"
	"github.com/pescuma/eotracker/lib/model"
)

type ListCmd struct {
	sourceFlags

	Search string `short:"q" help:"Only show orders whose name or summary contain this text."`
	Status string `help:"Only show orders with this status. Accepts the status text or key. Default is all."`
	Sort   string `default:"signedDate" help:"Field to sort by: id, name, type, status, signedDate, lastUpdated, forecastImpact, forecastStall or lawsuits."`
	Asc    bool   `xor:"direction" help:"Sort ascending."`
	Desc   bool   `xor:"direction" help:"Sort descending. This is the default."`
	Limit  int    `short:"n" help:"Maximum number of orders to show. Zero shows all."`
	Width  int    `default:"60" help:"Maximum width of the name column. Zero disables truncation."`
}

func (c *ListCmd) Run(ctx *context) error {
	q, err := c.query()
	if err != nil {
		return err
	}

	orders, err := c.loadOrders(ctx)
	if err != nil {
		return err
	}

	list, err := filters.Derive(orders.List(), q)
	if err != nil {
		return err
	}

	total := len(list)

	if c.Limit > 0 {
		list = filters.Paginate(list, nil, &c.Limit)
	}

	c.print(ctx, list, total)

	return nil
}

func (c *ListCmd) query() (filters.Query, error) {
	status, err := filters.ParseStatusFilter(c.Status)
	if err != nil {
		return filters.Query{}, err
	}

	key, err := filters.ParseSortKey(c.Sort)
	if err != nil {
		return filters.Query{}, err
	}

	dir := filters.Descending
	if c.Asc {
		dir = filters.Ascending
	}

	return filters.DefaultQuery().
		WithSearch(c.Search).
		WithStatus(status).
		WithSort(key, dir), nil
}

func (c *ListCmd) print(ctx *context, list []*model.Order, total int) {
	tw := newTable(ctx.out)

	_, _ = fmt.Fprintln(tw, "ID\tSIGNED\tSTATUS\tIMPACT\tSTALL\tLAWSUITS\tNAME")
	for _, o := range list {
		_, _ = fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			o.ID,
			formatDate(o.SignedTime()),
			o.Status,
			formatImpact(o),
			formatStall(o),
			len(o.Lawsuits),
			shorten(o.Name, c.Width),
		)
	}
	_ = tw.Flush()

	if len(list) == total {
		_, _ = fmt.Fprintf(ctx.out, "\n%v\n", count(total, "order"))
	} else {
		_, _ = fmt.Fprintf(ctx.out, "\nShowing %v of %v\n", len(list), count(total, "order"))
	}
}
