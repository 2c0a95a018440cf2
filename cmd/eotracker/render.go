package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aquilax/truncate"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/eotracker/lib/model"
)

var plurals = pluralize.NewClient()

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func count(n int, word string) string {
	return plurals.Pluralize(word, n, true)
}

func shorten(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.Truncate(s, width, truncate.DEFAULT_OMISSION, truncate.PositionEnd)
}

func formatDate(t time.Time, ok bool) string {
	if !ok {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func formatImpact(o *model.Order) string {
	var sb strings.Builder
	for _, filled := range o.ImpactSegments() {
		if filled {
			sb.WriteString("#")
		} else {
			sb.WriteString(".")
		}
	}
	return sb.String()
}

func formatStall(o *model.Order) string {
	return fmt.Sprintf("%v%%", o.StallPercent())
}
