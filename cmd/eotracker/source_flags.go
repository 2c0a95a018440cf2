package main

import (
	gocontext "context"
	"time"

	"github.com/pescuma/eotracker/lib/model"
	"github.com/pescuma/eotracker/lib/sources"
)

type sourceFlags struct {
	Source  string        `help:"Where to load orders from: bundled, workspace, an http(s) URL or a file. Default is the 'source' config or bundled."`
	Timeout time.Duration `help:"Timeout when loading from an URL. Zero means no timeout."`
}

func (f *sourceFlags) httpOptions() *sources.HTTPOptions {
	return &sources.HTTPOptions{
		Timeout: f.Timeout,
	}
}

func (f *sourceFlags) loadOrders(ctx *context) (*model.Orders, error) {
	return ctx.ws.LoadOrders(gocontext.Background(), f.Source, f.httpOptions())
}
