package main

import (
	gocontext "context"
)

type ImportCmd struct {
	sourceFlags
}

func (c *ImportCmd) Run(ctx *context) error {
	_, err := ctx.ws.Import(gocontext.Background(), c.Source, c.httpOptions())
	return err
}
