package main

import (
	"github.com/pescuma/eotracker/lib/server"
)

type ServeCmd struct {
	sourceFlags

	Port        uint     `default:"2425" help:"Port to listen to."`
	AllowOrigin []string `default:"*" help:"Origins allowed to call the API from a browser."`
}

func (c *ServeCmd) Run(ctx *context) error {
	loader, err := ctx.ws.NewLoader(c.Source, c.httpOptions())
	if err != nil {
		return err
	}

	return server.Run(ctx.ws.Console(), loader, &server.Options{
		Port:         c.Port,
		AllowOrigins: c.AllowOrigin,
	})
}
