package main

import (
	"fmt"

	"github.com/pkg/errors"
)

type ConfigSetCmd struct {
	Config string `arg:"" help:"Configuration name to change. Use 'source' to change the default source."`
	Value  string `arg:"" help:"Configuration value to set."`
}

func (c *ConfigSetCmd) Run(ctx *context) error {
	changed, err := ctx.ws.SetConfig(c.Config, c.Value)
	if err != nil {
		return err
	}

	if changed {
		_, _ = fmt.Fprintf(ctx.out, "Set '%v' = '%v'\n", c.Config, c.Value)
	} else {
		_, _ = fmt.Fprintf(ctx.out, "'%v' was already '%v'\n", c.Config, c.Value)
	}

	return nil
}

type ConfigGetCmd struct {
	Config string `arg:"" help:"Configuration name to show."`
}

func (c *ConfigGetCmd) Run(ctx *context) error {
	v, ok, err := ctx.ws.GetConfig(c.Config)
	if err != nil {
		return err
	}

	if !ok {
		return errors.Errorf("config not set: %v", c.Config)
	}

	_, _ = fmt.Fprintln(ctx.out, v)

	return nil
}
