package server

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/lineprefix"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/eotracker/lib/consoles"
	"github.com/pescuma/eotracker/lib/sources"
)

type Options struct {
	Port         uint
	AllowOrigins []string
}

func Run(console consoles.Console, loader *sources.Loader, opts *Options) error {
	s := newServer(console, loader, opts)

	console.Printf("Loading orders from %v...\n", loader.Source().Name())

	loader.Start(context.Background())
	defer loader.Close()

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts    *Options
	console consoles.Console
	loader  *sources.Loader
	logs    io.Writer
}

func newServer(console consoles.Console, loader *sources.Loader, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2425
	}
	if len(opts.AllowOrigins) == 0 {
		opts.AllowOrigins = []string{"*"}
	}

	return &server{
		opts:    opts,
		console: console,
		loader:  loader,
		logs: lineprefix.New(
			lineprefix.Writer(os.Stdout),
			lineprefix.PrefixFunc(func() string {
				return console.Prepare("")
			}),
		),
	}
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)

	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(s.logs), gin.Recovery())
	r.Use(cors.New(s.corsConfig()))

	s.initOrders(r)
	s.initStats(r)

	return r
}

func (s *server) corsConfig() cors.Config {
	result := cors.Config{
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}

	if lo.Contains(s.opts.AllowOrigins, "*") {
		result.AllowAllOrigins = true
	} else {
		result.AllowOrigins = s.opts.AllowOrigins
	}

	return result
}
