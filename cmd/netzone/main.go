package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Flarenzy/netzone/docs"
	"github.com/Flarenzy/netzone/internal/app"
	"github.com/Flarenzy/netzone/internal/domain"
	"github.com/Flarenzy/netzone/internal/logger"
	"github.com/urfave/cli/v2"
)

//	@title			netzone API
//	@version		1.0
//	@description	Resolves IPv4 addresses to the network zone that owns them.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "netzone",
		Usage:  "IPv4 zone resolution service",
		Action: serve,
		Flags:  serveFlags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API (default)",
				Flags:  serveFlags(),
				Action: serve,
			},
			{
				Name:  "contains",
				Usage: "Check whether an address lies in a subnet without a database",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "ip", Usage: "IPv4 address", Required: true},
					&cli.StringFlag{Name: "subnet", Aliases: []string{"s"}, Usage: "subnet address", Required: true},
					&cli.StringFlag{Name: "cidr", Aliases: []string{"c"}, Usage: "prefix length", Required: true},
					&cli.StringFlag{Name: "matcher", Aliases: []string{"m"}, Usage: "textual or bitwise", EnvVars: []string{"MATCHER"}},
					&cli.StringFlag{Name: "ip-regex", Usage: "dotted-quad pattern", EnvVars: []string{"IP_REGEX"}},
				},
				Action: contains,
			},
		},
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen port, overrides PORT"},
		&cli.StringFlag{Name: "matcher", Aliases: []string{"m"}, Usage: "textual or bitwise, overrides MATCHER"},
	}
}

func serve(c *cli.Context) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	if port := c.String("port"); port != "" {
		cfg.Port = port
	}
	if matcher := c.String("matcher"); matcher != "" {
		cfg.Matcher = matcher
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func contains(c *cli.Context) error {
	cfg := app.Config{
		Matcher:   c.String("matcher"),
		IPPattern: c.String("ip-regex"),
	}
	ok, err := app.CheckContainment(c.Context, cfg, domain.ContainsInput{
		IP:     c.String("ip"),
		Subnet: c.String("subnet"),
		CIDR:   c.String("cidr"),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, ok)
	return err
}
