package main

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/net/context"
	"gopkg.in/urfave/cli.v1"

	"github.com/intel-hpdd/logging/debug"

	harvest "github.com/IanTBlack/ooi-data-explorations"
)

func init() {
	runCommand := cli.Command{
		Name:   "run",
		Usage:  "Dispatch every request in the harvest plan, one at a time",
		Action: runAction,
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "fetcher, f",
				Usage: "Retrieval command to invoke per request",
			},
			cli.StringFlag{
				Name:  "output, o",
				Usage: "Root directory for harvested files",
			},
			cli.BoolFlag{
				Name:  "strict",
				Usage: "Abort the run on the first failed request",
			},
		},
	}
	commands = append(commands, runCommand)
}

func runAction(c *cli.Context) error {
	logContext(c)

	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	requests, err := harvest.Plan(cfg.Sites)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	interruptHandler(func() {
		cancel()
	})

	stats := harvest.NewStats()
	dispatcher := harvest.NewCmdDispatcher(cfg.FetcherBin, cfg.OutputRoot)
	runner := harvest.NewRunner(dispatcher, c.Bool("strict"), stats)

	err = runner.Run(ctx, requests)
	stats.Log()
	return err
}

func interruptHandler(once func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM)

	go func() {
		stopping := false
		for sig := range c {
			debug.Printf("signal received: %s", sig)
			if !stopping {
				stopping = true
				once()
			}
		}
	}()
}
