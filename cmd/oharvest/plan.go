package main

import (
	"fmt"

	"gopkg.in/urfave/cli.v1"

	harvest "github.com/IanTBlack/ooi-data-explorations"
)

func init() {
	planCommand := cli.Command{
		Name:   "plan",
		Usage:  "Print the harvest plan without dispatching anything",
		Action: planAction,
		Flags: []cli.Flag{
			configFlag,
			cli.BoolFlag{
				Name:  "counts",
				Usage: "Summarize request counts per site instead of listing requests",
			},
		},
	}
	commands = append(commands, planCommand)
}

func planAction(c *cli.Context) error {
	logContext(c)

	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	requests, err := harvest.Plan(cfg.Sites)
	if err != nil {
		return err
	}

	if c.Bool("counts") {
		counts := make(map[string]int)
		for _, r := range requests {
			counts[r.Site]++
		}
		for _, site := range cfg.Sites {
			fmt.Printf("%s %d\n", site.Code, counts[site.Code])
		}
		fmt.Printf("total %d\n", len(requests))
		return nil
	}

	for _, r := range requests {
		fmt.Println(r.DestPath())
	}

	return nil
}
