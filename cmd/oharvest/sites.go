package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"gopkg.in/urfave/cli.v1"
)

func init() {
	sitesCommand := cli.Command{
		Name:   "sites",
		Usage:  "Display the effective site table",
		Action: sitesAction,
		Flags: []cli.Flag{
			configFlag,
		},
	}
	commands = append(commands, sitesCommand)
}

func sitesAction(c *cli.Context) error {
	logContext(c)

	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SITE\tSUB-LOCATION\tNODE\tSENSOR\tDEPLOYMENTS\tCURRENT")
	for _, site := range cfg.Sites {
		for _, sub := range site.SubLocations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t1-%d\t%d\n",
				site.Code, sub.Name, sub.Node, sub.Sensor, sub.Deployments, sub.Current)
		}
	}
	return w.Flush()
}
