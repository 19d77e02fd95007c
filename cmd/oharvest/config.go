package main

import (
	"io/ioutil"

	"github.com/hashicorp/hcl"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/intel-hpdd/logging/debug"

	harvest "github.com/IanTBlack/ooi-data-explorations"
)

// harvestConfig is the oharvest configuration: where the retrieval
// command lives, where harvested files land, and the site table to
// expand. A config file overrides the compiled-in defaults.
type harvestConfig struct {
	FetcherBin string            `hcl:"fetcher_bin"`
	OutputRoot string            `hcl:"output_root"`
	Sites      harvest.SiteTable `hcl:"site"`
}

var configFlag = cli.StringFlag{
	Name:  "config, c",
	Usage: "Path to harvest config file",
}

func newConfig() *harvestConfig {
	return &harvestConfig{
		FetcherBin: harvest.DefaultFetcherBin,
		OutputRoot: ".",
		Sites:      harvest.DefaultSites,
	}
}

// Merge combines the other config with this one, with the other
// config's settings winning where both are set.
func (cfg *harvestConfig) Merge(other *harvestConfig) *harvestConfig {
	result := &harvestConfig{
		FetcherBin: cfg.FetcherBin,
		OutputRoot: cfg.OutputRoot,
		Sites:      cfg.Sites,
	}

	if other.FetcherBin != "" {
		result.FetcherBin = other.FetcherBin
	}
	if other.OutputRoot != "" {
		result.OutputRoot = other.OutputRoot
	}
	if len(other.Sites) > 0 {
		result.Sites = other.Sites
	}

	return result
}

func loadConfig(cfgFile string) (*harvestConfig, error) {
	data, err := ioutil.ReadFile(cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "read config file failed")
	}

	cfg := &harvestConfig{}
	if err := hcl.Decode(cfg, string(data)); err != nil {
		return nil, errors.Wrap(err, "decode config file failed")
	}

	return cfg, nil
}

// getConfig resolves the effective configuration for a command:
// defaults, then the config file, then command-line overrides. The
// site table is validated here so that nothing downstream sees a
// malformed table.
func getConfig(c *cli.Context) (*harvestConfig, error) {
	cfg := newConfig()

	if cfgFile := c.String("config"); cfgFile != "" {
		loaded, err := loadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(loaded)
	}

	if fetcher := c.String("fetcher"); fetcher != "" {
		cfg.FetcherBin = fetcher
	}
	if output := c.String("output"); output != "" {
		cfg.OutputRoot = output
	}

	if err := cfg.Sites.CheckValid(); err != nil {
		return nil, errors.Wrap(err, "invalid site table")
	}

	debug.Printf("fetcher: %s output: %s sites: %d", cfg.FetcherBin, cfg.OutputRoot, len(cfg.Sites))
	return cfg, nil
}
