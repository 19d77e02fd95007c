package main

import (
	"reflect"
	"testing"

	harvest "github.com/IanTBlack/ooi-data-explorations"
)

func TestLoadConfig(t *testing.T) {
	loaded, err := loadConfig("./test-fixtures/good-config")
	if err != nil {
		t.Fatalf("err: %s", err)
	}

	expected := &harvestConfig{
		FetcherBin: "/usr/local/bin/m2m_request",
		OutputRoot: "/data/ooi",
		Sites: harvest.SiteTable{
			{
				Code: "CE02SHSM",
				SubLocations: []*harvest.SubLocation{
					{Name: "nsif", Node: "RID26", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
				},
			},
			{
				Code: "CE01ISSM",
				SubLocations: []*harvest.SubLocation{
					{Name: "nsif", Node: "RID16", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
					{Name: "seafloor", Node: "MFD35", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
				},
			},
		},
	}

	if !reflect.DeepEqual(loaded, expected) {
		t.Fatalf("\nexpected: \n\n%#v\ngot: \n\n%#v\n\n", expected, loaded)
	}

	if err := loaded.Sites.CheckValid(); err != nil {
		t.Fatalf("err: %s", err)
	}
}

func TestMergedConfig(t *testing.T) {
	loaded, err := loadConfig("./test-fixtures/merge-config")
	if err != nil {
		t.Fatalf("err: %s", err)
	}

	merged := newConfig().Merge(loaded)

	expected := &harvestConfig{
		FetcherBin: "/opt/ooi/bin/m2m_request",
		OutputRoot: ".",
		Sites:      harvest.DefaultSites,
	}

	if !reflect.DeepEqual(merged, expected) {
		t.Fatalf("\nexpected: \n\n%#v\ngot: \n\n%#v\n\n", expected, merged)
	}
}

func TestBadConfig(t *testing.T) {
	loaded, err := loadConfig("./test-fixtures/bad-config")
	if err != nil {
		t.Fatalf("err: %s", err)
	}

	if err := loaded.Sites.CheckValid(); err == nil {
		t.Fatal("expected site table to fail validation")
	}
}

func TestMissingConfig(t *testing.T) {
	if _, err := loadConfig("./test-fixtures/no-such-config"); err == nil {
		t.Fatal("expected load of missing config to fail")
	}
}
