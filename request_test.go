package harvest

import (
	"reflect"
	"testing"
)

func exampleRequest() *Request {
	return &Request{
		Site:        "CE02SHSM",
		SubLocation: "nsif",
		Node:        "RID26",
		Sensor:      "06-PHSEND000",
		Method:      RecoveredHost,
		Stream:      RecoveredHost.Stream(),
		Deployment:  4,
	}
}

func TestDestPath(t *testing.T) {
	expected := "ce02shsm/nsif/phsen/ce02shsm.nsif.phsen.deploy04.recovered_host.phsen_abcdef_dcl_instrument_recovered.nc"
	if got := exampleRequest().DestPath(); got != expected {
		t.Fatalf("\nexpected: %s\ngot:      %s", expected, got)
	}
}

func TestArgs(t *testing.T) {
	expected := []string{
		"-s", "CE02SHSM",
		"-n", "RID26",
		"-sn", "06-PHSEND000",
		"-mt", "recovered_host",
		"-st", "phsen_abcdef_dcl_instrument_recovered",
		"-dp", "4",
		"-o", "/data/ooi/ce02shsm/nsif/phsen/ce02shsm.nsif.phsen.deploy04.recovered_host.phsen_abcdef_dcl_instrument_recovered.nc",
	}

	got := exampleRequest().Args("/data/ooi")
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nexpected: %v\ngot:      %v", expected, got)
	}
}

func TestArgsWithWindow(t *testing.T) {
	r := exampleRequest()
	r.Begin = "2019-01-01T00:00:00.000Z"
	r.End = "2019-06-30T23:59:59.000Z"

	got := r.Args(".")

	expected := []string{
		"-s", "CE02SHSM",
		"-n", "RID26",
		"-sn", "06-PHSEND000",
		"-mt", "recovered_host",
		"-st", "phsen_abcdef_dcl_instrument_recovered",
		"-dp", "4",
		"-bt", "2019-01-01T00:00:00.000Z",
		"-et", "2019-06-30T23:59:59.000Z",
		"-o", "ce02shsm/nsif/phsen/ce02shsm.nsif.phsen.deploy04.recovered_host.phsen_abcdef_dcl_instrument_recovered.nc",
	}

	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nexpected: %v\ngot:      %v", expected, got)
	}
}
