package harvest

import (
	"reflect"
	"testing"
)

func TestMethodNames(t *testing.T) {
	expected := []string{"telemetered", "recovered_host", "recovered_inst"}
	if !reflect.DeepEqual(MethodNames(), expected) {
		t.Fatalf("\nexpected: %v\ngot:      %v", expected, MethodNames())
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods {
		parsed, err := ParseMethod(m.String())
		if err != nil {
			t.Fatalf("err: %s", err)
		}
		if parsed != m {
			t.Fatalf("expected %s, got %s", m, parsed)
		}
	}

	if _, err := ParseMethod("carrier_pigeon"); err == nil {
		t.Fatal("expected parse of unknown method to fail")
	}
}

func TestStreams(t *testing.T) {
	var tests = []struct {
		method DeliveryMethod
		stream string
	}{
		{Telemetered, "phsen_abcdef_dcl_instrument"},
		{RecoveredHost, "phsen_abcdef_dcl_instrument_recovered"},
		{RecoveredInst, "phsen_abcdef_instrument"},
	}

	for _, tc := range tests {
		if got := tc.method.Stream(); got != tc.stream {
			t.Fatalf("%s: expected stream %s, got %s", tc.method, tc.stream, got)
		}
	}
}

func TestStreamInvalidMethod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected invalid delivery method to panic")
		}
	}()

	DeliveryMethod(42).Stream()
}
