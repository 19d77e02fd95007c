package harvest

import (
	"fmt"

	"github.com/pkg/errors"
)

// DeliveryMethod identifies the transport/recovery path a sensor's
// record took to reach OOI Net.
type DeliveryMethod int

const (
	// Telemetered data was radioed to shore while the mooring was
	// deployed.
	Telemetered DeliveryMethod = iota
	// RecoveredHost data was read from the platform data logger after
	// the mooring was recovered.
	RecoveredHost
	// RecoveredInst data was read directly from the instrument after
	// the mooring was recovered.
	RecoveredInst
)

// Methods lists every delivery method in dispatch order.
var Methods = []DeliveryMethod{Telemetered, RecoveredHost, RecoveredInst}

var methodNames = map[DeliveryMethod]string{
	Telemetered:   "telemetered",
	RecoveredHost: "recovered_host",
	RecoveredInst: "recovered_inst",
}

func (m DeliveryMethod) String() string {
	return methodNames[m]
}

// Stream returns the name of the PHSEN stream served for this
// delivery method. An out-of-range method would silently corrupt the
// destination naming, so it fails hard instead.
func (m DeliveryMethod) Stream() string {
	switch m {
	case Telemetered:
		return "phsen_abcdef_dcl_instrument"
	case RecoveredHost:
		return "phsen_abcdef_dcl_instrument_recovered"
	case RecoveredInst:
		return "phsen_abcdef_instrument"
	}
	panic(fmt.Sprintf("invalid delivery method %d", int(m)))
}

// ParseMethod maps a method name as it appears in configuration or on
// the command line to its DeliveryMethod.
func ParseMethod(name string) (DeliveryMethod, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown delivery method %q", name)
}

// MethodNames returns the valid delivery method names, in dispatch
// order.
func MethodNames() []string {
	var names []string
	for _, m := range Methods {
		names = append(names, m.String())
	}
	return names
}
