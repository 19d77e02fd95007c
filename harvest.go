// Package harvest enumerates and dispatches OOI M2M data requests for
// the PHSEN (seawater pH) instruments deployed on the Coastal
// Endurance moorings. The package expands a static site table into an
// ordered plan of harvest requests and hands each one, in turn, to an
// external retrieval command. All of the actual network access, data
// processing and NetCDF handling happens inside that command; this
// package only decides what to ask for and where the output belongs.
package harvest

const (
	// DefaultFetcherBin is the external retrieval command driven by
	// the dispatcher when none is configured.
	DefaultFetcherBin = "m2m_request"

	// InstrumentClass is the instrument family harvested by this
	// tooling.
	InstrumentClass = "phsen"

	// OutputExtension is the extension of the data files written by
	// the retrieval command (NetCDF).
	OutputExtension = ".nc"
)
