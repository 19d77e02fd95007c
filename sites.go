package harvest

// DefaultSites is the compiled-in site table covering the PHSEN
// instruments on the Coastal Endurance moorings. Deployment counts
// advance with each mooring turn, so these defaults are expected to
// be overridden from a config file as new deployments happen.
var DefaultSites = SiteTable{
	{
		Code: "CE01ISSM",
		SubLocations: []*SubLocation{
			{Name: "nsif", Node: "RID16", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
			{Name: "seafloor", Node: "MFD35", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
		},
	},
	{
		Code: "CE02SHSM",
		SubLocations: []*SubLocation{
			{Name: "nsif", Node: "RID26", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
		},
	},
	{
		Code: "CE04OSSM",
		SubLocations: []*SubLocation{
			{Name: "nsif", Node: "RID26", Sensor: "06-PHSEND000", Deployments: 8, Current: 9},
		},
	},
	{
		Code: "CE06ISSM",
		SubLocations: []*SubLocation{
			{Name: "nsif", Node: "RID16", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
			{Name: "seafloor", Node: "MFD35", Sensor: "06-PHSEND000", Deployments: 8, Current: 9},
		},
	},
	{
		Code: "CE07SHSM",
		SubLocations: []*SubLocation{
			{Name: "nsif", Node: "RID26", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
			{Name: "seafloor", Node: "MFD35", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
		},
	},
	{
		Code: "CE09OSSM",
		SubLocations: []*SubLocation{
			{Name: "nsif", Node: "RID26", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
			{Name: "seafloor", Node: "MFD35", Sensor: "06-PHSEND000", Deployments: 9, Current: 10},
		},
	},
}
