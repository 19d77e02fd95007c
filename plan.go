package harvest

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type (
	// SubLocation is a named deployment position on a mooring (e.g.
	// the near-surface instrument frame) bound to the node and sensor
	// designators OOI Net uses for the instrument mounted there.
	SubLocation struct {
		Name        string `hcl:",key"`
		Node        string `hcl:"node"`
		Sensor      string `hcl:"sensor"`
		Deployments int    `hcl:"deployments"`
		Current     int    `hcl:"current"`
	}

	// Site is one mooring platform and the sub-locations harvested
	// from it.
	Site struct {
		Code         string         `hcl:",key"`
		SubLocations []*SubLocation `hcl:"sublocation"`
	}

	// SiteTable is the static harvest configuration: every site and
	// sub-location to request data for, in dispatch order.
	SiteTable []*Site
)

func (s *SubLocation) String() string {
	return fmt.Sprintf("%s (%s/%s, %d deployments, current %d)",
		s.Name, s.Node, s.Sensor, s.Deployments, s.Current)
}

func (s *SubLocation) checkValid() error {
	var errs []string

	if s.Name == "" {
		errs = append(errs, "sub-location name not set")
	}
	if s.Node == "" {
		errs = append(errs, fmt.Sprintf("Sub-location %s: node not set", s.Name))
	}
	if s.Sensor == "" {
		errs = append(errs, fmt.Sprintf("Sub-location %s: sensor not set", s.Name))
	}
	if s.Deployments < 1 {
		errs = append(errs, fmt.Sprintf("Sub-location %s: deployment count not set", s.Name))
	}
	if s.Current <= s.Deployments {
		errs = append(errs, fmt.Sprintf("Sub-location %s: current deployment must follow the historical range", s.Name))
	}

	if len(errs) > 0 {
		return errors.Errorf("Errors: %s", strings.Join(errs, ", "))
	}

	return nil
}

// CheckValid verifies every entry of the table before any request is
// built. A malformed table is a configuration error and nothing gets
// dispatched.
func (t SiteTable) CheckValid() error {
	sites := make(map[string]struct{})
	for _, site := range t {
		if site.Code == "" {
			return errors.New("site code not set")
		}
		if _, dup := sites[site.Code]; dup {
			return errors.Errorf("site %s: duplicate site entry", site.Code)
		}
		sites[site.Code] = struct{}{}

		if len(site.SubLocations) == 0 {
			return errors.Errorf("site %s: no sub-locations defined", site.Code)
		}

		subs := make(map[string]struct{})
		for _, sub := range site.SubLocations {
			if err := sub.checkValid(); err != nil {
				return errors.Wrapf(err, "site %s", site.Code)
			}
			if _, dup := subs[sub.Name]; dup {
				return errors.Errorf("site %s: duplicate sub-location %s", site.Code, sub.Name)
			}
			subs[sub.Name] = struct{}{}
		}
	}

	return nil
}

// Requests returns the number of requests the table expands to.
func (t SiteTable) Requests() int {
	var n int
	for _, site := range t {
		for _, sub := range site.SubLocations {
			n += len(Methods)*sub.Deployments + 1
		}
	}
	return n
}

func newRequest(site *Site, sub *SubLocation, method DeliveryMethod, deploy int) *Request {
	return &Request{
		Site:        site.Code,
		SubLocation: sub.Name,
		Node:        sub.Node,
		Sensor:      sub.Sensor,
		Method:      method,
		Stream:      method.Stream(),
		Deployment:  deploy,
	}
}

// Plan expands the table into the ordered list of harvest requests:
// for each sub-location, every historical deployment is requested
// once per delivery method, then the current deployment is requested
// via telemetered only. The expansion is a pure function of the
// table, so re-running it yields the identical sequence.
func Plan(table SiteTable) ([]*Request, error) {
	if err := table.CheckValid(); err != nil {
		return nil, err
	}

	requests := make([]*Request, 0, table.Requests())
	for _, site := range table {
		for _, sub := range site.SubLocations {
			for deploy := 1; deploy <= sub.Deployments; deploy++ {
				for _, method := range Methods {
					requests = append(requests, newRequest(site, sub, method, deploy))
				}
			}
			requests = append(requests, newRequest(site, sub, Telemetered, sub.Current))
		}
	}

	return requests, nil
}
