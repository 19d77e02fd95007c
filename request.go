package harvest

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

// Request is one fully-specified unit of retrieval work: a single
// (site, node, sensor, method, stream, deployment) extract destined
// for one output file.
type Request struct {
	Site        string
	SubLocation string
	Node        string
	Sensor      string
	Method      DeliveryMethod
	Stream      string
	Deployment  int

	// Optional deployment time window, passed through to the
	// retrieval command untouched. Empty means the full record.
	Begin string
	End   string
}

// DestPath returns the destination path of the request's output file,
// relative to the harvest output root. Downstream tooling depends on
// this exact layout.
func (r *Request) DestPath() string {
	site := strings.ToLower(r.Site)
	name := fmt.Sprintf("%s.%s.%s.deploy%02d.%s.%s%s",
		site, r.SubLocation, InstrumentClass, r.Deployment,
		r.Method, r.Stream, OutputExtension)
	return path.Join(site, r.SubLocation, InstrumentClass, name)
}

// Args translates the request into the argument convention of the
// external retrieval command, with the output file rooted at
// outputRoot.
func (r *Request) Args(outputRoot string) []string {
	args := []string{
		"-s", r.Site,
		"-n", r.Node,
		"-sn", r.Sensor,
		"-mt", r.Method.String(),
		"-st", r.Stream,
		"-dp", strconv.Itoa(r.Deployment),
	}
	if r.Begin != "" {
		args = append(args, "-bt", r.Begin)
	}
	if r.End != "" {
		args = append(args, "-et", r.End)
	}
	return append(args, "-o", path.Join(outputRoot, r.DestPath()))
}

func (r *Request) String() string {
	return fmt.Sprintf("%s/%s/%s deploy%02d %s %s",
		r.Site, r.Node, r.Sensor, r.Deployment, r.Method, r.Stream)
}
