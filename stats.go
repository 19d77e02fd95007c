package harvest

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rcrowley/go-metrics"

	"github.com/intel-hpdd/logging/audit"
)

// Stats is a synchronized container for SiteStats instances
type Stats struct {
	sync.Mutex
	sites map[string]*SiteStats
}

// SiteStats is a per-site container of statistics for the requests
// dispatched against that mooring
type SiteStats struct {
	completed metrics.Timer
	failures  metrics.Counter
}

// NewStats initializes a new Stats container
func NewStats() *Stats {
	return &Stats{
		sites: make(map[string]*SiteStats),
	}
}

// Completed updates timings when a request has been dispatched
// successfully
func (s *Stats) Completed(r *Request, start time.Time) {
	s.GetSite(r.Site).completed.UpdateSince(start)
}

// Failed counts a request whose dispatch failed
func (s *Stats) Failed(r *Request) {
	s.GetSite(r.Site).failures.Inc(1)
}

// GetSite returns the *SiteStats corresponding to the supplied site
// code
func (s *Stats) GetSite(code string) *SiteStats {
	s.Lock()
	defer s.Unlock()
	ss, ok := s.sites[code]
	if !ok {
		ss = &SiteStats{
			completed: metrics.NewTimer(),
			failures:  metrics.NewCounter(),
		}
		metrics.Register(fmt.Sprintf("%sCompleted", code), ss.completed)
		metrics.Register(fmt.Sprintf("%sFailures", code), ss.failures)
		s.sites[code] = ss
	}
	return ss
}

// Sites returns the site codes with instrumented requests, sorted for
// stable log output
func (s *Stats) Sites() (v []string) {
	s.Lock()
	defer s.Unlock()
	for k := range s.sites {
		v = append(v, k)
	}
	sort.Strings(v)
	return
}

// Log writes a per-site summary to the audit log at the end of a run
func (s *Stats) Log() {
	for _, code := range s.Sites() {
		audit.Logf("site:%s %s", code, s.GetSite(code))
	}
}

func (ss *SiteStats) String() string {
	return fmt.Sprintf("fetched:%v failed:%v min:%v max:%v mean:%v",
		humanize.Comma(ss.completed.Count()),
		humanize.Comma(ss.failures.Count()),
		time.Duration(ss.completed.Min()),
		time.Duration(ss.completed.Max()),
		time.Duration(int64(ss.completed.Mean())))
}
