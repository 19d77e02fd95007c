package harvest

import (
	"strings"
	"testing"
	"time"
)

func TestStats(t *testing.T) {
	stats := NewStats()
	r := exampleRequest()

	stats.Completed(r, time.Now().Add(-time.Millisecond))
	stats.Completed(r, time.Now().Add(-time.Millisecond))
	stats.Failed(r)

	ss := stats.GetSite(r.Site)
	if ss.completed.Count() != 2 {
		t.Fatalf("expected 2 completions, got %d", ss.completed.Count())
	}
	if ss.failures.Count() != 1 {
		t.Fatalf("expected 1 failure, got %d", ss.failures.Count())
	}

	if sites := stats.Sites(); len(sites) != 1 || sites[0] != "CE02SHSM" {
		t.Fatalf("unexpected site list: %v", sites)
	}

	if !strings.Contains(ss.String(), "fetched:2") {
		t.Fatalf("unexpected summary: %s", ss)
	}
}
