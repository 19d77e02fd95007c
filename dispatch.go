// Copyright (c) 2019 Ocean Observatories Initiative. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harvest

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"time"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"

	"golang.org/x/net/context"

	"github.com/intel-hpdd/logging/alert"
	"github.com/intel-hpdd/logging/audit"
	"github.com/intel-hpdd/logging/debug"
)

type (
	// Dispatcher hands a single harvest request to the external
	// retrieval command and reports whether the invocation succeeded.
	// It does not retry and does not inspect the produced file.
	Dispatcher interface {
		Dispatch(ctx context.Context, r *Request) error
	}

	// CmdDispatcher invokes the configured retrieval command once per
	// request, forwarding the child's output to the audit log.
	CmdDispatcher struct {
		FetcherBin string
		OutputRoot string
	}

	// Runner drives a plan through a dispatcher, strictly one request
	// at a time. By default a failed request is logged and the run
	// continues; with Strict set the run aborts on the first failure.
	Runner struct {
		Dispatcher Dispatcher
		Strict     bool
		Stats      *Stats

		runID string
	}
)

// NewCmdDispatcher returns a dispatcher that executes fetcherBin with
// output files rooted at outputRoot.
func NewCmdDispatcher(fetcherBin, outputRoot string) *CmdDispatcher {
	return &CmdDispatcher{
		FetcherBin: fetcherBin,
		OutputRoot: outputRoot,
	}
}

// Dispatch runs the retrieval command for one request and waits for
// it to exit. The destination directory is created first; the command
// only writes the file.
func (d *CmdDispatcher) Dispatch(ctx context.Context, r *Request) error {
	dest := path.Join(d.OutputRoot, r.DestPath())
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, "mkdir for %s failed", dest)
	}

	cmd := exec.Command(d.FetcherBin, r.Args(d.OutputRoot)...)

	prefix := path.Base(d.FetcherBin)
	cmd.Stdout = audit.Writer().Prefix(prefix + " ")
	cmd.Stderr = audit.Writer().Prefix(prefix + "-stderr ")

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "cmd failed %q", cmd)
	}
	debug.Printf("Started %s (PID: %d) for %s", cmd.Path, cmd.Process.Pid, r)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		cmd.Process.Kill()
		<-done
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return errors.Wrapf(err, "fetch of %s failed", r)
		}
	}

	return nil
}

// NewRunner returns a Runner for the supplied dispatcher.
func NewRunner(d Dispatcher, strict bool, stats *Stats) *Runner {
	return &Runner{
		Dispatcher: d,
		Strict:     strict,
		Stats:      stats,
		runID:      uuid.New(),
	}
}

// Run dispatches every request in plan order. The context is checked
// between requests, so an interrupted run stops cleanly at a request
// boundary.
func (rn *Runner) Run(ctx context.Context, requests []*Request) error {
	audit.Logf("run %s: dispatching %d requests", rn.runID, len(requests))

	for i, r := range requests {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		audit.Logf("run %s: [%d/%d] %s -> %s", rn.runID, i+1, len(requests), r, r.DestPath())
		start := time.Now()

		err := rn.Dispatcher.Dispatch(ctx, r)
		if err == context.Canceled || errors.Cause(err) == context.Canceled {
			return err
		}
		if err != nil {
			if rn.Stats != nil {
				rn.Stats.Failed(r)
			}
			if rn.Strict {
				return errors.Wrapf(err, "run %s aborted at request %d", rn.runID, i+1)
			}
			alert.Warnf("run %s: %s failed, continuing: %s", rn.runID, r, err)
			continue
		}

		if rn.Stats != nil {
			rn.Stats.Completed(r, start)
		}
	}

	return nil
}
