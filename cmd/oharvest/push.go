package main

import (
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"gopkg.in/urfave/cli.v1"

	"github.com/intel-hpdd/logging/alert"
	"github.com/intel-hpdd/logging/audit"
	"github.com/intel-hpdd/logging/debug"

	harvest "github.com/IanTBlack/ooi-data-explorations"
)

// pusher copies one harvested file to its key in an object store.
type pusher interface {
	Push(ctx context.Context, src, key string) error
}

func init() {
	pushCommand := cli.Command{
		Name:      "push",
		Usage:     "Upload harvested files to object storage",
		ArgsUsage: "s3://bucket/prefix | gs://bucket/prefix",
		Action:    pushAction,
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "output, o",
				Usage: "Root directory of harvested files",
			},
			cli.StringFlag{
				Name:  "region",
				Usage: "AWS region for s3:// destinations",
				Value: "us-east-1",
			},
			cli.BoolFlag{
				Name:  "strict",
				Usage: "Abort the push on the first failed upload",
			},
		},
	}
	commands = append(commands, pushCommand)
}

func newPusher(ctx context.Context, dest, region string) (pusher, error) {
	u, err := url.Parse(dest)
	if err != nil {
		return nil, errors.Wrapf(err, "bad destination %q", dest)
	}
	prefix := strings.TrimPrefix(u.Path, "/")

	switch u.Scheme {
	case "s3":
		return newS3Pusher(u.Host, prefix, region), nil
	case "gs":
		return newGcsPusher(ctx, u.Host, prefix)
	}
	return nil, errors.Errorf("unsupported destination scheme %q", u.Scheme)
}

// pushRequests uploads the already-harvested output files of the
// plan, in plan order. Files the plan names but the harvest has not
// produced yet are skipped. A failed upload is logged and the push
// continues unless strict is set.
func pushRequests(ctx context.Context, p pusher, outputRoot string, requests []*harvest.Request, strict bool) (pushed, missing int, err error) {
	for _, r := range requests {
		select {
		case <-ctx.Done():
			return pushed, missing, ctx.Err()
		default:
		}

		src := path.Join(outputRoot, r.DestPath())
		if _, serr := os.Stat(src); os.IsNotExist(serr) {
			debug.Printf("skipping %s: not harvested", src)
			missing++
			continue
		}

		if perr := p.Push(ctx, src, r.DestPath()); perr != nil {
			if strict {
				return pushed, missing, errors.Wrapf(perr, "push of %s failed", src)
			}
			alert.Warnf("push of %s failed, continuing: %s", src, perr)
			continue
		}
		pushed++
	}

	return pushed, missing, nil
}

func pushAction(c *cli.Context) error {
	logContext(c)

	if len(c.Args()) != 1 {
		return errors.New("push requires a destination URL (s3://bucket/prefix or gs://bucket/prefix)")
	}

	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	// The plan, not a directory walk, decides what gets pushed: only
	// files at destinations the enumerator owns are uploaded.
	requests, err := harvest.Plan(cfg.Sites)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	interruptHandler(func() {
		cancel()
	})

	p, err := newPusher(ctx, c.Args().First(), c.String("region"))
	if err != nil {
		return err
	}

	pushed, missing, err := pushRequests(ctx, p, cfg.OutputRoot, requests, c.Bool("strict"))
	if err != nil {
		return err
	}

	audit.Logf("pushed %d files (%d not yet harvested)", pushed, missing)
	return nil
}
