// Copyright (c) 2019 Ocean Observatories Initiative. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path"
	"time"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"golang.org/x/net/context"

	"github.com/intel-hpdd/logging/debug"
)

// gcsPusher copies harvested files into a GCS bucket
type gcsPusher struct {
	client *storage.Client
	bucket string
	prefix string
}

func newGcsPusher(ctx context.Context, bucket, prefix string) (*gcsPusher, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create gcs client failed")
	}
	return &gcsPusher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (p *gcsPusher) destination(key string) string {
	return path.Join(p.prefix, key)
}

func (p *gcsPusher) Push(ctx context.Context, src, key string) error {
	start := time.Now()

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	wc := p.client.Bucket(p.bucket).Object(p.destination(key)).NewWriter(ctx)
	n, err := io.Copy(wc, f)
	if err != nil {
		wc.Close()
		return errors.Wrapf(err, "upload of %s failed", src)
	}
	if err := wc.Close(); err != nil {
		return errors.Wrapf(err, "upload of %s failed", src)
	}

	debug.Printf("Pushed %d bytes in %v from %s to gs://%s/%s",
		n, time.Since(start), src, p.bucket, p.destination(key))
	return nil
}
