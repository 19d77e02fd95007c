package main

import (
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"golang.org/x/net/context"

	"github.com/intel-hpdd/logging/alert"
	"github.com/intel-hpdd/logging/debug"
)

// s3Pusher copies harvested files into an S3 bucket
type s3Pusher struct {
	s3Svc  *s3.S3
	bucket string
	prefix string
}

func newS3Pusher(bucket, prefix, region string) *s3Pusher {
	return &s3Pusher{
		s3Svc:  s3.New(session.New(aws.NewConfig().WithRegion(region))),
		bucket: bucket,
		prefix: prefix,
	}
}

func (p *s3Pusher) destination(key string) string {
	return path.Join(p.prefix, key)
}

func (p *s3Pusher) Push(ctx context.Context, src, key string) error {
	start := time.Now()

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	uploader := s3manager.NewUploaderWithClient(p.s3Svc)
	out, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Body:        f,
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.destination(key)),
		ContentType: aws.String("application/x-netcdf"),
	})
	if err != nil {
		if multierr, ok := err.(s3manager.MultiUploadFailure); ok {
			alert.Warn("Upload error:", multierr.Code(), multierr.Message(), multierr.UploadID())
		}
		return err
	}

	debug.Printf("Pushed %d bytes in %v from %s to %s",
		fi.Size(), time.Since(start), src, out.Location)
	return nil
}
