// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package shipper uploads finished archives to an S3 compatible bucket.
//
// Every archive is stored under <prefix>/<hostname>/<basename> next to a
// <basename>.sha256 sidecar carrying its digest. The sidecar doubles as
// the upload marker: an archive whose remote sidecar matches the local
// digest is skipped, so interrupted runs can be repeated safely.
package shipper // import "github.com/sysstat/sapcp/shipper"

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	sha256 "github.com/minio/sha256-simd"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sysstat/sapcp/telemetry"
)

// defaultConcurrency is the number of parallel uploads.
const defaultConcurrency = 4

const contentType = "application/octet-stream"

// Config holds the bucket coordinates for a Shipper.
type Config struct {
	// Bucket is the target bucket name.
	Bucket string
	// Prefix is prepended to every object key.
	Prefix string
	// Endpoint overrides the AWS endpoint, for S3 compatible stores.
	Endpoint string
	// Region overrides the region from the ambient AWS configuration.
	Region string
	// PathStyle addresses the bucket in the URL path instead of the
	// hostname. Required by most non-AWS stores.
	PathStyle bool
	// Concurrency caps parallel uploads. Zero selects the default.
	Concurrency int
}

// Shipper uploads archives and their digest sidecars to a bucket.
type Shipper struct {
	client *s3.Client
	cfg    Config
}

// New builds a Shipper from the ambient AWS configuration and c.
func New(ctx context.Context, c *Config) (*Shipper, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare aws configuration: %v", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Region != "" {
			o.Region = c.Region
		}
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.PathStyle
	})
	return &Shipper{client: client, cfg: *c}, nil
}

// Ship uploads the given archive files for hostname. Archives already
// present remotely with a matching digest are skipped. The first upload
// failure aborts the remaining queue.
func (sh *Shipper) Ship(ctx context.Context, hostname string, paths []string) error {
	concurrency := sh.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, p := range paths {
		g.Go(func() error {
			return sh.shipOne(ctx, hostname, p)
		})
	}
	return g.Wait()
}

func (sh *Shipper) shipOne(ctx context.Context, hostname, localPath string) error {
	digest, size, err := fileDigest(localPath)
	if err != nil {
		return err
	}

	base := filepath.Base(localPath)
	key := objectKey(sh.cfg.Prefix, hostname, base)
	sidecarKey := key + ".sha256"
	sidecar := sidecarContents(digest, base)

	match, err := sh.remoteDigestMatches(ctx, sidecarKey, sidecar)
	if err != nil {
		return err
	}
	if match {
		log.Debugf("Skipping %s: already shipped", localPath)
		return nil
	}

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer file.Close()

	checksum := base64.StdEncoding.EncodeToString(digest)
	_, err = sh.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:         &sh.cfg.Bucket,
		Key:            &key,
		Body:           file,
		ContentType:    aws.String(contentType),
		ChecksumSHA256: &checksum,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	_, err = sh.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &sh.cfg.Bucket,
		Key:         &sidecarKey,
		Body:        strings.NewReader(sidecar),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload digest of %s: %w", localPath, err)
	}

	telemetry.AddSlice([]telemetry.Metric{
		{ID: telemetry.IDArchivesShipped, Value: 1},
		{ID: telemetry.IDShipBytes, Value: telemetry.MetricValue(size)},
	})
	log.Infof("Shipped %s to s3://%s/%s", localPath, sh.cfg.Bucket, key)
	return nil
}

// remoteDigestMatches fetches the remote sidecar and compares it against
// the local one. A missing sidecar means the archive was never fully
// shipped.
func (sh *Shipper) remoteDigestMatches(ctx context.Context, sidecarKey, sidecar string) (bool, error) {
	resp, err := sh.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &sh.cfg.Bucket,
		Key:    &sidecarKey,
	})
	if err != nil {
		if isErrNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query %s: %w", sidecarKey, err)
	}
	defer resp.Body.Close()

	remote, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", sidecarKey, err)
	}
	return digestsEqual(string(remote), sidecar), nil
}

// digestsEqual compares the digest fields of two sidecar lines.
func digestsEqual(a, b string) bool {
	fieldsA := strings.Fields(a)
	fieldsB := strings.Fields(b)
	return len(fieldsA) > 0 && len(fieldsB) > 0 && fieldsA[0] == fieldsB[0]
}

// objectKey builds the remote key for an archive basename.
func objectKey(prefix, hostname, base string) string {
	return path.Join(prefix, hostname, base)
}

// sidecarContents renders the digest line stored next to an archive.
func sidecarContents(digest []byte, base string) string {
	return fmt.Sprintf("%x  %s\n", digest, base)
}

// fileDigest hashes the file and returns its digest and size.
func fileDigest(localPath string) ([]byte, int64, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open local file: %w", err)
	}
	defer file.Close()

	hasher := sha256.New()
	size, err := io.Copy(hasher, file)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to hash content of %q: %v", localPath, err)
	}
	return hasher.Sum(nil), size, nil
}

// isErrNoSuchKey checks whether the given AWS error indicates that the given key does not exist.
func isErrNoSuchKey(err error) bool {
	// The API is supposed to return `NoSuchKey` if an object doesn't
	// exist. In reality the Go client inspects the HTTP status code and
	// turns a 404 into `NotFound` without exposing the error code sent
	// by the API, so both are checked here.
	var noSuchKey *s3types.NoSuchKey
	var notFound *s3types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &notFound)
}
