// Package archive mirrors committed chart documents into an S3-compatible
// bucket (AWS S3, MinIO, ...). Objects are laid out as
//
//	{prefix}/{icao}/{snapshot id}/{binary id}-{chart id}.pdf
//
// so every capture keeps its own copy, matching the store's versioning.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/cryptox"
)

type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	AccessKey string
	SecretKey string
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool { return c.Bucket != "" }

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type S3Archiver struct {
	client objectPutter
	bucket string
	prefix string
}

// NewS3Archiver builds a client from cfg. Static credentials are used when
// an access key is given, the default AWS chain otherwise. A custom endpoint
// switches to path-style addressing.
func NewS3Archiver(ctx context.Context, cfg Config) (*S3Archiver, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive: bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archiver{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (a *S3Archiver) Archive(ctx context.Context, doc models.ChartDocument) (string, error) {
	key := Key(a.prefix, doc)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(doc.Data),
		ContentLength: aws.Int64(int64(len(doc.Data))),
		ContentType:   aws.String(doc.MimeType),
		Metadata: map[string]string{
			"icao":        doc.ICAO,
			"chart-id":    doc.ChartID,
			"chart-type":  doc.ChartType,
			"snapshot-id": strconv.FormatInt(doc.SnapshotID, 10),
			"blake2b":     cryptox.Digest(doc.Data),
		},
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", a.bucket, key, err)
	}
	return key, nil
}

// Key returns the object key for doc under prefix.
func Key(prefix string, doc models.ChartDocument) string {
	name := strconv.FormatInt(doc.BinaryID, 10) + "-" + doc.ChartID + extension(doc.MimeType)
	return path.Join(prefix, doc.ICAO, strconv.FormatInt(doc.SnapshotID, 10), name)
}

func extension(mimeType string) string {
	if mimeType == models.DefaultChartMimeType {
		return ".pdf"
	}
	return ""
}
