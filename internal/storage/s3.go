// Package storage wraps the S3 bucket that holds uploaded images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Options configures the bucket client.
type Options struct {
	Bucket        string
	Region        string
	Endpoint      string // set for S3-compatible stores such as MinIO
	PublicBaseURL string
}

// Info is the non-secret part of the configuration, safe to show in
// diagnostics.
type Info struct {
	Bucket         string `json:"bucket"`
	Region         string `json:"region"`
	Endpoint       string `json:"endpoint,omitempty"`
	HasCredentials bool   `json:"hasCredentials"`
}

type Client struct {
	s3      *s3.Client
	presign *s3.PresignClient
	creds   aws.CredentialsProvider
	opts    Options
}

// New loads AWS credentials from the default chain (environment, shared
// config, instance role).
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Bucket == "" {
		return nil, errors.New("storage: S3_BUCKET is required")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}
	return NewWithConfig(awsCfg, opts), nil
}

func NewWithConfig(awsCfg aws.Config, opts Options) *Client {
	if opts.Region == "" {
		opts.Region = awsCfg.Region
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &Client{
		s3:      client,
		presign: s3.NewPresignClient(client),
		creds:   awsCfg.Credentials,
		opts:    opts,
	}
}

// PresignPut returns a URL that lets the holder PUT one object at key with
// the given content type until ttl elapses.
func (c *Client) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	req, err := c.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.opts.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("storage: presign put %s: %w", key, err)
	}
	return req.URL, nil
}

// PublicURL is where the object at key is served from once uploaded.
func (c *Client) PublicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if c.opts.PublicBaseURL != "" {
		return strings.TrimSuffix(c.opts.PublicBaseURL, "/") + "/" + escaped
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.opts.Bucket, c.opts.Region, escaped)
}

// Check verifies that the bucket exists and the credentials can reach it.
func (c *Client) Check(ctx context.Context) error {
	if _, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.opts.Bucket)}); err != nil {
		return fmt.Errorf("storage: head bucket %s: %w", c.opts.Bucket, err)
	}
	return nil
}

func (c *Client) Info(ctx context.Context) Info {
	info := Info{Bucket: c.opts.Bucket, Region: c.opts.Region, Endpoint: c.opts.Endpoint}
	if c.creds != nil {
		if creds, err := c.creds.Retrieve(ctx); err == nil && creds.HasKeys() {
			info.HasCredentials = true
		}
	}
	return info
}

// ApplyCORS replaces the bucket CORS configuration with rules.
func (c *Client) ApplyCORS(ctx context.Context, rules []types.CORSRule) error {
	_, err := c.s3.PutBucketCors(ctx, &s3.PutBucketCorsInput{
		Bucket:            aws.String(c.opts.Bucket),
		CORSConfiguration: &types.CORSConfiguration{CORSRules: rules},
	})
	if err != nil {
		return fmt.Errorf("storage: put bucket cors %s: %w", c.opts.Bucket, err)
	}
	return nil
}

// ExpectedCORS is the CORS configuration browsers need to PUT directly to
// presigned URLs and read the uploaded images back.
func ExpectedCORS(origins []string) []types.CORSRule {
	return []types.CORSRule{{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "PUT", "HEAD"},
		AllowedHeaders: []string{"*"},
		ExposeHeaders:  []string{"ETag"},
		MaxAgeSeconds:  aws.Int32(3000),
	}}
}

// UploadKey namespaces an object under the uploading user and a random id.
// The extension comes from filename, falling back to the content subtype.
func UploadKey(userID, filename, contentType string) string {
	return fmt.Sprintf("uploads/%s/%s%s", userID, uuid.NewString(), extension(filename, contentType))
}

func extension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(path.Base(filename))); ext != "" && ext != "." {
		return sanitizeExt(ext)
	}
	_, sub, ok := strings.Cut(contentType, "/")
	if !ok || sub == "" {
		return ""
	}
	// image/svg+xml -> .svg
	sub, _, _ = strings.Cut(sub, "+")
	return sanitizeExt("." + strings.ToLower(sub))
}

func sanitizeExt(ext string) string {
	var b strings.Builder
	b.WriteByte('.')
	for _, r := range ext[1:] {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 {
		return ""
	}
	return b.String()
}
