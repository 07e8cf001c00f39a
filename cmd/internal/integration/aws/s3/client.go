// Package s3 is the photo host integration. The rest of the app only
// sees the Uploader contract: bytes in, durable HTTPS URL out.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType, key string) (string, error)
}

type Client struct {
	s3      *awss3.Client
	bucket  string
	region  string
	baseURL string
	timeout time.Duration
}

// InitClient builds the S3 client from the ambient AWS credential chain.
// baseURL, when set, fronts the bucket (CDN); otherwise the virtual-hosted
// bucket URL is used.
func InitClient(bucket, baseURL string, timeout time.Duration) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}

	return &Client{
		s3:      awss3.NewFromConfig(cfg),
		bucket:  bucket,
		region:  cfg.Region,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
	}, nil
}

// Upload writes the object and returns its public URL. The call carries
// its own deadline so a stalled upload cannot hang the request forever.
func (c *Client) Upload(ctx context.Context, data []byte, contentType, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.s3.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if c.baseURL != "" {
		return c.baseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key), nil
}
