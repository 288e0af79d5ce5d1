package s3

import (
	"context"
	"errors"
	"estate-service/internal/config"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

const (
	emptyAWSSessionToken = ""

	errFailedCreateAWSSessionFmt = "failed to create AWS session: %w"
	errFailedUploadObjectFmt     = "failed to upload object: %w"
	errFailedDeleteObjectFmt     = "failed to delete object: %w"
)

// Client owns a single bucket that stores all uploaded media. The
// application only ever keeps the resulting public URLs.
type Client struct {
	svc    *s3.S3
	bucket string
	region string
}

func NewClient(cfg *config.AWSConfig) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			emptyAWSSessionToken,
		),
	})

	if err != nil {
		return nil, fmt.Errorf(errFailedCreateAWSSessionFmt, err)
	}

	return &Client{
		svc:    s3.New(sess),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// UploadObject stores the body under key and returns the public object URL.
func (c *Client) UploadObject(ctx context.Context, key, contentType string, body io.ReadSeeker) (string, error) {
	_, err := c.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})

	if err != nil {
		return "", fmt.Errorf(errFailedUploadObjectFmt, err)
	}

	return c.ObjectURL(key), nil
}

// DeleteObject removes the object. A missing key is treated as success;
// entity deletion must not fail because an image is already gone.
func (c *Client) DeleteObject(ctx context.Context, key string) error {
	_, err := c.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		var awsErr awserr.Error
		if errors.As(err, &awsErr) && awsErr.Code() == s3.ErrCodeNoSuchKey {
			return nil
		}
		return fmt.Errorf(errFailedDeleteObjectFmt, err)
	}

	return nil
}

// DeleteObjectByURL deletes the object a stored URL points at. URLs that do
// not belong to this bucket are ignored.
func (c *Client) DeleteObjectByURL(ctx context.Context, objectURL string) error {
	key, ok := c.KeyFromURL(objectURL)
	if !ok {
		return nil
	}

	return c.DeleteObject(ctx, key)
}

// ObjectURL builds the public virtual-hosted-style URL for a key.
func (c *Client) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

// KeyFromURL extracts the object key from a URL previously produced by
// ObjectURL. Returns false for URLs outside this bucket.
func (c *Client) KeyFromURL(objectURL string) (string, bool) {
	parsed, err := url.Parse(objectURL)
	if err != nil {
		return "", false
	}

	expectedHost := fmt.Sprintf("%s.s3.%s.amazonaws.com", c.bucket, c.region)
	if parsed.Host != expectedHost {
		return "", false
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", false
	}

	return key, true
}

// BuildKey produces a collision-free key under the given prefix, keeping
// the original file extension.
func (c *Client) BuildKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return prefix + "/" + uuid.New().String() + ext
}
