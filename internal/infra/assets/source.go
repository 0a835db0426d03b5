package assets

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const maxAssetSize = 10 << 20

// Source loads one object by location.
type Source interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

type HTTPSource struct {
	client *http.Client
}

func NewHTTPSource(client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(errs.Newf("status %d", resp.StatusCode), ErrFetchStatus)
	}
	return readLimited(resp.Body, "read body")
}

// S3GetObjectAPI is the subset of *s3.Client used here.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source serves s3://bucket/key locations.
type S3Source struct {
	client S3GetObjectAPI
}

func NewS3Source(client S3GetObjectAPI) *S3Source {
	return &S3Source{client: client}
}

func (s *S3Source) Fetch(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errs.Wrap(err, "s3 get object")
	}
	defer out.Body.Close()

	return readLimited(out.Body, "read s3 object")
}

// readLimited reads at most maxAssetSize bytes. A larger object is an error,
// never a truncated body.
func readLimited(r io.Reader, op string) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxAssetSize+1))
	if err != nil {
		return nil, errs.Wrap(err, op)
	}
	if len(body) > maxAssetSize {
		return nil, errs.Mark(errs.Newf("exceeds %d bytes", maxAssetSize), ErrAssetTooLarge)
	}
	return body, nil
}

func parseS3Location(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", errs.Wrap(err, "parse s3 location")
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", errs.Newf("malformed s3 location %q", location)
	}
	return u.Host, key, nil
}

// NewS3Client builds a client for an S3 compatible backend. Static
// credentials are used when configured, otherwise the default AWS chain.
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}
