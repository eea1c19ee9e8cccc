package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// S3Client is the subset of the S3 API the fetcher needs.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config describes a bucket holding a mirror of the asset tree.
type S3Config struct {
	Bucket         string
	Region         string
	Prefix         string // Optional key prefix in front of <version>/assets/...
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // Optional: for S3-compatible services
	ForcePathStyle bool   // For S3-compatible services like MinIO
}

// S3Option configures an S3Fetcher.
type S3Option func(*s3Options)

type s3Options struct {
	client          S3Client
	httpClient      *http.Client
	maxBody         int64
	configOptions   []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3.Options)
}

// WithS3Client sets a pre-configured client, typically a mock in tests.
func WithS3Client(c S3Client) S3Option {
	return func(o *s3Options) { o.client = c }
}

// WithS3HTTPClient sets the HTTP client the AWS SDK uses.
func WithS3HTTPClient(c *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = c }
}

// WithS3MaxBodySize limits how many bytes are read from an object.
func WithS3MaxBodySize(n int64) S3Option {
	return func(o *s3Options) {
		if n > 0 {
			o.maxBody = n
		}
	}
}

// WithS3ConfigOption adds an AWS config load option.
func WithS3ConfigOption(opt func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) { o.configOptions = append(o.configOptions, opt) }
}

// WithS3ClientOption adds an S3 client option.
func WithS3ClientOption(opt func(*s3.Options)) S3Option {
	return func(o *s3Options) { o.s3ClientOptions = append(o.s3ClientOptions, opt) }
}

// S3Fetcher reads dictionaries from an S3 bucket. It is safe for concurrent use.
type S3Fetcher struct {
	client  S3Client
	bucket  string
	prefix  string
	maxBody int64
}

// NewS3Fetcher creates an S3Fetcher, loading AWS configuration unless a client
// is supplied with WithS3Client.
func NewS3Fetcher(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Fetcher, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrMissingBucket
	}

	options := &s3Options{maxBody: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range options.s3ClientOptions {
				opt(o)
			}
		})
	}

	return &S3Fetcher{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		maxBody: options.maxBody,
	}, nil
}

// Key returns the object key of a dictionary.
func (f *S3Fetcher) Key(lang catalog.Language, version catalog.Version) string {
	if f.prefix == "" {
		return AssetPath(lang, version)
	}
	return path.Join(f.prefix, AssetPath(lang, version))
}

// Fetch implements Fetcher.
func (f *S3Fetcher) Fetch(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error) {
	if err := validateTarget(lang, version); err != nil {
		return nil, err
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.Key(lang, version)),
	})
	if err != nil {
		return nil, errors.Join(ErrFetch, mapS3Error(err))
	}
	defer out.Body.Close()

	body, err := io.ReadAll(io.LimitReader(out.Body, f.maxBody+1))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	if int64(len(body)) > f.maxBody {
		return nil, errors.Join(ErrFetch, ErrBodyTooLarge)
	}
	return body, nil
}

func mapS3Error(err error) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return errors.Join(ErrDictionaryNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return errors.Join(ErrDictionaryNotFound, err)
		default:
			return fmt.Errorf("s3 get object failed (code: %s): %w", apiErr.ErrorCode(), err)
		}
	}
	return err
}
