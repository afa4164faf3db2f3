// Package s3store keeps uploaded assets in an S3 compatible bucket, such as AWS S3 or MinIO.
package s3store

import (
	"context"
	"errors"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/storage"
)

// ObjectAPI is the subset of the S3 client used by the store.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type Options struct {
	Bucket   string
	Region   string
	Endpoint string
	KeyID    string
	Secret   string
	// PublicUrl is the base url of the bucket's publicly readable objects.
	PublicUrl *url.URL
}

type S3Store struct {
	client    ObjectAPI
	bucket    string
	publicUrl *url.URL
}

var loadDefaultConfig = config.LoadDefaultConfig

func New(ctx context.Context, opts Options) (storage.Storage, error) {
	optFns := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.KeyID != "" {
		optFns = append(optFns, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.KeyID, opts.Secret, ""),
		))
	}

	cfg, err := loadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, opts.Bucket, opts.PublicUrl), nil
}

func NewWithClient(client ObjectAPI, bucket string, publicUrl *url.URL) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicUrl: publicUrl,
	}
}

func (s *S3Store) Open(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.handleError(err, key)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read object body")
		return nil, storage.ErrInternal
	}
	return content, nil
}

func (s *S3Store) Create(ctx context.Context, content io.Reader, key, mimeType string) (*url.URL, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return nil, storage.ErrAlreadyExists
	}
	if err = s.handleError(err, key); !errors.Is(err, storage.ErrNotExist) {
		return nil, err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to put object")
		return nil, storage.ErrCreate
	}

	return s.publicUrl.JoinPath(key), nil
}

// Delete removes the object. S3 reports success for keys that do not exist, so the object is checked first to honour
// the ErrNotExist contract.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return s.handleError(err, key)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return s.handleError(err, key)
	}
	return nil
}

func (s *S3Store) handleError(err error, key string) error {
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &notFound) {
		return storage.ErrNotExist
	}
	log.Error().Err(err).Str("bucket", s.bucket).Str("key", key).Msg("s3 request failed")
	return errors.Join(storage.ErrInternal, err)
}
