package share

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const exportPrefix = "offline-exports/"

// S3Sharer загружает документ в S3 и возвращает временную ссылку
type S3Sharer struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	urlTTL    time.Duration
}

func NewS3Sharer(ctx context.Context, region, bucket string, urlTTL time.Duration) (*S3Sharer, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if urlTTL <= 0 {
		urlTTL = 24 * time.Hour
	}
	client := s3.NewFromConfig(cfg)
	return &S3Sharer{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		urlTTL:    urlTTL,
	}, nil
}

func (s *S3Sharer) Share(ctx context.Context, req *Request) (*Result, error) {
	key := exportPrefix + req.Filename
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        req.Body,
		ContentType: aws.String(req.ContentType),
	}
	if req.Size > 0 {
		input.ContentLength = aws.Int64(req.Size)
	}
	if len(req.Metadata) > 0 {
		input.Metadata = req.Metadata
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	presigned, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.urlTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign S3 url: %w", err)
	}

	return &Result{
		Filename: req.Filename,
		Location: fmt.Sprintf("s3://%s/%s", s.bucket, key),
		URL:      presigned.URL,
		Expires:  time.Now().Add(s.urlTTL),
		Size:     req.Size,
	}, nil
}
