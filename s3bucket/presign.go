package s3bucket

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignedPutURL mints a time-limited URL a client can PUT one object to.
// The signature pins bucket, key and content type, so the URL is only good
// for the upload it was minted for.
func (bucket *S3Bucket) PresignedPutURL(ctx context.Context, key string, contentType string, ttl time.Duration) (string, time.Time, error) {
	req, err := bucket.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket.bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign put for %s: %w", key, err)
	}

	return req.URL, time.Now().Add(ttl), nil
}

// PresignedGetURL mints a time-limited download URL for an object.
func (bucket *S3Bucket) PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	req, err := bucket.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign get for %s: %w", key, err)
	}

	return req.URL, time.Now().Add(ttl), nil
}
