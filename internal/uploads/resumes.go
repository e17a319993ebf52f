package uploads

import (
	"context"
	"fmt"
	"time"

	appconfig "placeverse/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

// ResumeStore hands out URLs for resume files. The API layer gives students a
// presigned PUT URL; the stored object URL is what lands in
// Application.ResumeURL. The application engine itself never touches this.
type ResumeStore interface {
	// PresignUpload returns the object key and a presigned PUT URL for it.
	PresignUpload(ctx context.Context, studentID uuid.UUID, filename string) (key string, url string, err error)
	// PresignDownload returns a presigned GET URL for a stored key.
	PresignDownload(ctx context.Context, key string) (string, error)
}

// S3ResumeStore stores resumes in an S3-compatible bucket (AWS or MinIO).
type S3ResumeStore struct {
	cfg appconfig.S3Config
}

// NewS3ResumeStore creates a new S3ResumeStore.
func NewS3ResumeStore(cfg appconfig.S3Config) *S3ResumeStore {
	return &S3ResumeStore{cfg: cfg}
}

// Compile-time check to ensure S3ResumeStore implements ResumeStore
var _ ResumeStore = (*S3ResumeStore)(nil)

func (s *S3ResumeStore) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// resumeKey namespaces objects per student and date so keys never collide.
func resumeKey(studentID uuid.UUID, filename string) string {
	d := time.Now()
	return fmt.Sprintf("resumes/%s/%d/%d/%s-%s", studentID, d.Year(), d.Month(), uuid.New(), filename)
}

// PresignUpload returns the object key and a presigned PUT URL valid for 15
// minutes.
func (s *S3ResumeStore) PresignUpload(ctx context.Context, studentID uuid.UUID, filename string) (string, string, error) {
	presignClient, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.cfg.Bucket
	key := resumeKey(studentID, filename)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign resume upload: %w", err)
	}

	return key, req.URL, nil
}

// PresignDownload returns a presigned GET URL valid for 15 minutes.
func (s *S3ResumeStore) PresignDownload(ctx context.Context, key string) (string, error) {
	presignClient, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.cfg.Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign resume download: %w", err)
	}

	return req.URL, nil
}
