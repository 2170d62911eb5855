package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dvillarroel/actifijo/internal/logging"
	"github.com/dvillarroel/actifijo/internal/netx"
	"github.com/dvillarroel/actifijo/internal/server/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Archiver uploads a copy of each generated export to S3-compatible storage.
// Uploads run fire-and-forget; a failed archive never fails the download.
type Archiver struct {
	config *config.Config
	logger logging.Logger
}

func NewArchiver(cfg *config.Config, logger logging.Logger) *Archiver {
	return &Archiver{config: cfg, logger: logger}
}

func archiveKey(format string) string {
	d := time.Now()
	return fmt.Sprintf("exports/%d/%02d/%02d/%v.%s", d.Year(), d.Month(), d.Day(), uuid.New(), format)
}

func (a *Archiver) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(a.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.config.S3RootUser,
			a.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if a.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(a.config.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// Archive uploads payload under a date-partitioned key. The caller runs it
// in a goroutine; errors end up in the log only.
func (a *Archiver) Archive(ctx context.Context, format string, payload []byte, contentType string) {
	if !a.config.ArchiveEnabled() {
		return
	}

	presignClient, err := a.getPresignClient()
	if err != nil {
		a.logger.Error(ctx, fmt.Sprintf("export archive: %v", err))
		return
	}

	bucket := a.config.S3Bucket
	key := archiveKey(format)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		a.logger.Error(ctx, fmt.Sprintf("export archive: %v", err))
		return
	}

	if err := netx.UploadToPresignedURL(ctx, req.URL, payload, contentType); err != nil {
		a.logger.Error(ctx, fmt.Sprintf("export archive: %v", err))
	}
}
