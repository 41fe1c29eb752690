package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

var _ Storage = (*S3Storage)(nil)

type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Storage keeps photos in an S3 compatible bucket (AWS, MinIO, Spaces ...).
type S3Storage struct {
	client *s3.Client
	bucket string
	now    func() time.Time
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket name empty")
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		awsconfig.WithHTTPClient(tracedHttpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// most S3 compatible services require path style addressing
		o.UsePathStyle = true
		// and reject the default CRC checksums on uploads
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	log.Debugf("s3 photo storage set up, endpoint: [%s], bucket: [%s]", cfg.Endpoint, cfg.Bucket)

	return &S3Storage{
		client: client,
		bucket: cfg.Bucket,
		now:    time.Now,
	}, nil
}

func (s *S3Storage) Save(ctx context.Context, date, contentType string, photo io.Reader) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "photos.s3.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := PhotoName(date, contentType, s.now())
	span.SetAttributes(attribute.String("name", name))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        photo,
		ContentType: aws.String(ContentTypeOf(name)),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", name, err)
	}

	return name, nil
}

func (s *S3Storage) Open(ctx context.Context, name string) (_ io.ReadCloser, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "photos.s3.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", name, err)
	}

	return out.Body, nil
}

func (s *S3Storage) Delete(ctx context.Context, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "photos.s3.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	if err := ValidateName(name); err != nil {
		return err
	}

	// deleting a missing key succeeds
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	}); err != nil {
		return fmt.Errorf("delete object %s: %w", name, err)
	}
	return nil
}

func (s *S3Storage) SaveDailyLog(ctx context.Context, date string, data []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "photos.s3.savedailylog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err := validDailyLogName(date)
	if err != nil {
		return err
	}
	key := dailyLogsDir + "/" + name
	span.SetAttributes(attribute.String("key", key))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "photos.s3.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	removedPhotos, err := s.deletePrefix(ctx, "workout_")
	if err != nil {
		return fmt.Errorf("clear photos: %w", err)
	}
	removedLogs, err := s.deletePrefix(ctx, dailyLogsDir+"/workout_")
	if err != nil {
		return fmt.Errorf("clear daily logs: %w", err)
	}

	span.SetAttributes(attribute.Int("removed", removedPhotos+removedLogs))
	log.Debugf("removed %d photos and %d daily logs from bucket %s", removedPhotos, removedLogs, s.bucket)
	return nil
}

func (s *S3Storage) deletePrefix(ctx context.Context, prefix string) (int, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	removed := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return removed, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			}); err != nil {
				return removed, fmt.Errorf("delete object %s: %w", aws.ToString(obj.Key), err)
			}
			removed++
		}
	}
	return removed, nil
}
