package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"comenta-app/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	awscreds "github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService persists uploaded media to MinIO when an endpoint is
// configured, otherwise to AWS S3. The rest of the system only ever sees the
// returned URL string.
type StorageService struct {
	cfg         *config.Config
	s3Client    *s3.S3
	minioClient *minio.Client
	useMinIO    bool
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	service := &StorageService{cfg: cfg}

	if cfg.MinIOEndpoint != "" {
		service.useMinIO = true
		minioClient, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		service.minioClient = minioClient
	} else {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.AWSRegion),
			Credentials: awscreds.NewStaticCredentials(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				"",
			),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		service.s3Client = s3.New(sess)
	}

	return service, nil
}

// ValidateFile enforces the size cap and the image/video extension
// allow-list on an upload.
func (s *StorageService) ValidateFile(header *multipart.FileHeader) error {
	if header.Size > s.cfg.MaxFileSize {
		return fmt.Errorf("file too large, maximum size is %d bytes", s.cfg.MaxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range s.cfg.ImageExtensions {
		if ext == allowed {
			return nil
		}
	}
	for _, allowed := range s.cfg.VideoExtensions {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("invalid file type %q, only images and videos are allowed", ext)
}

// UploadFile stores the file under a unique name in the given folder and
// returns its public URL.
func (s *StorageService) UploadFile(ctx context.Context, file io.Reader, originalName, folder, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	if s.useMinIO {
		return s.uploadToMinIO(ctx, file, filename, contentType)
	}
	return s.uploadToS3(file, filename, contentType)
}

func (s *StorageService) DeleteFile(ctx context.Context, url string) error {
	key := s.extractKeyFromURL(url)
	if key == "" {
		return fmt.Errorf("invalid file URL")
	}

	if s.useMinIO {
		return s.minioClient.RemoveObject(ctx, s.cfg.S3Bucket, key, minio.RemoveObjectOptions{})
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *StorageService) uploadToS3(file io.Reader, filename, contentType string) (string, error) {
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.S3Bucket),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.S3Bucket, s.cfg.AWSRegion, filename), nil
}

func (s *StorageService) uploadToMinIO(ctx context.Context, file io.Reader, filename, contentType string) (string, error) {
	_, err := s.minioClient.PutObject(ctx, s.cfg.S3Bucket, filename, file, -1,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	protocol := "http"
	if s.cfg.MinIOUseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.cfg.MinIOEndpoint, s.cfg.S3Bucket, filename), nil
}

func (s *StorageService) extractKeyFromURL(url string) string {
	if strings.Contains(url, "amazonaws.com") || strings.Contains(url, s.cfg.MinIOEndpoint) {
		parts := strings.SplitN(url, "/", 4)
		if len(parts) == 4 {
			if s.useMinIO {
				// MinIO URLs embed the bucket before the key.
				return strings.TrimPrefix(parts[3], s.cfg.S3Bucket+"/")
			}
			return parts[3]
		}
	}
	return ""
}

// EnsureBucket creates the media bucket when it does not exist yet.
func (s *StorageService) EnsureBucket(ctx context.Context) error {
	if s.useMinIO {
		exists, err := s.minioClient.BucketExists(ctx, s.cfg.S3Bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket existence: %w", err)
		}
		if !exists {
			if err := s.minioClient.MakeBucket(ctx, s.cfg.S3Bucket, minio.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("failed to create MinIO bucket: %w", err)
			}
		}
		return nil
	}

	_, err := s.s3Client.CreateBucket(&s3.CreateBucketInput{
		Bucket: aws.String(s.cfg.S3Bucket),
	})
	if err != nil && !strings.Contains(err.Error(), "BucketAlreadyOwnedByYou") {
		return fmt.Errorf("failed to create S3 bucket: %w", err)
	}
	return nil
}
