package facades

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

// Image kinds, one directory or key prefix each.
const (
	KindOriginal  = "originals"
	KindGenerated = "generated"
	KindAvatar    = "avatars"
)

// LocalImageStore writes images under a directory served at baseURL.
type LocalImageStore struct {
	dir     string
	baseURL string
}

func NewLocalImageStore(dir, baseURL string) *LocalImageStore {
	return &LocalImageStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes data to dir/kind/<uuid><ext> and returns its public URL.
func (s *LocalImageStore) Save(ctx context.Context, kind string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no data to save")
	}

	name := uuid.NewString() + extensionFromContentType(contentType)
	dir := filepath.Join(s.dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	url := s.baseURL + "/" + path.Join(kind, name)
	logger.FromContext(ctx).Infow("image saved", "kind", kind, "url", url, "size", len(data))
	return url, nil
}

// S3Config describes an S3-compatible bucket.
type S3Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UsePathStyle  bool
	Prefix        string
}

// S3ImageStore uploads images to an S3-compatible bucket.
type S3ImageStore struct {
	cfg    S3Config
	client *s3.Client
}

func NewS3ImageStore(cfg S3Config) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3 region is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("s3 credentials are required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("s3 public base url is required")
	}

	options := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &S3ImageStore{cfg: cfg, client: s3.New(options)}, nil
}

// Save uploads data as a public object and returns its URL.
func (s *S3ImageStore) Save(ctx context.Context, kind string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no data to upload")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := s.objectKey(kind, contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to upload image", "key", key, "error", err)
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	url := strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	logger.FromContext(ctx).Infow("image uploaded", "kind", kind, "url", url, "size", len(data))
	return url, nil
}

func (s *S3ImageStore) objectKey(kind, contentType string) string {
	now := time.Now().UTC()
	return path.Join(
		strings.Trim(s.cfg.Prefix, "/"),
		kind,
		fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day()),
		uuid.NewString()+extensionFromContentType(contentType),
	)
}

func extensionFromContentType(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
