package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	b64 "encoding/base64"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"dinevibe/config"
	"dinevibe/infras/otel"
	"dinevibe/infras/s3"
	"dinevibe/internal/domains/storage/model/dto"
	"dinevibe/shared/base64"
	"dinevibe/shared/constant"
	"dinevibe/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Storage interface {
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
	UploadBase64(ctx context.Context, req dto.UploadBase64Request) (dto.UploadResponse, error)
	Delete(ctx context.Context, req dto.DeleteRequest) error
	EnsureBuckets(ctx context.Context) error
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) Storage {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName, err := s.resolveBucket(req.Bucket)
	if err != nil {
		return res, err
	}

	directory := constant.Empty
	fileName := uniqueFileName(req.File.Filename)

	if req.Directory != constant.Empty {
		directory, err = cleanDirectory(req.Directory)
		if err != nil {
			return res, err
		}

		fileName = sanitizeFileName(req.File.Filename)
	}

	url, err := s.s3.UploadFile(ctx, bucketName, directory, req.FileReader, req.File, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.FromUpload(url, fileName)

	return res, nil
}

// UploadBase64 stores an image sent as a base64 data URI. The validator has
// already checked the media type and size against the same rules as the
// multipart path.
func (s *serviceImpl) UploadBase64(ctx context.Context, req dto.UploadBase64Request) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadBase64")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName, err := s.resolveBucket(req.Bucket)
	if err != nil {
		return res, err
	}

	contentType := base64.GetContentType(req.File)

	fileData, err := b64.StdEncoding.DecodeString(base64.GetPayload(req.File))
	if err != nil {
		return res, failure.BadRequestFromString("file is not valid base64 data") //nolint:wrapcheck
	}

	fileName := defaultFileName(contentType)
	if req.FileName != constant.Empty {
		fileName = uniqueFileName(req.FileName)
	}

	url, err := s.s3.UploadFileBytes(ctx, bucketName, constant.Empty, fileName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.FromUpload(url, fileName)

	return res, nil
}

// Delete removes a previously uploaded object, addressed by its public URL.
func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName, err := s.resolveBucket(req.Bucket)
	if err != nil {
		return err
	}

	objectName := s.s3.GetObjectNameFromURL(bucketName, req.URL)
	if objectName == constant.Empty {
		log.Warn().Str("url", req.URL).Msg("failed to extract object name from URL")

		return failure.BadRequestFromString("URL does not belong to this storage") //nolint:wrapcheck
	}

	if err = s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// EnsureBuckets creates the configured buckets if they do not exist yet. It is
// called once on startup.
func (s *serviceImpl) EnsureBuckets(ctx context.Context) error {
	return s.s3.EnsureBuckets( //nolint:wrapcheck
		ctx,
		s.cfg.Storage.RestaurantImagesBucket,
		s.cfg.Storage.MenuImagesBucket,
		s.cfg.Storage.UserAvatarsBucket,
	)
}

func (s *serviceImpl) resolveBucket(key string) (string, error) {
	switch key {
	case constant.BucketKeyRestaurantImages:
		return s.cfg.Storage.RestaurantImagesBucket, nil
	case constant.BucketKeyMenuImages:
		return s.cfg.Storage.MenuImagesBucket, nil
	case constant.BucketKeyUserAvatars:
		return s.cfg.Storage.UserAvatarsBucket, nil
	default:
		return constant.Empty, failure.BadRequestFromString("unknown storage bucket") //nolint:wrapcheck
	}
}

// cleanDirectory normalizes a caller-supplied directory and rejects anything
// that would escape the bucket root.
func cleanDirectory(directory string) (string, error) {
	cleaned := path.Clean(directory)

	if cleaned == "." || strings.HasPrefix(cleaned, "..") || strings.HasPrefix(cleaned, "/") {
		return constant.Empty, failure.BadRequestFromString("invalid directory") //nolint:wrapcheck
	}

	return cleaned, nil
}

func sanitizeFileName(original string) string {
	base := filepath.Base(original)

	return strings.ReplaceAll(base, " ", "_")
}

// uniqueFileName prefixes the sanitized original name with a UUID so repeated
// uploads of the same file never collide.
func uniqueFileName(original string) string {
	return fmt.Sprintf("%s-%s", uuid.NewString(), sanitizeFileName(original))
}

// defaultFileName names a base64 upload that came without a file name, using
// the media type's subtype as the extension.
func defaultFileName(contentType string) string {
	ext := strings.TrimPrefix(contentType, "image/")

	return fmt.Sprintf("%s.%s", uuid.NewString(), ext)
}
