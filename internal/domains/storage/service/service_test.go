package service_test

import (
	"bytes"
	"context"
	b64 "encoding/base64"
	"errors"
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dinevibe/config"
	"dinevibe/infras/otel/mocks"
	s3Mocks "dinevibe/infras/s3/mocks"
	"dinevibe/internal/domains/storage/model/dto"
	"dinevibe/internal/domains/storage/service"
	"dinevibe/shared/constant"
	"dinevibe/shared/failure"
)

var uniqueNamePattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}-`)

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error {
	return nil
}

func newService(ctrl *gomock.Controller) (service.Storage, *s3Mocks.MockS3) {
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Storage.RestaurantImagesBucket = "restaurant-images"
	cfg.Storage.MenuImagesBucket = "menu-images"
	cfg.Storage.UserAvatarsBucket = "user-avatars"

	svc := service.New(cfg, mockOtel, mockS3)

	return svc, mockS3
}

func uploadRequest(bucket, directory, fileName string) dto.UploadRequest {
	return dto.UploadRequest{
		File: &multipart.FileHeader{
			Filename: fileName,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
			Size:     128,
		},
		FileReader: fakeFile{bytes.NewReader([]byte("image-bytes"))},
		Bucket:     bucket,
		Directory:  directory,
	}
}

func TestStorageService_Upload(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UploadRequest
		setupMock func(mockS3 *s3Mocks.MockS3)
		check     func(t *testing.T, res dto.UploadResponse, err error)
	}{
		{
			name: "success with generated name",
			req:  uploadRequest(constant.BucketKeyRestaurantImages, "", "my photo.png"),
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), "restaurant-images", "", gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, directory string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
						assert.Equal(t, "", directory)
						assert.Regexp(t, uniqueNamePattern, fileName)
						assert.Contains(t, fileName, "my_photo.png")

						return "https://cdn.example.com/restaurant-images/" + fileName, nil
					})
			},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.URL)
				assert.Regexp(t, uniqueNamePattern, res.FileName)
			},
		},
		{
			name: "success with caller directory keeps original name",
			req:  uploadRequest(constant.BucketKeyUserAvatars, "avatars", "my photo.png"),
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), "user-avatars", "avatars", gomock.Any(), gomock.Any(), "my_photo.png").
					Return("https://cdn.example.com/user-avatars/avatars/my_photo.png", nil)
			},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "my_photo.png", res.FileName)
			},
		},
		{
			name:      "directory escaping the bucket root is rejected",
			req:       uploadRequest(constant.BucketKeyUserAvatars, "../secrets", "photo.png"),
			setupMock: func(mockS3 *s3Mocks.MockS3) {},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				var f *failure.Failure
				assert.ErrorAs(t, err, &f)
			},
		},
		{
			name:      "absolute directory is rejected",
			req:       uploadRequest(constant.BucketKeyUserAvatars, "/etc", "photo.png"),
			setupMock: func(mockS3 *s3Mocks.MockS3) {},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				var f *failure.Failure
				assert.ErrorAs(t, err, &f)
			},
		},
		{
			name:      "unknown bucket",
			req:       uploadRequest("not-a-bucket", "", "photo.png"),
			setupMock: func(mockS3 *s3Mocks.MockS3) {},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				var f *failure.Failure
				assert.ErrorAs(t, err, &f)
			},
		},
		{
			name: "upload error",
			req:  uploadRequest(constant.BucketKeyMenuImages, "", "menu.png"),
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), "menu-images", "", gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("connection refused"))
			},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockS3 := newService(ctrl)
			tt.setupMock(mockS3)

			res, err := svc.Upload(context.Background(), tt.req)
			tt.check(t, res, err)
		})
	}
}

func TestStorageService_UploadBase64(t *testing.T) {
	imageBytes := []byte("png-image-bytes")
	dataURI := "data:image/png;base64," + b64.StdEncoding.EncodeToString(imageBytes)

	tests := []struct {
		name      string
		req       dto.UploadBase64Request
		setupMock func(mockS3 *s3Mocks.MockS3)
		check     func(t *testing.T, res dto.UploadResponse, err error)
	}{
		{
			name: "success without file name",
			req: dto.UploadBase64Request{
				File:   dataURI,
				Bucket: constant.BucketKeyRestaurantImages,
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), "restaurant-images", "", gomock.Any(), "image/png", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, fileName, _ string, fileData []byte) (string, error) {
						assert.Equal(t, imageBytes, fileData)
						assert.Regexp(t, `\.png$`, fileName)

						return "https://cdn.example.com/restaurant-images/" + fileName, nil
					})
			},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				assert.NoError(t, err)
				assert.Regexp(t, `\.png$`, res.FileName)
			},
		},
		{
			name: "success with file name",
			req: dto.UploadBase64Request{
				File:     dataURI,
				FileName: "dining room.png",
				Bucket:   constant.BucketKeyRestaurantImages,
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), "restaurant-images", "", gomock.Any(), "image/png", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, fileName, _ string, _ []byte) (string, error) {
						assert.Regexp(t, uniqueNamePattern, fileName)
						assert.Contains(t, fileName, "dining_room.png")

						return "https://cdn.example.com/restaurant-images/" + fileName, nil
					})
			},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				assert.NoError(t, err)
				assert.Contains(t, res.FileName, "dining_room.png")
			},
		},
		{
			name: "invalid base64 payload",
			req: dto.UploadBase64Request{
				File:   "data:image/png;base64,!!!not-base64!!!",
				Bucket: constant.BucketKeyRestaurantImages,
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				var f *failure.Failure
				assert.ErrorAs(t, err, &f)
			},
		},
		{
			name: "unknown bucket",
			req: dto.UploadBase64Request{
				File:   dataURI,
				Bucket: "not-a-bucket",
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				var f *failure.Failure
				assert.ErrorAs(t, err, &f)
			},
		},
		{
			name: "upload error",
			req: dto.UploadBase64Request{
				File:   dataURI,
				Bucket: constant.BucketKeyMenuImages,
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), "menu-images", "", gomock.Any(), "image/png", gomock.Any()).
					Return("", errors.New("connection refused"))
			},
			check: func(t *testing.T, res dto.UploadResponse, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockS3 := newService(ctrl)
			tt.setupMock(mockS3)

			res, err := svc.UploadBase64(context.Background(), tt.req)
			tt.check(t, res, err)
		})
	}
}

func TestStorageService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.DeleteRequest
		setupMock func(mockS3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "success",
			req: dto.DeleteRequest{
				URL:    "https://cdn.example.com/restaurant-images/photo.png",
				Bucket: constant.BucketKeyRestaurantImages,
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					GetObjectNameFromURL("restaurant-images", "https://cdn.example.com/restaurant-images/photo.png").
					Return("photo.png")
				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "restaurant-images", "", "photo.png").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "foreign URL is rejected without deleting",
			req: dto.DeleteRequest{
				URL:    "https://elsewhere.example.com/photo.png",
				Bucket: constant.BucketKeyRestaurantImages,
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					GetObjectNameFromURL("restaurant-images", "https://elsewhere.example.com/photo.png").
					Return("")
			},
			wantErr: true,
		},
		{
			name: "unknown bucket",
			req: dto.DeleteRequest{
				URL:    "https://cdn.example.com/restaurant-images/photo.png",
				Bucket: "not-a-bucket",
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {},
			wantErr:   true,
		},
		{
			name: "delete error",
			req: dto.DeleteRequest{
				URL:    "https://cdn.example.com/restaurant-images/photo.png",
				Bucket: constant.BucketKeyRestaurantImages,
			},
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					GetObjectNameFromURL("restaurant-images", "https://cdn.example.com/restaurant-images/photo.png").
					Return("photo.png")
				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "restaurant-images", "", "photo.png").
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockS3 := newService(ctrl)
			tt.setupMock(mockS3)

			err := svc.Delete(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
