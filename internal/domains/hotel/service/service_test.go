package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	s3Mocks "stay/infras/s3/mocks"
	hotelMocks "stay/internal/domains/hotel/mocks"
	"stay/internal/domains/hotel/model"
	"stay/internal/domains/hotel/model/dto"
	"stay/internal/domains/hotel/service"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/constant"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/timezone"
)

func newHotelService(t *testing.T) (service.Hotel, *hotelMocks.MockHotel, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "stay-assets"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func sampleHotel() model.Hotel {
	return model.Hotel{
		ID:          "hotel-1",
		Name:        "Grand Hotel",
		Location:    "Jakarta",
		Description: "A fine place to stay.",
		Rating:      4.5,
		Image:       "https://stay-assets.example.com/hotel/old-image.jpg",
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func TestHotelService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateHotelRequest
		setupMock func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "create without image",
			req: dto.CreateHotelRequest{
				Name:     "Grand Hotel",
				Location: "Jakarta",
			},
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, hotel model.Hotel) error {
						assert.Equal(t, "Grand Hotel", hotel.Name)
						assert.Empty(t, hotel.Image)
						assert.True(t, hotel.Active)

						return nil
					})

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "create with image uploads to s3",
			req: dto.CreateHotelRequest{
				Name:     "Grand Hotel",
				Location: "Jakarta",
				Image:    &multipart.FileHeader{Filename: "photo.jpg"},
			},
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "stay-assets", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://stay-assets.example.com/hotel/new-image.jpg", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, hotel model.Hotel) error {
						assert.Equal(t, "https://stay-assets.example.com/hotel/new-image.jpg", hotel.Image)

						return nil
					})

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "upload failure aborts create",
			req: dto.CreateHotelRequest{
				Name:     "Grand Hotel",
				Location: "Jakarta",
				Image:    &multipart.FileHeader{Filename: "photo.jpg"},
			},
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload failed"))
			},
			wantErr: true,
		},
		{
			name: "insert failure cleans up uploaded image",
			req: dto.CreateHotelRequest{
				Name:     "Grand Hotel",
				Location: "Jakarta",
				Image:    &multipart.FileHeader{Filename: "photo.jpg"},
			},
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://stay-assets.example.com/hotel/new-image.jpg", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				s3.EXPECT().
					DeleteFile(gomock.Any(), "stay-assets", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newHotelService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHotelService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss, fetched from db",
			id:   "hotel-1",
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleHotel(), nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cache hit",
			id:   "hotel-1",
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "hotel not found",
			id:   "missing",
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Hotel{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newHotelService(t)
			tt.setupMock(mockRepo, mockCache)

			_, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHotelService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateHotelRequest
		setupMock func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "update name only",
			req:  dto.UpdateHotelRequest{Name: "Renamed Hotel"},
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleHotel(), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "replacing image removes the old object",
			req: dto.UpdateHotelRequest{
				Image: &multipart.FileHeader{Filename: "photo.png"},
			},
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleHotel(), nil)

				s3.EXPECT().
					UploadFile(gomock.Any(), "stay-assets", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://stay-assets.example.com/hotel/new-image.png", nil)

				s3.EXPECT().
					GetObjectNameFromURL("stay-assets", "https://stay-assets.example.com/hotel/old-image.jpg").
					Return("old-image.jpg")

				s3.EXPECT().
					DeleteFile(gomock.Any(), "stay-assets", model.EntityName, "old-image.jpg").
					Return(nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "hotel not found",
			req:  dto.UpdateHotelRequest{Name: "Renamed Hotel"},
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Hotel{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newHotelService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
			err := svc.Update(ctx, tt.req, "hotel-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHotelService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "delete removes the stored image",
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleHotel(), nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				s3.EXPECT().
					GetObjectNameFromURL("stay-assets", "https://stay-assets.example.com/hotel/old-image.jpg").
					Return("old-image.jpg")

				s3.EXPECT().
					DeleteFile(gomock.Any(), "stay-assets", model.EntityName, "old-image.jpg").
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "hotel not found",
			setupMock: func(repo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Hotel{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newHotelService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			err := svc.Delete(context.Background(), "hotel-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
