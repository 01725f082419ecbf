package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	hotelMocks "stay/internal/domains/hotel/mocks"
	reviewMocks "stay/internal/domains/review/mocks"
	"stay/internal/domains/review/model"
	"stay/internal/domains/review/model/dto"
	"stay/internal/domains/review/service"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
)

func newReviewService(t *testing.T) (service.Review, *reviewMocks.MockReview, *hotelMocks.MockHotel, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockHotelRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockHotelRepo, mockCache
}

func TestReviewService_Create(t *testing.T) {
	validReq := dto.CreateReviewRequest{
		Rating:  5,
		Comment: "Great stay, would book again.",
	}

	tests := []struct {
		name      string
		req       dto.CreateReviewRequest
		setupMock func(repo *reviewMocks.MockReview, hotelRepo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful review",
			req:  validReq,
			setupMock: func(repo *reviewMocks.MockReview, hotelRepo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache) {
				hotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					InsertWithRating(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.Equal(t, "hotel-1", review.HotelID)
						assert.Equal(t, "user-1", review.UserID)
						assert.Equal(t, 5, review.Rating)

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
			name: "hotel not found",
			req:  validReq,
			setupMock: func(repo *reviewMocks.MockReview, hotelRepo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache) {
				hotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "duplicate review",
			req:  validReq,
			setupMock: func(repo *reviewMocks.MockReview, hotelRepo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache) {
				hotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(repo *reviewMocks.MockReview, hotelRepo *hotelMocks.MockHotel, cache *cacheMocks.MockRedisCache) {
				hotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					InsertWithRating(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockHotelRepo, mockCache := newReviewService(t)
			tt.setupMock(mockRepo, mockHotelRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			err := svc.Create(ctx, tt.req, "hotel-1")

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

func TestReviewService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newReviewService(t)

	reviews := []model.Review{
		{ID: "review-1", HotelID: "hotel-1", UserID: "user-1", Rating: 5},
		{ID: "review-2", HotelID: "hotel-1", UserID: "user-2", Rating: 3},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(reviews, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    "hotel-1",
				Table:    model.TableName,
			},
		},
	}

	res, err := svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Len(t, res.Reviews, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestReviewService_GetAllCacheHit(t *testing.T) {
	svc, _, _, mockCache := newReviewService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Empty(t, res.Reviews)
}
