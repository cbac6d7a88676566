package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"guestroom/config"
	"guestroom/infras/otel/mocks"
	houseMocks "guestroom/internal/domains/house/mocks"
	"guestroom/internal/domains/house/model"
	"guestroom/internal/domains/house/model/dto"
	"guestroom/internal/domains/house/service"
	cacheMocks "guestroom/shared/cache/mocks"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/failure"
)

func newService(t *testing.T) (service.House, *houseMocks.MockHouse, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := houseMocks.NewMockHouse(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, mockCache, mocks.NewOtel()), repo, mockCache
}

func ownerCtx(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestHouseService_Create(t *testing.T) {
	req := dto.CreateHouseRequest{
		Name:       "Hillside House",
		Location:   "Jalan Dago 12",
		City:       "Bandung",
		State:      "West Java",
		TotalRooms: 3,
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, repo, mockCache := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, house model.House) error {
				assert.Equal(t, "owner-id", house.OwnerID)
				assert.True(t, house.Available)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		assert.NoError(t, svc.Create(ownerCtx("owner-id"), req))
	})

	t.Run("missing caller identity", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		assert.Error(t, svc.Create(ownerCtx("owner-id"), req))
	})
}

func TestHouseService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("successful get all", func(t *testing.T) {
		svc, repo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.House{{ID: "house-id", Name: "Hillside House"}}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Houses, 1)
	})

	t.Run("count error", func(t *testing.T) {
		svc, repo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestHouseService_Get(t *testing.T) {
	house := model.House{
		ID:      "house-id",
		OwnerID: "owner-id",
		Name:    "Hillside House",
	}

	tests := []struct {
		name      string
		setupMock func(repo *houseMocks.MockHouse, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss, found in db",
			setupMock: func(repo *houseMocks.MockHouse, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(house, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "house not found",
			setupMock: func(repo *houseMocks.MockHouse, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.House{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, mockCache := newService(t)
			tt.setupMock(repo, mockCache)

			res, err := svc.Get(context.Background(), "house-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "house-id", res.ID)
			}
		})
	}
}

func TestHouseService_Update(t *testing.T) {
	house := model.House{
		ID:      "house-id",
		OwnerID: "owner-id",
		Name:    "Hillside House",
	}

	req := dto.UpdateHouseRequest{Name: "Hillside Guesthouse"}

	tests := []struct {
		name      string
		caller    string
		req       dto.UpdateHouseRequest
		setupMock func(repo *houseMocks.MockHouse, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful update",
			caller: "owner-id",
			req:    req,
			setupMock: func(repo *houseMocks.MockHouse, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(house, nil)

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
		},
		{
			name:      "empty update request",
			caller:    "owner-id",
			req:       dto.UpdateHouseRequest{},
			setupMock: func(*houseMocks.MockHouse, *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:   "house not found",
			caller: "owner-id",
			req:    req,
			setupMock: func(repo *houseMocks.MockHouse, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.House{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "house owned by someone else",
			caller: "another-owner",
			req:    req,
			setupMock: func(repo *houseMocks.MockHouse, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(house, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, mockCache := newService(t)
			tt.setupMock(repo, mockCache)

			err := svc.Update(ownerCtx(tt.caller), tt.req, "house-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
