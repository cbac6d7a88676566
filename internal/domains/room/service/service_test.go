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
	houseModel "guestroom/internal/domains/house/model"
	roomMocks "guestroom/internal/domains/room/mocks"
	"guestroom/internal/domains/room/model"
	"guestroom/internal/domains/room/model/dto"
	"guestroom/internal/domains/room/service"
	cacheMocks "guestroom/shared/cache/mocks"
	"guestroom/shared/constant"
	"guestroom/shared/failure"
)

type fixtures struct {
	repo   *roomMocks.MockRoom
	houses *houseMocks.MockHouse
	cache  *cacheMocks.MockRedisCache
	svc    service.Room
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := roomMocks.NewMockRoom(ctrl)
	houses := houseMocks.NewMockHouse(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixtures{
		repo:   repo,
		houses: houses,
		cache:  mockCache,
		svc:    service.New(repo, houses, cfg, mockCache, mocks.NewOtel()),
	}
}

func ownerCtx(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestRoomService_Create(t *testing.T) {
	house := houseModel.House{
		ID:      "house-id",
		OwnerID: "owner-id",
	}

	req := dto.CreateRoomRequest{
		HouseID:          "house-id",
		Name:             "Front Room",
		Floor:            1,
		RentAmountPerDay: 150,
	}

	tests := []struct {
		name      string
		caller    string
		setupMock func(f fixtures)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful creation",
			caller: "owner-id",
			setupMock: func(f fixtures) {
				f.houses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(house, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "owner-id", room.OwnerID)
						assert.True(t, room.Available)

						return nil
					})

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:      "missing caller identity",
			caller:    "",
			setupMock: func(fixtures) {},
			wantErr:   true,
			wantCode:  401,
		},
		{
			name:   "house not found",
			caller: "owner-id",
			setupMock: func(f fixtures) {
				f.houses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(houseModel.House{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "house owned by someone else",
			caller: "another-owner",
			setupMock: func(f fixtures) {
				f.houses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(house, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtures(t)
			tt.setupMock(f)

			ctx := context.Background()
			if tt.caller != "" {
				ctx = ownerCtx(tt.caller)
			}

			err := f.svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	room := model.Room{
		ID:      "room-id",
		HouseID: "house-id",
		OwnerID: "owner-id",
		Name:    "Front Room",
	}

	t.Run("cache miss, found in db", func(t *testing.T) {
		f := newFixtures(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Get(context.Background(), "room-id")

		assert.NoError(t, err)
		assert.Equal(t, "room-id", res.ID)
	})

	t.Run("room not found", func(t *testing.T) {
		f := newFixtures(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "room-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_AvailableInHouse(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		setupMock func(f fixtures)
		wantErr   bool
		wantCode  int
		wantRooms int
	}{
		{
			name:     "rooms available",
			checkIn:  "2026-06-10",
			checkOut: "2026-06-15",
			setupMock: func(f fixtures) {
				f.houses.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					AvailableInHouse(gomock.Any(), "house-id", gomock.Any(), gomock.Any()).
					Return([]model.Room{{ID: "room-id", Name: "Front Room"}}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantRooms: 1,
		},
		{
			name:     "fully booked house returns empty list",
			checkIn:  "2026-06-10",
			checkOut: "2026-06-15",
			setupMock: func(f fixtures) {
				f.houses.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					AvailableInHouse(gomock.Any(), "house-id", gomock.Any(), gomock.Any()).
					Return([]model.Room{}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantRooms: 0,
		},
		{
			name:      "malformed check in date",
			checkIn:   "10-06-2026",
			checkOut:  "2026-06-15",
			setupMock: func(fixtures) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "check out before check in",
			checkIn:   "2026-06-15",
			checkOut:  "2026-06-10",
			setupMock: func(fixtures) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:     "house not found",
			checkIn:  "2026-06-10",
			checkOut: "2026-06-15",
			setupMock: func(f fixtures) {
				f.houses.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtures(t)
			tt.setupMock(f)

			res, err := f.svc.AvailableInHouse(context.Background(), "house-id", tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Rooms, tt.wantRooms)
				assert.Equal(t, "house-id", res.HouseID)
			}
		})
	}
}
