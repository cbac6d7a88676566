package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"guestroom/config"
	"guestroom/infras/otel/mocks"
	bookingMocks "guestroom/internal/domains/booking/mocks"
	bookingModel "guestroom/internal/domains/booking/model"
	dashboardMocks "guestroom/internal/domains/dashboard/mocks"
	"guestroom/internal/domains/dashboard/model"
	"guestroom/internal/domains/dashboard/service"
	cacheMocks "guestroom/shared/cache/mocks"
	"guestroom/shared/constant"
	"guestroom/shared/failure"
)

func TestDashboardService_Get(t *testing.T) {
	stats := model.Stats{
		TotalHouses:    2,
		TotalRooms:     5,
		ActiveBookings: 3,
		TotalEarnings:  4500,
	}

	pending := []bookingModel.Booking{
		{ID: "booking-1", OwnerID: "owner-id", Status: bookingModel.StatusPending},
		{ID: "booking-2", OwnerID: "owner-id", Status: bookingModel.StatusPending},
	}

	tests := []struct {
		name      string
		caller    string
		setupMock func(repo *dashboardMocks.MockDashboard, bookings *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful dashboard",
			caller: "owner-id",
			setupMock: func(repo *dashboardMocks.MockDashboard, bookings *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Stats(gomock.Any(), "owner-id").
					Return(stats, nil)

				bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pending, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:   "owner with no activity gets zero stats",
			caller: "owner-id",
			setupMock: func(repo *dashboardMocks.MockDashboard, bookings *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Stats(gomock.Any(), "owner-id").
					Return(model.Stats{}, nil)

				bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:      "dashboard of another owner is forbidden",
			caller:    "someone-else",
			setupMock: func(*dashboardMocks.MockDashboard, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name:   "stats query error",
			caller: "owner-id",
			setupMock: func(repo *dashboardMocks.MockDashboard, _ *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Stats(gomock.Any(), "owner-id").
					Return(model.Stats{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := dashboardMocks.NewMockDashboard(ctrl)
			bookings := bookingMocks.NewMockBooking(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(repo, bookings, cfg, mockCache, mocks.NewOtel())

			tt.setupMock(repo, bookings, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, tt.caller)
			res, err := svc.Get(ctx, "owner-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "owner-id", res.OwnerID)
		})
	}
}
