package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"home_cleaning/internal/domain/entities"
	mock_interfaces "home_cleaning/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceOrderUseCase_Complete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.Complete(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.Complete(context.Background(), "o-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1", Status: entities.OrderStatusCompleted}, nil)

		_, err := uc.Complete(context.Background(), "o-1")
		if !errors.Is(err, ErrOrderNotAccepted) {
			t.Fatalf("expected ErrOrderNotAccepted, got %v", err)
		}
	})

	t.Run("lost race after read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1", Status: entities.OrderStatusAccepted}, nil)
		repo.EXPECT().CompleteIfAccepted(gomock.Any(), "o-1", gomock.Any()).Return(entities.ServiceOrder{}, nil)

		_, err := uc.Complete(context.Background(), "o-1")
		if !errors.Is(err, ErrOrderNotAccepted) {
			t.Fatalf("expected ErrOrderNotAccepted, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1", Status: entities.OrderStatusAccepted}, nil)
		repo.EXPECT().CompleteIfAccepted(gomock.Any(), "o-1", gomock.AssignableToTypeOf(time.Time{})).DoAndReturn(
			func(_ context.Context, id string, completedAt time.Time) (entities.ServiceOrder, error) {
				if completedAt.IsZero() {
					t.Fatalf("expected completion timestamp")
				}
				return entities.ServiceOrder{ID: id, Status: entities.OrderStatusCompleted, CompletedAt: &completedAt}, nil
			},
		)

		res, err := uc.Complete(context.Background(), " o-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusCompleted || res.CompletedAt == nil {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "o-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1"}, nil)

		res, err := uc.GetByID(context.Background(), "o-1")
		if err != nil || res.ID != "o-1" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}
