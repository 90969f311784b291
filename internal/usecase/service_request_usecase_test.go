package usecase

import (
	"context"
	"errors"
	"testing"

	"home_cleaning/internal/domain/entities"
	mock_interfaces "home_cleaning/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceRequestUseCase_Submit(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), SubmitRequestInput{CustomerID: "  ", Address: "Rua A", CleaningType: "deep", Rooms: 3})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), SubmitRequestInput{CustomerID: "cust-1", Address: "", CleaningType: "deep", Rooms: 3})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("non positive rooms", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), SubmitRequestInput{CustomerID: "cust-1", Address: "Rua A", CleaningType: "deep", Rooms: 0})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), SubmitRequestInput{CustomerID: "cust-1", Address: "Rua A", CleaningType: "deep", Rooms: 3, ProposedBudget: -1})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("owner not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewServiceRequestUseCase(nil, customerRepo)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.Submit(context.Background(), SubmitRequestInput{CustomerID: "cust-1", Address: "Rua A", CleaningType: "deep", Rooms: 3})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success starts with empty photo list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, customerRepo)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.ID == "" || r.CustomerID != "cust-1" || r.Rooms != 3 {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Photos == nil || len(r.Photos) != 0 {
					t.Fatalf("expected empty photo list, got %v", r.Photos)
				}
				if r.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return r, nil
			},
		)

		res, err := uc.Submit(context.Background(), SubmitRequestInput{
			CustomerID:   " cust-1 ",
			Address:      " Rua A, 100 ",
			CleaningType: " deep ",
			Rooms:        3,
			Notes:        " two cats ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Notes != "two cats" {
			t.Fatalf("expected trimmed notes, got %q", res.Notes)
		}
	})
}

func TestServiceRequestUseCase_AttachPhoto(t *testing.T) {
	t.Run("invalid request id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.AttachPhoto(context.Background(), "  ", "https://cdn/p.jpg")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("invalid photo url", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.AttachPhoto(context.Background(), "req-1", "   ")
		if !errors.Is(err, ErrInvalidPhotoURL) {
			t.Fatalf("expected ErrInvalidPhotoURL, got %v", err)
		}
	})

	t.Run("request missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		repo.EXPECT().AppendPhoto(gomock.Any(), "req-1", "https://cdn/p.jpg").Return(entities.ServiceRequest{}, nil)

		_, err := uc.AttachPhoto(context.Background(), "req-1", "https://cdn/p.jpg")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("success appends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		repo.EXPECT().AppendPhoto(gomock.Any(), "req-1", "https://cdn/p.jpg").Return(entities.ServiceRequest{ID: "req-1", Photos: []string{"https://cdn/a.jpg", "https://cdn/p.jpg"}}, nil)

		res, err := uc.AttachPhoto(context.Background(), " req-1 ", " https://cdn/p.jpg ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Photos) != 2 {
			t.Fatalf("expected two photos, got %v", res.Photos)
		}
	})
}

func TestServiceRequestUseCase_ListByCustomer(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.ListByCustomer(context.Background(), "")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		repo.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.ServiceRequest{{ID: "req-1"}}, nil)

		res, err := uc.ListByCustomer(context.Background(), "cust-1")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}
