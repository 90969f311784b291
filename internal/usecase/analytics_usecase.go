package usecase

import (
	"context"
	"sort"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"
)

// uncommittedThreshold is how many requests a customer needs before they
// count as uncommitted browsers on the dashboard.
const uncommittedThreshold = 3

// IAnalyticsUseCase exposes the read-only dashboard views.
//
// Every view is a projection over full-table scans joined in memory. A record
// whose referenced counterpart is missing (an order pointing at a deleted or
// not-yet-visible request, for instance) is skipped rather than failing the
// whole view, since analytics run concurrently with lifecycle writes and may
// observe partial graphs.
type IAnalyticsUseCase interface {
	FrequentCustomers(ctx context.Context) ([]entities.Customer, error)
	UncommittedCustomers(ctx context.Context) ([]entities.Customer, error)
	ProspectiveCustomers(ctx context.Context) ([]entities.Customer, error)
	AcceptedQuotesInMonth(ctx context.Context, year int, month time.Month) ([]entities.Quote, error)
	LargestJob(ctx context.Context) (entities.ServiceRequest, error)
	OverdueBills(ctx context.Context) ([]entities.Bill, error)
	BadCustomers(ctx context.Context) ([]entities.Customer, error)
	GoodCustomers(ctx context.Context) ([]entities.Customer, error)
}

type AnalyticsUseCase struct {
	customerRepo interfaces.ICustomerRepository
	requestRepo  interfaces.IServiceRequestRepository
	quoteRepo    interfaces.IQuoteRepository
	orderRepo    interfaces.IServiceOrderRepository
	billRepo     interfaces.IBillRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(
	customerRepo interfaces.ICustomerRepository,
	requestRepo interfaces.IServiceRequestRepository,
	quoteRepo interfaces.IQuoteRepository,
	orderRepo interfaces.IServiceOrderRepository,
	billRepo interfaces.IBillRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		customerRepo: customerRepo,
		requestRepo:  requestRepo,
		quoteRepo:    quoteRepo,
		orderRepo:    orderRepo,
		billRepo:     billRepo,
	}
}

// FrequentCustomers returns customers owning at least one completed order,
// traced through the order's service request.
//
// The ordering is by customer registration date (newest first), not by how
// many orders they completed. That matches the behavior the dashboard has
// always shown and is kept on purpose.
func (u *AnalyticsUseCase) FrequentCustomers(ctx context.Context) ([]entities.Customer, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	completedRequests := make(map[string]bool)
	for _, o := range orders {
		if o.Status == entities.OrderStatusCompleted {
			completedRequests[o.RequestID] = true
		}
	}

	requests, err := u.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customerIDs := make(map[string]bool)
	for _, r := range requests {
		if completedRequests[r.ID] {
			customerIDs[r.CustomerID] = true
		}
	}

	result, err := u.collectCustomers(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UncommittedCustomers returns customers with three or more service requests,
// regardless of whether any of them led to an order.
func (u *AnalyticsUseCase) UncommittedCustomers(ctx context.Context) ([]entities.Customer, error) {
	requestCounts, err := u.requestCountsByCustomer(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := u.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]entities.Customer, 0)
	for _, c := range customers {
		if requestCounts[c.ID] >= uncommittedThreshold {
			result = append(result, c)
		}
	}
	return result, nil
}

// ProspectiveCustomers returns registered customers who never submitted a
// request.
func (u *AnalyticsUseCase) ProspectiveCustomers(ctx context.Context) ([]entities.Customer, error) {
	requestCounts, err := u.requestCountsByCustomer(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := u.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]entities.Customer, 0)
	for _, c := range customers {
		if requestCounts[c.ID] == 0 {
			result = append(result, c)
		}
	}
	return result, nil
}

// AcceptedQuotesInMonth returns quotes accepted within the calendar month,
// judged by updated_at in [month start, next month start).
func (u *AnalyticsUseCase) AcceptedQuotesInMonth(ctx context.Context, year int, month time.Month) ([]entities.Quote, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	quotes, err := u.quoteRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]entities.Quote, 0)
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusAccepted {
			continue
		}
		if q.UpdatedAt.Before(start) || !q.UpdatedAt.Before(end) {
			continue
		}
		result = append(result, q)
	}
	return result, nil
}

// LargestJob returns the request with the most rooms among those reachable
// from a completed order. Ties go to the first match in scan order. The zero
// value means no completed job exists yet.
func (u *AnalyticsUseCase) LargestJob(ctx context.Context) (entities.ServiceRequest, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	completedRequests := make(map[string]bool)
	for _, o := range orders {
		if o.Status == entities.OrderStatusCompleted {
			completedRequests[o.RequestID] = true
		}
	}

	requests, err := u.requestRepo.ListAll(ctx)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	var best entities.ServiceRequest
	for _, r := range requests {
		if !completedRequests[r.ID] {
			continue
		}
		if best.ID == "" || r.Rooms > best.Rooms {
			best = r
		}
	}
	return best, nil
}

// OverdueBills returns unpaid bills older than the payment term.
func (u *AnalyticsUseCase) OverdueBills(ctx context.Context) ([]entities.Bill, error) {
	bills, err := u.billRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	result := make([]entities.Bill, 0)
	for _, b := range bills {
		if b.Overdue(now) {
			result = append(result, b)
		}
	}
	return result, nil
}

// BadCustomers returns customers linked to at least one overdue bill through
// the bill's order and that order's request.
func (u *AnalyticsUseCase) BadCustomers(ctx context.Context) ([]entities.Customer, error) {
	overdue, err := u.OverdueBills(ctx)
	if err != nil {
		return nil, err
	}
	return u.customersForBills(ctx, overdue)
}

// GoodCustomers returns customers linked to at least one bill that was paid
// within 24 hours of its creation.
func (u *AnalyticsUseCase) GoodCustomers(ctx context.Context) ([]entities.Customer, error) {
	bills, err := u.billRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fast := make([]entities.Bill, 0)
	for _, b := range bills {
		if b.PaidFast() {
			fast = append(fast, b)
		}
	}
	return u.customersForBills(ctx, fast)
}

// customersForBills walks bill -> order -> request -> customer, skipping any
// link whose target record is missing.
func (u *AnalyticsUseCase) customersForBills(ctx context.Context, bills []entities.Bill) ([]entities.Customer, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ordersByID := make(map[string]entities.ServiceOrder, len(orders))
	for _, o := range orders {
		ordersByID[o.ID] = o
	}

	requests, err := u.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	requestsByID := make(map[string]entities.ServiceRequest, len(requests))
	for _, r := range requests {
		requestsByID[r.ID] = r
	}

	customerIDs := make(map[string]bool)
	for _, b := range bills {
		order, ok := ordersByID[b.OrderID]
		if !ok {
			continue
		}
		req, ok := requestsByID[order.RequestID]
		if !ok {
			continue
		}
		customerIDs[req.CustomerID] = true
	}
	return u.collectCustomers(ctx, customerIDs)
}

func (u *AnalyticsUseCase) collectCustomers(ctx context.Context, ids map[string]bool) ([]entities.Customer, error) {
	customers, err := u.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]entities.Customer, 0, len(ids))
	for _, c := range customers {
		if ids[c.ID] {
			result = append(result, c)
		}
	}
	return result, nil
}

func (u *AnalyticsUseCase) requestCountsByCustomer(ctx context.Context) (map[string]int, error) {
	requests, err := u.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, r := range requests {
		counts[r.CustomerID]++
	}
	return counts, nil
}
