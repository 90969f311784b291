package entities

import (
	"testing"
	"time"
)

func TestBill_Overdue(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("unpaid past the term", func(t *testing.T) {
		b := Bill{Status: BillStatusUnpaid, CreatedAt: created}
		if !b.Overdue(created.Add(PaymentTerm + time.Second)) {
			t.Fatalf("expected overdue")
		}
	})

	t.Run("exactly at the term is not overdue", func(t *testing.T) {
		b := Bill{Status: BillStatusUnpaid, CreatedAt: created}
		if b.Overdue(created.Add(PaymentTerm)) {
			t.Fatalf("expected not overdue at the boundary")
		}
	})

	t.Run("paid bills never go overdue", func(t *testing.T) {
		b := Bill{Status: BillStatusPaid, CreatedAt: created}
		if b.Overdue(created.Add(30 * 24 * time.Hour)) {
			t.Fatalf("expected not overdue")
		}
	})

	t.Run("disputed bills never go overdue", func(t *testing.T) {
		b := Bill{Status: BillStatusDisputed, CreatedAt: created}
		if b.Overdue(created.Add(30 * 24 * time.Hour)) {
			t.Fatalf("expected not overdue")
		}
	})
}

func TestBill_PaidFast(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("paid within the window", func(t *testing.T) {
		paidAt := created.Add(2 * time.Hour)
		b := Bill{Status: BillStatusPaid, CreatedAt: created, PaidAt: &paidAt}
		if !b.PaidFast() {
			t.Fatalf("expected fast payment")
		}
	})

	t.Run("paid exactly at the window", func(t *testing.T) {
		paidAt := created.Add(FastPaymentWindow)
		b := Bill{Status: BillStatusPaid, CreatedAt: created, PaidAt: &paidAt}
		if !b.PaidFast() {
			t.Fatalf("expected fast payment at the boundary")
		}
	})

	t.Run("paid too late", func(t *testing.T) {
		paidAt := created.Add(FastPaymentWindow + time.Second)
		b := Bill{Status: BillStatusPaid, CreatedAt: created, PaidAt: &paidAt}
		if b.PaidFast() {
			t.Fatalf("expected slow payment")
		}
	})

	t.Run("unpaid bill", func(t *testing.T) {
		b := Bill{Status: BillStatusUnpaid, CreatedAt: created}
		if b.PaidFast() {
			t.Fatalf("expected not fast")
		}
	})
}
