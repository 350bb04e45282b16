package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/dukabook/dukabook-api/pkg/apperror"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/google/uuid"
)

func newTestCustomerService() (*CustomerService, *fakeCustomerRepo) {
	customerRepo := newFakeCustomerRepo()
	return NewCustomerService(customerRepo), customerRepo
}

func TestCreateAndGetCustomer(t *testing.T) {
	svc, _ := newTestCustomerService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{
		UserID: userID,
		Name:   "Wanjiku Stores",
		Phone:  strPtr("+254700000001"),
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("created customer has no id")
	}

	got, err := svc.GetCustomer(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
	if got.Name != "Wanjiku Stores" || got.Phone == nil || *got.Phone != "+254700000001" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestGetCustomerForeignIDNotFound(t *testing.T) {
	svc, _ := newTestCustomerService()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{UserID: owner, Name: "Otieno"})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	_, err = svc.GetCustomer(ctx, uuid.New(), created.ID)
	if err == nil {
		t.Fatalf("foreign user read another user's customer")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusNotFound || appErr.Message != "Customer not found" {
		t.Fatalf("got %d %q, want 404 %q", appErr.Code, appErr.Message, "Customer not found")
	}
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc, _ := newTestCustomerService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{
		UserID: userID,
		Name:   "Mama Njeri",
		Email:  strPtr("njeri@example.com"),
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	updated, err := svc.UpdateCustomer(ctx, &UpdateCustomerInput{
		UserID: userID,
		ID:     created.ID,
		Phone:  strPtr("+254711111111"),
	})
	if err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}
	if updated.Phone == nil || *updated.Phone != "+254711111111" {
		t.Fatalf("phone not updated: %+v", updated)
	}
	if updated.Name != "Mama Njeri" || updated.Email == nil || *updated.Email != "njeri@example.com" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestListCustomersPagination(t *testing.T) {
	svc, _ := newTestCustomerService()
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 20; i++ {
		if _, err := svc.CreateCustomer(ctx, &CreateCustomerInput{UserID: userID, Name: "Customer"}); err != nil {
			t.Fatalf("CreateCustomer: %v", err)
		}
	}
	if _, err := svc.CreateCustomer(ctx, &CreateCustomerInput{UserID: uuid.New(), Name: "Other"}); err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	result, err := svc.ListCustomers(ctx, userID, &pagination.PaginationParams{Page: 2, PerPage: 15}, "")
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(result.Items) != 5 {
		t.Fatalf("page 2 has %d items, want 5", len(result.Items))
	}
	p := result.Pagination
	if p.Total != 20 || p.TotalPages != 2 || !p.HasPrev || p.HasNext {
		t.Fatalf("unexpected pagination meta: %+v", p)
	}
}

func TestDeleteCustomerAbsentIsNoop(t *testing.T) {
	svc, _ := newTestCustomerService()
	ctx := context.Background()

	if err := svc.DeleteCustomer(ctx, uuid.New(), uuid.New()); err != nil {
		t.Fatalf("deleting an absent customer errored: %v", err)
	}
}

func TestDeleteCustomerForeignIDIsNoop(t *testing.T) {
	svc, _ := newTestCustomerService()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{UserID: owner, Name: "Baraka Shop"})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	if err := svc.DeleteCustomer(ctx, uuid.New(), created.ID); err != nil {
		t.Fatalf("foreign delete errored: %v", err)
	}
	if got, _ := svc.GetCustomer(ctx, owner, created.ID); got == nil {
		t.Fatalf("foreign delete removed the owner's customer")
	}
}
