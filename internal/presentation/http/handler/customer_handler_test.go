package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/dukabook/dukabook-api/internal/application/service"
	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type memCustomerRepo struct {
	customers []entity.Customer
}

func (r *memCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*entity.Customer, error) {
	for i := range r.customers {
		if r.customers[i].ID == id && r.customers[i].UserID == userID {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = *customer
			return nil
		}
	}
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i := range r.customers {
		if r.customers[i].ID == id && r.customers[i].UserID == userID {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memCustomerRepo) List(_ context.Context, userID uuid.UUID, params *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))

	params.Validate()
	offset := params.Offset()
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + params.PerPage
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *memCustomerRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range r.customers {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newCustomerTestRouter(userID uuid.UUID) (*gin.Engine, *memCustomerRepo) {
	gin.SetMode(gin.TestMode)
	repo := &memCustomerRepo{}
	h := NewCustomerHandler(service.NewCustomerService(repo))

	router := gin.New()
	authed := router.Group("", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	authed.GET("/customers", h.List)
	authed.POST("/customers", h.Create)
	authed.GET("/customers/:id", h.Get)
	authed.PUT("/customers/:id", h.Update)
	authed.DELETE("/customers/:id", h.Delete)

	// Same handler without the auth context
	router.POST("/anon/customers", h.Create)

	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v: %s", err, w.Body.String())
	}
	return env
}

func TestCreateCustomerEndpoint(t *testing.T) {
	router, repo := newCustomerTestRouter(uuid.New())

	w := doJSON(t, router, http.MethodPost, "/customers", gin.H{
		"name":  "Wanjiku Stores",
		"phone": "+254700000001",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("success = false: %s", w.Body.String())
	}

	var created entity.Customer
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if created.Name != "Wanjiku Stores" || created.ID == uuid.Nil {
		t.Fatalf("unexpected created customer: %+v", created)
	}
	if len(repo.customers) != 1 {
		t.Fatalf("repo has %d customers, want 1", len(repo.customers))
	}
}

func TestCreateCustomerMissingName(t *testing.T) {
	router, _ := newCustomerTestRouter(uuid.New())

	w := doJSON(t, router, http.MethodPost, "/customers", gin.H{"phone": "+254700000001"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Success {
		t.Fatalf("success = true on validation failure")
	}
	if env.Message != "name is required" {
		t.Fatalf("message = %q, want %q", env.Message, "name is required")
	}
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	router, _ := newCustomerTestRouter(uuid.New())

	w := doJSON(t, router, http.MethodPost, "/customers", gin.H{
		"name":  "Otieno",
		"email": "not-an-email",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Message != "email must be a valid email address" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestGetCustomerInvalidID(t *testing.T) {
	router, _ := newCustomerTestRouter(uuid.New())

	w := doJSON(t, router, http.MethodGet, "/customers/not-a-uuid", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "Invalid customer ID" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	router, _ := newCustomerTestRouter(uuid.New())

	w := doJSON(t, router, http.MethodGet, "/customers/"+uuid.NewString(), nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "Customer not found" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestDeleteCustomerReturnsNoContent(t *testing.T) {
	userID := uuid.New()
	router, repo := newCustomerTestRouter(userID)
	repo.Create(context.Background(), &entity.Customer{UserID: userID, Name: "Njeri"})
	id := repo.customers[0].ID

	w := doJSON(t, router, http.MethodDelete, "/customers/"+id.String(), nil)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if len(repo.customers) != 0 {
		t.Fatalf("customer not deleted")
	}

	// Deleting again still succeeds
	w = doJSON(t, router, http.MethodDelete, "/customers/"+id.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("repeat delete status = %d, want 204", w.Code)
	}
}

func TestCreateCustomerUnauthenticated(t *testing.T) {
	router, _ := newCustomerTestRouter(uuid.New())

	w := doJSON(t, router, http.MethodPost, "/anon/customers", gin.H{"name": "Wanjiku"})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
