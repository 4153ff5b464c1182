package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"eventmarket/internal/cart"
	"eventmarket/internal/checkout"
	"eventmarket/internal/domain"
	orderrepo "eventmarket/internal/repository/order"
	bookingsvc "eventmarket/internal/service/booking"
	customersvc "eventmarket/internal/service/customer"
	eventtypesvc "eventmarket/internal/service/eventtype"
	ordersvc "eventmarket/internal/service/order"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCustomerSvc struct {
	byToken map[string]*domain.Customer
}

func (s *stubCustomerSvc) Signup(_ context.Context, in customersvc.SignupInput) (*domain.Customer, error) {
	return &domain.Customer{ID: "c1", Email: in.Email, Name: in.Name, Role: domain.RoleCustomer}, nil
}

func (s *stubCustomerSvc) Login(_ context.Context, email, _ string) (*domain.Customer, string, error) {
	return &domain.Customer{ID: "c1", Email: email}, "tok", nil
}

func (s *stubCustomerSvc) LookupByToken(_ context.Context, token string) (*domain.Customer, error) {
	if c, ok := s.byToken[token]; ok {
		return c, nil
	}
	return nil, customersvc.ErrInvalidToken
}

func (s *stubCustomerSvc) AccessTTLSeconds() int { return 3600 }

type stubVendorSvc struct {
	vendors []domain.Vendor
}

func (s *stubVendorSvc) List(_ context.Context, categoryID string) ([]domain.Vendor, error) {
	if categoryID == "" {
		return s.vendors, nil
	}
	var out []domain.Vendor
	for _, v := range s.vendors {
		if v.CategoryID == categoryID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubVendorSvc) Get(_ context.Context, id string) (*domain.Vendor, error) {
	for _, v := range s.vendors {
		if v.ID == id {
			vv := v
			return &vv, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubCategorySvc struct{}

func (stubCategorySvc) List(_ context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: "cat1", Key: "catering", Name: "Catering"}}, nil
}

type stubBookingSvc struct{}

func (stubBookingSvc) Create(_ context.Context, customerID string, in bookingsvc.CreateInput) (*domain.Booking, error) {
	return &domain.Booking{ID: "b1", CustomerID: customerID, VendorID: in.VendorID, Status: domain.BookingPending}, nil
}

func (stubBookingSvc) ListByCustomer(_ context.Context, customerID string) ([]domain.Booking, error) {
	return []domain.Booking{{ID: "b1", CustomerID: customerID}}, nil
}

func testDeps(t *testing.T) (Deps, *orderStore) {
	t.Helper()
	repo := orderrepo.NewMemory()
	deps := Deps{
		CustomerSvc: &stubCustomerSvc{byToken: map[string]*domain.Customer{
			"cust-token":   {ID: "c1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleCustomer},
			"vendor-token": {ID: "c2", Name: "Vee", Email: "vee@example.com", Role: domain.RoleVendor, VendorID: "v1"},
		}},
		VendorSvc:    &stubVendorSvc{vendors: []domain.Vendor{{ID: "v1", Name: "Vendor One", CategoryID: "cat1"}}},
		CategorySvc:  stubCategorySvc{},
		EventTypeSvc: eventtypesvc.New(),
		CartSessions: cart.NewSessions(),
		CheckoutSvc:  checkout.New(repo),
		OrderSvc:     ordersvc.New(repo),
		BookingSvc:   stubBookingSvc{},
	}
	return deps, &orderStore{repo: repo}
}

type orderStore struct {
	repo orderrepo.Repository
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	deps, _ := testDeps(t)
	router := newTestRouter(t, deps)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	deps, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := doJSON(t, router, http.MethodGet, "/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer bogus"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer cust-token"})
	if rec.Code != http.StatusOK {
		t.Fatalf("good token: status = %d, want 200", rec.Code)
	}
}

func TestCartFlowThroughAPI(t *testing.T) {
	deps, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"p1","vendorId":"v1","vendorName":"Vendor One","unitPrice":"45.99"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item: status = %d body=%s", rec.Code, rec.Body.String())
	}
	session := rec.Header().Get(sessionHeader)
	if session == "" {
		t.Fatalf("expected session header on first cart request")
	}
	hdr := map[string]string{sessionHeader: session}

	// Same product again merges instead of appending.
	doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"p1","vendorId":"v1","vendorName":"Vendor One","unitPrice":"45.99"}`, hdr)
	doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"p2","vendorId":"v2","vendorName":"Vendor Two","unitPrice":"89.99"}`, hdr)

	rec = doJSON(t, router, http.MethodGet, "/cart", "", hdr)
	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(resp.Items))
	}
	if resp.Items[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", resp.Items[0].Quantity)
	}
	if resp.Breakdown.Subtotal != "181.97" || resp.Breakdown.Shipping != "0.00" || resp.Breakdown.Total != "196.53" {
		t.Fatalf("unexpected breakdown: %+v", resp.Breakdown)
	}

	// Quantity floor via the API.
	rec = doJSON(t, router, http.MethodPatch, "/cart/items/p2", `{"quantity":0}`, hdr)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if resp.Items[1].Quantity != 1 {
		t.Fatalf("quantity floor: got %d, want 1", resp.Items[1].Quantity)
	}

	rec = doJSON(t, router, http.MethodDelete, "/cart/items/p1", "", hdr)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ProductID != "p2" {
		t.Fatalf("unexpected cart after remove: %+v", resp.Items)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	deps, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := doJSON(t, router, http.MethodPost, "/checkout", "", map[string]string{"Authorization": "Bearer cust-token"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty cart checkout: status = %d, want 400", rec.Code)
	}
}

func TestCheckoutSplitsAndClearsCart(t *testing.T) {
	deps, store := testDeps(t)
	router := newTestRouter(t, deps)

	rec := doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"p1","vendorId":"v1","vendorName":"Vendor One","unitPrice":"45.99"}`, nil)
	session := rec.Header().Get(sessionHeader)
	hdr := map[string]string{sessionHeader: session}
	doJSON(t, router, http.MethodPatch, "/cart/items/p1", `{"quantity":2}`, hdr)
	doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"p2","vendorId":"v2","vendorName":"Vendor Two","unitPrice":"89.99"}`, hdr)

	hdr["Authorization"] = "Bearer cust-token"
	rec = doJSON(t, router, http.MethodPost, "/checkout", "", hdr)
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: status = %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode checkout response: %v", err)
	}
	if len(resp.Orders) != 2 {
		t.Fatalf("expected 2 vendor orders, got %d", len(resp.Orders))
	}
	if !resp.Orders[0].Total.Equal(decimal.New(9198, -2)) || !resp.Orders[1].Total.Equal(decimal.New(8999, -2)) {
		t.Fatalf("unexpected vendor totals: %s / %s", resp.Orders[0].Total, resp.Orders[1].Total)
	}

	persisted, err := store.repo.GetByCustomer(context.Background(), "c1")
	if err != nil {
		t.Fatalf("load persisted orders: %v", err)
	}
	if len(persisted) != 2 {
		t.Fatalf("expected 2 persisted orders, got %d", len(persisted))
	}

	// Cart is cleared after a successful checkout.
	rec = doJSON(t, router, http.MethodGet, "/cart", "", map[string]string{sessionHeader: session})
	var cview cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cview); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cview.Items) != 0 {
		t.Fatalf("cart not cleared: %+v", cview.Items)
	}
}

func TestVendorOrderEndpointsRequireVendorRole(t *testing.T) {
	deps, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := doJSON(t, router, http.MethodGet, "/vendor/orders", "", map[string]string{"Authorization": "Bearer cust-token"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("customer on vendor route: status = %d, want 403", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/vendor/orders", "", map[string]string{"Authorization": "Bearer vendor-token"})
	if rec.Code != http.StatusOK {
		t.Fatalf("vendor on vendor route: status = %d, want 200", rec.Code)
	}
}

func TestUpdateOrderStatusMapping(t *testing.T) {
	deps, store := testDeps(t)
	router := newTestRouter(t, deps)

	err := store.repo.Save(context.Background(), domain.Order{
		ID:       "o1",
		VendorID: "v1",
		Status:   domain.OrderPending,
		Total:    decimal.Zero,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	hdr := map[string]string{"Authorization": "Bearer vendor-token"}

	rec := doJSON(t, router, http.MethodPatch, "/vendor/orders/o1/status", `{"status":"bogus"}`, hdr)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/vendor/orders/o1/status", `{"status":"delivered"}`, hdr)
	if rec.Code != http.StatusConflict {
		t.Fatalf("illegal transition: status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/vendor/orders/o1/status", `{"status":"processing"}`, hdr)
	if rec.Code != http.StatusOK {
		t.Fatalf("legal transition: status = %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPatch, "/vendor/orders/missing/status", `{"status":"processing"}`, hdr)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing order: status = %d, want 404", rec.Code)
	}
}

func TestVendorListingAndEventTypes(t *testing.T) {
	deps, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := doJSON(t, router, http.MethodGet, "/vendors?category=cat1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list vendors: status = %d", rec.Code)
	}
	var vresp struct {
		Vendors []domain.Vendor `json:"vendors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &vresp); err != nil {
		t.Fatalf("decode vendors: %v", err)
	}
	if len(vresp.Vendors) != 1 || vresp.Vendors[0].ID != "v1" {
		t.Fatalf("unexpected vendors: %+v", vresp.Vendors)
	}

	rec = doJSON(t, router, http.MethodGet, "/vendors/missing", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing vendor: status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/event-types", "", nil)
	var eresp struct {
		EventTypes []domain.EventType `json:"eventTypes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &eresp); err != nil {
		t.Fatalf("decode event types: %v", err)
	}
	if len(eresp.EventTypes) == 0 {
		t.Fatalf("expected static event types")
	}
}
