package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/neomorfeo/vendiq/internal/adapter/fsm"
	adapter "github.com/neomorfeo/vendiq/internal/adapter/http"
	"github.com/neomorfeo/vendiq/internal/adapter/sqlite"
	"github.com/neomorfeo/vendiq/internal/app"
	"github.com/neomorfeo/vendiq/internal/domain"
)

// noopNotifier is a no-op Notifier for tests.
type noopNotifier struct{}

func (noopNotifier) SendApprovalNotice(context.Context, domain.ApprovalNotice) error { return nil }
func (noopNotifier) SendDeclineNotice(context.Context, domain.DeclineNotice) error   { return nil }

// newTestServer creates a full-stack httptest.Server with SQLite in-memory
// and a couple of seeded users: u-1 (customer) and admin-1 (admin).
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("creating test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, u := range []domain.User{
		{ID: "u-1", Username: "acme-owner", Email: "owner@acmegear.example", Role: domain.RoleCustomer},
		{ID: "u-2", Username: "trail-owner", Email: "owner@trailco.example", Role: domain.RoleCustomer},
		{ID: "admin-1", Username: "admin", Email: "admin@vendiq.example", Role: domain.RoleAdmin, IsAdmin: true},
	} {
		if err := db.Identity().SeedUser(ctx, u); err != nil {
			t.Fatalf("seeding user: %v", err)
		}
	}

	apps := app.NewApplicationService(db.Applications(), db.Vendors(), db.Identity(),
		db.Provisioner(), fsm.New(), noopNotifier{}, zerolog.Nop())
	vendors := app.NewVendorService(db.Vendors())

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("vendiq", "0.1.0"))
	adapter.Register(api, apps, vendors)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

// doRequest performs an HTTP request as the given user.
func doRequest(t *testing.T, method, url, userID, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, reader)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}

	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}

	return resp
}

const applicationBody = `{
	"business_name": "Acme Outdoor Gear",
	"business_description": "Tents and trail equipment",
	"address": {"street": "1 Summit Way", "city": "Boulder", "state": "CO", "zip_code": "80301", "country": "US"},
	"phone": "+1-555-0100",
	"email": "sales@acmegear.example",
	"registration_number": "REG-88411",
	"tax_id": "84-1234567",
	"license_url": "https://cdn.example/license.pdf",
	"bank": {"bank_name": "First Mountain Bank", "account_number": "000123456789", "routing_number": "102000021", "holder_name": "Acme LLC"},
	"plan": "premium",
	"expected_monthly_revenue": 5000,
	"product_categories": ["outdoor", "camping"]
}`

// mustSubmit submits an application for the user and returns the response.
func mustSubmit(t *testing.T, srv *httptest.Server, userID string) adapter.ApplicationResponse {
	t.Helper()

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/applications", userID, applicationBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("submit: status = %d, want %d: %s", resp.StatusCode, http.StatusOK, raw)
	}

	var application adapter.ApplicationResponse
	if err := json.NewDecoder(resp.Body).Decode(&application); err != nil {
		t.Fatalf("decode application: %v", err)
	}

	return application
}

// --- Submit ---

func TestSubmit(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")

	if application.ID == "" {
		t.Error("ID should not be empty")
	}
	if application.UserID != "u-1" {
		t.Errorf("UserID = %q, want %q", application.UserID, "u-1")
	}
	if application.Status != "pending" {
		t.Errorf("Status = %q, want %q", application.Status, "pending")
	}
	if application.Plan != "premium" {
		t.Errorf("Plan = %q, want %q", application.Plan, "premium")
	}
	if application.ExpectedMonthlyRevenue != "5000" {
		t.Errorf("ExpectedMonthlyRevenue = %q, want %q", application.ExpectedMonthlyRevenue, "5000")
	}
	if application.ReviewedAt != "" {
		t.Error("ReviewedAt should be empty")
	}
}

func TestSubmit_Duplicate(t *testing.T) {
	srv := newTestServer(t)
	mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/applications", "u-1", applicationBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusConflict)
	}
}

func TestSubmit_MissingBankDetails(t *testing.T) {
	srv := newTestServer(t)

	body := strings.Replace(applicationBody,
		`"bank_name": "First Mountain Bank"`, `"bank_name": ""`, 1)
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/applications", "u-1", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
}

// --- Own application ---

func TestGetOwn(t *testing.T) {
	srv := newTestServer(t)
	submitted := mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/applications/mine", "u-1", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var application adapter.ApplicationResponse
	if err := json.NewDecoder(resp.Body).Decode(&application); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if application.ID != submitted.ID {
		t.Errorf("ID = %q, want %q", application.ID, submitted.ID)
	}
}

func TestGetOwn_NoApplication(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/applications/mine", "u-1", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestUpdateOwn(t *testing.T) {
	srv := newTestServer(t)
	mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodPatch, srv.URL+"/api/v1/applications/mine", "u-1",
		`{"business_name": "Acme Gear International", "website": "https://acmegear.example"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d: %s", resp.StatusCode, http.StatusOK, raw)
	}

	var application adapter.ApplicationResponse
	if err := json.NewDecoder(resp.Body).Decode(&application); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if application.BusinessName != "Acme Gear International" {
		t.Errorf("BusinessName = %q", application.BusinessName)
	}
	if application.Website != "https://acmegear.example" {
		t.Errorf("Website = %q", application.Website)
	}
	// Untouched fields survive.
	if application.Phone != "+1-555-0100" {
		t.Errorf("Phone = %q", application.Phone)
	}
}

func TestUpdateOwn_AfterDecision(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/v1/applications/"+application.ID+"/decline", "admin-1",
		`{"notes": "incomplete details"}`)
	resp.Body.Close()

	resp = doRequest(t, http.MethodPatch, srv.URL+"/api/v1/applications/mine", "u-1",
		`{"business_name": "Too Late Inc"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
}

// --- Admin listing ---

func TestList(t *testing.T) {
	srv := newTestServer(t)
	mustSubmit(t, srv, "u-1")
	mustSubmit(t, srv, "u-2")

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/applications?page=1&page_size=1", "admin-1", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body struct {
		Applications []adapter.ApplicationResponse `json:"applications"`
		Page         int                           `json:"page"`
		PageSize     int                           `json:"page_size"`
		Total        int                           `json:"total"`
		Pages        int                           `json:"pages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(body.Applications) != 1 {
		t.Errorf("page size = %d, want 1", len(body.Applications))
	}
	if body.Total != 2 {
		t.Errorf("total = %d, want 2", body.Total)
	}
	if body.Pages != 2 {
		t.Errorf("pages = %d, want 2", body.Pages)
	}
}

func TestList_NotAdmin(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/applications", "u-1", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

// --- Decisions ---

func TestReview(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/v1/applications/"+application.ID+"/review", "admin-1",
		`{"notes": "checking documents"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var got adapter.ApplicationResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if got.Status != "under_review" {
		t.Errorf("Status = %q, want %q", got.Status, "under_review")
	}
	if got.ReviewedBy != "admin-1" {
		t.Errorf("ReviewedBy = %q", got.ReviewedBy)
	}
	if got.ReviewedAt != "" {
		t.Error("ReviewedAt should stay empty while under review")
	}
}

func TestApprove(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/v1/applications/"+application.ID+"/approve", "admin-1",
		`{"notes": "welcome aboard", "commission_rate": 8}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d: %s", resp.StatusCode, http.StatusOK, raw)
	}

	var body struct {
		Application adapter.ApplicationResponse `json:"application"`
		Vendor      adapter.VendorResponse      `json:"vendor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode approval: %v", err)
	}
	if body.Application.Status != "approved" {
		t.Errorf("Status = %q, want %q", body.Application.Status, "approved")
	}
	if body.Application.ReviewedAt == "" {
		t.Error("ReviewedAt should be set")
	}
	if body.Vendor.CommissionRate != "8" {
		t.Errorf("CommissionRate = %q, want %q", body.Vendor.CommissionRate, "8")
	}
	if body.Vendor.BusinessName != "Acme Outdoor Gear" {
		t.Errorf("Vendor.BusinessName = %q", body.Vendor.BusinessName)
	}

	// The new vendor can now see their profile.
	resp = doRequest(t, http.MethodGet, srv.URL+"/api/v1/vendors/me", "u-1", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("vendor profile: status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestApprove_Twice(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")

	url := srv.URL + "/api/v1/applications/" + application.ID + "/approve"
	resp := doRequest(t, http.MethodPost, url, "admin-1", `{}`)
	resp.Body.Close()

	resp = doRequest(t, http.MethodPost, url, "admin-1", `{}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
}

func TestDecline(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/v1/applications/"+application.ID+"/decline", "admin-1",
		`{"notes": "incomplete bank details"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var got adapter.ApplicationResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if got.Status != "declined" {
		t.Errorf("Status = %q, want %q", got.Status, "declined")
	}
	if got.AdminNotes != "incomplete bank details" {
		t.Errorf("AdminNotes = %q", got.AdminNotes)
	}

	// No vendor came into existence.
	resp = doRequest(t, http.MethodGet, srv.URL+"/api/v1/vendors/me", "u-1", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("vendor profile: status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestDecision_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/v1/applications/nonexistent/approve", "admin-1", `{}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestDecision_NotAdmin(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")

	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/v1/applications/"+application.ID+"/approve", "u-2", `{}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

// --- Vendor self-service ---

func mustApprove(t *testing.T, srv *httptest.Server, applicationID string) {
	t.Helper()

	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/v1/applications/"+applicationID+"/approve", "admin-1", `{}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("approve: status = %d: %s", resp.StatusCode, raw)
	}
}

func TestUpdateVendorProfile(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")
	mustApprove(t, srv, application.ID)

	resp := doRequest(t, http.MethodPatch, srv.URL+"/api/v1/vendors/me", "u-1",
		`{"logo_url": "https://cdn.example/logo.png", "business_description": "Premium trail equipment"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d: %s", resp.StatusCode, http.StatusOK, raw)
	}

	var vendor adapter.VendorResponse
	if err := json.NewDecoder(resp.Body).Decode(&vendor); err != nil {
		t.Fatalf("decode vendor: %v", err)
	}
	if vendor.LogoURL != "https://cdn.example/logo.png" {
		t.Errorf("LogoURL = %q", vendor.LogoURL)
	}
	if vendor.BusinessDescription != "Premium trail equipment" {
		t.Errorf("BusinessDescription = %q", vendor.BusinessDescription)
	}
	// Commission is not vendor-editable and keeps its default.
	if vendor.CommissionRate != "10" {
		t.Errorf("CommissionRate = %q, want %q", vendor.CommissionRate, "10")
	}
}

func TestVendorDashboard(t *testing.T) {
	srv := newTestServer(t)
	application := mustSubmit(t, srv, "u-1")
	mustApprove(t, srv, application.ID)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/vendors/me/dashboard", "u-1", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body struct {
		Vendor        adapter.VendorResponse `json:"vendor"`
		TotalProducts int                    `json:"total_products"`
		TotalSales    string                 `json:"total_sales"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if body.Vendor.UserID != "u-1" {
		t.Errorf("Vendor.UserID = %q", body.Vendor.UserID)
	}
	if body.TotalProducts != 0 {
		t.Errorf("TotalProducts = %d, want 0", body.TotalProducts)
	}
	if body.TotalSales != "0" {
		t.Errorf("TotalSales = %q, want %q", body.TotalSales, "0")
	}
}
