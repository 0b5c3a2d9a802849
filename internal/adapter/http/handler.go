package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/neomorfeo/vendiq/internal/app"
	"github.com/neomorfeo/vendiq/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05Z"

// AddressBody is the API representation of a business address.
type AddressBody struct {
	Street  string `json:"street" minLength:"1" doc:"Street address"`
	City    string `json:"city" minLength:"1" doc:"City"`
	State   string `json:"state" minLength:"1" doc:"State or province"`
	ZipCode string `json:"zip_code" minLength:"1" doc:"Postal code"`
	Country string `json:"country" minLength:"1" doc:"Country"`
}

// SocialBody holds optional social media profile URLs.
type SocialBody struct {
	Facebook  string `json:"facebook,omitempty" doc:"Facebook profile URL"`
	Instagram string `json:"instagram,omitempty" doc:"Instagram profile URL"`
	Twitter   string `json:"twitter,omitempty" doc:"Twitter profile URL"`
	LinkedIn  string `json:"linkedin,omitempty" doc:"LinkedIn profile URL"`
}

// BankBody is the payout account for a business.
type BankBody struct {
	BankName      string `json:"bank_name" minLength:"1" doc:"Bank name"`
	AccountNumber string `json:"account_number" minLength:"1" doc:"Account number"`
	RoutingNumber string `json:"routing_number" minLength:"1" doc:"Routing number"`
	HolderName    string `json:"holder_name" minLength:"1" doc:"Account holder name"`
}

// DocumentBody is a reference to an uploaded supporting document.
type DocumentBody struct {
	Name string `json:"name" minLength:"1" doc:"Document name"`
	URL  string `json:"url" minLength:"1" doc:"Document URL"`
}

// ApplicationResponse is the API representation of a vendor application.
type ApplicationResponse struct {
	ID                     string       `json:"id" doc:"Unique identifier"`
	UserID                 string       `json:"user_id" doc:"Owning user"`
	BusinessName           string       `json:"business_name" doc:"Business name"`
	BusinessDescription    string       `json:"business_description" doc:"Business description"`
	Address                AddressBody  `json:"address"`
	Phone                  string       `json:"phone" doc:"Business phone"`
	Email                  string       `json:"email" doc:"Business email"`
	RegistrationNumber     string       `json:"registration_number" doc:"Business registration number"`
	TaxID                  string       `json:"tax_id" doc:"Tax identifier"`
	LicenseURL             string       `json:"license_url" doc:"Business license URL"`
	Website                string       `json:"website,omitempty" doc:"Website URL"`
	Social                 SocialBody   `json:"social"`
	Bank                   BankBody     `json:"bank"`
	Plan                   string       `json:"plan" doc:"Requested subscription plan"`
	ExpectedMonthlyRevenue string       `json:"expected_monthly_revenue" doc:"Expected monthly revenue"`
	ProductCategories      []string     `json:"product_categories,omitempty" doc:"Product categories"`
	SubmissionNotes        string       `json:"submission_notes,omitempty" doc:"Applicant notes"`
	Documents              []DocumentBody `json:"documents,omitempty" doc:"Supporting documents"`
	Status                 string       `json:"status" doc:"Lifecycle state"`
	AdminNotes             string       `json:"admin_notes,omitempty" doc:"Reviewer notes"`
	ReviewedBy             string       `json:"reviewed_by,omitempty" doc:"Reviewing admin"`
	ReviewedAt             string       `json:"reviewed_at,omitempty" doc:"Decision timestamp (ISO 8601)"`
	CreatedAt              string       `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt              string       `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toApplicationResponse(a domain.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:                     a.ID,
		UserID:                 a.UserID,
		BusinessName:           a.Business.Name,
		BusinessDescription:    a.Business.Description,
		Address:                AddressBody(a.Business.Address),
		Phone:                  a.Business.Phone,
		Email:                  a.Business.Email,
		RegistrationNumber:     a.Business.RegistrationNumber,
		TaxID:                  a.Business.TaxID,
		LicenseURL:             a.Business.LicenseURL,
		Website:                a.Business.Website,
		Social:                 SocialBody(a.Business.Social),
		Bank:                   BankBody(a.Business.Bank),
		Plan:                   string(a.Plan),
		ExpectedMonthlyRevenue: a.ExpectedMonthlyRevenue.String(),
		ProductCategories:      a.ProductCategories,
		SubmissionNotes:        a.SubmissionNotes,
		Status:                 string(a.Status),
		AdminNotes:             a.AdminNotes,
		ReviewedBy:             a.ReviewedBy,
		CreatedAt:              a.CreatedAt.Format(timeLayout),
		UpdatedAt:              a.UpdatedAt.Format(timeLayout),
	}
	if a.ReviewedAt != nil {
		resp.ReviewedAt = a.ReviewedAt.Format(timeLayout)
	}
	for _, d := range a.Documents {
		resp.Documents = append(resp.Documents, DocumentBody{Name: d.Name, URL: d.URL})
	}
	return resp
}

// VendorResponse is the API representation of a vendor account.
type VendorResponse struct {
	ID                  string      `json:"id" doc:"Unique identifier"`
	UserID              string      `json:"user_id" doc:"Owning user"`
	BusinessName        string      `json:"business_name" doc:"Business name"`
	BusinessDescription string      `json:"business_description" doc:"Business description"`
	Address             AddressBody `json:"address"`
	Phone               string      `json:"phone" doc:"Business phone"`
	Email               string      `json:"email" doc:"Business email"`
	Website             string      `json:"website,omitempty" doc:"Website URL"`
	Social              SocialBody  `json:"social"`
	LogoURL             string      `json:"logo_url,omitempty" doc:"Logo URL"`
	CommissionRate      string      `json:"commission_rate" doc:"Commission rate in percent"`
	Active              bool        `json:"active" doc:"Whether the vendor may sell"`
	TotalProducts       int         `json:"total_products" doc:"Listed product count"`
	TotalSales          string      `json:"total_sales" doc:"Cumulative sales amount"`
	Rating              float64     `json:"rating" doc:"Average review rating"`
	ReviewCount         int         `json:"review_count" doc:"Number of reviews"`
	CreatedAt           string      `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt           string      `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toVendorResponse(v domain.Vendor) VendorResponse {
	return VendorResponse{
		ID:                  v.ID,
		UserID:              v.UserID,
		BusinessName:        v.Business.Name,
		BusinessDescription: v.Business.Description,
		Address:             AddressBody(v.Business.Address),
		Phone:               v.Business.Phone,
		Email:               v.Business.Email,
		Website:             v.Business.Website,
		Social:              SocialBody(v.Business.Social),
		LogoURL:             v.LogoURL,
		CommissionRate:      v.CommissionRate.String(),
		Active:              v.Active,
		TotalProducts:       v.TotalProducts,
		TotalSales:          v.TotalSales.String(),
		Rating:              v.Rating,
		ReviewCount:         v.ReviewCount,
		CreatedAt:           v.CreatedAt.Format(timeLayout),
		UpdatedAt:           v.UpdatedAt.Format(timeLayout),
	}
}

// --- Submit Application ---

type SubmitApplicationInput struct {
	UserID string `header:"X-User-ID" doc:"Acting user"`
	Body   struct {
		BusinessName           string         `json:"business_name" minLength:"1" maxLength:"255" doc:"Business name"`
		BusinessDescription    string         `json:"business_description" minLength:"1" doc:"Business description"`
		Address                AddressBody    `json:"address"`
		Phone                  string         `json:"phone" minLength:"1" doc:"Business phone"`
		Email                  string         `json:"email" format:"email" doc:"Business email"`
		RegistrationNumber     string         `json:"registration_number" minLength:"1" doc:"Business registration number"`
		TaxID                  string         `json:"tax_id" minLength:"1" doc:"Tax identifier"`
		LicenseURL             string         `json:"license_url" minLength:"1" doc:"Business license URL"`
		Website                string         `json:"website,omitempty" doc:"Website URL"`
		Social                 SocialBody     `json:"social,omitempty"`
		Bank                   BankBody       `json:"bank"`
		Plan                   string         `json:"plan,omitempty" default:"basic" enum:"basic,premium,enterprise" doc:"Requested subscription plan"`
		ExpectedMonthlyRevenue float64        `json:"expected_monthly_revenue" minimum:"0" doc:"Expected monthly revenue"`
		ProductCategories      []string       `json:"product_categories,omitempty" doc:"Product categories"`
		SubmissionNotes        string         `json:"submission_notes,omitempty" doc:"Notes for the reviewer"`
		Documents              []DocumentBody `json:"documents,omitempty" doc:"Supporting documents"`
	}
}

type SubmitApplicationOutput struct {
	Body ApplicationResponse
}

// --- Get / Update own application ---

type OwnApplicationInput struct {
	UserID string `header:"X-User-ID" doc:"Acting user"`
}

type OwnApplicationOutput struct {
	Body ApplicationResponse
}

type UpdateApplicationInput struct {
	UserID string `header:"X-User-ID" doc:"Acting user"`
	Body   struct {
		BusinessName           *string         `json:"business_name,omitempty" doc:"Business name"`
		BusinessDescription    *string         `json:"business_description,omitempty" doc:"Business description"`
		Address                *AddressBody    `json:"address,omitempty"`
		Phone                  *string         `json:"phone,omitempty" doc:"Business phone"`
		Email                  *string         `json:"email,omitempty" doc:"Business email"`
		RegistrationNumber     *string         `json:"registration_number,omitempty" doc:"Business registration number"`
		TaxID                  *string         `json:"tax_id,omitempty" doc:"Tax identifier"`
		LicenseURL             *string         `json:"license_url,omitempty" doc:"Business license URL"`
		Website                *string         `json:"website,omitempty" doc:"Website URL"`
		Social                 *SocialBody     `json:"social,omitempty"`
		Bank                   *BankBody       `json:"bank,omitempty"`
		Plan                   *string         `json:"plan,omitempty" enum:"basic,premium,enterprise" doc:"Requested subscription plan"`
		ExpectedMonthlyRevenue *float64        `json:"expected_monthly_revenue,omitempty" minimum:"0" doc:"Expected monthly revenue"`
		ProductCategories      []string        `json:"product_categories,omitempty" doc:"Product categories"`
		SubmissionNotes        *string         `json:"submission_notes,omitempty" doc:"Notes for the reviewer"`
		Documents              []DocumentBody  `json:"documents,omitempty" doc:"Supporting documents"`
	}
}

// --- Admin listing and decisions ---

type ListApplicationsInput struct {
	UserID   string `header:"X-User-ID" doc:"Acting admin"`
	Status   string `query:"status" required:"false" enum:"pending,under_review,approved,declined," doc:"Filter by status"`
	Page     int    `query:"page" required:"false" default:"1" minimum:"1" doc:"1-based page number"`
	PageSize int    `query:"page_size" required:"false" default:"10" minimum:"1" maximum:"100" doc:"Page size"`
}

type ListApplicationsOutput struct {
	Body struct {
		Applications []ApplicationResponse `json:"applications" doc:"One page of applications, newest first"`
		Page         int                   `json:"page" doc:"Current page"`
		PageSize     int                   `json:"page_size" doc:"Page size"`
		Total        int                   `json:"total" doc:"Total matching applications"`
		Pages        int                   `json:"pages" doc:"Total pages"`
	}
}

type GetApplicationInput struct {
	UserID string `header:"X-User-ID" doc:"Acting admin"`
	ID     string `path:"id" doc:"Application ID"`
}

type GetApplicationOutput struct {
	Body ApplicationResponse
}

type ReviewApplicationInput struct {
	UserID string `header:"X-User-ID" doc:"Acting admin"`
	ID     string `path:"id" doc:"Application ID"`
	Body   struct {
		Notes string `json:"notes,omitempty" doc:"Reviewer notes"`
	}
}

type ApproveApplicationInput struct {
	UserID string `header:"X-User-ID" doc:"Acting admin"`
	ID     string `path:"id" doc:"Application ID"`
	Body   struct {
		Notes          string   `json:"notes,omitempty" doc:"Reviewer notes"`
		CommissionRate *float64 `json:"commission_rate,omitempty" minimum:"0" maximum:"50" doc:"Commission override in percent"`
	}
}

type ApproveApplicationOutput struct {
	Body struct {
		Application ApplicationResponse `json:"application"`
		Vendor      VendorResponse      `json:"vendor"`
	}
}

type DeclineApplicationInput struct {
	UserID string `header:"X-User-ID" doc:"Acting admin"`
	ID     string `path:"id" doc:"Application ID"`
	Body   struct {
		Notes string `json:"notes" minLength:"1" doc:"Reason for declining"`
	}
}

// --- Vendor self-service ---

type VendorProfileInput struct {
	UserID string `header:"X-User-ID" doc:"Acting user"`
}

type VendorProfileOutput struct {
	Body VendorResponse
}

type UpdateVendorInput struct {
	UserID string `header:"X-User-ID" doc:"Acting user"`
	Body   struct {
		BusinessName        *string      `json:"business_name,omitempty" doc:"Business name"`
		BusinessDescription *string      `json:"business_description,omitempty" doc:"Business description"`
		Address             *AddressBody `json:"address,omitempty"`
		Phone               *string      `json:"phone,omitempty" doc:"Business phone"`
		Email               *string      `json:"email,omitempty" doc:"Business email"`
		Website             *string      `json:"website,omitempty" doc:"Website URL"`
		Social              *SocialBody  `json:"social,omitempty"`
		LogoURL             *string      `json:"logo_url,omitempty" doc:"Logo URL"`
	}
}

type VendorDashboardOutput struct {
	Body struct {
		Vendor        VendorResponse `json:"vendor"`
		TotalProducts int            `json:"total_products" doc:"Listed product count"`
		TotalSales    string         `json:"total_sales" doc:"Cumulative sales amount"`
		Rating        float64        `json:"rating" doc:"Average review rating"`
		ReviewCount   int            `json:"review_count" doc:"Number of reviews"`
	}
}

// Register adds all application and vendor API routes to the Huma API.
func Register(api huma.API, apps *app.ApplicationService, vendors *app.VendorService) {
	huma.Register(api, huma.Operation{
		OperationID: "submit-application",
		Method:      http.MethodPost,
		Path:        "/api/v1/applications",
		Summary:     "Submit a vendor application",
		Tags:        []string{"Applications"},
	}, func(ctx context.Context, input *SubmitApplicationInput) (*SubmitApplicationOutput, error) {
		b := input.Body
		docs := make([]domain.Document, len(b.Documents))
		for i, d := range b.Documents {
			docs[i] = domain.Document{Name: d.Name, URL: d.URL}
		}

		application, err := apps.Submit(ctx, input.UserID, app.SubmitInput{
			Business: domain.BusinessProfile{
				Name:               b.BusinessName,
				Description:        b.BusinessDescription,
				Address:            domain.Address(b.Address),
				Phone:              b.Phone,
				Email:              b.Email,
				RegistrationNumber: b.RegistrationNumber,
				TaxID:              b.TaxID,
				LicenseURL:         b.LicenseURL,
				Website:            b.Website,
				Social:             domain.SocialLinks(b.Social),
				Bank:               domain.BankDetails(b.Bank),
			},
			Plan:                   domain.Plan(b.Plan),
			ExpectedMonthlyRevenue: decimal.NewFromFloat(b.ExpectedMonthlyRevenue),
			ProductCategories:      b.ProductCategories,
			SubmissionNotes:        b.SubmissionNotes,
			Documents:              docs,
		})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &SubmitApplicationOutput{Body: toApplicationResponse(application)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-own-application",
		Method:      http.MethodGet,
		Path:        "/api/v1/applications/mine",
		Summary:     "Get the caller's application",
		Tags:        []string{"Applications"},
	}, func(ctx context.Context, input *OwnApplicationInput) (*OwnApplicationOutput, error) {
		application, err := apps.GetOwn(ctx, input.UserID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &OwnApplicationOutput{Body: toApplicationResponse(application)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-own-application",
		Method:      http.MethodPatch,
		Path:        "/api/v1/applications/mine",
		Summary:     "Update the caller's pending application",
		Tags:        []string{"Applications"},
	}, func(ctx context.Context, input *UpdateApplicationInput) (*OwnApplicationOutput, error) {
		b := input.Body
		patch := domain.ApplicationPatch{
			BusinessName:        b.BusinessName,
			BusinessDescription: b.BusinessDescription,
			Phone:               b.Phone,
			Email:               b.Email,
			RegistrationNumber:  b.RegistrationNumber,
			TaxID:               b.TaxID,
			LicenseURL:          b.LicenseURL,
			Website:             b.Website,
			ProductCategories:   b.ProductCategories,
			SubmissionNotes:     b.SubmissionNotes,
		}
		if b.Address != nil {
			addr := domain.Address(*b.Address)
			patch.Address = &addr
		}
		if b.Social != nil {
			social := domain.SocialLinks(*b.Social)
			patch.Social = &social
		}
		if b.Bank != nil {
			bank := domain.BankDetails(*b.Bank)
			patch.Bank = &bank
		}
		if b.Plan != nil {
			plan := domain.Plan(*b.Plan)
			patch.Plan = &plan
		}
		if b.ExpectedMonthlyRevenue != nil {
			revenue := decimal.NewFromFloat(*b.ExpectedMonthlyRevenue)
			patch.ExpectedMonthlyRevenue = &revenue
		}
		if b.Documents != nil {
			docs := make([]domain.Document, len(b.Documents))
			for i, d := range b.Documents {
				docs[i] = domain.Document{Name: d.Name, URL: d.URL}
			}
			patch.Documents = docs
		}

		application, err := apps.UpdateOwn(ctx, input.UserID, patch)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &OwnApplicationOutput{Body: toApplicationResponse(application)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-applications",
		Method:      http.MethodGet,
		Path:        "/api/v1/applications",
		Summary:     "List applications (admin)",
		Tags:        []string{"Review"},
	}, func(ctx context.Context, input *ListApplicationsInput) (*ListApplicationsOutput, error) {
		filter := domain.ListFilter{
			Page:     input.Page,
			PageSize: input.PageSize,
		}
		if input.Status != "" {
			s := domain.Status(input.Status)
			filter.Status = &s
		}

		result, err := apps.List(ctx, input.UserID, filter)
		if err != nil {
			return nil, toHumaError(err)
		}

		out := &ListApplicationsOutput{}
		out.Body.Applications = make([]ApplicationResponse, len(result.Applications))
		for i, a := range result.Applications {
			out.Body.Applications[i] = toApplicationResponse(a)
		}
		out.Body.Page = result.Page
		out.Body.PageSize = result.PageSize
		out.Body.Total = result.Total
		out.Body.Pages = result.Pages
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-application",
		Method:      http.MethodGet,
		Path:        "/api/v1/applications/{id}",
		Summary:     "Get an application by ID (admin)",
		Tags:        []string{"Review"},
	}, func(ctx context.Context, input *GetApplicationInput) (*GetApplicationOutput, error) {
		application, err := apps.GetByID(ctx, input.UserID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetApplicationOutput{Body: toApplicationResponse(application)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "review-application",
		Method:      http.MethodPost,
		Path:        "/api/v1/applications/{id}/review",
		Summary:     "Mark an application as under review (admin)",
		Tags:        []string{"Review"},
	}, func(ctx context.Context, input *ReviewApplicationInput) (*GetApplicationOutput, error) {
		application, err := apps.SetUnderReview(ctx, input.UserID, input.ID, input.Body.Notes)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetApplicationOutput{Body: toApplicationResponse(application)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "approve-application",
		Method:      http.MethodPost,
		Path:        "/api/v1/applications/{id}/approve",
		Summary:     "Approve an application and provision the vendor (admin)",
		Tags:        []string{"Review"},
	}, func(ctx context.Context, input *ApproveApplicationInput) (*ApproveApplicationOutput, error) {
		var rate *decimal.Decimal
		if input.Body.CommissionRate != nil {
			r := decimal.NewFromFloat(*input.Body.CommissionRate)
			rate = &r
		}

		result, err := apps.Approve(ctx, input.UserID, input.ID, input.Body.Notes, rate)
		if err != nil {
			return nil, toHumaError(err)
		}

		out := &ApproveApplicationOutput{}
		out.Body.Application = toApplicationResponse(result.Application)
		out.Body.Vendor = toVendorResponse(result.Vendor)
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "decline-application",
		Method:      http.MethodPost,
		Path:        "/api/v1/applications/{id}/decline",
		Summary:     "Decline an application (admin)",
		Tags:        []string{"Review"},
	}, func(ctx context.Context, input *DeclineApplicationInput) (*GetApplicationOutput, error) {
		application, err := apps.Decline(ctx, input.UserID, input.ID, input.Body.Notes)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetApplicationOutput{Body: toApplicationResponse(application)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-vendor-profile",
		Method:      http.MethodGet,
		Path:        "/api/v1/vendors/me",
		Summary:     "Get the caller's vendor profile",
		Tags:        []string{"Vendors"},
	}, func(ctx context.Context, input *VendorProfileInput) (*VendorProfileOutput, error) {
		vendor, err := vendors.Profile(ctx, input.UserID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &VendorProfileOutput{Body: toVendorResponse(vendor)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-vendor-profile",
		Method:      http.MethodPatch,
		Path:        "/api/v1/vendors/me",
		Summary:     "Update the caller's vendor profile",
		Tags:        []string{"Vendors"},
	}, func(ctx context.Context, input *UpdateVendorInput) (*VendorProfileOutput, error) {
		b := input.Body
		patch := domain.VendorPatch{
			BusinessName:        b.BusinessName,
			BusinessDescription: b.BusinessDescription,
			Phone:               b.Phone,
			Email:               b.Email,
			Website:             b.Website,
			LogoURL:             b.LogoURL,
		}
		if b.Address != nil {
			addr := domain.Address(*b.Address)
			patch.Address = &addr
		}
		if b.Social != nil {
			social := domain.SocialLinks(*b.Social)
			patch.Social = &social
		}

		vendor, err := vendors.UpdateProfile(ctx, input.UserID, patch)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &VendorProfileOutput{Body: toVendorResponse(vendor)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-vendor-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/v1/vendors/me/dashboard",
		Summary:     "Get the caller's vendor dashboard",
		Tags:        []string{"Vendors"},
	}, func(ctx context.Context, input *VendorProfileInput) (*VendorDashboardOutput, error) {
		dashboard, err := vendors.Dashboard(ctx, input.UserID)
		if err != nil {
			return nil, toHumaError(err)
		}

		out := &VendorDashboardOutput{}
		out.Body.Vendor = toVendorResponse(dashboard.Vendor)
		out.Body.TotalProducts = dashboard.Stats.TotalProducts
		out.Body.TotalSales = dashboard.Stats.TotalSales.String()
		out.Body.Rating = dashboard.Stats.Rating
		out.Body.ReviewCount = dashboard.Stats.ReviewCount
		return out, nil
	})
}

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, domain.ErrApplicationNotFound):
		return huma.Error404NotFound("application not found")
	case errors.Is(err, domain.ErrVendorNotFound):
		return huma.Error404NotFound("vendor not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return huma.Error404NotFound("user not found")
	case errors.Is(err, domain.ErrNotAuthorized):
		return huma.Error403Forbidden("admin access required")
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		return huma.Error409Conflict(conflictErr.Error())
	}

	var trErr *domain.TransitionError
	if errors.As(err, &trErr) {
		return huma.Error422UnprocessableEntity(trErr.Error())
	}

	var stateErr *domain.InvalidStateError
	if errors.As(err, &stateErr) {
		return huma.Error422UnprocessableEntity(stateErr.Error())
	}

	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return huma.Error422UnprocessableEntity(valErr.Error())
	}

	return huma.Error500InternalServerError("internal server error")
}
