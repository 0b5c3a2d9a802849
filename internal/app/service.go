package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// ApplicationService is the vendor application lifecycle engine. It
// validates transitions, enforces the one-application/one-vendor-per-user
// invariants, and on approval provisions the vendor account and promotes
// the applicant in a single unit of work.
type ApplicationService struct {
	apps        domain.ApplicationRepository
	vendors     domain.VendorRepository
	identity    domain.IdentityStore
	provisioner domain.Provisioner
	validator   domain.TransitionValidator
	notifier    domain.Notifier
	log         zerolog.Logger
}

// NewApplicationService creates the engine with the given adapters.
func NewApplicationService(
	apps domain.ApplicationRepository,
	vendors domain.VendorRepository,
	identity domain.IdentityStore,
	provisioner domain.Provisioner,
	validator domain.TransitionValidator,
	notifier domain.Notifier,
	log zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		apps:        apps,
		vendors:     vendors,
		identity:    identity,
		provisioner: provisioner,
		validator:   validator,
		notifier:    notifier,
		log:         log,
	}
}

// SubmitInput is the business payload of a new application.
type SubmitInput struct {
	Business               domain.BusinessProfile
	Plan                   domain.Plan
	ExpectedMonthlyRevenue decimal.Decimal
	ProductCategories      []string
	SubmissionNotes        string
	Documents              []domain.Document
}

// Submit creates a pending application for the user. It fails with a
// *ConflictError if the user already holds an application (any status)
// or is already a vendor, and with a *ValidationError if required
// business or banking fields are missing.
func (s *ApplicationService) Submit(ctx context.Context, userID string, in SubmitInput) (domain.Application, error) {
	if _, err := s.apps.GetByUser(ctx, userID); err == nil {
		return domain.Application{}, &domain.ConflictError{UserID: userID, Reason: "user already has an application"}
	} else if !errors.Is(err, domain.ErrApplicationNotFound) {
		return domain.Application{}, fmt.Errorf("checking existing application: %w", err)
	}

	if _, err := s.vendors.GetByUser(ctx, userID); err == nil {
		return domain.Application{}, &domain.ConflictError{UserID: userID, Reason: "user is already a vendor"}
	} else if !errors.Is(err, domain.ErrVendorNotFound) {
		return domain.Application{}, fmt.Errorf("checking existing vendor: %w", err)
	}

	app := domain.NewApplication(newID(), userID, in.Business, in.Plan,
		in.ExpectedMonthlyRevenue, in.ProductCategories, in.SubmissionNotes, in.Documents)

	if err := app.Validate(); err != nil {
		return domain.Application{}, err
	}

	// The store's unique index on user_id backs the precondition check
	// above, so a racing duplicate still surfaces as a ConflictError.
	if err := s.apps.Create(ctx, app); err != nil {
		return domain.Application{}, fmt.Errorf("creating application: %w", err)
	}

	return app, nil
}

// GetOwn returns the caller's application, if any.
func (s *ApplicationService) GetOwn(ctx context.Context, userID string) (domain.Application, error) {
	return s.apps.GetByUser(ctx, userID)
}

// UpdateOwn applies a partial update to the caller's application. Only
// pending applications are editable by their owner.
func (s *ApplicationService) UpdateOwn(ctx context.Context, userID string, patch domain.ApplicationPatch) (domain.Application, error) {
	app, err := s.apps.GetByUser(ctx, userID)
	if err != nil {
		return domain.Application{}, err
	}

	if app.Status != domain.StatusPending {
		return domain.Application{}, &domain.InvalidStateError{Op: "update", Current: app.Status}
	}

	app.ApplyPatch(patch)

	if err := app.Validate(); err != nil {
		return domain.Application{}, err
	}

	if err := s.apps.Update(ctx, app); err != nil {
		return domain.Application{}, fmt.Errorf("updating application: %w", err)
	}

	return app, nil
}

// ListResult is one page of applications with pagination totals.
type ListResult struct {
	Applications []domain.Application
	Page         int
	PageSize     int
	Total        int
	Pages        int
}

const defaultPageSize = 10

// List returns a page of applications, newest first, optionally filtered
// by status. Admin only.
func (s *ApplicationService) List(ctx context.Context, adminID string, filter domain.ListFilter) (ListResult, error) {
	if _, err := s.requireReviewer(ctx, adminID); err != nil {
		return ListResult{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}

	apps, total, err := s.apps.List(ctx, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("listing applications: %w", err)
	}

	return ListResult{
		Applications: apps,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
		Total:        total,
		Pages:        int(math.Ceil(float64(total) / float64(filter.PageSize))),
	}, nil
}

// GetByID returns a single application. Admin only.
func (s *ApplicationService) GetByID(ctx context.Context, adminID, id string) (domain.Application, error) {
	if _, err := s.requireReviewer(ctx, adminID); err != nil {
		return domain.Application{}, err
	}
	return s.apps.GetByID(ctx, id)
}

// SetUnderReview marks a pending application as under review and records
// the reviewer and their notes. ReviewedAt stays unset: review is
// provisional, the timestamp is reserved for terminal decisions.
func (s *ApplicationService) SetUnderReview(ctx context.Context, adminID, id, notes string) (domain.Application, error) {
	if _, err := s.requireReviewer(ctx, adminID); err != nil {
		return domain.Application{}, err
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}

	next, err := s.validator.Apply(ctx, app.Status, domain.EventReview)
	if err != nil {
		return domain.Application{}, err
	}

	app.Status = next
	app.AdminNotes = notes
	app.ReviewedBy = adminID
	app.UpdatedAt = time.Now().UTC()

	if err := s.provisioner.Transition(ctx, app, domain.EventReview, []domain.Status{domain.StatusPending}); err != nil {
		return domain.Application{}, err
	}

	return app, nil
}

// ApprovalResult pairs the approved application with the vendor it
// provisioned.
type ApprovalResult struct {
	Application domain.Application
	Vendor      domain.Vendor
}

// Approve accepts a pending or under-review application: it provisions a
// vendor from the application's business profile, promotes the applicant
// to the vendor role, and marks the application approved — all committed
// as one unit. The commission rate defaults to 10 unless overridden, and
// the override must lie in [0, 50]. An approval notification is
// dispatched after the commit on a best-effort basis.
func (s *ApplicationService) Approve(ctx context.Context, adminID, id, notes string, commissionRate *decimal.Decimal) (ApprovalResult, error) {
	if _, err := s.requireReviewer(ctx, adminID); err != nil {
		return ApprovalResult{}, err
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return ApprovalResult{}, err
	}

	next, err := s.validator.Apply(ctx, app.Status, domain.EventApprove)
	if err != nil {
		return ApprovalResult{}, err
	}

	applicant, err := s.identity.GetUser(ctx, app.UserID)
	if err != nil {
		return ApprovalResult{}, fmt.Errorf("loading applicant: %w", err)
	}

	rate := domain.DefaultCommissionRate
	if commissionRate != nil {
		if !domain.ValidCommissionRate(*commissionRate) {
			return ApprovalResult{}, &domain.ValidationError{Fields: []string{"commissionRate"}}
		}
		rate = *commissionRate
	}

	vendor := domain.NewVendor(newID(), app, rate)

	now := time.Now().UTC()
	app.Status = next
	app.AdminNotes = notes
	app.ReviewedBy = adminID
	app.ReviewedAt = &now
	app.UpdatedAt = now

	from := []domain.Status{domain.StatusPending, domain.StatusUnderReview}
	if err := s.provisioner.Approve(ctx, app, vendor, from); err != nil {
		return ApprovalResult{}, err
	}

	s.dispatch(ctx, "approval", app, func(ctx context.Context) error {
		return s.notifier.SendApprovalNotice(ctx, domain.ApprovalNotice{
			Email:        app.Business.Email,
			BusinessName: app.Business.Name,
			Username:     applicant.Username,
		})
	})

	return ApprovalResult{Application: app, Vendor: vendor}, nil
}

// Decline rejects a pending or under-review application, recording the
// reviewer, the reason, and the decision timestamp. A decline
// notification carrying the reason is dispatched after the commit.
func (s *ApplicationService) Decline(ctx context.Context, adminID, id, notes string) (domain.Application, error) {
	if _, err := s.requireReviewer(ctx, adminID); err != nil {
		return domain.Application{}, err
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}

	next, err := s.validator.Apply(ctx, app.Status, domain.EventDecline)
	if err != nil {
		return domain.Application{}, err
	}

	applicant, err := s.identity.GetUser(ctx, app.UserID)
	if err != nil {
		return domain.Application{}, fmt.Errorf("loading applicant: %w", err)
	}

	now := time.Now().UTC()
	app.Status = next
	app.AdminNotes = notes
	app.ReviewedBy = adminID
	app.ReviewedAt = &now
	app.UpdatedAt = now

	from := []domain.Status{domain.StatusPending, domain.StatusUnderReview}
	if err := s.provisioner.Transition(ctx, app, domain.EventDecline, from); err != nil {
		return domain.Application{}, err
	}

	s.dispatch(ctx, "decline", app, func(ctx context.Context) error {
		return s.notifier.SendDeclineNotice(ctx, domain.DeclineNotice{
			Email:        app.Business.Email,
			BusinessName: app.Business.Name,
			Username:     applicant.Username,
			Reason:       notes,
		})
	})

	return app, nil
}

// dispatch runs a notification send after a committed transition.
// Failures are logged and swallowed: a notification must never roll back
// or fail the lifecycle operation it follows.
func (s *ApplicationService) dispatch(ctx context.Context, kind string, app domain.Application, send func(context.Context) error) {
	if err := send(ctx); err != nil {
		s.log.Warn().
			Err(err).
			Str("kind", kind).
			Str("application_id", app.ID).
			Str("user_id", app.UserID).
			Msg("notification dispatch failed")
	}
}

// requireReviewer re-asserts that the acting user may perform admin
// decisions. Edge authorization is expected to have run already; this is
// a defensive re-check inside the engine.
func (s *ApplicationService) requireReviewer(ctx context.Context, adminID string) (domain.User, error) {
	admin, err := s.identity.GetUser(ctx, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrNotAuthorized
		}
		return domain.User{}, fmt.Errorf("loading reviewer: %w", err)
	}
	if !admin.CanReview() {
		return domain.User{}, domain.ErrNotAuthorized
	}
	return admin, nil
}
