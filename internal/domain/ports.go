package domain

import "context"

// ApplicationRepository defines the persistence contract for applications.
type ApplicationRepository interface {
	// Create persists a new application. It returns a *ConflictError if
	// the user already has one (the per-user uniqueness is enforced by
	// the store, so racing submissions cannot both succeed).
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	GetByUser(ctx context.Context, userID string) (Application, error)
	// List returns a page of applications plus the total count matching
	// the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Application, int, error)
	// Update persists owner edits to the business payload. The write is
	// conditional on the stored status still being "pending" so an edit
	// cannot race past an admin decision.
	Update(ctx context.Context, app Application) error
}

// ListFilter holds pagination and optional status criteria for listing
// applications. Page is 1-based.
type ListFilter struct {
	Status   *Status
	Page     int
	PageSize int
}

// VendorRepository defines the persistence contract for vendors.
// There is deliberately no Create: vendors come into existence only
// through Provisioner.Approve.
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (Vendor, error)
	GetByUser(ctx context.Context, userID string) (Vendor, error)
	Update(ctx context.Context, vendor Vendor) error
}

// IdentityStore is the read side of the external identity collaborator.
type IdentityStore interface {
	GetUser(ctx context.Context, id string) (User, error)
}

// Provisioner groups the multi-entity writes of the lifecycle engine so
// they commit or fail as one unit.
type Provisioner interface {
	// Approve commits the vendor insert, the owning user's promotion to
	// the vendor role, and the application's lifecycle-field write in a
	// single unit. The application write is a compare-and-swap: it only
	// applies if the stored status is still in from, so of two racing
	// decisions exactly one succeeds and the loser observes a
	// *TransitionError.
	Approve(ctx context.Context, app Application, vendor Vendor, from []Status) error
	// Transition writes the application's lifecycle fields with the same
	// compare-and-swap guard, without provisioning anything.
	Transition(ctx context.Context, app Application, event Event, from []Status) error
}

// TransitionValidator checks lifecycle events against the current status.
type TransitionValidator interface {
	// Apply returns the destination status for the event, or a
	// *TransitionError if the event is not legal from current.
	Apply(ctx context.Context, current Status, event Event) (Status, error)
}

// ApprovalNotice carries the data for an approval outcome email.
type ApprovalNotice struct {
	Email        string
	BusinessName string
	Username     string
}

// DeclineNotice carries the data for a decline outcome email,
// including the reason recorded by the reviewer.
type DeclineNotice struct {
	Email        string
	BusinessName string
	Username     string
	Reason       string
}

// Notifier dispatches outcome notifications. Implementations are
// best-effort: the lifecycle engine logs and swallows their errors,
// never failing a committed transition over a notification.
type Notifier interface {
	SendApprovalNotice(ctx context.Context, n ApprovalNotice) error
	SendDeclineNotice(ctx context.Context, n DeclineNotice) error
}
