package river

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// Compile-time check: Publisher implements domain.Notifier.
var _ domain.Notifier = (*Publisher)(nil)

// Notice kinds stored in the job payload.
const (
	noticeApproval = "approval"
	noticeDecline  = "decline"
)

// NoticeJobArgs carries the data needed to send an outcome email
// asynchronously. River serializes this as JSON into its job queue
// table. It is a snapshot taken at decision time, so the worker never
// needs to query the database.
type NoticeJobArgs struct {
	Notice       string `json:"notice"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	BusinessName string `json:"business_name"`
	Reason       string `json:"reason,omitempty"`
}

// Kind returns the unique job type identifier used by River's job routing.
func (NoticeJobArgs) Kind() string { return "vendor.notice" }

// Client is the River client type parameterized for SQLite (*sql.Tx).
type Client = river.Client[*sql.Tx]

// Publisher implements domain.Notifier by enqueuing River jobs. Actual
// delivery happens in NoticeWorker, so a slow or down SMTP server never
// blocks the request path.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher backed by the given River client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) SendApprovalNotice(ctx context.Context, n domain.ApprovalNotice) error {
	_, err := p.client.Insert(ctx, NoticeJobArgs{
		Notice:       noticeApproval,
		Email:        n.Email,
		Username:     n.Username,
		BusinessName: n.BusinessName,
	}, nil)
	if err != nil {
		return fmt.Errorf("enqueuing approval notice: %w", err)
	}
	return nil
}

func (p *Publisher) SendDeclineNotice(ctx context.Context, n domain.DeclineNotice) error {
	_, err := p.client.Insert(ctx, NoticeJobArgs{
		Notice:       noticeDecline,
		Email:        n.Email,
		Username:     n.Username,
		BusinessName: n.BusinessName,
		Reason:       n.Reason,
	}, nil)
	if err != nil {
		return fmt.Errorf("enqueuing decline notice: %w", err)
	}
	return nil
}
