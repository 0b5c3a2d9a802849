package river

import (
	"context"

	"github.com/riverqueue/river"
	"github.com/rs/zerolog"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// NoticeWorker processes outcome-notice jobs from the River queue and
// hands them to the configured sender, normally the SMTP mailer.
type NoticeWorker struct {
	river.WorkerDefaults[NoticeJobArgs]

	sender domain.Notifier
	log    zerolog.Logger
}

// Work sends a single notice.
func (w *NoticeWorker) Work(ctx context.Context, job *river.Job[NoticeJobArgs]) error {
	w.log.Info().
		Str("notice", job.Args.Notice).
		Str("email", job.Args.Email).
		Str("business", job.Args.BusinessName).
		Int64("job_id", job.ID).
		Int("attempt", job.Attempt).
		Msg("sending notice")

	switch job.Args.Notice {
	case noticeDecline:
		return w.sender.SendDeclineNotice(ctx, domain.DeclineNotice{
			Email:        job.Args.Email,
			Username:     job.Args.Username,
			BusinessName: job.Args.BusinessName,
			Reason:       job.Args.Reason,
		})
	default:
		return w.sender.SendApprovalNotice(ctx, domain.ApprovalNotice{
			Email:        job.Args.Email,
			Username:     job.Args.Username,
			BusinessName: job.Args.BusinessName,
		})
	}
}
