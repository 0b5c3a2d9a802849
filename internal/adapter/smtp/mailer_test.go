package smtp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neomorfeo/vendiq/internal/domain"
)

func TestApprovalBody(t *testing.T) {
	body := approvalBody(domain.ApprovalNotice{
		Username:     "acme-owner",
		BusinessName: "Acme Outdoor Gear",
	})

	assert.Contains(t, body, "acme-owner")
	assert.Contains(t, body, "Acme Outdoor Gear")
	assert.Contains(t, body, "approved")
}

func TestDeclineBody_WithReason(t *testing.T) {
	body := declineBody(domain.DeclineNotice{
		Username:     "acme-owner",
		BusinessName: "Acme Outdoor Gear",
		Reason:       "incomplete bank details",
	})

	assert.Contains(t, body, "incomplete bank details")
	assert.Contains(t, body, "unable to approve")
}

func TestDeclineBody_NoReason(t *testing.T) {
	body := declineBody(domain.DeclineNotice{
		Username:     "acme-owner",
		BusinessName: "Acme Outdoor Gear",
	})

	assert.NotContains(t, body, "Reason:")
}

func TestBodies_EscapeHTML(t *testing.T) {
	body := declineBody(domain.DeclineNotice{
		Username:     "<script>alert(1)</script>",
		BusinessName: "Acme & Sons",
		Reason:       "a < b",
	})

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Acme &amp; Sons")
}
