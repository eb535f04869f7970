package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusSubmitted, StatusUnderReview, true},
		{StatusUnderReview, StatusApproved, true},
		{StatusUnderReview, StatusRejected, true},
		{StatusApproved, StatusFunded, true},

		// no skipping forward
		{StatusDraft, StatusUnderReview, false},
		{StatusDraft, StatusApproved, false},
		{StatusSubmitted, StatusApproved, false},
		{StatusSubmitted, StatusFunded, false},

		// no moving backwards
		{StatusSubmitted, StatusDraft, false},
		{StatusUnderReview, StatusSubmitted, false},
		{StatusApproved, StatusUnderReview, false},

		// terminal states never leave
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusSubmitted, false},
		{StatusFunded, StatusSubmitted, false},
		{StatusFunded, StatusApproved, false},

		// no self loops
		{StatusSubmitted, StatusSubmitted, false},
		{StatusFunded, StatusFunded, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusDecided(t *testing.T) {
	assert.True(t, StatusApproved.Decided())
	assert.True(t, StatusRejected.Decided())
	assert.True(t, StatusFunded.Decided())
	assert.False(t, StatusDraft.Decided())
	assert.False(t, StatusSubmitted.Decided())
	assert.False(t, StatusUnderReview.Decided())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusFunded.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.False(t, StatusDraft.Terminal())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("under_review"))
	assert.True(t, ValidStatus("funded"))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}

func TestPresentStatus(t *testing.T) {
	p := PresentStatus(StatusUnderReview)
	assert.Equal(t, "under_review", p.ID)
	assert.Equal(t, "Under Review", p.Label)
	assert.Equal(t, "bg-blue-100 text-blue-800", p.Color)

	unknown := PresentStatus(Status("archived"))
	assert.Equal(t, "archived", unknown.ID)
	assert.Equal(t, "bg-gray-100 text-gray-800", unknown.Color)
}
