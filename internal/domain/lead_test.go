package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadStatus(t *testing.T) {
	status, err := ParseLeadStatus("CONTACTED")
	require.NoError(t, err)
	assert.Equal(t, LeadStatusContacted, status)

	_, err = ParseLeadStatus("contacted")
	require.Error(t, err)
}

func TestLeadTransitions(t *testing.T) {
	allowed := []struct{ from, to LeadStatus }{
		{LeadStatusNew, LeadStatusContacted},
		{LeadStatusNew, LeadStatusRejected},
		{LeadStatusContacted, LeadStatusInterview},
		{LeadStatusContacted, LeadStatusRejected},
		{LeadStatusInterview, LeadStatusHired},
		{LeadStatusInterview, LeadStatusRejected},
	}
	for _, tr := range allowed {
		assert.True(t, IsLeadTransitionAllowed(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to LeadStatus }{
		{LeadStatusNew, LeadStatusInterview},
		{LeadStatusNew, LeadStatusHired},
		{LeadStatusContacted, LeadStatusHired},
		{LeadStatusInterview, LeadStatusNew},
		{LeadStatusHired, LeadStatusRejected},
		{LeadStatusRejected, LeadStatusNew},
	}
	for _, tr := range denied {
		assert.False(t, IsLeadTransitionAllowed(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}
