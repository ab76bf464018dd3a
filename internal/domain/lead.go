package domain

import (
	"fmt"
	"slices"
	"time"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusInterview LeadStatus = "INTERVIEW"
	LeadStatusHired     LeadStatus = "HIRED"
	LeadStatusRejected  LeadStatus = "REJECTED"
)

// leadTransitions lists every allowed (from -> to) pair. HIRED and
// REJECTED are terminal.
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew:       {LeadStatusContacted, LeadStatusRejected},
	LeadStatusContacted: {LeadStatusInterview, LeadStatusRejected},
	LeadStatusInterview: {LeadStatusHired, LeadStatusRejected},
}

func ParseLeadStatus(s string) (LeadStatus, error) {
	status := LeadStatus(s)
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusInterview, LeadStatusHired, LeadStatusRejected:
		return status, nil
	}
	return "", fmt.Errorf("unknown lead status %q", s)
}

// IsLeadTransitionAllowed reports whether a recruitment lead may move from
// one pipeline status to another.
func IsLeadTransitionAllowed(from, to LeadStatus) bool {
	return slices.Contains(leadTransitions[from], to)
}

type RecruitmentLead struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Source    string     `json:"source,omitempty"`
	Status    LeadStatus `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Version   int32      `json:"-"`
}
