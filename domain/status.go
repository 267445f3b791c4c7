package domain

import (
	"fmt"
	"strings"
)

// Status is the approval state shared by projects and materials.
type Status int

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
)

// Wire values used by the REST API.
const (
	WirePending  = "PENDENTE"
	WireApproved = "APROVADO"
	WireRejected = "REPROVADO"
)

// ParseStatus normalises a status string received from the API. Matching is
// case-insensitive and accepts the Portuguese and English spellings.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case WirePending, "PENDING", "PENDENTES":
		return StatusPending, nil
	case WireApproved, "APPROVED", "APROVADOS":
		return StatusApproved, nil
	case WireRejected, "REJECTED", "REPROVADOS":
		return StatusRejected, nil
	}
	return StatusPending, fmt.Errorf("unknown status %q", s)
}

// Wire returns the value the API expects for s.
func (s Status) Wire() string {
	switch s {
	case StatusApproved:
		return WireApproved
	case StatusRejected:
		return WireRejected
	default:
		return WirePending
	}
}

func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "APPROVED"
	case StatusRejected:
		return "REJECTED"
	default:
		return "PENDING"
	}
}

// IsRejected is the single rejection check used by the resubmission flow.
func (s Status) IsRejected() bool { return s == StatusRejected }

// IsPending reports whether s still awaits a decision.
func (s Status) IsPending() bool { return s == StatusPending }
