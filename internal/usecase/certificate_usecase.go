package usecase

import (
	"context"

	"github.com/google/uuid"
)

// EvaluateEligibilityParams identify the attendance record to evaluate.
type EvaluateEligibilityParams struct {
	EventID    uuid.UUID `json:"eventId" validate:"required"`
	UserID     uuid.UUID `json:"userId" validate:"required"`
	ActivityID string    `json:"activityId"`
}

// EligibilityResult reports whether a user may receive a certificate for an
// event. Reason is set only when the user is ineligible.
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// EvaluateBatchParams evaluate a whole group of users against one event.
type EvaluateBatchParams struct {
	EventID    uuid.UUID   `json:"eventId" validate:"required"`
	UserIDs    []uuid.UUID `json:"userIds" validate:"required,min=1"`
	ActivityID string      `json:"activityId"`
}

// IneligibleUser pairs a rejected user with the reason.
type IneligibleUser struct {
	UserID uuid.UUID `json:"userId"`
	Reason string    `json:"reason"`
}

// BatchEligibilityResult splits the evaluated users into eligible and
// ineligible sets.
type BatchEligibilityResult struct {
	EligibleUserIDs []uuid.UUID      `json:"eligibleUserIds"`
	Ineligible      []IneligibleUser `json:"ineligible"`
}

// CertificateUsecase decides certificate eligibility from inscription and
// presence records.
type CertificateUsecase interface {
	EvaluateEligibility(ctx context.Context, params EvaluateEligibilityParams) (*EligibilityResult, error)
	EvaluateBatch(ctx context.Context, params EvaluateBatchParams) (*BatchEligibilityResult, error)
}
