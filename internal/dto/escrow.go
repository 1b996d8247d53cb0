package dto

type AcceptBidRequestDTO struct {
	BidID int `json:"bid_id" example:"5" validate:"required"`
}

type RefundRequestDTO struct {
	Reason string `json:"reason" example:"work abandoned" validate:"required"`
}

type EscrowTransactionResponseDTO struct {
	ID          int    `json:"id" example:"31"`
	JobID       int    `json:"job_id" example:"12"`
	BidID       int    `json:"bid_id" example:"5"`
	Type        string `json:"type" example:"INITIAL_DEPOSIT"`
	Status      string `json:"status" example:"LOCKED"`
	Amount      string `json:"amount" example:"30000.00"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at" example:"2025-11-02T10:00:00Z"`
	ReleasedAt  string `json:"released_at,omitempty" example:"2025-11-16T10:00:00Z"`
}
