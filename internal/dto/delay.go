package dto

type ReportDelayRequestDTO struct {
	BidID  int    `json:"bid_id" example:"5" validate:"required"`
	Reason string `json:"reason" example:"supplier shipment pushed a week" validate:"required"`
}

type DelayResponseDTO struct {
	ID               int    `json:"id" example:"2"`
	BidID            int    `json:"bid_id" example:"5"`
	DaysDelayed      int    `json:"days_delayed" example:"7"`
	Reason           string `json:"reason"`
	Status           string `json:"status" example:"PENDING"`
	AcceptedByClient bool   `json:"accepted_by_client" example:"false"`
	PenaltyApplied   bool   `json:"penalty_applied" example:"false"`
	CreatedAt        string `json:"created_at" example:"2025-11-20T08:30:00Z"`
}
