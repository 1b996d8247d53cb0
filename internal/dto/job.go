package dto

type CreateJobRequestDTO struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required"`
	Budget      string `json:"budget" example:"120000.00" validate:"required"`
}

type JobResponseDTO struct {
	ID                   int    `json:"id" example:"12"`
	CreatorID            int    `json:"creator_id" example:"3"`
	Title                string `json:"title" example:"Kitchen renovation"`
	Description          string `json:"description"`
	Budget               string `json:"budget" example:"120000.00"`
	Status               string `json:"status" example:"OPEN"`
	IsDelayed            bool   `json:"is_delayed" example:"false"`
	StartConfirmedAt     string `json:"start_confirmed_at,omitempty" example:"2025-11-02T10:00:00Z"`
	ExpectedCompletionAt string `json:"expected_completion_at,omitempty" example:"2025-11-16T10:00:00Z"`
	CreatedAt            string `json:"created_at" example:"2025-10-30T16:09:57Z"`
}

type SubmitBidRequestDTO struct {
	Amount        string `json:"amount" example:"100000.00" validate:"required"`
	EstimatedDays int    `json:"estimated_days" example:"14" validate:"required,gt=0"`
	Pitch         string `json:"pitch" example:"Two-man crew, materials included"`
}

type BidResponseDTO struct {
	ID             int    `json:"id" example:"5"`
	JobID          int    `json:"job_id" example:"12"`
	ProfessionalID int    `json:"professional_id" example:"9"`
	Amount         string `json:"amount" example:"100000.00"`
	EstimatedDays  int    `json:"estimated_days" example:"14"`
	Pitch          string `json:"pitch"`
	IsActive       bool   `json:"is_active" example:"true"`
	IsWinner       bool   `json:"is_winner" example:"false"`
	CreatedAt      string `json:"created_at" example:"2025-10-31T09:12:00Z"`
}
