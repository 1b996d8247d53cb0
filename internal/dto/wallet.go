package dto

type WalletResponseDTO struct {
	ID      int    `json:"id" example:"4"`
	Balance string `json:"balance" example:"35000.00"`
}

type DepositRequestDTO struct {
	Card   string `json:"card" example:"2377225624" validate:"required"`
	Amount string `json:"amount" example:"50000.00" validate:"required"`
}

type EscrowSummaryResponseDTO struct {
	Balance string `json:"balance" example:"35000.00"`
	Locked  string `json:"locked" example:"70000.00"`
}

type RateResponseDTO struct {
	Buy       string `json:"buy" example:"1185.50"`
	Sell      string `json:"sell" example:"1225.50"`
	Source    string `json:"source" example:"Oficial"`
	FetchedAt string `json:"fetched_at" example:"2025-11-02T10:00:00Z"`
}
