package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" example:"OFICIO" validate:"required,oneof=PERSONA CONSORCIO OFICIO"`
	Zone     string `json:"zone" example:"Palermo"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ProfileResponseDTO struct {
	UserID       int     `json:"user_id" example:"7"`
	Role         string  `json:"role" example:"OFICIO"`
	Zone         string  `json:"zone" example:"Palermo"`
	Score        float64 `json:"score" example:"4.8"`
	PenaltyCount int     `json:"penalty_count" example:"1"`
}
