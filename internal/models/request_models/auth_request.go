package request_models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=Agent Renter"`
	Password string `json:"password" binding:"required,min=6"`

	// Role extension attributes
	LicenseNumber string  `json:"license_number"`
	Agency        string  `json:"agency"`
	Occupation    string  `json:"occupation"`
	MonthlyIncome float64 `json:"monthly_income"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
