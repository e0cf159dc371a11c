package response_models

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`

	LicenseNumber string  `json:"license_number,omitempty"`
	Agency        string  `json:"agency,omitempty"`
	Occupation    string  `json:"occupation,omitempty"`
	MonthlyIncome float64 `json:"monthly_income,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
