package models

type Patient struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	BloodGroup  string `json:"blood_group,omitempty"`
	Address     string `json:"address,omitempty"`
	IsVerified  bool   `json:"is_verified"`
	Status      string `json:"status"`
}
