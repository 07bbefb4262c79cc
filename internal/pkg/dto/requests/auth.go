package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type BackendLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
