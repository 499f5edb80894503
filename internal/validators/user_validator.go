package validators

import (
	"strings"
)

type SignupRequest struct {
	Email      string `form:"email" validate:"required,email"`
	Name       string `form:"name" validate:"required,max=100"`
	Age        string `form:"age" validate:"required,number"`
	Phone      string `form:"phone" validate:"required"`
	BloodGroup string `form:"blood_group" validate:"omitempty,blood_group"`
	Address    string `form:"address"`
	Password   string `form:"password" validate:"required,bcrypt_len"`
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func ValidateSignup(req *SignupRequest) ValidationErrors {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Age = strings.TrimSpace(req.Age)
	req.Phone = strings.TrimSpace(req.Phone)
	req.BloodGroup = strings.ToUpper(strings.TrimSpace(req.BloodGroup))
	req.Address = strings.TrimSpace(req.Address)

	return ValidateStruct(req)
}
