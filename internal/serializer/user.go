package serializer

import (
	"regexp"

	"StockKeeper/internal/model"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SignupInput — контракт регистрации.
type SignupInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate проверяет присутствие полей и формат email.
// Уникальность username проверяет сервис.
func (in *SignupInput) Validate() FieldErrors {
	errs := FieldErrors{}

	check := func(field string, v *string) bool {
		if v == nil {
			errs.Add(field, MsgRequired)
			return false
		}
		if *v == "" {
			errs.Add(field, MsgBlank)
			return false
		}
		return true
	}

	check("username", in.Username)
	if check("email", in.Email) && !emailRe.MatchString(*in.Email) {
		errs.Add("email", MsgEmail)
	}
	check("password", in.Password)

	return errs
}

// LoginInput — контракт входа. Кроме присутствия полей ничего не проверяем.
type LoginInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (in *LoginInput) Validate() FieldErrors {
	errs := FieldErrors{}
	if in.Username == nil || *in.Username == "" {
		errs.Add("username", MsgRequired)
	}
	if in.Password == nil || *in.Password == "" {
		errs.Add("password", MsgRequired)
	}
	return errs
}

// UserDTO — публичные поля пользователя. Пароль наружу не отдаётся никогда.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{ID: u.ID, Username: u.Username, Email: u.Email}
}
