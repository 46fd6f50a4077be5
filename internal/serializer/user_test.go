package serializer_test

import (
	"encoding/json"
	"testing"

	"StockKeeper/internal/model"
	"StockKeeper/internal/serializer"

	"github.com/stretchr/testify/assert"
)

func TestSignupInput_Validate_OK(t *testing.T) {
	in := serializer.SignupInput{
		Username: strPtr("john"),
		Email:    strPtr("john@example.com"),
		Password: strPtr("secret"),
	}
	assert.Empty(t, in.Validate())
}

func TestSignupInput_Validate_InvalidEmail(t *testing.T) {
	in := serializer.SignupInput{
		Username: strPtr("john"),
		Email:    strPtr("invalidemail"),
		Password: strPtr("secret"),
	}
	errs := in.Validate()
	assert.Equal(t, []string{"Enter a valid email address."}, errs["email"])
}

func TestSignupInput_Validate_Missing(t *testing.T) {
	var in serializer.SignupInput
	errs := in.Validate()
	for _, field := range []string{"username", "email", "password"} {
		assert.Contains(t, errs, field)
	}
}

func TestLoginInput_Validate(t *testing.T) {
	var in serializer.LoginInput
	errs := in.Validate()
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")

	in = serializer.LoginInput{Username: strPtr("alice"), Password: strPtr("p")}
	assert.Empty(t, in.Validate())
}

func TestNewUserDTO_NeverExposesPassword(t *testing.T) {
	u := model.User{ID: 1, Username: "alice", Email: "a@b.co", Password: "$2a$10$hash"}
	b, err := json.Marshal(serializer.NewUserDTO(&u))
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "$2a$")
}
