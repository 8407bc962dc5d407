package payload

import (
	"houseprice/internal/core"
	"net/url"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.RuneLength(3, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, maxPasswordBytes)),
	)
}

func (r RegisterRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: r.Username,
		Password: r.Password,
	}
}

// LoginRequest is the OAuth2 password grant form. GrantType is optional but must
// be "password" when sent.
type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	GrantType string `json:"grant_type"`
}

func (l *LoginRequest) BindForm(values url.Values) {
	l.Username = values.Get("username")
	l.Password = values.Get("password")
	l.GrantType = values.Get("grant_type")
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
		validation.Field(&l.GrantType, validation.In("password")),
	)
}

func (l LoginRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: l.Username,
		Password: l.Password,
	}
}
