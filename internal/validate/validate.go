package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidBody = errors.New("invalid request body")
	ErrMissingName = errors.New("name must be a string")
	ErrMissingMail = errors.New("email must be a string")
)

// UserInput is a validated create/update payload. Values are kept verbatim.
type UserInput struct {
	Name  string
	Email string
}

type userBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserBody checks that raw is a JSON object whose name and email fields are
// present and are strings. Unknown fields are ignored.
func UserBody(raw []byte) (UserInput, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return UserInput{}, ErrInvalidBody
	}
	var b userBody
	if err := json.Unmarshal(trimmed, &b); err != nil {
		return UserInput{}, errors.Join(ErrInvalidBody, err)
	}
	if b.Name == nil {
		return UserInput{}, errors.Join(ErrInvalidBody, ErrMissingName)
	}
	if b.Email == nil {
		return UserInput{}, errors.Join(ErrInvalidBody, ErrMissingMail)
	}
	return UserInput{Name: *b.Name, Email: *b.Email}, nil
}

// UserID parses a path-embedded user id.
func UserID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
