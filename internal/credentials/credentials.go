package credentials

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/kretatools/internal/keys"
)

type ID string

func NewID() ID {
	return ID(gonanoid.Must())
}

// Credentials hold everything needed to call the Kréta calendar API as a
// given teacher: the session token lifted from the browser, and the teacher
// id the schedule is requested for.
type Credentials struct {
	ID        ID     `json:"id"`
	TeacherID string `json:"teacher_id"`
	Token     string `json:"token"`
}

func (c Credentials) Encode(key *keys.Key) (*EncodedCredentials, error) {
	encoded, err := key.Encrypt([]byte(c.Token))
	if err != nil {
		return nil, err
	}
	return &EncodedCredentials{
		ID:        c.ID,
		TeacherID: c.TeacherID,
		Token:     encoded,
	}, nil
}

type EncodedCredentials struct {
	ID        ID     `json:"id"`
	TeacherID string `json:"teacher_id"`
	Token     []byte `json:"token"`
}

func (e EncodedCredentials) Decode(key *keys.Key) (*Credentials, error) {
	token, err := key.Decrypt(e.Token)
	if err != nil {
		return nil, err
	}
	return &Credentials{
		ID:        e.ID,
		TeacherID: e.TeacherID,
		Token:     string(token),
	}, nil
}
