package model

// Session is the authenticated identity context returned by the auth
// provider. It exists between a successful sign-in/sign-up and a sign-out;
// persistence operations require one.
type Session struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IDToken string `json:"-"`
}
