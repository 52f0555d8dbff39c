package domain

import "encoding/base64"

// referrerPrefix is the fixed binary prefix GitHub embeds in
// notification_referrer_id tokens. The token must reproduce it byte for byte
// or the resulting deep link stops working.
var referrerPrefix = []byte{0x93, 0x00, 0xce, 0x00, 0x73, 0x33, 0xa2, 0xb2}

// Notification pairs an unread notification with the viewing user and the
// pull request it refers to. It lives only for the duration of one
// rendering pass.
type Notification struct {
	ID   string
	User User
	PR   PR
}

// NewNotification creates an immutable notification triple.
func NewNotification(id string, user User, pr PR) Notification {
	return Notification{ID: id, User: user, PR: pr}
}

// ReferrerToken computes the opaque referrer token: the fixed prefix followed
// by "<notificationID>:<userID>", base64 encoded with the standard alphabet,
// padding stripped, prefixed with "NT_".
func (n Notification) ReferrerToken() string {
	raw := make([]byte, 0, len(referrerPrefix)+len(n.ID)+len(n.User.ID)+1)
	raw = append(raw, referrerPrefix...)
	raw = append(raw, n.ID...)
	raw = append(raw, ':')
	raw = append(raw, n.User.ID...)
	return "NT_" + base64.StdEncoding.WithPadding(base64.NoPadding).EncodeToString(raw)
}

// URL returns the deep link back to the pull request, carrying the referrer
// token as a query parameter.
func (n Notification) URL() string {
	return n.PR.HTMLURL + "?notification_referrer_id=" + n.ReferrerToken()
}
