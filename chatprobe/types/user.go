// chatprobe/types/user.go
package types

// UserID names a registered user. The server assigns it; the client never inspects it.
type UserID string

type SignupRequest struct {
	Username string `json:"username"`
}
