package users

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	UUID      string    `json:"uuid"`
	CreatedAt time.Time `json:"created_at"`
}
