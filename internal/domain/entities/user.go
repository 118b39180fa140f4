package entities

import "time"

// User is an account holder. The APIKey is the sole bearer credential:
// possession implies full authority over every wallet the user owns.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserInput represents input for registering a user
type CreateUserInput struct {
	Name string `json:"name" binding:"required"`
}
