package models

import "time"

// User is a platform account. Products and history entries are owned by the
// user document; favorites reference services by id.
type User struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	PasswordHash string         `bson:"passwordHash" json:"-"`
	Profession   string         `bson:"profession" json:"profession"`
	Products     []Product      `bson:"products" json:"products"`
	Favorites    []string       `bson:"favorites" json:"favorites"`
	History      []HistoryEntry `bson:"history" json:"history"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the user shape returned by login and profile endpoints.
type PublicUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
}

// Public strips the user down to its public fields.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Profession: u.Profession}
}

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Profession string `json:"profession"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Profession *string `json:"profession"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
