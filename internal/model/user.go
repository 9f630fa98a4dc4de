package model

import "time"

// UserType identifies the role of an account.
type UserType string

const (
	UserTypeKid   UserType = "kid"
	UserTypeTutor UserType = "tutor"
)

// Valid reports whether the value is a known user type.
func (t UserType) Valid() bool {
	return t == UserTypeKid || t == UserTypeTutor
}

// SubscriptionType identifies the billing tier of an account.
type SubscriptionType string

const (
	SubscriptionFree    SubscriptionType = "free"
	SubscriptionPremium SubscriptionType = "premium"
)

// Valid reports whether the value is a known subscription tier.
func (s SubscriptionType) Valid() bool {
	return s == SubscriptionFree || s == SubscriptionPremium
}

// User is an account, either a tutor managing kid profiles or a kid signing
// in directly. PasswordHash is never serialized.
type User struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Username     string           `json:"username"`
	PasswordHash string           `json:"-"`
	UserType     UserType         `json:"user_type"`
	Subscription SubscriptionType `json:"subscription"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

// UserCreate carries the fields accepted at signup.
type UserCreate struct {
	Name         string           `json:"name" validate:"required,min=1,max=100"`
	Username     string           `json:"username" validate:"required,min=3,max=100"`
	Password     string           `json:"password" validate:"required,min=6,max=72"`
	UserType     UserType         `json:"user_type" validate:"required,oneof=kid tutor"`
	Subscription SubscriptionType `json:"subscription" validate:"omitempty,oneof=free premium"`
}

// Credentials carries a signin request.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
