package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ACCOUNT_TYPE_EMAIL = "email"

type PortalUser struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Account    Account    `bson:"account" json:"account"`
	Profile    Profile    `bson:"profile" json:"profile"`
	IsAdmin    bool       `bson:"isAdmin" json:"isAdmin"`
	Timestamps Timestamps `bson:"timestamps" json:"timestamps"`
}

type Account struct {
	Type      string `bson:"type" json:"type"`
	AccountID string `bson:"accountID" json:"accountID"`
	Password  string `bson:"password" json:"-"`

	// Rate limiting
	FailedLoginAttempts []int64 `bson:"failedLoginAttempts" json:"-"`
}

type Profile struct {
	FullName     string `bson:"fullName" json:"fullName"`
	Organisation string `bson:"organisation" json:"organisation"`
	ImageURL     string `bson:"imageUrl" json:"imageUrl,omitempty"`
}

type Timestamps struct {
	CreatedAt   int64 `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64 `bson:"updatedAt" json:"updatedAt"`
	LastLoginAt int64 `bson:"lastLoginAt" json:"lastLoginAt"`
}

// AddFailedLoginAttempt records the current time and drops attempts older than the window.
func (u *PortalUser) AddFailedLoginAttempt(window time.Duration) {
	now := time.Now().Unix()
	cutoff := now - int64(window.Seconds())

	recent := make([]int64, 0, len(u.Account.FailedLoginAttempts)+1)
	for _, ts := range u.Account.FailedLoginAttempts {
		if ts > cutoff {
			recent = append(recent, ts)
		}
	}
	u.Account.FailedLoginAttempts = append(recent, now)
}

// FailedLoginAttemptsWithin counts the attempts inside the window.
func (u PortalUser) FailedLoginAttemptsWithin(window time.Duration) int {
	cutoff := time.Now().Unix() - int64(window.Seconds())
	count := 0
	for _, ts := range u.Account.FailedLoginAttempts {
		if ts > cutoff {
			count++
		}
	}
	return count
}
