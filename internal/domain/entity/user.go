package entity

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleDonor   = "donor"
)

type User struct {
	ID        string `json:"id" firestore:"id"`
	Email     string `json:"email" firestore:"email"`
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name" firestore:"lastName"`
	Role      string `json:"role" firestore:"role"`
	Bio       string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`

	// Label only; card details are never persisted.
	SelectedPaymentMethod string `json:"selected_payment_method,omitempty" firestore:"selectedPaymentMethod,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// EffectiveRole defaults to student when the role field is absent or carries
// an unknown value.
func (u *User) EffectiveRole() string {
	if u != nil && u.Role == RoleDonor {
		return RoleDonor
	}
	return RoleStudent
}

// CanListItems reports whether the user may post, edit and delete listings.
// Roles are modelled as capability checks so new roles slot in without
// touching every call site.
func (u *User) CanListItems() bool {
	return u.EffectiveRole() == RoleDonor
}
