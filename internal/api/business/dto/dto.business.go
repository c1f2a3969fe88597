// Package dto - DTO cho domain business.
package dto

// BusinessUpdateInput cập nhật profile của tenant hiện tại.
type BusinessUpdateInput struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Timezone string `json:"timezone,omitempty" bson:"timezone,omitempty"`
}
