// Package businessmodels chứa model cho domain business (tenant).
package businessmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business là bản ghi tenant gốc. _id của document chính là businessId
// trong JWT claims và trong mọi collection khác.
type Business struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone string             `json:"phone,omitempty" bson:"phone,omitempty"`

	// Timezone là IANA timezone của tenant (ví dụ "Asia/Ho_Chi_Minh").
	// Mọi phép tính "ngày" của growth dùng timezone này; rỗng nghĩa là UTC.
	Timezone string `json:"timezone,omitempty" bson:"timezone,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
