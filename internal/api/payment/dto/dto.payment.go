// Package dto - DTO cho domain payment.
package dto

// PaymentTransactionCreateInput input tạo mới giao dịch.
type PaymentTransactionCreateInput struct {
	Amount      float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency,omitempty" bson:"currency,omitempty" validate:"omitempty,len=3"`
	Status      string  `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending paid refunded failed"`
	SourceType  string  `json:"sourceType,omitempty" bson:"sourceType,omitempty" validate:"omitempty,oneof=landing_page event appointment manual referral other"`
	SourceKey   string  `json:"sourceKey,omitempty" bson:"sourceKey,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	PaidAt      int64   `json:"paidAt,omitempty" bson:"paidAt,omitempty" validate:"omitempty,gt=0"`
}

// PaymentTransactionUpdateInput input cập nhật giao dịch.
type PaymentTransactionUpdateInput struct {
	Amount      float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency    string  `json:"currency,omitempty" bson:"currency,omitempty" validate:"omitempty,len=3"`
	Status      string  `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending paid refunded failed"`
	SourceType  string  `json:"sourceType,omitempty" bson:"sourceType,omitempty" validate:"omitempty,oneof=landing_page event appointment manual referral other"`
	SourceKey   string  `json:"sourceKey,omitempty" bson:"sourceKey,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	PaidAt      int64   `json:"paidAt,omitempty" bson:"paidAt,omitempty" validate:"omitempty,gt=0"`
}
