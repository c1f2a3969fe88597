// Package paymentmodels chứa model cho domain payment.
package paymentmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của giao dịch.
const (
	TransactionStatusPending  = "pending"
	TransactionStatusPaid     = "paid"
	TransactionStatusRefunded = "refunded"
	TransactionStatusFailed   = "failed"
)

// PaymentTransaction là một giao dịch thanh toán của tenant.
// Chỉ giao dịch status=paid được tính vào revenue của growth.
type PaymentTransaction struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`

	CustomerID primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty"`
	Amount     float64            `json:"amount" bson:"amount"`
	Currency   string             `json:"currency" bson:"currency"`
	Status     string             `json:"status" bson:"status"` // pending | paid | refunded | failed

	// Attribution về nguồn tạo ra giao dịch
	SourceType string `json:"sourceType,omitempty" bson:"sourceType,omitempty"`
	SourceKey  string `json:"sourceKey,omitempty" bson:"sourceKey,omitempty"`

	Description string `json:"description,omitempty" bson:"description,omitempty"`
	PaidAt      int64  `json:"paidAt,omitempty" bson:"paidAt,omitempty"` // Unix-milli, set khi status=paid

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
