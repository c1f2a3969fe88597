// Package paymenthdl xử lý các route payment.
package paymenthdl

import (
	basehdl "chat_grow/internal/api/base/handler"
	"chat_grow/internal/api/payment/dto"
	paymentmodels "chat_grow/internal/api/payment/models"
	paymentsvc "chat_grow/internal/api/payment/service"
)

// PaymentTransactionHandler dùng bộ CRUD chuẩn cho transactions.
type PaymentTransactionHandler struct {
	basehdl.BaseHandler[paymentmodels.PaymentTransaction, dto.PaymentTransactionCreateInput, dto.PaymentTransactionUpdateInput]
}

// NewPaymentTransactionHandler tạo một instance mới của PaymentTransactionHandler.
func NewPaymentTransactionHandler() (*PaymentTransactionHandler, error) {
	service, err := paymentsvc.NewPaymentTransactionService()
	if err != nil {
		return nil, err
	}
	handler := &PaymentTransactionHandler{}
	handler.Service = service
	return handler, nil
}
