// Package paymentsvc chứa service cho domain payment.
package paymentsvc

import (
	"fmt"

	basesvc "chat_grow/internal/api/base/service"
	paymentmodels "chat_grow/internal/api/payment/models"
	"chat_grow/internal/global"
)

// PaymentTransactionService cung cấp CRUD trên collection payment_transactions.
type PaymentTransactionService struct {
	*basesvc.BaseServiceMongoImpl[paymentmodels.PaymentTransaction]
}

// NewPaymentTransactionService tạo mới PaymentTransactionService.
func NewPaymentTransactionService() (*PaymentTransactionService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.PaymentTransactions)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.PaymentTransactions)
	}
	return &PaymentTransactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[paymentmodels.PaymentTransaction](coll),
	}, nil
}
