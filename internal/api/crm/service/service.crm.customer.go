// Package crmsvc chứa service cho domain CRM.
package crmsvc

import (
	"fmt"

	basesvc "chat_grow/internal/api/base/service"
	crmmodels "chat_grow/internal/api/crm/models"
	"chat_grow/internal/global"
)

// CrmCustomerService cung cấp CRUD trên collection crm_customers.
type CrmCustomerService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.CrmCustomer]
}

// NewCrmCustomerService tạo mới CrmCustomerService.
func NewCrmCustomerService() (*CrmCustomerService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmCustomers)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.CrmCustomers)
	}
	return &CrmCustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.CrmCustomer](coll),
	}, nil
}
