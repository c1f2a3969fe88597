// Package crmhdl xử lý các route CRM.
package crmhdl

import (
	basehdl "chat_grow/internal/api/base/handler"
	"chat_grow/internal/api/crm/dto"
	crmmodels "chat_grow/internal/api/crm/models"
	crmsvc "chat_grow/internal/api/crm/service"
)

// CrmCustomerHandler dùng bộ CRUD chuẩn cho customers/leads.
type CrmCustomerHandler struct {
	basehdl.BaseHandler[crmmodels.CrmCustomer, dto.CrmCustomerCreateInput, dto.CrmCustomerUpdateInput]
}

// NewCrmCustomerHandler tạo một instance mới của CrmCustomerHandler.
func NewCrmCustomerHandler() (*CrmCustomerHandler, error) {
	service, err := crmsvc.NewCrmCustomerService()
	if err != nil {
		return nil, err
	}
	handler := &CrmCustomerHandler{}
	handler.Service = service
	return handler, nil
}
