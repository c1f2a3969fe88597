// Package dto - DTO cho domain CRM.
package dto

// CrmCustomerCreateInput input tạo mới customer/lead.
type CrmCustomerCreateInput struct {
	Name       string   `json:"name" bson:"name" validate:"required"`
	Phones     []string `json:"phones,omitempty" bson:"phones,omitempty"`
	Emails     []string `json:"emails,omitempty" bson:"emails,omitempty" validate:"omitempty,dive,email"`
	Status     string   `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=lead customer"`
	SourceType string   `json:"sourceType,omitempty" bson:"sourceType,omitempty" validate:"omitempty,oneof=landing_page event appointment manual referral other"`
	SourceKey  string   `json:"sourceKey,omitempty" bson:"sourceKey,omitempty"`
	Note       string   `json:"note,omitempty" bson:"note,omitempty"`
}

// CrmCustomerUpdateInput input cập nhật customer/lead, mọi field đều optional.
type CrmCustomerUpdateInput struct {
	Name       string   `json:"name,omitempty" bson:"name,omitempty"`
	Phones     []string `json:"phones,omitempty" bson:"phones,omitempty"`
	Emails     []string `json:"emails,omitempty" bson:"emails,omitempty" validate:"omitempty,dive,email"`
	Status     string   `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=lead customer"`
	SourceType string   `json:"sourceType,omitempty" bson:"sourceType,omitempty" validate:"omitempty,oneof=landing_page event appointment manual referral other"`
	SourceKey  string   `json:"sourceKey,omitempty" bson:"sourceKey,omitempty"`
	Note       string   `json:"note,omitempty" bson:"note,omitempty"`
}
