// Package crmmodels chứa model cho domain CRM.
package crmmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một bản ghi CRM.
const (
	CustomerStatusLead     = "lead"
	CustomerStatusCustomer = "customer"
)

// CrmCustomer là một khách hàng hoặc lead của tenant.
// SourceType/SourceKey ghi lại nguồn acquisition, dùng cho growth aggregation.
type CrmCustomer struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`

	Name   string   `json:"name" bson:"name"`
	Phones []string `json:"phones,omitempty" bson:"phones,omitempty"`
	Emails []string `json:"emails,omitempty" bson:"emails,omitempty"`
	Status string   `json:"status" bson:"status"` // lead | customer

	// Attribution: sourceType thuộc union growth, sourceKey dạng "prefix:ref"
	SourceType string `json:"sourceType,omitempty" bson:"sourceType,omitempty"`
	SourceKey  string `json:"sourceKey,omitempty" bson:"sourceKey,omitempty"`

	Note string `json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
