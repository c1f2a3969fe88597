// Package landingmodels chứa model cho domain landing.
package landingmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LandingPage là một trang landing của tenant. Slug duy nhất trong phạm vi business.
// Lượt xem KHÔNG embed vào document này; mỗi lượt xem là một LandingPageVisit
// trong collection riêng, đánh index theo thời gian.
type LandingPage struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`

	Slug      string `json:"slug" bson:"slug"`
	Title     string `json:"title" bson:"title"`
	Content   string `json:"content,omitempty" bson:"content,omitempty"`
	Published bool   `json:"published" bson:"published"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// LandingPageVisit là một lượt xem landing page.
type LandingPageVisit struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`

	PageSlug  string `json:"pageSlug" bson:"pageSlug"`
	Referrer  string `json:"referrer,omitempty" bson:"referrer,omitempty"`
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	IP        string `json:"ip,omitempty" bson:"ip,omitempty"`
	VisitedAt int64  `json:"visitedAt" bson:"visitedAt"` // Unix-milli

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
