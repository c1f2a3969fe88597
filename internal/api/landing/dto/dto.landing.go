// Package dto - DTO cho domain landing.
package dto

// LandingPageCreateInput input tạo mới landing page.
type LandingPageCreateInput struct {
	Slug      string `json:"slug" bson:"slug" validate:"required,lowercase,excludesall= :"`
	Title     string `json:"title" bson:"title" validate:"required"`
	Content   string `json:"content,omitempty" bson:"content,omitempty"`
	Published bool   `json:"published,omitempty" bson:"published,omitempty"`
}

// LandingPageUpdateInput input cập nhật landing page. Slug không đổi được qua API.
type LandingPageUpdateInput struct {
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Content   string `json:"content,omitempty" bson:"content,omitempty"`
	Published bool   `json:"published,omitempty" bson:"published,omitempty"`
}

// LandingVisitInput là payload optional của track endpoint.
type LandingVisitInput struct {
	Referrer string `json:"referrer,omitempty" bson:"referrer,omitempty"`
}
