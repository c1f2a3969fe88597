// Package growthmodels chứa model cho domain growth.
package growthmodels

import (
	"fmt"
	"strings"
)

// SourceType là loại nguồn khách (union đóng, không nhận chuỗi tự do).
type SourceType string

const (
	SourceTypeLandingPage SourceType = "landing_page"
	SourceTypeEvent       SourceType = "event"
	SourceTypeAppointment SourceType = "appointment"
	SourceTypeManual      SourceType = "manual"
	SourceTypeReferral    SourceType = "referral"
	SourceTypeOther       SourceType = "other"
)

// IsValid kiểm tra sourceType có thuộc union không.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeLandingPage, SourceTypeEvent, SourceTypeAppointment,
		SourceTypeManual, SourceTypeReferral, SourceTypeOther:
		return true
	}
	return false
}

// keyPrefix trả về prefix của sourceKey theo từng loại nguồn.
func (t SourceType) keyPrefix() string {
	switch t {
	case SourceTypeLandingPage:
		return "landing-page"
	case SourceTypeEvent:
		return "event"
	case SourceTypeAppointment:
		return "appointments"
	case SourceTypeManual:
		return "manual"
	case SourceTypeReferral:
		return "referral"
	default:
		return "other"
	}
}

// Source định danh một nguồn khách cụ thể.
// Ref là phần định danh sau prefix: slug của landing page, id của event,
// "general" cho appointments, label cho manual/referral/other.
type Source struct {
	Type SourceType
	Ref  string
	Name string
}

// AppointmentsGeneralRef là ref của bucket gom chung mọi appointment.
const AppointmentsGeneralRef = "general"

// Key trả về sourceKey chuẩn, ví dụ "landing-page:spring-sale", "event:65af...", "appointments:general".
func (s Source) Key() string {
	return s.Type.keyPrefix() + ":" + s.Ref
}

// ParseSourceKey tách sourceKey chuẩn thành Source (không có Name).
func ParseSourceKey(key string) (Source, error) {
	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Source{}, fmt.Errorf("sourceKey %q không đúng định dạng prefix:ref", key)
	}

	var sourceType SourceType
	switch parts[0] {
	case "landing-page":
		sourceType = SourceTypeLandingPage
	case "event":
		sourceType = SourceTypeEvent
	case "appointments":
		sourceType = SourceTypeAppointment
	case "manual":
		sourceType = SourceTypeManual
	case "referral":
		sourceType = SourceTypeReferral
	case "other":
		sourceType = SourceTypeOther
	default:
		return Source{}, fmt.Errorf("sourceKey %q có prefix không thuộc union", key)
	}

	return Source{Type: sourceType, Ref: parts[1]}, nil
}
