// Package basemodels chứa các model dùng chung cho tầng base.
package basemodels

// PaginateResult là kết quả phân trang chuẩn cho mọi collection.
type PaginateResult[T any] struct {
	Items      []T   `json:"items" bson:"items"`           // Danh sách bản ghi của trang hiện tại
	Page       int64 `json:"page" bson:"page"`             // Trang hiện tại (bắt đầu từ 1)
	Limit      int64 `json:"limit" bson:"limit"`           // Số bản ghi mỗi trang
	ItemCount  int64 `json:"itemCount" bson:"itemCount"`   // Số bản ghi trang hiện tại
	TotalItems int64 `json:"totalItems" bson:"totalItems"` // Tổng số bản ghi khớp filter
	TotalPages int64 `json:"totalPages" bson:"totalPages"` // Tổng số trang
}
