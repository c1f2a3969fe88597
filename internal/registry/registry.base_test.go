// Package registry - Test đăng ký và tra cứu item theo tên.
package registry

import "testing"

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	registered, err := r.Register("a", "gia-tri-a")
	if err != nil {
		t.Fatalf("Register trả lỗi: %v", err)
	}
	if !registered {
		t.Error("đăng ký tên mới phải trả true")
	}

	value, ok := r.Get("a")
	if !ok || value != "gia-tri-a" {
		t.Errorf("Get(a) = (%q, %v), muốn (gia-tri-a, true)", value, ok)
	}
}

func TestRegistry_DangKyTrung(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("x", 1); err != nil {
		t.Fatalf("Register trả lỗi: %v", err)
	}

	registered, err := r.Register("x", 2)
	if err != nil {
		t.Fatalf("Register lần hai trả lỗi: %v", err)
	}
	if registered {
		t.Error("đăng ký tên đã tồn tại phải trả false")
	}

	// Giá trị cũ giữ nguyên, muốn thay phải dùng Update
	if value, _ := r.Get("x"); value != 1 {
		t.Errorf("giá trị sau đăng ký trùng = %d, muốn giữ 1", value)
	}
}

func TestRegistry_GetTenChuaDangKy(t *testing.T) {
	r := NewRegistry[string]()
	if _, ok := r.Get("khong-ton-tai"); ok {
		t.Error("Get tên chưa đăng ký phải trả false")
	}
}
