// Package registry cung cấp một registry generic, thread-safe để quản lý
// các tài nguyên dùng chung theo tên (collections MongoDB, service instances...).
package registry

import (
	"fmt"
	"sync"
)

// Registry quản lý các item theo tên, an toàn khi truy cập đồng thời.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewRegistry tạo một registry rỗng.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký item với tên cho trước.
// Trả về false nếu tên đã tồn tại (item cũ được giữ nguyên).
func (r *Registry[T]) Register(name string, item T) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("registry: tên không được rỗng")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return false, nil
	}
	r.items[name] = item
	return true, nil
}

// Get lấy item theo tên. Trả về zero value và false nếu chưa đăng ký.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	return item, ok
}

// MustGet lấy item theo tên, panic nếu chưa đăng ký.
// Chỉ dùng khi init, khi chắc chắn item đã được đăng ký trước đó.
func (r *Registry[T]) MustGet(name string) T {
	item, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("registry: item %q chưa được đăng ký", name))
	}
	return item
}

// Update ghi đè item theo tên (đăng ký mới nếu chưa có).
func (r *Registry[T]) Update(name string, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = item
}

// Names trả về danh sách tên đã đăng ký.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear xóa toàn bộ item (dùng trong test).
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
}
