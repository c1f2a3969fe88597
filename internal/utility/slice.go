package utility

import "strings"

// SplitAndTrim tách chuỗi theo separator, trim khoảng trắng và bỏ phần tử rỗng.
func SplitAndTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ContainsString kiểm tra slice có chứa giá trị không.
func ContainsString(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
