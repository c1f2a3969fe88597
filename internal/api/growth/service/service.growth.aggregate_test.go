// Package growthsvc - Test filter dọn dòng stale và filter đối soát revenue.
package growthsvc

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	growthmodels "chat_grow/internal/api/growth/models"
)

func sourceKeyFilter(t *testing.T, filter bson.M) bson.M {
	t.Helper()
	keyFilter, ok := filter["sourceKey"].(bson.M)
	if !ok {
		t.Fatalf("filter phải có điều kiện sourceKey dạng bson.M, nhận: %#v", filter["sourceKey"])
	}
	return keyFilter
}

func TestStaleStatsFilter_GiuLaiKeyCuaNguonLoi(t *testing.T) {
	businessID := primitive.NewObjectID()
	keptKeys := []string{"event:665f1e2a9c3d4b0012345678", "appointments:general"}

	// Nhánh landing lỗi: keptKeys không có key landing nào, nhưng các dòng
	// landing-page:* đã persist của ngày phải nằm ngoài phạm vi xóa
	filter := staleStatsFilter(businessID, 1700000000000, keptKeys, sourceKindPrefixes["landing_page"])

	keyFilter := sourceKeyFilter(t, filter)
	nin, ok := keyFilter["$nin"].([]string)
	if !ok || len(nin) != len(keptKeys) {
		t.Fatalf("$nin phải chứa đúng các key đã ghi, nhận: %#v", keyFilter["$nin"])
	}

	pattern, ok := keyFilter["$not"].(primitive.Regex)
	if !ok {
		t.Fatalf("nguồn lỗi phải sinh điều kiện $not regex, nhận: %#v", keyFilter["$not"])
	}
	re := regexp.MustCompile(pattern.Pattern)
	if !re.MatchString("landing-page:spring-sale") {
		t.Errorf("regex %q phải khớp key landing để giữ dòng của nguồn lỗi", pattern.Pattern)
	}
	if re.MatchString("event:665f1e2a9c3d4b0012345678") || re.MatchString("manual:fb-ads") {
		t.Errorf("regex %q không được khớp key của nguồn tính thành công", pattern.Pattern)
	}

	if filter["period"] != growthmodels.PeriodDay || filter["periodStart"] != int64(1700000000000) {
		t.Errorf("filter phải khoanh đúng ngày và period day, nhận: %#v", filter)
	}
}

func TestStaleStatsFilter_NhieuNguonLoi(t *testing.T) {
	businessID := primitive.NewObjectID()
	prefixes := append(append([]string{}, sourceKindPrefixes["landing_page"]...), sourceKindPrefixes["manual"]...)

	filter := staleStatsFilter(businessID, 1700000000000, []string{"appointments:general"}, prefixes)

	pattern, ok := sourceKeyFilter(t, filter)["$not"].(primitive.Regex)
	if !ok {
		t.Fatal("nhiều nguồn lỗi vẫn phải sinh một điều kiện $not regex")
	}
	re := regexp.MustCompile(pattern.Pattern)
	for _, key := range []string{"landing-page:spring-sale", "manual:fb-ads", "referral:kol-a", "other:walk-in"} {
		if !re.MatchString(key) {
			t.Errorf("regex %q phải khớp key %q của nguồn lỗi", pattern.Pattern, key)
		}
	}
}

func TestStaleStatsFilter_KhongCoNguonLoi(t *testing.T) {
	businessID := primitive.NewObjectID()
	filter := staleStatsFilter(businessID, 1700000000000, []string{"event:665f1e2a9c3d4b0012345678"}, nil)

	keyFilter := sourceKeyFilter(t, filter)
	if _, hasNot := keyFilter["$not"]; hasNot {
		t.Errorf("không có nguồn lỗi thì không được thêm $not, nhận: %#v", keyFilter)
	}
}

func TestUnattributedMatchFilter_BatKeyManualKhongParseDuoc(t *testing.T) {
	businessID := primitive.NewObjectID()
	// knownKeys chỉ chứa key parse được; "nguon-tu-nhap" kiểu manual bị
	// aggregateManualSources bỏ qua nên không nằm trong danh sách
	knownKeys := []string{"landing-page:spring-sale", "manual:fb-ads"}

	filter := unattributedMatchFilter(businessID, 1700000000000, 1700086400000, knownKeys)

	// Không được loại giao dịch theo sourceType manual/referral/other:
	// điều kiện sourceType duy nhất là loại bucket appointment
	typeFilter, ok := filter["sourceType"].(bson.M)
	if !ok || typeFilter["$ne"] != string(growthmodels.SourceTypeAppointment) {
		t.Fatalf("sourceType chỉ được loại appointment, nhận: %#v", filter["sourceType"])
	}
	if _, hasNin := typeFilter["$nin"]; hasNin {
		t.Errorf("không được loại giao dịch manual/referral/other khỏi đối soát: %#v", typeFilter)
	}

	branches, ok := filter["$or"].([]bson.M)
	if !ok || len(branches) != 3 {
		t.Fatalf("$or phải có 3 nhánh (thiếu key, key rỗng, key lạ), nhận: %#v", filter["$or"])
	}
	keyBranch := sourceKeyFilter(t, branches[2])
	nin, ok := keyBranch["$nin"].([]string)
	if !ok {
		t.Fatalf("nhánh key lạ phải là $nin knownKeys, nhận: %#v", branches[2])
	}
	for _, key := range nin {
		if key == "nguon-tu-nhap" {
			t.Error("key manual không parse được không được nằm trong knownKeys")
		}
	}

	if filter["status"] != "paid" {
		t.Errorf("đối soát chỉ tính giao dịch paid, nhận: %#v", filter["status"])
	}
}
