// Package events - Test phát sự kiện và trích field từ document bằng reflection.
package events

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleDoc struct {
	BusinessID primitive.ObjectID
	CreatedAt  int64
	PaidAt     int64
	Name       string
}

func TestGetBusinessIDFromDocument(t *testing.T) {
	id := primitive.NewObjectID()

	if got := GetBusinessIDFromDocument(sampleDoc{BusinessID: id}); got != id {
		t.Errorf("struct value: businessId = %v, muốn %v", got, id)
	}
	if got := GetBusinessIDFromDocument(&sampleDoc{BusinessID: id}); got != id {
		t.Errorf("struct pointer: businessId = %v, muốn %v", got, id)
	}
	if got := GetBusinessIDFromDocument(nil); !got.IsZero() {
		t.Errorf("document nil phải trả zero ObjectID, nhận: %v", got)
	}
	if got := GetBusinessIDFromDocument(struct{ Name string }{"x"}); !got.IsZero() {
		t.Errorf("struct không có BusinessID phải trả zero ObjectID, nhận: %v", got)
	}
	if got := GetBusinessIDFromDocument("khong-phai-struct"); !got.IsZero() {
		t.Errorf("document không phải struct phải trả zero ObjectID, nhận: %v", got)
	}
}

func TestGetInt64Field(t *testing.T) {
	doc := sampleDoc{CreatedAt: 1700000000000, PaidAt: 1700000001234}

	if got := GetInt64Field(doc, "CreatedAt"); got != 1700000000000 {
		t.Errorf("CreatedAt = %d, muốn 1700000000000", got)
	}
	if got := GetInt64Field(&doc, "PaidAt"); got != 1700000001234 {
		t.Errorf("PaidAt qua pointer = %d, muốn 1700000001234", got)
	}
	if got := GetInt64Field(doc, "KhongTonTai"); got != 0 {
		t.Errorf("field không tồn tại phải trả 0, nhận: %d", got)
	}
	if got := GetInt64Field(doc, "Name"); got != 0 {
		t.Errorf("field không phải số phải trả 0, nhận: %d", got)
	}
	if got := GetInt64Field(nil, "CreatedAt"); got != 0 {
		t.Errorf("document nil phải trả 0, nhận: %d", got)
	}
}

func TestEmitDataChanged_GoiHandlerDaDangKy(t *testing.T) {
	received := make(chan DataChangeEvent, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "test_emit_collection" {
			received <- e
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "test_emit_collection",
		Operation:      OpInsert,
		Document:       sampleDoc{CreatedAt: 1},
	})

	select {
	case e := <-received:
		if e.Operation != OpInsert {
			t.Errorf("operation = %q, muốn %q", e.Operation, OpInsert)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler không được gọi sau khi emit")
	}
}
