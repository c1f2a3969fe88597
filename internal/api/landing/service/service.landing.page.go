// Package landingsvc chứa service cho domain landing.
package landingsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "chat_grow/internal/api/base/service"
	landingmodels "chat_grow/internal/api/landing/models"
	"chat_grow/internal/common"
	"chat_grow/internal/global"
)

// LandingPageService cung cấp CRUD trên landing_pages và ghi visit log.
type LandingPageService struct {
	*basesvc.BaseServiceMongoImpl[landingmodels.LandingPage]

	visits *basesvc.BaseServiceMongoImpl[landingmodels.LandingPageVisit]
}

// NewLandingPageService tạo mới LandingPageService.
func NewLandingPageService() (*LandingPageService, error) {
	pageColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.LandingPages)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.LandingPages)
	}
	visitColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.LandingPageVisits)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.LandingPageVisits)
	}
	return &LandingPageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[landingmodels.LandingPage](pageColl),
		visits:               basesvc.NewBaseServiceMongo[landingmodels.LandingPageVisit](visitColl),
	}, nil
}

// TrackVisit ghi một lượt xem cho landing page (businessId, slug).
// Chỉ track trang đã published; trang không tồn tại trả ErrNotFound.
func (s *LandingPageService) TrackVisit(ctx context.Context, businessID primitive.ObjectID, slug string, visit landingmodels.LandingPageVisit) (landingmodels.LandingPageVisit, error) {
	page, err := s.FindOne(ctx, bson.M{"businessId": businessID, "slug": slug}, nil)
	if err != nil {
		return landingmodels.LandingPageVisit{}, err
	}
	if !page.Published {
		return landingmodels.LandingPageVisit{}, common.ErrInvalidState
	}

	visit.BusinessID = businessID
	visit.PageSlug = slug
	if visit.VisitedAt == 0 {
		visit.VisitedAt = time.Now().UnixMilli()
	}
	return s.visits.InsertOne(ctx, visit)
}

// DeleteOldVisits xóa visit cũ hơn cutoff (Unix-milli) của mọi tenant.
// Worker retention gọi định kỳ sau khi các ngày liên quan đã được aggregate.
func (s *LandingPageService) DeleteOldVisits(ctx context.Context, cutoff int64) (int64, error) {
	result, err := s.visits.Collection().DeleteMany(ctx, bson.M{"visitedAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}
