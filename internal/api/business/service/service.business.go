// Package businesssvc quản lý bản ghi tenant và timezone của tenant.
package businesssvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "chat_grow/internal/api/base/service"
	businessmodels "chat_grow/internal/api/business/models"
	"chat_grow/internal/common"
	"chat_grow/internal/global"
	"chat_grow/internal/logger"
)

// BusinessService cung cấp thao tác trên collection businesses.
type BusinessService struct {
	*basesvc.BaseServiceMongoImpl[businessmodels.Business]

	// locationCache cache *time.Location theo businessId, timezone ít khi đổi
	locationCache sync.Map
}

// NewBusinessService tạo mới BusinessService.
func NewBusinessService() (*BusinessService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Businesses)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.Businesses)
	}
	return &BusinessService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[businessmodels.Business](coll),
	}, nil
}

// GetByID lấy business theo id.
func (s *BusinessService) GetByID(ctx context.Context, id primitive.ObjectID) (businessmodels.Business, error) {
	return s.FindOneById(ctx, id)
}

// UpdateProfile cập nhật profile tenant. Nếu đổi timezone thì invalidate cache.
func (s *BusinessService) UpdateProfile(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (businessmodels.Business, error) {
	if tz, ok := set["timezone"].(string); ok && tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return businessmodels.Business{}, common.ErrInvalidTimezone
		}
		s.locationCache.Delete(id.Hex())
	}
	return s.UpdateById(ctx, id, set)
}

// GetLocation trả về *time.Location của tenant.
// Business không tồn tại hoặc timezone không hợp lệ thì fallback UTC.
func (s *BusinessService) GetLocation(ctx context.Context, businessID primitive.ObjectID) *time.Location {
	if cached, ok := s.locationCache.Load(businessID.Hex()); ok {
		return cached.(*time.Location)
	}

	loc := time.UTC
	business, err := s.GetByID(ctx, businessID)
	if err == nil && business.Timezone != "" {
		if parsed, err := time.LoadLocation(business.Timezone); err == nil {
			loc = parsed
		} else {
			logger.GetAppLogger().WithField("businessId", businessID.Hex()).
				Warnf("Timezone %q không hợp lệ, dùng UTC", business.Timezone)
		}
	}

	s.locationCache.Store(businessID.Hex(), loc)
	return loc
}

// ListAllIDs trả về id của toàn bộ business (dùng cho worker tính ngày hôm qua).
func (s *BusinessService) ListAllIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	businesses, err := s.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}
	return ids, nil
}
