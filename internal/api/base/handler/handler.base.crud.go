package basehdl

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "chat_grow/internal/api/base/service"
	"chat_grow/internal/common"
	"chat_grow/internal/global"
	"chat_grow/internal/utility"
)

// BaseHandler cung cấp các handler CRUD chuẩn cho một model.
// Mọi thao tác tự động scope theo businessId lấy từ request locals,
// tenant không bao giờ đọc/ghi được dữ liệu của tenant khác.
// Type Parameters:
//   - T: Model
//   - CreateInput: DTO tạo mới
//   - UpdateInput: DTO cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service basesvc.BaseServiceMongo[T]
}

// GetBusinessID lấy businessId của tenant hiện tại từ locals (set bởi auth middleware).
func GetBusinessID(c fiber.Ctx) (primitive.ObjectID, error) {
	if id, ok := c.Locals("business_id").(primitive.ObjectID); ok && !id.IsZero() {
		return id, nil
	}
	return primitive.NilObjectID, common.ErrTenantMissing
}

// ParseRequestBody parse body JSON vào input struct.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	if err := json.Unmarshal(c.Body(), input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ValidateInput chạy validator trên input struct theo tag validate.
func ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// parseObjectIDParam đọc path param :id thành ObjectID.
func parseObjectIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "Id không hợp lệ", common.StatusBadRequest, nil)
	}
	return id, nil
}

// applyBusinessFilter thêm businessId vào filter do client gửi lên.
// Filter của client không thể ghi đè businessId.
func applyBusinessFilter(c fiber.Ctx, businessID primitive.ObjectID) (bson.M, error) {
	filter := bson.M{}
	if raw := c.Query("filter"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filter); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Filter không hợp lệ", common.StatusBadRequest, err.Error())
		}
	}
	filter["businessId"] = businessID
	return filter, nil
}

// transformInputToModel chuyển DTO thành model, gắn businessId của tenant.
func transformInputToModel[T any](input interface{}, businessID primitive.ObjectID) (T, error) {
	var zero T
	inputMap, err := utility.ToMap(input)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	inputMap["businessId"] = businessID

	raw, err := bson.Marshal(inputMap)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	var model T
	if err := bson.Unmarshal(raw, &model); err != nil {
		return zero, common.ErrInvalidFormat
	}
	return model, nil
}

// HandleInsertOne parse + validate input, gắn businessId rồi insert.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleInsertOne(c fiber.Ctx) error {
	businessID, err := GetBusinessID(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	var input CreateInput
	if err := ParseRequestBody(c, &input); err != nil {
		return HandleResponse(c, nil, err)
	}
	if err := ValidateInput(&input); err != nil {
		return HandleResponse(c, nil, err)
	}

	model, err := transformInputToModel[T](&input, businessID)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	created, err := h.Service.InsertOne(c.Context(), model)
	return HandleResponse(c, created, err)
}

// HandleFind tìm bản ghi theo filter (query param filter, JSON), scope theo businessId.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFind(c fiber.Ctx) error {
	businessID, err := GetBusinessID(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}
	filter, err := applyBusinessFilter(c, businessID)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	results, err := h.Service.Find(c.Context(), filter, nil)
	return HandleResponse(c, results, err)
}

// HandleFindWithPagination tìm bản ghi có phân trang (query: page, limit, filter).
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFindWithPagination(c fiber.Ctx) error {
	businessID, err := GetBusinessID(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}
	filter, err := applyBusinessFilter(c, businessID)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil {
		return HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Page không hợp lệ", common.StatusBadRequest, nil))
	}
	limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if err != nil {
		return HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Limit không hợp lệ", common.StatusBadRequest, nil))
	}

	result, err := h.Service.FindWithPagination(c.Context(), filter, page, limit, nil)
	return HandleResponse(c, result, err)
}

// HandleFindById tìm một bản ghi theo id trong phạm vi tenant.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFindById(c fiber.Ctx) error {
	businessID, err := GetBusinessID(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}
	id, err := parseObjectIDParam(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	result, err := h.Service.FindOne(c.Context(), bson.M{"_id": id, "businessId": businessID}, nil)
	return HandleResponse(c, result, err)
}

// HandleUpdateById cập nhật bản ghi theo id, chỉ set các trường có trong body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleUpdateById(c fiber.Ctx) error {
	businessID, err := GetBusinessID(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}
	id, err := parseObjectIDParam(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	var input UpdateInput
	if err := ParseRequestBody(c, &input); err != nil {
		return HandleResponse(c, nil, err)
	}
	if err := ValidateInput(&input); err != nil {
		return HandleResponse(c, nil, err)
	}

	// Chỉ lấy các field thực sự có trong body để build $set
	var rawFields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &rawFields); err != nil {
		return HandleResponse(c, nil, common.ErrInvalidFormat)
	}
	inputMap, err := utility.ToMap(&input)
	if err != nil {
		return HandleResponse(c, nil, common.ErrInvalidFormat)
	}
	setFields := bson.M{}
	for key, value := range inputMap {
		if _, present := rawFields[key]; present {
			setFields[key] = value
		}
	}
	// businessId và _id không bao giờ được update qua API
	delete(setFields, "businessId")
	delete(setFields, "_id")
	if len(setFields) == 0 {
		return HandleResponse(c, nil, common.ErrInvalidInput)
	}

	updated, err := h.Service.UpdateOne(c.Context(), bson.M{"_id": id, "businessId": businessID}, bson.M{"$set": setFields}, nil)
	return HandleResponse(c, updated, err)
}

// HandleDeleteById xóa bản ghi theo id trong phạm vi tenant.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDeleteById(c fiber.Ctx) error {
	businessID, err := GetBusinessID(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}
	id, err := parseObjectIDParam(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	err = h.Service.DeleteOne(c.Context(), bson.M{"_id": id, "businessId": businessID})
	return HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
}

// HandleCount đếm bản ghi theo filter trong phạm vi tenant.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCount(c fiber.Ctx) error {
	businessID, err := GetBusinessID(c)
	if err != nil {
		return HandleResponse(c, nil, err)
	}
	filter, err := applyBusinessFilter(c, businessID)
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	count, err := h.Service.CountDocuments(c.Context(), filter)
	return HandleResponse(c, fiber.Map{"count": count}, err)
}
