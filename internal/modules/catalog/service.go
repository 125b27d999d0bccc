// Package catalog wraps the backend CRUD endpoints behind the console's list
// screens. Input is normalized and checked here; backend errors pass through
// unchanged and nothing is merged into earlier results.
package catalog

import (
	"context"
	"strings"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/shared/apperr"
)

// API is the backend surface used by the list screens. *backend.Client
// satisfies it.
type API interface {
	BrandPage(ctx context.Context, p backend.PageQuery, f backend.BrandFilter) (backend.Page[backend.Brand], error)
	BrandSimpleList(ctx context.Context) ([]backend.Brand, error)
	CreateBrand(ctx context.Context, in backend.BrandSaveReq) (int64, error)
	UpdateBrand(ctx context.Context, in backend.BrandSaveReq) error
	DeleteBrand(ctx context.Context, id int64) error

	CategoryList(ctx context.Context, f backend.CategoryFilter) ([]backend.Category, error)
	CreateCategory(ctx context.Context, in backend.CategorySaveReq) (int64, error)
	UpdateCategory(ctx context.Context, in backend.CategorySaveReq) error
	UpdateCategorySort(ctx context.Context, items []backend.CategorySortItem) error
	DeleteCategory(ctx context.Context, id int64) error
	CategoryProperties(ctx context.Context, categoryID int64, propertyType *int) ([]backend.CategoryProperty, error)
	SaveCategoryProperties(ctx context.Context, in backend.CategoryPropertySaveReq) error

	PropertyPage(ctx context.Context, p backend.PageQuery, f backend.PropertyFilter) (backend.Page[backend.Property], error)
	PropertySimpleList(ctx context.Context, propertyType *int) ([]backend.Property, error)
	CreateProperty(ctx context.Context, in backend.PropertySaveReq) (int64, error)
	UpdateProperty(ctx context.Context, in backend.PropertySaveReq) error
	DeleteProperty(ctx context.Context, id int64) error

	PropertyValuePage(ctx context.Context, p backend.PageQuery, f backend.PropertyValueFilter) (backend.Page[backend.PropertyValue], error)
	PropertyValueSimpleList(ctx context.Context, propertyID int64) ([]backend.PropertyValue, error)
	CreatePropertyValue(ctx context.Context, in backend.PropertyValueSaveReq) (int64, error)
	UpdatePropertyValue(ctx context.Context, in backend.PropertyValueSaveReq) error
	DeletePropertyValue(ctx context.Context, id int64) error

	SpuCount(ctx context.Context) (backend.SpuCount, error)
	SpuPage(ctx context.Context, p backend.PageQuery, f backend.SpuFilter) (backend.Page[backend.Spu], error)
	UpdateSpuStatus(ctx context.Context, id int64, status int) error
	DeleteSpu(ctx context.Context, id int64) error

	CommentPage(ctx context.Context, p backend.PageQuery, f backend.CommentFilter) (backend.Page[backend.Comment], error)
	CreateComment(ctx context.Context, in backend.CommentCreateReq) error
	UpdateCommentVisible(ctx context.Context, id int64, visible bool) error
	ReplyComment(ctx context.Context, id int64, content string) error
	FavoritePage(ctx context.Context, p backend.PageQuery, f backend.UserSpuFilter) (backend.Page[backend.Favorite], error)
	BrowseHistoryPage(ctx context.Context, p backend.PageQuery, f backend.UserSpuFilter) (backend.Page[backend.BrowseHistory], error)
}

// property / value / brand / category status
const (
	StatusEnabled  = 0
	StatusDisabled = 1
)

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// --- brands ---

func (s *Service) Brands(ctx context.Context, p backend.PageQuery, f backend.BrandFilter) (backend.Page[backend.Brand], error) {
	return s.api.BrandPage(ctx, p, f)
}

func (s *Service) BrandOptions(ctx context.Context) ([]backend.Brand, error) {
	return s.api.BrandSimpleList(ctx)
}

func (s *Service) SaveBrand(ctx context.Context, in backend.BrandSaveReq) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, apperr.InvalidErr("Brand name is required.", map[string]string{"name": "required"})
	}
	if err := checkStatus(in.Status); err != nil {
		return 0, err
	}
	if in.ID == 0 {
		return s.api.CreateBrand(ctx, in)
	}
	return in.ID, s.api.UpdateBrand(ctx, in)
}

func (s *Service) DeleteBrand(ctx context.Context, id int64) error {
	return s.api.DeleteBrand(ctx, id)
}

// --- categories ---

func (s *Service) Categories(ctx context.Context, f backend.CategoryFilter) ([]backend.Category, error) {
	return s.api.CategoryList(ctx, f)
}

// CategoryRows returns the full category list as an indented tree.
func (s *Service) CategoryRows(ctx context.Context, f backend.CategoryFilter) ([]CategoryRow, error) {
	list, err := s.api.CategoryList(ctx, f)
	if err != nil {
		return nil, err
	}
	return Flatten(BuildTree(list)), nil
}

func (s *Service) SaveCategory(ctx context.Context, in backend.CategorySaveReq) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, apperr.InvalidErr("Category name is required.", map[string]string{"name": "required"})
	}
	if in.ID != 0 && in.ParentID == in.ID {
		return 0, apperr.InvalidErr("A category cannot be its own parent.", map[string]string{"parentId": "self"})
	}
	if err := checkStatus(in.Status); err != nil {
		return 0, err
	}
	if in.ID == 0 {
		return s.api.CreateCategory(ctx, in)
	}
	return in.ID, s.api.UpdateCategory(ctx, in)
}

func (s *Service) SortCategories(ctx context.Context, items []backend.CategorySortItem) error {
	if len(items) == 0 {
		return nil
	}
	for _, it := range items {
		if it.Sort < 0 {
			return apperr.InvalidErr("Sort must be an integer greater than or equal to 0.", map[string]string{"sort": "min"})
		}
	}
	return s.api.UpdateCategorySort(ctx, items)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.api.DeleteCategory(ctx, id)
}

// Bindings loads both kinds of binding rows of a category. Only enabled
// properties are offered.
func (s *Service) Bindings(ctx context.Context, categoryID int64) (BindingRows, error) {
	if categoryID == 0 {
		return BindingRows{Display: []BindingRow{}, Sales: []BindingRow{}}, nil
	}
	out := BindingRows{}
	for _, kind := range []int{backend.PropertyTypeDisplay, backend.PropertyTypeSales} {
		kind := kind
		all, err := s.api.PropertySimpleList(ctx, &kind)
		if err != nil {
			return BindingRows{}, err
		}
		bound, err := s.api.CategoryProperties(ctx, categoryID, &kind)
		if err != nil {
			return BindingRows{}, err
		}
		active := make([]backend.Property, 0, len(all))
		for _, p := range all {
			if p.Status == StatusEnabled {
				active = append(active, p)
			}
		}
		rows := MergeBindingRows(active, bound, kind)
		if kind == backend.PropertyTypeSales {
			out.Sales = rows
		} else {
			out.Display = rows
		}
	}
	return out, nil
}

// SaveBindings sends the selected rows and returns the reloaded rows.
func (s *Service) SaveBindings(ctx context.Context, categoryID int64, rows []BindingRow) (BindingRows, error) {
	req, err := BindingSaveRequest(categoryID, rows)
	if err != nil {
		return BindingRows{}, err
	}
	if err := s.api.SaveCategoryProperties(ctx, req); err != nil {
		return BindingRows{}, err
	}
	return s.Bindings(ctx, categoryID)
}

// --- properties and values ---

func (s *Service) Properties(ctx context.Context, p backend.PageQuery, f backend.PropertyFilter) (backend.Page[backend.Property], error) {
	return s.api.PropertyPage(ctx, p, f)
}

func (s *Service) PropertyOptions(ctx context.Context, propertyType *int) ([]backend.Property, error) {
	return s.api.PropertySimpleList(ctx, propertyType)
}

func (s *Service) SaveProperty(ctx context.Context, in backend.PropertySaveReq) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, apperr.InvalidErr("Property name is required.", map[string]string{"name": "required"})
	}
	if in.PropertyType != backend.PropertyTypeDisplay && in.PropertyType != backend.PropertyTypeSales {
		return 0, apperr.InvalidErr("Unknown property type.", map[string]string{"propertyType": "oneof"})
	}
	if err := checkStatus(in.Status); err != nil {
		return 0, err
	}
	if in.ID == 0 {
		return s.api.CreateProperty(ctx, in)
	}
	return in.ID, s.api.UpdateProperty(ctx, in)
}

func (s *Service) DeleteProperty(ctx context.Context, id int64) error {
	return s.api.DeleteProperty(ctx, id)
}

func (s *Service) PropertyValues(ctx context.Context, p backend.PageQuery, f backend.PropertyValueFilter) (backend.Page[backend.PropertyValue], error) {
	return s.api.PropertyValuePage(ctx, p, f)
}

func (s *Service) PropertyValueOptions(ctx context.Context, propertyID int64) ([]backend.PropertyValue, error) {
	if propertyID == 0 {
		return []backend.PropertyValue{}, nil
	}
	return s.api.PropertyValueSimpleList(ctx, propertyID)
}

func (s *Service) SavePropertyValue(ctx context.Context, in backend.PropertyValueSaveReq) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.PropertyID == 0 || in.Name == "" {
		return 0, apperr.InvalidErr("Please fill in the property and the value name.", map[string]string{"name": "required"})
	}
	if err := checkStatus(in.Status); err != nil {
		return 0, err
	}
	if in.ID == 0 {
		return s.api.CreatePropertyValue(ctx, in)
	}
	return in.ID, s.api.UpdatePropertyValue(ctx, in)
}

func (s *Service) DeletePropertyValue(ctx context.Context, id int64) error {
	return s.api.DeletePropertyValue(ctx, id)
}

// --- spus ---

func (s *Service) Spus(ctx context.Context, p backend.PageQuery, f backend.SpuFilter) (backend.Page[backend.Spu], error) {
	return s.api.SpuPage(ctx, p, f)
}

func (s *Service) SpuCount(ctx context.Context) (backend.SpuCount, error) {
	return s.api.SpuCount(ctx)
}

func (s *Service) SetSpuStatus(ctx context.Context, id int64, status int) error {
	switch status {
	case backend.SpuStatusRecycle, backend.SpuStatusEnable, backend.SpuStatusDisable:
	default:
		return apperr.InvalidErr("Unknown product status.", map[string]string{"status": "oneof"})
	}
	return s.api.UpdateSpuStatus(ctx, id, status)
}

func (s *Service) DeleteSpu(ctx context.Context, id int64) error {
	return s.api.DeleteSpu(ctx, id)
}

// --- customer data ---

func (s *Service) Comments(ctx context.Context, p backend.PageQuery, f backend.CommentFilter) (backend.Page[backend.Comment], error) {
	return s.api.CommentPage(ctx, p, f)
}

func (s *Service) CreateComment(ctx context.Context, in backend.CommentCreateReq) error {
	if in.SpuID == 0 || in.UserID == 0 {
		return apperr.InvalidErr("User and product are required.", map[string]string{"spuId": "required"})
	}
	if in.Scores < 0 || in.Scores > 5 {
		return apperr.InvalidErr("Scores must be between 0 and 5.", map[string]string{"scores": "range"})
	}
	return s.api.CreateComment(ctx, in)
}

func (s *Service) SetCommentVisible(ctx context.Context, id int64, visible bool) error {
	return s.api.UpdateCommentVisible(ctx, id, visible)
}

func (s *Service) ReplyComment(ctx context.Context, id int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return apperr.InvalidErr("Reply content is required.", map[string]string{"replyContent": "required"})
	}
	return s.api.ReplyComment(ctx, id, content)
}

func (s *Service) Favorites(ctx context.Context, p backend.PageQuery, f backend.UserSpuFilter) (backend.Page[backend.Favorite], error) {
	return s.api.FavoritePage(ctx, p, f)
}

func (s *Service) BrowseHistory(ctx context.Context, p backend.PageQuery, f backend.UserSpuFilter) (backend.Page[backend.BrowseHistory], error) {
	return s.api.BrowseHistoryPage(ctx, p, f)
}

func checkStatus(v int) error {
	if v != StatusEnabled && v != StatusDisabled {
		return apperr.InvalidErr("Status must be 0 (enabled) or 1 (disabled).", map[string]string{"status": "oneof"})
	}
	return nil
}
