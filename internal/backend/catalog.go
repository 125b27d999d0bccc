package backend

import (
	"context"
	"net/url"
)

// --- brands ---

func (c *Client) BrandPage(ctx context.Context, p PageQuery, f BrandFilter) (Page[Brand], error) {
	q := pageParams(p)
	q.str("name", f.Name)
	q.optInt("status", f.Status)
	var out Page[Brand]
	err := c.get(ctx, "/product/brand/page", q.values(), &out)
	return out, err
}

func (c *Client) BrandSimpleList(ctx context.Context) ([]Brand, error) {
	var out []Brand
	err := c.get(ctx, "/product/brand/list-all-simple", nil, &out)
	return out, err
}

func (c *Client) CreateBrand(ctx context.Context, in BrandSaveReq) (int64, error) {
	var out IDResp
	err := c.post(ctx, "/product/brand/create", in, &out)
	return out.ID, err
}

func (c *Client) UpdateBrand(ctx context.Context, in BrandSaveReq) error {
	return c.put(ctx, "/product/brand/update", in, nil)
}

func (c *Client) DeleteBrand(ctx context.Context, id int64) error {
	return c.delete(ctx, "/product/brand/delete", id)
}

// --- categories ---

func (c *Client) CategoryList(ctx context.Context, f CategoryFilter) ([]Category, error) {
	q := params{}
	q.str("name", f.Name)
	q.optInt("status", f.Status)
	if f.ParentID != nil {
		q.int("parentId", *f.ParentID)
	}
	var out []Category
	err := c.get(ctx, "/product/category/list", q.values(), &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, in CategorySaveReq) (int64, error) {
	var out IDResp
	err := c.post(ctx, "/product/category/create", in, &out)
	return out.ID, err
}

func (c *Client) UpdateCategory(ctx context.Context, in CategorySaveReq) error {
	return c.put(ctx, "/product/category/update", in, nil)
}

func (c *Client) UpdateCategorySort(ctx context.Context, items []CategorySortItem) error {
	body := struct {
		Items []CategorySortItem `json:"items"`
	}{Items: items}
	return c.put(ctx, "/product/category/update-sort-batch", body, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, "/product/category/delete", id)
}

// CategoryProperties lists the bindings of a category. propertyType nil
// returns both kinds.
func (c *Client) CategoryProperties(ctx context.Context, categoryID int64, propertyType *int) ([]CategoryProperty, error) {
	q := params{}
	q.int("categoryId", categoryID)
	q.optInt("propertyType", propertyType)
	var out []CategoryProperty
	err := c.get(ctx, "/product/category/property/list", q.values(), &out)
	return out, err
}

func (c *Client) SaveCategoryProperties(ctx context.Context, in CategoryPropertySaveReq) error {
	return c.put(ctx, "/product/category/property/save-batch", in, nil)
}

// --- properties ---

func (c *Client) PropertyPage(ctx context.Context, p PageQuery, f PropertyFilter) (Page[Property], error) {
	q := pageParams(p)
	q.str("name", f.Name)
	q.optInt("status", f.Status)
	q.optInt("propertyType", f.PropertyType)
	var out Page[Property]
	err := c.get(ctx, "/product/property/page", q.values(), &out)
	return out, err
}

func (c *Client) PropertySimpleList(ctx context.Context, propertyType *int) ([]Property, error) {
	q := params{}
	q.optInt("propertyType", propertyType)
	var out []Property
	err := c.get(ctx, "/product/property/simple-list", q.values(), &out)
	return out, err
}

func (c *Client) CreateProperty(ctx context.Context, in PropertySaveReq) (int64, error) {
	var out IDResp
	err := c.post(ctx, "/product/property/create", in, &out)
	return out.ID, err
}

func (c *Client) UpdateProperty(ctx context.Context, in PropertySaveReq) error {
	return c.put(ctx, "/product/property/update", in, nil)
}

func (c *Client) DeleteProperty(ctx context.Context, id int64) error {
	return c.delete(ctx, "/product/property/delete", id)
}

// --- property values ---

func (c *Client) PropertyValuePage(ctx context.Context, p PageQuery, f PropertyValueFilter) (Page[PropertyValue], error) {
	q := pageParams(p)
	q.nonZero("propertyId", f.PropertyID)
	q.str("name", f.Name)
	q.optInt("status", f.Status)
	var out Page[PropertyValue]
	err := c.get(ctx, "/product/property/value/page", q.values(), &out)
	return out, err
}

func (c *Client) PropertyValueSimpleList(ctx context.Context, propertyID int64) ([]PropertyValue, error) {
	q := params{}
	q.int("propertyId", propertyID)
	var out []PropertyValue
	err := c.get(ctx, "/product/property/value/simple-list", q.values(), &out)
	return out, err
}

func (c *Client) CreatePropertyValue(ctx context.Context, in PropertyValueSaveReq) (int64, error) {
	var out IDResp
	err := c.post(ctx, "/product/property/value/create", in, &out)
	return out.ID, err
}

func (c *Client) UpdatePropertyValue(ctx context.Context, in PropertyValueSaveReq) error {
	return c.put(ctx, "/product/property/value/update", in, nil)
}

func (c *Client) DeletePropertyValue(ctx context.Context, id int64) error {
	return c.delete(ctx, "/product/property/value/delete", id)
}

// --- spu ---

func (c *Client) SpuCount(ctx context.Context) (SpuCount, error) {
	var out SpuCount
	err := c.get(ctx, "/product/spu/get-count", nil, &out)
	return out, err
}

func (c *Client) SpuPage(ctx context.Context, p PageQuery, f SpuFilter) (Page[Spu], error) {
	q := pageParams(p)
	q.str("name", f.Name)
	q.optInt("tabType", f.TabType)
	q.nonZero("categoryId", f.CategoryID)
	q.nonZero("brandId", f.BrandID)
	var out Page[Spu]
	err := c.get(ctx, "/product/spu/page", q.values(), &out)
	return out, err
}

func (c *Client) SpuDetail(ctx context.Context, id int64) (Spu, error) {
	var out Spu
	err := c.get(ctx, "/product/spu/get-detail", idQuery(id), &out)
	return out, err
}

func (c *Client) CreateSpu(ctx context.Context, in SpuSaveReq) (int64, error) {
	var out IDResp
	err := c.post(ctx, "/product/spu/create", in, &out)
	return out.ID, err
}

func (c *Client) UpdateSpu(ctx context.Context, in SpuSaveReq) error {
	return c.put(ctx, "/product/spu/update", in, nil)
}

func (c *Client) UpdateSpuStatus(ctx context.Context, id int64, status int) error {
	body := struct {
		ID     int64 `json:"id"`
		Status int   `json:"status"`
	}{ID: id, Status: status}
	return c.put(ctx, "/product/spu/update-status", body, nil)
}

func (c *Client) DeleteSpu(ctx context.Context, id int64) error {
	return c.delete(ctx, "/product/spu/delete", id)
}

// --- comments, favorites, browse history ---

func (c *Client) CommentPage(ctx context.Context, p PageQuery, f CommentFilter) (Page[Comment], error) {
	q := pageParams(p)
	q.nonZero("spuId", f.SpuID)
	q.nonZero("userId", f.UserID)
	q.optBool("visible", f.Visible)
	var out Page[Comment]
	err := c.get(ctx, "/product/comment/page", q.values(), &out)
	return out, err
}

func (c *Client) CreateComment(ctx context.Context, in CommentCreateReq) error {
	return c.post(ctx, "/product/comment/create", in, nil)
}

func (c *Client) UpdateCommentVisible(ctx context.Context, id int64, visible bool) error {
	body := struct {
		ID      int64 `json:"id"`
		Visible bool  `json:"visible"`
	}{ID: id, Visible: visible}
	return c.put(ctx, "/product/comment/update-visible", body, nil)
}

func (c *Client) ReplyComment(ctx context.Context, id int64, content string) error {
	body := struct {
		ID           int64  `json:"id"`
		ReplyContent string `json:"replyContent"`
	}{ID: id, ReplyContent: content}
	return c.put(ctx, "/product/comment/reply", body, nil)
}

func (c *Client) FavoritePage(ctx context.Context, p PageQuery, f UserSpuFilter) (Page[Favorite], error) {
	var out Page[Favorite]
	err := c.get(ctx, "/product/favorite/page", userSpuParams(p, f), &out)
	return out, err
}

func (c *Client) BrowseHistoryPage(ctx context.Context, p PageQuery, f UserSpuFilter) (Page[BrowseHistory], error) {
	var out Page[BrowseHistory]
	err := c.get(ctx, "/product/browse-history/page", userSpuParams(p, f), &out)
	return out, err
}

func userSpuParams(p PageQuery, f UserSpuFilter) url.Values {
	q := pageParams(p)
	q.nonZero("userId", f.UserID)
	q.nonZero("spuId", f.SpuID)
	q.optBool("userDeleted", f.UserDeleted)
	return q.values()
}

// --- files ---

func (c *Client) PresignUpload(ctx context.Context, in PresignUploadReq) (PresignUploadResp, error) {
	var out PresignUploadResp
	err := c.post(ctx, "/system/file/presigned-upload-url", in, &out)
	return out, err
}

func (c *Client) PresignDownload(ctx context.Context, objectURL string) (PresignDownloadResp, error) {
	var out PresignDownloadResp
	err := c.post(ctx, "/system/file/presigned-download-url", PresignDownloadReq{ObjectURL: objectURL}, &out)
	return out, err
}
