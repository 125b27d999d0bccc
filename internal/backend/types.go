package backend

// Wire types of the admin REST backend. Money is in minor units (fen).

type Page[T any] struct {
	Total int64 `json:"total"`
	List  []T   `json:"list"`
}

type PageQuery struct {
	PageNum  int
	PageSize int
}

type IDResp struct {
	ID int64 `json:"id"`
}

// BoolResp is the {success} body some mutations answer with. The client does
// not decode it.
type BoolResp struct {
	Success bool `json:"success"`
}

// --- auth ---

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResp struct {
	ID           int64  `json:"id,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       int64  `json:"userId"`
	UserType     int    `json:"userType"`
	ClientID     string `json:"clientId"`
	ExpiresTime  int64  `json:"expiresTime"`
}

type PermissionUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	DeptID    int64  `json:"deptId,omitempty"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Sex       int    `json:"sex,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	LoginIP   string `json:"loginIp,omitempty"`
	LoginDate int64  `json:"loginDate,omitempty"`
}

type PermissionInfo struct {
	User        PermissionUser `json:"user"`
	Roles       []string       `json:"roles"`
	Permissions []string       `json:"permissions"`
}

// --- brand / category ---

type Brand struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PicURL      string `json:"picUrl"`
	Sort        int    `json:"sort"`
	Description string `json:"description,omitempty"`
	Status      int    `json:"status"`
	CreateTime  int64  `json:"createTime,omitempty"`
}

type BrandSaveReq struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	PicURL      string `json:"picUrl"`
	Sort        int    `json:"sort"`
	Description string `json:"description,omitempty"`
	Status      int    `json:"status"`
}

type BrandFilter struct {
	Name   string
	Status *int
}

type Category struct {
	ID         int64  `json:"id"`
	ParentID   int64  `json:"parentId"`
	Name       string `json:"name"`
	IsLeaf     bool   `json:"isLeaf,omitempty"`
	PicURL     string `json:"picUrl"`
	BigPicURL  string `json:"bigPicUrl,omitempty"`
	Sort       int    `json:"sort"`
	Status     int    `json:"status"`
	CreateTime int64  `json:"createTime,omitempty"`
}

type CategorySaveReq struct {
	ID        int64  `json:"id,omitempty"`
	ParentID  int64  `json:"parentId"`
	Name      string `json:"name"`
	PicURL    string `json:"picUrl"`
	BigPicURL string `json:"bigPicUrl,omitempty"`
	Sort      int    `json:"sort"`
	Status    int    `json:"status"`
}

type CategoryFilter struct {
	Name     string
	Status   *int
	ParentID *int64
}

type CategorySortItem struct {
	ID   int64 `json:"id"`
	Sort int   `json:"sort"`
}

// --- property / value / binding ---

const (
	PropertyTypeDisplay = 0
	PropertyTypeSales   = 1
)

type Property struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PropertyType int    `json:"propertyType"`
	InputType    int    `json:"inputType,omitempty"`
	Status       int    `json:"status"`
	Remark       string `json:"remark,omitempty"`
	CreateTime   int64  `json:"createTime,omitempty"`
}

type PropertySaveReq struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	PropertyType int    `json:"propertyType"`
	InputType    int    `json:"inputType,omitempty"`
	Status       int    `json:"status"`
	Remark       string `json:"remark,omitempty"`
}

type PropertyFilter struct {
	Name         string
	Status       *int
	PropertyType *int
}

type PropertyValue struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"propertyId"`
	Name       string `json:"name"`
	Status     int    `json:"status"`
	Remark     string `json:"remark,omitempty"`
	PicURL     string `json:"picUrl,omitempty"`
	CreateTime int64  `json:"createTime,omitempty"`
}

type PropertyValueSaveReq struct {
	ID         int64  `json:"id,omitempty"`
	PropertyID int64  `json:"propertyId"`
	Name       string `json:"name"`
	Status     int    `json:"status"`
	Remark     string `json:"remark,omitempty"`
	PicURL     string `json:"picUrl,omitempty"`
}

type PropertyValueFilter struct {
	PropertyID int64
	Name       string
	Status     *int
}

type CategoryProperty struct {
	ID                 int64  `json:"id"`
	CategoryID         int64  `json:"categoryId"`
	PropertyID         int64  `json:"propertyId"`
	PropertyName       string `json:"propertyName"`
	PropertyType       int    `json:"propertyType"`
	Enabled            bool   `json:"enabled"`
	Required           bool   `json:"required"`
	SupportValueImage  bool   `json:"supportValueImage"`
	ValueImageRequired bool   `json:"valueImageRequired"`
	Sort               int    `json:"sort"`
}

type CategoryPropertyItem struct {
	PropertyID         int64 `json:"propertyId"`
	Enabled            bool  `json:"enabled"`
	Required           bool  `json:"required"`
	SupportValueImage  bool  `json:"supportValueImage"`
	ValueImageRequired bool  `json:"valueImageRequired"`
	Sort               int   `json:"sort"`
}

type CategoryPropertySaveReq struct {
	CategoryID int64                  `json:"categoryId"`
	Items      []CategoryPropertyItem `json:"items"`
}

// --- spu / sku ---

const (
	SpuStatusRecycle = -1
	SpuStatusEnable  = 0
	SpuStatusDisable = 1
)

const (
	DeliveryTypeExpress  = 1
	DeliveryTypePickUp   = 2
	DeliveryTypeSameCity = 3
)

type SkuProperty struct {
	PropertyID   int64  `json:"propertyId"`
	PropertyName string `json:"propertyName"`
	ValueID      int64  `json:"valueId"`
	ValueName    string `json:"valueName"`
	ValuePicURL  string `json:"valuePicUrl,omitempty"`
}

type Sku struct {
	ID                       int64         `json:"id,omitempty"`
	SpuID                    int64         `json:"spuId,omitempty"`
	Properties               []SkuProperty `json:"properties"`
	Price                    int64         `json:"price"`
	MarketPrice              int64         `json:"marketPrice"`
	CostPrice                int64         `json:"costPrice"`
	BarCode                  string        `json:"barCode,omitempty"`
	PicURL                   string        `json:"picUrl"`
	Stock                    int           `json:"stock"`
	Weight                   float64       `json:"weight,omitempty"`
	Volume                   float64       `json:"volume,omitempty"`
	SubCommissionFirstPrice  int64         `json:"subCommissionFirstPrice,omitempty"`
	SubCommissionSecondPrice int64         `json:"subCommissionSecondPrice,omitempty"`
	SalesCount               int           `json:"salesCount,omitempty"`
}

type SpuDisplayProperty struct {
	PropertyID   int64  `json:"propertyId"`
	PropertyName string `json:"propertyName,omitempty"`
	ValueText    string `json:"valueText"`
	Sort         int    `json:"sort,omitempty"`
}

type Spu struct {
	ID                    int64                `json:"id"`
	Name                  string               `json:"name"`
	Keyword               string               `json:"keyword"`
	Introduction          string               `json:"introduction"`
	Description           string               `json:"description"`
	BarCode               string               `json:"barCode,omitempty"`
	CategoryID            int64                `json:"categoryId"`
	BrandID               int64                `json:"brandId"`
	PicURL                string               `json:"picUrl"`
	SliderPicURLs         []string             `json:"sliderPicUrls,omitempty"`
	MaterialPicURLs       []string             `json:"materialPicUrls,omitempty"`
	VideoURL              string               `json:"videoUrl,omitempty"`
	Sort                  int                  `json:"sort"`
	Status                int                  `json:"status"`
	SpecType              bool                 `json:"specType"`
	DeliveryTypes         []int                `json:"deliveryTypes,omitempty"`
	DeliveryTemplateID    int64                `json:"deliveryTemplateId,omitempty"`
	RecommendHot          bool                 `json:"recommendHot,omitempty"`
	RecommendBenefit      bool                 `json:"recommendBenefit,omitempty"`
	RecommendBest         bool                 `json:"recommendBest,omitempty"`
	RecommendNew          bool                 `json:"recommendNew,omitempty"`
	RecommendGood         bool                 `json:"recommendGood,omitempty"`
	GiveIntegral          int                  `json:"giveIntegral,omitempty"`
	GiveCouponTemplateIDs string               `json:"giveCouponTemplateIds,omitempty"`
	SubCommissionType     bool                 `json:"subCommissionType,omitempty"`
	ActivityOrders        string               `json:"activityOrders,omitempty"`
	DisplayProperties     []SpuDisplayProperty `json:"displayProperties,omitempty"`
	Price                 int64                `json:"price"`
	MarketPrice           int64                `json:"marketPrice"`
	CostPrice             int64                `json:"costPrice"`
	Stock                 int                  `json:"stock"`
	SalesCount            int                  `json:"salesCount"`
	VirtualSalesCount     int                  `json:"virtualSalesCount,omitempty"`
	BrowseCount           int                  `json:"browseCount"`
	CreateTime            int64                `json:"createTime,omitempty"`
	Skus                  []Sku                `json:"skus"`
}

type SpuSaveReq struct {
	ID                    int64                `json:"id,omitempty"`
	Name                  string               `json:"name"`
	Keyword               string               `json:"keyword"`
	Introduction          string               `json:"introduction"`
	Description           string               `json:"description"`
	BarCode               string               `json:"barCode,omitempty"`
	CategoryID            int64                `json:"categoryId"`
	BrandID               int64                `json:"brandId"`
	PicURL                string               `json:"picUrl"`
	SliderPicURLs         []string             `json:"sliderPicUrls"`
	MaterialPicURLs       []string             `json:"materialPicUrls,omitempty"`
	VideoURL              string               `json:"videoUrl,omitempty"`
	Sort                  int                  `json:"sort"`
	SpecType              bool                 `json:"specType"`
	DeliveryTypes         []int                `json:"deliveryTypes"`
	DeliveryTemplateID    int64                `json:"deliveryTemplateId,omitempty"`
	RecommendHot          bool                 `json:"recommendHot"`
	RecommendBenefit      bool                 `json:"recommendBenefit"`
	RecommendBest         bool                 `json:"recommendBest"`
	RecommendNew          bool                 `json:"recommendNew"`
	RecommendGood         bool                 `json:"recommendGood"`
	GiveIntegral          int                  `json:"giveIntegral"`
	GiveCouponTemplateIDs string               `json:"giveCouponTemplateIds"`
	SubCommissionType     bool                 `json:"subCommissionType"`
	ActivityOrders        string               `json:"activityOrders"`
	DisplayProperties     []SpuDisplayProperty `json:"displayProperties"`
	Skus                  []Sku                `json:"skus"`
}

type SpuFilter struct {
	Name       string
	TabType    *int
	CategoryID int64
	BrandID    int64
}

type SpuCount struct {
	EnableCount     int64 `json:"enableCount"`
	DisableCount    int64 `json:"disableCount"`
	SoldOutCount    int64 `json:"soldOutCount"`
	AlertStockCount int64 `json:"alertStockCount"`
	RecycleCount    int64 `json:"recycleCount"`
}

// --- customer data ---

type Comment struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"userId"`
	UserNickname      string `json:"userNickname,omitempty"`
	SpuID             int64  `json:"spuId"`
	SpuName           string `json:"spuName,omitempty"`
	SkuID             int64  `json:"skuId"`
	Visible           bool   `json:"visible"`
	Scores            int    `json:"scores"`
	DescriptionScores int    `json:"descriptionScores"`
	BenefitScores     int    `json:"benefitScores"`
	Content           string `json:"content,omitempty"`
	PicURLs           string `json:"picUrls,omitempty"`
	ReplyStatus       int    `json:"replyStatus,omitempty"`
	ReplyUserID       int64  `json:"replyUserId,omitempty"`
	ReplyContent      string `json:"replyContent,omitempty"`
	ReplyTime         int64  `json:"replyTime,omitempty"`
	CreateTime        int64  `json:"createTime,omitempty"`
}

type CommentCreateReq struct {
	UserID            int64  `json:"userId"`
	SpuID             int64  `json:"spuId"`
	SkuID             int64  `json:"skuId"`
	UserNickname      string `json:"userNickname,omitempty"`
	UserAvatar        string `json:"userAvatar,omitempty"`
	Anonymous         bool   `json:"anonymous,omitempty"`
	OrderID           int64  `json:"orderId,omitempty"`
	OrderItemID       int64  `json:"orderItemId,omitempty"`
	Scores            int    `json:"scores,omitempty"`
	DescriptionScores int    `json:"descriptionScores,omitempty"`
	BenefitScores     int    `json:"benefitScores,omitempty"`
	Content           string `json:"content,omitempty"`
	PicURLs           string `json:"picUrls,omitempty"`
	Visible           bool   `json:"visible,omitempty"`
}

type CommentFilter struct {
	SpuID   int64
	UserID  int64
	Visible *bool
}

type Favorite struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"userId"`
	SpuID      int64 `json:"spuId"`
	CreateTime int64 `json:"createTime,omitempty"`
}

type BrowseHistory struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"userId"`
	SpuID       int64 `json:"spuId"`
	UserDeleted bool  `json:"userDeleted"`
	CreateTime  int64 `json:"createTime,omitempty"`
}

type UserSpuFilter struct {
	UserID      int64
	SpuID       int64
	UserDeleted *bool
}

// --- files ---

type PresignUploadReq struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	PathPrefix  string `json:"pathPrefix,omitempty"`
}

type PresignUploadResp struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
	ObjectURL string `json:"objectUrl"`
}

type PresignDownloadReq struct {
	ObjectURL string `json:"objectUrl"`
}

type PresignDownloadResp struct {
	DownloadURL string `json:"downloadUrl"`
}
