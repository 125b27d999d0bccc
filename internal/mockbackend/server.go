// Package mockbackend is an in-memory stand-in for the admin REST backend. It
// speaks the same {code, desc, data} envelope and is used by local runs and
// HTTP tests.
package mockbackend

import (
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pehlione.com/catalogadmin/internal/backend"
)

const (
	AccessToken  = "mock-access-token"
	RefreshToken = "mock-refresh-token"

	codeOK         = 200
	codeBadRequest = 400
	codeNotFound   = 404
	codeBadLogin   = 1002
)

type Server struct {
	mu sync.Mutex

	// Password accepted by login; any username works.
	Password string

	nextID     int64
	brands     map[int64]backend.Brand
	categories map[int64]backend.Category
	properties map[int64]backend.Property
	values     map[int64]backend.PropertyValue
	bindings   map[int64][]backend.CategoryProperty // category -> rows
	spus       map[int64]backend.Spu
	objects    map[string][]byte

	publicURL string
}

// New returns a server seeded with a small apparel catalog. publicURL is the
// origin the server is reachable at; it prefixes presigned URLs.
func New(publicURL string) *Server {
	s := &Server{
		Password:   "admin123",
		nextID:     100,
		brands:     map[int64]backend.Brand{},
		categories: map[int64]backend.Category{},
		properties: map[int64]backend.Property{},
		values:     map[int64]backend.PropertyValue{},
		bindings:   map[int64][]backend.CategoryProperty{},
		spus:       map[int64]backend.Spu{},
		objects:    map[string][]byte{},
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
	s.seed()
	return s
}

// SetPublicURL is for servers whose address is only known after listening.
func (s *Server) SetPublicURL(u string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publicURL = strings.TrimRight(u, "/")
}

func (s *Server) seed() {
	s.brands[1] = backend.Brand{ID: 1, Name: "Acme", Sort: 10}
	s.categories[1] = backend.Category{ID: 1, Name: "Apparel", Sort: 10}
	s.categories[2] = backend.Category{ID: 2, ParentID: 1, Name: "T-shirts", Sort: 10}

	s.properties[1] = backend.Property{ID: 1, Name: "Color", PropertyType: backend.PropertyTypeSales}
	s.properties[2] = backend.Property{ID: 2, Name: "Size", PropertyType: backend.PropertyTypeSales}
	s.properties[3] = backend.Property{ID: 3, Name: "Material", PropertyType: backend.PropertyTypeDisplay}

	s.values[11] = backend.PropertyValue{ID: 11, PropertyID: 1, Name: "Red", PicURL: "/mock/red.png"}
	s.values[12] = backend.PropertyValue{ID: 12, PropertyID: 1, Name: "Blue", PicURL: "/mock/blue.png"}
	s.values[21] = backend.PropertyValue{ID: 21, PropertyID: 2, Name: "S"}
	s.values[22] = backend.PropertyValue{ID: 22, PropertyID: 2, Name: "M"}

	s.bindings[2] = []backend.CategoryProperty{
		{ID: 1, CategoryID: 2, PropertyID: 1, PropertyName: "Color", PropertyType: backend.PropertyTypeSales, Enabled: true, Required: true, SupportValueImage: true, Sort: 10},
		{ID: 2, CategoryID: 2, PropertyID: 2, PropertyName: "Size", PropertyType: backend.PropertyTypeSales, Enabled: true, Sort: 20},
		{ID: 3, CategoryID: 2, PropertyID: 3, PropertyName: "Material", PropertyType: backend.PropertyTypeDisplay, Enabled: true, Required: true, Sort: 10},
	}
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

// Handler mounts the admin API under base, e.g. "/api-admin".
func (s *Server) Handler(base string) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.PUT("/mock-upload/*key", s.putObject)
	r.GET("/mock-upload/*key", s.getObject)

	g := r.Group(strings.TrimRight(base, "/"))
	g.POST("/system/auth/login", s.login)

	a := g.Group("", s.requireToken)
	a.POST("/system/auth/logout", func(c *gin.Context) { done(c) })
	a.GET("/system/auth/get-permission-info", s.permissionInfo)

	a.GET("/product/brand/page", s.brandPage)
	a.GET("/product/brand/list-all-simple", s.brandList)
	a.POST("/product/brand/create", s.saveBrand)
	a.PUT("/product/brand/update", s.saveBrand)
	a.DELETE("/product/brand/delete", s.deleteBrand)

	a.GET("/product/category/list", s.categoryList)
	a.POST("/product/category/create", s.saveCategory)
	a.PUT("/product/category/update", s.saveCategory)
	a.PUT("/product/category/update-sort-batch", s.sortCategories)
	a.DELETE("/product/category/delete", s.deleteCategory)
	a.GET("/product/category/property/list", s.bindingList)
	a.PUT("/product/category/property/save-batch", s.saveBindings)

	a.GET("/product/property/page", s.propertyPage)
	a.GET("/product/property/simple-list", s.propertySimple)
	a.POST("/product/property/create", s.saveProperty)
	a.PUT("/product/property/update", s.saveProperty)
	a.DELETE("/product/property/delete", s.deleteProperty)

	a.GET("/product/property/value/page", s.valuePage)
	a.GET("/product/property/value/simple-list", s.valueSimple)
	a.POST("/product/property/value/create", s.saveValue)
	a.PUT("/product/property/value/update", s.saveValue)
	a.DELETE("/product/property/value/delete", s.deleteValue)

	a.GET("/product/spu/get-count", s.spuCount)
	a.GET("/product/spu/page", s.spuPage)
	a.GET("/product/spu/get-detail", s.spuDetail)
	a.POST("/product/spu/create", s.saveSpu)
	a.PUT("/product/spu/update", s.saveSpu)
	a.PUT("/product/spu/update-status", s.spuStatus)
	a.DELETE("/product/spu/delete", s.deleteSpu)

	empty := func(c *gin.Context) { ok(c, backend.Page[struct{}]{List: []struct{}{}}) }
	a.GET("/product/comment/page", empty)
	a.GET("/product/favorite/page", empty)
	a.GET("/product/browse-history/page", empty)
	a.POST("/product/comment/create", func(c *gin.Context) { done(c) })
	a.PUT("/product/comment/update-visible", func(c *gin.Context) { done(c) })
	a.PUT("/product/comment/reply", func(c *gin.Context) { done(c) })

	a.POST("/system/file/presigned-upload-url", s.presignUpload)
	a.POST("/system/file/presigned-download-url", s.presignDownload)

	return r
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"code": codeOK, "data": data})
}

// done answers a mutation the way the backend's BooleanResp does.
func done(c *gin.Context) {
	ok(c, backend.BoolResp{Success: true})
}

func fail(c *gin.Context, code int, desc string) {
	c.JSON(http.StatusOK, gin.H{"code": code, "desc": desc, "enDesc": desc})
}

func (s *Server) requireToken(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer "+AccessToken {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "desc": "Unauthorized"})
		return
	}
	c.Next()
}

func queryID(c *gin.Context, name string) int64 {
	n, _ := strconv.ParseInt(c.Query(name), 10, 64)
	return n
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func page[T any](c *gin.Context, list []T) backend.Page[T] {
	num, _ := strconv.Atoi(c.DefaultQuery("pageNum", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if num < 1 {
		num = 1
	}
	if size < 1 {
		size = 10
	}
	from := (num - 1) * size
	if from > len(list) {
		from = len(list)
	}
	to := from + size
	if to > len(list) {
		to = len(list)
	}
	return backend.Page[T]{Total: int64(len(list)), List: list[from:to]}
}

// --- auth ---

func (s *Server) login(c *gin.Context) {
	var in backend.LoginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	if in.Username == "" || in.Password != s.Password {
		fail(c, codeBadLogin, "Account or password is incorrect")
		return
	}
	ok(c, backend.LoginResp{UserID: 1, AccessToken: AccessToken, RefreshToken: RefreshToken})
}

func (s *Server) permissionInfo(c *gin.Context) {
	ok(c, backend.PermissionInfo{
		User:        backend.PermissionUser{ID: 1, Nickname: "admin"},
		Roles:       []string{"super_admin"},
		Permissions: []string{"*:*:*"},
	})
}

// --- brands ---

func (s *Server) brandPage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := c.Query("name")
	list := []backend.Brand{}
	for _, id := range sortedKeys(s.brands) {
		if b := s.brands[id]; name == "" || strings.Contains(b.Name, name) {
			list = append(list, b)
		}
	}
	ok(c, page(c, list))
}

func (s *Server) brandList(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []backend.Brand{}
	for _, id := range sortedKeys(s.brands) {
		list = append(list, s.brands[id])
	}
	ok(c, list)
}

func (s *Server) saveBrand(c *gin.Context) {
	var in backend.BrandSaveReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.brands {
		if b.Name == in.Name && b.ID != in.ID {
			fail(c, 1001, "Brand name already exists")
			return
		}
	}
	if in.ID == 0 {
		in.ID = s.id()
	} else if _, found := s.brands[in.ID]; !found {
		fail(c, codeNotFound, "Brand not found")
		return
	}
	s.brands[in.ID] = backend.Brand{ID: in.ID, Name: in.Name, PicURL: in.PicURL, Sort: in.Sort, Description: in.Description, Status: in.Status}
	if c.Request.Method == http.MethodPost {
		ok(c, backend.IDResp{ID: in.ID})
		return
	}
	done(c)
}

func (s *Server) deleteBrand(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.brands, queryID(c, "id"))
	done(c)
}

// --- categories and bindings ---

func (s *Server) categoryList(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := c.Query("name")
	list := []backend.Category{}
	for _, id := range sortedKeys(s.categories) {
		if cat := s.categories[id]; name == "" || strings.Contains(cat.Name, name) {
			list = append(list, cat)
		}
	}
	ok(c, list)
}

func (s *Server) saveCategory(c *gin.Context) {
	var in backend.CategorySaveReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.ParentID != 0 {
		if _, found := s.categories[in.ParentID]; !found {
			fail(c, codeNotFound, "Parent category not found")
			return
		}
	}
	if in.ID == 0 {
		in.ID = s.id()
	}
	s.categories[in.ID] = backend.Category{ID: in.ID, ParentID: in.ParentID, Name: in.Name, PicURL: in.PicURL, Sort: in.Sort, Status: in.Status}
	if c.Request.Method == http.MethodPost {
		ok(c, backend.IDResp{ID: in.ID})
		return
	}
	done(c)
}

func (s *Server) sortCategories(c *gin.Context) {
	var in struct {
		Items []backend.CategorySortItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range in.Items {
		if cat, found := s.categories[it.ID]; found {
			cat.Sort = it.Sort
			s.categories[it.ID] = cat
		}
	}
	done(c)
}

func (s *Server) deleteCategory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := queryID(c, "id")
	for _, cat := range s.categories {
		if cat.ParentID == id {
			fail(c, 1003, "Category has children")
			return
		}
	}
	delete(s.categories, id)
	delete(s.bindings, id)
	done(c)
}

func (s *Server) bindingList(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []backend.CategoryProperty{}
	for _, b := range s.bindings[queryID(c, "categoryId")] {
		if pt := c.Query("propertyType"); pt != "" && pt != strconv.Itoa(b.PropertyType) {
			continue
		}
		list = append(list, b)
	}
	ok(c, list)
}

func (s *Server) saveBindings(c *gin.Context) {
	var in backend.CategoryPropertySaveReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]backend.CategoryProperty, 0, len(in.Items))
	for _, it := range in.Items {
		p := s.properties[it.PropertyID]
		rows = append(rows, backend.CategoryProperty{
			ID: s.id(), CategoryID: in.CategoryID, PropertyID: it.PropertyID,
			PropertyName: p.Name, PropertyType: p.PropertyType,
			Enabled: it.Enabled, Required: it.Required,
			SupportValueImage: it.SupportValueImage, ValueImageRequired: it.ValueImageRequired,
			Sort: it.Sort,
		})
	}
	s.bindings[in.CategoryID] = rows
	done(c)
}

// --- properties and values ---

func (s *Server) filteredProperties(c *gin.Context) []backend.Property {
	list := []backend.Property{}
	for _, id := range sortedKeys(s.properties) {
		p := s.properties[id]
		if pt := c.Query("propertyType"); pt != "" && pt != strconv.Itoa(p.PropertyType) {
			continue
		}
		if name := c.Query("name"); name != "" && !strings.Contains(p.Name, name) {
			continue
		}
		list = append(list, p)
	}
	return list
}

func (s *Server) propertyPage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, page(c, s.filteredProperties(c)))
}

func (s *Server) propertySimple(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, s.filteredProperties(c))
}

func (s *Server) saveProperty(c *gin.Context) {
	var in backend.PropertySaveReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.ID == 0 {
		in.ID = s.id()
	}
	s.properties[in.ID] = backend.Property{ID: in.ID, Name: in.Name, PropertyType: in.PropertyType, InputType: in.InputType, Status: in.Status, Remark: in.Remark}
	if c.Request.Method == http.MethodPost {
		ok(c, backend.IDResp{ID: in.ID})
		return
	}
	done(c)
}

func (s *Server) deleteProperty(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.properties, queryID(c, "id"))
	done(c)
}

func (s *Server) filteredValues(c *gin.Context) []backend.PropertyValue {
	pid := queryID(c, "propertyId")
	list := []backend.PropertyValue{}
	for _, id := range sortedKeys(s.values) {
		if v := s.values[id]; pid == 0 || v.PropertyID == pid {
			list = append(list, v)
		}
	}
	return list
}

func (s *Server) valuePage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, page(c, s.filteredValues(c)))
}

func (s *Server) valueSimple(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, s.filteredValues(c))
}

func (s *Server) saveValue(c *gin.Context) {
	var in backend.PropertyValueSaveReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.properties[in.PropertyID]; !found {
		fail(c, codeNotFound, "Property not found")
		return
	}
	if in.ID == 0 {
		in.ID = s.id()
	}
	s.values[in.ID] = backend.PropertyValue{ID: in.ID, PropertyID: in.PropertyID, Name: in.Name, PicURL: in.PicURL, Status: in.Status, Remark: in.Remark}
	if c.Request.Method == http.MethodPost {
		ok(c, backend.IDResp{ID: in.ID})
		return
	}
	done(c)
}

func (s *Server) deleteValue(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, queryID(c, "id"))
	done(c)
}

// --- spus ---

func (s *Server) spuCount(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out backend.SpuCount
	for _, p := range s.spus {
		switch p.Status {
		case backend.SpuStatusEnable:
			out.EnableCount++
		case backend.SpuStatusDisable:
			out.DisableCount++
		default:
			out.RecycleCount++
		}
	}
	ok(c, out)
}

func (s *Server) spuPage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []backend.Spu{}
	for _, id := range sortedKeys(s.spus) {
		p := s.spus[id]
		if name := c.Query("name"); name != "" && !strings.Contains(p.Name, name) {
			continue
		}
		list = append(list, p)
	}
	ok(c, page(c, list))
}

func (s *Server) spuDetail(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, found := s.spus[queryID(c, "id")]
	if !found {
		fail(c, codeNotFound, "Product not found")
		return
	}
	ok(c, p)
}

// Spu returns a stored SPU; tests use it to check what was submitted.
func (s *Server) Spu(id int64) (backend.Spu, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, found := s.spus[id]
	return p, found
}

func (s *Server) saveSpu(c *gin.Context) {
	var in backend.SpuSaveReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.categories[in.CategoryID]; !found {
		fail(c, codeNotFound, "Category not found")
		return
	}
	status := backend.SpuStatusEnable
	if in.ID == 0 {
		in.ID = s.id()
	} else if prev, found := s.spus[in.ID]; found {
		status = prev.Status
	} else {
		fail(c, codeNotFound, "Product not found")
		return
	}

	skus := make([]backend.Sku, len(in.Skus))
	stock := 0
	var price int64
	for i, k := range in.Skus {
		if k.ID == 0 {
			k.ID = s.id()
		}
		k.SpuID = in.ID
		skus[i] = k
		stock += k.Stock
		if i == 0 || k.Price < price {
			price = k.Price
		}
	}
	s.spus[in.ID] = backend.Spu{
		ID: in.ID, Name: in.Name, Keyword: in.Keyword, Introduction: in.Introduction,
		Description: in.Description, BarCode: in.BarCode, CategoryID: in.CategoryID,
		BrandID: in.BrandID, PicURL: in.PicURL, SliderPicURLs: in.SliderPicURLs,
		VideoURL: in.VideoURL, Sort: in.Sort, Status: status, SpecType: in.SpecType,
		DeliveryTypes: in.DeliveryTypes, DeliveryTemplateID: in.DeliveryTemplateID,
		DisplayProperties: in.DisplayProperties, Price: price, Stock: stock, Skus: skus,
	}
	if c.Request.Method == http.MethodPost {
		ok(c, backend.IDResp{ID: in.ID})
		return
	}
	done(c)
}

func (s *Server) spuStatus(c *gin.Context) {
	var in struct {
		ID     int64 `json:"id"`
		Status int   `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, found := s.spus[in.ID]
	if !found {
		fail(c, codeNotFound, "Product not found")
		return
	}
	p.Status = in.Status
	s.spus[in.ID] = p
	done(c)
}

func (s *Server) deleteSpu(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.spus, queryID(c, "id"))
	done(c)
}

// --- files ---

func (s *Server) presignUpload(c *gin.Context) {
	var in backend.PresignUploadReq
	if err := c.ShouldBindJSON(&in); err != nil || in.FileName == "" {
		fail(c, codeBadRequest, "fileName is required")
		return
	}
	key := strings.Trim(in.PathPrefix, "/")
	if key != "" {
		key += "/"
	}
	key += uuid.NewString() + "-" + in.FileName
	s.mu.Lock()
	base := s.publicURL
	s.mu.Unlock()
	ok(c, backend.PresignUploadResp{
		ObjectKey: key,
		UploadURL: base + "/mock-upload/" + key + "?sig=upload",
		ObjectURL: base + "/mock-upload/" + key,
	})
}

func (s *Server) presignDownload(c *gin.Context) {
	var in backend.PresignDownloadReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, codeBadRequest, "Bad request")
		return
	}
	ok(c, backend.PresignDownloadResp{DownloadURL: in.ObjectURL + "?sig=download"})
}

func (s *Server) putObject(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.objects[strings.TrimPrefix(c.Param("key"), "/")] = body
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) getObject(c *gin.Context) {
	s.mu.Lock()
	b, found := s.objects[strings.TrimPrefix(c.Param("key"), "/")]
	s.mu.Unlock()
	if !found {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", b)
}
