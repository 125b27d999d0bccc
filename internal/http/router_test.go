package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/mockbackend"
	"pehlione.com/catalogadmin/internal/modules/auth"
	"pehlione.com/catalogadmin/internal/modules/catalog"
	"pehlione.com/catalogadmin/internal/modules/spuform"
	"pehlione.com/catalogadmin/internal/storage"
	"pehlione.com/catalogadmin/internal/tokenstore"
	"pehlione.com/catalogadmin/pkg/view"
)

type harness struct {
	router  *gin.Engine
	mock    *mockbackend.Server
	backend *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock := mockbackend.New("")
	srv := httptest.NewServer(mock.Handler("/api-admin"))
	t.Cleanup(srv.Close)
	mock.SetPublicURL(srv.URL)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := tokenstore.NewFile(filepath.Join(t.TempDir(), "tokens.json"))
	client := backend.NewClient(backend.Options{BaseURL: srv.URL + "/api-admin", Tokens: tokens, Logger: logger})

	r := NewRouter(Deps{
		Logger:  logger,
		Auth:    auth.NewService(client, tokens, logger),
		Catalog: catalog.NewService(client),
		Forms:   spuform.NewService(client, spuform.NewStore(), logger),
		Storage: storage.NewPresigned(storage.BackendSigner{API: client}),
	})
	return &harness{router: r, mock: mock, backend: srv}
}

func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	w := h.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

type errBody struct {
	Error     string            `json:"error"`
	RequestID string            `json:"request_id"`
	Fields    map[string]string `json:"fields"`
	Code      int               `json:"code"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRouter_Healthz(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_SessionLifecycle(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodGet, "/api/brands", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	eb := decode[errBody](t, w)
	assert.Equal(t, "Please log in.", eb.Error)
	assert.NotEmpty(t, eb.RequestID)

	w = h.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "nope"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	eb = decode[errBody](t, w)
	assert.Equal(t, "Account or password is incorrect", eb.Error)
	assert.Equal(t, 1002, eb.Code)

	w = h.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "admin"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This field is required.", decode[errBody](t, w).Fields["password"])

	h.login(t)
	w = h.do(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[backend.PermissionInfo](t, w)
	assert.Equal(t, "admin", info.User.Nickname)

	w = h.do(t, http.MethodGet, "/api/brands/options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]backend.Brand](t, w), 1)

	w = h.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = h.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CategoryBindings(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	w := h.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]catalog.CategoryRow](t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[1].Level)

	w = h.do(t, http.MethodGet, "/api/categories/2/bindings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	b := decode[catalog.BindingRows](t, w)
	require.Len(t, b.Sales, 2)
	require.Len(t, b.Display, 1)
	assert.True(t, b.Sales[0].Selected)

	b.Sales[1].Selected = false
	w = h.do(t, http.MethodPut, "/api/categories/2/bindings", b)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	after := decode[catalog.BindingRows](t, w)
	assert.True(t, after.Sales[0].Selected)
	assert.False(t, after.Sales[1].Selected)

	w = h.do(t, http.MethodPut, "/api/categories/2/bindings", gin.H{"sales": []any{}, "display": []any{}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please select at least one property to bind.", decode[errBody](t, w).Error)
}

func TestRouter_DraftFlow(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	w := h.do(t, http.MethodPost, "/api/drafts", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	page := decode[view.DraftPage](t, w)
	id := page.DraftID
	require.NotEmpty(t, id)
	require.Len(t, page.Rows, 1)

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/submit", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	eb := decode[errBody](t, w)
	assert.Equal(t, "info", eb.Fields["section"])
	assert.Equal(t, "1", eb.Fields["rule"])

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/category", gin.H{"categoryId": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page = decode[view.DraftPage](t, w)
	require.Len(t, page.State.Catalog.Sales, 2)
	assert.Equal(t, int64(1), page.ColorID)

	steps := []spuform.Action{
		{Type: spuform.ActionSetSpecType, Multi: true},
		{Type: spuform.ActionAddSlot, PropertyID: 1},
		{Type: spuform.ActionSetSlotValue, PropertyID: 1, Index: 0, ValueID: 11},
		{Type: spuform.ActionAddSlot, PropertyID: 1},
		{Type: spuform.ActionSetSlotValue, PropertyID: 1, Index: 1, ValueID: 12},
		{Type: spuform.ActionAddSlot, PropertyID: 2},
		{Type: spuform.ActionSetSlotValue, PropertyID: 2, Index: 0, ValueID: 21},
	}
	for _, a := range steps {
		w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/actions", a)
		require.Equal(t, http.StatusOK, w.Code, "%s: %s", a.Type, w.Body.String())
	}
	page = decode[view.DraftPage](t, w)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "11_21", page.Rows[0].Key)
	assert.Equal(t, "12_21", page.Rows[1].Key)
	assert.Equal(t, "/mock/red.png", page.Rows[0].DisplayPic)

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/actions",
		spuform.Action{Type: spuform.ActionSetSlotValue, PropertyID: 1, Index: 1, ValueID: 11})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "sku", decode[errBody](t, w).Fields["section"])

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/actions", gin.H{
		"type":     spuform.ActionApplyBatch,
		"template": gin.H{"price": "10.50", "marketPrice": "12", "costPrice": "6", "stock": 4},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/actions", gin.H{
		"type": spuform.ActionSetDisplayProperty, "propertyId": 3, "text": "Cotton",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/actions", gin.H{
		"type": spuform.ActionPatchFields,
		"fields": gin.H{
			"name": "Tee", "keyword": "tee", "introduction": "A tee", "description": "<p>tee</p>",
			"picUrl": "cover.png", "brandId": 1, "deliveryTypes": []int{backend.DeliveryTypePickUp},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/validate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(t, http.MethodGet, "/api/drafts/"+id+"/skus.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "skus-new.xlsx")
	assert.NotZero(t, w.Body.Len())

	w = h.do(t, http.MethodPost, "/api/drafts/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[spuform.SubmitResult](t, w)
	assert.True(t, res.Created)

	spu, ok := h.mock.Spu(res.SpuID)
	require.True(t, ok)
	require.Len(t, spu.Skus, 2)
	assert.Equal(t, int64(1050), spu.Skus[0].Price)
	assert.Equal(t, 4, spu.Skus[1].Stock)
	assert.Equal(t, "Cotton", spu.DisplayProperties[0].ValueText)

	w = h.do(t, http.MethodGet, "/api/drafts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// reopen the saved product for editing
	w = h.do(t, http.MethodPost, "/api/drafts", gin.H{"spuId": res.SpuID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	page = decode[view.DraftPage](t, w)
	assert.Equal(t, "¥10.50", page.Rows[0].Price)
	assert.Len(t, page.State.Slots[1], 2)

	w = h.do(t, http.MethodPost, "/api/drafts", gin.H{"spuId": 9999, "readOnly": true})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_Upload(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("prefix", "product/spu"))
	fw, err := mw.CreateFormFile("file", "cover.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png-bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Key        string `json:"key"`
		URL        string `json:"url"`
		DisplayURL string `json:"displayUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, strings.HasPrefix(out.URL, h.backend.URL+"/mock-upload/product/spu/"))
	assert.Equal(t, out.URL+"?sig=download", out.DisplayURL)

	resp, err := http.Get(out.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	got, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "png-bytes", string(got))

	w = h.do(t, http.MethodPost, "/api/uploads", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
