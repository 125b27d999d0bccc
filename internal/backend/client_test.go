package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/catalogadmin/internal/shared/apperr"
	"pehlione.com/catalogadmin/internal/tokenstore"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *tokenstore.File) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	store := tokenstore.NewFile(filepath.Join(t.TempDir(), "tokens.json"))
	c := NewClient(Options{BaseURL: srv.URL + "/api-admin/", Tokens: store})
	return c, store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_UnwrapsEnvelopeData(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-admin/product/spu/get-detail", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"code": 200,
			"data": map[string]any{"id": 7, "name": "Shirt", "specType": true},
		})
	})
	require.NoError(t, store.Save(context.Background(), tokenstore.Tokens{AccessToken: "tok-1"}))

	spu, err := c.SpuDetail(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), spu.ID)
	assert.Equal(t, "Shirt", spu.Name)
	assert.True(t, spu.SpecType)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"code": 200, "data": []any{}})
	})

	_, err := c.BrandSimpleList(context.Background())
	require.NoError(t, err)
}

func TestClient_RejectedMessageFallbacks(t *testing.T) {
	cases := []struct {
		name string
		body map[string]any
		want string
	}{
		{"desc", map[string]any{"code": 1001, "desc": "名称重复", "enDesc": "Duplicate name"}, "名称重复"},
		{"enDesc", map[string]any{"code": 1001, "enDesc": "Duplicate name"}, "Duplicate name"},
		{"code only", map[string]any{"code": 500}, "Request failed: 500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tc.body)
			})

			_, err := c.CreateBrand(context.Background(), BrandSaveReq{Name: "x"})
			require.Error(t, err)
			ae, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, apperr.Rejected, ae.Kind)
			assert.Equal(t, tc.want, ae.PublicMsg)
			assert.Equal(t, tc.body["code"], ae.Code)
		})
	}
}

func TestClient_PassesThroughNonEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"enableCount": 3, "recycleCount": 1})
	})

	got, err := c.SpuCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.EnableCount)
	assert.Equal(t, int64(1), got.RecycleCount)
}

func TestClient_UnauthorizedClearsTokens(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"desc": "token expired"})
	})
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, tokenstore.Tokens{AccessToken: "a", RefreshToken: "r"}))

	_, err := c.PermissionInfo(ctx)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "token expired", apperr.PublicMessage(err))

	tok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, tok.LoggedIn())
	assert.Empty(t, tok.RefreshToken)
}

func TestClient_ServerErrorIsUpstream(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.DeleteSpu(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Upstream))
}

func TestClient_SendsJSONBodyAndPageQuery(t *testing.T) {
	var gotBody map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api-admin/product/category/property/save-batch":
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			b, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(b, &gotBody)
			writeJSON(w, http.StatusOK, map[string]any{"code": 200, "data": true})
		case "/api-admin/product/property/value/page":
			q := r.URL.Query()
			assert.Equal(t, "1", q.Get("pageNum"))
			assert.Equal(t, "10", q.Get("pageSize"))
			assert.Equal(t, "4", q.Get("propertyId"))
			assert.False(t, q.Has("name"))
			writeJSON(w, http.StatusOK, map[string]any{
				"code": 200,
				"data": map[string]any{"total": 1, "list": []any{map[string]any{"id": 9, "propertyId": 4, "name": "Red"}}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	err := c.SaveCategoryProperties(ctx, CategoryPropertySaveReq{
		CategoryID: 2,
		Items:      []CategoryPropertyItem{{PropertyID: 4, Enabled: true, Sort: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(2), gotBody["categoryId"])

	page, err := c.PropertyValuePage(ctx, PageQuery{}, PropertyValueFilter{PropertyID: 4, Name: "  "})
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, "Red", page.List[0].Name)
}

func TestClient_ForwardsRequestID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rid-42", r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, map[string]any{"code": 200, "data": []any{}})
	})

	_, err := c.BrandSimpleList(WithRequestID(context.Background(), "rid-42"))
	require.NoError(t, err)
}

func TestClient_MutationsIgnoreResultShape(t *testing.T) {
	for name, data := range map[string]any{
		"bare true":    true,
		"success body": map[string]any{"success": true},
		"no data":      nil,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{"code": 200, "data": data})
			})
			ctx := context.Background()

			require.NoError(t, c.DeleteCategory(ctx, 999))
			require.NoError(t, c.UpdateBrand(ctx, BrandSaveReq{ID: 1, Name: "Acme"}))
			require.NoError(t, c.UpdateSpuStatus(ctx, 3, 1))
			require.NoError(t, c.Logout(ctx))
		})
	}
}
