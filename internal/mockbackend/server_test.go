package mockbackend

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/shared/apperr"
	"pehlione.com/catalogadmin/internal/tokenstore"
)

func newClient(t *testing.T) *backend.Client {
	t.Helper()
	srv := New("")
	ts := httptest.NewServer(srv.Handler("/api-admin"))
	t.Cleanup(ts.Close)
	srv.SetPublicURL(ts.URL)

	tokens := tokenstore.NewFile(filepath.Join(t.TempDir(), "tokens.json"))
	c := backend.NewClient(backend.Options{BaseURL: ts.URL + "/api-admin", Tokens: tokens})

	res, err := c.Login(context.Background(), backend.LoginReq{Username: "admin", Password: srv.Password})
	require.NoError(t, err)
	require.NoError(t, tokens.Save(context.Background(), tokenstore.Tokens{
		AccessToken: res.AccessToken, RefreshToken: res.RefreshToken,
	}))
	return c
}

func TestServer_MutationsSucceedThroughClient(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	require.NoError(t, c.UpdateBrand(ctx, backend.BrandSaveReq{ID: 1, Name: "Acme Co"}))
	require.NoError(t, c.UpdateCategorySort(ctx, []backend.CategorySortItem{{ID: 2, Sort: 30}}))
	require.NoError(t, c.DeleteCategory(ctx, 2))

	list, err := c.CategoryList(ctx, backend.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Apparel", list[0].Name)

	require.NoError(t, c.Logout(ctx))
}

func TestServer_BusinessErrorsAreRejected(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()
	_, err := c.CreateCategory(ctx, backend.CategorySaveReq{Name: "Kids", ParentID: 1})
	require.NoError(t, err)

	err = c.DeleteCategory(ctx, 1)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Rejected, ae.Kind)
	assert.Equal(t, 1003, ae.Code)
}
