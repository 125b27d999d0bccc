package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/http/handlers"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/metrics"
	"pehlione.com/catalogadmin/internal/modules/auth"
	"pehlione.com/catalogadmin/internal/modules/catalog"
	"pehlione.com/catalogadmin/internal/modules/spuform"
	"pehlione.com/catalogadmin/internal/storage"
)

type Deps struct {
	Logger  *slog.Logger
	Auth    *auth.Service
	Catalog *catalog.Service
	Forms   *spuform.Service
	Storage storage.Storage
	// LocalUploads is served statically when the local storage driver is on.
	LocalUploads *storage.Local
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Metrics(),
		middleware.ErrorHandler(d.Logger),
		middleware.Recovery(d.Logger),
	)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if d.LocalUploads != nil {
		r.Static(d.LocalUploads.URLPrefix, d.LocalUploads.BaseDir)
	}

	api := r.Group("/api")

	authH := handlers.NewAuthHandler(d.Auth)
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/logout", authH.Logout)

	sec := api.Group("", middleware.RequireSession(d.Auth))
	sec.GET("/auth/me", authH.Me)

	cat := handlers.NewCatalogHandler(d.Catalog)
	sec.GET("/brands", cat.ListBrands)
	sec.GET("/brands/options", cat.BrandOptions)
	sec.POST("/brands", cat.CreateBrand)
	sec.PUT("/brands/:id", cat.UpdateBrand)
	sec.DELETE("/brands/:id", cat.DeleteBrand)

	sec.GET("/categories", cat.ListCategories)
	sec.POST("/categories", cat.CreateCategory)
	sec.PUT("/categories/sort", cat.SortCategories)
	sec.PUT("/categories/:id", cat.UpdateCategory)
	sec.DELETE("/categories/:id", cat.DeleteCategory)
	sec.GET("/categories/:id/bindings", cat.Bindings)
	sec.PUT("/categories/:id/bindings", cat.SaveBindings)

	sec.GET("/properties", cat.ListProperties)
	sec.GET("/properties/options", cat.PropertyOptions)
	sec.POST("/properties", cat.CreateProperty)
	sec.PUT("/properties/:id", cat.UpdateProperty)
	sec.DELETE("/properties/:id", cat.DeleteProperty)

	sec.GET("/property-values", cat.ListPropertyValues)
	sec.GET("/property-values/options", cat.PropertyValueOptions)
	sec.POST("/property-values", cat.CreatePropertyValue)
	sec.PUT("/property-values/:id", cat.UpdatePropertyValue)
	sec.DELETE("/property-values/:id", cat.DeletePropertyValue)

	sec.GET("/spus", cat.ListSpus)
	sec.GET("/spus/count", cat.SpuCount)
	sec.PUT("/spus/:id/status", cat.SetSpuStatus)
	sec.DELETE("/spus/:id", cat.DeleteSpu)

	sec.GET("/comments", cat.ListComments)
	sec.POST("/comments", cat.CreateComment)
	sec.PUT("/comments/:id/visible", cat.SetCommentVisible)
	sec.PUT("/comments/:id/reply", cat.ReplyComment)
	sec.GET("/favorites", cat.ListFavorites)
	sec.GET("/browse-history", cat.ListBrowseHistory)

	drafts := handlers.NewDraftsHandler(d.Forms)
	sec.POST("/drafts", drafts.Open)
	sec.GET("/drafts/:id", drafts.Show)
	sec.DELETE("/drafts/:id", drafts.Discard)
	sec.POST("/drafts/:id/actions", drafts.Apply)
	sec.POST("/drafts/:id/category", drafts.ChangeCategory)
	sec.POST("/drafts/:id/validate", drafts.Validate)
	sec.POST("/drafts/:id/submit", drafts.Submit)
	sec.GET("/drafts/:id/skus.xlsx", drafts.ExportSKUs)

	up := handlers.NewUploadsHandler(d.Storage)
	sec.POST("/uploads", up.Upload)
	sec.POST("/uploads/resolve", up.Resolve)

	return r
}
