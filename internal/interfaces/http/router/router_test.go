package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouter_VersionedPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	group := NewDomainGroup("listing", "/properties")
	group.GET("/home", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	NewRouter(engine, WithAPIVersion("v1")).Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/home", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties/home", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDomainGroup_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	var middlewareRan bool
	group := NewDomainGroup("listing", "/properties")
	group.Use(func(c *gin.Context) {
		middlewareRan = true
		c.Next()
	})
	group.DELETE("/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/properties/abc", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, middlewareRan)
	assert.Equal(t, "listing", group.Name())
	assert.Equal(t, "/properties", group.Prefix())
}
