//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	applisting "github.com/imovelliz/backend/internal/application/listing"
	"github.com/imovelliz/backend/internal/domain/identity"
	"github.com/imovelliz/backend/internal/infrastructure/auth"
	"github.com/imovelliz/backend/internal/infrastructure/cache"
	"github.com/imovelliz/backend/internal/infrastructure/config"
	"github.com/imovelliz/backend/internal/infrastructure/event"
	"github.com/imovelliz/backend/internal/infrastructure/persistence"
	"github.com/imovelliz/backend/internal/infrastructure/storage"
	"github.com/imovelliz/backend/internal/interfaces/http/handler"
	"github.com/imovelliz/backend/internal/interfaces/http/middleware"
)

// apiEnv wires the full HTTP stack over a containerized PostgreSQL,
// local photo storage and real JWT validation.
type apiEnv struct {
	router *gin.Engine
	jwt    *auth.JWTService
	user   *identity.User
	testDB *TestDB
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB := NewTestDB(t)
	user := testDB.CreateTestUser("ana", "Ana Souza", "ana@example.com")

	store, err := storage.NewLocalPhotoStorage(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	propertyRepo := persistence.NewGormPropertyRepository(testDB.DB)
	photoRepo := persistence.NewGormPropertyPhotoRepository(testDB.DB)
	userRepo := persistence.NewGormUserRepository(testDB.DB)
	favoriteRepo := persistence.NewGormFavoriteRepository(testDB.DB)

	homeCache := cache.NewInMemoryHomeCache(time.Minute, zap.NewNop())
	bus := event.NewInMemoryEventBus(zap.NewNop())
	bus.Subscribe(applisting.NewHomeCacheInvalidator(homeCache))

	propertyService := applisting.NewPropertyService(
		propertyRepo, photoRepo, userRepo,
		applisting.NewUploadIntake(store), homeCache, bus,
	)
	favoriteService := applisting.NewFavoriteService(favoriteRepo, propertyRepo, userRepo)

	propertyHandler := handler.NewPropertyHandler(propertyService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "integration-secret-key-with-length",
		Issuer:     "imovelliz-test",
		Expiration: time.Hour,
	})

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/api/v1/properties/home"},
		Logger:     zap.NewNop(),
	}))

	api := router.Group("/api/v1")
	api.POST("/properties", propertyHandler.Create)
	api.POST("/properties/photo", propertyHandler.AddPhoto)
	api.GET("/properties", propertyHandler.List)
	api.GET("/properties/user", propertyHandler.ListMine)
	api.GET("/properties/home", propertyHandler.Home)
	api.GET("/properties/:id", propertyHandler.Get)
	api.PATCH("/properties/:id", propertyHandler.Update)
	api.DELETE("/properties/:id", propertyHandler.Delete)
	api.POST("/properties/favorites", favoriteHandler.Create)
	api.GET("/properties/favorites", favoriteHandler.List)
	api.DELETE("/properties/favorites/:propertyId", favoriteHandler.Remove)

	return &apiEnv{router: router, jwt: jwtService, user: user, testDB: testDB}
}

func (e *apiEnv) token(t *testing.T) string {
	t.Helper()
	token, err := e.jwt.GenerateToken(e.user.ID, e.user.Username)
	require.NoError(t, err)
	return token
}

func propertyForm(t *testing.T, title string, fileNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"title":   title,
		"address": "Rua das Flores, 123",
		"city":    "Curitiba",
		"state":   "PR",
		"type":    "house",
		"price":   "450000",
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range fileNames {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeData(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

// TestAPI_PropertyLifecycle exercises the full stack from HTTP to PostgreSQL
func TestAPI_PropertyLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := setupAPI(t)
	token := env.token(t)

	// Unauthenticated create is rejected
	body, contentType := propertyForm(t, "Casa sem Token")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Create with photos
	body, contentType = propertyForm(t, "Casa das Flores", "frente.jpg", "quintal.jpg")
	req = httptest.NewRequest(http.MethodPost, "/api/v1/properties", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w.Body)
	propertyID, _ := data["id"].(string)
	require.NotEmpty(t, propertyID)
	photos, _ := data["photos"].([]any)
	assert.Len(t, photos, 2)

	// Public home listing requires no token and includes the new property
	req = httptest.NewRequest(http.MethodGet, "/api/v1/properties/home", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Casa das Flores")

	// Favorite it
	favBody, err := json.Marshal(map[string]string{"property_id": propertyID})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/properties/favorites", bytes.NewReader(favBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Favoriting twice conflicts
	req = httptest.NewRequest(http.MethodPost, "/api/v1/properties/favorites", bytes.NewReader(favBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Remove the favorite
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/properties/favorites/"+propertyID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Delete the property
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/properties/"+propertyID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Gone afterwards
	req = httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+propertyID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
