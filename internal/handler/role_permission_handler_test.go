package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"leavehub/internal/middleware"
	"leavehub/internal/model"
	"leavehub/internal/repository"
	"leavehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testJWTSecret = []byte("test-secret")

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One shared in-memory database: a second pooled connection would see
	// a fresh empty one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.RolePermission{}, &model.AuditLog{}))

	repo := repository.NewRolePermissionRepository(db)
	audit := service.NewAuditService(db, zerolog.Nop())
	svc := service.NewRolePermissionService(repo, audit, nil, zerolog.Nop())

	router := gin.New()
	router.Use(middleware.Identity(testJWTSecret))
	NewRolePermissionHandler(svc).RegisterRoutes(router.Group(""))
	return router, db
}

func bearerToken(t *testing.T, username string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": username}).SignedString(testJWTSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedGrants(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&model.RolePermission{
			RoleID:       i % 5,
			PermissionID: fmt.Sprintf("PERM_%d", i),
			ValueYN:      true,
		}).Error)
	}
}

func TestListRejectsNegativePage(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/role-permission/all?page=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEmptyIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/role-permission/all", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListClampsLimitTo100(t *testing.T) {
	router, db := newTestRouter(t)
	seedGrants(t, db, 120)

	w := doJSON(router, http.MethodGet, "/role-permission/all?limit=150", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items := body["items"].([]interface{})
	assert.Len(t, items, 100)

	meta := body["meta"].(map[string]interface{})
	assert.EqualValues(t, 100, meta["itemsPerPage"])
	assert.EqualValues(t, 120, meta["totalItems"])
	assert.EqualValues(t, 2, meta["totalPages"])
	assert.EqualValues(t, 1, meta["currentPage"])
}

func TestListDefaultsPageAndLimit(t *testing.T) {
	router, db := newTestRouter(t)
	seedGrants(t, db, 15)

	w := doJSON(router, http.MethodGet, "/role-permission/all", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["items"].([]interface{}), 10)
}

func TestCreateStampsAuthenticatedActor(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/role-permission", bearerToken(t, "alice"), map[string]interface{}{
		"roleId":       5,
		"permissionId": "VIEW_REPORTS",
		"valueYn":      true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "alice", data["createdBy"])
	assert.Greater(t, data["id"].(float64), float64(0))

	// The created grant is the role's only one.
	w = doJSON(router, http.MethodGet, "/role-permission/role/5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "VIEW_REPORTS", items[0]["permissionId"])
	assert.Equal(t, true, items[0]["valueYn"])
}

func TestCreateAnonymousDefaultsToSystem(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/role-permission", "", map[string]interface{}{
		"roleId":       2,
		"permissionId": "EDIT_SHIFTS",
		"valueYn":      false,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "system", data["createdBy"])
}

func TestGetByIDNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/role-permission/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByRoleEmptyIsOK(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/role-permission/role/77", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestUpdateFailureEnvelopeShape(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPut, "/role-permission/0", "", map[string]interface{}{
		"roleId":       1,
		"permissionId": "X",
		"valueYn":      true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, http.StatusBadRequest, body["statusCode"])
	assert.Equal(t, "ID is required for update", body["message"])

	w = doJSON(router, http.MethodPut, "/role-permission/424242", "", map[string]interface{}{
		"roleId":       1,
		"permissionId": "X",
		"valueYn":      true,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	body = decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, http.StatusNotFound, body["statusCode"])
}

func TestUpdateSuccessEnvelope(t *testing.T) {
	router, db := newTestRouter(t)

	grant := model.RolePermission{RoleID: 1, PermissionID: "OLD", ValueYN: false, CreatedBy: "alice"}
	require.NoError(t, db.Create(&grant).Error)

	w := doJSON(router, http.MethodPut, fmt.Sprintf("/role-permission/%d", grant.ID), bearerToken(t, "bob"), map[string]interface{}{
		"roleId":       1,
		"permissionId": "NEW",
		"valueYn":      true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "NEW", data["permissionId"])
	assert.Equal(t, "alice", data["createdBy"])
	assert.Equal(t, "bob", data["updatedBy"])
}

func TestDeleteNotFoundUsesFixedMessage(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodDelete, "/role-permission/999999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Record not found", decodeBody(t, w)["message"])
}

func TestDeleteExistingGrant(t *testing.T) {
	router, db := newTestRouter(t)

	grant := model.RolePermission{RoleID: 1, PermissionID: "P", ValueYN: true}
	require.NoError(t, db.Create(&grant).Error)

	w := doJSON(router, http.MethodDelete, fmt.Sprintf("/role-permission/%d", grant.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/role-permission/%d", grant.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
