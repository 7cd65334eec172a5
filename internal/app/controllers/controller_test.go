package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"realtrust-http-service/internal/app/middleware"
	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/infrastructure/config"
)

// envelope mirrors the unified response for decoding in assertions.
type envelope struct {
	Code    int             `json:"code"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestRouter builds a router with the real route layout over an isolated
// in-memory database. Rate limiting and response caching are left out so
// assertions stay deterministic.
func newTestRouter(t *testing.T) (*gin.Engine, *container.ServiceContainer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Lead{},
		&models.Project{},
		&models.Client{},
		&models.Subscriber{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		JWTSecretKey:      "test-secret-key",
		JWTExpireHours:    168,
		UploadDir:         t.TempDir(),
		MaxUploadSizeMB:   5,
		UploadURLBasePath: "/uploads",
	}
	c := container.NewServiceContainer(db, cfg, nil)
	jwtService := c.GetService("jwt").(services.InterfaceJWTService)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/admin/register", HandleAdminFunc(c, "register"))
	api.POST("/admin/login", HandleAdminFunc(c, "login"))
	api.POST("/leads", HandleLeadFunc(c, "createLead"))
	api.GET("/projects", HandleProjectFunc(c, "getProjects"))
	api.GET("/clients", HandleClientFunc(c, "getClients"))
	api.POST("/subscribers", HandleSubscriberFunc(c, "subscribe"))

	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin(jwtService))
	auth.GET("/admin/verify", HandleAdminFunc(c, "verify"))
	auth.GET("/admin/leads/stats", HandleLeadFunc(c, "getLeadStats"))
	auth.GET("/admin/leads/export", HandleLeadFunc(c, "exportLeads"))
	auth.GET("/admin/leads", HandleLeadFunc(c, "getLeads"))
	auth.GET("/admin/leads/:id", HandleLeadFunc(c, "getLead"))
	auth.PUT("/admin/leads/:id", HandleLeadFunc(c, "updateLead"))
	auth.DELETE("/admin/leads/:id", HandleLeadFunc(c, "deleteLead"))
	auth.GET("/admin/analytics", HandleLeadFunc(c, "getAnalytics"))
	auth.GET("/admin/subscribers", HandleSubscriberFunc(c, "getSubscribers"))
	auth.DELETE("/admin/subscribers/:id", HandleSubscriberFunc(c, "deleteSubscriber"))
	auth.POST("/projects", HandleProjectFunc(c, "createProject"))
	auth.PUT("/projects/:id", HandleProjectFunc(c, "updateProject"))
	auth.DELETE("/projects/:id", HandleProjectFunc(c, "deleteProject"))
	auth.POST("/clients", HandleClientFunc(c, "createClient"))
	auth.PUT("/clients/:id", HandleClientFunc(c, "updateClient"))
	auth.DELETE("/clients/:id", HandleClientFunc(c, "deleteClient"))
	auth.POST("/upload/project", HandleUploadFunc(c, "uploadProjectImage"))
	auth.POST("/upload/client", HandleUploadFunc(c, "uploadClientImage"))

	return r, c
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if ct := w.Header().Get("Content-Type"); strings.Contains(ct, "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: invalid JSON envelope: %v\n%s", method, path, err, w.Body.String())
		}
	}
	return w, env
}

// registerAdmin creates an admin through the API and returns its token.
func registerAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/register",
		`{"name":"Admin","email":"admin@example.com","password":"secret1"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed with %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("register returned no token: %s", string(env.Data))
	}
	return data.Token
}
