package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gesscam/community-portal/internal/bootstrap"
	"github.com/gesscam/community-portal/internal/middleware"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, bootstrap.Migrate(db))
	require.NoError(t, bootstrap.Seed(db))

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	const secret = "test-secret"
	authService := service.NewAuthService(userRepo, nil, secret, time.Hour, time.Second)
	categoryService := service.NewCategoryService(categoryRepo)
	newsService := service.NewNewsService(newsRepo, categoryRepo, categoryService)
	galleryService := service.NewGalleryService(galleryRepo, categoryRepo, categoryService)
	commentService := service.NewCommentService(commentRepo, newsRepo, userRepo, nil, time.Second)
	execService := service.NewExecService(repository.NewExecRepository(db))
	pageService := service.NewPageService(repository.NewPageRepository(db))
	aboutService := service.NewAboutService(repository.NewAboutRepository(db))
	homeService := service.NewHomeService(repository.NewHomeRepository(db))

	router := gin.New()
	RegisterRoutes(router, Handlers{
		Auth:    NewAuthHandler(authService, false),
		News:    NewNewsHandler(newsService, categoryService),
		Gallery: NewGalleryHandler(galleryService, categoryService),
		Comment: NewCommentHandler(commentService),
		Exec:    NewExecHandler(execService),
		Page:    NewPageHandler(pageService),
		About:   NewAboutHandler(aboutService),
		Home:    NewHomeHandler(homeService),
	}, middleware.NewAuthMiddleware(userRepo, secret))

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			require.True(t, c.HttpOnly)
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func login(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": email, "password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestRegisterLoginAndAdminGate(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "binta",
		"email":    "binta@example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	cookie := login(t, router, "binta@example.com", "secret123")

	// /me reflects the session.
	w = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, model.RoleUser, me.User.Role)

	// Regular users cannot author news.
	w = doJSON(t, router, http.MethodPost, "/api/news", gin.H{
		"title": "t", "content": "c", "image": "i",
	}, cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Anonymous callers are rejected earlier still.
	w = doJSON(t, router, http.MethodPost, "/api/news", gin.H{
		"title": "t", "content": "c", "image": "i",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminCreatesNewsWithCategories(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, "admin@gesscam.org", "admin123")

	var category model.Category
	require.NoError(t, db.First(&category, "slug = ?", "sports").Error)

	w := doJSON(t, router, http.MethodPost, "/api/news", gin.H{
		"title":       "Season Opener",
		"content":     "<p>Kickoff this Saturday.</p>",
		"image":       "https://example.com/opener.jpg",
		"categoryIds": []string{category.ID.String()},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID         string `json:"id"`
		Categories []struct {
			Slug string `json:"slug"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Categories, 1)
	assert.Equal(t, "sports", created.Categories[0].Slug)

	// The public list now includes the post and its category count.
	w = doJSON(t, router, http.MethodGet, "/api/news", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Posts      []json.RawMessage `json:"posts"`
		Categories []struct {
			Slug  string `json:"slug"`
			Count int64  `json:"count"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Posts, 1)
	for _, c := range list.Categories {
		if c.Slug == "sports" {
			assert.Equal(t, int64(1), c.Count)
		}
	}
}

func TestCategoryPageNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/news/categories/does-not-exist", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Category not found"}`, w.Body.String())
}

func TestCommentLifecycle(t *testing.T) {
	router, db := newTestServer(t)
	adminCookie := login(t, router, "admin@gesscam.org", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/news", gin.H{
		"title": "Post", "content": "c", "image": "i",
	}, adminCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	// A registered user comments.
	w = doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "binta", "email": "binta@example.com", "password": "secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	userCookie := login(t, router, "binta@example.com", "secret123")

	w = doJSON(t, router, http.MethodPost, "/api/news/"+post.ID+"/comments", gin.H{
		"content": "See you there!",
	}, userCookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var comment struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	assert.Equal(t, "binta", comment.Username)

	// Comments are embedded in the post detail.
	w = doJSON(t, router, http.MethodGet, "/api/news/"+post.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Comments []json.RawMessage `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Len(t, detail.Comments, 1)

	// Admin moderates it away.
	w = doJSON(t, router, http.MethodDelete, "/api/news/"+post.ID+"/comments/"+comment.ID, nil, adminCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPageUpsertFlow(t *testing.T) {
	router, _ := newTestServer(t)
	adminCookie := login(t, router, "admin@gesscam.org", "admin123")

	// Seeded pages are readable without auth.
	w := doJSON(t, router, http.MethodGet, "/api/admin/pages/home", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/admin/pages/home", gin.H{
		"title":     "New Home Title",
		"heroImage": "hero.jpg",
		"content":   "<p>Updated</p>",
	}, adminCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/admin/pages/home", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "New Home Title", page.Title)

	w = doJSON(t, router, http.MethodGet, "/api/admin/pages/missing-page", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := newTestServer(t)
	cookie := login(t, router, "admin@gesscam.org", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			assert.LessOrEqual(t, c.MaxAge, 0)
		}
	}
}
