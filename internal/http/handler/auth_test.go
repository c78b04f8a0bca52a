package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"atlasorg.app/console/internal/http/handler"
	"atlasorg.app/console/internal/http/middleware"
	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
		user    *model.User
		session *model.Session
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		authSvc = &mockAuthService{}

		user = &model.User{ID: 100, Name: "Jane", Username: "jane", Email: "jane@example.com", IsActive: true}
		session = &model.Session{ID: 555, UserID: 100, ExpiresAt: time.Now().Add(time.Hour)}
		authSvc.validateSessionFn = func(_ context.Context, sessionID int64) (*model.User, *model.Session, error) {
			if sessionID == session.ID {
				return user, session, nil
			}
			return nil, nil, service.ErrSessionExpired
		}

		router = gin.New()
		h := handler.NewAuthHandler(authSvc, "http://dashboard.local", false)
		requireAuth := middleware.RequireAuth(authSvc)
		router.GET("/auth/me", requireAuth, h.Me)
		router.POST("/auth/sudo", requireAuth, h.Sudo)
		router.POST("/auth/logout", requireAuth, h.Logout)
	})

	authed := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "console_session", Value: "555"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Me", func() {
		It("returns the authenticated user", func() {
			w := authed(http.MethodGet, "/auth/me", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["email"]).To(Equal("jane@example.com"))
		})

		It("returns 401 for an unknown session", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.AddCookie(&http.Cookie{Name: "console_session", Value: "999"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Sudo", func() {
		It("elevates the session on a correct password", func() {
			authSvc.sudoFn = func(_ context.Context, _ *model.User, s *model.Session, password string) error {
				Expect(password).To(Equal("hunter2"))
				until := time.Now().Add(15 * time.Minute)
				s.SudoExpiresAt = &until
				return nil
			}

			body, _ := json.Marshal(map[string]string{"password": "hunter2"})
			w := authed(http.MethodPost, "/auth/sudo", body)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["sudo_expires_at"]).NotTo(BeNil())
		})

		It("returns 401 on a wrong password", func() {
			authSvc.sudoFn = func(_ context.Context, _ *model.User, _ *model.Session, _ string) error {
				return service.ErrInvalidPassword
			}

			body, _ := json.Marshal(map[string]string{"password": "wrong"})
			w := authed(http.MethodPost, "/auth/sudo", body)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 without a password", func() {
			w := authed(http.MethodPost, "/auth/sudo", []byte(`{}`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Logout", func() {
		It("deletes the session and clears the cookie", func() {
			var deleted int64
			authSvc.logoutFn = func(_ context.Context, sessionID int64) error {
				deleted = sessionID
				return nil
			}

			w := authed(http.MethodPost, "/auth/logout", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(deleted).To(Equal(session.ID))

			cookies := w.Result().Cookies()
			Expect(cookies).NotTo(BeEmpty())
			Expect(cookies[0].Name).To(Equal("console_session"))
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
		})
	})
})
