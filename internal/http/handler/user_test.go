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

var _ = Describe("UserHandler", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
		userSvc *mockUserService
		user    *model.User
		session *model.Session
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		authSvc = &mockAuthService{}
		userSvc = &mockUserService{}

		user = &model.User{ID: 100, Name: "Jane", Username: "jane", Email: "jane@example.com", IsActive: true}
		session = &model.Session{ID: 555, UserID: 100, ExpiresAt: time.Now().Add(time.Hour)}
		authSvc.validateSessionFn = func(_ context.Context, sessionID int64) (*model.User, *model.Session, error) {
			if sessionID == session.ID {
				return user, session, nil
			}
			return nil, nil, service.ErrSessionExpired
		}

		router = gin.New()
		h := handler.NewUserHandler(userSvc)
		group := router.Group("/users")
		group.Use(middleware.RequireAuth(authSvc))
		group.GET("/:id", h.GetByID)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", middleware.RequireSudo(), h.Close)
	})

	authed := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "console_session", Value: "555"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	elevate := func() {
		until := time.Now().Add(15 * time.Minute)
		session.SudoExpiresAt = &until
	}

	Describe("GetByID", func() {
		It("returns the profile for /users/me", func() {
			w := authed(http.MethodGet, "/users/me", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["username"]).To(Equal("jane"))
			Expect(resp).NotTo(HaveKey("identities"))
		})

		It("returns identities when the service provides them", func() {
			userSvc.getFn = func(_ context.Context, viewer *model.User, _ int64) (*service.UserDetails, error) {
				return &service.UserDetails{
					User:       viewer,
					Identities: []model.Identity{{ID: 1, Provider: "workos", ExternalID: "wos_123"}},
				}, nil
			}

			w := authed(http.MethodGet, "/users/200", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["identities"]).To(HaveLen(1))
		})

		It("returns 403 when the service forbids the view", func() {
			userSvc.getFn = func(_ context.Context, _ *model.User, _ int64) (*service.UserDetails, error) {
				return nil, service.ErrForbidden
			}

			w := authed(http.MethodGet, "/users/200", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 404 for an unknown user", func() {
			userSvc.getFn = func(_ context.Context, _ *model.User, _ int64) (*service.UserDetails, error) {
				return nil, service.ErrUserNotFound
			}

			w := authed(http.MethodGet, "/users/200", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed id", func() {
			w := authed(http.MethodGet, "/users/not-a-number", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 401 without a session", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Update", func() {
		It("passes the partial update through and returns the user", func() {
			var captured service.ProfileUpdate
			userSvc.updateProfileFn = func(_ context.Context, actor *model.User, _ int64, update service.ProfileUpdate) (*model.User, error) {
				captured = update
				actor.Name = *update.Name
				return actor, nil
			}

			body, _ := json.Marshal(map[string]any{
				"name":    "Jane Q. Doe",
				"options": map[string]any{"seen_release_broadcast": true},
			})
			w := authed(http.MethodPut, "/users/me", body)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(captured.Name).NotTo(BeNil())
			Expect(*captured.Name).To(Equal("Jane Q. Doe"))
			Expect(captured.Username).To(BeNil())
			Expect(captured.SeenReleaseBroadcast).NotTo(BeNil())
			Expect(*captured.SeenReleaseBroadcast).To(BeTrue())
		})

		It("renders validation failures as a field-error map", func() {
			userSvc.updateProfileFn = func(_ context.Context, _ *model.User, _ int64, _ service.ProfileUpdate) (*model.User, error) {
				return nil, service.NewValidationError("username", "That username is already in use.")
			}

			body, _ := json.Marshal(map[string]string{"username": "taken"})
			w := authed(http.MethodPut, "/users/me", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			var resp struct {
				Errors map[string][]string `json:"errors"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Errors).To(HaveKeyWithValue("username", ConsistOf("That username is already in use.")))
		})

		It("renders binding failures as a field-error map", func() {
			called := false
			userSvc.updateProfileFn = func(_ context.Context, _ *model.User, _ int64, _ service.ProfileUpdate) (*model.User, error) {
				called = true
				return nil, nil
			}

			body, _ := json.Marshal(map[string]string{"email": "not-an-email"})
			w := authed(http.MethodPut, "/users/me", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
			var resp struct {
				Errors map[string][]string `json:"errors"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Errors).To(HaveKeyWithValue("email", ConsistOf("Enter a valid email address.")))
		})

		It("returns 400 on a malformed body", func() {
			w := authed(http.MethodPut, "/users/me", []byte(`{`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveKey("error"))
			Expect(resp).NotTo(HaveKey("errors"))
		})

		It("returns 403 when editing another user without permission", func() {
			userSvc.updateProfileFn = func(_ context.Context, _ *model.User, _ int64, _ service.ProfileUpdate) (*model.User, error) {
				return nil, service.ErrForbidden
			}

			body, _ := json.Marshal(map[string]string{"name": "X"})
			w := authed(http.MethodPut, "/users/200", body)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("Close", func() {
		It("rejects a session without a fresh elevation", func() {
			w := authed(http.MethodDelete, "/users/me", nil)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["code"]).To(Equal("sudo_required"))
		})

		It("rejects an expired elevation", func() {
			past := time.Now().Add(-time.Minute)
			session.SudoExpiresAt = &past

			w := authed(http.MethodDelete, "/users/me", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("closes the account and returns 204", func() {
			elevate()
			var captured service.CloseAccountInput
			userSvc.closeAccountFn = func(_ context.Context, in service.CloseAccountInput) error {
				captured = in
				return nil
			}

			body, _ := json.Marshal(map[string]any{"organizations": []string{"acme", "widgets"}})
			w := authed(http.MethodDelete, "/users/me", body)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())
			Expect(captured.User.ID).To(Equal(user.ID))
			Expect(captured.RequestedSlugs).To(Equal([]string{"acme", "widgets"}))
			Expect(captured.ActorIP).NotTo(BeEmpty())
		})

		It("accepts an empty body", func() {
			elevate()
			w := authed(http.MethodDelete, "/users/me", nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("refuses to close somebody else's account", func() {
			elevate()
			w := authed(http.MethodDelete, "/users/200", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 500 when the pipeline fails outright", func() {
			elevate()
			userSvc.closeAccountFn = func(_ context.Context, _ service.CloseAccountInput) error {
				return context.DeadlineExceeded
			}

			w := authed(http.MethodDelete, "/users/me", nil)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
