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
	"atlasorg.app/console/internal/store"
)

var _ = Describe("OrganizationHandler", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
		orgSvc  *mockOrganizationService
		user    *model.User
		session *model.Session
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		authSvc = &mockAuthService{}
		orgSvc = &mockOrganizationService{}

		user = &model.User{ID: 100, Username: "jane", IsActive: true}
		session = &model.Session{ID: 555, UserID: 100, ExpiresAt: time.Now().Add(time.Hour)}
		authSvc.validateSessionFn = func(_ context.Context, sessionID int64) (*model.User, *model.Session, error) {
			if sessionID == session.ID {
				return user, session, nil
			}
			return nil, nil, service.ErrSessionExpired
		}

		router = gin.New()
		h := handler.NewOrganizationHandler(orgSvc)
		group := router.Group("/organizations")
		group.Use(middleware.RequireAuth(authSvc))
		group.POST("", h.Create)
		group.DELETE("/:slug", middleware.RequireSudo(), h.Delete)
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

	Describe("Create", func() {
		It("creates an organization for the authenticated user", func() {
			var creatorID int64
			orgSvc.createFn = func(_ context.Context, name string, _ *string, creator int64) (*model.Organization, error) {
				creatorID = creator
				return &model.Organization{ID: 7, Name: name, Slug: "acme-corp", Status: model.OrgStatusActive}, nil
			}

			body, _ := json.Marshal(map[string]string{"name": "Acme Corp"})
			w := authed(http.MethodPost, "/organizations", body)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(creatorID).To(Equal(user.ID))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["slug"]).To(Equal("acme-corp"))
		})

		It("returns 400 without a name", func() {
			w := authed(http.MethodPost, "/organizations", []byte(`{}`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Delete", func() {
		It("requires a fresh elevation", func() {
			w := authed(http.MethodDelete, "/organizations/acme", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("accepts the deletion request", func() {
			elevate()
			var requested string
			orgSvc.requestDeletionByFn = func(_ context.Context, slug string, actor *model.User) error {
				requested = slug
				Expect(actor.ID).To(Equal(user.ID))
				return nil
			}

			w := authed(http.MethodDelete, "/organizations/acme", nil)
			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(requested).To(Equal("acme"))
		})

		It("returns 404 for an unknown organization", func() {
			elevate()
			orgSvc.requestDeletionByFn = func(_ context.Context, _ string, _ *model.User) error {
				return store.ErrNotFound
			}

			w := authed(http.MethodDelete, "/organizations/missing", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 403 for a non-owner", func() {
			elevate()
			orgSvc.requestDeletionByFn = func(_ context.Context, _ string, _ *model.User) error {
				return service.ErrForbidden
			}

			w := authed(http.MethodDelete, "/organizations/acme", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})
})
