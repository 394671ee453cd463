//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"travel-deals/internal/handler/api"
	resdto "travel-deals/internal/handler/dto/response"
	"travel-deals/internal/pkg/cookie"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/queries"
	"travel-deals/tests/common/builder"
	"travel-deals/tests/common/httptest"
	"travel-deals/tests/common/testutil"
	commandsmock "travel-deals/tests/mock/commands"
	queriesmock "travel-deals/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testMaxUploadBytes = 2 << 20

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAdmin   *commandsmock.MockAdminCommands
	mockAuth    *commandsmock.MockAuthCommands
	mockCatalog *queriesmock.MockCatalogQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)

	h := api.NewAdminHandler(s.mockAdmin, s.mockAuth, s.mockCatalog, testSessionSettings(), testMaxUploadBytes)
	s.router.POST("/admin/login", h.Login)
	s.router.POST("/admin/logout", h.Logout)
	s.router.GET("/admin/deals", h.ListDeals)
	s.router.GET("/admin/deals/:id", h.GetDeal)
	s.router.POST("/admin/deals", h.CreateDeal)
	s.router.PUT("/admin/deals/:id", h.UpdateDeal)
	s.router.POST("/admin/deals/:id/toggle", h.ToggleDeal)
	s.router.POST("/admin/deals/:id/options", h.AddOption)
	s.router.PUT("/admin/options/:id", h.UpdateOption)
	s.router.POST("/admin/deals/:id/image", h.UploadImage)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestLogin() {
	body := map[string]any{"password": "open-sesame"}

	s.Run("success: sets the admin cookie", func() {
		s.mockAuth.EXPECT().AdminLogin(gomock.Any(), "open-sesame").Return("admin.jwt", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/login", body, "")

		var response resdto.AdminSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin.jwt", response.AdminToken)
		c := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("admin.jwt", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: maps login errors", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no admin password configured", commandsError: commands.ErrAdminLoginUnavailable, expectedStatus: http.StatusNotFound, expectedMsg: "Admin login is not available"},
			{name: "wrong password", commandsError: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid admin password"},
			{name: "token signing failed", commandsError: commands.ErrTokenGeneration, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().AdminLogin(gomock.Any(), gomock.Any()).Return("", tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/login", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.AdminTokenCookieName))
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	httptest.AssertCookieCleared(s.T(), rec, cookie.AdminTokenCookieName)
}

func (s *AdminHandlerTestSuite) TestReadDeals() {
	b := builder.NewDealBuilder().AsInactiveDeal()

	s.Run("success: list includes inactive deals", func() {
		s.mockCatalog.EXPECT().AdminListDeals(gomock.Any()).
			Return([]queries.AdminDealView{*b.BuildAdminView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/deals", nil, "")

		var response []resdto.AdminDealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.False(response[0].IsActive)
	})

	s.Run("success: get by id", func() {
		view := b.BuildAdminView()
		s.mockCatalog.EXPECT().AdminGetDeal(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/deals/"+view.ID.String(), nil, "")

		var response resdto.AdminDealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockCatalog.EXPECT().AdminGetDeal(gomock.Any(), gomock.Any()).Return(nil, queries.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/deals/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/deals/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *AdminHandlerTestSuite) TestCreateDeal() {
	dto := builder.NewDealBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 with id and slug", func() {
		dealID := uuid.New()
		s.mockAdmin.EXPECT().CreateDeal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.DealInput) (*commands.CreateDealResult, error) {
				s.Equal(dto.Title, in.Title)
				s.True(in.Active, "absent is_active means active")
				s.Require().NotNil(in.PriceCents)
				s.Equal(int64(4500), *in.PriceCents)
				return &commands.CreateDealResult{DealID: dealID, Slug: "harbour-hotel-weekend-2"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals", dto, "")

		var response resdto.CreatedDealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(dealID, response.ID)
		s.Equal("harbour-hotel-weekend-2", response.Slug)
	})

	s.Run("error: 400 on validation failures", func() {
		cases := []testCaseAuth{
			{name: "missing title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
			{name: "missing category", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
			{name: "unknown category", mutate: testutil.Field("category", "spa"), expectCode: http.StatusBadRequest},
			{name: "zero price", mutate: testutil.Field("price_cents", 0), expectCode: http.StatusBadRequest},
			{name: "rating above five", mutate: testutil.Field("rating_avg", 5.5), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), dto, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Missing fields")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestUpdateDeal() {
	dealID := uuid.New()

	s.Run("success: 204 and only provided fields are patched", func() {
		s.mockAdmin.EXPECT().UpdateDeal(gomock.Any(), dealID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p commands.DealPatch) error {
				s.Require().NotNil(p.Title)
				s.Equal("New title", *p.Title)
				s.Nil(p.Category)
				s.Nil(p.Active)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/deals/"+dealID.String(),
			map[string]any{"title": "New title"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "deal missing", commandsError: commands.ErrDealNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Deal not found"},
			{name: "invalid values", commandsError: errs.Mark(errors.New("bad title"), commands.ErrInvalidRequest), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "store failure", commandsError: errors.New("db"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAdmin.EXPECT().UpdateDeal(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/deals/"+dealID.String(),
					map[string]any{"teaser": "x"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestToggleDeal() {
	dealID := uuid.New()

	s.Run("success: returns the new state", func() {
		s.mockAdmin.EXPECT().ToggleDeal(gomock.Any(), dealID).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals/"+dealID.String()+"/toggle", nil, "")

		var response resdto.ToggleDealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsActive)
	})

	s.Run("error: 404 for unknown deal", func() {
		s.mockAdmin.EXPECT().ToggleDeal(gomock.Any(), dealID).Return(false, commands.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals/"+dealID.String()+"/toggle", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

func (s *AdminHandlerTestSuite) TestOptions() {
	dealID := uuid.New()
	optionID := uuid.New()

	s.Run("success: add option returns 201", func() {
		s.mockAdmin.EXPECT().AddOption(gomock.Any(), dealID, commands.OptionInput{Name: "Suite", PriceCents: 12000}).
			Return(optionID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals/"+dealID.String()+"/options",
			map[string]any{"name": "Suite", "price_cents": 12000}, "")

		var response resdto.CreatedOptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(optionID, response.ID)
	})

	s.Run("error: add option without price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals/"+dealID.String()+"/options",
			map[string]any{"name": "Suite"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("success: update option returns 204", func() {
		s.mockAdmin.EXPECT().UpdateOption(gomock.Any(), optionID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p commands.OptionPatch) error {
				s.Require().NotNil(p.Status)
				s.Equal("inactive", *p.Status)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/options/"+optionID.String(),
			map[string]any{"status": "inactive"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: update unknown option", func() {
		s.mockAdmin.EXPECT().UpdateOption(gomock.Any(), optionID, gomock.Any()).Return(commands.ErrOptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/options/"+optionID.String(),
			map[string]any{"name": "Deluxe"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Option not found")
	})

	s.Run("error: unknown option status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/options/"+optionID.String(),
			map[string]any{"status": "archived"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func multipartImage(s *AdminHandlerTestSuite, field, filename string, data []byte) ([]byte, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())
	return buf.Bytes(), w.FormDataContentType()
}

func (s *AdminHandlerTestSuite) TestUploadImage() {
	dealID := uuid.New()
	url := "/admin/deals/" + dealID.String() + "/image"
	png := []byte("\x89PNG\r\n\x1a\n0000")

	s.Run("success: returns stored url", func() {
		body, contentType := multipartImage(s, "image_file", "room.png", png)
		s.mockAdmin.EXPECT().UploadDealImage(gomock.Any(), dealID, "room.png", png).
			Return("/uploads/deals/"+dealID.String()+".png", nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{"Content-Type": contentType})

		var response resdto.ImageUploadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("/uploads/deals/"+dealID.String()+".png", response.ImageURL)
	})

	s.Run("error: wrong form field", func() {
		body, contentType := multipartImage(s, "file", "room.png", png)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{"Content-Type": contentType})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Image upload failed")
	})

	s.Run("error: rejected image type", func() {
		body, contentType := multipartImage(s, "image_file", "notes.txt", []byte("plain text"))
		s.mockAdmin.EXPECT().UploadDealImage(gomock.Any(), dealID, "notes.txt", gomock.Any()).
			Return("", commands.ErrInvalidImage).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{"Content-Type": contentType})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Only JPEG, PNG or WebP")
	})
}
