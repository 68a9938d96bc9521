//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkhub/internal/domain/client"
	"parkhub/internal/handler/api"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/httptest"
	commandsmock "parkhub/tests/mock/commands"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SectorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSectorCommands
	mockQueries  *queriesmock.MockSectorQueries
	handler      *api.SectorHandler
}

func (s *SectorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSectorCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSectorQueries(s.mockCtrl)
	s.handler = api.NewSectorHandler(s.mockCommands, s.mockQueries)

	staffMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("client_id", uuid.New())
		c.Set("client_role", client.RoleStaff)
		c.Next()
	}

	s.router.GET("/parkings/:id/sectors", staffMiddleware, s.handler.ListSectors)
	s.router.POST("/sectors/:id/activate", staffMiddleware, s.handler.ActivateSector)
	s.router.POST("/sectors/:id/deactivate", staffMiddleware, s.handler.DeactivateSector)
}

func (s *SectorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSectorHandlerSuite(t *testing.T) {
	suite.Run(t, new(SectorHandlerTestSuite))
}

func (s *SectorHandlerTestSuite) TestListSectors() {
	parkingID := uuid.New()

	s.Run("success: returns availability per sector", func() {
		views := []*queries.SectorAvailabilityView{
			{ID: uuid.New(), ParkingID: parkingID, Name: "A", Type: "covered", MaxPlaces: 10, OccupiedPlaces: 4, FreePlaces: 6, Active: true},
			{ID: uuid.New(), ParkingID: parkingID, Name: "B", Type: "underground", MaxPlaces: 20, OccupiedPlaces: 20, FreePlaces: 0, Active: true},
		}
		s.mockQueries.EXPECT().ListByParking(gomock.Any(), parkingID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parkings/"+parkingID.String()+"/sectors", nil, "token")

		var body []resdto.SectorAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(6, body[0].FreePlaces)
		s.Equal(0, body[1].FreePlaces)
	})

	s.Run("error: 400 on malformed parking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parkings/nope/sectors", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid parking ID format")
	})
}

func (s *SectorHandlerTestSuite) TestActivateSector() {
	sectorID := uuid.New()
	url := "/sectors/" + sectorID.String() + "/activate"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), sectorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already active", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), sectorID).
			Return(commands.ErrSectorAlreadyActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already active")
	})
}

func (s *SectorHandlerTestSuite) TestDeactivateSector() {
	sectorID := uuid.New()
	url := "/sectors/" + sectorID.String() + "/deactivate"

	s.Run("success: immediate deactivation", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), sectorID, gomock.Nil()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: scheduled deactivation", func() {
		when := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), sectorID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, got *time.Time) error {
				s.NotNil(got)
				s.True(when.Equal(*got))
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"when": when.Format(time.RFC3339)}, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while occupied", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), sectorID, gomock.Nil()).
			Return(commands.ErrSectorStillOccupied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "open reservations")
	})

	s.Run("error: 400 when the schedule is not in the future", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), sectorID, gomock.Any()).
			Return(commands.ErrDeactivationNotFuture).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"when": time.Now().Add(-time.Hour).Format(time.RFC3339)}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "future")
	})
}
