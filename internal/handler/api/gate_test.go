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
	"parkhub/tests/common/httptest"
	commandsmock "parkhub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGateCommands
	handler      *api.GateHandler
	clientID     uuid.UUID
}

func (s *GateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGateCommands(s.mockCtrl)
	s.handler = api.NewGateHandler(s.mockCommands)
	s.clientID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("client_id", s.clientID)
		c.Set("client_role", client.RoleClient)
		c.Next()
	}

	s.router.POST("/gate/enter", authMiddleware, s.handler.Enter)
	s.router.POST("/gate/exit", authMiddleware, s.handler.Exit)
}

func (s *GateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGateHandlerSuite(t *testing.T) {
	suite.Run(t, new(GateHandlerTestSuite))
}

func (s *GateHandlerTestSuite) TestEnter() {
	url := "/gate/enter"
	reservationID := uuid.New()
	parkingID := uuid.New()
	reqBody := map[string]any{
		"reservation_id": reservationID.String(),
		"parking_id":     parkingID.String(),
	}
	ticket := &commands.EntryTicket{
		ReservationID: reservationID,
		SectorID:      uuid.New(),
		Code:          "ABCDEFGH23",
		EnteredAt:     time.Now().Truncate(time.Second),
	}

	s.Run("success: returns the one-time entry code", func() {
		s.mockCommands.EXPECT().Enter(gomock.Any(), s.clientID, gomock.Any()).
			Return(ticket, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.EntryTicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(ticket.ReservationID, body.ReservationID)
		s.Equal(ticket.Code, body.Code)
	})

	s.Run("success: walk-in without a reservation", func() {
		s.mockCommands.EXPECT().Enter(gomock.Any(), s.clientID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, params commands.EnterParams) (*commands.EntryTicket, error) {
				s.Nil(params.ReservationID)
				s.Equal(parkingID, params.ParkingID)
				return ticket, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"parking_id": parkingID.String()}, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on missing parking_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"reservation not found", commands.ErrReservationNotFound, http.StatusNotFound},
			{"not the owner", commands.ErrForbidden, http.StatusForbidden},
			{"not started", commands.ErrReservationNotStarted, http.StatusConflict},
			{"window lapsed", commands.ErrReservationExpired, http.StatusConflict},
			{"already entered", commands.ErrAlreadyEntered, http.StatusConflict},
			{"closed", commands.ErrReservationClosed, http.StatusConflict},
			{"no free sector", commands.ErrNoAvailableSector, http.StatusConflict},
			{"account disabled", commands.ErrClientNotEnabled, http.StatusUnprocessableEntity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Enter(gomock.Any(), s.clientID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *GateHandlerTestSuite) TestExit() {
	url := "/gate/exit"
	reservationID := uuid.New()
	reqBody := map[string]any{
		"reservation_id": reservationID.String(),
		"code":           "ABCDEFGH23",
	}
	enteredAt := time.Now().Add(-90 * time.Minute).Truncate(time.Second)
	receipt := &commands.Receipt{
		ReservationID: reservationID,
		SectorID:      uuid.New(),
		EnteredAt:     enteredAt,
		ExitedAt:      enteredAt.Add(90 * time.Minute),
		Duration:      90 * time.Minute,
	}

	s.Run("success: returns a receipt with the parked duration", func() {
		s.mockCommands.EXPECT().Exit(gomock.Any(), reservationID, "ABCDEFGH23").
			Return(receipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(reservationID, body.ReservationID)
		s.Equal(int64(90), body.DurationMinutes)
	})

	s.Run("error: 400 on missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_id": reservationID.String()}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when the code cannot be redeemed", func() {
		s.mockCommands.EXPECT().Exit(gomock.Any(), reservationID, "ABCDEFGH23").
			Return(nil, commands.ErrCannotExitParking).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cannot exit")
	})
}
