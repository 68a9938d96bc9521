//go:build e2e

package sector_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"parkhub/internal/domain/client"
	"parkhub/internal/handler/dto/request"
	"parkhub/internal/handler/dto/response"
	"parkhub/tests/common/dbtest"
	"parkhub/tests/common/httptest"
	"parkhub/tests/e2e"
	"parkhub/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	parkingSectorsURL = "/api/parkings/%s/sectors"
	activateURL       = "/api/sectors/%s/activate"
	deactivateURL     = "/api/sectors/%s/deactivate"
)

type SectorSuite struct {
	e2e.SharedSuite
	auth *helper.AuthHelper
}

func (s *SectorSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewAuthHelper(s.Config.JWT)
}

func TestSectorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SectorSuite))
}

func (s *SectorSuite) TestListSectors() {
	s.Run("Normal case: availability per sector", func() {
		t := s.T()

		_, token := s.auth.CreateAndAuthorize(t, s.DB, "driver@example.com", client.RoleClient)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 4, 2)
		dbtest.CreateTestSector(t, s.DB, parkingID, "B", "underground", 6, 6, 0)

		url := fmt.Sprintf(parkingSectorsURL, parkingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var views []response.SectorAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
		require.Len(t, views, 2)

		byName := map[string]response.SectorAvailabilityResponse{}
		for _, v := range views {
			byName[v.Name] = v
		}
		require.Equal(t, 6, byName["A"].FreePlaces)
		require.Equal(t, "covered", byName["A"].Type)
		require.Equal(t, 0, byName["B"].FreePlaces)
		require.True(t, byName["B"].Active)
	})
}

func (s *SectorSuite) TestDeactivateSector() {
	s.Run("Normal case: an empty sector closes immediately", func() {
		t := s.T()

		_, staffToken := s.auth.CreateAndAuthorize(t, s.DB, "staff@example.com", client.RoleStaff)
		_, clientToken := s.auth.CreateAndAuthorize(t, s.DB, "driver@example.com", client.RoleClient)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		sectorID := dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 0, 0)

		url := fmt.Sprintf(deactivateURL, sectorID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, staffToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.False(t, dbtest.SectorActive(t, s.DB, sectorID))

		// a closed sector no longer takes bookings
		now := time.Now().UTC()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				ParkingID: parkingID,
				BeginTime: now.Add(1 * time.Hour),
				EndTime:   now.Add(2 * time.Hour),
			}, clientToken)
		require.Equal(t, http.StatusConflict, cw.Code, cw.Body.String())
	})

	s.Run("Error case: immediate closure of an occupied sector", func() {
		t := s.T()

		_, staffToken := s.auth.CreateAndAuthorize(t, s.DB, "staff@example.com", client.RoleStaff)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		sectorID := dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 3, 0)

		url := fmt.Sprintf(deactivateURL, sectorID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, staffToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.True(t, dbtest.SectorActive(t, s.DB, sectorID))
	})

	s.Run("Normal case: occupied sector accepts a scheduled closure", func() {
		t := s.T()

		_, staffToken := s.auth.CreateAndAuthorize(t, s.DB, "staff@example.com", client.RoleStaff)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		sectorID := dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 3, 0)

		when := time.Now().UTC().Add(4 * time.Hour)
		url := fmt.Sprintf(deactivateURL, sectorID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.DeactivateSectorRequest{When: &when}, staffToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// still active, with the closure on record
		require.True(t, dbtest.SectorActive(t, s.DB, sectorID))
	})

	s.Run("Error case: a scheduled closure must lie in the future", func() {
		t := s.T()

		_, staffToken := s.auth.CreateAndAuthorize(t, s.DB, "staff@example.com", client.RoleStaff)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		sectorID := dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 0, 0)

		when := time.Now().UTC().Add(-1 * time.Hour)
		url := fmt.Sprintf(deactivateURL, sectorID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.DeactivateSectorRequest{When: &when}, staffToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: regular clients cannot close sectors", func() {
		t := s.T()

		_, token := s.auth.CreateAndAuthorize(t, s.DB, "driver@example.com", client.RoleClient)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		sectorID := dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 0, 0)

		url := fmt.Sprintf(deactivateURL, sectorID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		require.True(t, dbtest.SectorActive(t, s.DB, sectorID))
	})
}

func (s *SectorSuite) TestActivateSector() {
	s.Run("Normal case: reopening a closed sector restores bookings", func() {
		t := s.T()

		_, staffToken := s.auth.CreateAndAuthorize(t, s.DB, "staff@example.com", client.RoleStaff)
		_, clientToken := s.auth.CreateAndAuthorize(t, s.DB, "driver@example.com", client.RoleClient)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		sectorID := dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 0, 0)

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(deactivateURL, sectorID), nil, staffToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(activateURL, sectorID), nil, staffToken)
		require.Equal(t, http.StatusNoContent, aw.Code, aw.Body.String())
		require.True(t, dbtest.SectorActive(t, s.DB, sectorID))

		now := time.Now().UTC()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				ParkingID: parkingID,
				BeginTime: now.Add(1 * time.Hour),
				EndTime:   now.Add(2 * time.Hour),
			}, clientToken)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())
	})

	s.Run("Error case: activating an already active sector", func() {
		t := s.T()

		_, staffToken := s.auth.CreateAndAuthorize(t, s.DB, "staff@example.com", client.RoleStaff)
		parkingID := dbtest.CreateTestParking(t, s.DB, "7 Mill Lane", "LEAST_OCCUPIED")
		sectorID := dbtest.CreateTestSector(t, s.DB, parkingID, "A", "covered", 10, 0, 0)

		url := fmt.Sprintf(activateURL, sectorID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, staffToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
