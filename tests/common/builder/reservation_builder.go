//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/reservation"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	ParkingID  uuid.UUID
	SectorID   uuid.UUID
	SectorName string
	SectorType string
	Begin      time.Time
	End        time.Time
	Status     reservation.Status
	Events     []reservation.ParkingEvent
	Version    int64
}

func NewReservationBuilder() *ReservationBuilder {
	begin := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		ParkingID:  uuid.New(),
		SectorID:   uuid.New(),
		SectorName: "A",
		SectorType: "covered",
		Begin:      begin,
		End:        begin.Add(4 * time.Hour),
		Status:     reservation.StatusScheduled,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	window, err := reservation.NewTimeWindow(b.Begin, b.End)
	if err != nil {
		panic("builder produced invalid window: " + err.Error())
	}
	return reservation.Reconstruct(b.ID, b.ClientID, b.SectorID, window, b.Status, b.Events, b.Version)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ParkingID: b.ParkingID,
		SectorID:  &b.SectorID,
		BeginTime: b.Begin,
		EndTime:   b.End,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		ClientID:   b.ClientID,
		SectorID:   b.SectorID,
		SectorName: b.SectorName,
		SectorType: b.SectorType,
		BeginTime:  b.Begin,
		EndTime:    b.End,
		Status:     b.Status.String(),
	}
}
