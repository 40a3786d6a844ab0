package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/CWS-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// RecurrenceRequest правило повторения в HTTP-запросе
type RecurrenceRequest struct {
	Type     string   `json:"type"`               // daily / weekly / monthly
	Interval int      `json:"interval,omitempty"` // по умолчанию 1
	EndDate  string   `json:"endDate"`            // "2025-12-31"
	Weekdays []string `json:"weekdays,omitempty"` // для weekly: ["monday", ...]
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	UserID    int64              `json:"userId"`
	AreaID    int64              `json:"areaId"`
	Date      string             `json:"date"`                // "2025-09-10"
	StartTime *string            `json:"startTime,omitempty"` // "10:00", отсутствует для full-day
	EndTime   *string            `json:"endTime,omitempty"`   // "11:00"
	Seats     int                `json:"seats,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
	Recurrence *RecurrenceRequest `json:"recurrence,omitempty"`
}

// ReservationResponse созданное бронирование в HTTP-ответе
type ReservationResponse struct {
	ID        int64   `json:"id"`
	SeriesID  *string `json:"seriesId,omitempty"`
	UserID    int64   `json:"userId"`
	AreaID    int64   `json:"areaId"`
	AreaName  string  `json:"areaName"`
	UserName  *string `json:"userName,omitempty"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	FullDay   bool    `json:"fullDay"`
	Seats     int     `json:"seats"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// SkippedDateResponse отклонённая дата серии
type SkippedDateResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// AllDatesRejectedResponse тело ответа 409 для серии, все даты которой
// отклонены: повердатные причины отказа сохраняются
type AllDatesRejectedResponse struct {
	Error   string                `json:"error"`
	Skipped []SkippedDateResponse `json:"skipped"`
}

func skippedFromUseCase(skipped []createReservation.SkippedDate) []SkippedDateResponse {
	out := make([]SkippedDateResponse, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, SkippedDateResponse{
			Date:   s.Date.String(),
			Reason: s.Reason,
		})
	}
	return out
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	SeriesID     *string                `json:"seriesId,omitempty"`
	Reservations []*ReservationResponse `json:"reservations"`
	Skipped      []SkippedDateResponse  `json:"skipped,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := types.ParseCalendarDate(r.Date)
	if err != nil {
		return nil, err
	}

	req := &createReservation.Request{
		UserID: r.UserID,
		AreaID: r.AreaID,
		Date:   date,
		Seats:  r.Seats,
		Notes:  r.Notes,
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}
	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = endTime
	}

	if r.Recurrence != nil {
		endDate, err := types.ParseCalendarDate(r.Recurrence.EndDate)
		if err != nil {
			return nil, err
		}
		req.Recurrence = &createReservation.Recurrence{
			Type:     r.Recurrence.Type,
			Interval: r.Recurrence.Interval,
			EndDate:  endDate,
			Weekdays: r.Recurrence.Weekdays,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	out := &CreateReservationResponse{
		Reservations: make([]*ReservationResponse, 0, len(resp.Created)),
	}

	if resp.SeriesID != nil {
		s := resp.SeriesID.String()
		out.SeriesID = &s
	}

	for _, res := range resp.Created {
		item := &ReservationResponse{
			ID:        res.ID,
			UserID:    res.UserID,
			AreaID:    res.AreaID,
			AreaName:  res.AreaName,
			UserName:  res.UserName,
			Date:      res.Date.String(),
			FullDay:   res.StartTime.IsZero(),
			Seats:     res.Seats,
			Status:    res.Status,
			Notes:     res.Notes,
			CreatedAt: res.CreatedAt.Format(time.RFC3339),
			UpdatedAt: res.UpdatedAt.Format(time.RFC3339),
		}
		if res.SeriesID != nil {
			s := res.SeriesID.String()
			item.SeriesID = &s
		}
		if !res.StartTime.IsZero() {
			start := res.StartTime.String()
			end := res.EndTime.String()
			item.StartTime = &start
			item.EndTime = &end
		}
		out.Reservations = append(out.Reservations, item)
	}

	out.Skipped = skippedFromUseCase(resp.Skipped)

	return out
}
