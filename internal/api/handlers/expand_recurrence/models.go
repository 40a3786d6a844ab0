package expand_recurrence

import (
	expandRecurrence "github.com/m04kA/CWS-ReservationService/internal/usecase/expand_recurrence"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// ExpandRecurrenceRequest HTTP request model
type ExpandRecurrenceRequest struct {
	AreaID    int64    `json:"areaId"`
	Date      string   `json:"date"`
	StartTime *string  `json:"startTime,omitempty"`
	EndTime   *string  `json:"endTime,omitempty"`
	Seats     int      `json:"seats,omitempty"`
	Type      string   `json:"type"`
	Interval  int      `json:"interval,omitempty"`
	EndDate   string   `json:"endDate"`
	Weekdays  []string `json:"weekdays,omitempty"`
}

// DateVerdictResponse вердикт одной даты серии
type DateVerdictResponse struct {
	Date     string `json:"date"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// ExpandRecurrenceResponse HTTP response model
type ExpandRecurrenceResponse struct {
	Dates []DateVerdictResponse `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ExpandRecurrenceRequest) ToUseCaseRequest() (*expandRecurrence.Request, error) {
	date, err := types.ParseCalendarDate(r.Date)
	if err != nil {
		return nil, err
	}
	endDate, err := types.ParseCalendarDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &expandRecurrence.Request{
		AreaID:   r.AreaID,
		Date:     date,
		Seats:    r.Seats,
		Type:     r.Type,
		Interval: r.Interval,
		EndDate:  endDate,
		Weekdays: r.Weekdays,
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

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *expandRecurrence.Response) *ExpandRecurrenceResponse {
	out := &ExpandRecurrenceResponse{
		Dates: make([]DateVerdictResponse, 0, len(resp.Dates)),
	}

	for _, verdict := range resp.Dates {
		out.Dates = append(out.Dates, DateVerdictResponse{
			Date:     verdict.Date.String(),
			Accepted: verdict.Accepted,
			Reason:   verdict.Reason,
		})
	}

	return out
}
