package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/CWS-ReservationService/internal/usecase/get_available_slots"
)

// SlotResponse доступный слот в HTTP-ответе
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	AreaID          int64          `json:"areaId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	return &AvailableSlotsResponse{
		AreaID:          resp.AreaID,
		Date:            resp.Date.String(),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
