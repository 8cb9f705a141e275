package court

import "courtbook/internal/domain"

type CreateCourtRequest struct {
	Name        string
	Status      string
	OpeningHour domain.TimeOfDay
	ClosingHour domain.TimeOfDay
}

type UpdateCourtRequest struct {
	Name        string
	Status      string
	OpeningHour domain.TimeOfDay
	ClosingHour domain.TimeOfDay
}

// Wire bodies keep the hour fields as pointers so a midnight "00:00"
// opening passes the required check.
type createCourtBody struct {
	Name        string            `json:"name" binding:"required"`
	Status      string            `json:"status"`
	OpeningHour *domain.TimeOfDay `json:"openingHour" binding:"required"`
	ClosingHour *domain.TimeOfDay `json:"closingHour" binding:"required"`
}

func (b createCourtBody) toRequest() CreateCourtRequest {
	return CreateCourtRequest{
		Name:        b.Name,
		Status:      b.Status,
		OpeningHour: *b.OpeningHour,
		ClosingHour: *b.ClosingHour,
	}
}

type updateCourtBody struct {
	Name        string            `json:"name" binding:"required"`
	Status      string            `json:"status" binding:"required"`
	OpeningHour *domain.TimeOfDay `json:"openingHour" binding:"required"`
	ClosingHour *domain.TimeOfDay `json:"closingHour" binding:"required"`
}

func (b updateCourtBody) toRequest() UpdateCourtRequest {
	return UpdateCourtRequest{
		Name:        b.Name,
		Status:      b.Status,
		OpeningHour: *b.OpeningHour,
		ClosingHour: *b.ClosingHour,
	}
}

type ClosedDateRequest struct {
	Date domain.Date `json:"date" binding:"required"`
}
