package registration

import "CompetitionHub/pkg/response"

var (
	ErrRegistrationNotFound = response.NewError(404, "registration not found")
	ErrCompetitionClosed    = response.NewError(409, "registration for this competition is closed")
	ErrInvalidStep          = response.NewError(400, "step must be 1, 2 or 3")
	ErrInvalidWhatsapp      = response.NewError(400, "whatsapp number is not a valid Indonesian number")
	ErrSubmissionRejected   = response.NewError(422, "registration rejected")
	ErrSubmissionFailed     = response.NewError(502, "registration could not be submitted, please try again later")
	ErrReceiptUnavailable   = response.NewError(503, "receipt is not available right now")
)
