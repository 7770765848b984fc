package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/intent"
	"travel-booking/internal/domain/item"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/cache"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type rule struct {
	targets []error
	status  int
	message string
}

// First match wins. Auth failures come before input validation because a
// login with a malformed email is marked ErrAuthenticationFailed.
var rules = []rule{
	{
		targets: []error{commands.ErrInvalidCredentials, commands.ErrAuthenticationFailed, commands.ErrTokenValidation},
		status:  http.StatusUnauthorized,
		message: "Invalid email or password",
	},
	{
		targets: []error{commands.ErrUserInactive, queries.ErrUserInactive},
		status:  http.StatusForbidden,
		message: "Account is inactive",
	},
	{
		targets: []error{availability.ErrStaleAvailability},
		status:  http.StatusConflict,
		message: availability.ErrStaleAvailability.Error(),
	},
	{
		targets: []error{errs.ErrIdempotencyMismatch},
		status:  http.StatusConflict,
		message: "Idempotency key was already used with a different request",
	},
	{
		targets: []error{errs.ErrIdempotencyInProgress},
		status:  http.StatusConflict,
		message: "Request with this idempotency key is still being processed",
	},
	{
		targets: []error{commands.ErrEmailTaken},
		status:  http.StatusConflict,
		message: "Email is already registered",
	},
	{
		targets: []error{commands.ErrItemNotFound, queries.ErrItemNotFound},
		status:  http.StatusNotFound,
		message: "Item not found",
	},
	{
		targets: []error{commands.ErrBookingNotFound, queries.ErrBookingNotFound},
		status:  http.StatusNotFound,
		message: "Booking not found",
	},
	{
		targets: []error{intent.ErrNotFound},
		status:  http.StatusNotFound,
		message: "Booking intent not found or expired",
	},
	{
		targets: []error{commands.ErrAvailableDateNotFound},
		status:  http.StatusNotFound,
		message: "Available date not found",
	},
	{
		targets: []error{commands.ErrUserNotFound, queries.ErrUserNotFound},
		status:  http.StatusNotFound,
		message: "User not found",
	},
	{
		targets: []error{
			booking.ErrInvalidBookingInput,
			booking.ErrInvalidPackageType,
			queries.ErrInvalidCursor,
			availability.ErrDateInPast,
			availability.ErrInvalidSlots,
			user.ErrInvalidEmail,
			user.ErrPasswordTooWeak,
			errs.ErrIdempotencyKeyRequired,
		},
		status:  http.StatusBadRequest,
		message: "Invalid request",
	},
	{
		targets: []error{availability.ErrDateUnavailable},
		status:  http.StatusUnprocessableEntity,
		message: "Selected date is not available",
	},
	{
		targets: []error{item.ErrItemInactive},
		status:  http.StatusUnprocessableEntity,
		message: "Item is not bookable",
	},
	{
		targets: []error{booking.ErrBookingCanceled, booking.ErrCancellationClosed},
		status:  http.StatusUnprocessableEntity,
		message: "Booking can no longer be canceled",
	},
	{
		targets: []error{intent.ErrInvalidTransition},
		status:  http.StatusUnprocessableEntity,
		message: "Booking intent cannot move to the requested step",
	},
	{
		targets: []error{cache.ErrUnavailable},
		status:  http.StatusServiceUnavailable,
		message: "Service temporarily unavailable",
	},
}

// Classify returns the status and public message for a usecase error.
func Classify(err error) (int, string) {
	for _, r := range rules {
		for _, target := range r.targets {
			if errs.Is(err, target) {
				return r.status, r.message
			}
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort maps err through Classify. Validation failures carry the underlying
// error text as detail so clients can tell which field was rejected.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
