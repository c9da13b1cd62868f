package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/domain/pet"
	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/domain/user"
	reqdto "groomer-crm/internal/handler/dto/request"
	resdto "groomer-crm/internal/handler/dto/response"
	"groomer-crm/internal/handler/httperr"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Binding errors report wire names (json or form tag) rather than Go field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	}
}

type errorMapping struct {
	target error
	status int
	msg    string
}

// Checked in order. The first match wins.
var errorMappings = []errorMapping{
	{commands.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
	{queries.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
	{commands.ErrPetNotFound, http.StatusNotFound, "Pet not found"},
	{queries.ErrPetNotFound, http.StatusNotFound, "Pet not found"},
	{commands.ErrClientNotFound, http.StatusNotFound, "Client not found"},
	{queries.ErrClientNotFound, http.StatusNotFound, "Client not found"},
	{commands.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{queries.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{commands.ErrDuplicateService, http.StatusConflict, "A service with this name already exists"},
	{commands.ErrEmailTaken, http.StatusConflict, "A user with this email already exists"},
	{commands.ErrPlanLimit, http.StatusForbidden, "Free plan is limited to 10 clients. Upgrade to Pro for unlimited clients."},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token"},
}

// Domain rule violations. Their messages are safe to show as is.
var validationErrors = []error{
	appointment.ErrInvalidDuration,
	appointment.ErrInvalidStatus,
	appointment.ErrStartInPast,
	appointment.ErrServiceTooLong,
	appointment.ErrNotesTooLong,
	appointment.ErrMissingPet,
	appointment.ErrInvalidStartTime,
	client.ErrInvalidFirstName,
	client.ErrInvalidLastName,
	client.ErrPhoneTooLong,
	pet.ErrInvalidName,
	pet.ErrInvalidSpecies,
	pet.ErrBreedTooLong,
	pet.ErrInvalidAge,
	pet.ErrNotesTooLong,
	pet.ErrMissingClient,
	catalog.ErrInvalidName,
	catalog.ErrNegativePrice,
	catalog.ErrDescriptionTooLong,
	settings.ErrBusinessNameTooLong,
	settings.ErrBusinessPhoneTooLong,
	user.ErrInvalidEmail,
	user.ErrInvalidName,
	user.ErrPasswordTooWeak,
	queries.ErrInvalidRange,
	queries.ErrRangeTooWide,
	reqdto.ErrInvalidDateParam,
}

// respondError renders a use case error. Anything unrecognised is a 500 with
// the original error kept on the gin context for the logger.
func respondError(c *gin.Context, err error) {
	var conflict *appointment.ConflictError
	if errs.Is(err, commands.ErrAppointmentConflict) && errors.As(err, &conflict) {
		httperr.AbortWithError(c, http.StatusConflict, err, conflict.Error(), resdto.FromConflictError(conflict))
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, v.Error(), nil)
			return
		}
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// respondBindError reports which fields failed binding validation.
func respondBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	fields := make([]fieldError, 0, len(ve))
	names := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag()})
		names = append(names, fe.Field())
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+strings.Join(names, ", "), fields)
}
