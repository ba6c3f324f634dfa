package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/middleware"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
)

// actor extracts the authenticated actor, replying 401 when absent.
func actor(c *gin.Context) (*service.Actor, bool) {
	a := middleware.GetActor(c)
	if a == nil {
		response.Unauthorized(c, "User not authenticated")
		return nil, false
	}
	return a, true
}

// pathUUID parses a UUID path parameter, replying 400 on a malformed value.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the request body strictly, replying with field-level
// validation details or a plain 400 for malformed bodies.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := request.BindStrict(c, obj); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			fieldErrors := make([]apperror.FieldError, 0, len(vErrs))
			for _, fe := range vErrs {
				fieldErrors = append(fieldErrors, apperror.FieldError{
					Field:   fe.Field(),
					Message: "failed validation on " + fe.Tag(),
				})
			}
			response.ValidationError(c, fieldErrors)
			return false
		}
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
