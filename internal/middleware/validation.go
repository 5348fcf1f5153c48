package middleware

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
	"github.com/yigit/degreepath/internal/pkg/validation"
)

var errPanic = errors.New("panic while handling request")

var registerOnce sync.Once

// RegisterBindingRules adds the custom validation tags to gin's binding
// validator. Safe to call more than once.
func RegisterBindingRules() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not a go-playground validator")
			return
		}
		err = validation.RegisterRules(v)
	})
	return err
}

// studentIDKey is where ParseStudentID stores the parsed id.
const studentIDKey = "studentID"

// ParseStudentID validates the :studentId path parameter as a UUID.
func ParseStudentID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("studentId"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrInvalidStudentID)
			return
		}
		c.Set(studentIDKey, id)
		c.Next()
	}
}

// StudentID returns the id stored by ParseStudentID.
func StudentID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(studentIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// BindJSON binds and validates a JSON body, writing a 400 with the failed
// fields when it is invalid. It reports whether the handler may continue.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorAPIResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
