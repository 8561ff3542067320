package httperr

import (
	"net/http"
	"reflect"
	"strings"

	"petstay-backend/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

var statusByCode = map[errs.Code]int{
	errs.CodeValidation: http.StatusBadRequest,
	errs.CodeNotFound:   http.StatusNotFound,
	errs.CodeConflict:   http.StatusConflict,
	errs.CodeForbidden:  http.StatusForbidden,
	errs.CodeUpstream:   http.StatusBadGateway,
	errs.CodeInternal:   http.StatusInternalServerError,
}

func StatusOf(code errs.Code) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code errs.Code, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = string(code)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a categorized error to its status and public message.
func Abort(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	AbortWithError(c, StatusOf(code), code, err, errs.Message(err), nil)
}

// AbortBind reports a request that failed binding, with per-field detail
// when the validator produced it.
func AbortBind(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: fieldPath(fe),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		AbortWithError(c, http.StatusBadRequest, errs.CodeValidation, err, "request validation failed", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, errs.CodeValidation, err, "invalid request body", nil)
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// UseJSONFieldNames makes validator report json field names instead of Go ones.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}
