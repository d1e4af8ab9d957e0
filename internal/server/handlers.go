package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valpere/translation-service/internal/translation"
)

const (
	msgNoText            = "No text provided"
	msgTranslationFailed = "Translation failed: "
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// rawRequest keeps field types open so a mistyped field can be told apart
// from a missing one.
type rawRequest struct {
	Text       any `json:"text"`
	TargetLang any `json:"target_lang"`
}

// fieldTypeError reports a field that is present but not a string.
type fieldTypeError struct {
	Field string
	Value any
}

func (e *fieldTypeError) Error() string {
	return fmt.Sprintf("%s must be a string, got %T", e.Field, e.Value)
}

type handler struct {
	svc Translator
}

// health handles GET /health. It never checks dependencies.
func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "healthy", Service: "translation"})
}

// translate handles POST /translate.
func (h *handler) translate(c *gin.Context) {
	req, err := decodeRequest(c)
	if err != nil {
		var ferr *fieldTypeError
		if errors.As(err, &ferr) {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: msgTranslationFailed + ferr.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgNoText})
		return
	}

	out := h.svc.Translate(c.Request.Context(), req)

	switch out.Kind {
	case translation.Succeeded:
		c.JSON(http.StatusOK, out.Response)
	case translation.InvalidRequest:
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgNoText})
	default:
		// Provider detail is returned to the caller as-is.
		c.JSON(http.StatusInternalServerError, errorResponse{Error: msgTranslationFailed + out.Err.Error()})
	}
}

// decodeRequest maps the JSON body onto a translation.Request.
//
// Bodies that do not decode to an object, null, and absent or empty-valued
// text yield translation.ErrNoText. A text that is present with a non-empty
// non-string value, or a non-null non-string target_lang, yields a
// *fieldTypeError.
func decodeRequest(c *gin.Context) (translation.Request, error) {
	var raw rawRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		return translation.Request{}, translation.ErrNoText
	}

	var req translation.Request
	switch text := raw.Text.(type) {
	case string:
		req.Text = text
	default:
		if hasValue(text) {
			return req, &fieldTypeError{Field: "text", Value: text}
		}
		return req, translation.ErrNoText
	}

	switch target := raw.TargetLang.(type) {
	case nil:
	case string:
		req.TargetLang = target
	default:
		return req, &fieldTypeError{Field: "target_lang", Value: target}
	}

	return req, nil
}

// hasValue reports whether a decoded JSON value is non-empty: a true bool,
// a non-zero number, or a non-empty string, array or object.
func hasValue(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
