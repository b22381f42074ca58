package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"northstar/internal/api"
	"northstar/internal/domain"
)

// runtimeError is a request-level failure detected before any service call.
type runtimeError struct {
	code int
	kind string
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

// requestError handles bodies the strict handler could not decode.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, r, &runtimeError{code: http.StatusRequestEntityTooLarge, kind: "body_too_large", msg: "request body exceeds the size limit"})
		return
	}
	s.writeError(w, r, &runtimeError{code: http.StatusBadRequest, kind: "bad_request", msg: "malformed JSON body: " + err.Error()})
}

// paramError handles path and query parameters that failed to bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *api.InvalidParamFormatError
	if errors.As(err, &invalid) {
		msg := "malformed query parameter"
		if invalid.ParamName == "id" {
			msg = "must be a UUID"
		}
		s.writeError(w, r, domain.Invalid(invalid.ParamName, msg))
		return
	}
	s.writeError(w, r, &runtimeError{code: http.StatusBadRequest, kind: "bad_request", msg: err.Error()})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		re *runtimeError
		ce *domain.ConflictError
		ve *domain.ValidationError
	)
	status := http.StatusInternalServerError
	detail := api.ErrorDetail{Code: "internal", Message: "internal error"}

	switch {
	case errors.As(err, &re):
		status, detail.Code, detail.Message = re.code, re.kind, re.msg
	case errors.As(err, &ce):
		status, detail.Code, detail.Message = http.StatusConflict, "version_conflict", err.Error()
		v := ce.Actual
		detail.CurrentVersion = &v
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrDuplicate):
		status, detail.Code, detail.Message = http.StatusConflict, "conflict", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, detail.Code, detail.Message = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		status, detail.Code, detail.Message = http.StatusUnprocessableEntity, "invalid_transition", err.Error()
	case errors.As(err, &ve):
		status, detail.Code, detail.Message, detail.Field = http.StatusUnprocessableEntity, "validation_failed", err.Error(), ve.Field
	case errors.Is(err, domain.ErrDownstreamUnavailable):
		status, detail.Code, detail.Message = http.StatusServiceUnavailable, "downstream_unavailable", err.Error()
	}

	if status >= 500 {
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: detail})
}
