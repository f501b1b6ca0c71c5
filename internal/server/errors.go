package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/export"
	"github.com/piwi3910/tcocompare/internal/logging"
	"github.com/piwi3910/tcocompare/internal/model"
)

// errBadRequest marks malformed request bodies.
var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes. Unknown vendors found in
// a request body are client errors; lookups by path set their own 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, model.ErrInvalidScenario),
		errors.Is(err, catalog.ErrUnknownVendor),
		errors.Is(err, catalog.ErrUnknownIndustry),
		errors.Is(err, catalog.ErrUnknownRiskProfile),
		errors.Is(err, catalog.ErrUnknownInsuranceTier),
		errors.Is(err, engine.ErrUnknownParameter):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrUnknownFormat):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// handleError writes err as a JSON error body. Server errors are logged with
// their goerr values and stack.
func handleError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)
	if status >= http.StatusInternalServerError {
		var ge *goerr.Error
		if errors.As(err, &ge) {
			logger.Error("HTTP error",
				"status", status,
				"error", err.Error(),
				"values", ge.Values(),
				"stack", ge.Stacks(),
			)
		} else {
			logger.Error("HTTP error", "status", status, "error", err.Error())
		}
	} else {
		logger.Debug("request rejected", "status", status, "error", err.Error())
	}

	writeJSON(ctx, w, status, errorResponse{Error: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.From(ctx).Error("failed to marshal response", "error", err.Error())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to encode response"}`)) //nolint:errcheck // header already committed
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}
