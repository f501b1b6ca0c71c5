package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/export"
	"github.com/piwi3910/tcocompare/internal/model"
)

const maxBodyBytes = 1 << 20

// decodeBody reads a JSON body into v, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return goerr.Wrap(errBadRequest, "request body is empty")
		}
		return goerr.Wrap(errBadRequest, "invalid request body: "+err.Error())
	}
	return nil
}

// decodeScenario reads a bare scenario. Omitted fields keep the defaults of a
// new scenario.
func decodeScenario(w http.ResponseWriter, r *http.Request) (model.Scenario, error) {
	s := model.NewScenario("")
	if err := decodeBody(w, r, &s); err != nil {
		return model.Scenario{}, err
	}
	return s, nil
}

func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.catalog.Vendors())
}

func (s *Server) getVendor(w http.ResponseWriter, r *http.Request) {
	v, err := s.catalog.Vendor(chi.URLParam(r, "id"))
	if err != nil {
		handleError(r.Context(), w, err, http.StatusNotFound)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, v)
}

func (s *Server) listIndustries(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.catalog.Industries())
}

func (s *Server) listFrameworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.catalog.Frameworks())
}

type tcoRequest struct {
	Scenario *model.Scenario `json:"scenario"`
	VendorID string          `json:"vendor_id"`
}

type tcoResponse struct {
	Breakdown model.CostBreakdown `json:"breakdown"`
	Yearly    []model.YearCost    `json:"yearly"`
}

func (s *Server) calculateTCO(w http.ResponseWriter, r *http.Request) {
	scenario := model.NewScenario("")
	req := tcoRequest{Scenario: &scenario}
	if err := decodeBody(w, r, &req); err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	if err := scenario.Validate(); err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	if req.VendorID == "" {
		err := goerr.Wrap(errBadRequest, "vendor_id is required")
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	v, err := s.catalog.Vendor(req.VendorID)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}

	b := engine.CalculateTCO(v, scenario, engine.ResolveSalary(s.catalog, scenario))
	writeJSON(r.Context(), w, http.StatusOK, tcoResponse{Breakdown: b, Yearly: engine.YearlyCosts(b)})
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	scenario, err := decodeScenario(w, r)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	cmp, err := engine.Compare(s.catalog, scenario)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, cmp)
}

func (s *Server) recommend(w http.ResponseWriter, r *http.Request) {
	scenario, err := decodeScenario(w, r)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	recs, err := engine.Recommend(s.catalog, scenario)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, recs)
}

type sensitivityRequest struct {
	Scenario  *model.Scenario `json:"scenario"`
	Parameter string          `json:"parameter"`
	Values    []float64       `json:"values,omitempty"`
}

func (s *Server) sensitivity(w http.ResponseWriter, r *http.Request) {
	scenario := model.NewScenario("")
	req := sensitivityRequest{Scenario: &scenario}
	if err := decodeBody(w, r, &req); err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	p, err := engine.ParseParameter(req.Parameter)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	points, err := engine.Sensitivity(s.catalog, scenario, p, req.Values)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, points)
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		handleError(r.Context(), w, err, http.StatusNotFound)
		return
	}
	scenario, err := decodeScenario(w, r)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}
	cmp, err := engine.Compare(s.catalog, scenario)
	if err != nil {
		handleError(r.Context(), w, err, statusFor(err))
		return
	}

	// Render fully before writing so an encoder failure can still become a 500.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, cmp); err != nil {
		err = goerr.Wrap(err, "failed to render export", goerr.V("format", string(format)))
		handleError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", format.FileName(export.BaseName(cmp))))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // header already committed
}

