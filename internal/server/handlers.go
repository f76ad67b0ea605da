package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/export"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
)

// CompareRequest is the body accepted by POST /v1/compare.
type CompareRequest struct {
	A model.ScenarioInput  `json:"a"`
	B *model.ScenarioInput `json:"b,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":%q}`, "encoding response: "+err.Error()), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, model.ErrInvalidScenarioInput) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// parseScenario reads a scenario from query parameters. Missing fields fall
// back to the defaults; present fields must parse and validate.
func parseScenario(q url.Values, prefix string) (model.ScenarioInput, error) {
	in := model.DefaultScenario()

	if v := q.Get(prefix + "starting_balance"); v != "" {
		amt, err := cli.ParseAmount(v)
		if err != nil {
			return in, fmt.Errorf("%sstarting_balance: %w", prefix, err)
		}
		in.StartingBalance = amt
	}
	if v := q.Get(prefix + "monthly_contribution"); v != "" {
		amt, err := cli.ParseAmount(v)
		if err != nil {
			return in, fmt.Errorf("%smonthly_contribution: %w", prefix, err)
		}
		in.MonthlyContribution = amt
	}
	if v := q.Get(prefix + "annual_rate"); v != "" {
		r, err := cli.ParseRate(v)
		if err != nil {
			return in, fmt.Errorf("%sannual_rate: %w", prefix, err)
		}
		in.AnnualRate = r
	}
	if v := q.Get(prefix + "years"); v != "" {
		n, err := cli.ParseYears(v)
		if err != nil {
			return in, fmt.Errorf("%syears: %w", prefix, err)
		}
		in.Years = n
	}
	return in, in.Validate()
}

// requestFromQuery builds scenario A, and scenario B when compare=true or
// any b_-prefixed parameter is present.
func requestFromQuery(q url.Values) (pipeline.Request, error) {
	a, err := parseScenario(q, "")
	if err != nil {
		return pipeline.Request{}, err
	}
	req := pipeline.Request{A: a}

	wantB := q.Get("compare") == "true" || q.Get("compare") == "1"
	for key := range q {
		if len(key) > 2 && key[:2] == "b_" {
			wantB = true
		}
	}
	if wantB {
		b, err := parseScenario(q, "b_")
		if err != nil {
			return pipeline.Request{}, err
		}
		req.B = &b
	}
	return req, nil
}

func (s *Service) simulate(r *http.Request, req pipeline.Request) (*pipeline.Result, error) {
	res, err := pipeline.Run(r.Context(), req)
	if err != nil {
		return nil, err
	}
	for _, run := range res.Runs {
		s.record(run)
	}
	return res, nil
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.simulate(r, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, export.NewDocument(res))
}

func (s *Service) handleSimulateCSV(w http.ResponseWriter, r *http.Request) {
	in, err := parseScenario(r.URL.Query(), "")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.simulate(r, pipeline.Request{A: in})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(model.LabelA, "csv")))
	if err := export.WriteCSV(w, res.A().Ledger); err != nil {
		s.log.Error("writing csv", "err", err)
	}
}

func (s *Service) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.simulate(r, req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.ReportFileName))
	if err := export.WritePDF(w, res.Runs, time.Now()); err != nil {
		s.log.Error("writing pdf", "err", err)
	}
}

func (s *Service) handleCompare(w http.ResponseWriter, r *http.Request) {
	var body CompareRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "decoding request: " + err.Error()})
		return
	}

	res, err := s.simulate(r, pipeline.Request{A: body.A, B: body.B})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, export.NewDocument(res))
}

func (s *Service) handleRuns(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.recentRuns())
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan RunEvent, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev RunEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "id: %d\n", ev.ID)
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
