// internal/handlers/http/api.go
// Handler REST /api/v1: sumur, ekonomi, import/export, analitik portofolio & skenario

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"oilgas-portfolio/internal/importer"
	"oilgas-portfolio/internal/llm"
	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/util"
	"oilgas-portfolio/internal/wells"
)

// maxImportBytes membatasi ukuran upload CSV.
const maxImportBytes = 10 << 20

type API struct {
	Repo      *wells.Repository
	Portfolio *services.PortfolioAnalyzer
	Scenarios *services.ScenarioEngine
	Narrator  *llm.Narrator
	Log       *logrus.Logger
}

func NewAPI(repo *wells.Repository, narrator *llm.Narrator, log *logrus.Logger) *API {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &API{
		Repo:      repo,
		Portfolio: services.NewPortfolioAnalyzer(repo),
		Scenarios: services.NewScenarioEngine(repo),
		Narrator:  narrator,
		Log:       log,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	// encode dulu ke buffer: NaN/Inf gagal di-encode -> 500, bukan 200 kosong
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		b, _ := json.Marshal(map[string]string{"error": "internal", "message": "encode response: " + err.Error()})
		_, _ = w.Write(b)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// writeError memetakan sentinel domain ke AppError lalu ke status HTTP.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ae util.AppError
	switch {
	case errors.As(err, &ae):
	case errors.Is(err, wells.ErrWellNotFound):
		ae = util.Wrap("not_found", err)
	case errors.Is(err, wells.ErrEmptyImport),
		errors.Is(err, wells.ErrInvalidPrice),
		errors.Is(err, wells.ErrDuplicateID),
		errors.Is(err, services.ErrUnknownMetric),
		errors.Is(err, services.ErrZeroEUR),
		errors.Is(err, importer.ErrMalformedCSV):
		ae = util.Wrap("bad_input", err)
	default:
		ae = util.Wrap("internal", err)
	}
	status := ae.HTTPStatus()
	if status >= 500 {
		a.Log.WithFields(logrus.Fields{
			"request_id": r.Header.Get("X-Request-ID"),
			"path":       r.URL.Path,
		}).WithError(err).Error("request failed")
	}
	writeJSON(w, status, map[string]any{"error": ae.Code, "message": ae.Message})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return util.BadInput("invalid json")
	}
	return nil
}

// Import: POST /api/v1/import, body CSV mentah atau multipart field "file".
func (a *API) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, _, err := r.FormFile("file")
		if err != nil {
			a.writeError(w, r, util.BadInput("multipart field \"file\" is required"))
			return
		}
		defer f.Close()
		src = f
	}

	ws, err := importer.ImportCSV(a.Repo, src)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.Log.WithFields(logrus.Fields{
		"request_id": r.Header.Get("X-Request-ID"),
		"wells":      len(ws),
		"assets":     a.Repo.Assets(),
	}).Info("wells imported from csv")
	writeJSON(w, http.StatusOK, map[string]any{"imported": len(ws), "assets": a.Repo.Assets()})
}

// Export: GET /api/v1/export.
func (a *API) Export(w http.ResponseWriter, r *http.Request) {
	snap := a.Repo.Export()
	writeJSON(w, http.StatusOK, map[string]any{
		"wells":       snap.Wells,
		"economics":   snap.Economics,
		"export_date": snap.ExportedAt,
	})
}

type recalcReq struct {
	OilPrice     float64  `json:"oil_price"`
	GasPrice     float64  `json:"gas_price"`
	DiscountRate *float64 `json:"discount_rate,omitempty"`
}

// Recalculate: POST /api/v1/economics/recalculate.
func (a *API) Recalculate(w http.ResponseWriter, r *http.Request) {
	var in recalcReq
	if err := decodeJSON(r, &in); err != nil {
		a.writeError(w, r, err)
		return
	}
	cur := a.Repo.Settings()
	if in.GasPrice == 0 {
		in.GasPrice = cur.GasPrice
	}
	disc := cur.DiscountRate
	if in.DiscountRate != nil {
		disc = *in.DiscountRate
	}
	if err := a.Repo.RecalculateEconomics(in.OilPrice, in.GasPrice, disc); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.Log.WithFields(logrus.Fields{
		"oil_price":     in.OilPrice,
		"gas_price":     in.GasPrice,
		"discount_rate": disc,
	}).Info("economics recalculated")
	writeJSON(w, http.StatusOK, map[string]any{
		"economics": a.Repo.Settings(),
		"portfolio": a.Portfolio.AnalyzePortfolio(),
	})
}

// Settings: GET /api/v1/economics.
func (a *API) Settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Repo.Settings())
}
