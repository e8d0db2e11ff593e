package server

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
	"github.com/davidjspooner/ecsig/pkg/asn1/asn1der"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
	"github.com/davidjspooner/ecsig/pkg/logevent"
)

type EncodeRequest struct {
	R        string `json:"r"`
	S        string `json:"s"`
	PemLabel string `json:"pem_label,omitempty"`
}

type EncodeResponse struct {
	Der    string `json:"der"`
	Base64 string `json:"base64"`
	Pem    string `json:"pem"`
}

// DecodeRequest carries exactly one of its fields.
type DecodeRequest struct {
	Der    string `json:"der,omitempty"`
	Base64 string `json:"base64,omitempty"`
	Pem    string `json:"pem,omitempty"`
}

type DecodeResponse struct {
	R string `json:"r"`
	S string `json:"s"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// parseInteger accepts decimal or 0x prefixed hex.
func parseInteger(name, text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	base := 10
	if digits, ok := strings.CutPrefix(strings.ToLower(text), "0x"); ok {
		text, base = digits, 16
	}
	n, ok := new(big.Int).SetString(text, base)
	if !ok || text == "" {
		return nil, fmt.Errorf("%s is not an integer", name)
	}
	return n, nil
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	err := d.Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return false
	}
	writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
	return false
}

func (s *Server) Encode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	rInt, err := parseInteger("r", req.R)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sInt, err := parseInteger("s", req.S)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	label := req.PemLabel
	if label == "" {
		label = s.config.PemLabel
	}

	sig := ecsig.New(rInt, sInt)
	der, err := sig.ToDer()
	if err != nil {
		s.codecFailure(r, "encode", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	codecOperations.WithLabelValues("encode", "ok").Inc()
	writeJSON(w, http.StatusOK, EncodeResponse{
		Der:    hex.EncodeToString(der),
		Base64: asn1der.EncodeBase64(der),
		Pem:    asn1der.ToPem(der, label),
	})
}

func (s *Server) Decode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	var sig *ecsig.Signature
	var err error
	switch {
	case countSet(req.Der, req.Base64, req.Pem) != 1:
		writeError(w, http.StatusBadRequest, errors.New("exactly one of der, base64 or pem is required"))
		return
	case req.Der != "":
		var der []byte
		der, err = hex.DecodeString(strings.TrimSpace(req.Der))
		if err != nil {
			err = asn1core.NewErrorf("invalid hex text").WithCause(err).WithType(asn1core.InvalidText)
		} else {
			sig, err = ecsig.FromDer(der)
		}
	case req.Base64 != "":
		sig, err = ecsig.FromBase64(req.Base64)
	default:
		sig, err = ecsig.FromPem(req.Pem)
	}
	if err != nil {
		s.codecFailure(r, "decode", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	codecOperations.WithLabelValues("decode", "ok").Inc()
	writeJSON(w, http.StatusOK, DecodeResponse{R: sig.R().String(), S: sig.S().String()})
}

func (s *Server) codecFailure(r *http.Request, operation string, err error) {
	kind := asn1core.TypeOf(err).String()
	codecOperations.WithLabelValues(operation, kind).Inc()
	logevent.LoggerFromContext(r.Context()).Info(operation+" rejected", "kind", kind, "error", err, logevent.EventAttrKey, operation+"_rejected")
}

func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	_ = e.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var typed asn1core.Error
	if errors.As(err, &typed) {
		resp.Kind = typed.Type().String()
	}
	writeJSON(w, code, resp)
}
