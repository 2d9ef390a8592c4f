package server

import (
	"errors"
	"github.com/bokysan/basecodec/internal/transcode"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
)

// OriginalLengthHeader carries the length of the data before encoding.
const OriginalLengthHeader = "X-Original-Length"

// AlgorithmInfo describes one supported encoding.
type AlgorithmInfo struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Code      string `json:"code"`
	Alphabet  string `json:"alphabet"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errBodyTooLarge = errors.New("request body too large")

func statusFor(err error) int {
	switch {
	case errors.Is(err, enc.ErrUnknownAlgorithm):
		return http.StatusNotFound
	case errors.Is(err, errBodyTooLarge), errors.Is(err, enc.ErrAllocationFailure):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, enc.ErrInvalidCharacter),
		errors.Is(err, enc.ErrOddLength),
		errors.Is(err, enc.ErrInvalidLength),
		errors.Is(err, enc.ErrValueOverflow),
		errors.Is(err, enc.ErrEmptyInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Errorf("Request failed: %+v", err)
	} else {
		log.WithError(err).Debugf("Request rejected with %d: %v", status, err)
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}

func (hs *HttpServer) readBody(r *http.Request) ([]byte, error) {
	body, err := ioutil.ReadAll(io.LimitReader(r.Body, hs.MaxBody+1))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "could not read request body")
	}
	if int64(len(body)) > hs.MaxBody {
		return nil, pkgerrors.Wrapf(errBodyTooLarge, "limit is %d bytes", hs.MaxBody)
	}
	return body, nil
}

func algorithmParam(r *http.Request) (enc.Encoder, error) {
	alg, err := enc.ParseAlgorithm(chi.URLParam(r, "algorithm"))
	if err != nil {
		return nil, err
	}
	return alg.Encoder(), nil
}

func lengthParam(r *http.Request) (*int, error) {
	value := r.URL.Query().Get("length")
	if value == "" {
		value = r.Header.Get(OriginalLengthHeader)
	}
	if value == "" {
		return nil, nil
	}
	length, err := strconv.Atoi(value)
	if err != nil || length < 0 {
		return nil, pkgerrors.Wrapf(enc.ErrInvalidLength, "length %q", value)
	}
	return &length, nil
}

func (hs *HttpServer) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	res := make([]AlgorithmInfo, 0)
	for _, a := range enc.Algorithms() {
		e := a.Encoder()
		res = append(res, AlgorithmInfo{
			Name:      e.Name(),
			Extension: e.Extension(),
			Code:      string(e.Code()),
			Alphabet:  e.Alphabet().String(),
		})
	}
	render.JSON(w, r, res)
}

func (hs *HttpServer) encode(w http.ResponseWriter, r *http.Request) {
	e, err := algorithmParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	body, err := hs.readBody(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	text, err := enc.CheckedEncode(e, body)
	if err != nil {
		renderError(w, r, err)
		return
	}

	w.Header().Set(OriginalLengthHeader, strconv.Itoa(len(body)))
	render.PlainText(w, r, text)
}

func (hs *HttpServer) decode(w http.ResponseWriter, r *http.Request) {
	e, err := algorithmParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	length, err := lengthParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	body, err := hs.readBody(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	data, err := transcode.DecodeText(e, string(body), length)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Data(w, r, data)
}
