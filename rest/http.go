// Package rest exposes the Huffman encoder over HTTP: clients upload the
// input and download the packed artifact or its report.
package rest

import (
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/egonelbre/exp-huffman-compression/huffman"
	"github.com/egonelbre/exp-huffman-compression/report"
)

// Response headers carrying the statistics of a compressed upload.
const (
	HeaderOriginalBits   = "X-Huffman-Original-Bits"
	HeaderCompressedBits = "X-Huffman-Compressed-Bits"
	HeaderReduction      = "X-Huffman-Reduction"
	HeaderChecksum       = "X-Huffman-Checksum"
)

// DefaultMaxBodyBytes is used when NewHandler is given a non-positive limit.
const DefaultMaxBodyBytes = 64 << 20

// NewHandler returns the HTTP API, with access logs written to logger.
func NewHandler(logger *log.Logger, maxBodyBytes int64) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	router := mux.NewRouter()
	router.Handle("/compress", handlers.MethodHandler{
		"POST": errorCatchingHandler(bodyHandler(maxBodyBytes, compressHandler)),
	})
	router.Handle("/report", handlers.MethodHandler{
		"POST": errorCatchingHandler(bodyHandler(maxBodyBytes, reportHandler)),
	})
	router.Handle("/healthz", handlers.MethodHandler{
		"GET": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, "ok")
		}),
	})

	return handlers.LoggingHandler(logger.Writer(), router)
}

func run(body []byte) (*report.Report, []byte, error) {
	res, err := huffman.Compress(body)
	if err != nil {
		return nil, nil, err
	}
	packed, err := res.Packed()
	if err != nil {
		return nil, nil, err
	}
	return report.New(res, packed), packed, nil
}

func compressHandler(w http.ResponseWriter, r *http.Request, body []byte) error {
	rep, packed, err := run(body)
	if err != nil {
		return err
	}

	h := w.Header()
	h.Set("Content-Type", report.ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename}))
	h.Set("Content-Length", strconv.Itoa(len(packed)))
	h.Set(HeaderOriginalBits, strconv.Itoa(rep.OriginalBits))
	h.Set(HeaderCompressedBits, strconv.Itoa(rep.CompressedBits))
	h.Set(HeaderReduction, strconv.FormatFloat(rep.ReductionPercent, 'f', 2, 64))
	h.Set(HeaderChecksum, strconv.FormatUint(rep.Checksum, 16))

	_, err = w.Write(packed)
	return err
}

func reportHandler(w http.ResponseWriter, r *http.Request, body []byte) error {
	rep, _, err := run(body)
	if err != nil {
		return err
	}

	if strings.Contains(r.Header.Get("Accept"), report.ProtoContentType) {
		data, err := rep.MarshalProto()
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", report.ProtoContentType)
		_, err = w.Write(data)
		return err
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err = fmt.Fprintln(w, rep.String())
	return err
}
