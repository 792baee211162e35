package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

type httpError struct {
	err  error
	code int
}

func (h *httpError) Error() string {
	return h.err.Error()
}

func (h *httpError) Unwrap() error {
	return h.err
}

// Code returns the HTTP status code of the error. Defaults to 500.
func (h *httpError) Code() int {
	if h.code == 0 {
		return http.StatusInternalServerError
	}
	return h.code
}

type errorReturningHandler func(w http.ResponseWriter, r *http.Request) error

func errorCatchingHandler(handler errorReturningHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			code := http.StatusInternalServerError
			var herr *httpError
			if errors.As(err, &herr) {
				code = herr.Code()
			}
			http.Error(w, fmt.Sprintf("An error occurred: %v", err), code)
		}
	})
}

// bodyHandler reads the whole request body before calling handler,
// so the handler never sees partial input.
func bodyHandler(maxBytes int64, handler func(w http.ResponseWriter, r *http.Request, body []byte) error) errorReturningHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return &httpError{err: fmt.Errorf("body exceeds %d bytes", tooLarge.Limit), code: http.StatusRequestEntityTooLarge}
			}
			return &httpError{err: fmt.Errorf("cannot read body: %w", err), code: http.StatusBadRequest}
		}
		return handler(w, r, body)
	}
}
