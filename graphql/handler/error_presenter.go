/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	jsoniter "github.com/json-iterator/go"
)

// ErrorPresenter presents an error to a http.ResponseWriter.
type ErrorPresenter interface {
	// Write sends the given error to w.
	Write(w http.ResponseWriter, err error)
}

// Errors by DefaultRequestBuilder.Build

// ErrEmptyQuery describes an error when an empty query is not allowed.
type ErrEmptyQuery struct {
	Request *http.Request
}

// Error implements Go's error interface.
func (err ErrEmptyQuery) Error() string {
	return "must provide query string"
}

// ErrParseQuery describes an invalid GraphQL query document that failed parsing.
type ErrParseQuery struct {
	Request       *http.Request
	ParsedRequest *HTTPRequest
	Err           error
}

// Error implements Go's error interface.
func (err *ErrParseQuery) Error() string {
	return "invalid query: " + err.Err.Error()
}

// Unwrap returns the underlying error.
func (err *ErrParseQuery) Unwrap() error {
	return err.Err
}

// ErrMutationNotAllowed is returned when a mutation is sent with a GET request.
type ErrMutationNotAllowed struct {
	Request       *http.Request
	ParsedRequest *HTTPRequest
}

// Error implements Go's error interface.
func (err *ErrMutationNotAllowed) Error() string {
	return "can only perform a mutation operation from a POST request"
}

// DefaultErrorPresenter implements an ErrorPresenter which is default used by HTTP handler when no
// error presenter is provided.
type DefaultErrorPresenter struct{}

// Write implements ErrorPresenter.
func (DefaultErrorPresenter) Write(w http.ResponseWriter, err error) {
	switch err := err.(type) {
	case ErrEmptyQuery, *ErrParseQuery, *HTTPRequestParseError:
		writeErrors(w, http.StatusBadRequest, err)

	case *ErrMutationNotAllowed:
		w.Header().Set("Allow", http.MethodPost)
		writeErrors(w, http.StatusMethodNotAllowed, err)

	default:
		writeErrors(w, http.StatusInternalServerError, err)
	}
}

// writeErrors sends an error response in the same shape as an execution result.
func writeErrors(w http.ResponseWriter, status int, err error) {
	body := struct {
		Errors []*gqlerrors.QueryError `json:"errors"`
	}{
		Errors: []*gqlerrors.QueryError{
			{Message: err.Error()},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	jsoniter.NewEncoder(w).Encode(body)
}
