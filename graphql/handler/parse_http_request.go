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
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
)

// DefaultMaxBodySize is the limit of request body used when ParseHTTPRequestOptions.MaxBodySize is
// not set.
const DefaultMaxBodySize = 10 << 20 // 10MB

// ParseHTTPRequestOptions provides settings to ParseHTTPRequest.
type ParseHTTPRequestOptions struct {
	// Maximum size in bytes to be read when parsing a GraphQL query from HTTP request body. If it is
	// not set, the size is capped at DefaultMaxBodySize.
	MaxBodySize uint
}

// HTTPRequest contains result values of ParseHTTPRequest.
type HTTPRequest struct {
	Query         string
	OperationName string
	Variables     map[string]interface{}

	// Raw is set when "raw" is present in URL query; It asks for a JSON response even if the client
	// accepts HTML.
	Raw bool
}

// HTTPRequestParseError is returned by ParseHTTPRequest when parsing failed.
type HTTPRequestParseError struct {
	Request *http.Request
	Options *ParseHTTPRequestOptions
	Err     error
}

// Error implements Go's error interface.
func (err *HTTPRequestParseError) Error() string {
	return err.Err.Error()
}

// Unwrap returns the underlying error.
func (err *HTTPRequestParseError) Unwrap() error {
	return err.Err
}

var errRequestBodyTooLarge = errors.New("request body is too large")

// requestParser carries the request being parsed so errors can be annotated with it.
type requestParser struct {
	r       *http.Request
	options *ParseHTTPRequestOptions
}

func (p requestParser) fail(err error) (*HTTPRequest, error) {
	return nil, &HTTPRequestParseError{
		Request: p.r,
		Options: p.options,
		Err:     err,
	}
}

// getOneValue returns an empty string if values doesn't contain the key and an error if there're
// multiple values for the key.
func getOneValue(values url.Values, key string) (string, error) {
	v := values[key]
	switch len(v) {
	case 0:
		return "", nil
	case 1:
		return v[0], nil
	default:
		return "", fmt.Errorf(`multiple values are provided to "%s", but only one expected`, key)
	}
}

// fromValues reads a request from URL query or form values.
func (p requestParser) fromValues(values url.Values) (*HTTPRequest, error) {
	var (
		req HTTPRequest
		err error
	)

	if req.Query, err = getOneValue(values, "query"); err != nil {
		return p.fail(err)
	}
	if req.OperationName, err = getOneValue(values, "operationName"); err != nil {
		return p.fail(err)
	}

	variables, err := getOneValue(values, "variables")
	if err != nil {
		return p.fail(err)
	}
	if len(variables) > 0 {
		if err := jsoniter.UnmarshalFromString(variables, &req.Variables); err != nil {
			return p.fail(fmt.Errorf("variables are invalid JSON: %w", err))
		}
	}

	_, req.Raw = values["raw"]

	return &req, nil
}

// jsonBody is the shape of an "application/json" request. Variables may be given either as an
// object or as a string that encodes the object.
type jsonBody struct {
	Query         string              `json:"query"`
	OperationName string              `json:"operationName"`
	Variables     jsoniter.RawMessage `json:"variables"`
}

func (p requestParser) fromJSON(body []byte) (*HTTPRequest, error) {
	var b jsonBody
	if err := jsoniter.Unmarshal(body, &b); err != nil {
		return p.fail(fmt.Errorf("body is invalid JSON: %w", err))
	}

	req := &HTTPRequest{
		Query:         b.Query,
		OperationName: b.OperationName,
	}

	if len(b.Variables) > 0 {
		switch jsoniter.Get(b.Variables).ValueType() {
		case jsoniter.StringValue:
			if encoded := jsoniter.Get(b.Variables).ToString(); len(encoded) > 0 {
				if err := jsoniter.UnmarshalFromString(encoded, &req.Variables); err != nil {
					return p.fail(fmt.Errorf("variables are invalid JSON: %w", err))
				}
			}
		case jsoniter.NilValue:
		default:
			if err := jsoniter.Unmarshal(b.Variables, &req.Variables); err != nil {
				return p.fail(fmt.Errorf("variables are invalid JSON: %w", err))
			}
		}
	}

	return req, nil
}

// ParseHTTPRequest parses a GraphQL request from a http.Request object. Unsupported methods and
// content types result in an empty request without error.
func ParseHTTPRequest(r *http.Request, options *ParseHTTPRequestOptions) (*HTTPRequest, error) {
	p := requestParser{r, options}

	switch r.Method {
	case http.MethodGet:
		values := r.Form
		if values == nil {
			var err error
			if values, err = url.ParseQuery(r.URL.RawQuery); err != nil {
				return p.fail(err)
			}
		}
		return p.fromValues(values)

	case http.MethodPost:
		contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

		// Use r.Form if it has been populated by someone.
		if contentType == "application/x-www-form-urlencoded" && r.Form != nil {
			return p.fromValues(r.Form)
		}

		maxBodySize := options.MaxBodySize
		if maxBodySize == 0 {
			maxBodySize = DefaultMaxBodySize
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, int64(maxBodySize)+1))
		if err != nil {
			return p.fail(err)
		}
		if uint(len(body)) > maxBodySize {
			return p.fail(errRequestBodyTooLarge)
		}

		// See https://github.com/graphql/express-graphql/blob/8826952/src/parseBody.js for the
		// supported content-type.
		switch contentType {
		case "application/graphql":
			return &HTTPRequest{
				Query: string(body),
			}, nil

		case "application/x-www-form-urlencoded":
			values, err := url.ParseQuery(string(body))
			if err != nil {
				return p.fail(err)
			}
			return p.fromValues(values)

		case "", "application/json":
			return p.fromJSON(body)

		default:
			return &HTTPRequest{}, nil
		}

	default:
		return &HTTPRequest{}, nil
	}
}
