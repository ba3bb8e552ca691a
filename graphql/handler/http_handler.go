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
	"strings"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/zap"
)

// httpHandler implements a http.Handler which is based on LLHandler to serve GraphQL queries from
// HTTP requests.
type httpHandler struct {
	*LLHandler

	config httpHandlerConfig

	// The handler for presenting errors occurred before execution; It doesn't handle errors
	// occurred during execution (in which ResultPresenter is responsible for.)
	errorPresenter ErrorPresenter

	// The handles for building requests and writing responses; If not given, DefaultRequestBuilder
	// and DefaultResultPresenter are used, respectively.
	requestBuilder  RequestBuilder
	resultPresenter ResultPresenter

	logger *zap.Logger
}

// httpHandlerConfig contains configuration for a httpHandler.
type httpHandlerConfig struct {
	LLConfig

	// Configuration given to DefaultRequestBuilder; It is not applicable if custom
	// RequestBuilder is used.
	defaultRequestBuilderConfig DefaultRequestBuilderConfig

	graphiql bool
	logger   *zap.Logger

	errorPresenter  ErrorPresenter
	requestBuilder  RequestBuilder
	resultPresenter ResultPresenter
}

// Option configures httpHandler
type Option func(h *httpHandlerConfig)

// MaxBodySize sets the maximum number of bytes to be read from request body for ParseHTTPRequest
// called by DefaultRequestBuilder.
func MaxBodySize(size uint) Option {
	return func(h *httpHandlerConfig) {
		h.defaultRequestBuilderConfig.HTTPRequestParserOptions.MaxBodySize = size
	}
}

// GraphiQL enables serving GraphiQL to browsers.
func GraphiQL(enabled bool) Option {
	return func(h *httpHandlerConfig) {
		h.graphiql = enabled
	}
}

// Logger sets the logger for requests served by the handler.
func Logger(logger *zap.Logger) Option {
	return func(h *httpHandlerConfig) {
		h.logger = logger
	}
}

// OverrideErrorPresenter overrides default ErrorPresenter.
func OverrideErrorPresenter(errorPresenter ErrorPresenter) Option {
	return func(h *httpHandlerConfig) {
		h.errorPresenter = errorPresenter
	}
}

// OverrideRequestBuilder overrides default RequestBuilder.
func OverrideRequestBuilder(requestBuilder RequestBuilder) Option {
	return func(h *httpHandlerConfig) {
		h.requestBuilder = requestBuilder
	}
}

// OverrideResultPresenter overrides default ResultPresenter.
func OverrideResultPresenter(resultPresenter ResultPresenter) Option {
	return func(h *httpHandlerConfig) {
		h.resultPresenter = resultPresenter
	}
}

// OverrideOperationCache overrides default OperationCache.
func OverrideOperationCache(cache OperationCache) Option {
	return func(h *httpHandlerConfig) {
		h.OperationCache = cache
	}
}

// New creates a net/http.Handler and builds a GraphQL web service to serve queries against the
// schema.
func New(schema Executor, opts ...Option) (http.Handler, error) {
	config := httpHandlerConfig{
		LLConfig: LLConfig{
			Schema: schema,
		},

		defaultRequestBuilderConfig: DefaultRequestBuilderConfig{
			HTTPRequestParserOptions: ParseHTTPRequestOptions{
				MaxBodySize: DefaultMaxBodySize,
			},
		},
	}
	for _, opt := range opts {
		opt(&config)
	}

	baseHandler, err := NewLLHandler(&config.LLConfig)
	if err != nil {
		return nil, err
	}

	requestBuilder := config.requestBuilder
	if requestBuilder == nil {
		requestBuilder = DefaultRequestBuilder{
			Config: &config.defaultRequestBuilderConfig,
		}
	}

	resultPresenter := config.resultPresenter
	if resultPresenter == nil {
		resultPresenter = DefaultResultPresenter{}
	}

	errorPresenter := config.errorPresenter
	if errorPresenter == nil {
		errorPresenter = DefaultErrorPresenter{}
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &httpHandler{
		LLHandler:       baseHandler,
		config:          config,
		errorPresenter:  errorPresenter,
		requestBuilder:  requestBuilder,
		resultPresenter: resultPresenter,
		logger:          logger,
	}, nil
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.config.graphiql && acceptsHTML(r) {
		if h.serveGraphiQL(w, r) {
			return
		}
	}

	// Prepare request to be executed with RequestBuilder.
	req, err := h.requestBuilder.Build(r, h)
	if err != nil {
		h.logger.Debug("graphql request rejected",
			zap.String("method", r.Method),
			zap.Error(err))
		h.errorPresenter.Write(w, err)
		return
	}

	result := h.Serve(req)

	h.logger.Debug("graphql request served",
		zap.String("method", r.Method),
		zap.String("operation", operationType(req.Operation)),
		zap.String("operationName", req.OperationName),
		zap.Duration("duration", time.Since(start)),
		zap.Int("errors", len(result.Errors)))

	h.resultPresenter.Write(w, r, req, result)
}

// serveGraphiQL writes the GraphiQL page unless the client asked for raw result. It returns false
// if the request should be served as a normal GraphQL request.
func (h *httpHandler) serveGraphiQL(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}

	parsedReq, err := ParseHTTPRequest(r, &h.config.defaultRequestBuilderConfig.HTTPRequestParserOptions)
	if err != nil {
		h.errorPresenter.Write(w, err)
		return true
	}
	if parsedReq.Raw {
		return false
	}

	if err := renderGraphiQL(w, parsedReq); err != nil {
		h.logger.Warn("failed to render GraphiQL", zap.Error(err))
	}
	return true
}

// RequestBuilder generates a Request to be served by LLHandler from an HTTP request.
type RequestBuilder interface {
	// Build turns a http.Request r into a Request for h.
	Build(r *http.Request, h HTTPHandler) (*Request, error)
}

// DefaultRequestBuilderConfig specifies settings to configure DefaultRequestBuilder.
type DefaultRequestBuilderConfig struct {
	HTTPRequestParserOptions ParseHTTPRequestOptions
}

// DefaultRequestBuilder implements the default request builder used by HTTP handler to obtain
// a Request object from a http.Request.
type DefaultRequestBuilder struct {
	Config *DefaultRequestBuilderConfig
}

// HTTPHandler provides interfaces to access settings in httpHandler from RequestBuilder.
type HTTPHandler interface {
	// Schema served by this handler
	Schema() Executor

	// OperationCache for the parsed queries; nil if cache is disabled.
	OperationCache() OperationCache
}

// Build implements RequestBuilder.
func (builder DefaultRequestBuilder) Build(r *http.Request, h HTTPHandler) (*Request, error) {
	parsedReq, err := ParseHTTPRequest(r, &builder.Config.HTTPRequestParserOptions)
	if err != nil {
		return nil, err
	}

	// Empty query is an error.
	if len(parsedReq.Query) == 0 {
		return nil, ErrEmptyQuery{
			Request: r,
		}
	}

	// Try to find the document that has been parsed for given query before from cache.
	cache := h.OperationCache()
	var (
		document *ast.QueryDocument
		ok       bool
	)
	if cache != nil {
		document, ok = cache.Get(parsedReq.Query)
	}
	if !ok {
		doc, parseErr := parser.ParseQuery(&ast.Source{
			Input: parsedReq.Query,
		})
		if parseErr != nil {
			return nil, &ErrParseQuery{
				Request:       r,
				ParsedRequest: parsedReq,
				Err:           parseErr,
			}
		}
		document = doc

		if cache != nil {
			cache.Add(parsedReq.Query, document)
		}
	}

	operation := selectOperation(document, parsedReq.OperationName)
	if r.Method == http.MethodGet && operation != nil && operation.Operation == ast.Mutation {
		return nil, &ErrMutationNotAllowed{
			Request:       r,
			ParsedRequest: parsedReq,
		}
	}

	return &Request{
		Ctx:           r.Context(),
		Query:         parsedReq.Query,
		OperationName: parsedReq.OperationName,
		Variables:     parsedReq.Variables,
		Operation:     operation,
	}, nil
}

// selectOperation finds the operation to be executed in document. It returns nil when the name
// doesn't match any operation or when name is empty but the document has multiple operations.
func selectOperation(document *ast.QueryDocument, name string) *ast.OperationDefinition {
	if len(name) == 0 {
		if len(document.Operations) == 1 {
			return document.Operations[0]
		}
		return nil
	}

	for _, operation := range document.Operations {
		if operation.Name == name {
			return operation
		}
	}
	return nil
}

// operationType returns the type of operation ("query", "mutation" or "subscription"), or an empty
// string if operation is nil.
func operationType(operation *ast.OperationDefinition) string {
	if operation == nil {
		return ""
	}
	return string(operation.Operation)
}

// ResultPresenter presents an execution result to a http.ResponseWriter.
type ResultPresenter interface {
	// Write writes a graphql.Response to w.
	Write(
		w http.ResponseWriter,
		httpRequest *http.Request,
		graphqlRequest *Request,
		result *graphql.Response)
}

// DefaultResultPresenter implements a ResultPresenter used by HTTP handler to present a
// graphql.Response.
type DefaultResultPresenter struct{}

// Write implements ResultPresenter.
func (DefaultResultPresenter) Write(
	w http.ResponseWriter,
	httpRequest *http.Request,
	graphqlRequest *Request,
	result *graphql.Response) {

	status := http.StatusOK
	if isSyntaxError(result) {
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	jsoniter.NewEncoder(w).Encode(result)
}

// isSyntaxError returns true if the executor rejected the query document while parsing it. The
// parser used by DefaultRequestBuilder accepts a few documents that the executor cannot parse (such
// as block strings in arguments); those are still reported as a bad request.
func isSyntaxError(result *graphql.Response) bool {
	if len(result.Data) > 0 || len(result.Errors) != 1 {
		return false
	}
	err := result.Errors[0]
	return len(err.Rule) == 0 && err.ResolverError == nil && strings.HasPrefix(err.Message, "syntax error")
}
