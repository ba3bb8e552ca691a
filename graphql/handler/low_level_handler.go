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
	"context"
	"errors"
	"sync"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// Executor executes GraphQL queries. *graphql.Schema from graph-gophers/graphql-go implements it.
type Executor interface {
	Exec(ctx context.Context, queryString string, operationName string, variables map[string]interface{}) *graphql.Response
}

var _ Executor = (*graphql.Schema)(nil)

// LLHandler creates a handler that is suit for serving GraphQL queries against a schema in a
// long-running process. It is useful as a low-level building block for building GraphQL services
// such as GraphQL web services.
//
// LLHandler executes one request at a time. Resolvers in this module work on an unsynchronized
// store, so a request must run to completion before the next one starts.
type LLHandler struct {
	// Schema served by this handler
	schema Executor

	// Cache for the parsed query; Could be nil (when the handler was created with
	// config.OperationCache set to NopOperationCache) to disable cache.
	cache OperationCache

	mutex sync.Mutex
}

// LLConfig contains configuration to set up a LLHandler.
type LLConfig struct {
	// Schema to be working on
	Schema Executor

	// OperationCache caches documents parsed from a query to save parsing efforts.
	OperationCache OperationCache
}

var errMissingSchema = errors.New("bookshelf/handler: must specify a schema")

// NewLLHandler creates a LLHandler from given configuration.
func NewLLHandler(config *LLConfig) (*LLHandler, error) {
	// lo.IsNil also catches a nil pointer wrapped in the interface, e.g., (*graphql.Schema)(nil).
	schema := config.Schema
	if lo.IsNil(schema) {
		return nil, errMissingSchema
	}

	cache := config.OperationCache
	if cache == nil {
		// Create a LRU cache with 512 entries in maximum by default.
		var err error
		cache, err = NewLRUOperationCache(512)
		if err != nil {
			return nil, err
		}
	} else if _, isNop := cache.(NopOperationCache); isNop {
		cache = nil
	}

	return &LLHandler{
		schema: schema,
		cache:  cache,
	}, nil
}

// Schema returns handler.schema.
func (handler *LLHandler) Schema() Executor {
	return handler.schema
}

// OperationCache returns handler.cache.
func (handler *LLHandler) OperationCache() OperationCache {
	return handler.cache
}

// Request contains parameter required by Serve.
type Request struct {
	Ctx           context.Context
	Query         string
	OperationName string
	Variables     map[string]interface{}

	// Operation selected from the query by OperationName; nil if the query cannot be parsed or the
	// operation cannot be determined, in which case Executor reports the error. It is only used for
	// logging and for rejecting mutations from GET requests.
	Operation *ast.OperationDefinition
}

// Serve executes the request. The given request object must not be nil.
func (handler *LLHandler) Serve(request *Request) *graphql.Response {
	ctx := request.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	handler.mutex.Lock()
	defer handler.mutex.Unlock()

	return handler.schema.Exec(ctx, request.Query, request.OperationName, request.Variables)
}
