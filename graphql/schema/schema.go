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

// Package schema declares the GraphQL type schema for the library and binds its fields to a
// library.Store.
package schema

import (
	"fmt"

	"github.com/botobag/bookshelf/internal/logging"
	"github.com/botobag/bookshelf/library"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

// SDL is the schema definition served by the API.
const SDL = `
schema {
	query: Query
	mutation: Mutation
}

# A root query
type Query {
	# List of all books
	books: [Book!]!
	# A single book
	book(id: Int!): Book
	# List of all authors
	authors: [Author!]!
	# A single author
	author(id: Int!): Author
}

# A root mutation
type Mutation {
	# Add a book
	addBook(name: String!, authorId: Int!): Book!
	# Add an author
	addAuthor(name: String!): Author!
	# Update a book; only non-empty arguments are written
	updateBook(id: Int!, name: String, authorId: Int): Book
}

# A book written by an author
type Book {
	id: Int!
	name: String!
	authorId: Int!
	author: Author
}

# An author of books
type Author {
	id: Int!
	name: String!
	books: [Book!]!
}
`

type config struct {
	maxParallelism int
	logger         *zap.Logger
}

// Option configures the schema created by New.
type Option func(c *config)

// MaxParallelism sets the maximum number of resolvers per request allowed to run in parallel.
func MaxParallelism(n int) Option {
	return func(c *config) {
		c.maxParallelism = n
	}
}

// PanicLogger reports panics recovered from resolvers to logger.
func PanicLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New parses SDL and binds it to a resolver working on store.
func New(store *library.Store, opts ...Option) (*graphql.Schema, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	var schemaOpts []graphql.SchemaOpt
	if c.maxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(c.maxParallelism))
	}
	if c.logger != nil {
		schemaOpts = append(schemaOpts, graphql.Logger(logging.PanicLogger(c.logger)))
	}

	schema, err := graphql.ParseSchema(SDL, NewResolver(store), schemaOpts...)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return schema, nil
}

// MustNew is like New but panics if the schema cannot be created.
func MustNew(store *library.Store, opts ...Option) *graphql.Schema {
	schema, err := New(store, opts...)
	if err != nil {
		panic(err)
	}
	return schema
}
