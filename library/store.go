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

// Package library holds the in-memory record store for authors and books along with the
// operations that read, relate and mutate its records.
//
// Store Ownership
//
// A Store exposes its two sequences by reference. There is no encapsulation and no defensive copy:
// any holder of a record may mutate it in place, and the records returned by queries are the
// records held by the store. A Store is not safe for concurrent use. Callers that serve requests in
// parallel must serialize access to it (graphql/handler does that by executing one request at a
// time).
//
// Identifier Assignment
//
// Identifiers are assigned as the length of the sequence plus one at insertion time. Because no
// delete operation exists, identifiers stay unique as long as every record is inserted through
// AddAuthor and AddBook.
package library

// Author is a record in the author collection.
type Author struct {
	ID   int32
	Name string
}

// Book is a record in the book collection. AuthorID refers to an Author by its ID but is never
// checked against the author collection; it may dangle.
type Book struct {
	ID       int32
	Name     string
	AuthorID int32
}

// Store holds the author and book collections in insertion order.
type Store struct {
	Authors []*Author
	Books   []*Book
}

// New creates an empty store.
func New() *Store {
	return &Store{
		Authors: []*Author{},
		Books:   []*Book{},
	}
}

// NewSeeded creates a store that holds the seed data. Every call returns a store with its own
// copy of the records.
func NewSeeded() *Store {
	return &Store{
		Authors: SeedAuthors(),
		Books:   SeedBooks(),
	}
}
