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

package library

import (
	"github.com/samber/lo"
)

// AuthorOf returns the first author whose ID equals book.AuthorID. It returns nil when the book
// refers to an author that doesn't exist.
func (store *Store) AuthorOf(book *Book) *Author {
	author, _ := lo.Find(store.Authors, func(author *Author) bool {
		return author.ID == book.AuthorID
	})
	return author
}

// BooksOf returns the books written by the given author in insertion order. The result is never
// nil; an author without books gets an empty slice.
func (store *Store) BooksOf(author *Author) []*Book {
	return lo.Filter(store.Books, func(book *Book, _ int) bool {
		return book.AuthorID == author.ID
	})
}
