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

// ListAuthors returns all authors in insertion order.
func (store *Store) ListAuthors() []*Author {
	return store.Authors
}

// ListBooks returns all books in insertion order.
func (store *Store) ListBooks() []*Book {
	return store.Books
}

// GetAuthor finds the author with the given ID. It returns nil if there's no such author.
func (store *Store) GetAuthor(id int32) *Author {
	author, _ := lo.Find(store.Authors, func(author *Author) bool {
		return author.ID == id
	})
	return author
}

// GetBook finds the book with the given ID. It returns nil if there's no such book.
func (store *Store) GetBook(id int32) *Book {
	book, _ := lo.Find(store.Books, func(book *Book) bool {
		return book.ID == id
	})
	return book
}
