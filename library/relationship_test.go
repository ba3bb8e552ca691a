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

package library_test

import (
	"github.com/botobag/bookshelf/library"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Relationship", func() {
	var store *library.Store

	BeforeEach(func() {
		store = library.NewSeeded()
	})

	Describe("BooksOf", func() {
		It("returns books of the author in insertion order", func() {
			books := store.BooksOf(store.GetAuthor(1))
			Expect(books).Should(Equal([]*library.Book{
				{ID: 1, Name: "Harry Potter and the Chamber of Secrets", AuthorID: 1},
				{ID: 2, Name: "Harry Potter and the Prisoner of Azkaban", AuthorID: 1},
				{ID: 3, Name: "Harry Potter and the Goblet of Fire", AuthorID: 1},
			}))
		})

		It("returns the sub-sequence of all books with matching author", func() {
			store.AddBook("The Hobbit", 2)
			store.AddBook("Shadow's Edge", 3)
			store.AddBook("The Silmarillion", 2)

			author := store.GetAuthor(2)
			var expected []*library.Book
			for _, book := range store.ListBooks() {
				if book.AuthorID == author.ID {
					expected = append(expected, book)
				}
			}

			Expect(store.BooksOf(author)).Should(Equal(expected))
			Expect(store.BooksOf(author)).Should(HaveLen(5))
		})

		It("returns an empty slice for an author without books", func() {
			author := store.AddAuthor("Sam Lin")
			books := store.BooksOf(author)
			Expect(books).ShouldNot(BeNil())
			Expect(books).Should(BeEmpty())
		})
	})

	Describe("AuthorOf", func() {
		It("returns the author of the book", func() {
			Expect(store.AuthorOf(store.GetBook(5))).Should(Equal(&library.Author{
				ID:   2,
				Name: "J. R. R. Tolkien",
			}))
		})

		It("returns nil for a dangling author reference", func() {
			book := store.AddBook("Book Name", 5)
			Expect(store.AuthorOf(book)).Should(BeNil())
		})

		It("resolves an author added after the book", func() {
			book := store.AddBook("Book Name", 4)
			Expect(store.AuthorOf(book)).Should(BeNil())

			store.AddAuthor("Sam Lin")
			Expect(store.AuthorOf(book)).Should(Equal(&library.Author{
				ID:   4,
				Name: "Sam Lin",
			}))
		})
	})
})
