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

var _ = Describe("Store", func() {
	It("creates an empty store", func() {
		store := library.New()
		Expect(store.ListAuthors()).Should(BeEmpty())
		Expect(store.ListBooks()).Should(BeEmpty())
	})

	It("creates a store with seed data", func() {
		store := library.NewSeeded()
		Expect(store.ListAuthors()).Should(Equal([]*library.Author{
			{ID: 1, Name: "J. K. Rowling"},
			{ID: 2, Name: "J. R. R. Tolkien"},
			{ID: 3, Name: "Brent Weeks"},
		}))
		Expect(store.ListBooks()).Should(HaveLen(8))
		Expect(store.ListBooks()[0]).Should(Equal(&library.Book{
			ID:       1,
			Name:     "Harry Potter and the Chamber of Secrets",
			AuthorID: 1,
		}))
	})

	It("doesn't share records between seeded stores", func() {
		a := library.NewSeeded()
		b := library.NewSeeded()

		a.Books[0].Name = "Changed"
		a.AddAuthor("Sam Lin")

		Expect(b.Books[0].Name).Should(Equal("Harry Potter and the Chamber of Secrets"))
		Expect(b.ListAuthors()).Should(HaveLen(3))
	})

	It("exposes records by reference", func() {
		store := library.NewSeeded()
		book := store.GetBook(4)
		book.Name = "The Fellowship"
		Expect(store.Books[3].Name).Should(Equal("The Fellowship"))
	})
})
