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

var seedAuthors = [...]Author{
	{ID: 1, Name: "J. K. Rowling"},
	{ID: 2, Name: "J. R. R. Tolkien"},
	{ID: 3, Name: "Brent Weeks"},
}

var seedBooks = [...]Book{
	{ID: 1, Name: "Harry Potter and the Chamber of Secrets", AuthorID: 1},
	{ID: 2, Name: "Harry Potter and the Prisoner of Azkaban", AuthorID: 1},
	{ID: 3, Name: "Harry Potter and the Goblet of Fire", AuthorID: 1},
	{ID: 4, Name: "The Fellowship of the Ring", AuthorID: 2},
	{ID: 5, Name: "The Two Towers", AuthorID: 2},
	{ID: 6, Name: "The Return of the King", AuthorID: 2},
	{ID: 7, Name: "The Way of Shadows", AuthorID: 3},
	{ID: 8, Name: "Beyond the Shadows", AuthorID: 3},
}

// SeedAuthors returns a fresh copy of the authors a process starts with.
func SeedAuthors() []*Author {
	authors := make([]*Author, len(seedAuthors))
	for i := range seedAuthors {
		author := seedAuthors[i]
		authors[i] = &author
	}
	return authors
}

// SeedBooks returns a fresh copy of the books a process starts with.
func SeedBooks() []*Book {
	books := make([]*Book, len(seedBooks))
	for i := range seedBooks {
		book := seedBooks[i]
		books[i] = &book
	}
	return books
}
