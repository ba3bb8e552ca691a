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

// BookUpdate specifies the fields to be overwritten by UpdateBook. A nil field is left untouched.
type BookUpdate struct {
	Name     *string
	AuthorID *int32
}

// AddBook appends a new book and returns it. The new book takes the number of books in the store
// plus one as its ID. authorID is not required to refer to an existing author.
func (store *Store) AddBook(name string, authorID int32) *Book {
	book := &Book{
		ID:       int32(len(store.Books) + 1),
		Name:     name,
		AuthorID: authorID,
	}
	store.Books = append(store.Books, book)
	return book
}

// AddAuthor appends a new author and returns it. The new author takes the number of authors in
// the store plus one as its ID.
func (store *Store) AddAuthor(name string) *Author {
	author := &Author{
		ID:   int32(len(store.Authors) + 1),
		Name: name,
	}
	store.Authors = append(store.Authors, author)
	return author
}

// UpdateBook overwrites fields of the book with the given ID and returns the book. It returns nil
// without changing anything if the book doesn't exist.
//
// A field is only written when it is set to a non-zero value: an empty name or an author ID of 0
// leaves the field unchanged, the same as leaving it unset.
func (store *Store) UpdateBook(id int32, update BookUpdate) *Book {
	book := store.GetBook(id)
	if book == nil {
		return nil
	}

	if update.Name != nil && len(*update.Name) > 0 {
		book.Name = *update.Name
	}
	if update.AuthorID != nil && *update.AuthorID != 0 {
		book.AuthorID = *update.AuthorID
	}

	return book
}
