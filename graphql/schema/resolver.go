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

package schema

import (
	"github.com/botobag/bookshelf/library"
)

// Resolver is the root resolver serving fields of Query and Mutation.
type Resolver struct {
	store *library.Store
}

// NewResolver creates a root resolver that reads and writes store.
func NewResolver(store *library.Store) *Resolver {
	return &Resolver{
		store: store,
	}
}

func (r *Resolver) bookResolver(book *library.Book) *bookResolver {
	if book == nil {
		return nil
	}
	return &bookResolver{root: r, book: book}
}

func (r *Resolver) authorResolver(author *library.Author) *authorResolver {
	if author == nil {
		return nil
	}
	return &authorResolver{root: r, author: author}
}

func (r *Resolver) bookResolvers(books []*library.Book) []*bookResolver {
	resolvers := make([]*bookResolver, len(books))
	for i, book := range books {
		resolvers[i] = r.bookResolver(book)
	}
	return resolvers
}

func (r *Resolver) authorResolvers(authors []*library.Author) []*authorResolver {
	resolvers := make([]*authorResolver, len(authors))
	for i, author := range authors {
		resolvers[i] = r.authorResolver(author)
	}
	return resolvers
}

// Books resolves Query.books.
func (r *Resolver) Books() []*bookResolver {
	return r.bookResolvers(r.store.ListBooks())
}

// Book resolves Query.book.
func (r *Resolver) Book(args struct{ ID int32 }) *bookResolver {
	return r.bookResolver(r.store.GetBook(args.ID))
}

// Authors resolves Query.authors.
func (r *Resolver) Authors() []*authorResolver {
	return r.authorResolvers(r.store.ListAuthors())
}

// Author resolves Query.author.
func (r *Resolver) Author(args struct{ ID int32 }) *authorResolver {
	return r.authorResolver(r.store.GetAuthor(args.ID))
}

// AddBook resolves Mutation.addBook.
func (r *Resolver) AddBook(args struct {
	Name     string
	AuthorID int32
}) *bookResolver {
	return r.bookResolver(r.store.AddBook(args.Name, args.AuthorID))
}

// AddAuthor resolves Mutation.addAuthor.
func (r *Resolver) AddAuthor(args struct{ Name string }) *authorResolver {
	return r.authorResolver(r.store.AddAuthor(args.Name))
}

// UpdateBook resolves Mutation.updateBook. It resolves to null when the book doesn't exist.
func (r *Resolver) UpdateBook(args struct {
	ID       int32
	Name     *string
	AuthorID *int32
}) *bookResolver {
	return r.bookResolver(r.store.UpdateBook(args.ID, library.BookUpdate{
		Name:     args.Name,
		AuthorID: args.AuthorID,
	}))
}

type bookResolver struct {
	root *Resolver
	book *library.Book
}

func (r *bookResolver) ID() int32 {
	return r.book.ID
}

func (r *bookResolver) Name() string {
	return r.book.Name
}

func (r *bookResolver) AuthorID() int32 {
	return r.book.AuthorID
}

// Author yields null for a dangling author reference.
func (r *bookResolver) Author() *authorResolver {
	return r.root.authorResolver(r.root.store.AuthorOf(r.book))
}

type authorResolver struct {
	root   *Resolver
	author *library.Author
}

func (r *authorResolver) ID() int32 {
	return r.author.ID
}

func (r *authorResolver) Name() string {
	return r.author.Name
}

func (r *authorResolver) Books() []*bookResolver {
	return r.root.bookResolvers(r.root.store.BooksOf(r.author))
}
