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

package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/botobag/bookshelf/internal/config"
	"github.com/botobag/bookshelf/library"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Server", func() {
	var server *httptest.Server

	BeforeEach(func() {
		mux, err := newMux(config.DefaultConfig(), library.NewSeeded(), zap.NewNop())
		Expect(err).ShouldNot(HaveOccurred())
		server = httptest.NewServer(mux)
	})

	AfterEach(func() {
		server.Close()
	})

	read := func(response *http.Response) string {
		defer response.Body.Close()
		body, err := io.ReadAll(response.Body)
		Expect(err).ShouldNot(HaveOccurred())
		return string(body)
	}

	It("reports health", func() {
		response, err := http.Get(server.URL + "/health")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(response.StatusCode).Should(Equal(http.StatusOK))
		Expect(read(response)).Should(MatchJSON(`{"status":"ok"}`))
	})

	It("serves GraphQL", func() {
		response, err := http.Post(server.URL+"/graphql", "application/json",
			strings.NewReader(`{"query": "mutation { addBook(name: \"Book Name\", authorId: 5) { id author { id } } }"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(response.StatusCode).Should(Equal(http.StatusOK))
		Expect(read(response)).Should(MatchJSON(`{
			"data": { "addBook": { "id": 9, "author": null } }
		}`))

		response, err = http.Post(server.URL+"/graphql", "application/graphql",
			strings.NewReader(`{ books { id } }`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(read(response)).Should(ContainSubstring(`{"id":9}`))
	})
})
