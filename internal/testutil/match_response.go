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

package testutil

import (
	graphql "github.com/graph-gophers/graphql-go"
	jsoniter "github.com/json-iterator/go"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// MatchResponseInJSON serializes a *graphql.Response into JSON and matches it against the given
// JSON document, ignoring whitespace and key order.
func MatchResponseInJSON(responseJSON string) types.GomegaMatcher {
	stringify := func(response *graphql.Response) []byte {
		data, err := jsoniter.Marshal(response)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		return data
	}
	return gomega.WithTransform(stringify, gomega.MatchJSON(responseJSON))
}

// MatchDataInJSON matches the data of a *graphql.Response against the given JSON document. It
// fails if the response carries any error.
func MatchDataInJSON(dataJSON string) types.GomegaMatcher {
	return gomega.And(
		gomega.WithTransform(func(response *graphql.Response) interface{} {
			return response.Errors
		}, gomega.BeEmpty()),
		gomega.WithTransform(func(response *graphql.Response) []byte {
			return response.Data
		}, gomega.MatchJSON(dataJSON)),
	)
}
