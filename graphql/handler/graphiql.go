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

package handler

import (
	"html/template"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// acceptsHTML returns true if the client prefers an HTML page, which is the case for a browser
// navigating to the endpoint.
func acceptsHTML(r *http.Request) bool {
	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.SplitN(accept, ";", 2)[0])
		switch mediaType {
		case "text/html":
			return true
		case "application/json":
			return false
		}
	}
	return false
}

var graphiqlTemplate = template.Must(template.New("graphiql").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8" />
	<title>GraphiQL</title>
	<meta name="robots" content="noindex" />
	<style>
		body { height: 100%; margin: 0; width: 100%; overflow: hidden; }
		#graphiql { height: 100vh; }
	</style>
	<link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
	<script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
</head>
<body>
	<div id="graphiql">Loading...</div>
	<script>
		var fetcher = GraphiQL.createFetcher({ url: window.location.pathname });
		ReactDOM.createRoot(document.getElementById('graphiql')).render(
			React.createElement(GraphiQL, {
				fetcher: fetcher,
				defaultQuery: {{.Query}},
				variables: {{.Variables}},
				operationName: {{.OperationName}},
			})
		);
	</script>
</body>
</html>
`))

type graphiqlData struct {
	Query         string
	Variables     string
	OperationName string
}

// renderGraphiQL writes a GraphiQL page prefilled with the query in req.
func renderGraphiQL(w http.ResponseWriter, req *HTTPRequest) error {
	data := graphiqlData{
		Query:         req.Query,
		OperationName: req.OperationName,
	}
	if len(req.Variables) > 0 {
		variables, err := jsoniter.MarshalIndent(req.Variables, "", "  ")
		if err != nil {
			return err
		}
		data.Variables = string(variables)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	return graphiqlTemplate.Execute(w, data)
}
