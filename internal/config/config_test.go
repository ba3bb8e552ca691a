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

package config

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func envOf(env map[string]string) lookupEnvFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

var _ = Describe("Config", func() {
	It("uses defaults", func() {
		config, err := load(nil, envOf(nil))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config).Should(Equal(&Config{
			Addr:           ":4000",
			Path:           "/graphql",
			GraphiQL:       true,
			MaxBodySize:    10 << 20,
			MaxParallelism: 10,
			Seed:           true,
			LogLevel:       "info",
			LogFormat:      "console",
		}))
	})

	It("loads DefaultConfig when nothing is given", func() {
		Expect(DefaultConfig().Validate()).Should(Succeed())

		config, err := load([]string{}, envOf(map[string]string{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config).Should(Equal(DefaultConfig()))
	})

	It("reads flags", func() {
		config, err := load([]string{
			"-addr", "127.0.0.1:8080",
			"-path", "/api",
			"-graphiql=false",
			"-seed=false",
			"-max-body-size", "1024",
			"-max-parallelism", "2",
			"-log-level", "debug",
			"-log-format", "json",
		}, envOf(nil))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config).Should(Equal(&Config{
			Addr:           "127.0.0.1:8080",
			Path:           "/api",
			GraphiQL:       false,
			MaxBodySize:    1024,
			MaxParallelism: 2,
			Seed:           false,
			LogLevel:       "debug",
			LogFormat:      "json",
		}))
	})

	It("reads environment variables", func() {
		config, err := load(nil, envOf(map[string]string{
			"BOOKSHELF_ADDR":            ":9000",
			"BOOKSHELF_GRAPHIQL":        "false",
			"BOOKSHELF_MAX_PARALLELISM": "3",
			"BOOKSHELF_MAX_BODY_SIZE":   "2048",
			"BOOKSHELF_LOG_FORMAT":      "json",
		}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Addr).Should(Equal(":9000"))
		Expect(config.GraphiQL).Should(BeFalse())
		Expect(config.MaxParallelism).Should(Equal(3))
		Expect(config.MaxBodySize).Should(BeEquivalentTo(2048))
		Expect(config.LogFormat).Should(Equal("json"))
	})

	It("prefers flags over environment variables", func() {
		config, err := load([]string{"-addr", ":7000"}, envOf(map[string]string{
			"BOOKSHELF_ADDR": ":9000",
			"BOOKSHELF_SEED": "false",
		}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Addr).Should(Equal(":7000"))
		Expect(config.Seed).Should(BeFalse())
	})

	It("ignores empty environment variables", func() {
		config, err := load(nil, envOf(map[string]string{
			"BOOKSHELF_PATH":     "",
			"BOOKSHELF_GRAPHIQL": "",
		}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Path).Should(Equal("/graphql"))
		Expect(config.GraphiQL).Should(BeTrue())
	})

	It("rejects malformed environment variables", func() {
		_, err := load(nil, envOf(map[string]string{"BOOKSHELF_SEED": "maybe"}))
		Expect(err).Should(MatchError(ContainSubstring("invalid BOOKSHELF_SEED")))

		_, err = load(nil, envOf(map[string]string{"BOOKSHELF_MAX_PARALLELISM": "many"}))
		Expect(err).Should(MatchError(ContainSubstring("invalid BOOKSHELF_MAX_PARALLELISM")))
	})

	It("rejects unknown flags", func() {
		_, err := load([]string{"-port", "4000"}, envOf(nil))
		Expect(err).Should(HaveOccurred())
	})

	DescribeTable("rejects invalid values",
		func(args []string, message string) {
			_, err := load(args, envOf(nil))
			Expect(err).Should(MatchError(ContainSubstring(message)))
		},
		Entry("path", []string{"-path", "graphql"}, `path must start with "/"`),
		Entry("max body size", []string{"-max-body-size", "0"}, "max body size must be positive"),
		Entry("max parallelism", []string{"-max-parallelism", "0"}, "max parallelism must be positive"),
		Entry("log level", []string{"-log-level", "loud"}, "unrecognized level"),
		Entry("log format", []string{"-log-format", "xml"}, `unknown log format "xml"`),
	)
})
