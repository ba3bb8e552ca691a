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

package logging_test

import (
	"context"

	"github.com/botobag/bookshelf/internal/logging"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Logging", func() {
	It("creates loggers in both formats", func() {
		for _, format := range []string{logging.FormatJSON, logging.FormatConsole} {
			logger, err := logging.New("warn", format)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(logger.Core().Enabled(zapcore.InfoLevel)).Should(BeFalse())
			Expect(logger.Core().Enabled(zapcore.WarnLevel)).Should(BeTrue())
		}
	})

	It("rejects unknown level", func() {
		_, err := logging.New("loud", logging.FormatJSON)
		Expect(err).Should(HaveOccurred())
	})

	It("rejects unknown format", func() {
		_, err := logging.New("info", "xml")
		Expect(err).Should(MatchError(`logging: unknown format "xml"`))
	})

	It("reports resolver panics", func() {
		core, logs := observer.New(zapcore.DebugLevel)
		logging.PanicLogger(zap.New(core)).LogPanic(context.Background(), "boom")

		Expect(logs.Len()).Should(Equal(1))
		entry := logs.All()[0]
		Expect(entry.Level).Should(Equal(zapcore.ErrorLevel))
		Expect(entry.ContextMap()).Should(HaveKeyWithValue("panic", "boom"))
	})
})
