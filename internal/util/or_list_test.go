/**
 * Copyright (c) 2018, The Artemis Authors.
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

package util_test

import (
	"github.com/mattfenwick/graphqllint/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("OrList", func() {
	DescribeTable("joins expected labels",
		func(items []string, limit int, quoted bool, expected string) {
			Expect(util.OrList(items, limit, quoted)).Should(Equal(expected))
		},
		Entry("nil", nil, 0, false, ""),
		Entry("empty", []string{}, 3, true, ""),
		Entry("one label", []string{"selection set"}, 0, false, "selection set"),
		Entry("one quoted label", []string{"on"}, 0, true, `"on"`),
		Entry("two labels", []string{`"}"`, "<EOF>"}, 0, false, `"}" or <EOF>`),
		Entry("three labels", []string{"name", "number", "string"}, 0, false, "name, number, or string"),
		Entry("quoted labels", []string{"A", "B", "C"}, 0, true, `"A", "B", or "C"`),
		Entry("limited", []string{"A", "B", "C", "D"}, 2, false, "A or B"),
		Entry("limit above length", []string{"A", "B"}, 5, false, "A or B"),
	)
})
