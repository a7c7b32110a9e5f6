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

package combinator

// Seq runs parsers in order and yields their values as a []interface{}. It fails with the first
// failure.
func Seq(parsers ...Parser) Parser {
	return func(in Input) Result {
		var (
			values = make([]interface{}, 0, len(parsers))
			err    *Error
			cur    = in
		)

		for _, p := range parsers {
			result := p(cur)
			switch result.Status {
			case StatusFatal:
				return result
			case StatusFailure:
				return failure(Merge(err, result.Err))
			}
			values = append(values, result.Value)
			err = Merge(err, result.Err)
			cur = result.Rest
		}

		return success(values, cur, err)
	}
}

// Map runs p and transforms its value with f on success.
func Map(p Parser, f func(value interface{}) interface{}) Parser {
	return func(in Input) Result {
		result := p(in)
		if result.Status == StatusSuccess {
			result.Value = f(result.Value)
		}
		return result
	}
}

// Seq2L runs a and then b, yielding the value of a.
func Seq2L(a, b Parser) Parser {
	return Map(Seq(a, b), func(value interface{}) interface{} {
		return value.([]interface{})[0]
	})
}

// Seq2R runs a and then b, yielding the value of b.
func Seq2R(a, b Parser) Parser {
	return Map(Seq(a, b), func(value interface{}) interface{} {
		return value.([]interface{})[1]
	})
}

// Alt tries parsers in order from the same Input and yields the first success. A fatal failure
// stops the search. When all alternatives fail, their errors are merged.
func Alt(parsers ...Parser) Parser {
	return func(in Input) Result {
		var err *Error
		for _, p := range parsers {
			result := p(in)
			switch result.Status {
			case StatusSuccess:
				result.Err = Merge(err, result.Err)
				return result
			case StatusFatal:
				return result
			}
			err = Merge(err, result.Err)
		}

		if err == nil {
			err = NewError(in.pos)
		}
		return failure(err)
	}
}

// Many0 applies p as many times as it matches and yields the values as a []interface{}, which is
// empty (but not nil) when p never matched.
func Many0(p Parser) Parser {
	return many(p, 0)
}

// Many1 is like Many0 but requires at least one match. The failure of the first attempt is
// returned as is.
func Many1(p Parser) Parser {
	return many(p, 1)
}

func many(p Parser, min int) Parser {
	return func(in Input) Result {
		var (
			values = []interface{}{}
			err    *Error
			cur    = in
		)

		for {
			result := p(cur)
			switch result.Status {
			case StatusFatal:
				return result
			case StatusFailure:
				err = Merge(err, result.Err)
				if len(values) < min {
					return failure(err)
				}
				return success(values, cur, err)
			}

			values = append(values, result.Value)
			err = Merge(err, result.Err)

			// A match that consumed nothing would match again forever.
			if result.Rest.pos.Offset == cur.pos.Offset {
				return success(values, result.Rest, err)
			}
			cur = result.Rest
		}
	}
}

// Optional yields the value of p, or nil without consuming anything when p fails recoverably.
func Optional(p Parser) Parser {
	return func(in Input) Result {
		result := p(in)
		if result.Status == StatusFailure {
			return success(nil, in, result.Err)
		}
		return result
	}
}

// Cut commits to p: a recoverable failure of p becomes fatal. The fatal error is reported at the
// position where p started, expecting label, with the original failure as its Cause. Fatal
// failures of p are passed through untouched so that the innermost commitment is reported.
func Cut(label string, p Parser) Parser {
	return func(in Input) Result {
		result := p(in)
		if result.Status != StatusFailure {
			return result
		}
		return fatal(&Error{
			Position: in.pos,
			Expected: []string{label},
			Cause:    result.Err,
		})
	}
}

// Skip runs p and discards whatever it yields. The Input's mark is left where it was so that the
// skipped characters do not count towards the extent of an enclosing node. Recoverable failures of
// p are ignored.
func Skip(p Parser) Parser {
	return func(in Input) Result {
		result := p(in)
		switch result.Status {
		case StatusFatal:
			return result
		case StatusFailure:
			return success(nil, in, nil)
		}
		rest := result.Rest
		rest.mark = in.mark
		return success(nil, rest, nil)
	}
}

// Munch turns p into a token: p followed by any amount of trivia, which is skipped. Errors that p
// reports after a successful match (such as "expected digit" at the end of a number) are dropped;
// a token is matched or not as a whole.
func Munch(p Parser, trivia Parser) Parser {
	skip := Skip(trivia)
	return func(in Input) Result {
		result := p(in)
		if result.Status != StatusSuccess {
			return result
		}

		after := skip(result.Rest)
		if after.Status != StatusSuccess {
			return after
		}
		return success(result.Value, after.Rest, nil)
	}
}

// Label runs p and replaces its recoverable failure with one at the starting position expecting
// label. Use it to report a multi-character construct as a single expected item.
func Label(label string, p Parser) Parser {
	return func(in Input) Result {
		result := p(in)
		if result.Status == StatusFailure {
			return failure(NewError(in.pos, label))
		}
		return result
	}
}
