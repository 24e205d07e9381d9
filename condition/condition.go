/*
 * Copyright 2025 The Streamwind Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package condition compiles row filter predicates (WHERE clauses) into
// executable programs using expr-lang. Filters run per row before window
// assignment; they never see aggregate results.
package condition

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Condition evaluates a boolean predicate against a row environment.
type Condition interface {
	Evaluate(env interface{}) bool
}

// ExprCondition is a Condition backed by a compiled expr program.
type ExprCondition struct {
	program *vm.Program
}

// New compiles a predicate expression. Referencing a column absent from a
// row is not an error; the comparison simply yields false for that row.
func New(expression string) (Condition, error) {
	options := []expr.Option{
		expr.Function("like_match", func(params ...any) (any, error) {
			if len(params) != 2 {
				return false, fmt.Errorf("like_match requires 2 parameters")
			}
			text, ok1 := params[0].(string)
			pattern, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("like_match requires string parameters")
			}
			return likePatternToRegexp(pattern).MatchString(text), nil
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, fmt.Errorf("compile filter error: %w", err)
	}
	return &ExprCondition{program: program}, nil
}

// Evaluate runs the predicate. Runtime evaluation errors (type
// mismatches on malformed rows) count as non-matching rather than
// failing the query.
func (ec *ExprCondition) Evaluate(env interface{}) bool {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// likePatternToRegexp translates a SQL LIKE pattern into an anchored
// regexp: % matches any sequence, _ matches a single character, all other
// characters match literally.
func likePatternToRegexp(pattern string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.MustCompile(sb.String())
}
