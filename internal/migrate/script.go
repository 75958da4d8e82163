package migrate

import (
	"regexp"
	"strings"
)

var (
	lineCommentRe  = regexp.MustCompile(`(?m)--.*$`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// SplitStatements turns the raw text of a migration script into the
// list of executable statements: line and block comments are stripped,
// the remainder is split on semicolons and empty fragments are dropped.
// database/sql executes one statement per call, so multi-statement
// scripts have to be split client-side.
func SplitStatements(script string) []string {
	script = lineCommentRe.ReplaceAllString(script, "")
	script = blockCommentRe.ReplaceAllString(script, "")

	var statements []string
	for _, part := range strings.Split(script, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			statements = append(statements, part)
		}
	}
	return statements
}
