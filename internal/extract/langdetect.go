package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

type candidateLang struct {
	tag  string
	lang *sitter.Language
}

// Candidates are tried in order; tsx first because most story snippets are
// JSX and tsx accepts plain JS/TS as well.
var candidateLangs = []candidateLang{
	{"tsx", tsx.GetLanguage()},
	{"typescript", typescript.GetLanguage()},
	{"javascript", javascript.GetLanguage()},
	{"html", html.GetLanguage()},
}

// DetectLanguage guesses a fence label for an unlabeled code snippet by
// parsing it with candidate tree-sitter grammars and picking the first that
// parses without errors. Returns "" when no candidate parses cleanly, which
// produces a plain unlabeled fence downstream.
func DetectLanguage(code string) string {
	source := []byte(strings.TrimSpace(code))
	if len(source) == 0 {
		return ""
	}

	for _, c := range candidateLangs {
		parser := sitter.NewParser()
		parser.SetLanguage(c.lang)
		tree, err := parser.ParseCtx(context.Background(), nil, source)
		if err != nil {
			continue
		}
		root := tree.RootNode()
		if root != nil && !root.HasError() && root.ChildCount() > 0 {
			return c.tag
		}
	}
	return ""
}
