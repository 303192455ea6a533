// Package content holds the static educational material and the
// recommendation catalog shown by the app. Everything is embedded at build
// time; there is no remote source.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/datarium/datarium/internal/common"
)

//go:embed docs/*.md
var docsFS embed.FS

//go:embed recommendations.json
var recommendationsJSON []byte

// Topic is one educational document.
type Topic struct {
	ID    string
	Title string
	file  string
}

// RecommendationDetail describes one catalog entry referenced by the
// recommendation keys the profile engine produces.
type RecommendationDetail struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	RiskLevel       string `json:"riskLevel"`
	ReturnPotential string `json:"returnPotential"`
}

// topics lists the documents in presentation order.
var topics = []Topic{
	{ID: "stocks", Title: "O que são Ações?", file: "docs/stocks.md"},
	{ID: "funds", Title: "Fundos de Investimento", file: "docs/funds.md"},
	{ID: "fixed-income", Title: "O que é Renda Fixa?", file: "docs/fixed_income.md"},
	{ID: "risk", Title: "Gerenciamento de Risco", file: "docs/risk_management.md"},
	{ID: "planning", Title: "Planejamento Financeiro Básico", file: "docs/financial_planning.md"},
	{ID: "glossary", Title: "Glossário Financeiro", file: "docs/glossary.md"},
	{ID: "faq", Title: "Perguntas Frequentes (FAQ)", file: "docs/faq.md"},
}

// Topics returns the educational topics in presentation order.
func Topics() []Topic {
	return append([]Topic{}, topics...)
}

// TopicMarkdown returns the raw markdown of the topic with the given id.
func TopicMarkdown(id string) (string, error) {
	for _, t := range topics {
		if t.ID == id {
			data, err := docsFS.ReadFile(t.file)
			if err != nil {
				return "", fmt.Errorf("failed to read topic %s: %w", id, err)
			}
			return string(data), nil
		}
	}
	return "", fmt.Errorf("%w: unknown topic %q", common.ErrNotFound, id)
}

// RenderTopic renders the topic's markdown for terminal display.
func RenderTopic(id string, width int) (string, error) {
	md, err := TopicMarkdown(id)
	if err != nil {
		return "", err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// Recommendations returns the full recommendation catalog keyed by the
// recommendation keys of the profile engine.
func Recommendations() (map[string]RecommendationDetail, error) {
	var catalog map[string]RecommendationDetail
	if err := json.Unmarshal(recommendationsJSON, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation catalog: %w", err)
	}
	return catalog, nil
}

// RecommendationByKey resolves a single catalog entry.
func RecommendationByKey(key string) (RecommendationDetail, bool) {
	catalog, err := Recommendations()
	if err != nil {
		return RecommendationDetail{}, false
	}
	detail, ok := catalog[key]
	return detail, ok
}
