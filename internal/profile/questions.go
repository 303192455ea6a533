// Package profile implements the investor-profile questionnaire: the fixed
// question catalog, the per-user answer store, and the mapping from answers
// to recommendation keys shown on the dashboard.
package profile

// Option is one selectable answer of a question.
type Option struct {
	Label string
	Value string
}

// Question is one entry of the fixed questionnaire.
type Question struct {
	ID      string
	Text    string
	Options []Option
}

// Answers maps question id to the selected option value.
type Answers map[string]string

// Questions returns the questionnaire in presentation order.
func Questions() []Question {
	return []Question{
		{
			ID:   "experience",
			Text: "Qual o seu nível de experiência com investimentos?",
			Options: []Option{
				{Label: "Nenhuma experiência", Value: "none"},
				{Label: "Alguma experiência", Value: "some"},
				{Label: "Muita experiência", Value: "a_lot"},
			},
		},
		{
			ID:   "objective",
			Text: "Qual é o seu principal objetivo ao investir?",
			Options: []Option{
				{Label: "Preservar capital", Value: "preserve"},
				{Label: "Obter renda", Value: "income"},
				{Label: "Crescimento agressivo", Value: "growth"},
			},
		},
		{
			ID:   "risk",
			Text: "Como você se sente em relação ao risco?",
			Options: []Option{
				{Label: "Evito riscos", Value: "avoid"},
				{Label: "Aceito algum risco", Value: "some"},
				{Label: "Busco altos retornos", Value: "high"},
			},
		},
		{
			ID:   "investmentHorizon",
			Text: "Qual o seu horizonte de investimento?",
			Options: []Option{
				{Label: "Curto prazo (até 2 anos)", Value: "shortTerm"},
				{Label: "Médio prazo (2 a 5 anos)", Value: "mediumTerm"},
				{Label: "Longo prazo (acima de 5 anos)", Value: "longTerm"},
			},
		},
		{
			ID:   "availableAmount",
			Text: "Qual valor aproximado você tem disponível para investir inicialmente?",
			Options: []Option{
				{Label: "Até R$ 1.000", Value: "upTo1000"},
				{Label: "R$ 1.001 a R$ 5.000", Value: "1001To5000"},
				{Label: "R$ 5.001 a R$ 20.000", Value: "5001To20000"},
				{Label: "Acima de R$ 20.000", Value: "over20000"},
			},
		},
		{
			ID:   "esgInterest",
			Text: "Você se interessa por investimentos com foco em sustentabilidade (ESG)?",
			Options: []Option{
				{Label: "Sim", Value: "yes"},
				{Label: "Não", Value: "no"},
			},
		},
		{
			ID:   "monthlyIncome",
			Text: "Qual a sua renda mensal aproximada?",
			Options: []Option{
				{Label: "Até R$ 2.000", Value: "upTo2000"},
				{Label: "R$ 2.001 a R$ 5.000", Value: "2001To5000"},
				{Label: "R$ 5.001 a R$ 10.000", Value: "5001To10000"},
				{Label: "Acima de R$ 10.000", Value: "over10000"},
			},
		},
		{
			ID:   "financialSituation",
			Text: "Qual a sua situação financeira atual?",
			Options: []Option{
				{Label: "Estável", Value: "stable"},
				{Label: "Confortável", Value: "comfortable"},
				{Label: "Precária", Value: "precarious"},
			},
		},
	}
}

// QuestionByID returns the question with the given id, or false.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
