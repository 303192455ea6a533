package profile

// Recommendation keys resolved against the content catalog. The keys match
// the catalog entries one to one.
const (
	RecTesouroSelic     = "Tesouro Direto Selic"
	RecCDBDaily         = "CDBs de liquidez diária"
	RecLowRiskFunds     = "Fundos de Renda Fixa de baixo risco"
	RecCDBLongTerm      = "CDBs de médio e longo prazo (prefixados, IPCA+)"
	RecMultimarketFunds = "Fundos Multimercado Moderados"
	RecFIIs             = "Fundos de Investimento Imobiliário (FIIs)"
	RecBlueChips        = "Ações de grandes empresas (Blue Chips)"
	RecStockFunds       = "Fundos de Ações"
	RecCrypto           = "Criptoativos (com cautela e estudo)"
	RecGrowthFocus      = "Foco em ações com potencial de valorização"
	RecIncomeFocus      = "Foco em fundos imobiliários e ações pagadoras de dividendos"
	RecESG              = "Considere Fundos ESG e empresas sustentáveis"
)

// Recommend maps questionnaire answers to an ordered, de-duplicated list of
// recommendation keys. An empty answer set yields no recommendations.
func Recommend(answers Answers) []string {
	var keys []string

	switch answers["risk"] {
	case "avoid":
		keys = append(keys, RecTesouroSelic, RecCDBDaily)
		if answers["availableAmount"] == "upTo1000" {
			keys = append(keys, RecLowRiskFunds)
		}
	case "some":
		keys = append(keys, RecCDBLongTerm, RecMultimarketFunds, RecFIIs)
	case "high":
		keys = append(keys, RecBlueChips, RecStockFunds, RecCrypto)
	}

	switch answers["objective"] {
	case "growth":
		keys = append(keys, RecGrowthFocus)
	case "income":
		keys = append(keys, RecIncomeFocus)
	}

	if answers["esgInterest"] == "yes" {
		keys = append(keys, RecESG)
	}

	seen := make(map[string]struct{}, len(keys))
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}
	return result
}
