package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"medsms-core/internal/domain"
)

// Modelos menores devolvem JSON embrulhado em markdown, com aspas dobradas
// ou dentro de uma chave extra. As rotinas abaixo recuperam o payload antes
// de desistir.

var (
	markdownFenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]+?)\\s*```")
	doubledQuoteRe  = regexp.MustCompile(`""([^"]*)""`)
	listPrefixRe    = regexp.MustCompile(`^\s*[-*]?\s*\d*\.?\s*`)
)

// ExtractJSON recorta o trecho JSON de uma resposta de texto livre:
// primeiro cerca de markdown, depois do primeiro ao último colchete/chave
func ExtractJSON(text string) (string, error) {
	if m := markdownFenceRe.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
		return m[1], nil
	}

	firstBracket := strings.Index(text, "[")
	firstBrace := strings.Index(text, "{")

	start := -1
	switch {
	case firstBracket == -1:
		start = firstBrace
	case firstBrace == -1:
		start = firstBracket
	default:
		start = firstBracket
		if firstBrace < firstBracket {
			start = firstBrace
		}
	}

	if start != -1 {
		lastBracket := strings.LastIndex(text, "]")
		lastBrace := strings.LastIndex(text, "}")
		end := lastBracket
		if lastBrace > end {
			end = lastBrace
		}
		if end > start {
			return text[start : end+1], nil
		}
	}

	return "", fmt.Errorf("nenhum objeto ou array JSON válido foi encontrado na resposta da IA")
}

// ParsePayload decodifica a resposta: extrai o JSON, repara aspas dobradas
// e desembrulha objetos com uma única chave cujo valor é o payload real
func ParsePayload(text string) (interface{}, error) {
	jsonString, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	// Remover aspas dobradas que a IA pode adicionar (ex: ""string"")
	jsonString = doubledQuoteRe.ReplaceAllString(jsonString, `"$1"`)

	var parsed interface{}
	if err := json.Unmarshal([]byte(jsonString), &parsed); err != nil {
		return nil, fmt.Errorf("a IA retornou uma resposta em formato JSON inválido: %w", err)
	}

	if obj, ok := parsed.(map[string]interface{}); ok && len(obj) == 1 {
		for _, v := range obj {
			switch v.(type) {
			case map[string]interface{}, []interface{}:
				return v, nil
			}
		}
	}

	return parsed, nil
}

// NormalizeSuggestions converte o payload bruto em sugestões de automação,
// tolerando chaves alternativas (patient_id, suggestion_type, text, reason)
// e arrays embrulhados em objeto. Itens incompletos são descartados.
func NormalizeSuggestions(raw interface{}) ([]domain.AutomationSuggestion, error) {
	if raw == nil {
		return []domain.AutomationSuggestion{}, nil
	}

	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		for _, value := range v {
			if arr, ok := value.([]interface{}); ok {
				items = arr
				break
			}
		}
	}

	if items == nil {
		return nil, fmt.Errorf("a IA retornou uma resposta para automação em um formato inesperado")
	}

	pick := func(obj map[string]interface{}, keys ...string) string {
		for _, key := range keys {
			if value, ok := obj[key]; ok && value != nil {
				if s := fmt.Sprintf("%v", value); s != "" {
					return s
				}
			}
		}
		return ""
	}

	suggestions := make([]domain.AutomationSuggestion, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		suggestion := domain.AutomationSuggestion{
			PatientID:    pick(obj, "patientId", "patient_id"),
			PatientName:  pick(obj, "patientName", "patient_name", "name"),
			PatientPhone: pick(obj, "patientPhone", "patient_phone", "phone"),
			Type:         pick(obj, "type", "suggestion_type"),
			Message:      pick(obj, "message", "text"),
			Reasoning:    pick(obj, "reasoning", "reason"),
		}

		if suggestion.PatientID == "" || suggestion.PatientName == "" ||
			suggestion.PatientPhone == "" || suggestion.Type == "" || suggestion.Message == "" {
			continue
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// swotKeyAliases cobre as variações de idioma e capitalização observadas
var swotKeyAliases = map[string][]string{
	"strengths":     {"strengths", "Strengths", "forces", "Forces", "forças", "Forças"},
	"weaknesses":    {"weaknesses", "Weaknesses", "fraquezas", "Fraquezas"},
	"opportunities": {"opportunities", "Opportunities", "oportunidades", "Oportunidades"},
	"threats":       {"threats", "Threats", "ameaças", "Ameaças"},
}

// NormalizeSwot converte o payload bruto em uma análise SWOT. Quadrantes em
// string única são quebrados por linha, removendo marcadores de lista.
func NormalizeSwot(raw interface{}) (domain.SwotAnalysis, error) {
	obj, _ := raw.(map[string]interface{})

	result := domain.SwotAnalysis{
		Strengths:     findKeyValues(obj, swotKeyAliases["strengths"]),
		Weaknesses:    findKeyValues(obj, swotKeyAliases["weaknesses"]),
		Opportunities: findKeyValues(obj, swotKeyAliases["opportunities"]),
		Threats:       findKeyValues(obj, swotKeyAliases["threats"]),
	}

	if result.Empty() {
		return domain.SwotAnalysis{}, fmt.Errorf("a resposta da IA não continha uma Análise SWOT válida após o processamento")
	}
	return result, nil
}

func findKeyValues(obj map[string]interface{}, keys []string) []string {
	for _, key := range keys {
		value, ok := obj[key]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case []interface{}:
			items := make([]string, 0, len(v))
			for _, item := range v {
				if s := fmt.Sprintf("%v", item); s != "" {
					items = append(items, s)
				}
			}
			return items
		case string:
			var items []string
			for _, line := range strings.Split(v, "\n") {
				line = strings.TrimSpace(listPrefixRe.ReplaceAllString(line, ""))
				if line != "" {
					items = append(items, line)
				}
			}
			return items
		}
	}
	return []string{}
}
