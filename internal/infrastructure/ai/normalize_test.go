package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "cerca de markdown com linguagem",
			input:    "Claro, segue:\n```json\n{\"a\": 1}\n```\nEspero ter ajudado.",
			expected: `{"a": 1}`,
		},
		{
			name:     "cerca de markdown sem linguagem",
			input:    "```\n[1, 2]\n```",
			expected: `[1, 2]`,
		},
		{
			name:     "objeto solto no meio do texto",
			input:    `O resultado é {"ok": true} conforme pedido.`,
			expected: `{"ok": true}`,
		},
		{
			name:     "array solto",
			input:    `resposta: [{"x": 1}]`,
			expected: `[{"x": 1}]`,
		},
		{
			name:    "sem nenhum JSON",
			input:   "Desculpe, não consigo responder isso.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePayload(t *testing.T) {
	t.Run("repara aspas dobradas", func(t *testing.T) {
		payload, err := ParsePayload(`{"strengths": [""Alta taxa de comparecimento.""]}`)
		require.NoError(t, err)
		// O objeto tem uma única chave cujo valor é um array: desembrulha
		arr, ok := payload.([]interface{})
		require.True(t, ok)
		assert.Equal(t, "Alta taxa de comparecimento.", arr[0])
	})

	t.Run("desembrulha objeto de chave única", func(t *testing.T) {
		payload, err := ParsePayload(`{"suggestions": [{"patientId": "p001"}]}`)
		require.NoError(t, err)
		arr, ok := payload.([]interface{})
		require.True(t, ok)
		assert.Len(t, arr, 1)
	})

	t.Run("não desembrulha valor escalar", func(t *testing.T) {
		payload, err := ParsePayload(`{"total": 10}`)
		require.NoError(t, err)
		obj, ok := payload.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(10), obj["total"])
	})

	t.Run("JSON malformado é erro", func(t *testing.T) {
		_, err := ParsePayload("```json\n{invalid}\n```")
		assert.Error(t, err)
	})
}

func TestNormalizeSuggestions(t *testing.T) {
	t.Run("array direto com chaves canônicas", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{
				"patientId":    "p001",
				"patientName":  "Artur Silva",
				"patientPhone": "5588987654321",
				"type":         "reminder",
				"message":      "Olá Artur Silva.",
				"reasoning":    "Consulta em 48h.",
			},
		}
		suggestions, err := NormalizeSuggestions(raw)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "p001", suggestions[0].PatientID)
		assert.Equal(t, "Consulta em 48h.", suggestions[0].Reasoning)
	})

	t.Run("chaves alternativas snake_case", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{
				"patient_id":      "p002",
				"name":            "Beatriz Costa",
				"phone":           "5588911112222",
				"suggestion_type": "follow-up",
				"text":            "Olá Beatriz.",
				"reason":          "Retorno pendente.",
			},
		}
		suggestions, err := NormalizeSuggestions(raw)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "p002", suggestions[0].PatientID)
		assert.Equal(t, "Beatriz Costa", suggestions[0].PatientName)
		assert.Equal(t, "follow-up", suggestions[0].Type)
		assert.Equal(t, "Olá Beatriz.", suggestions[0].Message)
	})

	t.Run("array embrulhado em objeto", func(t *testing.T) {
		raw := map[string]interface{}{
			"suggestions": []interface{}{
				map[string]interface{}{
					"patientId":    "p003",
					"patientName":  "Carlos",
					"patientPhone": "5588933334444",
					"type":         "campaign",
					"message":      "Olá Carlos.",
				},
			},
		}
		suggestions, err := NormalizeSuggestions(raw)
		require.NoError(t, err)
		assert.Len(t, suggestions, 1)
	})

	t.Run("itens incompletos são descartados", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"patientId": "p004", "type": "reminder"},
			"não é um objeto",
		}
		suggestions, err := NormalizeSuggestions(raw)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("formato inesperado é erro", func(t *testing.T) {
		_, err := NormalizeSuggestions(map[string]interface{}{"mensagem": "nada aqui"})
		assert.Error(t, err)
	})
}

func TestNormalizeSwot(t *testing.T) {
	t.Run("chaves canônicas", func(t *testing.T) {
		raw := map[string]interface{}{
			"strengths":     []interface{}{"Força A"},
			"weaknesses":    []interface{}{"Fraqueza B"},
			"opportunities": []interface{}{"Oportunidade C"},
			"threats":       []interface{}{"Ameaça D"},
		}
		swot, err := NormalizeSwot(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"Força A"}, swot.Strengths)
		assert.Equal(t, []string{"Ameaça D"}, swot.Threats)
	})

	t.Run("aliases em português", func(t *testing.T) {
		raw := map[string]interface{}{
			"Forças":        []interface{}{"Equipe experiente"},
			"fraquezas":     []interface{}{"Alta taxa de faltas"},
			"Oportunidades": []interface{}{"Novo município"},
			"ameaças":       []interface{}{"Concorrência"},
		}
		swot, err := NormalizeSwot(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"Equipe experiente"}, swot.Strengths)
		assert.Equal(t, []string{"Alta taxa de faltas"}, swot.Weaknesses)
	})

	t.Run("quadrante em string única é quebrado por linha", func(t *testing.T) {
		raw := map[string]interface{}{
			"strengths": "- Item um\n* Item dois\n3. Item três\n",
		}
		swot, err := NormalizeSwot(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"Item um", "Item dois", "Item três"}, swot.Strengths)
		assert.Empty(t, swot.Weaknesses)
	})

	t.Run("payload sem quadrantes é erro", func(t *testing.T) {
		_, err := NormalizeSwot(map[string]interface{}{"resumo": "nada"})
		assert.Error(t, err)
	})

	t.Run("payload não-objeto é erro", func(t *testing.T) {
		_, err := NormalizeSwot([]interface{}{"a"})
		assert.Error(t, err)
	})
}
