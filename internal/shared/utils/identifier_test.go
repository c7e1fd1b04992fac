package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("app")
	assert.True(t, strings.HasPrefix(id, "app"))
	assert.Greater(t, len(id), len("app"))
}

func TestGeneratePriceEntryID(t *testing.T) {
	assert.Equal(t, "pte-pt01-proc1", GeneratePriceEntryID("pt01", "proc1"))

	// Determinístico: o mesmo par produz sempre o mesmo id
	assert.Equal(t, GeneratePriceEntryID("pt02", "proc9"), GeneratePriceEntryID("pt02", "proc9"))
}
