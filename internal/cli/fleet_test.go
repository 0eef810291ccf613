package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotosRequiresLogin(t *testing.T) {
	lines := capturePrintln(t)
	a, _ := newTestApp(t)

	require.NoError(t, a.Motos(context.Background()))
	assert.Contains(t, joined(lines), "Faça login para ver as motos.")
}

func TestMotosListsInventory(t *testing.T) {
	lines := capturePrintln(t)
	a, _ := newTestApp(t)
	scriptInputs(t, []string{seedCPF}, []string{seedPassword})
	require.NoError(t, a.Login(context.Background()))

	*lines = nil
	require.NoError(t, a.Motos(context.Background()))

	out := joined(lines)
	assert.Contains(t, out, "ABC1234")
	assert.Contains(t, out, "Honda CG 160")
	assert.Contains(t, out, "retrovisor quebrado")
	assert.Len(t, *lines, 4)
}

func TestResumoCounts(t *testing.T) {
	lines := capturePrintln(t)
	a, _ := newTestApp(t)

	require.NoError(t, a.Resumo(context.Background()))
	assert.Contains(t, joined(lines), "Faça login para ver o resumo.")

	scriptInputs(t, []string{seedCPF}, []string{seedPassword})
	require.NoError(t, a.Login(context.Background()))

	*lines = nil
	require.NoError(t, a.Resumo(context.Background()))

	out := joined(lines)
	assert.Contains(t, out, "Motos: 4 no total")
	assert.Contains(t, out, "Câmeras: 2 ativas de 4")
}
