package cli

import (
	"context"
	"fmt"
)

// Motos lists the yard inventory.
func (a *App) Motos(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Faça login para ver as motos.")
		return nil
	}

	for _, m := range a.inventory.Motos() {
		line := fmt.Sprintf("%-8s %-16s %d  %6d km  %s", m.Placa, m.Modelo, m.Ano, m.Quilometragem, m.Estado)
		if m.Condicoes != "" {
			line += " — " + m.Condicoes
		}
		printlnFn(line)
	}
	return nil
}

// Resumo prints the dashboard counts.
func (a *App) Resumo(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Faça login para ver o resumo.")
		return nil
	}

	r := a.inventory.Resumo()
	printlnFn(fmt.Sprintf("Motos: %d no total", r.TotalMotos))
	for estado, n := range r.PorEstado {
		printlnFn(fmt.Sprintf("  %-16s %d", estado, n))
	}
	printlnFn(fmt.Sprintf("Câmeras: %d ativas de %d", r.CamerasAtivas, r.TotalCameras))
	return nil
}
