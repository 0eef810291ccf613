// Package models defines the records shared across the application layers.
package models

import "time"

// User is one registered account. The JSON tags match the snapshot layout
// the mobile app persisted under the "usuarios" key, so an existing local
// store keeps loading; dates travel as RFC 3339 text.
type User struct {
	ID        int       `json:"idUsuario"`
	Name      string    `json:"nomeUsuario"`
	CPF       string    `json:"cpfUsuario"`
	Password  string    `json:"senhaUsuario"`
	CNH       string    `json:"cnhUsuario"`
	Email     string    `json:"emailUsuario"`
	Token     string    `json:"tokenUsuario,omitempty"`
	BirthDate time.Time `json:"dataNascimentoUsuario"`
	CreatedAt time.Time `json:"criadoEmUsuario"`
}
