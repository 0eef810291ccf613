package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dsakiyama/motopatio/internal/cpf"
	"github.com/dsakiyama/motopatio/internal/models"
	"github.com/dsakiyama/motopatio/internal/registry"
	"github.com/dsakiyama/motopatio/internal/session"
	"github.com/dsakiyama/motopatio/internal/storage"
)

// Input seams, swappable in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

const birthDateLayout = "2006-01-02"

// Login prompts for CPF and password and authenticates. The CPF is
// checked locally first, mirroring the inline form validation of the
// mobile app, so an obviously broken CPF never reaches the registry.
func (a *App) Login(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "CPF", os.Stdout)
	if err != nil {
		return err
	}
	if !cpf.IsValid(raw) {
		printlnFn("CPF inválido")
		return nil
	}

	senha, err := getPassword("Senha", os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.session.Login(ctx, raw, senha)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			printlnFn("CPF ou senha inválidos")
		} else {
			printlnFn("Falha no login:", err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Login efetuado! Bem-vindo(a), %s.", u.Name))
	return nil
}

// Register walks through the registration form: name, CPF, CNH, e-mail,
// birth date and password with confirmation. Form-level checks (CPF mask,
// date format, password match) run before the core is invoked.
func (a *App) Register(ctx context.Context) error {
	nome, err := getSimpleText(a.reader, "Nome completo", os.Stdout)
	if err != nil {
		return err
	}
	if nome == "" {
		printlnFn("O nome não pode ficar vazio")
		return nil
	}

	rawCPF, err := getSimpleText(a.reader, "CPF", os.Stdout)
	if err != nil {
		return err
	}
	if !cpf.IsValid(rawCPF) {
		printlnFn("CPF inválido")
		return nil
	}

	cnh, err := getSimpleText(a.reader, "CNH (opcional)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "E-mail (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	rawNascimento, err := getSimpleText(a.reader, "Data de nascimento (AAAA-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	nascimento, err := time.Parse(birthDateLayout, rawNascimento)
	if err != nil {
		printlnFn("Data de nascimento inválida. Use o formato AAAA-MM-DD.")
		return nil
	}

	senha, err := getPassword("Senha", os.Stdout)
	if err != nil {
		return err
	}
	confirmar, err := getPassword("Confirmar senha", os.Stdout)
	if err != nil {
		return err
	}
	if senha != confirmar {
		printlnFn("As senhas não coincidem")
		return nil
	}

	u, err := a.session.Register(ctx, models.User{
		Name:      nome,
		CPF:       cpf.Format(rawCPF),
		Password:  senha,
		CNH:       cnh,
		Email:     email,
		BirthDate: nascimento,
	})
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrDuplicateCPF):
			printlnFn("Já existe um usuário com este CPF.")
		case errors.Is(err, registry.ErrInvalidCPF):
			printlnFn("CPF inválido")
		default:
			printlnFn("Falha ao registrar usuário:", err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Usuário registrado com sucesso! Bem-vindo(a), %s.", u.Name))
	return nil
}

// WhoAmI prints the authenticated user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Ninguém está logado.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s — CPF %s", u.Name, u.CPF))
	if u.Email != "" {
		printlnFn("E-mail:", u.Email)
	}
	return nil
}

// SignOut ends the session. The user record stays registered.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		a.log.Warn(ctx, "sign-out could not clear the persisted session", "error", err)
	}
	printlnFn("Sessão encerrada.")
	return nil
}

// wiper is the optional bulk-delete surface of the store; the SQLite
// store wipes all keys in one transaction.
type wiper interface {
	Wipe(ctx context.Context, keys ...string) error
}

// Reset discards all locally stored data after confirmation and rebuilds
// the registry and session from the seed.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Apagar todos os dados locais? (s/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "s" && answer != "S" {
		printlnFn("Cancelado.")
		return nil
	}

	if w, ok := a.store.(wiper); ok {
		err = w.Wipe(ctx, storage.KeyUsers, storage.KeySession)
	} else {
		if err = a.store.Remove(ctx, storage.KeyUsers); err == nil {
			err = a.store.Remove(ctx, storage.KeySession)
		}
	}
	if err != nil {
		printlnFn("Falha ao apagar os dados locais:", err)
		return err
	}

	a.registry = registry.New(a.store, a.log, registry.Seed())
	a.session = session.NewManager(a.store, a.registry, a.log)
	if _, err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "restore after reset degraded", "error", err)
	}

	printlnFn("Dados locais removidos.")
	return nil
}
