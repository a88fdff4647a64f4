package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func TestClienteApplyFields(t *testing.T) {
	var cl Cliente
	err := cl.ApplyFields(FieldMap{
		"nome":     raw(`"Ana"`),
		"telefone": raw(`"111"`),
		"email":    raw(`"ana@example.com"`),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", cl.Nome)
	assert.Equal(t, "111", cl.Telefone)
	assert.Equal(t, "ana@example.com", cl.Email)
	assert.Nil(t, cl.DataNascimento)
}

func TestClienteApplyFieldsDataNascimento(t *testing.T) {
	var cl Cliente
	err := cl.ApplyFields(FieldMap{
		"dataNascimento": raw(`"1990-05-20T00:00:00Z"`),
	})
	require.NoError(t, err)

	require.NotNil(t, cl.DataNascimento)
	assert.Equal(t, 1990, cl.DataNascimento.Year())
}

func TestApplyFieldsKeepsAbsentFields(t *testing.T) {
	p := Produto{Nome: "Esmalte", Preco: 1500, Estoque: 10, EstoqueMinimo: 2}

	err := p.ApplyFields(FieldMap{"estoque": raw(`5`)})
	require.NoError(t, err)

	assert.Equal(t, 5, p.Estoque)
	assert.Equal(t, "Esmalte", p.Nome)
	assert.Equal(t, 1500, p.Preco)
	assert.Equal(t, 2, p.EstoqueMinimo)
}

func TestApplyFieldsAtivoFalse(t *testing.T) {
	var p Produto
	err := p.ApplyFields(FieldMap{"ativo": raw(`false`)})
	require.NoError(t, err)

	require.NotNil(t, p.Ativo)
	assert.False(t, *p.Ativo)
}

func TestApplyFieldsUnknownField(t *testing.T) {
	var cl Cliente
	err := cl.ApplyFields(FieldMap{
		"nome":        raw(`"Ana"`),
		"inexistente": raw(`1`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inexistente")
}

func TestApplyFieldsRejectsID(t *testing.T) {
	var s Servico
	err := s.ApplyFields(FieldMap{"id": raw(`7`)})
	require.Error(t, err)
	assert.Zero(t, s.ID)
}

func TestApplyFieldsWrongType(t *testing.T) {
	var p Produto
	err := p.ApplyFields(FieldMap{"preco": raw(`"caro"`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preco")
}

func TestTransacaoOptionalIDs(t *testing.T) {
	var tr Transacao
	err := tr.ApplyFields(FieldMap{
		"tipo":            raw(`"servico"`),
		"clienteId":       raw(`1`),
		"funcionarioId":   raw(`3`),
		"agendamentoId":   raw(`null`),
		"valor":           raw(`3500`),
		"metodoPagamento": raw(`"pix"`),
		"dataTransacao":   raw(`"2026-09-12T10:15:00Z"`),
	})
	require.NoError(t, err)

	require.NotNil(t, tr.FuncionarioID)
	assert.Equal(t, uint(3), *tr.FuncionarioID)
	assert.Nil(t, tr.AgendamentoID)
	assert.Equal(t, time.Date(2026, 9, 12, 10, 15, 0, 0, time.UTC), tr.DataTransacao)
}

func TestUserSenhaIsHashed(t *testing.T) {
	var u User
	err := u.ApplyFields(FieldMap{
		"email": raw(`"dona@salao.com"`),
		"senha": raw(`"s3gr3do"`),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "s3gr3do", u.Senha)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte("s3gr3do")))
}

func TestUserBeforeCreateFillsOpenID(t *testing.T) {
	u := User{Email: "dona@salao.com"}
	require.NoError(t, u.BeforeCreate(nil))
	assert.NotEmpty(t, u.OpenID)

	// identidade externa fornecida não é sobrescrita
	u2 := User{OpenID: "ext-123", Email: "outra@salao.com"}
	require.NoError(t, u2.BeforeCreate(nil))
	assert.Equal(t, "ext-123", u2.OpenID)
}
