package models

import "time"

// Registro passivo de venda (serviço, produto ou pacote). Valores em
// centavos. A comissão é gravada como veio; não é calculada aqui.
type Transacao struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Tipo                string    `gorm:"size:20;not null" json:"tipo"`
	ClienteID           uint      `gorm:"not null" json:"clienteId"`
	FuncionarioID       *uint     `json:"funcionarioId"`
	AgendamentoID       *uint     `json:"agendamentoId"`
	Valor               int       `gorm:"not null" json:"valor"`
	ComissaoFuncionario int       `gorm:"not null;default:0" json:"comissaoFuncionario"`
	MetodoPagamento     string    `gorm:"size:20;not null" json:"metodoPagamento"`
	Descricao           string    `gorm:"type:text" json:"descricao"`
	DataTransacao       time.Time `gorm:"not null" json:"dataTransacao"`
}

func (Transacao) TableName() string { return "transacoes" }

func (t *Transacao) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "tipo":
			err = setField(key, raw, &t.Tipo)
		case "clienteId":
			err = setField(key, raw, &t.ClienteID)
		case "funcionarioId":
			err = setField(key, raw, &t.FuncionarioID)
		case "agendamentoId":
			err = setField(key, raw, &t.AgendamentoID)
		case "valor":
			err = setField(key, raw, &t.Valor)
		case "comissaoFuncionario":
			err = setField(key, raw, &t.ComissaoFuncionario)
		case "metodoPagamento":
			err = setField(key, raw, &t.MetodoPagamento)
		case "descricao":
			err = setField(key, raw, &t.Descricao)
		case "dataTransacao":
			err = setField(key, raw, &t.DataTransacao)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
