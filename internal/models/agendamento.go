package models

import "time"

// Os ids referenciados são inteiros simples, sem constraint de chave
// estrangeira: a integridade fica por conta de quem consome a API.
type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID     uint      `gorm:"not null" json:"clienteId"`
	FuncionarioID uint      `gorm:"not null" json:"funcionarioId"`
	ServicoID     uint      `gorm:"not null" json:"servicoId"`
	DataHora      time.Time `gorm:"not null" json:"dataHora"`
	Status        string    `gorm:"size:20;not null;default:'agendado'" json:"status"`
	Observacoes   string    `gorm:"type:text" json:"observacoes"`
}

func (Agendamento) TableName() string { return "agendamentos" }

func (a *Agendamento) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "clienteId":
			err = setField(key, raw, &a.ClienteID)
		case "funcionarioId":
			err = setField(key, raw, &a.FuncionarioID)
		case "servicoId":
			err = setField(key, raw, &a.ServicoID)
		case "dataHora":
			err = setField(key, raw, &a.DataHora)
		case "status":
			err = setField(key, raw, &a.Status)
		case "observacoes":
			err = setField(key, raw, &a.Observacoes)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
