package models

import "time"

// Cliente do salão, sem login.
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome           string     `gorm:"size:255;not null" json:"nome"`
	Telefone       string     `gorm:"size:20;not null" json:"telefone"`
	Email          string     `gorm:"size:320" json:"email"`
	DataNascimento *time.Time `json:"dataNascimento"`
	DataRegistro   time.Time  `gorm:"autoCreateTime" json:"dataRegistro"`
	Observacoes    string     `gorm:"type:text" json:"observacoes"`
}

func (Cliente) TableName() string { return "clientes" }

func (cl *Cliente) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "nome":
			err = setField(key, raw, &cl.Nome)
		case "telefone":
			err = setField(key, raw, &cl.Telefone)
		case "email":
			err = setField(key, raw, &cl.Email)
		case "dataNascimento":
			err = setField(key, raw, &cl.DataNascimento)
		case "dataRegistro":
			err = setField(key, raw, &cl.DataRegistro)
		case "observacoes":
			err = setField(key, raw, &cl.Observacoes)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
