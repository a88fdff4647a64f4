package models

// Preço em centavos.
type Servico struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome           string `gorm:"size:255;not null" json:"nome"`
	Descricao      string `gorm:"type:text" json:"descricao"`
	Preco          int    `gorm:"not null" json:"preco"`
	DuracaoMinutos int    `gorm:"not null" json:"duracaoMinutos"`
	Ativo          *bool  `gorm:"default:true" json:"ativo"`
}

func (Servico) TableName() string { return "servicos" }

func (s *Servico) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "nome":
			err = setField(key, raw, &s.Nome)
		case "descricao":
			err = setField(key, raw, &s.Descricao)
		case "preco":
			err = setField(key, raw, &s.Preco)
		case "duracaoMinutos":
			err = setField(key, raw, &s.DuracaoMinutos)
		case "ativo":
			err = setField(key, raw, &s.Ativo)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
