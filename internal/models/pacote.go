package models

// Pacote promocional. servicosInclusos é texto livre (lista separada por
// vírgula no frontend); validade em dias.
type Pacote struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome             string `gorm:"size:255;not null" json:"nome"`
	Descricao        string `gorm:"type:text" json:"descricao"`
	Preco            int    `gorm:"not null" json:"preco"`
	PrecoOriginal    int    `gorm:"not null" json:"precoOriginal"`
	ServicosInclusos string `gorm:"type:text;not null" json:"servicosInclusos"`
	Validade         int    `gorm:"not null" json:"validade"`
	Ativo            *bool  `gorm:"default:true" json:"ativo"`
}

func (Pacote) TableName() string { return "pacotes" }

func (p *Pacote) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "nome":
			err = setField(key, raw, &p.Nome)
		case "descricao":
			err = setField(key, raw, &p.Descricao)
		case "preco":
			err = setField(key, raw, &p.Preco)
		case "precoOriginal":
			err = setField(key, raw, &p.PrecoOriginal)
		case "servicosInclusos":
			err = setField(key, raw, &p.ServicosInclusos)
		case "validade":
			err = setField(key, raw, &p.Validade)
		case "ativo":
			err = setField(key, raw, &p.Ativo)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
