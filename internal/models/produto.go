package models

// Produto de revenda. O estoque mínimo é informativo: nenhuma regra de
// reposição ou baixa automática existe neste backend.
//
// Ativo é ponteiro: com bool puro o gorm pula o zero-value no INSERT por
// causa da tag default, e um "ativo": false explícito viraria true.
type Produto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome          string `gorm:"size:255;not null" json:"nome"`
	Descricao     string `gorm:"type:text" json:"descricao"`
	Preco         int    `gorm:"not null" json:"preco"`
	Estoque       int    `gorm:"not null;default:0" json:"estoque"`
	EstoqueMinimo int    `gorm:"not null;default:0" json:"estoqueMinimo"`
	Ativo         *bool  `gorm:"default:true" json:"ativo"`
}

func (Produto) TableName() string { return "produtos" }

func (p *Produto) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "nome":
			err = setField(key, raw, &p.Nome)
		case "descricao":
			err = setField(key, raw, &p.Descricao)
		case "preco":
			err = setField(key, raw, &p.Preco)
		case "estoque":
			err = setField(key, raw, &p.Estoque)
		case "estoqueMinimo":
			err = setField(key, raw, &p.EstoqueMinimo)
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
