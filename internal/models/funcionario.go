package models

// Funcionario guarda também os dados bancários para repasse de comissão.
// O percentual é só armazenado; nenhum cálculo acontece aqui.
type Funcionario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome               string `gorm:"size:255;not null" json:"nome"`
	Telefone           string `gorm:"size:20;not null" json:"telefone"`
	Email              string `gorm:"size:320" json:"email"`
	CpfCnpj            string `gorm:"size:20" json:"cpfCnpj"`
	Especialidades     string `gorm:"type:text" json:"especialidades"`
	ComissaoPercentual int    `gorm:"not null;default:0" json:"comissaoPercentual"`
	BancoNome          string `gorm:"size:255" json:"bancoNome"`
	Agencia            string `gorm:"size:10" json:"agencia"`
	ContaBancaria      string `gorm:"size:20" json:"contaBancaria"`
	TipoConta          string `gorm:"size:20" json:"tipoConta"`
	Ativo              *bool  `gorm:"default:true" json:"ativo"`
}

func (Funcionario) TableName() string { return "funcionarios" }

func (f *Funcionario) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "nome":
			err = setField(key, raw, &f.Nome)
		case "telefone":
			err = setField(key, raw, &f.Telefone)
		case "email":
			err = setField(key, raw, &f.Email)
		case "cpfCnpj":
			err = setField(key, raw, &f.CpfCnpj)
		case "especialidades":
			err = setField(key, raw, &f.Especialidades)
		case "comissaoPercentual":
			err = setField(key, raw, &f.ComissaoPercentual)
		case "bancoNome":
			err = setField(key, raw, &f.BancoNome)
		case "agencia":
			err = setField(key, raw, &f.Agencia)
		case "contaBancaria":
			err = setField(key, raw, &f.ContaBancaria)
		case "tipoConta":
			err = setField(key, raw, &f.TipoConta)
		case "ativo":
			err = setField(key, raw, &f.Ativo)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
