package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Conta de acesso ao painel. Sem sessão/login neste backend: é só o cadastro.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OpenID      string `gorm:"size:64;uniqueIndex;not null" json:"openId"`
	Name        string `gorm:"type:text" json:"name"`
	Email       string `gorm:"size:320;uniqueIndex;not null" json:"email"`
	Senha       string `gorm:"size:255" json:"senha"`
	LoginMethod string `gorm:"size:64" json:"loginMethod"`
	Role        string `gorm:"size:20;not null;default:'user'" json:"role"`
	Ativo       *bool  `gorm:"default:true" json:"ativo"`
}

func (User) TableName() string { return "users" }

// BeforeCreate garante o openId: a coluna é única e obrigatória, mas o
// payload de criação normalmente não traz identidade externa.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.OpenID == "" {
		u.OpenID = uuid.NewString()
	}
	return nil
}

func (u *User) ApplyFields(data FieldMap) error {
	for key, raw := range data {
		var err error
		switch key {
		case "openId":
			err = setField(key, raw, &u.OpenID)
		case "name":
			err = setField(key, raw, &u.Name)
		case "email":
			err = setField(key, raw, &u.Email)
		case "senha":
			err = u.setSenha(raw)
		case "loginMethod":
			err = setField(key, raw, &u.LoginMethod)
		case "role":
			err = setField(key, raw, &u.Role)
		case "ativo":
			err = setField(key, raw, &u.Ativo)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// setSenha armazena o hash bcrypt, nunca o texto puro.
func (u *User) setSenha(raw json.RawMessage) error {
	var plain string
	if err := setField("senha", raw, &plain); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Senha = string(hashed)
	return nil
}
