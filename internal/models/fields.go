package models

import (
	"encoding/json"
	"fmt"
)

// FieldMap é o corpo JSON decodificado de um create ou update, campo a campo.
type FieldMap = map[string]json.RawMessage

// setField decodifica o valor bruto de um campo no destino tipado. Valor com
// tipo errado vira erro de requisição, nunca um crash no servidor.
func setField[V any](key string, raw json.RawMessage, dst *V) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("valor inválido para o campo %q", key)
	}
	return nil
}

func unknownField(key string) error {
	return fmt.Errorf("campo desconhecido: %q", key)
}
