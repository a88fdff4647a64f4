package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokyonails/salao-api/internal/httperr"
	"github.com/tokyonails/salao-api/internal/models"
)

const (
	msgInvalidRequest = "Requisição inválida"
	msgNotFound       = "Item não encontrado"
	msgDeleted        = "Item deletado com sucesso"
)

// Entity é o contrato que todo modelo implementa: aplicar um mapa de campos
// vindos do corpo da requisição, recusando chaves desconhecidas.
type Entity interface {
	ApplyFields(data models.FieldMap) error
}

// CrudHandler serve as cinco operações genéricas para um tipo de entidade.
// P é sempre *T; a restrição existe para que ApplyFields (receptor ponteiro)
// fique disponível e o tipo seja inferido no ponto de uso.
type CrudHandler[T any, P interface {
	*T
	Entity
}] struct {
	db *gorm.DB
}

func NewCrud[T any, P interface {
	*T
	Entity
}](db *gorm.DB) *CrudHandler[T, P] {
	return &CrudHandler[T, P]{db: db}
}

func (h *CrudHandler[T, P]) List(c *gin.Context) {
	var items []T
	if err := h.db.Find(&items).Error; err != nil {
		httperr.Internal(c, "falha ao listar os itens")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CrudHandler[T, P]) Get(c *gin.Context) {
	item, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CrudHandler[T, P]) Create(c *gin.Context) {
	data, ok := bindFieldMap(c)
	if !ok {
		httperr.BadRequest(c, msgInvalidRequest)
		return
	}

	item := P(new(T))
	if err := item.ApplyFields(data); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(item).Error; err != nil {
		httperr.Internal(c, "falha ao criar o item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CrudHandler[T, P]) Update(c *gin.Context) {
	item, ok := h.fetch(c)
	if !ok {
		return
	}

	data, ok := bindFieldMap(c)
	if !ok {
		httperr.BadRequest(c, msgInvalidRequest)
		return
	}

	// Só os campos presentes no corpo são sobrescritos.
	if err := item.ApplyFields(data); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Save(item).Error; err != nil {
		httperr.Internal(c, "falha ao atualizar o item")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CrudHandler[T, P]) Delete(c *gin.Context) {
	item, ok := h.fetch(c)
	if !ok {
		return
	}

	if err := h.db.Delete(item).Error; err != nil {
		httperr.Internal(c, "falha ao deletar o item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}

// fetch resolve o :id da rota. Id não numérico ou inexistente vira 404,
// como no conversor de rota do backend anterior.
func (h *CrudHandler[T, P]) fetch(c *gin.Context) (P, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, msgNotFound)
		return nil, false
	}

	item := P(new(T))
	if err := h.db.Where("id = ?", id).First(item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, msgNotFound)
		} else {
			httperr.Internal(c, "falha ao buscar o item")
		}
		return nil, false
	}
	return item, true
}

// bindFieldMap decodifica o corpo em um mapa campo → valor bruto. Corpo
// ausente, inválido ou vazio conta como requisição inválida.
func bindFieldMap(c *gin.Context) (models.FieldMap, bool) {
	var data models.FieldMap
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
