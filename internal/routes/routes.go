package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokyonails/salao-api/internal/handlers"
	"github.com/tokyonails/salao-api/internal/models"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "API do Salão de Manicure Tokyo Nails está no ar!",
		})
	})

	registerCrud(api, "/clientes", handlers.NewCrud[models.Cliente](db))
	registerCrud(api, "/funcionarios", handlers.NewCrud[models.Funcionario](db))
	registerCrud(api, "/servicos", handlers.NewCrud[models.Servico](db))
	registerCrud(api, "/produtos", handlers.NewCrud[models.Produto](db))
	registerCrud(api, "/agendamentos", handlers.NewCrud[models.Agendamento](db))
	registerCrud(api, "/transacoes", handlers.NewCrud[models.Transacao](db))
	registerCrud(api, "/pacotes", handlers.NewCrud[models.Pacote](db))
	registerCrud(api, "/users", handlers.NewCrud[models.User](db))
}

// registerCrud liga o par de rotas de cada entidade: coleção (list/create)
// e item (get/update/delete), despachando só pelo método HTTP.
func registerCrud[T any, P interface {
	*T
	handlers.Entity
}](g *gin.RouterGroup, path string, h *handlers.CrudHandler[T, P]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)

	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
