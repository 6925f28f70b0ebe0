package controller

import (
	"strconv"

	"quote-ui/database"
	"quote-ui/logger"
	"quote-ui/web/entity"
	"quote-ui/web/service"

	"github.com/gin-gonic/gin"
)

// AuthorForm represents the author create/update request structure.
// A non-empty delete field on the detail route deletes instead.
type AuthorForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	ImageUrl    string `form:"image"`
	Delete      string `form:"delete"`
}

// AuthorController handles the admin author CRUD routes.
type AuthorController struct {
	authorService service.AuthorService
}

func NewAuthorController(g *gin.RouterGroup) *AuthorController {
	a := &AuthorController{}
	g.GET("", a.list)
	g.POST("", a.create)
	g.GET("/:id", a.detail)
	g.POST("/:id", a.save)
	return a
}

func (a *AuthorController) list(c *gin.Context) {
	authors, err := a.authorService.All()
	if err != nil {
		logger.Warning("list authors failed:", err)
		redirectMsg(c, "/admin", "Could not load authors!")
		return
	}
	html(c, "admin_authors.html", "Authors", gin.H{
		"authors": authors,
	})
}

func (a *AuthorController) create(c *gin.Context) {
	var form AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		redirectMsg(c, "/admin/authors", "Invalid form data!")
		return
	}
	if _, err := a.authorService.Create(form.Name, form.Description, form.ImageUrl); err != nil {
		logger.Warning("create author failed:", err)
		redirectMsg(c, "/admin/authors", "Could not add author!")
		return
	}
	redirectMsg(c, "/admin/authors", "Author added successfully!")
}

func (a *AuthorController) detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectMsg(c, "/admin/authors", "Author not found!")
		return
	}
	author, err := a.authorService.Get(id)
	if err != nil {
		redirectMsg(c, "/admin/authors", "Author not found!")
		return
	}
	html(c, "admin_author.html", "Author", gin.H{
		"author": entity.NewAuthorView(author),
	})
}

func (a *AuthorController) save(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectMsg(c, "/admin/authors", "Author not found!")
		return
	}
	var form AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		redirectMsg(c, "/admin/authors", "Invalid form data!")
		return
	}

	if form.Delete != "" {
		err := a.authorService.Delete(id)
		if database.IsNotFound(err) {
			redirectMsg(c, "/admin/authors", "Author not found!")
			return
		} else if err != nil {
			logger.Warning("delete author failed:", err)
			redirectMsg(c, "/admin/authors", "Could not delete author!")
			return
		}
		redirectMsg(c, "/admin/authors", "Author deleted successfully!")
		return
	}

	_, err = a.authorService.Update(id, form.Name, form.Description, form.ImageUrl)
	if database.IsNotFound(err) {
		redirectMsg(c, "/admin/authors", "Author not found!")
		return
	} else if err != nil {
		logger.Warning("update author failed:", err)
		redirectMsg(c, "/admin/authors", "Could not update author!")
		return
	}
	redirectMsg(c, "/admin/authors/"+strconv.Itoa(id), "Author updated successfully!")
}
