package controller

import (
	"strconv"

	"quote-ui/database"
	"quote-ui/logger"
	"quote-ui/web/entity"
	"quote-ui/web/service"

	"github.com/gin-gonic/gin"
)

// QuoteForm represents the quote create/update request structure.
type QuoteForm struct {
	Text     string `form:"text"`
	AuthorId int    `form:"author_id"`
	Delete   string `form:"delete"`
}

// QuoteController handles the admin quote CRUD routes. The detail view also
// loads all authors for the re-assignment dropdown.
type QuoteController struct {
	quoteService  service.QuoteService
	authorService service.AuthorService
}

func NewQuoteController(g *gin.RouterGroup) *QuoteController {
	a := &QuoteController{}
	g.GET("", a.list)
	g.POST("", a.create)
	g.GET("/:id", a.detail)
	g.POST("/:id", a.save)
	return a
}

func (a *QuoteController) list(c *gin.Context) {
	quotes, err := a.quoteService.All()
	if err != nil {
		logger.Warning("list quotes failed:", err)
		redirectMsg(c, "/admin", "Could not load quotes!")
		return
	}
	authors, err := a.authorService.All()
	if err != nil {
		logger.Warning("list authors failed:", err)
		redirectMsg(c, "/admin", "Could not load authors!")
		return
	}
	html(c, "admin_quotes.html", "Quotes", gin.H{
		"quotes":  quotes,
		"authors": authors,
	})
}

func (a *QuoteController) create(c *gin.Context) {
	var form QuoteForm
	if err := c.ShouldBind(&form); err != nil {
		redirectMsg(c, "/admin/quotes", "Invalid form data!")
		return
	}
	_, err := a.quoteService.Create(form.Text, form.AuthorId)
	if err == service.ErrAuthorMissing {
		redirectMsg(c, "/admin/quotes", "Author not found!")
		return
	} else if err != nil {
		logger.Warning("create quote failed:", err)
		redirectMsg(c, "/admin/quotes", "Could not add quote!")
		return
	}
	redirectMsg(c, "/admin/quotes", "Quote added successfully!")
}

func (a *QuoteController) detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectMsg(c, "/admin/quotes", "Quote not found!")
		return
	}
	quote, err := a.quoteService.Get(id)
	if err != nil {
		redirectMsg(c, "/admin/quotes", "Quote not found!")
		return
	}
	authors, err := a.authorService.All()
	if err != nil {
		logger.Warning("list authors failed:", err)
		redirectMsg(c, "/admin/quotes", "Could not load authors!")
		return
	}
	view := entity.NewQuoteView(quote)
	html(c, "admin_quote.html", "Quote", gin.H{
		"quote":   view,
		"author":  view.Author,
		"authors": authors,
	})
}

func (a *QuoteController) save(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectMsg(c, "/admin/quotes", "Quote not found!")
		return
	}
	var form QuoteForm
	if err := c.ShouldBind(&form); err != nil {
		redirectMsg(c, "/admin/quotes", "Invalid form data!")
		return
	}

	if form.Delete != "" {
		err := a.quoteService.Delete(id)
		if database.IsNotFound(err) {
			redirectMsg(c, "/admin/quotes", "Quote not found!")
			return
		} else if err != nil {
			logger.Warning("delete quote failed:", err)
			redirectMsg(c, "/admin/quotes", "Could not delete quote!")
			return
		}
		redirectMsg(c, "/admin/quotes", "Quote deleted successfully!")
		return
	}

	_, err = a.quoteService.Update(id, form.Text, form.AuthorId)
	if database.IsNotFound(err) {
		redirectMsg(c, "/admin/quotes", "Quote not found!")
		return
	} else if err == service.ErrAuthorMissing {
		redirectMsg(c, "/admin/quotes", "Author not found!")
		return
	} else if err != nil {
		logger.Warning("update quote failed:", err)
		redirectMsg(c, "/admin/quotes", "Could not update quote!")
		return
	}
	redirectMsg(c, "/admin/quotes/"+strconv.Itoa(id), "Quote updated successfully!")
}
