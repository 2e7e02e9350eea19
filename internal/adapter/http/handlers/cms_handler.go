package handlers

import (
	"net/http"

	"content_factory/internal/adapter/persistence/seed"
	"content_factory/internal/domain/entities"
	"content_factory/pkg"

	"github.com/gin-gonic/gin"
)

// CMSHandler serves the read-only dashboard panels (orders, users, comments,
// timelines, reviews, stats) from the static seed dataset. There is no write
// path; the dashboard is a mock over fixed data.

type CMSHandler struct{}

func NewCMSHandler() *CMSHandler {
	return &CMSHandler{}
}

func (h *CMSHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, seed.Users)
}

func (h *CMSHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, seed.Orders)
}

func (h *CMSHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	for _, o := range seed.Orders {
		if o.ID == id {
			c.JSON(http.StatusOK, o)
			return
		}
	}
	appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// ListOrderComments returns the comment thread for one order. An unknown
// order yields an empty thread, matching the dashboard's tolerant rendering.
func (h *CMSHandler) ListOrderComments(c *gin.Context) {
	id := c.Param("id")
	comments := make([]entities.Comment, 0)
	for _, cm := range seed.Comments {
		if cm.OrderID == id {
			comments = append(comments, cm)
		}
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CMSHandler) ListOrderTimeline(c *gin.Context) {
	id := c.Param("id")
	events := make([]entities.TimelineEvent, 0)
	for _, e := range seed.TimelineEvents {
		if e.OrderID == id {
			events = append(events, e)
		}
	}
	c.JSON(http.StatusOK, events)
}

func (h *CMSHandler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, seed.Reviews)
}

func (h *CMSHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, seed.Stats)
}
