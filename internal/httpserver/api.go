package httpserver

import (
	"net/http"
	"strconv"

	"gearstore/internal/notify"
	cartsvc "gearstore/internal/service/cart"
	"gearstore/internal/storefront"
	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Cart    cartsvc.Snapshot `json:"cart"`
	Notices []notify.Notice  `json:"notices"`
}

func newCartResponse(snap cartsvc.Snapshot, notices *notify.Collector) cartResponse {
	return cartResponse{Cart: snap, Notices: notices.Notices()}
}

func (h *handlers) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": storefront.NewCards(h.catalog.List())})
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	product, err := h.catalog.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storefront.NewCard(product))
}

func (h *handlers) getCart(c *gin.Context) {
	snap, err := h.carts.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(snap, &notify.Collector{}))
}

func (h *handlers) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, &req)
		return
	}
	notices := &notify.Collector{}
	snap, err := h.carts.AddItem(c.Request.Context(), sessionID(c), req.ProductID, req.options(), notices)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(snap, notices))
}

func (h *handlers) setQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, &req)
		return
	}
	notices := &notify.Collector{}
	snap, err := h.carts.SetQuantity(c.Request.Context(), sessionID(c), req.key(), *req.Quantity, notices)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(snap, notices))
}

func (h *handlers) removeItem(c *gin.Context) {
	var req lineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, &req)
		return
	}
	notices := &notify.Collector{}
	snap, err := h.carts.RemoveItem(c.Request.Context(), sessionID(c), req.key(), notices)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(snap, notices))
}

func (h *handlers) clearCart(c *gin.Context) {
	notices := &notify.Collector{}
	snap, err := h.carts.Clear(c.Request.Context(), sessionID(c), notices)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(snap, notices))
}

func (h *handlers) subscribe(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, &req)
		return
	}
	h.log.Info(c.Request.Context(), "newsletter.subscribed")
	c.JSON(http.StatusOK, gin.H{"notices": []notify.Notice{notify.Success(noticeSubscribed)}})
}

func (h *handlers) sendContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, &req)
		return
	}
	h.log.Info(c.Request.Context(), "contact.received")
	c.JSON(http.StatusOK, gin.H{"notices": []notify.Notice{notify.Success(noticeMessageSent)}})
}
