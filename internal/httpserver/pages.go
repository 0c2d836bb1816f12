package httpserver

import (
	"net/http"

	"gearstore/internal/notify"
	cartsvc "gearstore/internal/service/cart"
	"gearstore/internal/storefront"
	"github.com/gin-gonic/gin"
)

// pageState is what a form post wants shown when the page is re-rendered.
type pageState struct {
	status     int
	snapshot   *cartsvc.Snapshot
	notices    []notify.Notice
	newsletter storefront.FormState
	contact    storefront.FormState
}

func (h *handlers) render(c *gin.Context, st pageState) {
	if st.status == 0 {
		st.status = http.StatusOK
	}
	snap := st.snapshot
	if snap == nil {
		loaded, err := h.carts.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			h.log.Error(c.Request.Context(), "load cart for page", err)
			st.status = http.StatusInternalServerError
			_, msg := errorStatus(err)
			st.notices = append(st.notices, notify.Failure(msg))
		}
		snap = &loaded
	}

	page := storefront.NewPage(
		h.content,
		h.catalog.List(),
		storefront.NewCartSummary(snap.Lines, snap.TotalItems, snap.TotalCents),
		st.notices,
	)
	page.NewsletterForm = st.newsletter
	page.ContactForm = st.contact
	c.HTML(st.status, storefront.PageTemplate, page)
}

// renderCartResult re-renders the page after a cart form post.
func (h *handlers) renderCartResult(c *gin.Context, snap cartsvc.Snapshot, err error, notices *notify.Collector) {
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error(c.Request.Context(), "cart form failed", err)
		}
		h.render(c, pageState{status: status, notices: []notify.Notice{notify.Failure(msg)}})
		return
	}
	h.render(c, pageState{snapshot: &snap, notices: notices.Notices()})
}

func (h *handlers) renderBadForm(c *gin.Context) {
	h.render(c, pageState{
		status:  http.StatusBadRequest,
		notices: []notify.Notice{notify.Failure("Invalid request")},
	})
}

func (h *handlers) showPage(c *gin.Context) {
	h.render(c, pageState{})
}

func (h *handlers) addItemForm(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderBadForm(c)
		return
	}
	notices := &notify.Collector{}
	snap, err := h.carts.AddItem(c.Request.Context(), sessionID(c), req.ProductID, req.options(), notices)
	h.renderCartResult(c, snap, err, notices)
}

func (h *handlers) setQuantityForm(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderBadForm(c)
		return
	}
	notices := &notify.Collector{}
	snap, err := h.carts.SetQuantity(c.Request.Context(), sessionID(c), req.key(), *req.Quantity, notices)
	h.renderCartResult(c, snap, err, notices)
}

func (h *handlers) removeItemForm(c *gin.Context) {
	var req lineRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderBadForm(c)
		return
	}
	notices := &notify.Collector{}
	snap, err := h.carts.RemoveItem(c.Request.Context(), sessionID(c), req.key(), notices)
	h.renderCartResult(c, snap, err, notices)
}

func (h *handlers) clearCartForm(c *gin.Context) {
	notices := &notify.Collector{}
	snap, err := h.carts.Clear(c.Request.Context(), sessionID(c), notices)
	h.renderCartResult(c, snap, err, notices)
}

func (h *handlers) newsletterForm(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, pageState{
			status:     http.StatusBadRequest,
			newsletter: storefront.FormState{
				Values: map[string]string{"email": req.Email},
				Errors: formErrors(err, &req),
			},
		})
		return
	}
	h.log.Info(c.Request.Context(), "newsletter.subscribed")
	h.render(c, pageState{notices: []notify.Notice{notify.Success(noticeSubscribed)}})
}

func (h *handlers) contactForm(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, pageState{
			status:  http.StatusBadRequest,
			contact: storefront.FormState{
				Values: req.values(),
				Errors: formErrors(err, &req),
			},
		})
		return
	}
	h.log.Info(c.Request.Context(), "contact.received")
	h.render(c, pageState{notices: []notify.Notice{notify.Success(noticeMessageSent)}})
}

func formErrors(err error, req any) map[string]string {
	if fields := fieldErrors(err, req, "form"); fields != nil {
		return fields
	}
	return map[string]string{"form": "invalid request"}
}
