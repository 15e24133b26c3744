package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// CallbackHandler redirects the buyer after a hosted-checkout return. The
// external reference travels back in the query string; without it the buyer
// lands on the public fallback page.

type CallbackHandler struct {
	resultURL   string
	fallbackURL string
}

func NewCallbackHandler(resultURL, fallbackURL string) *CallbackHandler {
	return &CallbackHandler{resultURL: resultURL, fallbackURL: fallbackURL}
}

// Redirect sends the payer back to the result page after checkout.
//
// @Summary     Post-payment redirect
// @Tags        payments
// @Param       external_reference query string false "Payment intent reference"
// @Success     302
// @Router      /callback [get]
func (h *CallbackHandler) Redirect(c *gin.Context) {
	ref := c.Query("external_reference")
	if ref == "" {
		ref = c.Query("uid")
	}

	target := h.fallbackURL
	if ref != "" {
		target = h.resultURL + "?uid=" + url.QueryEscape(ref)
	}

	log.Printf("[callback][handler] redirect external_reference=%s target=%s", ref, target)
	c.Redirect(http.StatusFound, target)
}
