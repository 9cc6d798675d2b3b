// FilePath: api/resources/api.resource.viewer.go
package resources

import (
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/avamo13/lastseen/internal/viewer"
)

// ViewerHandlers serves the browser pages: key entry and the dashboard.
type ViewerHandlers struct {
	pages     *viewer.Pages
	authorize func(string) bool
	decoder   *schema.Decoder
}

// loginForm is the decoded key entry form.
type loginForm struct {
	Key string `schema:"key"`
}

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// @Summary Key entry page
// @Produce html
// @Success 200 {string} string "login form"
// @Router / [get]
func (h *ViewerHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Login(w); err != nil {
		nuts.L.Errorf("[Viewer] failed to render login page: %v", err)
	}
}

// @Summary Open the dashboard
// @Description Validates the submitted key and renders the viewer page
// @Accept x-www-form-urlencoded
// @Produce html
// @Param key formData string true "Access key"
// @Success 200 {string} string "viewer page or invalid-key page"
// @Router / [post]
func (h *ViewerHandlers) SubmitKey(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := r.ParseForm(); err != nil {
		h.renderInvalid(w)
		return
	}

	var form loginForm
	if err := h.decoder.Decode(&form, r.PostForm); err != nil {
		h.renderInvalid(w)
		return
	}

	if !h.authorize(form.Key) {
		h.renderInvalid(w)
		return
	}

	// The dashboard polls the read endpoints itself, so the key is
	// embedded client-side.
	if err := h.pages.Viewer(w, form.Key); err != nil {
		nuts.L.Errorf("[Viewer] failed to render viewer page: %v", err)
	}
}

func (h *ViewerHandlers) renderInvalid(w http.ResponseWriter) {
	if err := h.pages.Invalid(w); err != nil {
		nuts.L.Errorf("[Viewer] failed to render invalid-key page: %v", err)
	}
}
