package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"menu-admin/menu-svc/internal/domain"
	"menu-admin/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Categories service.CategoryServiceInterface
	MenuItems  service.MenuItemServiceInterface
	Themes     service.MenuThemeServiceInterface
	QRCodes    service.QRCodeServiceInterface
}

func NewHandler(categories service.CategoryServiceInterface, items service.MenuItemServiceInterface,
	themes service.MenuThemeServiceInterface, qrCodes service.QRCodeServiceInterface) *Handler {
	return &Handler{
		Categories: categories,
		MenuItems:  items,
		Themes:     themes,
		QRCodes:    qrCodes,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/categories/{id:[0-9]+}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id:[0-9]+}", h.updateCategory).Methods("PUT", "PATCH")
	r.HandleFunc("/api/categories/{id:[0-9]+}", h.deleteCategory).Methods("DELETE")
	r.HandleFunc("/api/categories/{id:[0-9]+}/menu-items", h.listCategoryItems).Methods("GET")

	r.HandleFunc("/api/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu-items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/{id:[0-9]+}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items/{id:[0-9]+}", h.updateMenuItem).Methods("PUT", "PATCH")
	r.HandleFunc("/api/menu-items/{id:[0-9]+}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/themes", h.createTheme).Methods("POST")
	r.HandleFunc("/api/themes", h.listThemes).Methods("GET")
	r.HandleFunc("/api/themes/active", h.getActiveTheme).Methods("GET")
	r.HandleFunc("/api/themes/{id:[0-9]+}", h.updateTheme).Methods("PUT", "PATCH")
	r.HandleFunc("/api/themes/{id:[0-9]+}", h.deleteTheme).Methods("DELETE")

	r.HandleFunc("/api/qrcodes", h.createQRCode).Methods("POST")
	r.HandleFunc("/api/qrcodes", h.listQRCodes).Methods("GET")
	r.HandleFunc("/api/qrcodes/{id:[0-9]+}", h.getQRCode).Methods("GET")
	r.HandleFunc("/api/qrcodes/{id:[0-9]+}", h.updateQRCode).Methods("PUT", "PATCH")
	r.HandleFunc("/api/qrcodes/{id:[0-9]+}", h.deleteQRCode).Methods("DELETE")
	r.HandleFunc("/api/qrcodes/{id:[0-9]+}/regenerate", h.regenerateQRCode).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// parseID accepts only ids that fit the SERIAL primary keys.
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}

// pathID writes a 404 when the id cannot name a row.
func pathID(w http.ResponseWriter, r *http.Request, notFound string) (int, bool) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: notFound})
	}
	return id, ok
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

// Categories

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateCategoryInput
	if !decode(w, r, &input) {
		return
	}
	category, err := h.Categories.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category not found")
	if !ok {
		return
	}
	category, err := h.Categories.GetByID(r.Context(), id)
	writeFound(w, r, category == nil, category, err, "Category not found")
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category not found")
	if !ok {
		return
	}
	var input domain.UpdateCategoryInput
	if !decode(w, r, &input) {
		return
	}
	input.ID = id
	category, err := h.Categories.Update(r.Context(), input)
	writeFound(w, r, category == nil, category, err, "Category not found")
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category not found")
	if !ok {
		return
	}
	deleted, err := h.Categories.Delete(r.Context(), id)
	writeDeleted(w, r, deleted, err, "Category not found")
}

func (h *Handler) listCategoryItems(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusOK, []domain.MenuItem{})
		return
	}
	items, err := h.MenuItems.ListByCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Menu items

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateMenuItemInput
	if !decode(w, r, &input) {
		return
	}
	item, err := h.MenuItems.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.MenuItems.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Menu item not found")
	if !ok {
		return
	}
	item, err := h.MenuItems.GetByID(r.Context(), id)
	writeFound(w, r, item == nil, item, err, "Menu item not found")
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Menu item not found")
	if !ok {
		return
	}
	var input domain.UpdateMenuItemInput
	if !decode(w, r, &input) {
		return
	}
	input.ID = id
	item, err := h.MenuItems.Update(r.Context(), input)
	writeFound(w, r, item == nil, item, err, "Menu item not found")
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Menu item not found")
	if !ok {
		return
	}
	deleted, err := h.MenuItems.Delete(r.Context(), id)
	writeDeleted(w, r, deleted, err, "Menu item not found")
}

// Themes

func (h *Handler) createTheme(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateMenuThemeInput
	if !decode(w, r, &input) {
		return
	}
	theme, err := h.Themes.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, theme)
}

func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.Themes.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themes)
}

// getActiveTheme answers 200 with a null body when no theme is active; the
// public menu falls back to its default styling in that case.
func (h *Handler) getActiveTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.Themes.GetActive(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}

func (h *Handler) updateTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Menu theme not found")
	if !ok {
		return
	}
	var input domain.UpdateMenuThemeInput
	if !decode(w, r, &input) {
		return
	}
	input.ID = id
	theme, err := h.Themes.Update(r.Context(), input)
	writeFound(w, r, theme == nil, theme, err, "Menu theme not found")
}

func (h *Handler) deleteTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Menu theme not found")
	if !ok {
		return
	}
	deleted, err := h.Themes.Delete(r.Context(), id)
	writeDeleted(w, r, deleted, err, "Menu theme not found")
}

// QR codes

func (h *Handler) createQRCode(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateQRCodeInput
	if !decode(w, r, &input) {
		return
	}
	qr, err := h.QRCodes.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, qr)
}

func (h *Handler) listQRCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.QRCodes.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "QR code not found")
	if !ok {
		return
	}
	qr, err := h.QRCodes.GetByID(r.Context(), id)
	writeFound(w, r, qr == nil, qr, err, "QR code not found")
}

func (h *Handler) updateQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "QR code not found")
	if !ok {
		return
	}
	var input domain.UpdateQRCodeInput
	if !decode(w, r, &input) {
		return
	}
	input.ID = id
	qr, err := h.QRCodes.Update(r.Context(), input)
	writeFound(w, r, qr == nil, qr, err, "QR code not found")
}

func (h *Handler) regenerateQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "QR code not found")
	if !ok {
		return
	}
	qr, err := h.QRCodes.Regenerate(r.Context(), id)
	writeFound(w, r, qr == nil, qr, err, "QR code not found")
}

func (h *Handler) deleteQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "QR code not found")
	if !ok {
		return
	}
	deleted, err := h.QRCodes.Delete(r.Context(), id)
	writeDeleted(w, r, deleted, err, "QR code not found")
}
