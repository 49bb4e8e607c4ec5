package handlers

import (
	"errors"
	"net/http"

	"inventory_lending/internal/models"
	"inventory_lending/internal/repository"
	"inventory_lending/internal/service"
	"inventory_lending/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgItemNameRequired      = "Nama item tidak boleh kosong"
	msgItemAmountRequired    = "Jumlah item tidak boleh kosong"
	msgItemConditionRequired = "Kondisi item tidak boleh kosong"

	msgItemExists   = "Item sudah ada"
	msgItemNotFound = "Item tidak ditemukan"

	msgItemCreated = "Item berhasil ditambahkan"
	msgItemsListed = "Berhasil mendapatkan daftar item"
	msgItemFetched = "Berhasil mendapatkan item"
	msgItemUpdated = "Item berhasil diperbarui"
	msgItemDeleted = "Item berhasil dihapus"

	msgServerError = "Terjadi kesalahan pada server"
)

type itemRequest struct {
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Condition string `json:"condition"`
}

func itemRules(in itemRequest) []validation.Rule {
	return []validation.Rule{
		{Field: "name", Value: in.Name, Message: msgItemNameRequired},
		{Field: "amount", Value: in.Amount, Message: msgItemAmountRequired},
		{Field: "condition", Value: in.Condition, Message: msgItemConditionRequired},
	}
}

// @Summary      Add a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  itemRequest  true  "Item payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/items [post]
func (h *Handler) createItem(c *gin.Context) {
	var in itemRequest
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	if errs := validation.Validate(itemRules(in)); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	item, err := h.services.Items.Create(c.Request.Context(), models.Item{
		Name:      in.Name,
		Amount:    in.Amount,
		Condition: in.Condition,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			respondError(c, http.StatusBadRequest, msgItemExists)
			return
		}
		h.respondServerError(c, msgServerError, "item_create_failed", err, "name", in.Name)
		return
	}

	respondData(c, http.StatusCreated, msgItemCreated, item)
}

// @Summary      List catalog items
// @Tags         items
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/items [get]
func (h *Handler) listItems(c *gin.Context) {
	items, err := h.services.Items.List(c.Request.Context())
	if err != nil {
		h.respondServerError(c, msgServerError, "item_list_failed", err)
		return
	}
	respondData(c, http.StatusOK, msgItemsListed, items)
}

// @Summary      Get one catalog item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/items/{id} [get]
func (h *Handler) getItem(c *gin.Context) {
	item, err := h.services.Items.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgItemNotFound)
			return
		}
		h.respondServerError(c, msgServerError, "item_get_failed", err, "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, msgItemFetched, item)
}

// @Summary      Replace a catalog item
// @Description  Full-field replace; all three fields are required.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Item id"
// @Param        body  body  itemRequest  true  "Item payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/items/{id} [patch]
func (h *Handler) updateItem(c *gin.Context) {
	var in itemRequest
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	if errs := validation.Validate(itemRules(in)); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	item, err := h.services.Items.Update(c.Request.Context(), c.Param("id"), models.Item{
		Name:      in.Name,
		Amount:    in.Amount,
		Condition: in.Condition,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgItemNotFound)
			return
		}
		h.respondServerError(c, msgServerError, "item_update_failed", err, "id", c.Param("id"))
		return
	}

	respondData(c, http.StatusOK, msgItemUpdated, item)
}

// @Summary      Delete a catalog item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/items/{id} [delete]
func (h *Handler) deleteItem(c *gin.Context) {
	if err := h.services.Items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgItemNotFound)
			return
		}
		h.respondServerError(c, msgServerError, "item_delete_failed", err, "id", c.Param("id"))
		return
	}
	respondMessage(c, http.StatusOK, msgItemDeleted)
}
