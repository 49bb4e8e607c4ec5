package handlers

import (
	"errors"
	"net/http"

	"inventory_lending/internal/models"
	"inventory_lending/internal/repository"
	"inventory_lending/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgBorrowDateRequired   = "Tanggal peminjaman tidak boleh kosong"
	msgReturnDateRequired   = "Tanggal pengembalian tidak boleh kosong"
	msgBorrowerNameRequired = "Nama peminjam tidak boleh kosong"
	msgOfficerNameRequired  = "Nama petugas tidak boleh kosong"

	msgBorrowNotFound = "Peminjaman item tidak ditemukan"

	msgBorrowCreated = "Peminjaman item berhasil ditambahkan"
	msgBorrowsListed = "Berhasil mendapatkan daftar peminjaman item"
	msgBorrowFetched = "Berhasil mendapatkan peminjaman item"
	msgBorrowUpdated = "Peminjaman item berhasil diperbarui"
	msgBorrowDeleted = "Peminjaman item berhasil dihapus"
)

type borrowRequest struct {
	ItemName     string `json:"item_name"`
	Amount       string `json:"amount"`
	BorrowDate   string `json:"borrow_date"`
	ReturnDate   string `json:"return_date"`
	BorrowerName string `json:"borrower_name"`
	OfficerName  string `json:"officer_name"`
}

func borrowRules(in borrowRequest) []validation.Rule {
	return []validation.Rule{
		{Field: "item_name", Value: in.ItemName, Message: msgItemNameRequired},
		{Field: "amount", Value: in.Amount, Message: msgItemAmountRequired},
		{Field: "borrow_date", Value: in.BorrowDate, Message: msgBorrowDateRequired},
		{Field: "return_date", Value: in.ReturnDate, Message: msgReturnDateRequired},
		{Field: "borrower_name", Value: in.BorrowerName, Message: msgBorrowerNameRequired},
		{Field: "officer_name", Value: in.OfficerName, Message: msgOfficerNameRequired},
	}
}

func borrowFromRequest(in borrowRequest) models.BorrowRecord {
	return models.BorrowRecord{
		ItemName:     in.ItemName,
		Amount:       in.Amount,
		BorrowDate:   in.BorrowDate,
		ReturnDate:   in.ReturnDate,
		BorrowerName: in.BorrowerName,
		OfficerName:  in.OfficerName,
	}
}

// @Summary      Record a borrow
// @Description  item_name is a free-text snapshot; no check against the catalog.
// @Tags         borrow
// @Accept       json
// @Produce      json
// @Param        body  body  borrowRequest  true  "Borrow payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/borrow [post]
func (h *Handler) createBorrow(c *gin.Context) {
	var in borrowRequest
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	if errs := validation.Validate(borrowRules(in)); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	rec, err := h.services.Borrows.Create(c.Request.Context(), borrowFromRequest(in))
	if err != nil {
		h.respondServerError(c, msgServerError, "borrow_create_failed", err, "item_name", in.ItemName)
		return
	}

	respondData(c, http.StatusCreated, msgBorrowCreated, rec)
}

// @Summary      List borrow records
// @Tags         borrow
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/borrow [get]
func (h *Handler) listBorrows(c *gin.Context) {
	recs, err := h.services.Borrows.List(c.Request.Context())
	if err != nil {
		h.respondServerError(c, msgServerError, "borrow_list_failed", err)
		return
	}
	respondData(c, http.StatusOK, msgBorrowsListed, recs)
}

// @Summary      Get one borrow record
// @Tags         borrow
// @Produce      json
// @Param        id  path  string  true  "Borrow record id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/borrow/{id} [get]
func (h *Handler) getBorrow(c *gin.Context) {
	rec, err := h.services.Borrows.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgBorrowNotFound)
			return
		}
		h.respondServerError(c, msgServerError, "borrow_get_failed", err, "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, msgBorrowFetched, rec)
}

// @Summary      Replace a borrow record
// @Description  Full-field replace; all six fields are required.
// @Tags         borrow
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "Borrow record id"
// @Param        body  body  borrowRequest  true  "Borrow payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/borrow/{id} [patch]
func (h *Handler) updateBorrow(c *gin.Context) {
	var in borrowRequest
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	if errs := validation.Validate(borrowRules(in)); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	rec, err := h.services.Borrows.Update(c.Request.Context(), c.Param("id"), borrowFromRequest(in))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgBorrowNotFound)
			return
		}
		h.respondServerError(c, msgServerError, "borrow_update_failed", err, "id", c.Param("id"))
		return
	}

	respondData(c, http.StatusOK, msgBorrowUpdated, rec)
}

// @Summary      Delete a borrow record
// @Tags         borrow
// @Produce      json
// @Param        id  path  string  true  "Borrow record id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/borrow/{id} [delete]
func (h *Handler) deleteBorrow(c *gin.Context) {
	if err := h.services.Borrows.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgBorrowNotFound)
			return
		}
		h.respondServerError(c, msgServerError, "borrow_delete_failed", err, "id", c.Param("id"))
		return
	}
	respondMessage(c, http.StatusOK, msgBorrowDeleted)
}
