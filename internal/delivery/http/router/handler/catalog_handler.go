package handler

import (
	"log/slog"
	"net/http"

	"medvantage/internal/delivery/http/middleware"
	"medvantage/internal/delivery/http/response"
	"medvantage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for category and medicine handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories handles the public category listing.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetCategory handles the public category lookup by slug.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.uc.GetCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// CreateCategory handles the admin category creation.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var input *usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// UpdateCategory handles the admin category update.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var input *usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateCategory(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category updated successfully")
}

// DeleteCategory handles the admin category removal.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// ListMedicines handles the public listing, optionally filtered by the
// category query parameter.
func (h *CatalogHandler) ListMedicines(c echo.Context) error {
	medicines, err := h.uc.ListMedicines(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "")
}

// GetMedicine handles the public medicine lookup by id.
func (h *CatalogHandler) GetMedicine(c echo.Context) error {
	medicine, err := h.uc.GetMedicine(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "")
}

// ListMedicinesBySeller handles the seller's own listings.
func (h *CatalogHandler) ListMedicinesBySeller(c echo.Context) error {
	medicines, err := h.uc.ListMedicinesBySeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "")
}

// CreateMedicine handles a seller listing a new medicine. Ownership is taken
// from the authenticated principal, never from the body.
func (h *CatalogHandler) CreateMedicine(c echo.Context) error {
	var input *usecase.MedicineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	medicine, err := h.uc.CreateMedicine(c.Request().Context(), middleware.PrincipalEmail(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, medicine, "Medicine created successfully")
}

// UpdateMedicine handles the owning seller updating a listing.
func (h *CatalogHandler) UpdateMedicine(c echo.Context) error {
	var input *usecase.MedicineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateMedicine(c.Request().Context(), c.Param("id"), middleware.PrincipalEmail(c), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medicine updated successfully")
}

// DeleteMedicine handles the owning seller removing a listing.
func (h *CatalogHandler) DeleteMedicine(c echo.Context) error {
	if err := h.uc.DeleteMedicine(c.Request().Context(), c.Param("id"), middleware.PrincipalEmail(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medicine deleted successfully")
}
