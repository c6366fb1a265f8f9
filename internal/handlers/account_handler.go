package handlers

import (
	"candela/internal/apperrors"
	"candela/internal/middleware"
	"candela/internal/models"
	"candela/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for per-user addresses and wishlist.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes, all session-gated.
func (h *AccountHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	accountRoutes := router.Group("/account", authRequired)
	accountRoutes.Get("/addresses", h.HandleListAddresses)
	accountRoutes.Post("/addresses", h.HandleAddAddress)
	accountRoutes.Delete("/addresses/:id", h.HandleRemoveAddress)
	accountRoutes.Get("/wishlist", h.HandleListWishlist)
	accountRoutes.Post("/wishlist", h.HandleAddWishlistItem)
	accountRoutes.Delete("/wishlist/:id", h.HandleRemoveWishlistItem)
}

// HandleListAddresses returns the caller's addresses.
func (h *AccountHandler) HandleListAddresses(c *fiber.Ctx) error {
	addresses, err := h.service.ListAddresses(middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(addresses)
}

// HandleAddAddress stores a new address for the caller.
func (h *AccountHandler) HandleAddAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(address); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	if err := h.service.AddAddress(middleware.Identity(c), &address); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleRemoveAddress deletes one of the caller's addresses.
func (h *AccountHandler) HandleRemoveAddress(c *fiber.Ctx) error {
	if err := h.service.RemoveAddress(middleware.Identity(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Address deleted"})
}

// HandleListWishlist returns the caller's wishlist.
func (h *AccountHandler) HandleListWishlist(c *fiber.Ctx) error {
	items, err := h.service.ListWishlist(middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// HandleAddWishlistItem stores a new wishlist entry for the caller.
func (h *AccountHandler) HandleAddWishlistItem(c *fiber.Ctx) error {
	var item models.WishlistItem
	if err := c.BodyParser(&item); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(item); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	if err := h.service.AddWishlistItem(middleware.Identity(c), &item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleRemoveWishlistItem deletes one of the caller's wishlist entries.
func (h *AccountHandler) HandleRemoveWishlistItem(c *fiber.Ctx) error {
	if err := h.service.RemoveWishlistItem(middleware.Identity(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Wishlist entry deleted"})
}
