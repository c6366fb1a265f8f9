package services

import (
	"candela/internal/apperrors"
	"candela/internal/models"
	"candela/internal/repositories"
)

// AccountService handles per-user addresses and wishlist entries. Ownership
// is enforced here so handlers only pass the caller's identity through.
type AccountService struct {
	addressRepo  repositories.AddressRepository
	wishlistRepo repositories.WishlistRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(addressRepo repositories.AddressRepository, wishlistRepo repositories.WishlistRepository) *AccountService {
	return &AccountService{
		addressRepo:  addressRepo,
		wishlistRepo: wishlistRepo,
	}
}

// ListAddresses returns the caller's addresses.
func (s *AccountService) ListAddresses(ident *Identity) ([]models.Address, error) {
	addresses, err := s.addressRepo.GetByUserID(ident.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to list addresses", err)
	}
	return addresses, nil
}

// AddAddress stores a new address for the caller.
func (s *AccountService) AddAddress(ident *Identity, address *models.Address) error {
	address.UserID = ident.UserID
	if err := s.addressRepo.Create(address); err != nil {
		return apperrors.Internal("failed to create address", err)
	}
	return nil
}

// RemoveAddress deletes one of the caller's addresses. A foreign or missing
// id both come back not_found.
func (s *AccountService) RemoveAddress(ident *Identity, id string) error {
	if err := s.addressRepo.DeleteOwned(id, ident.UserID); err != nil {
		return apperrors.NotFound("address not found")
	}
	return nil
}

// ListWishlist returns the caller's wishlist entries.
func (s *AccountService) ListWishlist(ident *Identity) ([]models.WishlistItem, error) {
	items, err := s.wishlistRepo.GetByUserID(ident.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to list wishlist", err)
	}
	return items, nil
}

// AddWishlistItem stores a new wishlist entry for the caller.
func (s *AccountService) AddWishlistItem(ident *Identity, item *models.WishlistItem) error {
	item.UserID = ident.UserID
	if err := s.wishlistRepo.Create(item); err != nil {
		return apperrors.Internal("failed to create wishlist entry", err)
	}
	return nil
}

// RemoveWishlistItem deletes one of the caller's wishlist entries.
func (s *AccountService) RemoveWishlistItem(ident *Identity, id string) error {
	if err := s.wishlistRepo.DeleteOwned(id, ident.UserID); err != nil {
		return apperrors.NotFound("wishlist entry not found")
	}
	return nil
}
