package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	portsrepo "github.com/stocknest/stocknest_app/internal/core/ports/repositories"
	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/dto"
)

// InventoryService manages inventory items, their per-board vocabularies and
// the image reverse index used for cascade deletes. The index maps image id to
// the set of item ids referencing it and is rebuilt from the store on first
// use, then maintained incrementally on every item write.
type InventoryService struct {
	BaseService
	itemRepo  portsrepo.InventoryRepository
	imageRepo portsrepo.ImageRepository
	vocabRepo portsrepo.VocabularyRepository

	// deleteEmptied switches the reverse cascade to the legacy behavior of
	// deleting items whose last image reference was removed.
	deleteEmptied bool

	mu      sync.RWMutex
	built   bool
	byImage map[string]map[string]struct{}
}

var _ portssvc.InventorySvcFacade = (*InventoryService)(nil)

func NewInventoryService(itemRepo portsrepo.InventoryRepository, imageRepo portsrepo.ImageRepository, vocabRepo portsrepo.VocabularyRepository, deleteEmptied bool) *InventoryService {
	return &InventoryService{
		itemRepo:      itemRepo,
		imageRepo:     imageRepo,
		vocabRepo:     vocabRepo,
		deleteEmptied: deleteEmptied,
		byImage:       make(map[string]map[string]struct{}),
	}
}

// ensureIndex lazily rebuilds the reverse index from the full item list.
func (s *InventoryService) ensureIndex(ctx context.Context) error {
	s.mu.RLock()
	built := s.built
	s.mu.RUnlock()
	if built {
		return nil
	}

	items, err := s.itemRepo.ListAllItems(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.built {
		return nil
	}
	s.byImage = make(map[string]map[string]struct{})
	for _, item := range items {
		s.indexAddLocked(item.ItemID, item.ImageIDs)
	}
	s.built = true
	return nil
}

func (s *InventoryService) indexAddLocked(itemID string, imageIDs []string) {
	for _, imageID := range imageIDs {
		set, ok := s.byImage[imageID]
		if !ok {
			set = make(map[string]struct{})
			s.byImage[imageID] = set
		}
		set[itemID] = struct{}{}
	}
}

func (s *InventoryService) indexRemoveLocked(itemID string, imageIDs []string) {
	for _, imageID := range imageIDs {
		if set, ok := s.byImage[imageID]; ok {
			delete(set, itemID)
			if len(set) == 0 {
				delete(s.byImage, imageID)
			}
		}
	}
}

func (s *InventoryService) reindex(itemID string, before, after []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexRemoveLocked(itemID, before)
	s.indexAddLocked(itemID, after)
}

func (s *InventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	return s.itemRepo.FindItemByID(ctx, itemID)
}

func (s *InventoryService) GetItems(ctx context.Context, boardID string) ([]domain.InventoryItem, error) {
	return s.itemRepo.ListItems(ctx, boardID)
}

func (s *InventoryService) GetAllItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.itemRepo.ListAllItems(ctx)
}

func (s *InventoryService) GetItemsByImageID(ctx context.Context, imageID string) ([]domain.InventoryItem, error) {
	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	itemIDs := make([]string, 0, len(s.byImage[imageID]))
	for itemID := range s.byImage[imageID] {
		itemIDs = append(itemIDs, itemID)
	}
	s.mu.RUnlock()
	slices.Sort(itemIDs)

	items := make([]domain.InventoryItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		item, err := s.itemRepo.FindItemByID(ctx, itemID)
		if errors.Is(err, apperrors.ErrNotFound) {
			// Stale index entry, drop it and move on.
			s.reindex(itemID, []string{imageID}, nil)
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, boardID string, req dto.CreateItemRequest) (*domain.InventoryItem, error) {
	if err := s.validateMoney(req.Price, req.CostPrice, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}
	if err := s.checkImageRefs(ctx, req.ImageIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	imageIDs := req.ImageIDs
	if imageIDs == nil {
		imageIDs = []string{}
	}
	item := domain.InventoryItem{
		ItemID:      uuid.NewString(),
		BoardID:     boardID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Label:       req.Label,
		PaidTo:      req.PaidTo,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Quantity:    req.Quantity,
		ImageIDs:    imageIDs,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "failed to create item", "board_id", boardID)
		return nil, err
	}
	s.reindex(item.ItemID, nil, item.ImageIDs)
	s.registerVocabulary(ctx, boardID, req.Category, req.Label, req.PaidTo)

	s.LogInfo(ctx, "item created", "item_id", item.ItemID, "board_id", boardID)
	return &item, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.InventoryItem, error) {
	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	before := item.ImageIDs

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Label != nil {
		item.Label = *req.Label
	}
	if req.PaidTo != nil {
		item.PaidTo = *req.PaidTo
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.CostPrice != nil {
		item.CostPrice = *req.CostPrice
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ImageIDs != nil {
		if err := s.checkImageRefs(ctx, req.ImageIDs); err != nil {
			return nil, err
		}
		item.ImageIDs = req.ImageIDs
	}

	if err := s.validateMoney(item.Price, item.CostPrice, item.Quantity); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "failed to update item", "item_id", itemID)
		return nil, err
	}
	s.reindex(itemID, before, item.ImageIDs)
	s.registerVocabulary(ctx, item.BoardID,
		strOrEmpty(req.Category), strOrEmpty(req.Label), strOrEmpty(req.PaidTo))

	return item, nil
}

// DeleteItem removes an item and cascades to every image it references.
// Images already gone are tolerated so the cascade is safe to repeat.
func (s *InventoryService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.ensureIndex(ctx); err != nil {
		return err
	}
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	for _, imageID := range item.ImageIDs {
		// Only delete images no other item still references.
		if s.refCount(imageID) > 1 {
			continue
		}
		if err := s.imageRepo.DeleteImage(ctx, imageID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to cascade image delete", "item_id", itemID, "image_id", imageID)
			return err
		}
	}

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	s.reindex(itemID, item.ImageIDs, nil)

	s.LogInfo(ctx, "item deleted", "item_id", itemID, "cascaded_images", len(item.ImageIDs))
	return nil
}

// RemoveImageFromItems drops a deleted image's id from every item that still
// references it. Items left with no images are retained unless the legacy
// delete behavior is enabled.
func (s *InventoryService) RemoveImageFromItems(ctx context.Context, imageID string) error {
	if err := s.ensureIndex(ctx); err != nil {
		return err
	}

	s.mu.RLock()
	itemIDs := make([]string, 0, len(s.byImage[imageID]))
	for itemID := range s.byImage[imageID] {
		itemIDs = append(itemIDs, itemID)
	}
	s.mu.RUnlock()

	for _, itemID := range itemIDs {
		item, err := s.itemRepo.FindItemByID(ctx, itemID)
		if errors.Is(err, apperrors.ErrNotFound) {
			s.reindex(itemID, []string{imageID}, nil)
			continue
		}
		if err != nil {
			return err
		}

		before := item.ImageIDs
		item.ImageIDs = slices.DeleteFunc(slices.Clone(item.ImageIDs), func(id string) bool {
			return id == imageID
		})

		if len(item.ImageIDs) == 0 && s.deleteEmptied {
			if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			s.reindex(itemID, before, nil)
			s.LogInfo(ctx, "item deleted with its last image", "item_id", itemID, "image_id", imageID)
			continue
		}

		item.UpdatedAt = time.Now().UTC()
		if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
			return err
		}
		s.reindex(itemID, before, item.ImageIDs)
	}
	return nil
}

func (s *InventoryService) GetVocabulary(ctx context.Context, boardID string, kind domain.VocabularyKind) ([]string, error) {
	if !domain.IsValidVocabularyKind(kind) {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "unknown vocabulary kind", errors.New(string(kind)))
	}
	return s.vocabRepo.ListValues(ctx, boardID, kind)
}

func (s *InventoryService) AddVocabularyValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error {
	if !domain.IsValidVocabularyKind(kind) {
		return apperrors.Wrap(apperrors.ErrValidation, "unknown vocabulary kind", errors.New(string(kind)))
	}
	if value == "" {
		return apperrors.Wrap(apperrors.ErrValidation, "adding vocabulary value", errors.New("value must not be empty"))
	}
	return s.vocabRepo.AddValue(ctx, boardID, kind, value)
}

func (s *InventoryService) RemoveVocabularyValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error {
	if !domain.IsValidVocabularyKind(kind) {
		return apperrors.Wrap(apperrors.ErrValidation, "unknown vocabulary kind", errors.New(string(kind)))
	}
	return s.vocabRepo.RemoveValue(ctx, boardID, kind, value)
}

func (s *InventoryService) refCount(imageID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byImage[imageID])
}

func (s *InventoryService) validateMoney(price, costPrice decimal.Decimal, quantity int64) error {
	if price.IsNegative() || costPrice.IsNegative() {
		return apperrors.Wrap(apperrors.ErrValidation, "validating item", errors.New("price and costPrice must be non-negative"))
	}
	if quantity < 0 {
		return apperrors.Wrap(apperrors.ErrValidation, "validating item", errors.New("quantity must be non-negative"))
	}
	return nil
}

// checkImageRefs rejects references to images the store does not know about.
func (s *InventoryService) checkImageRefs(ctx context.Context, imageIDs []string) error {
	for _, imageID := range imageIDs {
		_, err := s.imageRepo.FindImageByID(ctx, imageID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Wrap(apperrors.ErrValidation, "validating item", errors.New("unknown image id "+imageID))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// registerVocabulary records any new dropdown values an item write carries.
// Best effort: a vocabulary failure never fails the item write.
func (s *InventoryService) registerVocabulary(ctx context.Context, boardID, category, label, paidTo string) {
	for kind, value := range map[domain.VocabularyKind]string{
		domain.VocabCategory: category,
		domain.VocabLabel:    label,
		domain.VocabPaidTo:   paidTo,
	} {
		if value == "" {
			continue
		}
		if err := s.vocabRepo.AddValue(ctx, boardID, kind, value); err != nil {
			s.LogWarn(ctx, "failed to auto-register vocabulary value",
				"board_id", boardID, "kind", string(kind), "value", value, "error", err.Error())
		}
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
