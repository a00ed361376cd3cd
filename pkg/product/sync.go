package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"
	"Pantry-Share-Backend/internal/utils/mailing"
	"Pantry-Share-Backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Products expiring within this window count as outdated.
const outdatedWindow = 3 * 24 * time.Hour

// SynchronizeProducts reconciles a batch of client-declared product states
// against server state: unknown uuids are creates, toBeDeleted entries are
// deletes, the rest are updates. Entries are applied independently; one
// failure neither rolls back earlier entries nor stops later ones. The
// response carries the full visible set so the client can rebuild its
// local cache in one round trip.
func (s *productService) SynchronizeProducts(ctx context.Context, userUUID string, products []domain.Product) (domain.SynchronizeResponse, error) {
	status := domain.SyncStatusOK
	for _, req := range products {
		if err := s.applySyncEntry(ctx, userUUID, req); err != nil {
			log.Warnf("synchronize: entry %s for user %s failed: %v", req.UUID, userUUID, err)
			status = domain.SyncStatusPartial
		}
	}

	visible, err := s.GetAllProducts(ctx, userUUID, nil)
	if err != nil {
		if !errors.Is(err, domain.ErrContainerNotFound) {
			return domain.SynchronizeResponse{}, err
		}
		visible = []domain.Product{}
	}

	return domain.SynchronizeResponse{
		SynchronizedProducts: visible,
		Status:               status,
	}, nil
}

func (s *productService) applySyncEntry(ctx context.Context, userUUID string, req domain.Product) error {
	if req.UUID == "" {
		_, err := s.AddProduct(ctx, req, userUUID)
		return err
	}

	_, err := s.productRepository.GetFullProductByEntryUUID(ctx, req.UUID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		_, err := s.AddProduct(ctx, req, userUUID)
		return err
	}

	if req.Metadata.ToBeDeleted {
		return s.DeleteProduct(ctx, req.UUID, userUUID)
	}
	_, err = s.UpdateProduct(ctx, req)
	return err
}

// GetOutdatedProducts returns every entry (root or associated) expiring
// within the next three days, each paired with all of its stakeholders.
func (s *productService) GetOutdatedProducts(ctx context.Context) ([]domain.OutdatedProductResponse, error) {
	aggregates, err := s.productRepository.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(outdatedWindow)
	outdated := make([]domain.OutdatedProductResponse, 0)
	for i := range aggregates {
		aggregate := &aggregates[i]
		for _, entryUUID := range outdatedEntries(aggregate, cutoff) {
			owners, err := s.containerService.GetProductOwners(ctx, entryUUID)
			if err != nil {
				if errors.Is(err, domain.ErrContainerNotFound) {
					continue
				}
				return nil, err
			}

			users := make([]domain.UserResponse, 0, len(owners))
			for _, owner := range owners {
				users = append(users, user.ToUserResponse(owner))
			}
			outdated = append(outdated, domain.OutdatedProductResponse{
				OutdatedProduct: ProjectEntry(aggregate, entryUUID),
				Users:           users,
			})
		}
	}
	return outdated, nil
}

// NotifyOutdatedProducts emails every stakeholder of every outdated
// product. Delivery is best-effort per recipient; the count of sent mails
// is returned.
func (s *productService) NotifyOutdatedProducts(ctx context.Context) (int, error) {
	outdated, err := s.GetOutdatedProducts(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, item := range outdated {
		for _, recipient := range item.Users {
			body := expiryMailBody(item.OutdatedProduct)
			if err := mailing.SendMail(recipient.Email, "A product in your pantry is about to expire", body); err != nil {
				log.Warnf("notify outdated: mail to %s failed: %v", recipient.Email, err)
				continue
			}
			sent++
		}
	}
	return sent, nil
}

func outdatedEntries(aggregate *entities.Product, cutoff time.Time) []string {
	entries := make([]string, 0)
	if expiresBefore(aggregate.Metadata, cutoff) {
		entries = append(entries, aggregate.ID.String())
	}
	for _, associated := range aggregate.Associated {
		if expiresBefore(associated.Metadata, cutoff) {
			entries = append(entries, associated.UUID.String())
		}
	}
	return entries
}

func expiresBefore(metadata entities.Metadata, cutoff time.Time) bool {
	return metadata.ExpiryDate != nil && !metadata.ExpiryDate.After(cutoff)
}

func expiryMailBody(product domain.Product) string {
	expiry := "soon"
	if product.Metadata.ExpiryDate != nil {
		expiry = *product.Metadata.ExpiryDate
	}
	return fmt.Sprintf(
		"<p>Your product <b>%s</b> expires on <b>%s</b>.</p><p>Use it up before it goes to waste.</p>",
		product.Name, expiry,
	)
}
