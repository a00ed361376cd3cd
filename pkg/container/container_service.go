package container

import (
	"context"
	"errors"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"
	"Pantry-Share-Backend/pkg/user"

	"gorm.io/gorm"
)

type (
	ContainerService interface {
		GetContainer(ctx context.Context, uuid string) (entities.Container, error)
		GetSharedInfo(ctx context.Context, containerUUID string) (domain.SharedInfoResponse, error)
		ShareContainer(ctx context.Context, requesterUUID, targetUUID string) error
		GetProductOwners(ctx context.Context, productUUID string) ([]entities.User, error)
	}

	containerService struct {
		containerRepository ContainerRepository
		userRepository      user.UserRepository
	}
)

func NewContainerService(containerRepository ContainerRepository, userRepository user.UserRepository) ContainerService {
	return &containerService{
		containerRepository: containerRepository,
		userRepository:      userRepository,
	}
}

func (s *containerService) GetContainer(ctx context.Context, uuid string) (entities.Container, error) {
	container, err := s.containerRepository.GetContainer(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Container{}, domain.ErrContainerNotFound
		}
		return entities.Container{}, err
	}
	return *container, nil
}

func (s *containerService) GetSharedInfo(ctx context.Context, containerUUID string) (domain.SharedInfoResponse, error) {
	container, err := s.containerRepository.GetContainer(ctx, containerUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SharedInfoResponse{}, domain.ErrContainerNotFound
		}
		return domain.SharedInfoResponse{}, err
	}

	users, err := s.userRepository.GetUsersByUUIDs(ctx, container.UsersUUIDs)
	if err != nil {
		return domain.SharedInfoResponse{}, err
	}

	sharingUsers := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		sharingUsers = append(sharingUsers, user.ToUserResponse(u))
	}

	return domain.SharedInfoResponse{
		SharingUsers:        sharingUsers,
		TotalSharedProducts: len(container.SharedProducts),
		TotalOwnedProducts:  len(container.OwnerProducts),
	}, nil
}

// ShareContainer merges the requester into the target's sharing group.
// Sharing groups form a single clique, never a chain: the requester
// absorbs the target's whole group and every existing member gains the
// requester. Only a container with no prior sharing relation may request
// a share.
func (s *containerService) ShareContainer(ctx context.Context, requesterUUID, targetUUID string) error {
	requester, err := s.containerRepository.GetContainer(ctx, requesterUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrContainerNotFound
		}
		return err
	}
	target, err := s.containerRepository.GetContainer(ctx, targetUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrContainerNotFound
		}
		return err
	}

	if requester.ID == target.ID {
		return domain.ErrShareWithSelf
	}
	if len(requester.UsersUUIDs) > 0 {
		return domain.ErrContainerAlreadyShared
	}

	groupMembers := append([]string{}, target.UsersUUIDs...)

	requester.UsersUUIDs = append(requester.UsersUUIDs, target.OwnerUUID.String())
	requester.UsersUUIDs = append(requester.UsersUUIDs, groupMembers...)
	target.UsersUUIDs = append(target.UsersUUIDs, requester.OwnerUUID.String())

	if err := s.containerRepository.UpdateContainer(ctx, requester); err != nil {
		return err
	}
	if err := s.containerRepository.UpdateContainer(ctx, target); err != nil {
		return err
	}

	for _, memberUUID := range groupMembers {
		member, err := s.containerRepository.FindContainerByOwner(ctx, memberUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrContainerNotFound
			}
			return err
		}
		member.UsersUUIDs = append(member.UsersUUIDs, requester.OwnerUUID.String())
		if err := s.containerRepository.UpdateContainer(ctx, member); err != nil {
			return err
		}
	}
	return nil
}

// GetProductOwners returns the owning user of the aggregate holding the
// given entry uuid plus every user its container is shared with, so all
// stakeholders can be notified.
func (s *containerService) GetProductOwners(ctx context.Context, productUUID string) ([]entities.User, error) {
	container, err := s.containerRepository.GetContainerWithProduct(ctx, productUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContainerNotFound
		}
		return nil, err
	}

	uuids := append([]string{container.OwnerUUID.String()}, container.UsersUUIDs...)
	return s.userRepository.GetUsersByUUIDs(ctx, uuids)
}
