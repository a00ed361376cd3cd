package domain

import (
	"errors"
)

var (
	MessageSuccessGetContainer   = "container retrieved successfully"
	MessageSuccessGetSharedInfo  = "shared info retrieved successfully"
	MessageSuccessShareContainer = "containers shared successfully"

	MessageFailedGetContainer   = "failed to retrieve container"
	MessageFailedGetSharedInfo  = "failed to retrieve shared info"
	MessageFailedShareContainer = "failed to share containers"

	ErrContainerNotFound      = errors.New("container not found")
	ErrShareWithSelf          = errors.New("container cannot be shared with itself")
	ErrContainerAlreadyShared = errors.New("container is already shared")
)

type SharedInfoResponse struct {
	SharingUsers        []UserResponse `json:"sharingUsers"`
	TotalSharedProducts int            `json:"totalSharedProducts"`
	TotalOwnedProducts  int            `json:"totalOwnedProducts"`
}
