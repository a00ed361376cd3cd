package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Container is a user's ownership record plus the sharing graph. A product
// entry uuid appears in exactly one of OwnerProducts/SharedProducts at a
// time; UsersUUIDs is the symmetric set of users this container is shared
// with.
type Container struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primary_key" json:"uuid"`
	OwnerUUID      uuid.UUID                   `gorm:"type:uuid;uniqueIndex" json:"ownerUuid"`
	OwnerProducts  datatypes.JSONSlice[string] `json:"ownerProducts"`
	SharedProducts datatypes.JSONSlice[string] `json:"sharedProducts"`
	UsersUUIDs     datatypes.JSONSlice[string] `json:"usersUuids"`

	Timestamp
}

// HasProduct reports whether the given entry uuid is registered in either
// product list.
func (c *Container) HasProduct(uuid string) bool {
	for _, id := range c.OwnerProducts {
		if id == uuid {
			return true
		}
	}
	for _, id := range c.SharedProducts {
		if id == uuid {
			return true
		}
	}
	return false
}

// RegisterProduct adds the entry uuid to the shared or owner list.
func (c *Container) RegisterProduct(uuid string, shared bool) {
	if shared {
		c.SharedProducts = append(c.SharedProducts, uuid)
	} else {
		c.OwnerProducts = append(c.OwnerProducts, uuid)
	}
}

// UnregisterProduct removes the entry uuid from the shared or owner list.
func (c *Container) UnregisterProduct(uuid string, shared bool) {
	if shared {
		c.SharedProducts = removeValue(c.SharedProducts, uuid)
	} else {
		c.OwnerProducts = removeValue(c.OwnerProducts, uuid)
	}
}

func removeValue(list datatypes.JSONSlice[string], value string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
