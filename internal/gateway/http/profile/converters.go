package profile

import (
	"fmt"

	"freight/internal/entities"
)

type actorResponse struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

func toDomain(payload actorResponse) (*entities.Actor, error) {
	role := entities.Role(payload.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q for actor %d", payload.Role, payload.ID)
	}
	return &entities.Actor{
		ID:   payload.ID,
		Role: role,
	}, nil
}
