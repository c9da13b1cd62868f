package converter

import (
	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ClientToCreateParams(c *client.Client) query.CreateClientParams {
	return query.CreateClientParams{
		ID:        c.ID(),
		OwnerID:   c.OwnerID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     clientEmail(c),
		Phone:     pgconv.TextFromString(c.Phone()),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func ClientToUpdateParams(c *client.Client) query.UpdateClientParams {
	return query.UpdateClientParams{
		ID:        c.ID(),
		OwnerID:   c.OwnerID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     clientEmail(c),
		Phone:     pgconv.TextFromString(c.Phone()),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func clientEmail(c *client.Client) pgtype.Text {
	if c.Email() == nil {
		return pgtype.Text{}
	}
	return pgconv.TextFromString(c.Email().Value())
}
