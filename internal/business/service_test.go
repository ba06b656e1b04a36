package business

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedilo/pedilo-backend/pkg/db/models"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
)

type fakeBusinessRepo struct {
	rows map[string]*models.Business
}

func (f *fakeBusinessRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Business, error) {
	for _, row := range f.rows {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBusinessRepo) FindBySlug(_ context.Context, slug string) (*models.Business, error) {
	row, ok := f.rows[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeBusinessRepo) Update(_ context.Context, row *models.Business) error {
	f.rows[row.Slug] = row
	return nil
}

func (f *fakeBusinessRepo) SetAceptaPedidos(_ context.Context, id uuid.UUID, acepta bool) error {
	for _, row := range f.rows {
		if row.ID == id {
			row.AceptaPedidos = acepta
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func seedBusiness() (*fakeBusinessRepo, *models.Business) {
	row := &models.Business{
		ID:                   uuid.New(),
		Slug:                 "la-esquina",
		Nombre:               "La Esquina",
		TipoNegocio:          enums.BusinessTypeMinorista,
		AceptaPedidos:        true,
		PedidoMinimoCentavos: 150000,
	}
	return &fakeBusinessRepo{rows: map[string]*models.Business{row.Slug: row}}, row
}

func TestPricingContextBySlug(t *testing.T) {
	repo, row := seedBusiness()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	pc, err := svc.PricingContextBySlug(context.Background(), "la-esquina")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.BusinessID != row.ID {
		t.Fatalf("expected business id %s, got %s", row.ID, pc.BusinessID)
	}
	if !pc.AceptaPedidos {
		t.Fatal("expected acepta_pedidos true")
	}
	if pc.PedidoMinimoCentavos != 150000 {
		t.Fatalf("expected minimum 150000, got %d", pc.PedidoMinimoCentavos)
	}
}

func TestPricingContextBySlugNotFound(t *testing.T) {
	repo, _ := seedBusiness()
	svc, _ := NewService(repo)

	_, err := svc.PricingContextBySlug(context.Background(), "no-such-store")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateValidatesMinimum(t *testing.T) {
	repo, row := seedBusiness()
	svc, _ := NewService(repo)

	bad := int64(-1)
	_, err := svc.Update(context.Background(), row.ID, UpdateBusinessInput{PedidoMinimoCentavos: &bad})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	good := int64(200000)
	dto, err := svc.Update(context.Background(), row.ID, UpdateBusinessInput{PedidoMinimoCentavos: &good})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.PedidoMinimoCentavos != 200000 {
		t.Fatalf("expected minimum 200000, got %d", dto.PedidoMinimoCentavos)
	}
}

func TestSetAceptaPedidos(t *testing.T) {
	repo, row := seedBusiness()
	svc, _ := NewService(repo)

	dto, err := svc.SetAceptaPedidos(context.Background(), row.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.AceptaPedidos {
		t.Fatal("expected acepta_pedidos false after toggle")
	}

	pc, err := svc.PricingContextBySlug(context.Background(), row.Slug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.AceptaPedidos {
		t.Fatal("expected pricing context to observe the toggle")
	}
}
