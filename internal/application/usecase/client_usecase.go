package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes.
type ClientUseCase struct {
	store *repository.Store
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(store *repository.Store) *ClientUseCase {
	return &ClientUseCase{store: store}
}

// List clientes visibles para el actor, con conteos de proyectos de su alcance.
func (uc *ClientUseCase) List(ctx context.Context, actor access.Actor, f dto.ClientFilter) ([]dto.ClientResponse, error) {
	if _, err := access.Authorize(actor, access.Clients, access.OpList); err != nil {
		return nil, err
	}
	clients, err := uc.store.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := loadProjects(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	match, err := companyFilter(ctx, uc.store, f.CompanyID)
	if err != nil {
		return nil, err
	}
	visibleProjects := access.FilterProjects(actor, projects)
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range access.FilterClients(actor, clients, projects) {
		if match(c.CompanyID) {
			out = append(out, clientResponse(c, visibleProjects))
		}
	}
	return out, nil
}

// Get cliente por id o alias legado. Fuera de alcance equivale a inexistente.
func (uc *ClientUseCase) Get(ctx context.Context, actor access.Actor, ref string) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	projects, err := loadProjects(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(actor, access.Clients, access.ClientSubject(c, projects)) {
		return nil, domain.ErrNotFound
	}
	res := clientResponse(c, access.FilterProjects(actor, projects))
	return &res, nil
}

// Create alta de cliente. El rol company crea en su propia empresa si no indica otra.
func (uc *ClientUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if _, err := access.Authorize(actor, access.Clients, access.OpCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre del cliente es requerido")
	}
	companyRef := in.CompanyID
	if companyRef == "" {
		companyRef = actor.PrimaryCompanyRef()
	}
	company, err := activeCompany(ctx, uc.store, companyRef)
	if err != nil {
		return nil, err
	}
	if err := access.Require(actor, access.Clients, access.OpCreate, access.Subject{CompanyRefs: company.Refs()}); err != nil {
		return nil, err
	}
	if in.LegacyID != "" {
		if dup, err := uc.store.Clients.GetByLegacyID(ctx, in.LegacyID); err != nil {
			return nil, err
		} else if dup != nil {
			return nil, fmt.Errorf("%w: ya existe un cliente con legacyId %s", domain.ErrConflict, in.LegacyID)
		}
	}

	ts := now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		LegacyID:    in.LegacyID,
		CompanyID:   company.ID,
		Name:        name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Industry:    in.Industry,
		Notes:       in.Notes,
		Status:      entity.StatusActive,
		CreatedBy:   actor.UserID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := uc.store.Clients.Create(ctx, client); err != nil {
		return nil, err
	}
	res := clientResponse(client, nil)
	return &res, nil
}

// Update aplica solo los campos que la compuerta permite al actor.
func (uc *ClientUseCase) Update(ctx context.Context, actor access.Actor, ref string, updates map[string]any) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	projects, err := loadProjects(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	allowed, err := access.GateUpdate(actor, access.Clients, access.ClientSubject(c, projects), updates)
	if err != nil {
		return nil, err
	}
	var patch dto.ClientPatch
	if err := decodePatch(allowed, &patch); err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, c, patch); err != nil {
		return nil, err
	}
	c.UpdatedAt = now()
	if err := uc.store.Clients.Update(ctx, c); err != nil {
		return nil, err
	}
	res := clientResponse(c, access.FilterProjects(actor, projects))
	return &res, nil
}

func (uc *ClientUseCase) apply(ctx context.Context, c *entity.Client, p dto.ClientPatch) error {
	if err := requireText("name", p.Name); err != nil {
		return err
	}
	if p.Status != nil && !validStatus(*p.Status) {
		return domain.Invalid("status inválido: %s", *p.Status)
	}
	if p.CompanyID != nil {
		company, err := activeCompany(ctx, uc.store, *p.CompanyID)
		if err != nil {
			return err
		}
		c.CompanyID = company.ID
	}
	setString(&c.Name, p.Name)
	setString(&c.ContactName, p.ContactName)
	setString(&c.Email, p.Email)
	setString(&c.Phone, p.Phone)
	setString(&c.Address, p.Address)
	setString(&c.Industry, p.Industry)
	setString(&c.Notes, p.Notes)
	setString(&c.Status, p.Status)
	return nil
}

// Deactivate baja lógica; repetirla no es un error.
func (uc *ClientUseCase) Deactivate(ctx context.Context, actor access.Actor, ref string) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	projects, err := loadProjects(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	if err := access.Require(actor, access.Clients, access.OpDeactivate, access.ClientSubject(c, projects)); err != nil {
		return nil, err
	}
	if c.Status != entity.StatusInactive {
		c.Status = entity.StatusInactive
		c.UpdatedAt = now()
		if err := uc.store.Clients.Update(ctx, c); err != nil {
			return nil, err
		}
	}
	res := clientResponse(c, access.FilterProjects(actor, projects))
	return &res, nil
}

func (uc *ClientUseCase) find(ctx context.Context, ref string) (*entity.Client, error) {
	return resolve(ctx, ref, uc.store.Clients.GetByID, uc.store.Clients.GetByLegacyID)
}

// clientResponse los conteos se calculan sobre projects, que ya viene filtrado por alcance.
func clientResponse(c *entity.Client, projects []*entity.Project) dto.ClientResponse {
	res := dto.ClientFromEntity(c)
	for _, p := range projects {
		if !c.HasRef(p.ClientID) {
			continue
		}
		res.TotalProjects++
		if p.IsActive() {
			res.ActiveProjects++
		}
		if p.Status == entity.ProjectCompleted {
			res.CompletedProjects++
		}
	}
	return res
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
