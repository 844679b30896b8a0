package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

func TestUser_ListadoSoloOwner(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")

	all, err := e.users.List(e.ctx, e.owner)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = e.users.List(e.ctx, acme)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUser_LecturaPropiaYAjena(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, globex := e.company("globex@trictux.test", "Globex")

	me, err := e.users.Get(e.ctx, acme, "ACME@trictux.test")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, me.Role)

	_, err = e.users.Get(e.ctx, globex, acme.UserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUser_OwnerNoSeDesactiva(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")

	_, err := e.users.Update(e.ctx, e.owner, e.owner.UserID, map[string]any{"status": entity.StatusInactive})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := e.users.Update(e.ctx, e.owner, acme.UserID, map[string]any{"status": entity.StatusInactive, "role": entity.RoleOwner})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, got.Status)
	assert.Equal(t, entity.RoleCompany, got.Role)
}
