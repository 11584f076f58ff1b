package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/paycort/paycort-admin/internal/dependency/mocks"
	"github.com/paycort/paycort-admin/internal/dto"
	"github.com/paycort/paycort-admin/internal/entity"
	gerr "github.com/paycort/paycort-admin/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	signups, err := Load(strings.NewReader(`[
		{"firstName":"Ada","lastName":"Lovelace","phone":"+1555","email":"ada@example.com"}
	]`))
	require.NoError(t, err)
	require.Len(t, signups, 1)
	assert.Equal(t, "ada@example.com", signups[0].Email)

	_, err = Load(strings.NewReader(`[{"first":"Ada"}]`))
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	w := mocks.NewWaitlist(t)

	w.On("EmailExists", ctx, "ada@example.com").Return(false, nil).Once()
	w.On("AddEntry", ctx, &entity.WaitlistEntryInsert{
		FirstName: "Ada", LastName: "Lovelace", Phone: "+1555", Email: "ada@example.com",
	}).Return("id-1", nil).Once()
	id, err := Add(ctx, w, &dto.WaitlistSignup{
		FirstName: " Ada ", LastName: "Lovelace", Phone: "+1555", Email: " ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	w.On("EmailExists", ctx, "grace@example.com").Return(true, nil).Once()
	_, err = Add(ctx, w, &dto.WaitlistSignup{
		FirstName: "Grace", LastName: "Hopper", Phone: "+1555", Email: "grace@example.com",
	})
	assert.ErrorIs(t, err, gerr.ErrAlreadyExists)

	_, err = Add(ctx, w, &dto.WaitlistSignup{FirstName: "No", LastName: "Mail", Phone: "1", Email: "nope"})
	assert.ErrorIs(t, err, gerr.ErrInvalidArgument)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	w := mocks.NewWaitlist(t)

	w.On("EmailExists", ctx, "ada@example.com").Return(false, nil).Once()
	w.On("EmailExists", ctx, "grace@example.com").Return(true, nil).Once()
	w.On("AddEntry", ctx, mock.MatchedBy(func(e *entity.WaitlistEntryInsert) bool {
		return e.Email == "ada@example.com"
	})).Return("id-1", nil).Once()

	res, err := Run(ctx, w, []dto.WaitlistSignup{
		{FirstName: "Ada", LastName: "Lovelace", Phone: "+1555", Email: "ada@example.com"},
		{FirstName: "Grace", LastName: "Hopper", Phone: "+1555", Email: "grace@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 1, Skipped: 1}, res)
}

func TestRun_StopsOnStoreError(t *testing.T) {
	ctx := context.Background()
	w := mocks.NewWaitlist(t)
	w.On("EmailExists", ctx, "ada@example.com").Return(false, errors.New("connection refused")).Once()

	res, err := Run(ctx, w, []dto.WaitlistSignup{
		{FirstName: "Ada", LastName: "Lovelace", Phone: "+1555", Email: "ada@example.com"},
		{FirstName: "Grace", LastName: "Hopper", Phone: "+1555", Email: "grace@example.com"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signup 0")
	assert.Equal(t, 0, res.Added)
}
