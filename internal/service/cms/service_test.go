package cms

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmais/PetMais-Backend/internal/domain"
	cmsRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/cms"
)

type fakeComponentRepo struct {
	component *domain.CMSComponent
	getErr    error

	upsertedName    string
	upsertedContent json.RawMessage
	upsertErr       error
}

func (f *fakeComponentRepo) GetByName(_ context.Context, _ string) (*domain.CMSComponent, error) {
	return f.component, f.getErr
}

func (f *fakeComponentRepo) Upsert(_ context.Context, name string, content json.RawMessage) (*domain.CMSComponent, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upsertedName = name
	f.upsertedContent = content
	return &domain.CMSComponent{Name: name, Content: content}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetComponent(t *testing.T) {
	content := json.RawMessage(`{"titulo": "Bem-vindo"}`)
	svc := NewService(&fakeComponentRepo{component: &domain.CMSComponent{Name: "banner", Content: content}}, nopLogger{})

	got, err := svc.GetComponent(context.Background(), "banner")

	require.NoError(t, err)
	assert.JSONEq(t, string(content), string(got))
}

func TestGetComponent_NotFound(t *testing.T) {
	svc := NewService(&fakeComponentRepo{getErr: cmsRepo.ErrComponentNotFound}, nopLogger{})

	_, err := svc.GetComponent(context.Background(), "banner")

	require.ErrorIs(t, err, ErrComponentNotFound)
}

func TestGetComponent_EmptyName(t *testing.T) {
	svc := NewService(&fakeComponentRepo{}, nopLogger{})

	_, err := svc.GetComponent(context.Background(), "")

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveComponent(t *testing.T) {
	repo := &fakeComponentRepo{}
	svc := NewService(repo, nopLogger{})

	content := json.RawMessage(`{"itens": [1, 2, 3]}`)
	got, err := svc.SaveComponent(context.Background(), "home_grid", content)

	require.NoError(t, err)
	assert.Equal(t, "home_grid", repo.upsertedName)
	assert.JSONEq(t, string(content), string(got))
}

func TestSaveComponent_InvalidJSON(t *testing.T) {
	svc := NewService(&fakeComponentRepo{}, nopLogger{})

	_, err := svc.SaveComponent(context.Background(), "home_grid", json.RawMessage(`{"aberto":`))

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveComponent_StoreUnavailable(t *testing.T) {
	svc := NewService(&fakeComponentRepo{upsertErr: cmsRepo.ErrUnavailable}, nopLogger{})

	_, err := svc.SaveComponent(context.Background(), "home_grid", json.RawMessage(`{}`))

	require.ErrorIs(t, err, ErrStoreUnavailable)
}
