package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/petmais/PetMais-Backend/internal/usecase/create_booking"
	"github.com/petmais/PetMais-Backend/pkg/ptr"
)

type fakeUseCase struct {
	req  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/agendar", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() string {
	return `{
		"id_cliente": "client-uuid-1",
		"id_pet": 5,
		"id_loja": 1,
		"id_servico": 2,
		"data_hora_inicio": "2026-03-10T10:00:00-03:00",
		"observacoes_cliente": "tosa completa"
	}`
}

func TestHandle_CreatesBooking(t *testing.T) {
	start := time.Date(2026, time.March, 10, 13, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:        42,
		ClientID:  "client-uuid-1",
		PetID:     ptr.Ptr(int64(5)),
		StoreID:   1,
		ServiceID: 2,
		StartsAt:  start,
		EndsAt:    start.Add(60 * time.Minute),
		Status:    "confirmado",
		Notes:     ptr.Ptr("tosa completa"),
		CreatedAt: time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Agendamento criado!", resp.Message)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, "2026-03-10T13:00:00Z", resp.Booking.StartsAt)
	assert.Equal(t, "2026-03-10T14:00:00Z", resp.Booking.EndsAt)
	assert.Equal(t, "confirmado", resp.Booking.Status)

	// Смещение из запроса сохраняется до usecase
	require.NotNil(t, uc.req)
	assert.True(t, uc.req.StartsAt.Equal(start))
	_, offset := uc.req.StartsAt.Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestHandle_EmptyBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Sem corpo JSON."}`, rec.Body.String())
}

func TestHandle_MissingFields(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"id_cliente": "client-uuid-1", "id_loja": 1}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error": "Dados incompletos. Campos faltando: id_servico, data_hora_inicio"}`, rec.Body.String())
	assert.Nil(t, uc.req)
}

func TestHandle_MalformedStartTime(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := `{
		"id_cliente": "client-uuid-1",
		"id_loja": 1,
		"id_servico": 2,
		"data_hora_inicio": "10/03/2026 10:00"
	}`
	rec := doRequest(t, h, body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotNotAvailable}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error": "Horário 10:00 não mais disponível."}`, rec.Body.String())
}

func TestHandle_StoreUnavailable(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrStoreUnavailable}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error": "Erro DB indisponível."}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Erro interno ao agendar."}`, rec.Body.String())
}
