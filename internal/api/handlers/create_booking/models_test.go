package create_booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "all present",
			body: `{"id_cliente": "c1", "id_loja": 1, "id_servico": 2, "data_hora_inicio": "2026-03-10T10:00:00-03:00"}`,
			want: []string{},
		},
		{
			name: "empty object",
			body: `{}`,
			want: []string{"id_cliente", "id_loja", "id_servico", "data_hora_inicio"},
		},
		{
			name: "empty strings counted as missing",
			body: `{"id_cliente": "", "id_loja": 1, "id_servico": 2, "data_hora_inicio": ""}`,
			want: []string{"id_cliente", "data_hora_inicio"},
		},
		{
			name: "optional fields do not matter",
			body: `{"id_pet": 5, "observacoes_cliente": "x"}`,
			want: []string{"id_cliente", "id_loja", "id_servico", "data_hora_inicio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateBookingRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.MissingFields())
		})
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	msg := MissingFieldsMessage([]string{"id_loja", "data_hora_inicio"})
	assert.Equal(t, "Dados incompletos. Campos faltando: id_loja, data_hora_inicio", msg)
}

func TestToUseCaseRequest_RequiresOffset(t *testing.T) {
	body := `{"id_cliente": "c1", "id_loja": 1, "id_servico": 2, "data_hora_inicio": "2026-03-10T10:00:00"}`

	var req CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Empty(t, req.MissingFields())

	_, err := req.ToUseCaseRequest()
	assert.Error(t, err)
}
