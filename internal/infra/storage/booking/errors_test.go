package booking

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/petmais/PetMais-Backend/pkg/pgerr"
)

func TestWrapExecErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "serialization conflict", err: &pq.Error{Code: "40001"}, want: pgerr.ErrSerialization},
		{name: "connection exception", err: &pq.Error{Code: "08006"}, want: ErrUnavailable},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: ErrExecQuery},
		{name: "plain error", err: errors.New("boom"), want: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapExecErr("CountOverlapping - execute query", tt.err)
			assert.ErrorIs(t, wrapped, tt.want)
		})
	}
}

func TestWrapExecErr_SerializationMarkSurvivesRewrap(t *testing.T) {
	wrapped := wrapExecErr("Create - execute insert", &pq.Error{Code: "40001"})

	// Менеджер транзакций видит конфликт даже после обёртывания через %v
	assert.True(t, pgerr.IsSerializationFailure(wrapped))
}
