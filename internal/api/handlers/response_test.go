package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondBadRequest(rec, "bad")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":400,"message":"bad"}`, rec.Body.String())
}

func TestRespondInternalError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":500,"message":"internal server error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Room string `json:"room"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"room":"R"}`},
		{name: "unknown field is ignored", body: `{"room":"R","extra":1}`},
		{name: "two objects", body: `{"room":"R"}{"room":"S"}`, wantErr: true},
		{name: "malformed", body: `{"room":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "R", p.Room)
		})
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	var p struct{}

	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &p)
	assert.ErrorIs(t, err, io.EOF)

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Body = nil
	assert.ErrorIs(t, DecodeJSON(r, &p), io.EOF)
}
