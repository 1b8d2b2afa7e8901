package referral

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesCarryContactsVerbatim(t *testing.T) {
	c := New(" 0912 000 0000 ", "@vet_on_call")
	assert.Contains(t, c.CallMessage(), "\n0912 000 0000\n")
	assert.Contains(t, c.ChatMessage(), "\n@vet_on_call\n")
}

func TestContactHandler(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, New("0912", "@vet"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body contactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, contactResponse{Phone: "0912", Chat: "@vet"}, body)
}
