package referral

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Contacts son las referencias estáticas a un veterinario. No hay conexión en vivo.
type Contacts struct {
	Phone string
	Chat  string
}

func New(phone, chat string) Contacts {
	return Contacts{
		Phone: strings.TrimSpace(phone),
		Chat:  strings.TrimSpace(chat),
	}
}

// CallMessage se muestra con el botón de pedido de llamada.
func (c Contacts) CallMessage() string {
	return "در نسخه فعلی، امکان اتصال خودکار به دامپزشک هنوز به‌صورت کامل راه‌اندازی نشده.\n\n" +
		"برای تماس تلفنی با دامپزشک، لطفاً با شماره زیر تماس بگیر:\n" +
		c.Phone + "\n\n" +
		"در نسخه‌های بعدی، این دکمه شما را به دامپزشک آن‌کال متصل خواهد کرد. 🩺"
}

// ChatMessage se muestra con el botón de chat online.
func (c Contacts) ChatMessage() string {
	return "در نسخه فعلی، برای شروع چت آنلاین با دامپزشک، می‌تونی از این لینک/یوزرنیم استفاده کنی:\n" +
		c.Chat + "\n\n" +
		"در نسخه‌های بعدی، چت آنلاین مستقیماً از داخل همین بات انجام خواهد شد. 💬"
}

func RegisterRoutes(r chi.Router, c Contacts) {
	r.Get("/contact", contactHandler(c))
}

// contactResponse expone las referencias tal cual están configuradas.
type contactResponse struct {
	Phone string `json:"phone"`
	Chat  string `json:"chat"`
}

// contactHandler godoc
// @Summary Referencias de contacto con el veterinario
// @Description Teléfono y link/usuario de chat configurados (VET_PHONE_NUMBER / VET_CHAT_LINK).
// @Tags referral
// @Produce json
// @Success 200 {object} contactResponse
// @Router /contact [get]
func contactHandler(c Contacts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(contactResponse{Phone: c.Phone, Chat: c.Chat})
	}
}
