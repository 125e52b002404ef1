package conversation

import (
	"fmt"
	"strings"

	"authbot/internal/domain"
	"authbot/internal/i18n"

	"github.com/google/uuid"
)

const (
	dateLayout     = "02.01.2006"
	dateTimeLayout = "02.01.2006 15:04"
	separator      = "━━━━━━━━━━━━━━━━━━━━━━━━"
)

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// profileCard renders the stored profile
func (e *Engine) profileCard(lang i18n.Lang, rec *domain.UserRecord) string {
	if rec == nil {
		rec = &domain.UserRecord{}
	}
	return i18n.Format(lang, i18n.KeyProfileCard,
		orDefault(rec.FullName, "User"),
		orDefault(rec.Phone, "N/A"),
		orDefault(rec.Balance, "0"),
		orDefault(rec.Role, "user"),
		i18n.LanguageLabel(lang),
		e.now().Format(dateLayout),
		rec.UserID,
	)
}

// appealReport composes the operator channel message
func (e *Engine) appealReport(in Input, s *domain.SessionContext, title, body string) string {
	name, phone := "User", orDefault(s.Phone, "N/A")
	if s.Profile != nil {
		name = orDefault(s.Profile.FullName, name)
		phone = orDefault(s.Profile.Phone, phone)
	}
	username := "Yo'q"
	if in.Username != "" {
		username = "@" + in.Username
	}

	var b strings.Builder
	b.WriteString("╔══════════════════════════╗\n")
	b.WriteString("   🆕 YANGI MUROJAAT\n")
	b.WriteString("╚══════════════════════════╝\n\n")
	fmt.Fprintf(&b, "👤 Ism: %s\n", name)
	fmt.Fprintf(&b, "🆔 User ID: %d\n", in.UserID)
	fmt.Fprintf(&b, "📱 Telefon: %s\n", phone)
	fmt.Fprintf(&b, "🌐 Username: %s\n\n", username)
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "📝 Sarlavha:\n%s\n\n", title)
	fmt.Fprintf(&b, "📄 Tavsif:\n%s\n\n", body)
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "📅 Sana: %s\n", e.now().Format(dateTimeLayout))
	fmt.Fprintf(&b, "🔖 Ref: %s", uuid.NewString()[:8])
	return b.String()
}
