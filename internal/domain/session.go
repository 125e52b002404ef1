package domain

// SessionContext holds the in-memory data of one conversation
type SessionContext struct {
	State ConversationState

	Language         string
	Phone            string
	Password         string
	CodeAction       CodeAction
	VerificationCode string
	ResetToken       string
	AppealTitle      string

	// Profile is set once the user is authenticated
	Profile *UserRecord
}

// NewSessionContext returns a session in the terminal state
func NewSessionContext() *SessionContext {
	return &SessionContext{State: StateEnd}
}

// Lang returns the active language, falling back to the default
func (s *SessionContext) Lang() string {
	if s.Language != "" {
		return s.Language
	}
	if s.Profile != nil && s.Profile.Language != "" {
		return s.Profile.Language
	}
	return DefaultLanguage
}

// LoggedIn reports whether the session carries an authenticated profile
func (s *SessionContext) LoggedIn() bool {
	return s.Profile != nil && s.Profile.LoggedIn
}

// ClearSecrets drops the credentials collected during an auth flow
func (s *SessionContext) ClearSecrets() {
	s.Password = ""
	s.VerificationCode = ""
	s.ResetToken = ""
	s.CodeAction = CodeActionNone
}

// ClearFlow drops everything gathered by an auth flow including the phone
func (s *SessionContext) ClearFlow() {
	s.ClearSecrets()
	s.Phone = ""
	s.AppealTitle = ""
}

// Reset wipes the whole session and puts it into the terminal state
func (s *SessionContext) Reset() {
	*s = SessionContext{State: StateEnd}
}

// Rehydrate fills the session from a stored logged-in record
func (s *SessionContext) Rehydrate(rec *UserRecord) {
	s.ClearFlow()
	s.Profile = rec.Clone()
	s.Language = rec.Language
	s.Phone = rec.Phone
}
