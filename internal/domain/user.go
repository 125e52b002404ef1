package domain

import "time"

// DefaultLanguage is used when a user never picked a language
const DefaultLanguage = "uz"

// UserRecord is the durable profile of a bot user
type UserRecord struct {
	UserID       int64
	Phone        string
	FullName     string
	Role         string
	Balance      string
	AccessToken  string
	RefreshToken string
	Language     string
	LoggedIn     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a copy safe to mutate
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// ConversationState identifies the step that handles the next message
type ConversationState string

const (
	StateLanguageSelect            ConversationState = "language_select"
	StateMainChoice                ConversationState = "main_choice"
	StateGetCodeMenu               ConversationState = "get_code_menu"
	StateCodePhoneEntry            ConversationState = "code_phone_entry"
	StateCodeVerify                ConversationState = "code_verify"
	StateLoginPassword             ConversationState = "login_password"
	StateRegisterPhone             ConversationState = "register_phone"
	StateRegisterCodeEntry         ConversationState = "register_code_entry"
	StateRegisterData              ConversationState = "register_data"
	StateMainMenu                  ConversationState = "main_menu"
	StateChangePhone               ConversationState = "change_phone"
	StateAppealTitle               ConversationState = "appeal_title"
	StateAppealDesc                ConversationState = "appeal_desc"
	StateForgotPasswordContact     ConversationState = "forgot_password_contact"
	StateForgotPasswordCode        ConversationState = "forgot_password_code"
	StateForgotPasswordNewPassword ConversationState = "forgot_password_new_password"
	StateEnd                       ConversationState = "end"
)

// AllStates lists every conversation state
var AllStates = []ConversationState{
	StateLanguageSelect,
	StateMainChoice,
	StateGetCodeMenu,
	StateCodePhoneEntry,
	StateCodeVerify,
	StateLoginPassword,
	StateRegisterPhone,
	StateRegisterCodeEntry,
	StateRegisterData,
	StateMainMenu,
	StateChangePhone,
	StateAppealTitle,
	StateAppealDesc,
	StateForgotPasswordContact,
	StateForgotPasswordCode,
	StateForgotPasswordNewPassword,
	StateEnd,
}

// CodeAction tells which flow a one-time code belongs to
type CodeAction string

const (
	CodeActionNone     CodeAction = ""
	CodeActionLogin    CodeAction = "login"
	CodeActionRegister CodeAction = "register"
	CodeActionForgot   CodeAction = "forgot"
)
