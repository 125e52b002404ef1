package conversation

import (
	"context"
	"errors"

	"authbot/internal/domain"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Event is reported by a step to move the session forward
type Event string

// Stay keeps the current state
const Stay Event = ""

const (
	EventStart                  Event = "start"
	EventResume                 Event = "resume"
	EventFinish                 Event = "finish"
	EventLanguageChosen         Event = "language_chosen"
	EventChooseLogin            Event = "choose_login"
	EventChooseGetCode          Event = "choose_get_code"
	EventChooseRegister         Event = "choose_register"
	EventCodeActionChosen       Event = "code_action_chosen"
	EventPasswordRequested      Event = "password_requested"
	EventCodeSent               Event = "code_sent"
	EventLoggedIn               Event = "logged_in"
	EventLoginFailed            Event = "login_failed"
	EventResetAuthorized        Event = "reset_authorized"
	EventCodeAccepted           Event = "code_accepted"
	EventPasswordReset          Event = "password_reset"
	EventPasswordResetSignedOut Event = "password_reset_signed_out"
	EventChangePhone            Event = "change_phone"
	EventContactAdmin           Event = "contact_admin"
	EventForgotPassword         Event = "forgot_password"
	EventPhoneChanged           Event = "phone_changed"
	EventAppealTitled           Event = "appeal_titled"
	EventAppealSubmitted        Event = "appeal_submitted"
	EventBack                   Event = "back"
	EventBackToCodeMenu         Event = "back_to_code_menu"
	EventBackToMainChoice       Event = "back_to_main_choice"
	EventBackToMainMenu         Event = "back_to_main_menu"
)

func states(s ...domain.ConversationState) []string {
	out := make([]string, len(s))
	for i, st := range s {
		out[i] = string(st)
	}
	return out
}

func allStates() []string {
	return states(domain.AllStates...)
}

func edge(ev Event, dst domain.ConversationState, src ...domain.ConversationState) fsm.EventDesc {
	return fsm.EventDesc{Name: string(ev), Src: states(src...), Dst: string(dst)}
}

// transitions is the complete conversation graph
var transitions = fsm.Events{
	{Name: string(EventStart), Src: allStates(), Dst: string(domain.StateLanguageSelect)},
	{Name: string(EventResume), Src: allStates(), Dst: string(domain.StateMainMenu)},
	{Name: string(EventFinish), Src: allStates(), Dst: string(domain.StateEnd)},

	edge(EventLanguageChosen, domain.StateMainChoice, domain.StateLanguageSelect),

	edge(EventChooseLogin, domain.StateCodePhoneEntry, domain.StateMainChoice),
	edge(EventChooseGetCode, domain.StateGetCodeMenu, domain.StateMainChoice),
	edge(EventChooseRegister, domain.StateRegisterPhone, domain.StateMainChoice),
	edge(EventCodeActionChosen, domain.StateCodePhoneEntry, domain.StateGetCodeMenu),

	edge(EventPasswordRequested, domain.StateLoginPassword, domain.StateCodePhoneEntry),
	edge(EventCodeSent, domain.StateCodeVerify, domain.StateCodePhoneEntry),
	edge(EventCodeSent, domain.StateForgotPasswordCode, domain.StateForgotPasswordContact),
	edge(EventCodeSent, domain.StateRegisterCodeEntry, domain.StateRegisterPhone),

	edge(EventLoggedIn, domain.StateMainMenu, domain.StateLoginPassword, domain.StateCodeVerify, domain.StateRegisterData),
	edge(EventLoginFailed, domain.StateMainChoice, domain.StateLoginPassword),
	edge(EventResetAuthorized, domain.StateForgotPasswordNewPassword, domain.StateCodeVerify, domain.StateForgotPasswordCode),
	edge(EventCodeAccepted, domain.StateRegisterData, domain.StateCodeVerify, domain.StateRegisterCodeEntry),
	edge(EventPasswordReset, domain.StateMainMenu, domain.StateForgotPasswordNewPassword),
	edge(EventPasswordResetSignedOut, domain.StateMainChoice, domain.StateForgotPasswordNewPassword),

	edge(EventChangePhone, domain.StateChangePhone, domain.StateMainMenu),
	edge(EventContactAdmin, domain.StateAppealTitle, domain.StateMainMenu),
	edge(EventForgotPassword, domain.StateForgotPasswordContact, domain.StateMainMenu),
	edge(EventPhoneChanged, domain.StateMainMenu, domain.StateChangePhone),
	edge(EventAppealTitled, domain.StateAppealDesc, domain.StateAppealTitle),
	edge(EventAppealSubmitted, domain.StateMainMenu, domain.StateAppealDesc),

	edge(EventBack, domain.StateMainChoice, domain.StateGetCodeMenu, domain.StateRegisterPhone),
	edge(EventBack, domain.StateGetCodeMenu, domain.StateCodeVerify),
	edge(EventBack, domain.StateRegisterPhone, domain.StateRegisterCodeEntry),
	edge(EventBack, domain.StateRegisterCodeEntry, domain.StateRegisterData),
	edge(EventBack, domain.StateMainMenu,
		domain.StateChangePhone,
		domain.StateAppealTitle,
		domain.StateAppealDesc,
		domain.StateForgotPasswordContact,
		domain.StateForgotPasswordCode,
	),
	edge(EventBackToCodeMenu, domain.StateGetCodeMenu, domain.StateCodePhoneEntry, domain.StateForgotPasswordNewPassword),
	edge(EventBackToMainChoice, domain.StateMainChoice, domain.StateCodePhoneEntry),
	edge(EventBackToMainMenu, domain.StateMainMenu, domain.StateForgotPasswordNewPassword),
}

// fire applies ev to the session state. Illegal events are logged and leave
// the state untouched.
func (e *Engine) fire(ctx context.Context, s *domain.SessionContext, ev Event) {
	if ev == Stay {
		return
	}

	machine := fsm.NewFSM(string(s.State), transitions, fsm.Callbacks{
		"enter_state": func(_ context.Context, fe *fsm.Event) {
			e.metrics.ObserveTransition(fe.Src, fe.Dst)
		},
	})

	err := machine.Event(ctx, string(ev))
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		e.logger.Warn("Rejected state transition",
			zap.String("state", string(s.State)),
			zap.String("event", string(ev)),
			zap.Error(err),
		)
		return
	}

	s.State = domain.ConversationState(machine.Current())
}

