package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/pets"
	"pet-triage/internal/domain/referral"
	"pet-triage/internal/domain/triage"
	"pet-triage/internal/platform/logger"
	"pet-triage/internal/platform/metrics"

	"github.com/google/uuid"
)

// Engine es la máquina de estados del intake. Los turnos de un mismo usuario
// se serializan; usuarios distintos avanzan en paralelo.
type Engine struct {
	sessions   SessionStore
	classifier triage.Classifier
	pets       *pets.Service
	cases      *cases.Service
	contacts   referral.Contacts
	log        logger.Logger

	locks *keyedMutex
	now   func() time.Time
	newID func() string
}

type Options struct {
	Sessions   SessionStore
	Classifier triage.Classifier // nil => triage.NewKeywordClassifier()
	Pets       *pets.Service
	Cases      *cases.Service
	Contacts   referral.Contacts
	Logger     logger.Logger // nil => no-op
}

func NewEngine(opts Options) *Engine {
	cl := opts.Classifier
	if cl == nil {
		cl = triage.NewKeywordClassifier()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Engine{
		sessions:   opts.Sessions,
		classifier: cl,
		pets:       opts.Pets,
		cases:      opts.Cases,
		contacts:   opts.Contacts,
		log:        log,
		locks:      newKeyedMutex(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Handle procesa un mensaje entrante del usuario.
func (e *Engine) Handle(ctx context.Context, userID, text string) (Response, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Response{}, ErrInvalidInput
	}
	text = strings.TrimSpace(text)

	unlock := e.locks.Lock(userID)
	defer unlock()

	sess, found, err := e.load(ctx, userID)
	if err != nil {
		return Response{}, err
	}

	switch {
	case isBeginTrigger(text):
		return e.begin(ctx, userID, sess, found)
	case text == CmdCancel:
		return e.cancel(ctx, userID, found)
	case text == CmdStart || text == CmdMenu:
		return Response{Messages: []Message{mainMenuMessage()}, State: stateOf(sess, found)}, nil
	}

	if !found {
		return e.idle(text), nil
	}
	return e.advance(ctx, sess, text)
}

// Begin arranca una sesión nueva (equivale al botón «شروع»).
func (e *Engine) Begin(ctx context.Context, userID string) (Response, error) {
	return e.Handle(ctx, userID, CmdBegin)
}

// Cancel descarta la sesión en curso sin persistir nada.
func (e *Engine) Cancel(ctx context.Context, userID string) (Response, error) {
	return e.Handle(ctx, userID, CmdCancel)
}

// Session devuelve la sesión viva; ok=false si el usuario está en IDLE.
func (e *Engine) Session(ctx context.Context, userID string) (Session, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Session{}, false, ErrInvalidInput
	}
	unlock := e.locks.Lock(userID)
	defer unlock()
	return e.load(ctx, userID)
}

// Prompt es la pregunta pendiente para el estado de la sesión.
func Prompt(s Session) Message {
	switch s.State {
	case StateSpecies:
		return speciesMessage()
	case StateName:
		return Message{Text: textName}
	case StateAge:
		return Message{Text: textAge}
	case StateWeight:
		return Message{Text: textWeight}
	case StateConditions:
		return Message{Text: textCondition}
	case StateComplaint:
		return Message{Text: textComplaint}
	case StateFollowup1, StateFollowup2, StateFollowup3:
		p, _ := triage.Followup(triage.ParseCategory(s.Answers[FieldCategory]), followupIndex(s.State))
		return promptMessage(p)
	default:
		return mainMenuMessage()
	}
}

func (e *Engine) load(ctx context.Context, userID string) (Session, bool, error) {
	sess, err := e.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("load session %s: %w", userID, err)
	}
	return sess, true, nil
}

func (e *Engine) save(ctx context.Context, s Session) error {
	s.UpdatedAt = e.now().UTC()
	if err := e.sessions.Save(ctx, s); err != nil {
		return fmt.Errorf("save session %s: %w", s.UserID, err)
	}
	return nil
}

func (e *Engine) begin(ctx context.Context, userID string, prev Session, found bool) (Response, error) {
	var resp Response
	if found {
		// restart explícito: la sesión anterior se descarta sin merge
		resp.Discarded = &Discard{SessionID: prev.ID, State: prev.State}
		e.log.Info("intake session discarded", map[string]any{
			"user_id":    userID,
			"session_id": prev.ID,
			"state":      string(prev.State),
		})
		metrics.IntakeSessionsDiscarded.Inc()
	}

	now := e.now().UTC()
	sess := Session{
		ID:        e.newID(),
		UserID:    userID,
		State:     StateSpecies,
		Answers:   map[Field]string{},
		StartedAt: now,
	}
	if err := e.save(ctx, sess); err != nil {
		return Response{}, err
	}
	metrics.IntakeSessionsStarted.Inc()
	e.log.Debug("intake session started", map[string]any{"user_id": userID, "session_id": sess.ID})

	resp.State = StateSpecies
	resp.add(Message{Text: textBegin}, speciesMessage())
	return resp, nil
}

func (e *Engine) cancel(ctx context.Context, userID string, found bool) (Response, error) {
	if !found {
		return Response{Messages: []Message{mainMenuMessage()}, State: StateIdle}, nil
	}
	if err := e.sessions.Delete(ctx, userID); err != nil {
		return Response{}, fmt.Errorf("delete session %s: %w", userID, err)
	}
	metrics.IntakeSessionsCancelled.Inc()

	return Response{
		Messages: []Message{{Text: textCancelled, Keyboard: mainMenuKeyboard}},
		State:    StateIdle,
	}, nil
}

// idle atiende texto fuera de un intake: botones de contacto o menú.
func (e *Engine) idle(text string) Response {
	resp := Response{State: StateIdle}
	switch text {
	case TriggerCall:
		resp.add(Message{Text: e.contacts.CallMessage()})
	case TriggerChat:
		resp.add(Message{Text: e.contacts.ChatMessage()})
	default:
		resp.add(mainMenuMessage())
	}
	return resp
}

func (e *Engine) advance(ctx context.Context, sess Session, text string) (Response, error) {
	// comandos desconocidos no son respuestas: se repite la pregunta
	if strings.HasPrefix(text, "/") {
		return Response{Messages: []Message{Prompt(sess)}, State: sess.State}, nil
	}
	if sess.Answers == nil {
		sess.Answers = map[Field]string{}
	}

	var resp Response
	switch sess.State {
	case StateSpecies:
		species, ok := ParseSpecies(text)
		if !ok {
			metrics.SpeciesRejected.Inc()
			return Response{Messages: []Message{speciesMessage()}, State: StateSpecies}, nil
		}
		sess.Answers[FieldSpecies] = string(species)
		sess.State = StateName
		resp.add(Message{Text: textName, RemoveKeyboard: true})

	case StateName:
		sess.Answers[FieldName] = text
		sess.State = StateAge
		resp.add(Message{Text: textAge})

	case StateAge:
		sess.Answers[FieldAge] = text
		sess.State = StateWeight
		resp.add(Message{Text: textWeight})

	case StateWeight:
		sess.Answers[FieldWeight] = text
		sess.State = StateConditions
		resp.add(Message{Text: textCondition})

	case StateConditions:
		return e.conditions(ctx, sess, text)

	case StateComplaint:
		sess.Answers[FieldComplaint] = text
		cat := e.classifier.Classify(text)
		sess.Answers[FieldCategory] = string(cat)
		metrics.ClassifierDecisions.WithLabelValues(string(cat)).Inc()

		p, _ := triage.Followup(cat, 1)
		sess.State = StateFollowup1
		resp.add(Message{Text: triage.Intro(cat)}, promptMessage(p))

	case StateFollowup1, StateFollowup2:
		idx := followupIndex(sess.State)
		sess.Answers[followupField(idx)] = text

		p, _ := triage.Followup(triage.ParseCategory(sess.Answers[FieldCategory]), idx+1)
		if idx == 1 {
			sess.State = StateFollowup2
		} else {
			sess.State = StateFollowup3
		}
		resp.add(promptMessage(p))

	case StateFollowup3:
		sess.Answers[FieldFollowup3] = text
		return e.finish(ctx, sess)

	default:
		// estado corrupto en el store: se trata como IDLE
		e.log.Warn("intake session in unknown state", map[string]any{
			"user_id": sess.UserID,
			"state":   string(sess.State),
		})
		if err := e.sessions.Delete(ctx, sess.UserID); err != nil {
			return Response{}, fmt.Errorf("delete session %s: %w", sess.UserID, err)
		}
		return e.idle(text), nil
	}

	if err := e.save(ctx, sess); err != nil {
		return Response{}, err
	}
	resp.State = sess.State
	return resp, nil
}

// conditions avanza la sesión antes de escribir el perfil: si el store falla,
// el turno se aborta sin perfil escrito y un reintento no lo duplica.
func (e *Engine) conditions(ctx context.Context, sess Session, text string) (Response, error) {
	sess.Answers[FieldConditions] = text
	sess.State = StateComplaint
	if err := e.save(ctx, sess); err != nil {
		return Response{}, err
	}

	resp := Response{State: StateComplaint}
	p, err := e.registerProfile(ctx, sess)
	if err != nil {
		resp.add(Message{Text: textProfileNotSaved}, Message{Text: textComplaint})
		return resp, nil
	}

	resp.PetID = p.ID
	sess.PetID = p.ID
	if err := e.save(ctx, sess); err != nil {
		// el perfil queda escrito; el caso saldrá sin pet_id
		e.log.Error("pet id not stored in session", map[string]any{
			"user_id": sess.UserID,
			"pet_id":  p.ID,
			"error":   err,
		})
	}
	resp.add(Message{Text: textComplaint})
	return resp, nil
}

func (e *Engine) registerProfile(ctx context.Context, sess Session) (pets.Profile, error) {
	p, err := e.pets.Register(ctx, sess.UserID, pets.RegisterInput{
		Species:           pets.Species(sess.Answers[FieldSpecies]),
		Name:              sess.Answers[FieldName],
		Age:               sess.Answers[FieldAge],
		Weight:            sess.Answers[FieldWeight],
		ChronicConditions: sess.Answers[FieldConditions],
	})
	if err != nil {
		metrics.RecordWriteFailures.WithLabelValues(metrics.KindPet).Inc()
		e.log.Error("pet profile not saved", map[string]any{
			"user_id":    sess.UserID,
			"session_id": sess.ID,
			"error":      err,
		})
		return pets.Profile{}, err
	}
	metrics.RecordWrites.WithLabelValues(metrics.KindPet).Inc()
	return p, nil
}

// finish corre el triage, escribe el caso y vuelve a IDLE.
func (e *Engine) finish(ctx context.Context, sess Session) (Response, error) {
	cat := triage.ParseCategory(sess.Answers[FieldCategory])
	res := triage.Decide(cat, sess.Answers[FieldFollowup1], sess.Answers[FieldFollowup2], sess.Answers[FieldFollowup3])

	// la sesión se borra antes de escribir el caso: si falla, el turno se
	// aborta sin caso y el próximo mensaje no puede escribir un segundo caso
	if err := e.sessions.Delete(ctx, sess.UserID); err != nil {
		return Response{}, fmt.Errorf("delete session %s: %w", sess.UserID, err)
	}
	metrics.TriageResults.WithLabelValues(string(cat), string(res.Level)).Inc()

	resp := Response{State: StateIdle, Result: &res}

	c, err := e.cases.Open(ctx, sess.UserID, cases.OpenInput{
		PetID:          sess.PetID,
		ChiefComplaint: sess.Answers[FieldComplaint],
		Category:       cat,
		Followup1:      sess.Answers[FieldFollowup1],
		Followup2:      sess.Answers[FieldFollowup2],
		Followup3:      sess.Answers[FieldFollowup3],
		Result:         res,
	})
	caseID := ""
	if err != nil {
		metrics.RecordWriteFailures.WithLabelValues(metrics.KindCase).Inc()
		e.log.Error("case not saved", map[string]any{
			"user_id":    sess.UserID,
			"session_id": sess.ID,
			"error":      err,
		})
	} else {
		metrics.RecordWrites.WithLabelValues(metrics.KindCase).Inc()
		resp.Case = &c
		caseID = c.ID
	}

	metrics.IntakeSessionsCompleted.Inc()
	e.log.Info("triage completed", map[string]any{
		"user_id":  sess.UserID,
		"case_id":  caseID,
		"category": string(cat),
		"level":    string(res.Level),
	})

	resp.add(Message{Text: FormatResult(caseID, res), Keyboard: postResultKeyboard})
	if caseID == "" {
		resp.add(Message{Text: textCaseNotSaved})
	}
	return resp, nil
}

func isBeginTrigger(text string) bool {
	switch text {
	case TriggerBegin, TriggerRestart, CmdBegin, CmdRestart:
		return true
	}
	return false
}

func stateOf(s Session, found bool) State {
	if !found {
		return StateIdle
	}
	return s.State
}

func followupIndex(s State) int {
	switch s {
	case StateFollowup1:
		return 1
	case StateFollowup2:
		return 2
	case StateFollowup3:
		return 3
	}
	return 0
}

func followupField(idx int) Field {
	switch idx {
	case 1:
		return FieldFollowup1
	case 2:
		return FieldFollowup2
	default:
		return FieldFollowup3
	}
}
