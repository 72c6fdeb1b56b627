package service

import (
	"context"
	"sync"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Workflow is one booking session: a draft plus its position in the linear
// wizard. All mutation goes through SessionManager, which locks per workflow.
type Workflow struct {
	id        string
	mu        sync.Mutex
	draft     *domain.BookingDraft
	step      domain.Step
	submit    domain.SubmitStatus
	bookingID string
	createdAt time.Time
	updatedAt time.Time
}

// SessionManager owns every live workflow. Sessions are memory-only: a
// submitted or abandoned draft is simply dropped, nothing exists externally
// until the gateway call succeeds.
type SessionManager struct {
	catalog *CatalogService
	gateway *SubmissionGateway
	policy  Policy
	ttl     time.Duration
	log     logger.Logger

	mu       sync.RWMutex
	sessions map[string]*Workflow
}

func NewSessionManager(
	catalog *CatalogService,
	gateway *SubmissionGateway,
	policy Policy,
	ttl time.Duration,
	log logger.Logger,
) *SessionManager {
	return &SessionManager{
		catalog:  catalog,
		gateway:  gateway,
		policy:   policy,
		ttl:      ttl,
		log:      log,
		sessions: make(map[string]*Workflow),
	}
}

func (m *SessionManager) Create(ctx context.Context) (*domain.WorkflowState, error) {
	// best effort: a dead catalog still gets the user an (empty) wizard
	if err := m.catalog.Ensure(ctx); err != nil {
		m.log.Warn("session created with degraded catalog",
			logger.String("error", err.Error()),
		)
	}

	now := time.Now().UTC()
	wf := &Workflow{
		id:        uuid.New().String(),
		draft:     domain.NewBookingDraft(),
		step:      domain.StepEvent,
		submit:    domain.SubmitIdle,
		createdAt: now,
		updatedAt: now,
	}

	m.mu.Lock()
	m.sessions[wf.id] = wf
	m.mu.Unlock()

	m.log.Info("booking session created", logger.String("session_id", wf.id))

	return m.snapshot(wf), nil
}

func (m *SessionManager) Get(ctx context.Context, id string) (*domain.WorkflowState, error) {
	wf, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return m.snapshot(wf), nil
}

func (m *SessionManager) UpdateDraft(ctx context.Context, id string, upd domain.DraftUpdate) (*domain.WorkflowState, error) {
	wf, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	switch wf.submit {
	case domain.SubmitLoading:
		wf.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	case domain.SubmitSuccess:
		wf.mu.Unlock()
		return nil, domain.ErrSessionFinished
	case domain.SubmitError:
		// editing after a failed submit clears the stale error state
		wf.submit = domain.SubmitIdle
	}

	wf.draft.Apply(upd)
	wf.updatedAt = time.Now().UTC()
	wf.mu.Unlock()

	return m.snapshot(wf), nil
}

// Next advances a single step, gated on the current step's validation. On
// refusal the workflow stays put and the typed validation error carries the
// per-field reasons.
func (m *SessionManager) Next(ctx context.Context, id string) (*domain.WorkflowState, error) {
	wf, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	if wf.submit == domain.SubmitSuccess {
		wf.mu.Unlock()
		return nil, domain.ErrSessionFinished
	}

	res := ValidateStep(wf.step, wf.draft, m.catalog, m.policy)
	if !res.Valid {
		step := wf.step
		wf.mu.Unlock()
		return m.snapshot(wf), &domain.ValidationError{Step: step, Reasons: res.Reasons}
	}

	if wf.step < domain.StepReview {
		wf.step++
	}
	wf.updatedAt = time.Now().UTC()
	wf.mu.Unlock()

	return m.snapshot(wf), nil
}

// Previous walks back one step; no validation, no data loss. At the first
// step it is a no-op.
func (m *SessionManager) Previous(ctx context.Context, id string) (*domain.WorkflowState, error) {
	wf, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	if wf.submit == domain.SubmitSuccess {
		wf.mu.Unlock()
		return nil, domain.ErrSessionFinished
	}
	if wf.step > domain.StepEvent {
		wf.step--
	}
	wf.updatedAt = time.Now().UTC()
	wf.mu.Unlock()

	return m.snapshot(wf), nil
}

// Submit hands the draft to the gateway. At most one submission per draft can
// be in flight: a second call while the first is pending is refused without
// touching the wire. The draft survives any failure so the user can correct
// and resubmit.
func (m *SessionManager) Submit(ctx context.Context, id string) (*domain.WorkflowState, error) {
	wf, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	switch {
	case wf.submit == domain.SubmitSuccess:
		wf.mu.Unlock()
		return nil, domain.ErrSessionFinished
	case wf.submit == domain.SubmitLoading:
		wf.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	case wf.step != domain.StepReview:
		wf.mu.Unlock()
		return nil, domain.ErrNotAtReview
	}
	wf.submit = domain.SubmitLoading
	draft := wf.draft.Clone()
	wf.mu.Unlock()

	pricing := ComputeTotal(draft, m.catalog)
	conf, err := m.gateway.Submit(ctx, draft, pricing)

	wf.mu.Lock()
	if err != nil {
		wf.submit = domain.SubmitError
		wf.updatedAt = time.Now().UTC()
		wf.mu.Unlock()
		return m.snapshot(wf), err
	}
	wf.submit = domain.SubmitSuccess
	wf.bookingID = conf.BookingID
	wf.updatedAt = time.Now().UTC()
	wf.mu.Unlock()

	m.log.Info("booking session submitted",
		logger.String("session_id", wf.id),
		logger.String("booking_id", conf.BookingID),
	)

	return m.snapshot(wf), nil
}

// Abandon drops the session. Nothing was persisted externally before submit,
// so there is nothing to compensate.
func (m *SessionManager) Abandon(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	m.log.Info("booking session abandoned", logger.String("session_id", id))
	return nil
}

// ExpireStale evicts sessions idle longer than the TTL and returns their ids.
func (m *SessionManager) ExpireStale(ctx context.Context) ([]string, error) {
	cutoff := time.Now().UTC().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []string
	for id, wf := range m.sessions {
		wf.mu.Lock()
		stale := wf.updatedAt.Before(cutoff) && wf.submit != domain.SubmitLoading
		wf.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			expired = append(expired, id)
		}
	}

	return expired, nil
}

func (m *SessionManager) lookup(id string) (*Workflow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	wf, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return wf, nil
}

func (m *SessionManager) snapshot(wf *Workflow) *domain.WorkflowState {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	return &domain.WorkflowState{
		SessionID:       wf.id,
		Step:            wf.step,
		Draft:           *wf.draft.Clone(),
		Pricing:         ComputeTotal(wf.draft, m.catalog),
		SubmitStatus:    wf.submit,
		BookingID:       wf.bookingID,
		CatalogDegraded: m.catalog.Degraded(),
		CreatedAt:       wf.createdAt,
		UpdatedAt:       wf.updatedAt,
	}
}
