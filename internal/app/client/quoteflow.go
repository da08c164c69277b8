package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"hardstore/internal/model"
)

// FlowState tags where the quote submission workflow currently is.
type FlowState int

const (
	StateEditing FlowState = iota
	StateValidating
	StateSubmitting
	StateTemplateResolving
	StateDone
	StateError
)

func (s FlowState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateTemplateResolving:
		return "resolving-template"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	}
	return "unknown"
}

// QuoteForm is the ephemeral draft the user fills in. It exists only for the
// duration of a screen session; on failure it is preserved so the user can
// retry without retyping.
type QuoteForm struct {
	Name      string
	Phone     string
	Product   string
	Quantity  string
	Location  string
	ProductID *int64
}

// SubmitResult is the terminal output of a successful submission: the created
// quote plus the outgoing WhatsApp message text. RemoteTemplate reports
// whether the message came from the backend template or the local fallback.
type SubmitResult struct {
	Quote          *model.QuoteRequest
	Message        string
	RemoteTemplate bool
}

// QuoteFlow runs the submission workflow:
//
//	Editing -> Validating -> Submitting -> TemplateResolving -> Done
//
// with Error reachable from Validating and Submitting. Template resolution is
// best-effort and never reverts a successful submission. Once Submitting has
// begun the flow runs to completion; there is no mid-flight cancellation.
type QuoteFlow struct {
	api      *apiClient
	log      *slog.Logger
	language func() string

	mu      sync.Mutex
	state   FlowState
	lastErr error
	draft   QuoteForm
}

func NewQuoteFlow(api *apiClient, log *slog.Logger, language func() string) *QuoteFlow {
	return &QuoteFlow{
		api:      api,
		log:      log,
		language: language,
		state:    StateEditing,
	}
}

// State returns the current workflow state.
func (f *QuoteFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LastError returns the error of the most recent failed transition.
func (f *QuoteFlow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Draft returns the preserved form of the last failed submission.
func (f *QuoteFlow) Draft() QuoteForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Validate checks every field non-empty after trimming, reporting the first
// missing field in form order: name, phone, product, quantity, location.
func (f *QuoteFlow) Validate(form QuoteForm) error {
	checks := []struct {
		field string
		value string
	}{
		{"name", form.Name},
		{"phone", form.Phone},
		{"product", form.Product},
		{"quantity", form.Quantity},
		{"location", form.Location},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return &ValidationError{Field: c.field}
		}
	}
	return nil
}

// Submit runs the workflow end to end. A second Submit while one is already
// past validation is rejected with ErrSubmitInFlight so one button mash never
// creates two backend quotes.
func (f *QuoteFlow) Submit(ctx context.Context, form QuoteForm) (*SubmitResult, error) {
	f.mu.Lock()
	if f.state == StateValidating || f.state == StateSubmitting || f.state == StateTemplateResolving {
		f.mu.Unlock()
		f.log.Debug("quote submit rejected: already in flight")
		return nil, ErrSubmitInFlight
	}
	f.state = StateValidating
	f.draft = form
	f.mu.Unlock()

	if err := f.Validate(form); err != nil {
		f.setError(err)
		return nil, err
	}

	f.setState(StateSubmitting)
	lang := f.currentLanguage()

	quote := model.QuoteRequest{
		Name:         strings.TrimSpace(form.Name),
		Phone:        strings.TrimSpace(form.Phone),
		ProductID:    form.ProductID,
		Quantity:     strings.TrimSpace(form.Quantity),
		Location:     strings.TrimSpace(form.Location),
		LanguageCode: lang,
	}

	created, err := f.api.SubmitQuote(ctx, quote)
	if err != nil {
		f.setError(fmt.Errorf("submit quote: %w", err))
		return nil, err
	}

	// Submission has succeeded; everything from here on is best-effort and
	// only changes the outgoing message text.
	f.setState(StateTemplateResolving)
	message, remote := f.resolveMessage(ctx, lang, form)

	f.mu.Lock()
	f.state = StateDone
	f.lastErr = nil
	f.draft = QuoteForm{}
	f.mu.Unlock()

	f.log.Info("quote submitted",
		"quote_id", created.ID,
		"remote_template", remote,
	)

	return &SubmitResult{Quote: created, Message: message, RemoteTemplate: remote}, nil
}

// Reset returns the flow to Editing, clearing any error. Used when the user
// navigates away or starts over.
func (f *QuoteFlow) Reset() {
	f.mu.Lock()
	f.state = StateEditing
	f.lastErr = nil
	f.draft = QuoteForm{}
	f.mu.Unlock()
}

// resolveMessage tries the remote whatsapp-quote template and falls back to
// the fixed local format when the template is unavailable or renders empty.
func (f *QuoteFlow) resolveMessage(ctx context.Context, lang string, form QuoteForm) (string, bool) {
	rendered, err := f.api.RenderWhatsAppQuote(ctx, lang, WhatsAppQuoteVars{
		Product:  strings.TrimSpace(form.Product),
		Quantity: strings.TrimSpace(form.Quantity),
		Name:     strings.TrimSpace(form.Name),
		Location: strings.TrimSpace(form.Location),
	})
	if err != nil || strings.TrimSpace(rendered) == "" {
		if err == nil {
			err = ErrTemplateUnavailable
		}
		f.log.Debug("remote template unavailable, using local fallback", "error", err)
		return FallbackMessage(form), false
	}
	return rendered, true
}

// FallbackMessage is the deterministic local message used when the remote
// template cannot be resolved.
func FallbackMessage(form QuoteForm) string {
	return fmt.Sprintf("Hello, I want to inquire about %s for %s. Name: %s, Phone: %s, Location: %s",
		strings.TrimSpace(form.Product),
		strings.TrimSpace(form.Quantity),
		strings.TrimSpace(form.Name),
		strings.TrimSpace(form.Phone),
		strings.TrimSpace(form.Location),
	)
}

func (f *QuoteFlow) setState(s FlowState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *QuoteFlow) setError(err error) {
	f.mu.Lock()
	f.state = StateError
	f.lastErr = err
	f.mu.Unlock()

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		f.log.Debug("quote validation failed", "field", valErr.Field)
	} else {
		f.log.Warn("quote submission failed", "error", err)
	}
}

func (f *QuoteFlow) currentLanguage() string {
	if f.language != nil {
		if lang := f.language(); lang != "" {
			return lang
		}
	}
	return "en"
}
