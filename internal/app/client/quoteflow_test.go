package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() QuoteForm {
	return QuoteForm{
		Name:     "Ram Sharma",
		Phone:    "+977-9800000001",
		Product:  "PVC Pipe 2in",
		Quantity: "20 pieces",
		Location: "Lalitpur",
	}
}

func TestQuoteFlowValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*QuoteForm)
		wantField string
	}{
		{
			name:   "all fields present passes",
			mutate: func(f *QuoteForm) {},
		},
		{
			name:      "empty name reported first",
			mutate:    func(f *QuoteForm) { f.Name = "   " },
			wantField: "name",
		},
		{
			name:      "empty phone",
			mutate:    func(f *QuoteForm) { f.Phone = "" },
			wantField: "phone",
		},
		{
			name:      "empty product",
			mutate:    func(f *QuoteForm) { f.Product = "\t" },
			wantField: "product",
		},
		{
			name:      "empty quantity",
			mutate:    func(f *QuoteForm) { f.Quantity = " " },
			wantField: "quantity",
		},
		{
			name:      "empty location",
			mutate:    func(f *QuoteForm) { f.Location = "" },
			wantField: "location",
		},
		{
			name: "multiple empties report the first in form order",
			mutate: func(f *QuoteForm) {
				f.Phone = ""
				f.Location = ""
			},
			wantField: "phone",
		},
	}

	flow := NewQuoteFlow(nil, testLogger(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := flow.Validate(form)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantField, valErr.Field)
		})
	}
}

func TestQuoteFlowSubmitSuccess(t *testing.T) {
	var submitted atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/quotes":
			submitted.Add(1)
			w.Write([]byte(`{"id":42,"name":"Ram Sharma","phone":"+977-9800000001","quantity":"20 pieces","location":"Lalitpur","status":"PENDING"}`))
		case "/templates/render/whatsapp-quote":
			w.Write([]byte(`"Namaste! Quote for PVC Pipe 2in x 20 pieces from Ram Sharma (Lalitpur)."`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	api := newAPIClient(testConfig(srv.URL), testLogger(), func() string { return "ne" })
	flow := NewQuoteFlow(api, testLogger(), func() string { return "ne" })

	result, err := flow.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.Quote.ID)
	assert.True(t, result.RemoteTemplate)
	assert.Equal(t, "Namaste! Quote for PVC Pipe 2in x 20 pieces from Ram Sharma (Lalitpur).", result.Message)
	assert.Equal(t, StateDone, flow.State())
	assert.Equal(t, int32(1), submitted.Load())
}

func TestQuoteFlowTemplateFallback(t *testing.T) {
	tests := []struct {
		name            string
		templateHandler func(w http.ResponseWriter)
	}{
		{
			name: "template endpoint errors",
			templateHandler: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "template renders empty",
			templateHandler: func(w http.ResponseWriter) {
				w.Write([]byte(`""`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/quotes":
					w.Write([]byte(`{"id":7,"status":"PENDING"}`))
				case "/templates/render/whatsapp-quote":
					tt.templateHandler(w)
				default:
					w.WriteHeader(http.StatusNotFound)
				}
			}))
			defer srv.Close()

			api := newAPIClient(testConfig(srv.URL), testLogger(), nil)
			flow := NewQuoteFlow(api, testLogger(), nil)

			form := validForm()
			result, err := flow.Submit(context.Background(), form)
			require.NoError(t, err, "template failure must not fail the submission")

			assert.False(t, result.RemoteTemplate)
			assert.Equal(t, FallbackMessage(form), result.Message)
			assert.Equal(t,
				"Hello, I want to inquire about PVC Pipe 2in for 20 pieces. Name: Ram Sharma, Phone: +977-9800000001, Location: Lalitpur",
				result.Message)
			assert.Equal(t, StateDone, flow.State())
		})
	}
}

func TestQuoteFlowSubmitFailurePreservesDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"quota system offline"}`))
	}))
	defer srv.Close()

	api := newAPIClient(testConfig(srv.URL), testLogger(), nil)
	flow := NewQuoteFlow(api, testLogger(), nil)

	form := validForm()
	_, err := flow.Submit(context.Background(), form)
	require.Error(t, err)

	assert.Equal(t, StateError, flow.State())
	assert.Equal(t, "quota system offline", UserMessage(flow.LastError()))
	assert.Equal(t, form, flow.Draft(), "draft must survive a failed submission for retry")
}

func TestQuoteFlowIdempotenceGuard(t *testing.T) {
	var posts atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/quotes":
			if posts.Add(1) == 1 {
				close(started)
			}
			<-release
			w.Write([]byte(`{"id":1,"status":"PENDING"}`))
		case "/templates/render/whatsapp-quote":
			w.Write([]byte(`"msg"`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	api := newAPIClient(testConfig(srv.URL), testLogger(), nil)
	flow := NewQuoteFlow(api, testLogger(), nil)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = flow.Submit(context.Background(), validForm())
	}()

	// Second submit fires while the first is provably mid-POST.
	<-started
	_, secondErr := flow.Submit(context.Background(), validForm())
	require.ErrorIs(t, secondErr, ErrSubmitInFlight)

	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, int32(1), posts.Load(), "exactly one backend quote-creation call")
}

func TestQuoteFlowValidationBlocksSubmission(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := newAPIClient(testConfig(srv.URL), testLogger(), nil)
	flow := NewQuoteFlow(api, testLogger(), nil)

	form := validForm()
	form.Name = ""
	_, err := flow.Submit(context.Background(), form)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "name", valErr.Field)
	assert.Equal(t, int32(0), posts.Load(), "validation failure must not reach the backend")
	assert.Equal(t, StateError, flow.State())

	// The flow stays usable: fixing the field allows a fresh submit attempt.
	flow.Reset()
	assert.Equal(t, StateEditing, flow.State())
}
