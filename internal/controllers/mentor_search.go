package controllers

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/pkg/logger"
	"github.com/mentorhub/mentorhub-client/pkg/metrics"
)

// SearchAPI is the subset of the mentor client the search controller
// drives.
type SearchAPI interface {
	SearchMentors(ctx context.Context, req models.MentorSearchRequest) ([]models.Mentor, error)
}

// SearchForm mirrors the filter/sort form. Sort is a "field,direction"
// pair; the synthetic field name "rating" is translated to the server's
// "averageRating" before transmission.
type SearchForm struct {
	Keyword            string
	Specialization     string
	MinRating          *float64
	MaxRating          *float64
	MinHourlyRate      *float64
	MaxHourlyRate      *float64
	MinExperienceYears *int
	MaxExperienceYears *int
	Sort               string
}

// DefaultSort is the form's initial sort selection.
const DefaultSort = "rating,desc"

// MentorSearch debounces filter-form edits into search requests: any field
// change restarts the quiet period, and when it closes exactly one request
// fires with the final values, suppressed if the serialized form matches
// the previous emission. In-flight requests are not cancelled; the last
// response wins. Out-of-order application is a known, accepted risk.
type MentorSearch struct {
	api       SearchAPI
	debounce  time.Duration
	onResults func([]models.Mentor)
	onError   func(error)

	mu             sync.Mutex
	timer          *time.Timer
	pending        SearchForm
	lastSerialized string
	closed         bool

	inflight sync.WaitGroup
}

// NewMentorSearch creates a search controller. onResults receives every
// successful result set; onError every failed search.
func NewMentorSearch(api SearchAPI, debounce time.Duration, onResults func([]models.Mentor), onError func(error)) *MentorSearch {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &MentorSearch{
		api:       api,
		debounce:  debounce,
		onResults: onResults,
		onError:   onError,
	}
}

// OnChange records a form edit and (re)starts the debounce window.
func (m *MentorSearch) OnChange(form SearchForm) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.pending = form
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.debounce, m.emit)
}

// SearchNow fires immediately, bypassing the debounce window. Used for the
// initial search when the listing opens and for explicit resets.
func (m *MentorSearch) SearchNow(form SearchForm) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.pending = form
	m.lastSerialized = serializeForm(form)
	m.inflight.Add(1)
	m.mu.Unlock()

	m.fire(form)
}

// emit closes a debounce window: suppress if the form is unchanged from
// the previous emission, otherwise fire exactly one search.
func (m *MentorSearch) emit() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	form := m.pending
	serialized := serializeForm(form)
	if serialized == m.lastSerialized {
		m.mu.Unlock()
		metrics.SearchSuppressed.Inc()
		return
	}
	m.lastSerialized = serialized
	m.inflight.Add(1)
	m.mu.Unlock()

	m.fire(form)
}

// fire launches the search. The caller has already registered it with the
// in-flight group under the lock, so Close cannot miss it.
func (m *MentorSearch) fire(form SearchForm) {
	req := buildSearchRequest(form)

	go func() {
		defer m.inflight.Done()

		results, err := m.api.SearchMentors(context.Background(), req)
		if err != nil {
			metrics.SearchRequests.WithLabelValues("error").Inc()
			logger.Warn("Mentor search failed", zap.Error(err))
			if m.onError != nil {
				m.onError(err)
			}
			return
		}

		metrics.SearchRequests.WithLabelValues("success").Inc()
		if m.onResults != nil {
			m.onResults(results)
		}
	}()
}

// Close stops the debounce timer and waits for in-flight searches to
// finish. No callback fires after Close returns.
func (m *MentorSearch) Close() {
	m.mu.Lock()
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.mu.Unlock()

	m.inflight.Wait()
}

// buildSearchRequest translates the form into the server's search body.
func buildSearchRequest(form SearchForm) models.MentorSearchRequest {
	req := models.MentorSearchRequest{
		Query:          form.Keyword,
		Specialization: form.Specialization,
		MinRating:      form.MinRating,
		MaxRating:      form.MaxRating,
		MinRate:        form.MinHourlyRate,
		MaxRate:        form.MaxHourlyRate,
		MinExperience:  form.MinExperienceYears,
		MaxExperience:  form.MaxExperienceYears,
	}

	if form.Sort != "" {
		field, direction, found := strings.Cut(form.Sort, ",")
		if found {
			if field == "rating" {
				field = "averageRating"
			}
			req.SortBy = field
			req.SortDirection = strings.ToUpper(direction)
		}
	}

	return req
}

func serializeForm(form SearchForm) string {
	data, err := json.Marshal(form)
	if err != nil {
		return ""
	}
	return string(data)
}
