package services

import (
	"context"
	"sort"
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockSchedulingAPI implements driven.SchedulingAPI for testing.
type mockSchedulingAPI struct {
	AuthStatusFunc      func(ctx context.Context) (domain.AuthStatus, error)
	AuthenticateFunc    func(ctx context.Context) (string, error)
	ListScheduledFunc   func(ctx context.Context) ([]domain.ScheduledItem, error)
	GenerateContentFunc func(ctx context.Context, summary string) (domain.GeneratedContent, error)
	ScheduleFunc        func(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error)

	authStatusCalls   int
	authenticateCalls int
	listCalls         int
	generateCalls     int
	scheduleCalls     int
	lastSummary       string
	lastRequest       domain.ScheduleRequest
}

func (m *mockSchedulingAPI) AuthStatus(ctx context.Context) (domain.AuthStatus, error) {
	m.authStatusCalls++
	if m.AuthStatusFunc != nil {
		return m.AuthStatusFunc(ctx)
	}
	return domain.AuthStatus{Authenticated: true}, nil
}

func (m *mockSchedulingAPI) Authenticate(ctx context.Context) (string, error) {
	m.authenticateCalls++
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx)
	}
	return "ok", nil
}

func (m *mockSchedulingAPI) ListScheduled(ctx context.Context) ([]domain.ScheduledItem, error) {
	m.listCalls++
	if m.ListScheduledFunc != nil {
		return m.ListScheduledFunc(ctx)
	}
	return []domain.ScheduledItem{}, nil
}

func (m *mockSchedulingAPI) GenerateContent(ctx context.Context, summary string) (domain.GeneratedContent, error) {
	m.generateCalls++
	m.lastSummary = summary
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, summary)
	}
	return domain.GeneratedContent{}, nil
}

func (m *mockSchedulingAPI) Schedule(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error) {
	m.scheduleCalls++
	m.lastRequest = req
	if m.ScheduleFunc != nil {
		return m.ScheduleFunc(ctx, req)
	}
	return domain.ScheduleReceipt{ID: "1"}, nil
}

// fakeRuntime is a deterministic driven.Runtime. Spawned work stays
// pending until resolved, and timers fire only when the clock advances.
type fakeRuntime struct {
	now     time.Time
	posted  []func()
	pending []func(ctx context.Context) func()
	timers  []*fakeTimer
	seq     int

	// leaky makes stopped AfterFunc timers fire anyway, as when the
	// firing was already queued on the loop.
	leaky bool
}

type fakeTimer struct {
	rt      *fakeRuntime
	due     time.Time
	period  time.Duration
	fn      func()
	stopped bool
	fired   bool
	seq     int
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || (t.fired && t.period == 0) {
		return false
	}
	t.stopped = true
	return true
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (r *fakeRuntime) Post(fn func()) {
	r.posted = append(r.posted, fn)
}

func (r *fakeRuntime) Go(work func(ctx context.Context) func()) {
	r.pending = append(r.pending, work)
}

func (r *fakeRuntime) AfterFunc(d time.Duration, fn func()) driven.Timer {
	return r.addTimer(d, 0, fn)
}

func (r *fakeRuntime) Every(d time.Duration, fn func()) driven.Timer {
	return r.addTimer(d, d, fn)
}

func (r *fakeRuntime) Now() time.Time {
	return r.now
}

func (r *fakeRuntime) addTimer(d, period time.Duration, fn func()) *fakeTimer {
	r.seq++
	t := &fakeTimer{rt: r, due: r.now.Add(d), period: period, fn: fn, seq: r.seq}
	r.timers = append(r.timers, t)
	return t
}

// Pending returns the number of unresolved requests.
func (r *fakeRuntime) Pending() int {
	return len(r.pending)
}

// Resolve completes the i-th pending request and runs its completion.
func (r *fakeRuntime) Resolve(i int) {
	work := r.pending[i]
	r.pending = append(r.pending[:i:i], r.pending[i+1:]...)
	if done := work(context.Background()); done != nil {
		done()
	}
	r.drainPosted()
}

// ResolveAll completes pending requests in dispatch order, including
// requests issued by completions.
func (r *fakeRuntime) ResolveAll() {
	for len(r.pending) > 0 {
		r.Resolve(0)
	}
}

func (r *fakeRuntime) drainPosted() {
	for len(r.posted) > 0 {
		fn := r.posted[0]
		r.posted = r.posted[1:]
		fn()
	}
}

// Advance moves the clock and fires due timers in due order.
func (r *fakeRuntime) Advance(d time.Duration) {
	target := r.now.Add(d)
	for {
		next := r.nextDue(target)
		if next == nil {
			break
		}
		r.now = next.due
		next.fired = true
		if next.period > 0 {
			next.due = next.due.Add(next.period)
		}
		next.fn()
		r.drainPosted()
	}
	r.now = target
}

func (r *fakeRuntime) nextDue(limit time.Time) *fakeTimer {
	candidates := make([]*fakeTimer, 0, len(r.timers))
	for _, t := range r.timers {
		if t.due.After(limit) {
			continue
		}
		if t.period == 0 && t.fired {
			continue
		}
		if t.stopped && !(r.leaky && t.period == 0) {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].due.Equal(candidates[j].due) {
			return candidates[i].seq < candidates[j].seq
		}
		return candidates[i].due.Before(candidates[j].due)
	})
	return candidates[0]
}

// ActiveEvery returns the number of running repeating timers.
func (r *fakeRuntime) ActiveEvery() int {
	n := 0
	for _, t := range r.timers {
		if t.period > 0 && !t.stopped {
			n++
		}
	}
	return n
}

// --- Surfaces ---

type fakeIndicator struct {
	state domain.AuthState
	text  string
}

func (f *fakeIndicator) SetAuthState(state domain.AuthState) {
	f.state = state
	f.text = state.Label()
}

func (f *fakeIndicator) SetText(text string) {
	f.text = text
}

type fakeControl struct {
	enabled bool
	visible bool
	label   string

	// disabledSeen records whether the control was disabled at any point.
	disabledSeen bool
}

func newFakeControl() *fakeControl {
	return &fakeControl{enabled: true, visible: true}
}

func (f *fakeControl) SetEnabled(enabled bool) {
	f.enabled = enabled
	if !enabled {
		f.disabledSeen = true
	}
}

func (f *fakeControl) SetLabel(label string) { f.label = label }

func (f *fakeControl) SetVisible(visible bool) { f.visible = visible }

type fakeNotifications struct {
	current *domain.Notification
	shown   []domain.Notification
	clears  int
}

func (f *fakeNotifications) Show(n domain.Notification) {
	f.current = &n
	f.shown = append(f.shown, n)
}

func (f *fakeNotifications) Clear() {
	f.current = nil
	f.clears++
}

func (f *fakeNotifications) last() domain.Notification {
	if len(f.shown) == 0 {
		return domain.Notification{}
	}
	return f.shown[len(f.shown)-1]
}

type fakeTable struct {
	rows    []domain.Row
	renders int
}

func (f *fakeTable) ReplaceRows(rows []domain.Row) {
	f.rows = rows
	f.renders++
}

type fakeForm struct {
	req     domain.ScheduleRequest
	summary string
	resets  int
}

func (f *fakeForm) Request() domain.ScheduleRequest { return f.req }

func (f *fakeForm) Reset() {
	f.req = domain.ScheduleRequest{}
	f.summary = ""
	f.resets++
}

func (f *fakeForm) ApplyContent(content domain.GeneratedContent) {
	f.req.Title = content.Title
	f.req.Description = content.Description
	f.req.Tags = content.Tags
}

func (f *fakeForm) Summary() string { return f.summary }

type fakeAlerter struct {
	alerts []string
}

func (f *fakeAlerter) Alert(message string) {
	f.alerts = append(f.alerts, message)
}

// page bundles fake surfaces.
type page struct {
	indicator     *fakeIndicator
	notifications *fakeNotifications
	table         *fakeTable
	form          *fakeForm
	alerter       *fakeAlerter
	auth          *fakeControl
	submit        *fakeControl
	generate      *fakeControl
}

func newPage() *page {
	return &page{
		indicator:     &fakeIndicator{},
		notifications: &fakeNotifications{},
		table:         &fakeTable{},
		form:          &fakeForm{},
		alerter:       &fakeAlerter{},
		auth:          newFakeControl(),
		submit:        newFakeControl(),
		generate:      newFakeControl(),
	}
}

func (p *page) surfaces() driven.Surfaces {
	return driven.Surfaces{
		Indicator:       p.indicator,
		Notifications:   p.notifications,
		Table:           p.table,
		Form:            p.form,
		Alerter:         p.alerter,
		AuthTrigger:     p.auth,
		SubmitTrigger:   p.submit,
		GenerateTrigger: p.generate,
	}
}

// filledRequest is a complete form snapshot.
func filledRequest() domain.ScheduleRequest {
	return domain.ScheduleRequest{
		Title:       "Launch",
		Description: "Product launch video",
		Tags:        "launch,product",
		Privacy:     "private",
		Category:    "22",
		ScheduledAt: time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC),
		MediaPath:   "/tmp/launch.mp4",
	}
}
