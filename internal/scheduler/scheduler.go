package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/dashboard"
	"GoldSentinel/internal/errtrack"
	"GoldSentinel/internal/logger"
	"GoldSentinel/internal/metrics"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/notifier"
	"GoldSentinel/internal/recorder"
	"GoldSentinel/internal/snapshot"
)

// Notifier delivers alerts. *notifier.TelegramNotifier satisfies it.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Specs holds one cron spec per feed.
type Specs struct {
	Daily        string
	Realtime     string
	ExchangeRate string
	Explanation  string
}

// Scheduler polls every feed on its own interval into the snapshot store.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  collector.Fetcher
	Store    *snapshot.Store
	Recorder recorder.Recorder
	Notifier Notifier // nil disables alerts
	Tracker  errtrack.Tracker
	Options  dashboard.Options
	Ctx      context.Context

	From, To string

	mu             sync.Mutex
	lastPrediction *model.Prediction
	log            *logger.Logger
}

// NewScheduler creates a new Scheduler. tn may be nil.
func NewScheduler(ctx context.Context, f collector.Fetcher, store *snapshot.Store, rec recorder.Recorder, tn Notifier, opts dashboard.Options) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Fetcher:  f,
		Store:    store,
		Recorder: rec,
		Notifier: tn,
		Tracker:  errtrack.Noop{},
		Options:  opts,
		Ctx:      ctx,
		From:     "USD",
		To:       "LKR",
		log:      logger.Get().With("component", "scheduler"),
	}
}

// RegisterAll registers one polling job per feed.
func (s *Scheduler) RegisterAll(specs Specs) error {
	jobs := []struct {
		feed snapshot.Feed
		spec string
		run  func()
	}{
		{snapshot.FeedDaily, specs.Daily, s.pollDaily},
		{snapshot.FeedRealtime, specs.Realtime, s.pollRealtime},
		{snapshot.FeedExchangeRate, specs.ExchangeRate, s.pollExchangeRate},
		{snapshot.FeedExplanation, specs.Explanation, s.pollExplanation},
	}
	for _, j := range jobs {
		if _, err := s.Cron.AddFunc(j.spec, j.run); err != nil {
			return fmt.Errorf("register %s task: %w", j.feed, err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Infof("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Infof("scheduler stopped")
}

// RunAllNow polls every feed once, concurrently, and waits. Used to prime the
// store at startup.
func (s *Scheduler) RunAllNow() {
	var wg sync.WaitGroup
	for _, run := range []func(){s.pollDaily, s.pollRealtime, s.pollExchangeRate, s.pollExplanation} {
		wg.Add(1)
		go func(run func()) {
			defer wg.Done()
			run()
		}(run)
	}
	wg.Wait()
}

// observe records the poll outcome and stores the error if any.
func (s *Scheduler) observe(feed snapshot.Feed, start time.Time, err error) bool {
	metrics.RecordPoll(string(feed), time.Since(start), err)
	if err != nil {
		s.log.Warnf("poll %s: %v", feed, err)
		s.Store.SetError(feed, err)
		s.Tracker.CaptureError(s.Ctx, err, map[string]string{"feed": string(feed)})
		return false
	}
	return true
}

func (s *Scheduler) pollDaily() {
	start := time.Now()
	daily, err := s.Fetcher.FetchDailyData(s.Ctx)
	if !s.observe(snapshot.FeedDaily, start, err) {
		return
	}
	s.Store.SetDaily(daily)

	if daily.Status != model.StatusSuccess {
		s.log.Warnf("daily data status %q: %s", daily.Status, daily.Message)
		return
	}
	if p := daily.Prediction; p != nil && p.PredictedPrice != 0 {
		metrics.PredictedPrice.Set(p.PredictedPrice)
		s.trackPrediction(p, daily.AccuracyStats)
	}
}

// trackPrediction records a changed forecast and alerts when a new day's
// forecast appears after the first one seen.
func (s *Scheduler) trackPrediction(p *model.Prediction, stats model.AccuracyStats) {
	s.mu.Lock()
	prev := s.lastPrediction
	changed := prev == nil || prev.NextDay != p.NextDay || prev.PredictedPrice != p.PredictedPrice
	newDay := prev != nil && prev.NextDay != p.NextDay
	cp := *p
	s.lastPrediction = &cp
	s.mu.Unlock()

	if !changed {
		return
	}
	if err := s.Recorder.RecordPrediction(&recorder.PredictionEvent{
		NextDay:         p.NextDay,
		PredictedPrice:  p.PredictedPrice,
		CurrentPrice:    p.CurrentPrice,
		Method:          p.PredictionMethod,
		R2Score:         stats.R2Score,
		AverageAccuracy: stats.AverageAccuracy,
	}); err != nil {
		s.log.Errorf("record prediction: %v", err)
	}
	if newDay {
		usd, lkr := s.views()
		s.trySend(notifier.FormatPredictionAlert(usd, lkr))
	}
}

func (s *Scheduler) pollRealtime() {
	start := time.Now()
	rt, err := s.Fetcher.FetchRealtimePrice(s.Ctx)
	if !s.observe(snapshot.FeedRealtime, start, err) {
		return
	}
	// A zero quote carries no price; the last good one stays live.
	if rt.CurrentPrice == 0 {
		s.log.Debugf("realtime payload without a price, keeping last quote")
		return
	}
	s.Store.SetRealtime(rt)
	metrics.GoldPrice.Set(rt.CurrentPrice)
	if err := s.Recorder.RecordPriceTick(&recorder.PriceTick{
		Source: s.Fetcher.Name(),
		Symbol: rt.Symbol,
		Price:  rt.CurrentPrice,
	}); err != nil {
		s.log.Errorf("record price tick: %v", err)
	}
}

func (s *Scheduler) pollExchangeRate() {
	start := time.Now()
	rate, err := s.Fetcher.FetchExchangeRate(s.Ctx, s.From, s.To)
	if !s.observe(snapshot.FeedExchangeRate, start, err) {
		return
	}
	s.Store.SetExchangeRate(rate)
	if rate.ExchangeRate == 0 {
		return
	}
	metrics.ExchangeRate.WithLabelValues(s.From, s.To).Set(rate.ExchangeRate)
	if err := s.Recorder.RecordExchangeRate(&recorder.RateEvent{
		From: s.From,
		To:   s.To,
		Rate: rate.ExchangeRate,
	}); err != nil {
		s.log.Errorf("record exchange rate: %v", err)
	}
}

func (s *Scheduler) pollExplanation() {
	start := time.Now()
	exp, err := s.Fetcher.FetchExplanation(s.Ctx)
	if !s.observe(snapshot.FeedExplanation, start, err) {
		return
	}
	s.Store.SetExplanation(exp)
}

func (s *Scheduler) views() (dashboard.View, dashboard.View) {
	snap := s.Store.Snapshot()
	return dashboard.Build(snap, model.UnitTroyOunce, s.Options), dashboard.Build(snap, model.UnitPawn, s.Options)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	if i := strings.IndexByte(command, '@'); i > 0 {
		command = command[:i]
	}
	usd, lkr := s.views()
	switch strings.ToLower(command) {
	case "/price":
		return notifier.FormatPriceReport(usd, lkr)
	case "/prediction":
		return notifier.FormatPrediction(usd, lkr)
	case "/rate":
		return notifier.FormatRate(usd)
	default:
		return notifier.HelpText
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil || text == "" {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Errorf("send notification: %v", err)
	}
}
