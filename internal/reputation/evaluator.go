// Package reputation evaluates email addresses: it runs the probes, scores
// their signals and keeps the resulting verdicts.
package reputation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"emailrep/internal/config"
	"emailrep/pkg/cache"
	"emailrep/pkg/domain"
	"emailrep/pkg/logger"
	"emailrep/pkg/metrics"
	"emailrep/pkg/probe/blocklist"
	"emailrep/pkg/probe/lexical"
	"emailrep/pkg/serrors"
	"emailrep/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const tracerName = "emailrep/internal/reputation"

// MaxBatchSize is the largest number of addresses Enqueue accepts at once.
const MaxBatchSize = 100

// Options configure evaluations.
type Options struct {
	// EvaluationTimeout bounds a single evaluation, probes included.
	EvaluationTimeout time.Duration
	// UniqueJobPeriod is the window in which a queued address is not queued
	// again.
	UniqueJobPeriod time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		EvaluationTimeout: cfg.EvaluationTimeout,
		UniqueJobPeriod:   cfg.Cache.TTL,
	}
}

// Probes bundles the collaborators an evaluation consults.
type Probes struct {
	MailAuth       MailAuthProbe
	Deliverability DeliverabilityProbe
	Age            AgeProbe
	Blocklist      BlocklistProbe
	Lists          StaticLists
}

type evaluator struct {
	options Options
	probes  Probes
	storage storage.Storage
	store   *VerdictStore
	cache   cache.VerdictCache
	metrics *metrics.Recorder
	tracer  trace.Tracer
	flight  singleflight.Group

	mu   sync.Mutex
	runs map[string]*run
	seq  uint64
}

// run is an evaluation shared by every caller waiting on the same address.
// Its context is detached from the callers and ends when the last one leaves.
type run struct {
	key     string
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// New creates an Evaluator. storage may be nil, in which case nothing is
// persisted, history is always empty and stored lookups are unavailable.
// A nil cache disables caching and a nil recorder disables metrics.
func New(storage storage.Storage,
	verdictCache cache.VerdictCache,
	probes Probes,
	recorder *metrics.Recorder,
	options Options) Evaluator {
	if verdictCache == nil {
		verdictCache = cache.Nop{}
	}
	if probes.Lists == nil {
		probes.Lists = (*blocklist.Lists)(nil)
	}

	return &evaluator{
		options: options,
		probes:  probes,
		storage: storage,
		store:   NewVerdictStore(storage),
		cache:   verdictCache,
		metrics: recorder,
		tracer:  otel.Tracer(tracerName),
		runs:    make(map[string]*run),
	}
}

// Evaluate scores address. Concurrent calls for the same address share one
// run, which keeps going while at least one caller waits for it. Probe
// failures only lower the score; the call fails for an invalid address or
// when ctx ends before the probes finish. A run abandoned by every caller
// stores nothing.
func (e *evaluator) Evaluate(ctx context.Context, address string) (*domain.Verdict, error) {
	address, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	r := e.join(ctx, address)
	defer e.leave(address, r)

	ch := e.flight.DoChan(r.key, func() (any, error) {
		return e.evaluate(r.ctx, address)
	})
	select {
	case <-ctx.Done():
		return nil, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "evaluation of %s did not finish", address)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err //nolint: wrapcheck
		}

		return res.Val.(*domain.Verdict), nil
	}
}

// join registers a caller on the run for address, starting a new run when
// none is active. The run inherits ctx values but not its cancellation.
func (e *evaluator) join(ctx context.Context, address string) *run {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.runs[address]
	if !ok {
		e.seq++
		runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		r = &run{key: fmt.Sprintf("%s#%d", address, e.seq), ctx: runCtx, cancel: cancel}
		e.runs[address] = r
	}
	r.waiters++

	return r
}

// leave unregisters a caller and cancels the run once nobody waits for it.
func (e *evaluator) leave(address string, r *run) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r.waiters--
	if r.waiters > 0 {
		return
	}
	r.cancel()
	if e.runs[address] == r {
		delete(e.runs, address)
	}
}

func (e *evaluator) evaluate(ctx context.Context, address string) (*domain.Verdict, error) {
	local, domainName, tld := SplitAddress(address)
	ctx = logger.WithFields(ctx, zap.String("address", address), zap.String("domain", domainName))

	cached, err := e.cache.Get(ctx, address)
	if err != nil {
		logger.Warn(ctx, "could not read verdict cache", zap.Error(err))
	}
	e.metrics.CountCacheLookup(ctx, cached != nil)
	if cached != nil {
		// cached probe results are reused but history always comes from the store
		v := *cached
		v.Email.FirstSeen, v.Email.LastUpdated = domain.FormatHistory(e.store.History(ctx, address))

		return &v, nil
	}

	if e.options.EvaluationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.EvaluationTimeout)
		defer cancel()
	}

	var (
		auth    domain.MailAuth
		deliv   domain.Deliverability
		age     = domain.UnknownAge
		spam    bool
		history *domain.History
	)

	// only SMTP depends on another probe (it needs the MX host)
	var g errgroup.Group
	g.Go(func() error {
		e.observe(ctx, "dns", func(ctx context.Context) error {
			auth = e.probes.MailAuth.Resolve(ctx, domainName)

			return errors.Join(auth.MXErr, auth.SPFErr, auth.DMARCErr)
		})
		if auth.MX == "" {
			return nil
		}
		e.observe(ctx, "smtp", func(ctx context.Context) error {
			var err error
			deliv, err = e.probes.Deliverability.Probe(ctx, address, auth.MX, domainName)

			return err
		})

		return nil
	})
	g.Go(func() error {
		e.observe(ctx, "age", func(ctx context.Context) error {
			var err error
			age, err = e.probes.Age.AgeDays(ctx, domainName)
			if err != nil {
				age = domain.UnknownAge
			}

			return err
		})

		return nil
	})
	g.Go(func() error {
		e.observe(ctx, "blocklist", func(ctx context.Context) error {
			var err error
			spam, err = e.probes.Blocklist.IsListed(ctx, domainName)
			if err != nil {
				spam = false
			}

			return err
		})

		return nil
	})
	g.Go(func() error {
		history = e.store.History(ctx, address)

		return nil
	})

	random := lexical.IsRandom(local)
	d := domain.DomainSignal{
		Name:         domainName,
		TLD:          tld,
		IsDisposable: e.probes.Lists.IsDisposable(domainName),
		IsPhishing:   e.probes.Lists.IsPhishing(domainName),
		IsSuspicious: e.probes.Lists.IsSuspiciousTLD(tld),
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "evaluation of %s did not finish", address)
	}

	d.PrimaryMX = auth.MX
	d.SPFRecord = auth.SPF
	d.DMARCRecord = auth.DMARC
	d.AgeDays = age
	d.IsNew = domain.IsNewDomain(age)
	d.IsSpam = spam
	d.IsCatchAll = deliv.CatchAll

	label, score := Score(NewSignals(d, deliv.Deliverable, auth.Spoofable, random))
	email := domain.EmailSignal{
		Address:     address,
		Score:       score,
		Label:       label,
		Valid:       true,
		Deliverable: deliv.Deliverable,
		Spoofable:   auth.Spoofable,
	}

	e.store.Persist(ctx, d, email)

	verdict := domain.NewVerdict(email, d, history)
	if err := e.cache.Set(ctx, address, &verdict); err != nil {
		logger.Warn(ctx, "could not cache verdict", zap.Error(err))
	}
	e.metrics.CountEvaluation(ctx, string(label))
	logger.Info(ctx, "address evaluated", zap.Int("score", score), zap.String("label", string(label)))

	return &verdict, nil
}

// observe runs one probe inside a span and records its duration. A probe
// error is logged and otherwise ignored.
func (e *evaluator) observe(ctx context.Context, probe string, fn func(ctx context.Context) error) {
	ctx, span := e.tracer.Start(ctx, "probe."+probe, trace.WithAttributes(attribute.String("probe", probe)))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	e.metrics.ObserveProbe(ctx, probe, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, metrics.Outcome(err))
		logger.Debug(ctx, "probe failed", zap.String("probe", probe), zap.Error(err))
	}
}

// Enqueue validates every address and queues one background evaluation per
// address. It returns how many jobs were newly queued; addresses already
// queued within the unique period are skipped.
func (e *evaluator) Enqueue(ctx context.Context, addresses []string) (int, error) {
	if len(addresses) == 0 || len(addresses) > MaxBatchSize {
		return 0, serrors.With(serrors.ErrBadRequest, "between 1 and %d addresses are required", MaxBatchSize)
	}
	if e.storage == nil {
		return 0, serrors.With(serrors.ErrUnavailable, "background evaluation needs a database")
	}

	normalized := make([]string, 0, len(addresses))
	for _, a := range addresses {
		n, err := NormalizeAddress(a)
		if err != nil {
			return 0, err
		}
		normalized = append(normalized, n)
	}

	accepted := 0
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		accepted = 0
		for _, a := range normalized {
			added, err := tx.AddJob(ctx, JobArgs{Address: a, uniqueJobPeriod: e.options.UniqueJobPeriod}, nil)
			if err != nil {
				return fmt.Errorf("could not add job: %w", err)
			}
			if added {
				accepted++
			}
		}

		return nil
	}); err != nil {
		return 0, fmt.Errorf("could not enqueue addresses: %w", err)
	}

	return accepted, nil
}

// Domain returns the stored verdict of a domain.
func (e *evaluator) Domain(ctx context.Context, name string) (*domain.DomainVerdict, error) {
	if e.storage == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "stored verdicts need a database")
	}
	d, err := e.storage.DomainByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}
	if d == nil {
		return nil, serrors.With(serrors.ErrNotFound, "domain not found")
	}
	v := domain.NewDomainVerdict(*d)

	return &v, nil
}

// Email returns the stored verdict of an address together with its domain.
func (e *evaluator) Email(ctx context.Context, address string) (*domain.Verdict, error) {
	address, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}
	if e.storage == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "stored verdicts need a database")
	}

	email, err := e.storage.EmailByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("could not get email: %w", err)
	}
	if email == nil {
		return nil, serrors.With(serrors.ErrNotFound, "email not found")
	}

	_, domainName, tld := SplitAddress(address)
	d, err := e.storage.DomainByName(ctx, domainName)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}
	if d == nil {
		d = &domain.DomainSignal{Name: domainName, TLD: tld, AgeDays: domain.UnknownAge}
	}

	v := domain.NewVerdict(*email, *d, &domain.History{FirstSeen: email.FirstSeen, LastUpdated: email.LastUpdated})

	return &v, nil
}
