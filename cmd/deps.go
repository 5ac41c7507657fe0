package main

import (
	"context"
	"net/http"

	"emailrep/internal/config"
	"emailrep/internal/reputation"
	"emailrep/pkg/cache"
	"emailrep/pkg/cache/rediscache"
	"emailrep/pkg/logger"
	"emailrep/pkg/metrics"
	"emailrep/pkg/probe/ageprobe"
	"emailrep/pkg/probe/blocklist"
	"emailrep/pkg/probe/dnsprobe"
	"emailrep/pkg/probe/smtpprobe"
	"emailrep/pkg/storage/postgres"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getCache connects to Redis when caching is enabled. Without it verdicts are
// never cached.
func getCache(ctx context.Context, cfg *config.Config) (cache.VerdictCache, *rediscache.Cache, func()) {
	if !cfg.Cache.Enabled {
		return cache.Nop{}, nil, func() {}
	}

	rc, err := rediscache.New(ctx, rediscache.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create redis cache", zap.Error(err))
	}

	return rc, rc, func() {
		logger.Info(ctx, "closing redis client...")
		if err := rc.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getProbes builds the network probes and loads the static lists.
func getProbes(ctx context.Context, cfg *config.Config) reputation.Probes {
	resolver, err := dnsprobe.NewResolver(dnsprobe.ResolverOptions{
		Servers: cfg.Probes.DNS.Servers,
		Timeout: cfg.Probes.DNS.Timeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create DNS resolver", zap.Error(err))
	}

	lists, err := blocklist.LoadLists(blocklist.ListPaths{
		Disposable:     cfg.Lists.Disposable,
		Phishing:       cfg.Lists.Phishing,
		Malicious:      cfg.Lists.Malicious,
		SuspiciousTLDs: cfg.Lists.SuspiciousTLDs,
	})
	if err != nil {
		logger.Fatal(ctx, "could not load static lists", zap.Error(err))
	}
	logger.Info(ctx, "static lists loaded",
		zap.Int("disposable", lists.Disposable.Len()),
		zap.Int("phishing", lists.Phishing.Len()),
		zap.Int("malicious", lists.Malicious.Len()),
		zap.Int("suspiciousTLDs", lists.SuspiciousTLDs.Len()))

	sources := []ageprobe.Source{ageprobe.NewWhoisSource(cfg.Probes.Age.WhoisTimeout)}
	if cfg.Probes.Age.RDAPBaseURL != "" {
		sources = append(sources, ageprobe.NewRDAPSource(
			&http.Client{Timeout: cfg.Probes.Age.RDAPTimeout},
			cfg.Probes.Age.RDAPBaseURL))
	}

	return reputation.Probes{
		MailAuth: dnsprobe.New(resolver),
		Deliverability: smtpprobe.New(smtpprobe.Options{
			Port:     cfg.Probes.SMTP.Port,
			Timeout:  cfg.Probes.SMTP.Timeout,
			HeloName: cfg.Probes.SMTP.HeloName,
		}),
		Age:       ageprobe.New(sources...),
		Blocklist: blocklist.NewDBL(resolver, cfg.Probes.Blocklist.Zone),
		Lists:     lists,
	}
}

// getMetrics registers the OpenTelemetry meter provider with the Prometheus
// default registry and creates the recorder.
func getMetrics(ctx context.Context) *metrics.Recorder {
	mp, err := metrics.NewMeterProvider(nil)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	recorder, err := metrics.NewRecorder(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
	}

	return recorder
}
