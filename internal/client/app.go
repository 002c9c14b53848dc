// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-tag-sync/internal/adapter"
	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/service"
	"github.com/MKhiriev/go-tag-sync/internal/workers"
	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/samber/lo"
)

const usage = `usage: tag-client [flags] <command> [args]

commands:
  register                  create a subscriber on the directory
  set <key=value>...        queue tag values
  delete <key>...           queue tag removals
  consent <accepted> [<rejected>]
                            comma-separated category tags to set to "1" or remove, then sync
  send                      send queued changes now
  sync                      sync queued changes, coalescing with a running sync
  get                       print the directory's tag set
  status                    print the number of queued changes
  daemon                    sync queued changes periodically until interrupted
  version                   print the directory's build info
`

type command struct {
	// session commands need a registered subscriber.
	session bool
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {run: (*App).register},
	"set":      {run: (*App).set},
	"delete":   {run: (*App).delete},
	"consent":  {session: true, run: (*App).consent},
	"send":     {session: true, run: (*App).send},
	"sync":     {session: true, run: (*App).sync},
	"get":      {session: true, run: (*App).get},
	"status":   {run: (*App).status},
	"daemon":   {session: true, run: (*App).daemon},
	"version":  {run: (*App).version},
}

type App struct {
	services      *service.ClientServices
	serverAdapter adapter.ServerAdapter
	args          []string
	syncInterval  time.Duration
	out           io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil || serverAdapter == nil || cfg == nil {
		return nil, errors.New("client app requires services, adapter and config")
	}

	return &App{
		services:      services,
		serverAdapter: serverAdapter,
		args:          cfg.Args,
		syncInterval:  cfg.Workers.SyncInterval,
		out:           out,
		logger:        log,
	}, nil
}

// Run executes the command named by the first positional argument. Queued
// changes are loaded from the journal first and written back on return.
func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	name, args := a.args[0], a.args[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	if cmd.session {
		if _, err := a.services.SessionService.Restore(ctx); err != nil {
			if errors.Is(err, service.ErrNotRegistered) {
				return fmt.Errorf("%w: run `register` first", err)
			}
			return fmt.Errorf("restore session: %w", err)
		}
	}

	tagManager := a.services.TagManager
	if err := tagManager.Load(ctx); err != nil {
		return err
	}
	defer tagManager.Close()

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running client command")
	return cmd.run(a, ctx, args)
}

func (a *App) register(ctx context.Context, _ []string) error {
	session, err := a.services.SessionService.Register(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered subscriber %s\n", session.SubscriberID)
	return nil
}

func (a *App) set(_ context.Context, args []string) error {
	values, err := parseAssignments(args)
	if err != nil {
		return err
	}

	a.services.TagManager.StoreTagValuesToUpdate(values)
	fmt.Fprintf(a.out, "%d change(s) pending\n", a.services.TagManager.Pending())
	return nil
}

func (a *App) delete(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: delete needs at least one key", ErrInvalidArgs)
	}

	a.services.TagManager.StoreTagValuesToDelete(args)
	fmt.Fprintf(a.out, "%d change(s) pending\n", a.services.TagManager.Pending())
	return nil
}

func (a *App) consent(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: consent <accepted> [<rejected>]", ErrInvalidArgs)
	}

	accepted := splitList(args[0])
	var rejected []string
	if len(args) == 2 {
		rejected = splitList(args[1])
	}

	if err := a.services.TagManager.ConsentTags(ctx, accepted, rejected); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "consent recorded: %d accepted, %d rejected\n", len(accepted), len(rejected))
	return nil
}

func (a *App) send(ctx context.Context, _ []string) error {
	return a.flush(ctx, a.services.TagManager.SendTags)
}

func (a *App) sync(ctx context.Context, _ []string) error {
	return a.flush(ctx, a.services.TagManager.SyncTags)
}

func (a *App) flush(ctx context.Context, syncFn func(context.Context) error) error {
	pending := a.services.TagManager.Pending()
	if err := syncFn(ctx); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d change(s) sent\n", pending)
	return nil
}

func (a *App) get(ctx context.Context, _ []string) error {
	tags, err := a.services.TagManager.GetTags(ctx)
	if err != nil {
		return err
	}

	keys := lo.Keys(tags)
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(a.out, "%s=%s\n", key, tags[key].String())
	}
	return nil
}

func (a *App) status(_ context.Context, _ []string) error {
	fmt.Fprintf(a.out, "%d change(s) pending\n", a.services.TagManager.Pending())
	return nil
}

// daemon syncs once, then on every tick until ctx is cancelled. On exit it
// reports whether the latest attempt failed.
func (a *App) daemon(ctx context.Context, _ []string) error {
	if err := a.services.TagManager.SyncTags(ctx); err != nil {
		a.logger.Err(err).Msg("initial sync failed; changes stay queued")
	}

	fmt.Fprintf(a.out, "syncing every %s, press Ctrl+C to stop\n", a.syncInterval)
	err := workers.NewWorkers(
		workers.NewSyncWorker(a.services.SyncJob, a.syncInterval, a.logger),
	).Run(ctx)

	if failure := a.services.TagManager.LastFailure(); failure != nil {
		fmt.Fprintf(a.out, "last sync failed: %v\n", failure)
	}
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	info, err := a.serverAdapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("get directory version: %w", err)
	}

	fmt.Fprint(a.out, info.String())
	return nil
}

// parseAssignments reads key=value arguments. Values go through
// [models.ParseTagValue], so canonical numbers become numbers.
func parseAssignments(args []string) (map[string]models.TagValue, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: set needs at least one key=value", ErrInvalidArgs)
	}

	values := make(map[string]models.TagValue, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrInvalidArgs, arg)
		}
		values[key] = models.ParseTagValue(raw)
	}
	return values, nil
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}
