package usecase

import (
	"context"
	"sync"

	keywordRepo "github.com/nikhil-s1nha/productivity/internal/keyword/repository"
	"github.com/nikhil-s1nha/productivity/internal/parser"
	"github.com/nikhil-s1nha/productivity/internal/task/repository"
	"github.com/nikhil-s1nha/productivity/pkg/gcalendar"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

// CalendarClient is the calendar export surface used for imported
// tasks that resolve a concrete start time. Satisfied by
// *gcalendar.Client.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	keywords keywordRepo.Repository
	parser   *parser.Parser
	calendar   CalendarClient // optional, may be nil
	calendarID string
	timezone   string

	mu        sync.Mutex
	listeners []func()
}

// New creates a new task UseCase instance. calendar may be nil when
// calendar export is not configured.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	keywords keywordRepo.Repository,
	p *parser.Parser,
	calendar CalendarClient,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		keywords:   keywords,
		parser:     p,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}

// Subscribe registers a mutation listener.
func (uc *implUseCase) Subscribe(fn func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, fn)
}

// notify calls every listener synchronously.
func (uc *implUseCase) notify() {
	uc.mu.Lock()
	listeners := make([]func(), len(uc.listeners))
	copy(listeners, uc.listeners)
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
