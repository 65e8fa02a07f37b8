package usecase

import (
	"sync"

	"github.com/nikhil-s1nha/productivity/internal/keyword/repository"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

// implUseCase is the private implementation of keyword.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger

	mu        sync.Mutex
	listeners []func()
}

// New creates a new keyword UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
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
