package usecase

import (
	"context"
	"strings"

	"github.com/nikhil-s1nha/productivity/internal/keyword"
)

// List returns the current keyword-to-category mapping.
func (uc *implUseCase) List(ctx context.Context) (keyword.ListKeywordsOutput, error) {
	keywords, err := uc.repo.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List Snapshot: %v", err)
		return keyword.ListKeywordsOutput{}, err
	}
	return keyword.ListKeywordsOutput{Keywords: keywords}, nil
}

// Set stores a keyword mapping. Keys are normalized to lowercase.
func (uc *implUseCase) Set(ctx context.Context, input keyword.SetKeywordInput) error {
	key := strings.ToLower(strings.TrimSpace(input.Key))
	if key == "" {
		return keyword.ErrEmptyKey
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return keyword.ErrEmptyCategory
	}

	if err := uc.repo.Set(ctx, key, category); err != nil {
		uc.l.Errorf(ctx, "uc.Set Set: %v", err)
		return err
	}

	uc.notify()
	return nil
}

// Remove deletes a keyword mapping. A missing key is a silent miss.
func (uc *implUseCase) Remove(ctx context.Context, key string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return keyword.ErrEmptyKey
	}

	removed, err := uc.repo.Remove(ctx, key)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Remove Remove: %v", err)
		return err
	}

	if removed {
		uc.notify()
	}
	return nil
}
