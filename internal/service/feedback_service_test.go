package service

import (
	"errors"
	"testing"

	"github.com/resto-next/internal/repository"
)

func setupFeedbackServiceTest(t *testing.T) *FeedbackService {
	t.Helper()
	f := setupServiceTest(t, CartServiceOptions{})
	return NewFeedbackService(repository.NewFeedbackRepository(f.db))
}

func TestFeedbackSubmitValidation(t *testing.T) {
	svc := setupFeedbackServiceTest(t)

	cases := []struct {
		name  string
		input SubmitFeedbackInput
		want  error
	}{
		{"missing name", SubmitFeedbackInput{Email: "a@b.dz", Rating: 4, Message: "Très bon"}, ErrFeedbackInvalid},
		{"missing message", SubmitFeedbackInput{Name: "Lina", Email: "a@b.dz", Rating: 4}, ErrFeedbackInvalid},
		{"bad email", SubmitFeedbackInput{Name: "Lina", Email: "not-an-email", Rating: 4, Message: "ok"}, ErrFeedbackEmailInvalid},
		{"display name email", SubmitFeedbackInput{Name: "Lina", Email: "Lina <a@b.dz>", Rating: 4, Message: "ok"}, ErrFeedbackEmailInvalid},
		{"rating too low", SubmitFeedbackInput{Name: "Lina", Email: "a@b.dz", Rating: 0, Message: "ok"}, ErrFeedbackRatingInvalid},
		{"rating too high", SubmitFeedbackInput{Name: "Lina", Email: "a@b.dz", Rating: 6, Message: "ok"}, ErrFeedbackRatingInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
		})
	}
}

func TestFeedbackSubmitAndList(t *testing.T) {
	svc := setupFeedbackServiceTest(t)

	view, err := svc.Submit(SubmitFeedbackInput{
		Name:    " Lina ",
		Email:   " Lina@Example.DZ ",
		Rating:  4,
		Message: "Service rapide",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if view.Email != "lina@example.dz" || view.Name != "Lina" {
		t.Fatalf("input should be normalized, got %+v", view.Feedback)
	}
	if view.RatingLabel != "Très bien" || view.Stars != "★★★★☆" {
		t.Fatalf("unexpected label/stars %q %q", view.RatingLabel, view.Stars)
	}
	if _, err := svc.Submit(SubmitFeedbackInput{Name: "Karim", Email: "k@example.dz", Rating: 1, Message: "Froid"}); err != nil {
		t.Fatalf("submit second failed: %v", err)
	}

	unread, err := svc.CountUnread()
	if err != nil || unread != 2 {
		t.Fatalf("want 2 unread got %d err=%v", unread, err)
	}
	affected, err := svc.MarkRead([]uint{view.ID}, true)
	if err != nil || affected != 1 {
		t.Fatalf("mark read want 1 got %d err=%v", affected, err)
	}
	if _, err := svc.MarkRead(nil, true); !errors.Is(err, ErrFeedbackInvalid) {
		t.Fatalf("empty ids want ErrFeedbackInvalid got %v", err)
	}

	isRead := false
	rows, total, err := svc.List(repository.FeedbackListFilter{Page: 1, PageSize: 10, IsRead: &isRead})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].RatingLabel != "Décevant" {
		t.Fatalf("unexpected unread list total=%d rows=%+v", total, rows)
	}
	if _, _, err := svc.List(repository.FeedbackListFilter{Rating: 9}); !errors.Is(err, ErrFeedbackRatingInvalid) {
		t.Fatalf("want ErrFeedbackRatingInvalid got %v", err)
	}
}

func TestRatingStarsClamped(t *testing.T) {
	if got := ratingStars(7); got != "★★★★★" {
		t.Fatalf("want 5 stars got %q", got)
	}
	if got := ratingStars(-1); got != "☆☆☆☆☆" {
		t.Fatalf("want 0 stars got %q", got)
	}
}
