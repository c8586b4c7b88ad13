package reviews

import "testing"

func TestAttachCommentsTargetsOneReview(t *testing.T) {
	feed := &Feed{Reviews: []ReviewDTO{{ID: 1}, {ID: 2}, {ID: 3}}}
	comments := []CommentDTO{{ID: 10, ReviewID: 2, Content: "nice"}}

	if !feed.AttachComments(2, comments) {
		t.Fatal("expected attach to succeed")
	}
	if len(feed.Reviews[1].Comments) != 1 {
		t.Fatal("expected comments attached to review 2")
	}
	if feed.Reviews[0].Comments != nil || feed.Reviews[2].Comments != nil {
		t.Fatal("other reviews must stay untouched")
	}

	// Re-attaching replaces, never appends.
	if !feed.AttachComments(2, nil) {
		t.Fatal("expected attach to succeed")
	}
	if feed.Reviews[1].Comments != nil {
		t.Fatal("expected comment list replaced")
	}

	if feed.AttachComments(99, comments) {
		t.Fatal("unknown review must report false")
	}
}

func TestDisplayRatingPrefersLiveStats(t *testing.T) {
	stats := &StatsDTO{Total: 12, Average: 4.3}

	avg, count := DisplayRating(stats, 3.0)
	if avg != 4.3 || count == nil || *count != 12 {
		t.Fatalf("expected live stats, got %v %v", avg, count)
	}

	avg, count = DisplayRating(&StatsDTO{}, 3.5)
	if avg != 3.5 || count != nil {
		t.Fatalf("expected static fallback without count, got %v %v", avg, count)
	}

	avg, count = DisplayRating(nil, 2.0)
	if avg != 2.0 || count != nil {
		t.Fatalf("expected static fallback, got %v %v", avg, count)
	}
}
