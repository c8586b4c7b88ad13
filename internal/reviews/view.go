package reviews

// ReviewListDTO is the product review page payload: the approved reviews plus
// the live rating aggregate.
type ReviewListDTO struct {
	Reviews []ReviewDTO `json:"reviews"`
	Stats   StatsDTO    `json:"stats"`
}

// Feed is the page-side aggregation of reviews; comment threads are fetched
// lazily per review and attached in place.
type Feed struct {
	Reviews []ReviewDTO
}

// AttachComments replaces the comment list of exactly one review, leaving the
// others untouched. Returns false when the review is not in the feed.
func (f *Feed) AttachComments(reviewID uint, comments []CommentDTO) bool {
	for i := range f.Reviews {
		if f.Reviews[i].ID == reviewID {
			f.Reviews[i].Comments = comments
			return true
		}
	}
	return false
}

// DisplayRating picks the rating to show: the live aggregate when any
// approved review exists, else the product's static rating with the count
// omitted.
func DisplayRating(stats *StatsDTO, staticRating float64) (float64, *int) {
	if stats != nil && stats.Total > 0 {
		total := stats.Total
		return stats.Average, &total
	}
	return staticRating, nil
}
