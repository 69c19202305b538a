package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of one service. A user reviews a service at most once.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	ServiceID string    `bson:"serviceId" json:"serviceId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewWithAuthor is a review joined with the reviewer's display name.
type ReviewWithAuthor struct {
	Review     `bson:",inline"`
	AuthorName string `bson:"authorName,omitempty" json:"authorName,omitempty"`
}

// RatingSummary is the aggregate over all reviews of a service.
type RatingSummary struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// CreateReviewRequest is the body of POST /services/:id/reviews.
type CreateReviewRequest struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}
